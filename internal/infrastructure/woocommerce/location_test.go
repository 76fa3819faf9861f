package woocommerce

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func meta(key, value string) MetaData {
	raw, _ := json.Marshal(value)
	return MetaData{Key: key, Value: raw}
}

func TestExtractLocationName(t *testing.T) {
	tests := []struct {
		name   string
		order  Order
		want   string
		wantOK bool
	}{
		{
			name:   "order meta",
			order:  Order{MetaData: []MetaData{meta("_pickup_location", "Main Store")}},
			want:   "Main Store",
			wantOK: true,
		},
		{
			name:   "key case and whitespace ignored",
			order:  Order{MetaData: []MetaData{meta(" Store_Location ", "  Downtown ")}},
			want:   "Downtown",
			wantOK: true,
		},
		{
			name: "priority follows key order",
			order: Order{MetaData: []MetaData{
				meta("location", "Second"),
				meta("_pickup_location", "First"),
			}},
			want:   "First",
			wantOK: true,
		},
		{
			name: "order meta wins over line items",
			order: Order{
				MetaData:  []MetaData{meta("location", "Order Level")},
				LineItems: []LineItem{{MetaData: []MetaData{meta("_pickup_location", "Item Level")}}},
			},
			want:   "Order Level",
			wantOK: true,
		},
		{
			name:   "line item meta",
			order:  Order{LineItems: []LineItem{{}, {MetaData: []MetaData{meta("pickup_location", "Cottman")}}}},
			want:   "Cottman",
			wantOK: true,
		},
		{
			name:   "empty value ignored",
			order:  Order{MetaData: []MetaData{meta("_pickup_location", "   ")}},
			wantOK: false,
		},
		{
			name:   "non string value ignored",
			order:  Order{MetaData: []MetaData{{Key: "location", Value: json.RawMessage(`{"id":4}`)}}},
			wantOK: false,
		},
		{
			name:   "unknown keys",
			order:  Order{MetaData: []MetaData{meta("_billing_location_hint", "Nope")}},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractLocationName(&tt.order)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
