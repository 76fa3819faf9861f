package woocommerce

import (
	"encoding/json"
	"strings"
)

// LocationKeys are the metadata keys that carry the pickup or store location,
// in priority order. Matching ignores case and surrounding whitespace.
var LocationKeys = []string{
	"_pickup_location",
	"pickup_location",
	"_store_location",
	"store_location",
	"_location",
	"location",
	"pickup location",
	"store",
}

// ExtractLocationName looks for a location in order-level metadata first and
// then in line-item metadata, returning false when no key carries a value.
func ExtractLocationName(order *Order) (string, bool) {
	for _, key := range LocationKeys {
		if name, ok := lookup(order.MetaData, key); ok {
			return name, true
		}
	}
	for _, key := range LocationKeys {
		for _, item := range order.LineItems {
			if name, ok := lookup(item.MetaData, key); ok {
				return name, true
			}
		}
	}
	return "", false
}

func lookup(meta []MetaData, key string) (string, bool) {
	for _, m := range meta {
		if matches(m.Key, key) {
			if s, ok := stringValue(m.Value); ok {
				return s, true
			}
		}
		if matches(m.DisplayKey, key) {
			if s, ok := stringValue(m.DisplayValue); ok {
				return s, true
			}
			if s, ok := stringValue(m.Value); ok {
				return s, true
			}
		}
	}
	return "", false
}

func matches(got, want string) bool {
	return got != "" && strings.EqualFold(strings.TrimSpace(got), want)
}

func stringValue(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}
