package woocommerce

import "encoding/json"

// Order mirrors the subset of the WooCommerce v3 order resource we read.
type Order struct {
	ID             int64      `json:"id"`
	Status         string     `json:"status"`
	Total          string     `json:"total"`
	DateCreated    string     `json:"date_created"`
	DateCreatedGMT string     `json:"date_created_gmt"`
	Billing        Address    `json:"billing"`
	Shipping       Address    `json:"shipping"`
	MetaData       []MetaData `json:"meta_data"`
	LineItems      []LineItem `json:"line_items"`
	Refunds        []Refund   `json:"refunds"`
}

type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	Address1  string `json:"address_1"`
	Address2  string `json:"address_2"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
	Country   string `json:"country"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// MetaData values are arbitrary JSON. Only string values are read.
type MetaData struct {
	ID           int64           `json:"id"`
	Key          string          `json:"key"`
	Value        json.RawMessage `json:"value"`
	DisplayKey   string          `json:"display_key"`
	DisplayValue json.RawMessage `json:"display_value"`
}

type LineItem struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	MetaData []MetaData `json:"meta_data"`
}

type Refund struct {
	ID    int64  `json:"id"`
	Total string `json:"total"`
}
