package woocommerce

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	"github.com/shopspring/decimal"
)

const ordersPath = "/wp-json/wc/v3/orders"

// Client talks to the WooCommerce REST API of any connected store.
type Client struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// ListOrders fetches one page of raw orders, oldest first. Only transport
// and page-level decode problems are errors here.
func (c *Client) ListOrders(ctx context.Context, conn *domain.StoreConnection, page, perPage int) ([]json.RawMessage, error) {
	endpoint, err := url.Parse(strings.TrimRight(conn.StoreURL, "/") + ordersPath)
	if err != nil {
		return nil, fmt.Errorf("invalid store url: %w", err)
	}
	q := endpoint.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("orderby", "date")
	q.Set("order", "asc")
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(conn.ConsumerKey, conn.ConsumerSecret)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrUpstream, resp.StatusCode, strings.TrimSpace(string(excerpt)))
	}

	var raw []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: decode orders: %v", domain.ErrUpstream, err)
	}
	return raw, nil
}

// FetchOrders implements domain.OrderFetcher. An order that cannot be decoded
// or mapped is returned with Err set, so one bad order never fails the page.
func (c *Client) FetchOrders(ctx context.Context, conn *domain.StoreConnection, page, perPage int) ([]*domain.MarketplaceOrder, error) {
	raw, err := c.ListOrders(ctx, conn, page, perPage)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.MarketplaceOrder, len(raw))
	for i, r := range raw {
		result[i] = decodeOrder(r)
	}
	return result, nil
}

func decodeOrder(raw json.RawMessage) *domain.MarketplaceOrder {
	var o Order
	if err := json.Unmarshal(raw, &o); err != nil {
		return &domain.MarketplaceOrder{
			ExternalID: rawOrderID(raw),
			Raw:        raw,
			Err:        fmt.Errorf("decode order: %w", err),
		}
	}
	return ToMarketplaceOrder(&o, raw)
}

// rawOrderID recovers the id of an order whose other fields do not decode.
func rawOrderID(raw json.RawMessage) string {
	var head struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return ""
	}
	return strings.Trim(string(head.ID), `"`)
}

// ToMarketplaceOrder maps a store order onto the import input. A missing or
// malformed total sets Err instead of importing the order as a zero sale.
func ToMarketplaceOrder(o *Order, raw json.RawMessage) *domain.MarketplaceOrder {
	mo := &domain.MarketplaceOrder{
		ExternalID: strconv.FormatInt(o.ID, 10),
		Status:     strings.ToLower(strings.TrimSpace(o.Status)),
		CreatedAt:  parseDate(o.DateCreatedGMT, o.DateCreated),
		Customer: domain.CustomerInfo{
			Name:            strings.TrimSpace(o.Billing.FirstName + " " + o.Billing.LastName),
			Email:           o.Billing.Email,
			Phone:           o.Billing.Phone,
			BillingAddress:  formatAddress(o.Billing),
			ShippingAddress: formatAddress(o.Shipping),
		},
		Raw: raw,
	}
	mo.LocationName, mo.HasLocation = ExtractLocationName(o)

	total, err := decimal.NewFromString(strings.TrimSpace(o.Total))
	if err != nil {
		mo.Err = fmt.Errorf("invalid total %q", o.Total)
		return mo
	}
	mo.Total = total

	refund := decimal.Zero
	for _, r := range o.Refunds {
		if v, err := decimal.NewFromString(strings.TrimSpace(r.Total)); err == nil {
			refund = refund.Add(v.Abs())
		}
	}
	mo.RefundAmount = refund
	return mo
}

// parseDate prefers the GMT timestamp. WooCommerce omits the zone suffix.
func parseDate(gmt, local string) time.Time {
	layouts := []string{"2006-01-02T15:04:05", time.RFC3339}
	for _, value := range []string{gmt, local} {
		for _, layout := range layouts {
			if t, err := time.Parse(layout, value); err == nil {
				return t.UTC()
			}
		}
	}
	return time.Time{}
}

func formatAddress(a Address) string {
	parts := make([]string, 0, 6)
	for _, p := range []string{a.Address1, a.Address2, a.City, a.State, a.Postcode, a.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
