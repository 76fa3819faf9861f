package upload

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

// Record is one data row. Exactly one of Order and Err is set unless the row
// is a refund duplicate, which carries neither.
type Record struct {
	Line            int
	Order           *domain.MarketplaceOrder
	RefundDuplicate bool
	Err             error
}

type column int

const (
	colOrderID column = iota
	colStatus
	colTotal
	colRefund
	colLocation
	colDate
	colCustomerName
	colFirstName
	colLastName
	colEmail
	colPhone
	colBilling
	colShipping
)

var headerAliases = map[string]column{
	"order id":           colOrderID,
	"order number":       colOrderID,
	"order_id":           colOrderID,
	"status":             colStatus,
	"order status":       colStatus,
	"total amount":       colTotal,
	"order total":        colTotal,
	"total":              colTotal,
	"refund amount":      colRefund,
	"location":           colLocation,
	"pickup location":    colLocation,
	"order date":         colDate,
	"date":               colDate,
	"date created":       colDate,
	"customer name":      colCustomerName,
	"billing first name": colFirstName,
	"billing last name":  colLastName,
	"email":              colEmail,
	"billing email":      colEmail,
	"phone":              colPhone,
	"billing phone":      colPhone,
	"billing address":    colBilling,
	"shipping address":   colShipping,
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"1/2/2006 15:04",
	"01/02/2006",
	"1/2/2006",
}

// Parse reads a CSV or XLSX export chosen by the file extension.
func Parse(filename string, r io.Reader) ([]Record, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		rows, err = readCSV(r)
	case ".xlsx":
		rows, err = readXLSX(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(filename))
	}
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: file is empty", domain.ErrValidation)
	}

	index := make(map[column]int)
	headers := rows[0]
	for i, h := range headers {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if col, ok := headerAliases[name]; ok {
			if _, seen := index[col]; !seen {
				index[col] = i
			}
		}
	}
	for _, required := range []column{colOrderID, colTotal} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("%w: missing Order ID or Total Amount column", domain.ErrValidation)
		}
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if blank(row) {
			continue
		}
		records = append(records, parseRow(i+2, headers, row, index))
	}
	return records, nil
}

func parseRow(line int, headers, row []string, index map[column]int) Record {
	get := func(c column) string {
		i, ok := index[c]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	rec := Record{Line: line}

	externalID := strings.TrimPrefix(get(colOrderID), "#")
	if externalID == "" {
		rec.Err = fmt.Errorf("line %d: missing order id", line)
		return rec
	}

	total, err := parseAmount(get(colTotal))
	if err != nil {
		rec.Err = fmt.Errorf("line %d: invalid total: %w", line, err)
		return rec
	}
	if total.IsNegative() {
		rec.RefundDuplicate = true
		return rec
	}

	refund := decimal.Zero
	if s := get(colRefund); s != "" {
		if refund, err = parseAmount(s); err != nil {
			rec.Err = fmt.Errorf("line %d: invalid refund amount: %w", line, err)
			return rec
		}
		refund = refund.Abs()
	}

	var orderDate time.Time
	if s := get(colDate); s != "" {
		if orderDate, err = parseDate(s); err != nil {
			rec.Err = fmt.Errorf("line %d: %w", line, err)
			return rec
		}
	}

	name := get(colCustomerName)
	if name == "" {
		name = strings.TrimSpace(get(colFirstName) + " " + get(colLastName))
	}

	raw := make(map[string]string, len(headers))
	for i, h := range headers {
		if i < len(row) {
			raw[strings.TrimSpace(h)] = row[i]
		}
	}
	payload, _ := json.Marshal(raw)

	location := get(colLocation)
	rec.Order = &domain.MarketplaceOrder{
		ExternalID:   externalID,
		Status:       strings.ToLower(get(colStatus)),
		Total:        total,
		RefundAmount: refund,
		CreatedAt:    orderDate,
		Customer: domain.CustomerInfo{
			Name:            name,
			Email:           get(colEmail),
			Phone:           get(colPhone),
			BillingAddress:  get(colBilling),
			ShippingAddress: get(colShipping),
		},
		LocationName: location,
		HasLocation:  location != "",
		Raw:          payload,
	}
	return rec
}

func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	if s == "" {
		return decimal.Zero, errors.New("amount is empty")
	}
	return decimal.NewFromString(s)
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: read csv: %v", domain.ErrValidation, err)
	}
	return rows, nil
}

// readXLSX reads the first sheet of the workbook.
func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read xlsx: %v", domain.ErrValidation, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", domain.ErrValidation)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet: %v", domain.ErrValidation, err)
	}
	return rows, nil
}
