package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// itemRow fila del CSV de artículos. Categoría y proveedor se referencian por
// código y email para no depender de los UUID generados.
type itemRow struct {
	Code          string
	Name          string
	CategoryCode  string
	VendorEmail   string
	Type          string
	PurchasePrice decimal.Decimal
	SellingPrice  decimal.Decimal
	OpeningStock  int64
	MinimumStock  int64
	Unit          string
	Location      string
	Barcode       string
}

// Columnas esperadas, en orden. La primera línea es la cabecera.
var itemColumns = []string{
	"code", "name", "category_code", "vendor_email", "type", "purchase_price",
	"selling_price", "current_stock", "minimum_stock", "unit", "location", "barcode",
}

// readItemsCSV lee el CSV separado por ';'. Las planillas exportadas desde Excel
// suelen venir en ISO-8859-1; con latin1=true se decodifican a UTF-8.
func readItemsCSV(r io.Reader, latin1 bool) ([]itemRow, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = len(itemColumns)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("leer cabecera: %w", err)
	}
	for i, col := range itemColumns {
		if !strings.EqualFold(strings.TrimSpace(header[i]), col) {
			return nil, fmt.Errorf("columna %d: se esperaba %q y llegó %q", i+1, col, header[i])
		}
	}

	var rows []itemRow
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		row, err := parseItemRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseItemRecord(rec []string) (itemRow, error) {
	for i := range rec {
		rec[i] = strings.TrimSpace(rec[i])
	}
	row := itemRow{
		Code:         rec[0],
		Name:         rec[1],
		CategoryCode: rec[2],
		VendorEmail:  strings.ToLower(rec[3]),
		Type:         rec[4],
		Unit:         rec[9],
		Location:     rec[10],
		Barcode:      rec[11],
	}
	if row.Code == "" || row.Name == "" {
		return row, fmt.Errorf("code y name son obligatorios")
	}
	var err error
	if row.PurchasePrice, err = parseMoney(rec[5]); err != nil {
		return row, fmt.Errorf("purchase_price: %w", err)
	}
	if row.SellingPrice, err = parseMoney(rec[6]); err != nil {
		return row, fmt.Errorf("selling_price: %w", err)
	}
	if row.OpeningStock, err = parseQty(rec[7]); err != nil {
		return row, fmt.Errorf("current_stock: %w", err)
	}
	if row.MinimumStock, err = parseQty(rec[8]); err != nil {
		return row, fmt.Errorf("minimum_stock: %w", err)
	}
	return row, nil
}

// parseMoney acepta "1234.50" y "1234,50".
func parseMoney(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
}

func parseQty(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("no puede ser negativo")
	}
	return n, nil
}
