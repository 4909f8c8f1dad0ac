// Package erp serializes a finalized cost rollup into the flat comma
// delimited interchange file the downstream ERP imports.
package erp

import (
	"fmt"
	"strings"
	"time"

	"github.com/pebworks/steelquote-backend/internal/reports"
	"github.com/pebworks/steelquote-backend/pkg/db/models"
)

// Record kinds in the interchange file.
const (
	recordKindHeader = "1"
	recordKindItem   = "2"
)

// lineSeparator terminates every record, including the last.
const lineSeparator = "\r\n"

// categoryErpCodes maps each rollup category to its six digit ERP article
// code. Loaded once, read-only.
var categoryErpCodes = map[string]string{
	"A": "510101",
	"B": "510102",
	"C": "510103",
	"D": "510104",
	"E": "510105",
	"F": "510106",
	"G": "510107",
	"H": "510108",
	"I": "510109",
	"J": "510110",
	"M": "510113",
	"O": "510115",
	"Q": "510117",
	"T": "510120",
}

// contractDateLayout is the dd-mm-yyyy the ERP expects.
const contractDateLayout = "02-01-2006"

// Encode renders the interchange file: one header record, then one item
// record per category with a non-zero selling price. Weightless categories
// with a price are lump sums and export quantity 1.0000; zero-price
// categories are omitted entirely.
func Encode(row *models.Estimation, rollup *reports.FCPBS) string {
	var sb strings.Builder

	contractDate := time.Now().UTC().Format(contractDateLayout)
	if row.ContractDate != nil {
		contractDate = row.ContractDate.Format(contractDateLayout)
	}

	fmt.Fprintf(&sb, "%s,%d,%s,%s,%s,%s%s",
		recordKindHeader, row.FiscalYear, contractDate,
		row.JobNumber, row.Currency, row.ProjectName, lineSeparator)

	for _, cat := range rollup.Rows {
		if cat.SellingPrice == 0 {
			continue
		}
		code, ok := categoryErpCodes[cat.Key]
		if !ok {
			code = categoryErpCodes["O"]
		}

		qty := "1.0000"
		unitMaterial := cat.MaterialCost
		unitSelling := cat.SellingPrice
		if cat.WeightKg > 0 {
			qty = fmt.Sprintf("%.4f", cat.WeightKg/1000)
			unitMaterial = cat.MaterialCost * 1000 / cat.WeightKg
			unitSelling = cat.SellingPrice * 1000 / cat.WeightKg
		}

		fmt.Fprintf(&sb, "%s,%d,%s,%s,%.2f,%.2f,%.2f%s",
			recordKindItem, row.FiscalYear, code, qty,
			unitMaterial, unitSelling, cat.SellingPrice, lineSeparator)
	}

	return sb.String()
}
