// Package bom builds the ordered bill of materials for one calculation
// pass. A Builder is owned by a single pass and never shared; line numbers
// are local to the Builder instance.
package bom

import (
	"context"

	"github.com/pebworks/steelquote-backend/pkg/db/models"
	"github.com/pebworks/steelquote-backend/pkg/enums"
)

// RowKind discriminates the three row variants so downstream consumers can
// switch exhaustively instead of probing sentinel strings.
type RowKind int

const (
	KindData RowKind = iota
	KindHeader
	KindSeparator
)

// SeparatorCode is the legacy sentinel accepted by AddCode for callers that
// still drive the Builder with code strings.
const SeparatorCode = "-"

// Item is one row of the bill of materials. Size carries a unit-dependent
// meaning: length in meters for unit M, unused for the count units, and for
// KG the quantity itself is the weight. Cost fields are per-unit rates from
// the product master; extended values come from Multiplier.
type Item struct {
	LineNumber        int             `json:"line_number"`
	Kind              RowKind         `json:"kind"`
	Code              string          `json:"code"`
	SalesCode         int             `json:"sales_code"`
	CostCode          string          `json:"cost_code"`
	Description       string          `json:"description"`
	Size              float64         `json:"size"`
	Unit              enums.Unit      `json:"unit"`
	Quantity          float64         `json:"quantity"`
	UnitWeight        float64         `json:"unit_weight"`
	TotalWeight       float64         `json:"total_weight"`
	UnitPrice         float64         `json:"unit_price"`
	TotalPrice        float64         `json:"total_price"`
	MaterialCost      float64         `json:"material_cost"`
	ManufacturingCost float64         `json:"manufacturing_cost"`
	OverheadCost      float64         `json:"overhead_cost"`
}

// IsData reports whether the row carries quantities, i.e. it is neither a
// header nor a separator and has a real product code.
func (i Item) IsData() bool {
	return i.Kind == KindData && i.Code != "" && i.Code != SeparatorCode
}

// Multiplier is the factor that extends a per-unit rate to the row total.
// Length-priced rows multiply by size; everything else is per piece.
func (i Item) Multiplier() float64 {
	if i.Unit == enums.UnitMeter {
		return i.Size * i.Quantity
	}
	return i.Quantity
}

// TotalCost is the extended book cost of the row.
func (i Item) TotalCost() float64 {
	return (i.MaterialCost + i.ManufacturingCost + i.OverheadCost) * i.Multiplier()
}

// Summary is the reduction of one bill of materials.
type Summary struct {
	ItemCount   int     `json:"item_count"`
	TotalWeight float64 `json:"total_weight"`
	TotalPrice  float64 `json:"total_price"`
}

// ProductSource resolves a product code. A nil product with a nil error
// means the code is unknown; the Builder turns that into a zero-cost row
// rather than failing the pass.
type ProductSource interface {
	FindProduct(ctx context.Context, code string) (*models.Product, error)
}

// Builder accumulates rows for one pass.
type Builder struct {
	source ProductSource
	items  []Item
	line   int
}

func NewBuilder(source ProductSource) *Builder {
	return &Builder{source: source}
}

// AddItem appends a prepared row, assigning the next line number.
func (b *Builder) AddItem(item Item) {
	b.line++
	item.LineNumber = b.line
	b.items = append(b.items, item)
}

// AddHeader appends a description-only row.
func (b *Builder) AddHeader(description string) {
	b.AddItem(Item{Kind: KindHeader, Description: description})
}

// AddSeparator appends a zero-cost delimiter row.
func (b *Builder) AddSeparator() {
	b.AddItem(Item{Kind: KindSeparator, Code: SeparatorCode})
}

// AddCode is the main entry point for calculators. A non-empty description
// emits a header row first; the separator sentinel emits a delimiter; an
// empty code is a no-op; anything else is resolved against the product
// master and appended as a costed data row. A lookup miss produces a row
// with zero weight and price so a partial bill is still usable for review.
func (b *Builder) AddCode(ctx context.Context, description, code string, salesCode int, size, quantity float64) error {
	if description != "" && code != SeparatorCode {
		b.AddHeader(description)
	}
	if code == SeparatorCode {
		b.AddSeparator()
		return nil
	}
	if code == "" {
		return nil
	}

	item := Item{
		Kind:      KindData,
		Code:      code,
		SalesCode: salesCode,
		Size:      size,
		Quantity:  quantity,
	}

	product, err := b.source.FindProduct(ctx, code)
	if err != nil {
		return err
	}
	if product != nil {
		item.Description = product.Description
		item.Unit = product.Unit
		item.CostCode = product.CostCode
		if item.SalesCode == 0 {
			item.SalesCode = product.SalesCode
		}
		item.UnitWeight = product.UnitWeight
		item.UnitPrice = product.UnitPrice
		item.MaterialCost = product.MaterialCost
		item.ManufacturingCost = product.ManufacturingCost
		item.OverheadCost = product.OverheadCost
	}
	if item.SalesCode == 0 {
		item.SalesCode = 1
	}

	switch item.Unit {
	case enums.UnitMeter:
		item.TotalWeight = item.UnitWeight * item.Size * item.Quantity
		item.TotalPrice = item.UnitPrice * item.Size * item.Quantity
	case enums.UnitKilogram:
		item.TotalWeight = item.Quantity
		item.TotalPrice = item.UnitPrice * item.Quantity
	default:
		item.TotalWeight = item.UnitWeight * item.Quantity
		item.TotalPrice = item.UnitPrice * item.Quantity
	}

	b.AddItem(item)
	return nil
}

// Items returns the accumulated rows in order.
func (b *Builder) Items() []Item {
	return b.items
}

// Merge appends another bill's rows, renumbering them so line numbers stay
// sequential across chained add-ons.
func (b *Builder) Merge(items []Item) {
	for _, item := range items {
		b.AddItem(item)
	}
}

// Summarize reduces the data rows to the running totals the estimation
// record carries.
func Summarize(items []Item) Summary {
	var s Summary
	for _, item := range items {
		if !item.IsData() {
			continue
		}
		s.ItemCount++
		s.TotalWeight += item.TotalWeight
		s.TotalPrice += item.TotalPrice
	}
	return s
}
