package calc

import (
	"context"

	"github.com/pebworks/steelquote-backend/internal/bom"
	"github.com/pebworks/steelquote-backend/pkg/enums"
)

// lumpSumSalesCode groups the charge lines away from the material groups.
const lumpSumSalesCode = 9

// addLumpSum appends a weightless charge row at face value. The catalog row
// supplies the description and category; the amount comes from the input.
func addLumpSum(ctx context.Context, b *bom.Builder, source bom.ProductSource, code, costCode string, amount float64) error {
	if amount <= 0 {
		return nil
	}

	item := bom.Item{
		Kind:         bom.KindData,
		Code:         code,
		SalesCode:    lumpSumSalesCode,
		CostCode:     costCode,
		Unit:         enums.UnitSet,
		Quantity:     1,
		UnitPrice:    amount,
		TotalPrice:   amount,
		MaterialCost: amount,
	}
	product, err := source.FindProduct(ctx, code)
	if err != nil {
		return err
	}
	if product != nil {
		item.Description = product.Description
		item.CostCode = product.CostCode
	}
	b.AddItem(item)
	return nil
}

// HandlingPacking closes the pass with the lump-sum charge lines.
func HandlingPacking(ctx context.Context, c *Context, b *bom.Builder, source bom.ProductSource) error {
	if err := addLumpSum(ctx, b, source, codePacking, "Q", c.Input.PackingCharge.F()); err != nil {
		return err
	}
	if err := addLumpSum(ctx, b, source, codeFreight, "Q", c.Input.FreightCharge.F()); err != nil {
		return err
	}
	return addLumpSum(ctx, b, source, codeErection, "T", c.Input.ErectionCharge.F())
}
