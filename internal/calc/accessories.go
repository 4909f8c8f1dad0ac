package calc

import (
	"context"

	"github.com/pebworks/steelquote-backend/internal/bom"
)

// Accessories takes off the buyout items: doors, windows, louvers, ridge
// ventilators, and the free-form accessory lines. Unknown accessory codes
// still produce rows so the estimator can see what failed to price.
func Accessories(ctx context.Context, c *Context, b *bom.Builder) error {
	header := "DOORS, WINDOWS & ACCESSORIES"
	emit := func(code string, size, qty float64) error {
		if qty <= 0 {
			return nil
		}
		err := b.AddCode(ctx, header, code, 3, size, qty)
		header = ""
		return err
	}

	if err := emit(codePersonnelDoor, 0, c.Input.PersonnelDoors.F()); err != nil {
		return err
	}
	if err := emit(codeSlidingDoor, 0, c.Input.SlidingDoors.F()); err != nil {
		return err
	}
	if err := emit(codeWindow, 0, c.Input.Windows.F()); err != nil {
		return err
	}
	if err := emit(codeLouver, 0, c.Input.Louvers.F()); err != nil {
		return err
	}
	if ventLen := c.Input.RidgeVentLen.F(); ventLen > 0 {
		if err := emit(codeRidgeVent, ventLen, 1); err != nil {
			return err
		}
	}

	for _, acc := range c.Input.Accessories {
		if err := emit(acc.Code, 0, acc.Quantity.F()); err != nil {
			return err
		}
	}
	return nil
}
