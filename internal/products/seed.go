package product

import (
	"context"

	"github.com/pebworks/steelquote-backend/pkg/db/models"
	"github.com/pebworks/steelquote-backend/pkg/enums"
)

// DefaultCatalog returns the starter product master. Rates are per unit of
// measure: per meter for M, per square meter for M2, per kilogram for KG,
// per piece for the count units.
func DefaultCatalog() []models.Product {
	p := func(code, desc string, unit enums.Unit, uw, mat, manu, ovh, price float64, costCode string, salesCode int, erp string) models.Product {
		return models.Product{
			Code: code, Description: desc, Unit: unit,
			UnitWeight: uw, MaterialCost: mat, ManufacturingCost: manu, OverheadCost: ovh,
			UnitPrice: price, CostCode: costCode, SalesCode: salesCode, ErpCode: erp,
			IsActive: true,
		}
	}

	return []models.Product{
		// Primary steel, bought and fabricated by weight.
		p("BUPLT", "Built-Up Section, Welded Plate", enums.UnitKilogram, 1, 0.92, 0.26, 0.11, 1.78, "A", 1, "100101"),
		p("BUEWC", "Built-Up Endwall Column", enums.UnitKilogram, 1, 0.92, 0.29, 0.11, 1.82, "A", 1, "100102"),
		p("CBBU", "Built-Up Crane Beam", enums.UnitKilogram, 1, 0.95, 0.31, 0.12, 1.95, "A", 4, "100103"),
		p("MZBM", "Mezzanine Beam, Hot Rolled", enums.UnitKilogram, 1, 0.98, 0.22, 0.1, 1.84, "A", 5, "100104"),
		p("MZCOL", "Mezzanine Column, Hot Rolled", enums.UnitKilogram, 1, 0.98, 0.22, 0.1, 1.84, "A", 5, "100105"),
		p("RMHRF", "Roof Monitor Frame, Hot Rolled", enums.UnitKilogram, 1, 0.96, 0.3, 0.11, 1.9, "A", 6, "100106"),
		p("PRTBR", "Portal Bracing Frame", enums.UnitKilogram, 1, 0.94, 0.28, 0.11, 1.86, "A", 1, "100107"),

		// Cold-formed secondary members, priced per meter.
		p("Z15G", "Z Section 150x1.5", enums.UnitMeter, 3.95, 3.1, 0.55, 0.24, 5.4, "B", 1, "100201"),
		p("Z18G", "Z Section 180x1.8", enums.UnitMeter, 4.75, 3.72, 0.62, 0.28, 6.45, "B", 1, "100202"),
		p("Z20G", "Z Section 200x2.0", enums.UnitMeter, 5.85, 4.58, 0.68, 0.33, 7.9, "B", 1, "100203"),
		p("Z25G", "Z Section 250x2.5", enums.UnitMeter, 7.35, 5.76, 0.77, 0.4, 9.85, "B", 1, "100204"),
		p("Z25H", "Z Section 250x3.0", enums.UnitMeter, 8.9, 6.97, 0.84, 0.47, 11.9, "B", 1, "100205"),
		p("BUP20", "Built-Up Purlin 200", enums.UnitMeter, 11.2, 8.85, 1.25, 0.61, 15.3, "B", 1, "100206"),
		p("EAVST", "Eave Strut 200x2.0", enums.UnitMeter, 6.1, 4.8, 0.72, 0.34, 8.35, "B", 1, "100207"),
		p("RMCFF", "Roof Monitor Frame, Cold Formed", enums.UnitMeter, 6.4, 5.02, 0.74, 0.36, 8.7, "B", 6, "100208"),
		p("MZJST", "Mezzanine Joist, Cold Formed", enums.UnitMeter, 7.8, 6.1, 0.82, 0.42, 10.4, "B", 5, "100209"),

		// Bracing and crane rolled sections.
		p("RODBR", "Rod Bracing Dia 25", enums.UnitMeter, 3.85, 2.88, 0.48, 0.22, 5.1, "C", 1, "100301"),
		p("CABBR", "Cable Bracing Dia 12", enums.UnitMeter, 0.9, 1.95, 0.3, 0.12, 3.4, "C", 1, "100302"),
		p("CB250", "Crane Beam UB 250", enums.UnitMeter, 37.3, 28.4, 3.2, 1.9, 46.5, "C", 4, "100303"),
		p("CB310", "Crane Beam UB 310", enums.UnitMeter, 46.2, 35.1, 3.6, 2.3, 57.2, "C", 4, "100304"),
		p("CB360", "Crane Beam UB 360", enums.UnitMeter, 56.1, 42.6, 4.1, 2.8, 69.4, "C", 4, "100305"),
		p("CB410", "Crane Beam UB 410", enums.UnitMeter, 67.2, 51.0, 4.7, 3.3, 82.9, "C", 4, "100306"),
		p("CB460", "Crane Beam UB 460", enums.UnitMeter, 82.1, 62.3, 5.4, 4.0, 101.2, "C", 4, "100307"),
		p("CRNRL", "Crane Rail A55", enums.UnitMeter, 31.8, 24.6, 2.1, 1.5, 39.8, "C", 4, "100308"),

		// Anchorage and fasteners.
		p("ABOLT", "Anchor Bolt M24x600", enums.UnitEach, 2.4, 3.15, 0.6, 0.25, 5.6, "D", 1, "100401"),
		p("ABT30", "Anchor Bolt M30x750", enums.UnitEach, 4.3, 5.4, 0.85, 0.4, 9.2, "D", 1, "100402"),
		p("ABT36", "Anchor Bolt M36x900", enums.UnitEach, 7.2, 8.6, 1.2, 0.6, 14.5, "D", 1, "100403"),
		p("SDS55", "Self Drilling Screw 5.5x32", enums.UnitEach, 0.02, 0.05, 0.01, 0.01, 0.11, "E", 1, "100501"),
		p("SDS63", "Self Drilling Screw 6.3x75", enums.UnitEach, 0.03, 0.07, 0.01, 0.01, 0.14, "E", 1, "100502"),
		p("MBOLT", "Machine Bolt M20 HSFG", enums.UnitEach, 0.35, 0.48, 0.08, 0.04, 0.85, "E", 1, "100503"),
		p("CLIPP", "Purlin Clip 4mm", enums.UnitEach, 0.6, 0.52, 0.14, 0.06, 1.05, "E", 1, "100504"),
		p("SAGRD", "Sag Rod Dia 16", enums.UnitEach, 1.9, 1.65, 0.32, 0.14, 3.05, "E", 1, "100505"),
		p("FOAMC", "Foam Closure Strip", enums.UnitMeter, 0.05, 0.38, 0.05, 0.03, 0.68, "E", 1, "100506"),

		// Sheeting, priced per square meter.
		p("PNLR45", "Roof Panel 0.45 AZ150", enums.UnitSquareMeter, 4.35, 5.85, 0.65, 0.35, 9.8, "F", 2, "100601"),
		p("PNLR50", "Roof Panel 0.50 AZ150", enums.UnitSquareMeter, 4.85, 6.5, 0.68, 0.38, 10.8, "F", 2, "100602"),
		p("SKY25", "Polycarbonate Skylight 2.5", enums.UnitSquareMeter, 3.0, 9.2, 0.7, 0.45, 14.6, "F", 2, "100603"),
		p("PNLW45", "Wall Panel 0.45 AZ150", enums.UnitSquareMeter, 4.35, 5.85, 0.65, 0.35, 9.6, "G", 2, "100701"),
		p("PNLW50", "Wall Panel 0.50 AZ150", enums.UnitSquareMeter, 4.85, 6.5, 0.68, 0.38, 10.6, "G", 2, "100702"),
		p("LINP35", "Liner Panel 0.35", enums.UnitSquareMeter, 3.4, 4.6, 0.58, 0.3, 7.9, "J", 2, "101001"),
		p("MZDCK", "Mezzanine Deck Panel 0.75", enums.UnitSquareMeter, 8.1, 9.4, 0.92, 0.55, 15.2, "F", 5, "100604"),

		// Trim, flashing, rainware, priced per meter.
		p("TRMEV", "Eave Trim 0.45", enums.UnitMeter, 1.35, 1.82, 0.28, 0.13, 3.2, "H", 2, "100801"),
		p("TRMGB", "Gable Trim 0.45", enums.UnitMeter, 1.35, 1.82, 0.28, 0.13, 3.2, "H", 2, "100802"),
		p("TRMCR", "Corner Trim 0.45", enums.UnitMeter, 1.2, 1.64, 0.26, 0.12, 2.9, "H", 2, "100803"),
		p("TRMRD", "Ridge Cap 0.45", enums.UnitMeter, 1.6, 2.1, 0.31, 0.15, 3.7, "H", 2, "100804"),
		p("GUTTR", "Eave Gutter 0.58", enums.UnitMeter, 2.45, 3.25, 0.44, 0.21, 5.6, "H", 2, "100805"),
		p("DWNSP", "Downspout 0.58", enums.UnitMeter, 1.95, 2.6, 0.38, 0.18, 4.5, "H", 2, "100806"),

		// Doors, windows, ventilation.
		p("PDOOR", "Personnel Door 1.0x2.1", enums.UnitSet, 58, 172, 24, 12, 295, "I", 3, "100901"),
		p("SLDDR", "Sliding Door 4.0x4.0", enums.UnitSet, 420, 930, 120, 65, 1580, "I", 3, "100902"),
		p("WINDW", "Window 1.2x1.2 Aluminum", enums.UnitSet, 22, 118, 15, 8, 198, "I", 3, "100903"),
		p("LOUVR", "Fixed Louver 0.6x0.6", enums.UnitSet, 8, 46, 7, 4, 82, "I", 3, "100904"),
		p("RIDGV", "Ridge Ventilator 300mm", enums.UnitMeter, 6.2, 14.8, 1.9, 1.0, 24.5, "I", 3, "100905"),

		// Lump-sum charges carried as catalog rows.
		p("PACKG", "Packing and Wrapping", enums.UnitSet, 0, 0, 0, 0, 0, "Q", 9, "109901"),
		p("FRGHT", "Inland Freight", enums.UnitSet, 0, 0, 0, 0, 0, "Q", 9, "109902"),
		p("ERECT", "Erection, Supervision Only", enums.UnitSet, 0, 0, 0, 0, 0, "T", 9, "109903"),
	}
}

// SeedDefaults loads the starter catalog, refreshing existing rows.
func SeedDefaults(ctx context.Context, repo *Repository) error {
	return repo.UpsertAll(ctx, DefaultCatalog())
}
