package calc

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pebworks/steelquote-backend/internal/bom"
	"github.com/pebworks/steelquote-backend/internal/engineering"
	product "github.com/pebworks/steelquote-backend/internal/products"
	"github.com/pebworks/steelquote-backend/pkg/db/models"
	"github.com/pebworks/steelquote-backend/pkg/enums"
)

// catalogSource serves the default catalog without a database.
type catalogSource struct {
	byCode map[string]*models.Product
}

func newCatalogSource() *catalogSource {
	rows := product.DefaultCatalog()
	byCode := make(map[string]*models.Product, len(rows))
	for i := range rows {
		byCode[rows[i].Code] = &rows[i]
	}
	return &catalogSource{byCode: byCode}
}

func (s *catalogSource) FindProduct(_ context.Context, code string) (*models.Product, error) {
	return s.byCode[strings.ToUpper(strings.TrimSpace(code))], nil
}

func sampleInput() *Input {
	return &Input{
		Spans:      "1@28.5",
		Bays:       "5@9.144",
		EaveHeight: 7.5,
		RoofSlope:  1,
		DeadLoad:   0.1,
		LiveLoad:   0.57,

		PersonnelDoors: 2,
		Windows:        4,
		PackingCharge:  1800,
		FreightCharge:  5200,
	}
}

func firstDataRow(items []bom.Item, code string) *bom.Item {
	for i := range items {
		if items[i].IsData() && items[i].Code == code {
			return &items[i]
		}
	}
	return nil
}

func TestRun_MainFrameWeight(t *testing.T) {
	result, err := Run(context.Background(), sampleInput(), newCatalogSource())
	require.NoError(t, err)

	c := BuildContext(sampleInput())
	wplm := engineering.MainFrameWeightPerMeter(0.67, 9.144, 28.5, DefaultMinThickness)
	wantKg := wplm * (c.Dim.RafterLength + 2*7.5) * 4

	row := firstDataRow(result.Items, "BUPLT")
	require.NotNil(t, row)
	assert.Equal(t, enums.UnitKilogram, row.Unit)
	assert.InDelta(t, wantKg, row.TotalWeight, 1e-6)
	assert.InDelta(t, wantKg, row.Quantity, 1e-6)
}

func TestRun_PurlinSelectionAndTotals(t *testing.T) {
	result, err := Run(context.Background(), sampleInput(), newCatalogSource())
	require.NoError(t, err)

	// PDIndex = 1.25 * 0.67 * 9.144^2 selects Z25G.
	row := firstDataRow(result.Items, "Z25G")
	require.NotNil(t, row)
	assert.Equal(t, enums.UnitMeter, row.Unit)
	assert.InDelta(t, row.UnitWeight*row.Size*row.Quantity, row.TotalWeight, 1e-9)
	assert.InDelta(t, row.UnitPrice*row.Size*row.Quantity, row.TotalPrice, 1e-9)
	assert.InDelta(t, 5*9.144, row.Size, 1e-9)
}

func TestRun_SummaryMatchesItems(t *testing.T) {
	result, err := Run(context.Background(), sampleInput(), newCatalogSource())
	require.NoError(t, err)

	var weight, price float64
	var count int
	for _, item := range result.Items {
		if !item.IsData() {
			continue
		}
		count++
		weight += item.TotalWeight
		price += item.TotalPrice
	}
	assert.Equal(t, count, result.Summary.ItemCount)
	assert.InDelta(t, weight, result.Summary.TotalWeight, 1e-6)
	assert.InDelta(t, price, result.Summary.TotalPrice, 1e-6)
	assert.Greater(t, result.Summary.TotalWeight, 0.0)
}

func TestRun_IsDeterministic(t *testing.T) {
	a, err := Run(context.Background(), sampleInput(), newCatalogSource())
	require.NoError(t, err)
	b, err := Run(context.Background(), sampleInput(), newCatalogSource())
	require.NoError(t, err)
	assert.Equal(t, a.Items, b.Items)
	assert.Equal(t, a.Summary, b.Summary)
}

func TestRun_LumpSumCharges(t *testing.T) {
	result, err := Run(context.Background(), sampleInput(), newCatalogSource())
	require.NoError(t, err)

	packing := firstDataRow(result.Items, "PACKG")
	require.NotNil(t, packing)
	assert.Equal(t, "Q", packing.CostCode)
	assert.Zero(t, packing.TotalWeight)
	assert.Equal(t, 1800.0, packing.TotalPrice)
	assert.Equal(t, 1800.0, packing.TotalCost())

	freight := firstDataRow(result.Items, "FRGHT")
	require.NotNil(t, freight)
	assert.Equal(t, 5200.0, freight.TotalPrice)
}

func TestRun_AddonsAppendAfterSeparator(t *testing.T) {
	input := sampleInput()
	input.Crane = &CraneInput{Capacity: 10, RailCenters: 16, Duty: enums.CraneDutyMedium}

	result, err := Run(context.Background(), input, newCatalogSource())
	require.NoError(t, err)

	// CBIndex = 10 * 9.144 * 4 * 1.1 ≈ 402 selects CB310.
	index := engineering.CraneBeamIndex(10, 9.144, 16, enums.CraneDutyMedium)
	beam := engineering.SelectCraneBeam(index, 9.144)
	assert.Equal(t, "CB310", beam.Code)

	row := firstDataRow(result.Items, beam.Code)
	require.NotNil(t, row)
	assert.Equal(t, salesCodeCrane, row.SalesCode)

	var separators int
	for _, item := range result.Items {
		if item.Kind == bom.KindSeparator {
			separators++
		}
	}
	assert.Equal(t, 1, separators)
}

func TestRunAddon_CraneOnly(t *testing.T) {
	input := sampleInput()
	input.Crane = &CraneInput{Capacity: 10, RailCenters: 16, Duty: enums.CraneDutyMedium}

	result, err := RunAddon(context.Background(), enums.AddonCrane, input, newCatalogSource())
	require.NoError(t, err)
	require.NotEmpty(t, result.Items)
	for _, item := range result.Items {
		if item.IsData() {
			assert.Equal(t, salesCodeCrane, item.SalesCode)
		}
	}
	assert.Nil(t, firstDataRow(result.Items, "BUPLT"))

	_, err = RunAddon(context.Background(), enums.AddonKind("bogus"), input, newCatalogSource())
	require.Error(t, err)
}

func monitorInput(eave enums.MonitorEave, frame enums.MonitorFrame, opening float64) *Input {
	input := sampleInput()
	input.RoofMonitor = &RoofMonitorInput{
		Width: 3, Length: 18, ThroatHeight: 1.2,
		OpeningWidth: Number(opening), Eave: eave, Frame: frame,
	}
	return input
}

func TestRoofMonitor_EaveFrameVariants(t *testing.T) {
	tests := []struct {
		name      string
		eave      enums.MonitorEave
		frame     enums.MonitorFrame
		frameCode string
		sheeted   bool
	}{
		{"sheeted cold formed", enums.MonitorEaveSheeted, enums.MonitorColdFormed, "RMCFF", true},
		{"sheeted hot rolled", enums.MonitorEaveSheeted, enums.MonitorHotRolled, "RMHRF", true},
		{"open cold formed", enums.MonitorEaveOpen, enums.MonitorColdFormed, "RMCFF", false},
		{"open hot rolled", enums.MonitorEaveOpen, enums.MonitorHotRolled, "RMHRF", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := monitorInput(tt.eave, tt.frame, 900)
			result, err := RunAddon(context.Background(), enums.AddonRoofMonitor, input, newCatalogSource())
			require.NoError(t, err)
			require.NotNil(t, firstDataRow(result.Items, tt.frameCode))

			panel := firstDataRow(result.Items, DefaultWallPanel)
			louver := firstDataRow(result.Items, "LOUVR")
			if tt.sheeted {
				require.NotNil(t, panel)
				assert.InDelta(t, 2*18*1.2, panel.Quantity, 1e-9)
				assert.Nil(t, louver)
			} else {
				assert.Nil(t, panel)
				require.NotNil(t, louver)
				assert.InDelta(t, math.Ceil(2*18/MonitorLouverWidth), louver.Quantity, 1e-9)
			}
		})
	}
}

func TestRoofMonitor_WideOpeningForcesHotRolled(t *testing.T) {
	for _, eave := range []enums.MonitorEave{enums.MonitorEaveSheeted, enums.MonitorEaveOpen} {
		input := monitorInput(eave, enums.MonitorColdFormed, 1200)
		result, err := RunAddon(context.Background(), enums.AddonRoofMonitor, input, newCatalogSource())
		require.NoError(t, err)
		assert.NotNil(t, firstDataRow(result.Items, "RMHRF"), "eave %s", eave)
		assert.Nil(t, firstDataRow(result.Items, "RMCFF"), "eave %s", eave)
	}
}

func TestRoofMonitor_ColdFormedAtLimit(t *testing.T) {
	input := monitorInput(enums.MonitorEaveSheeted, enums.MonitorColdFormed, 1000)
	result, err := RunAddon(context.Background(), enums.AddonRoofMonitor, input, newCatalogSource())
	require.NoError(t, err)
	assert.NotNil(t, firstDataRow(result.Items, "RMCFF"))
	assert.Nil(t, firstDataRow(result.Items, "RMHRF"))
}

func TestEndwallGirts_ContinuousOverBearingPosts(t *testing.T) {
	input := sampleInput()

	// Bearing endwall posts make the girt run continuous:
	// 0.65 * 0.67 * (0.6*9.144)^2 lands on the Z15G rung.
	bearing := bom.NewBuilder(newCatalogSource())
	require.NoError(t, LeftEndwall(context.Background(), BuildContext(input), bearing))
	assert.NotNil(t, firstDataRow(bearing.Items(), "Z15G"))

	// A rigid endwall has no posts, so the simple-span factor applies:
	// 1.25 * 0.67 * (0.6*9.144)^2 selects Z18G instead.
	input.LeftEndwall = enums.EndwallRigid
	rigid := bom.NewBuilder(newCatalogSource())
	require.NoError(t, LeftEndwall(context.Background(), BuildContext(input), rigid))
	assert.NotNil(t, firstDataRow(rigid.Items(), "Z18G"))
	assert.Nil(t, firstDataRow(rigid.Items(), "Z15G"))
}

func TestRun_SkylightCarveOut(t *testing.T) {
	input := sampleInput()
	input.SkylightPct = 10

	result, err := Run(context.Background(), input, newCatalogSource())
	require.NoError(t, err)

	roof := firstDataRow(result.Items, DefaultRoofPanel)
	require.NotNil(t, roof)
	sky := firstDataRow(result.Items, "SKY25")
	require.NotNil(t, sky)

	c := BuildContext(input)
	assert.InDelta(t, c.Dim.RoofArea*0.9, roof.Quantity, 1e-6)
	assert.InDelta(t, c.Dim.RoofArea*0.1, sky.Quantity, 1e-6)
}

func TestRun_FixedBaseUpsizesAnchors(t *testing.T) {
	pinned, err := Run(context.Background(), sampleInput(), newCatalogSource())
	require.NoError(t, err)
	assert.NotNil(t, firstDataRow(pinned.Items, "ABOLT"))
	assert.Nil(t, firstDataRow(pinned.Items, "ABT30"))

	input := sampleInput()
	input.BaseType = enums.BaseFixed

	fixed, err := Run(context.Background(), input, newCatalogSource())
	require.NoError(t, err)
	// Width 28.5 selects the 6-bolt M27 base; M27 rides the M30 row.
	row := firstDataRow(fixed.Items, "ABT30")
	require.NotNil(t, row)
	assert.InDelta(t, float64(6*2*6), row.Quantity, 1e-9)
}

func TestRun_UnknownAccessoryDegradesToZeroCostRow(t *testing.T) {
	input := sampleInput()
	input.Accessories = []AccessoryInput{{Code: "CUSTM", Quantity: 3}}

	result, err := Run(context.Background(), input, newCatalogSource())
	require.NoError(t, err)

	row := firstDataRow(result.Items, "CUSTM")
	require.NotNil(t, row)
	assert.Zero(t, row.TotalPrice)
	assert.Zero(t, row.TotalWeight)
}

func TestPurlinLineCount(t *testing.T) {
	c := BuildContext(sampleInput())
	want := int(math.Ceil(c.Dim.RafterLength/PurlinSpacing)) + 1
	assert.Equal(t, want, purlinLineCount(c))
	assert.Equal(t, 5, girtLineCount(c))
}
