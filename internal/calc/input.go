// Package calc runs one estimation calculation pass: it parses the building
// input, derives dimensions and loads, invokes the component calculators in
// a fixed order, and reduces the resulting bill of materials to a summary.
package calc

import (
	"encoding/json"
	"strings"

	pkgerrors "github.com/pebworks/steelquote-backend/pkg/errors"

	"github.com/pebworks/steelquote-backend/internal/dimension"
	"github.com/pebworks/steelquote-backend/pkg/enums"
)

// Number is a float that tolerates legacy spreadsheet input: JSON numbers,
// numeric strings, and garbage all decode, with non-numeric values coercing
// to zero instead of failing the whole document.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		*n = 0
		return nil
	}
	switch t := v.(type) {
	case float64:
		*n = Number(t)
	case string:
		*n = Number(dimension.ParseNumber(t))
	default:
		*n = 0
	}
	return nil
}

// F returns the plain float value.
func (n Number) F() float64 {
	return float64(n)
}

// MezzanineInput describes an intermediate floor add-on.
type MezzanineInput struct {
	Spans    string `json:"spans"`
	Bays     string `json:"bays"`
	Height   Number `json:"height"`
	LiveLoad Number `json:"live_load"`
	DeckCode string `json:"deck_code"`
}

// CraneInput describes a top-running crane runway add-on.
type CraneInput struct {
	Capacity    Number          `json:"capacity"`
	RailCenters Number          `json:"rail_centers"`
	Duty        enums.CraneDuty `json:"duty"`
}

// CanopyInput describes a canopy, fascia, or roof extension add-on.
type CanopyInput struct {
	Style  enums.CanopyStyle `json:"style"`
	Width  Number            `json:"width"`
	Length Number            `json:"length"`
}

// PartitionInput describes an interior partition wall add-on.
type PartitionInput struct {
	Length    Number `json:"length"`
	Height    Number `json:"height"`
	PanelCode string `json:"panel_code"`
}

// RoofMonitorInput describes a ridge monitor add-on. Eave and Frame together
// select one of four takeoff variants. OpeningWidth is in millimeters; past
// 1000 the cold-formed frame variants are forced to hot rolled regardless of
// the requested frame type.
type RoofMonitorInput struct {
	Width        Number             `json:"width"`
	Length       Number             `json:"length"`
	ThroatHeight Number             `json:"throat_height"`
	OpeningWidth Number             `json:"opening_width"`
	Eave         enums.MonitorEave  `json:"eave"`
	Frame        enums.MonitorFrame `json:"frame"`
}

// LinerInput describes interior liner panel coverage.
type LinerInput struct {
	RoofArea Number `json:"roof_area"`
	WallArea Number `json:"wall_area"`
}

// AccessoryInput is one buyout line keyed by product code.
type AccessoryInput struct {
	Code     string `json:"code"`
	Quantity Number `json:"quantity"`
}

// Input is the flat building record stored in an estimation's input data.
// Notation fields (Spans, Bays) carry the legacy dimension syntax.
type Input struct {
	Spans          string            `json:"spans"`
	Bays           string            `json:"bays"`
	EaveHeight     Number            `json:"eave_height"`
	RoofSlope      Number            `json:"roof_slope"`
	DeadLoad       Number            `json:"dead_load"`
	LiveLoad       Number            `json:"live_load"`
	CollateralLoad Number            `json:"collateral_load"`
	WindSpeed      Number            `json:"wind_speed"`
	MinThickness   Number            `json:"min_thickness"`
	BaseType       enums.BaseType    `json:"base_type"`
	LeftEndwall    enums.EndwallType `json:"left_endwall"`
	RightEndwall   enums.EndwallType `json:"right_endwall"`
	BracingType    enums.BracingType `json:"bracing_type"`
	RoofPanelCode  string            `json:"roof_panel_code"`
	WallPanelCode  string            `json:"wall_panel_code"`
	SkylightPct    Number            `json:"skylight_pct"`

	PersonnelDoors Number `json:"personnel_doors"`
	SlidingDoors   Number `json:"sliding_doors"`
	Windows        Number `json:"windows"`
	Louvers        Number `json:"louvers"`
	RidgeVentLen   Number `json:"ridge_vent_length"`

	PackingCharge  Number `json:"packing_charge"`
	FreightCharge  Number `json:"freight_charge"`
	ErectionCharge Number `json:"erection_charge"`

	Mezzanine   *MezzanineInput   `json:"mezzanine,omitempty"`
	Crane       *CraneInput       `json:"crane,omitempty"`
	Canopy      *CanopyInput      `json:"canopy,omitempty"`
	Partition   *PartitionInput   `json:"partition,omitempty"`
	RoofMonitor *RoofMonitorInput `json:"roof_monitor,omitempty"`
	Liner       *LinerInput       `json:"liner,omitempty"`

	Accessories []AccessoryInput `json:"accessories,omitempty"`
}

// ParseInput decodes the stored input document. An empty document is a
// precondition failure: calculation must not start without building data.
func ParseInput(raw string) (*Input, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "{}" || trimmed == "null" {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "estimation has no input data")
	}
	var input Input
	if err := json.Unmarshal([]byte(trimmed), &input); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "malformed input data")
	}
	return &input, nil
}
