package calc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/pebworks/steelquote-backend/pkg/errors"
)

func TestNumber_CoercesLegacyInput(t *testing.T) {
	var doc struct {
		A Number `json:"a"`
		B Number `json:"b"`
		C Number `json:"c"`
		D Number `json:"d"`
	}
	raw := `{"a": 6.5, "b": "7.25", "c": "n/a", "d": null}`
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, 6.5, doc.A.F())
	assert.Equal(t, 7.25, doc.B.F())
	assert.Zero(t, doc.C.F())
	assert.Zero(t, doc.D.F())
}

func TestParseInput_EmptyIsPreconditionFailure(t *testing.T) {
	for _, raw := range []string{"", "  ", "{}", "null"} {
		_, err := ParseInput(raw)
		require.Error(t, err, "raw %q", raw)
		assert.Equal(t, pkgerrors.CodeStateConflict, pkgerrors.As(err).Code())
	}
}

func TestParseInput_MalformedIsValidationFailure(t *testing.T) {
	_, err := ParseInput("{not json")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestParseInput_NotationAndAddons(t *testing.T) {
	raw := `{
		"spans": "1@28.5",
		"bays": "5x9.144",
		"eave_height": "7.5",
		"dead_load": 0.1,
		"live_load": 0.57,
		"crane": {"capacity": 10, "rail_centers": "16", "duty": "M"}
	}`
	input, err := ParseInput(raw)
	require.NoError(t, err)
	assert.Equal(t, "1@28.5", input.Spans)
	assert.Equal(t, 7.5, input.EaveHeight.F())
	require.NotNil(t, input.Crane)
	assert.Equal(t, 16.0, input.Crane.RailCenters.F())
	assert.Nil(t, input.Mezzanine)
}
