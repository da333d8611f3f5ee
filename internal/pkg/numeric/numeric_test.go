package numeric

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		name string
		in   interface{}
		want float64
	}{
		{"plain number", 1250.5, 1250.5},
		{"int", 42, 42.0},
		{"nil", nil, 0.0},
		{"numeric string", "1250", 1250.0},
		{"comma separated", "1,250", 1250.0},
		{"currency prefix", "Rs 1,250.50", 1250.5},
		{"garbage", "abc", 0.0},
		{"empty string", "", 0.0},
		{"negative string", "-75.25", -75.25},
		{"nan", math.NaN(), 0.0},
		{"positive inf", math.Inf(1), 0.0},
		{"bool true", true, 1.0},
		{"unsupported type", []string{"x"}, 0.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Sanitize(tc.in))
		})
	}
}

func TestAmountUnmarshal(t *testing.T) {
	var payload struct {
		Basic    Amount `json:"basic"`
		Overtime Amount `json:"overtime"`
		Food     Amount `json:"food"`
		Medical  Amount `json:"medical"`
	}

	body := []byte(`{"basic": "88,000", "overtime": 10, "food": null, "medical": "abc"}`)
	require.NoError(t, json.Unmarshal(body, &payload))

	assert.Equal(t, 88000.0, payload.Basic.Float64())
	assert.Equal(t, 10.0, payload.Overtime.Float64())
	assert.Equal(t, 0.0, payload.Food.Float64())
	assert.Equal(t, 0.0, payload.Medical.Float64())
}
