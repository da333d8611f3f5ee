package numeric

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Strips everything that cannot be part of a plain decimal number:
// currency symbols, thousands separators, stray text.
var nonNumericRe = regexp.MustCompile(`[^0-9.\-]`)

// Sanitize coerces an arbitrary value into a finite float64. Numbers pass
// through when finite; strings are cleaned of currency symbols and commas
// before parsing; everything else (nil, unparsable, NaN, Inf) collapses to 0.
// Sanitize never fails; it is the uniform boundary between untrusted request
// data and monetary arithmetic.
func Sanitize(v interface{}) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case float64:
		return finite(x)
	case float32:
		return finite(float64(x))
	case int:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case json.Number:
		return FromString(x.String())
	case string:
		return FromString(x)
	case bool:
		if x {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// FromString parses a numeric string that may carry currency symbols,
// commas or surrounding text ("Rs 1,250.50" -> 1250.5). Unparsable input
// yields 0.
func FromString(s string) float64 {
	cleaned := nonNumericRe.ReplaceAllString(strings.TrimSpace(s), "")
	if cleaned == "" || cleaned == "-" || cleaned == "." {
		return 0
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return finite(f)
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Amount is a float64 that unmarshals tolerantly: JSON numbers, quoted
// numeric strings ("1,250"), null and garbage all decode without error,
// falling back to 0 via Sanitize. Request DTOs use it for every monetary
// and quantity field.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		*a = 0
		return nil
	}
	*a = Amount(Sanitize(v))
	return nil
}

func (a Amount) Float64() float64 {
	return float64(a)
}
