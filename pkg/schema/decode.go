package schema

import (
	"fmt"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Decode converts a generic map (as produced by YAML or JSON decoders) into a
// Definition. Unknown keys and fractional values are rejected.
func Decode(raw map[string]any) (*Definition, error) {
	var def Definition

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &def,
		ErrorUnused: true,
		DecodeHook:  mapstructure.DecodeHookFuncKind(integralHook),
		TagName:     "mapstructure",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode definition: %w", err)
	}
	return &def, nil
}

// integralHook refuses to truncate floats such as 4.5 into int fields, and refuses
// values that do not fit an int instead of letting the conversion wrap.
// JSON numbers decode as float64, so whole numbers must still pass. YAML integers
// beyond int64 arrive as uint64 or float64.
func integralHook(from, to reflect.Kind, data any) (any, error) {
	if to != reflect.Int {
		return data, nil
	}

	switch from {
	case reflect.Float64, reflect.Float32:
		f := reflect.ValueOf(data).Float()
		if f != math.Trunc(f) {
			return nil, fmt.Errorf("expected an integer, got %v", data)
		}
		// float64(math.MaxInt) rounds up to 2^63, so the upper bound is exclusive.
		if f < math.MinInt || f >= -float64(math.MinInt) {
			return nil, fmt.Errorf("integer out of range, got %v", data)
		}
		return int(f), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if u := reflect.ValueOf(data).Uint(); u > math.MaxInt {
			return nil, fmt.Errorf("integer out of range, got %v", data)
		}
		return data, nil
	default:
		return data, nil
	}
}
