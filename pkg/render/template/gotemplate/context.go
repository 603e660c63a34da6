package gotemplate

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/flosch/pongo2/v6"
)

// toContext converts arbitrary data into a pongo2.Context. Maps are walked
// so function values survive; everything else goes through JSON.
func toContext(data any) (pongo2.Context, error) {
	var in map[string]any
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		in = v
	case map[string]any:
		in = v
	default:
		decoded, err := roundTrip(v)
		if err != nil {
			return nil, err
		}
		m, ok := decoded.(map[string]any)
		if !ok {
			return pongo2.Context{"data": decoded}, nil
		}
		in = m
	}

	out := make(pongo2.Context, len(in))
	for key, value := range in {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		converted, err := toValue(value)
		if err != nil {
			return nil, err
		}
		out[key] = converted
	}
	return out, nil
}

func toValue(value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string, bool, float64, int:
		return v, nil
	case pongo2.Context:
		return toContext(v)
	case map[string]any:
		ctx, err := toContext(v)
		if err != nil {
			return nil, err
		}
		return map[string]any(ctx), nil
	}
	if isCallable(value) {
		return value, nil
	}
	return roundTrip(value)
}

func roundTrip(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return integralFloats(out), nil
}

// integralFloats turns whole float64 values back into ints; pongo2 prints
// floats with six decimals, which breaks attributes such as width="66".
func integralFloats(v any) any {
	switch val := v.(type) {
	case float64:
		if val == math.Trunc(val) && math.Abs(val) < 1<<53 {
			return int(val)
		}
		return val
	case map[string]any:
		for key, item := range val {
			val[key] = integralFloats(item)
		}
		return val
	case []any:
		for i, item := range val {
			val[i] = integralFloats(item)
		}
		return val
	default:
		return v
	}
}
