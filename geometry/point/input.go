package point

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FromValues builds a point from dynamically typed values, such as the
// members of a decoded JSON list. Any Go number, json.Number or numeric
// string is accepted; everything else, and NaN or infinities, is rejected
// with an error wrapping ErrInvalidInput.
func FromValues(x, y any) (Point, error) {
	fx, err := toFloat(x)
	if err != nil {
		return Point{}, err
	}
	fy, err := toFloat(y)
	if err != nil {
		return Point{}, err
	}
	return New(fx, fy), nil
}

// FromSlice is FromValues for a two element list.
func FromSlice(xy []any) (Point, error) {
	if len(xy) != 2 {
		return Point{}, invalid(xy, "want 2 values, got %d", len(xy))
	}
	return FromValues(xy[0], xy[1])
}

// AssignValues is the dynamic counterpart of Assign. On error p is left
// unchanged.
func (p *Point) AssignValues(x, y any) error {
	fx, err := toFloat(x)
	if err != nil {
		return err
	}
	fy, err := toFloat(y)
	if err != nil {
		return err
	}
	p.Assign(fx, fy)
	return nil
}

// Parse reads a point written as "x,y", "x y" or "[x, y]".
func Parse(s string) (Point, error) {
	body := strings.TrimSpace(s)
	if strings.HasPrefix(body, "[") || strings.HasSuffix(body, "]") {
		if !strings.HasPrefix(body, "[") || !strings.HasSuffix(body, "]") {
			return Point{}, invalid(s, "unbalanced brackets")
		}
		body = body[1 : len(body)-1]
	}
	fields, ok := splitCoordinates(body)
	if !ok {
		return Point{}, invalid(s, "want two coordinates")
	}
	return FromValues(fields[0], fields[1])
}

// splitCoordinates splits on a single comma when there is one, otherwise on
// whitespace. Each side of a comma must hold exactly one field.
func splitCoordinates(body string) ([]string, bool) {
	parts := strings.Split(body, ",")
	switch len(parts) {
	case 1:
		fields := strings.Fields(body)
		return fields, len(fields) == 2
	case 2:
		x, y := strings.Fields(parts[0]), strings.Fields(parts[1])
		if len(x) != 1 || len(y) != 1 {
			return nil, false
		}
		return []string{x[0], y[0]}, true
	default:
		return nil, false
	}
}

func toFloat(v any) (float64, error) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, invalid(v, "%v", err)
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, invalid(v, "not a number")
		}
		f = parsed
	default:
		return 0, invalid(v, "unsupported type %T", v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, invalid(v, "not finite")
	}
	return f, nil
}
