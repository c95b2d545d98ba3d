package pack

import (
	"fmt"
	"math"
	"time"

	"github.com/nascanti/interchange/errs"
	"github.com/nascanti/interchange/spatial"
	"github.com/nascanti/interchange/temporal"
	"github.com/nascanti/interchange/value"
)

// From coerces a host-native Go value into a value.Value, isolating the
// host-type dispatch from the exhaustive Kind switch inside Pack: coercion
// happens once, at the boundary, not inside the wire-level dispatch.
func From(v any) (value.Value, error) {
	switch x := v.(type) {
	case nil:
		return value.Null, nil
	case value.Value:
		return x, nil
	case bool:
		return value.Boolean(x), nil
	case int:
		return value.Integer(int64(x)), nil
	case int8:
		return value.Integer(int64(x)), nil
	case int16:
		return value.Integer(int64(x)), nil
	case int32:
		return value.Integer(int64(x)), nil
	case int64:
		return value.Integer(x), nil
	case uint8:
		return value.Integer(int64(x)), nil
	case uint16:
		return value.Integer(int64(x)), nil
	case uint32:
		return value.Integer(int64(x)), nil
	case uint:
		return fromUint64(uint64(x))
	case uint64:
		return fromUint64(x)
	case float32:
		return value.Float(float64(x)), nil
	case float64:
		return value.Float(x), nil
	case string:
		return value.String(x), nil
	case []byte:
		return value.Bytes(x), nil
	case temporal.Date:
		return value.FromDate(x), nil
	case temporal.Time:
		return value.FromTime(x), nil
	case temporal.DateTime:
		return value.FromDateTime(x), nil
	case temporal.Duration:
		return value.FromDuration(x), nil
	case time.Time:
		return value.FromDateTime(temporal.DateTimeFromNative(x)), nil
	case time.Duration:
		return value.FromDuration(temporal.DurationFromNative(x)), nil
	case spatial.Point:
		return value.FromPoint(x), nil
	case []any:
		return fromList(x)
	case map[string]any:
		return fromMap(x)
	default:
		return value.Value{}, fmt.Errorf("%w: %T", errs.ErrUnsupportedKind, v)
	}
}

func fromUint64(x uint64) (value.Value, error) {
	if x > math.MaxInt64 {
		return value.Value{}, fmt.Errorf("%w: %d", errs.ErrIntegerOutOfRange, x)
	}

	return value.Integer(int64(x)), nil
}

func fromList(items []any) (value.Value, error) {
	out := make([]value.Value, len(items))
	for i, item := range items {
		v, err := From(item)
		if err != nil {
			return value.Value{}, err
		}
		out[i] = v
	}

	return value.List(out), nil
}

func fromMap(m map[string]any) (value.Value, error) {
	d := value.NewDictionary()
	for k, raw := range m {
		v, err := From(raw)
		if err != nil {
			return value.Value{}, err
		}
		d.Set(k, v)
	}

	return value.FromDictionary(d), nil
}
