package pack

import (
	"fmt"

	"github.com/nascanti/interchange/errs"
	"github.com/nascanti/interchange/spatial"
	"github.com/nascanti/interchange/temporal"
	"github.com/nascanti/interchange/value"
	"github.com/nascanti/interchange/wire"
)

// packExtended encodes a temporal or spatial value as the Structure its wire
// tag designates: structures on the wire, value kinds in memory.
func (p *Packer) packExtended(v value.Value) error {
	switch v.Kind() {
	case value.KindDate:
		d, _ := v.AsDate()
		return p.writeStructure(wire.TagDate, []value.Value{value.Integer(d.Days)})

	case value.KindTime:
		t, _ := v.AsTime()
		if t.HasOffset {
			return p.writeStructure(wire.TagOffsetTime, []value.Value{
				value.Integer(t.NanosecondOfDay),
				value.Integer(int64(t.OffsetSeconds)),
			})
		}

		return p.writeStructure(wire.TagLocalTime, []value.Value{value.Integer(t.NanosecondOfDay)})

	case value.KindDateTime:
		dt, _ := v.AsDateTime()
		switch {
		case dt.HasZone():
			return p.writeStructure(wire.TagZonedDateTime, []value.Value{
				value.Integer(dt.EpochSecond),
				value.Integer(int64(dt.Nanosecond)),
				value.String(dt.ZoneName()),
			})
		case dt.HasOffset():
			return p.writeStructure(wire.TagOffsetDateTime, []value.Value{
				value.Integer(dt.EpochSecond),
				value.Integer(int64(dt.Nanosecond)),
				value.Integer(int64(dt.OffsetSeconds())),
			})
		default:
			return p.writeStructure(wire.TagLocalDateTime, []value.Value{
				value.Integer(dt.EpochSecond),
				value.Integer(int64(dt.Nanosecond)),
			})
		}

	case value.KindDuration:
		d, _ := v.AsDuration()
		return p.writeStructure(wire.TagDuration, []value.Value{
			value.Integer(d.Months),
			value.Integer(d.Days),
			value.Integer(d.Seconds),
			value.Integer(int64(d.Nanoseconds)),
		})

	case value.KindPoint:
		pt, _ := v.AsPoint()
		if pt.Is3D() {
			return p.writeStructure(wire.TagPoint3D, []value.Value{
				value.Integer(pt.SRID), value.Float(pt.X()), value.Float(pt.Y()), value.Float(pt.Z()),
			})
		}

		return p.writeStructure(wire.TagPoint2D, []value.Value{
			value.Integer(pt.SRID), value.Float(pt.X()), value.Float(pt.Y()),
		})

	default:
		return fmt.Errorf("%w: kind %s", errs.ErrUnsupportedKind, v.Kind())
	}
}

// hydrateStructure converts a decoded tag + field list into its value.Value
// representation: a recognized temporal/spatial tag becomes the matching
// extended kind, and an unrecognized tag falls back to a generic Structure
// value.
func hydrateStructure(tag byte, fields []value.Value) (value.Value, error) {
	switch tag {
	case wire.TagDate:
		if len(fields) != 1 {
			return value.Value{}, structureArityError(tag, 1, len(fields))
		}
		days, ok := fields[0].AsInteger()
		if !ok {
			return value.Value{}, structureFieldTypeError(tag, 0)
		}

		return value.FromDate(temporal.Date{Days: days}), nil

	case wire.TagLocalTime:
		if len(fields) != 1 {
			return value.Value{}, structureArityError(tag, 1, len(fields))
		}
		ns, ok := fields[0].AsInteger()
		if !ok {
			return value.Value{}, structureFieldTypeError(tag, 0)
		}

		return value.FromTime(temporal.Time{NanosecondOfDay: ns}), nil

	case wire.TagOffsetTime:
		if len(fields) != 2 {
			return value.Value{}, structureArityError(tag, 2, len(fields))
		}
		ns, ok1 := fields[0].AsInteger()
		off, ok2 := fields[1].AsInteger()
		if !ok1 || !ok2 {
			return value.Value{}, structureFieldTypeError(tag, 0)
		}

		return value.FromTime(temporal.Time{NanosecondOfDay: ns, HasOffset: true, OffsetSeconds: int32(off)}), nil

	case wire.TagLocalDateTime:
		if len(fields) != 2 {
			return value.Value{}, structureArityError(tag, 2, len(fields))
		}
		epoch, nanos, err := decodeEpochFields(fields)
		if err != nil {
			return value.Value{}, err
		}

		return value.FromDateTime(temporal.FromEpoch(epoch, nanos)), nil

	case wire.TagOffsetDateTime:
		if len(fields) != 3 {
			return value.Value{}, structureArityError(tag, 3, len(fields))
		}
		epoch, nanos, err := decodeEpochFields(fields[:2])
		if err != nil {
			return value.Value{}, err
		}
		off, ok := fields[2].AsInteger()
		if !ok {
			return value.Value{}, structureFieldTypeError(tag, 2)
		}

		return value.FromDateTime(temporal.FromEpochOffset(epoch, nanos, int32(off))), nil

	case wire.TagZonedDateTime:
		if len(fields) != 3 {
			return value.Value{}, structureArityError(tag, 3, len(fields))
		}
		epoch, nanos, err := decodeEpochFields(fields[:2])
		if err != nil {
			return value.Value{}, err
		}
		name, ok := fields[2].AsString()
		if !ok {
			return value.Value{}, structureFieldTypeError(tag, 2)
		}

		return value.FromDateTime(temporal.FromEpochZone(epoch, nanos, name, nil)), nil

	case wire.TagDuration:
		if len(fields) != 4 {
			return value.Value{}, structureArityError(tag, 4, len(fields))
		}
		months, ok1 := fields[0].AsInteger()
		days, ok2 := fields[1].AsInteger()
		seconds, ok3 := fields[2].AsInteger()
		nanos, ok4 := fields[3].AsInteger()
		if !ok1 || !ok2 || !ok3 || !ok4 {
			return value.Value{}, structureFieldTypeError(tag, 0)
		}

		d, err := temporal.NewDuration(months, days, seconds, int32(nanos))
		if err != nil {
			return value.Value{}, err
		}

		return value.FromDuration(d), nil

	case wire.TagPoint2D, wire.TagPoint3D:
		return hydratePoint(tag, fields)

	default:
		st, err := value.NewStructure(tag, fields)
		if err != nil {
			return value.Value{}, err
		}

		return value.FromStructure(st), nil
	}
}

func hydratePoint(tag byte, fields []value.Value) (value.Value, error) {
	want := 3
	if tag == wire.TagPoint3D {
		want = 4
	}
	if len(fields) != want {
		return value.Value{}, structureArityError(tag, want, len(fields))
	}

	srid, ok := fields[0].AsInteger()
	if !ok {
		return value.Value{}, structureFieldTypeError(tag, 0)
	}

	coords := make([]float64, want-1)
	for i := 1; i < want; i++ {
		c, ok := fields[i].AsFloat()
		if !ok {
			return value.Value{}, structureFieldTypeError(tag, i)
		}
		coords[i-1] = c
	}

	pt, err := spatial.New(srid, coords...)
	if err != nil {
		return value.Value{}, err
	}

	return value.FromPoint(pt), nil
}

// decodeEpochFields decodes the shared epoch-second/nanosecond pair carried
// by the first two fields of every DateTime structure variant.
func decodeEpochFields(fields []value.Value) (epoch int64, nanos int32, err error) {
	epoch, ok1 := fields[0].AsInteger()
	n, ok2 := fields[1].AsInteger()
	if !ok1 || !ok2 {
		return 0, 0, errs.ErrUnsupportedKind
	}

	return epoch, int32(n), nil
}

func structureArityError(tag byte, want, got int) error {
	return fmt.Errorf("%w: tag %q expects %d fields, got %d", errs.ErrTruncatedInput, tag, want, got)
}

func structureFieldTypeError(tag byte, index int) error {
	return fmt.Errorf("%w: tag %q field %d has the wrong type", errs.ErrUnsupportedKind, tag, index)
}
