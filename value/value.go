package value

import (
	"math"

	"github.com/nascanti/interchange/spatial"
	"github.com/nascanti/interchange/temporal"
)

// Value is a tagged union over every kind the codec can carry. The zero
// Value is Null.
type Value struct {
	kind    Kind
	boolean bool
	integer int64
	float   float64
	str     string
	bytes   []byte
	list    []Value
	dict    *Dictionary
	st      *Structure

	date     temporal.Date
	time     temporal.Time
	datetime temporal.DateTime
	duration temporal.Duration
	point    spatial.Point
}

// Kind reports the dynamic type of v.
func (v Value) Kind() Kind { return v.kind }

// Null is the singular Null value.
var Null = Value{kind: KindNull}

// IsNull reports whether v is Null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Boolean constructs a Boolean value.
func Boolean(b bool) Value { return Value{kind: KindBoolean, boolean: b} }

// AsBoolean returns the boolean payload; ok is false if v is not a Boolean.
func (v Value) AsBoolean() (b bool, ok bool) { return v.boolean, v.kind == KindBoolean }

// Integer constructs an Integer value.
func Integer(i int64) Value { return Value{kind: KindInteger, integer: i} }

// AsInteger returns the integer payload; ok is false if v is not an Integer.
func (v Value) AsInteger() (i int64, ok bool) { return v.integer, v.kind == KindInteger }

// Float constructs a Float value.
func Float(f float64) Value { return Value{kind: KindFloat, float: f} }

// AsFloat returns the float payload; ok is false if v is not a Float.
func (v Value) AsFloat() (f float64, ok bool) { return v.float, v.kind == KindFloat }

// String constructs a String value. s must be valid UTF-8; the Packer
// rejects it otherwise.
func String(s string) Value { return Value{kind: KindString, str: s} }

// AsString returns the string payload; ok is false if v is not a String.
func (v Value) AsString() (s string, ok bool) { return v.str, v.kind == KindString }

// Bytes constructs a Bytes value.
func Bytes(b []byte) Value { return Value{kind: KindBytes, bytes: b} }

// AsBytes returns the byte-slice payload; ok is false if v is not Bytes.
func (v Value) AsBytes() (b []byte, ok bool) { return v.bytes, v.kind == KindBytes }

// List constructs a List value.
func List(items []Value) Value { return Value{kind: KindList, list: items} }

// AsList returns the element slice; ok is false if v is not a List.
func (v Value) AsList() (items []Value, ok bool) { return v.list, v.kind == KindList }

// FromDictionary constructs a Dictionary value.
func FromDictionary(d *Dictionary) Value { return Value{kind: KindDictionary, dict: d} }

// AsDictionary returns the Dictionary payload; ok is false if v is not a
// Dictionary.
func (v Value) AsDictionary() (d *Dictionary, ok bool) { return v.dict, v.kind == KindDictionary }

// FromStructure constructs a Structure value.
func FromStructure(s *Structure) Value { return Value{kind: KindStructure, st: s} }

// AsStructure returns the Structure payload; ok is false if v is not a
// Structure.
func (v Value) AsStructure() (s *Structure, ok bool) { return v.st, v.kind == KindStructure }

// FromDate constructs a Date value.
func FromDate(d temporal.Date) Value { return Value{kind: KindDate, date: d} }

// AsDate returns the Date payload; ok is false if v is not a Date.
func (v Value) AsDate() (d temporal.Date, ok bool) { return v.date, v.kind == KindDate }

// FromTime constructs a Time value.
func FromTime(t temporal.Time) Value { return Value{kind: KindTime, time: t} }

// AsTime returns the Time payload; ok is false if v is not a Time.
func (v Value) AsTime() (t temporal.Time, ok bool) { return v.time, v.kind == KindTime }

// FromDateTime constructs a DateTime value.
func FromDateTime(dt temporal.DateTime) Value { return Value{kind: KindDateTime, datetime: dt} }

// AsDateTime returns the DateTime payload; ok is false if v is not a
// DateTime.
func (v Value) AsDateTime() (dt temporal.DateTime, ok bool) {
	return v.datetime, v.kind == KindDateTime
}

// FromDuration constructs a Duration value.
func FromDuration(d temporal.Duration) Value { return Value{kind: KindDuration, duration: d} }

// AsDuration returns the Duration payload; ok is false if v is not a
// Duration.
func (v Value) AsDuration() (d temporal.Duration, ok bool) {
	return v.duration, v.kind == KindDuration
}

// FromPoint constructs a Point value.
func FromPoint(p spatial.Point) Value { return Value{kind: KindPoint, point: p} }

// AsPoint returns the Point payload; ok is false if v is not a Point.
func (v Value) AsPoint() (p spatial.Point, ok bool) { return v.point, v.kind == KindPoint }

// Equal reports whether v and other carry the same kind and payload.
// Dictionary and Structure equality delegates to their own Equal methods;
// List equality is elementwise.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindNull:
		return true
	case KindBoolean:
		return v.boolean == other.boolean
	case KindInteger:
		return v.integer == other.integer
	case KindFloat:
		// NaN never compares equal to itself under ==; two NaN-valued
		// Floats still denote the same wire value.
		if math.IsNaN(v.float) && math.IsNaN(other.float) {
			return true
		}

		return v.float == other.float
	case KindString:
		return v.str == other.str
	case KindBytes:
		return bytesEqual(v.bytes, other.bytes)
	case KindList:
		return listEqual(v.list, other.list)
	case KindDictionary:
		return v.dict.Equal(other.dict)
	case KindStructure:
		return v.st.Equal(other.st)
	case KindDate:
		return v.date.Equal(other.date)
	case KindTime:
		return v.time.Equal(other.time)
	case KindDateTime:
		return v.datetime.Equal(other.datetime)
	case KindDuration:
		return v.duration.Equal(other.duration)
	case KindPoint:
		return v.point.Equal(other.point)
	default:
		return false
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func listEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}
