package pack

import (
	"encoding/binary"
	"fmt"
	"iter"
	"math"
	"unicode/utf8"

	"github.com/nascanti/interchange/errs"
	"github.com/nascanti/interchange/value"
	"github.com/nascanti/interchange/version"
	"github.com/nascanti/interchange/wire"
)

// DefaultMaxDepth bounds how deeply a single top-level value may nest
// lists, dictionaries, and structures inside one another, guarding against
// pathological or adversarial input driving the decoder into a stack
// overflow.
const DefaultMaxDepth = 1000

// UnpackerOption configures an Unpacker at construction time.
type UnpackerOption func(*Unpacker)

// WithMaxDepth overrides DefaultMaxDepth with a caller-chosen nesting limit.
func WithMaxDepth(n int) UnpackerOption {
	return func(u *Unpacker) {
		u.maxDepth = n
	}
}

// Unpacker is a resumable cursor over a byte slice of packed values,
// styled after bufio.Scanner: call Next until it returns false, reading
// Value after each successful call and checking Err once done.
type Unpacker struct {
	data     []byte
	pos      int
	version  version.Version
	cur      value.Value
	err      error
	depth    int
	maxDepth int
}

// NewUnpacker constructs an Unpacker reading from data under the given
// protocol version.
func NewUnpacker(data []byte, ver version.Version, opts ...UnpackerOption) *Unpacker {
	u := &Unpacker{data: data, version: ver, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(u)
	}

	return u
}

// Err returns the first error encountered, if any. Err is nil after a clean
// end-of-input.
func (u *Unpacker) Err() error { return u.err }

// Value returns the value decoded by the most recent successful call to
// Next.
func (u *Unpacker) Value() value.Value { return u.cur }

// Remaining returns the number of unread bytes left in the input.
func (u *Unpacker) Remaining() int { return len(u.data) - u.pos }

// Next decodes the next top-level value, reporting whether one was
// produced. Next returns false both on a clean end-of-input and on a decode
// error; call Err to distinguish the two.
func (u *Unpacker) Next() bool {
	if u.err != nil || u.pos >= len(u.data) {
		return false
	}

	v, err := u.decodeOne()
	if err != nil {
		u.err = err
		return false
	}

	u.cur = v

	return true
}

// All drains the cursor as a range-over-func sequence, stopping early (and
// leaving Err populated) if a decode error is hit.
func (u *Unpacker) All() iter.Seq[value.Value] {
	return func(yield func(value.Value) bool) {
		for u.Next() {
			if !yield(u.Value()) {
				return
			}
		}
	}
}

func (u *Unpacker) enterDepth() error {
	u.depth++
	if u.depth > u.maxDepth {
		return fmt.Errorf("%w: exceeds %d", errs.ErrNestingTooDeep, u.maxDepth)
	}

	return nil
}

func (u *Unpacker) exitDepth() { u.depth-- }

func (u *Unpacker) decodeOne() (value.Value, error) {
	marker, err := u.readByte()
	if err != nil {
		return value.Value{}, err
	}

	switch {
	case marker == wire.Null:
		return value.Null, nil
	case marker == wire.True:
		return value.Boolean(true), nil
	case marker == wire.False:
		return value.Boolean(false), nil
	case marker == wire.Float:
		return u.decodeFloat()
	case isTinyInt(marker):
		return value.Integer(int64(int8(marker))), nil
	case marker == wire.Int8:
		return u.decodeIntN(1)
	case marker == wire.Int16:
		return u.decodeIntN(2)
	case marker == wire.Int32:
		return u.decodeIntN(4)
	case marker == wire.Int64:
		return u.decodeIntN(8)
	case marker == wire.Bytes8:
		return u.decodeBytes(1)
	case marker == wire.Bytes16:
		return u.decodeBytes(2)
	case marker == wire.Bytes32:
		return u.decodeBytes(4)
	case isTinyString(marker):
		return u.decodeString(int(marker & wire.LowNibbleMask))
	case marker == wire.String8:
		return u.decodeSizedString(1)
	case marker == wire.String16:
		return u.decodeSizedString(2)
	case marker == wire.String32:
		return u.decodeSizedString(4)
	case isTinyList(marker):
		return u.decodeList(int(marker & wire.LowNibbleMask))
	case marker == wire.List8:
		return u.decodeSizedList(1)
	case marker == wire.List16:
		return u.decodeSizedList(2)
	case marker == wire.List32:
		return u.decodeSizedList(4)
	case isTinyDict(marker):
		return u.decodeDict(int(marker & wire.LowNibbleMask))
	case marker == wire.Dict8:
		return u.decodeSizedDict(1)
	case marker == wire.Dict16:
		return u.decodeSizedDict(2)
	case marker == wire.Dict32:
		return u.decodeSizedDict(4)
	case isTinyStruct(marker):
		return u.decodeStruct(int(marker & wire.LowNibbleMask))
	default:
		return value.Value{}, fmt.Errorf("%w: 0x%02X", errs.ErrUnknownMarker, marker)
	}
}

// isTinyInt reports whether m is one of the inline single-byte integer
// markers: 0x00-0x7F (0 to 127) or 0xF0-0xFF (-16 to -1), interpreted as a
// signed int8. Markers in 0x80-0xEF belong to other kinds and are excluded
// by virtue of their int8 value falling below TinyIntMin.
func isTinyInt(m byte) bool {
	return int8(m) >= wire.TinyIntMin
}

func isTinyString(m byte) bool { return m&wire.HighNibbleMask == wire.TinyStringBase }
func isTinyList(m byte) bool   { return m&wire.HighNibbleMask == wire.TinyListBase }
func isTinyDict(m byte) bool   { return m&wire.HighNibbleMask == wire.TinyDictBase }
func isTinyStruct(m byte) bool { return m&wire.HighNibbleMask == wire.TinyStructBase }

func (u *Unpacker) readByte() (byte, error) {
	if u.pos >= len(u.data) {
		return 0, errs.ErrTruncatedInput
	}
	b := u.data[u.pos]
	u.pos++

	return b, nil
}

func (u *Unpacker) readN(n int) ([]byte, error) {
	if u.pos+n > len(u.data) {
		return nil, errs.ErrTruncatedInput
	}
	b := u.data[u.pos : u.pos+n]
	u.pos += n

	return b, nil
}

func (u *Unpacker) decodeFloat() (value.Value, error) {
	b, err := u.readN(8)
	if err != nil {
		return value.Value{}, err
	}

	return value.Float(math.Float64frombits(binary.BigEndian.Uint64(b))), nil
}

func (u *Unpacker) decodeIntN(n int) (value.Value, error) {
	b, err := u.readN(n)
	if err != nil {
		return value.Value{}, err
	}

	switch n {
	case 1:
		return value.Integer(int64(int8(b[0]))), nil
	case 2:
		return value.Integer(int64(int16(binary.BigEndian.Uint16(b)))), nil
	case 4:
		return value.Integer(int64(int32(binary.BigEndian.Uint32(b)))), nil
	default:
		return value.Integer(int64(binary.BigEndian.Uint64(b))), nil
	}
}

func (u *Unpacker) readSize(n int) (int, error) {
	b, err := u.readN(n)
	if err != nil {
		return 0, err
	}

	switch n {
	case 1:
		return int(b[0]), nil
	case 2:
		return int(binary.BigEndian.Uint16(b)), nil
	default:
		return int(binary.BigEndian.Uint32(b)), nil
	}
}

func (u *Unpacker) decodeBytes(sizeWidth int) (value.Value, error) {
	n, err := u.readSize(sizeWidth)
	if err != nil {
		return value.Value{}, err
	}

	b, err := u.readN(n)
	if err != nil {
		return value.Value{}, err
	}

	cp := make([]byte, n)
	copy(cp, b)

	return value.Bytes(cp), nil
}

func (u *Unpacker) decodeString(n int) (value.Value, error) {
	b, err := u.readN(n)
	if err != nil {
		return value.Value{}, err
	}
	if !utf8.Valid(b) {
		return value.Value{}, errs.ErrInvalidUTF8
	}

	return value.String(string(b)), nil
}

func (u *Unpacker) decodeSizedString(sizeWidth int) (value.Value, error) {
	n, err := u.readSize(sizeWidth)
	if err != nil {
		return value.Value{}, err
	}

	return u.decodeString(n)
}

func (u *Unpacker) decodeList(n int) (value.Value, error) {
	if err := u.enterDepth(); err != nil {
		return value.Value{}, err
	}
	defer u.exitDepth()

	// No cap sized from n: n is an attacker-controlled declared length (up
	// to 2^32-1) that has not been validated against the input's actual
	// size yet. Growing by plain append bounds allocation by what
	// decodeOne actually manages to read.
	var items []value.Value
	for i := 0; i < n; i++ {
		v, err := u.decodeOne()
		if err != nil {
			return value.Value{}, err
		}
		items = append(items, v)
	}

	return value.List(items), nil
}

func (u *Unpacker) decodeSizedList(sizeWidth int) (value.Value, error) {
	n, err := u.readSize(sizeWidth)
	if err != nil {
		return value.Value{}, err
	}

	return u.decodeList(n)
}

func (u *Unpacker) decodeDict(n int) (value.Value, error) {
	if err := u.enterDepth(); err != nil {
		return value.Value{}, err
	}
	defer u.exitDepth()

	d := value.NewDictionary()
	for i := 0; i < n; i++ {
		k, err := u.decodeOne()
		if err != nil {
			return value.Value{}, err
		}
		key, ok := k.AsString()
		if !ok {
			return value.Value{}, errs.ErrNonStringKey
		}

		v, err := u.decodeOne()
		if err != nil {
			return value.Value{}, err
		}
		d.Set(key, v)
	}

	return value.FromDictionary(d), nil
}

func (u *Unpacker) decodeSizedDict(sizeWidth int) (value.Value, error) {
	n, err := u.readSize(sizeWidth)
	if err != nil {
		return value.Value{}, err
	}

	return u.decodeDict(n)
}

func (u *Unpacker) decodeStruct(n int) (value.Value, error) {
	if n > wire.MaxStructFields {
		return value.Value{}, errs.ErrTooManyFields
	}

	if err := u.enterDepth(); err != nil {
		return value.Value{}, err
	}
	defer u.exitDepth()

	tag, err := u.readByte()
	if err != nil {
		return value.Value{}, err
	}

	fields := make([]value.Value, 0, n)
	for i := 0; i < n; i++ {
		v, err := u.decodeOne()
		if err != nil {
			return value.Value{}, err
		}
		fields = append(fields, v)
	}

	result, err := hydrateStructure(tag, fields)
	if err != nil {
		return value.Value{}, err
	}

	if result.Kind().IsExtended() {
		if err := version.NewGate().Check(u.version, result.Kind()); err != nil {
			return value.Value{}, err
		}
	}

	return result, nil
}

// Unpack eagerly decodes every top-level value in data under the given
// protocol version.
func Unpack(data []byte, ver version.Version, opts ...UnpackerOption) ([]value.Value, error) {
	u := NewUnpacker(data, ver, opts...)

	var out []value.Value
	for u.Next() {
		out = append(out, u.Value())
	}

	return out, u.Err()
}
