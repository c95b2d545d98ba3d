// Package pack implements the streaming Packer and resumable-cursor
// Unpacker that translate between value.Value and its PackStream-family
// wire encoding.
package pack

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/nascanti/interchange/errs"
	"github.com/nascanti/interchange/internal/pool"
	"github.com/nascanti/interchange/value"
	"github.com/nascanti/interchange/version"
	"github.com/nascanti/interchange/wire"
)

// Option configures a Packer at construction time.
type Option func(*Packer)

// WithInitialCapacity pre-sizes the Packer's internal buffer, avoiding
// reallocation for callers who know roughly how large the packed output
// will be.
func WithInitialCapacity(n int) Option {
	return func(p *Packer) {
		pool.Put(p.buf)
		p.buf = pool.NewByteBuffer(n)
	}
}

// Packer streams value.Value encodings into an internal growable buffer.
// A Packer is not safe for concurrent use.
type Packer struct {
	buf     *pool.ByteBuffer
	version version.Version
}

// NewPacker constructs a Packer that gates extended (temporal/spatial)
// kinds against ver.
func NewPacker(ver version.Version, opts ...Option) *Packer {
	p := &Packer{buf: pool.Get(), version: ver}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Reset empties the Packer's buffer for reuse, retaining its backing array.
func (p *Packer) Reset() { p.buf.Reset() }

// Packed returns the bytes written so far. The returned slice aliases the
// Packer's internal buffer and is only valid until the next Pack or Reset
// call.
func (p *Packer) Packed() []byte { return p.buf.Bytes() }

// Pack appends v's wire encoding to the buffer.
func (p *Packer) Pack(v value.Value) error {
	if v.Kind().IsExtended() {
		if err := version.NewGate().Check(p.version, v.Kind()); err != nil {
			return err
		}
	}

	switch v.Kind() {
	case value.KindNull:
		p.buf.MustWrite([]byte{wire.Null})
		return nil
	case value.KindBoolean:
		return p.packBoolean(v)
	case value.KindInteger:
		return p.packInteger(v)
	case value.KindFloat:
		return p.packFloat(v)
	case value.KindString:
		return p.packString(v)
	case value.KindBytes:
		return p.packBytes(v)
	case value.KindList:
		return p.packList(v)
	case value.KindDictionary:
		return p.packDictionary(v)
	case value.KindStructure:
		return p.packStructure(v)
	case value.KindDate, value.KindTime, value.KindDateTime, value.KindDuration, value.KindPoint:
		return p.packExtended(v)
	default:
		return fmt.Errorf("%w: kind %s", errs.ErrUnsupportedKind, v.Kind())
	}
}

func (p *Packer) packBoolean(v value.Value) error {
	b, _ := v.AsBoolean()
	if b {
		p.buf.MustWrite([]byte{wire.True})
	} else {
		p.buf.MustWrite([]byte{wire.False})
	}

	return nil
}

func (p *Packer) packInteger(v value.Value) error {
	i, _ := v.AsInteger()

	switch {
	case i >= wire.TinyIntMin && i <= wire.TinyIntMax:
		p.buf.MustWrite([]byte{byte(int8(i))})
	case i >= wire.Int8Min && i <= wire.Int8Max:
		p.buf.MustWrite([]byte{wire.Int8, byte(int8(i))})
	case i >= wire.Int16Min && i <= wire.Int16Max:
		p.buf.B = append(p.buf.B, wire.Int16)
		p.buf.B = binary.BigEndian.AppendUint16(p.buf.B, uint16(int16(i)))
	case i >= wire.Int32Min && i <= wire.Int32Max:
		p.buf.B = append(p.buf.B, wire.Int32)
		p.buf.B = binary.BigEndian.AppendUint32(p.buf.B, uint32(int32(i)))
	default:
		p.buf.B = append(p.buf.B, wire.Int64)
		p.buf.B = binary.BigEndian.AppendUint64(p.buf.B, uint64(i))
	}

	return nil
}

func (p *Packer) packFloat(v value.Value) error {
	f, _ := v.AsFloat()
	p.buf.B = append(p.buf.B, wire.Float)
	p.buf.B = binary.BigEndian.AppendUint64(p.buf.B, math.Float64bits(f))

	return nil
}

func (p *Packer) packString(v value.Value) error {
	s, _ := v.AsString()
	if !utf8.ValidString(s) {
		return errs.ErrInvalidUTF8
	}

	n := len(s)
	if err := p.writeSizedMarker(n, wire.TinyStringBase, wire.String8, wire.String16, wire.String32); err != nil {
		return err
	}
	p.buf.MustWrite([]byte(s))

	return nil
}

func (p *Packer) packBytes(v value.Value) error {
	b, _ := v.AsBytes()

	n := len(b)
	switch {
	case n <= wire.MaxUint8Len:
		p.buf.MustWrite([]byte{wire.Bytes8, byte(n)})
	case n <= wire.MaxUint16Len:
		p.buf.B = append(p.buf.B, wire.Bytes16)
		p.buf.B = binary.BigEndian.AppendUint16(p.buf.B, uint16(n))
	case n <= wire.MaxCollectionLen:
		p.buf.B = append(p.buf.B, wire.Bytes32)
		p.buf.B = binary.BigEndian.AppendUint32(p.buf.B, uint32(n))
	default:
		return errs.ErrCollectionTooLarge
	}
	p.buf.MustWrite(b)

	return nil
}

func (p *Packer) packList(v value.Value) error {
	items, _ := v.AsList()

	if err := p.writeSizedMarker(len(items), wire.TinyListBase, wire.List8, wire.List16, wire.List32); err != nil {
		return err
	}

	for _, item := range items {
		if err := p.Pack(item); err != nil {
			return err
		}
	}

	return nil
}

func (p *Packer) packDictionary(v value.Value) error {
	d, _ := v.AsDictionary()

	if err := p.writeSizedMarker(d.Len(), wire.TinyDictBase, wire.Dict8, wire.Dict16, wire.Dict32); err != nil {
		return err
	}

	var packErr error
	for k, val := range d.All() {
		if packErr = p.Pack(value.String(k)); packErr != nil {
			break
		}
		if packErr = p.Pack(val); packErr != nil {
			break
		}
	}

	return packErr
}

func (p *Packer) packStructure(v value.Value) error {
	st, _ := v.AsStructure()
	return p.writeStructure(st.Tag, st.Fields)
}

func (p *Packer) writeStructure(tag byte, fields []value.Value) error {
	if len(fields) > wire.MaxStructFields {
		return errs.ErrTooManyFields
	}

	marker := byte(wire.TinyStructBase | len(fields))
	p.buf.MustWrite([]byte{marker, tag})

	for _, f := range fields {
		if err := p.Pack(f); err != nil {
			return err
		}
	}

	return nil
}

// writeSizedMarker emits the narrowest marker/length-prefix combination for
// a collection of n elements: an inline nibble-count marker for n <= 15,
// escalating through 8/16/32-bit explicit length prefixes above that.
func (p *Packer) writeSizedMarker(n int, tinyBase, marker8, marker16, marker32 byte) error {
	switch {
	case n <= wire.MaxInlineLen:
		p.buf.MustWrite([]byte{tinyBase | byte(n)})
	case n <= wire.MaxUint8Len:
		p.buf.MustWrite([]byte{marker8, byte(n)})
	case n <= wire.MaxUint16Len:
		p.buf.B = append(p.buf.B, marker16)
		p.buf.B = binary.BigEndian.AppendUint16(p.buf.B, uint16(n))
	case n <= wire.MaxCollectionLen:
		p.buf.B = append(p.buf.B, marker32)
		p.buf.B = binary.BigEndian.AppendUint32(p.buf.B, uint32(n))
	default:
		return errs.ErrCollectionTooLarge
	}

	return nil
}

// Pack is a package-level convenience that packs a single value.Value under
// the given protocol version, returning the packed bytes.
func Pack(v value.Value, ver version.Version) ([]byte, error) {
	p := NewPacker(ver)
	if err := p.Pack(v); err != nil {
		pool.Put(p.buf)
		return nil, err
	}

	out := make([]byte, len(p.Packed()))
	copy(out, p.Packed())
	pool.Put(p.buf)

	return out, nil
}
