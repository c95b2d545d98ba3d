// Package interchange provides a binary wire codec for exchanging typed
// values with a graph database server: null, booleans, integers, floats,
// strings, byte arrays, lists, dictionaries, structures, plus temporal
// (Date/Time/DateTime/Duration) and spatial (Point) kinds layered on top as
// tagged structures.
//
// # Basic usage
//
// Packing a value for the wire:
//
//	v, _ := pack.From(map[string]any{"name": "Alice", "age": int64(33)})
//	data, _ := pack.Pack(v, version.V2_0)
//
// Unpacking a stream of values:
//
//	for v := range pack.NewUnpacker(data, version.V2_0).All() {
//	    fmt.Println(v.Kind())
//	}
//
// # Package structure
//
// This file offers thin top-level conveniences; the bulk of the codec lives
// in focused sub-packages: value (the tagged union), temporal and spatial
// (the extended kinds), wire (marker-byte constants), version (the protocol
// gate), and pack (the Packer/Unpacker).
package interchange

import (
	"fmt"

	"github.com/nascanti/interchange/errs"
	"github.com/nascanti/interchange/pack"
	"github.com/nascanti/interchange/value"
	"github.com/nascanti/interchange/version"
)

// Marshal coerces v into a value.Value and packs it under the latest
// protocol version.
func Marshal(v any) ([]byte, error) {
	coerced, err := pack.From(v)
	if err != nil {
		return nil, err
	}

	return pack.Pack(coerced, version.V2_0)
}

// Unmarshal decodes the single value.Value encoded in data under the latest
// protocol version. It is an error for data to carry more than one value.
func Unmarshal(data []byte) (value.Value, error) {
	u := pack.NewUnpacker(data, version.V2_0)
	if !u.Next() {
		if err := u.Err(); err != nil {
			return value.Value{}, err
		}

		return value.Null, nil
	}

	v := u.Value()
	if u.Remaining() > 0 {
		return value.Value{}, fmt.Errorf("%w: %d bytes", errs.ErrTrailingGarbage, u.Remaining())
	}

	return v, nil
}
