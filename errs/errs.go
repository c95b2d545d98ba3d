// Package errs defines the sentinel errors returned by the interchange codec.
//
// Callers classify failures with errors.Is against these sentinels rather than
// inspecting error strings. Each codec sentinel maps to one of the four
// taxonomy buckets from the codec's error handling design: value-range,
// type-mismatch, invalid-encoding, and version-mismatch. ErrKeyNotFound sits
// outside them; it belongs to the propertydict collaborator.
package errs

import "errors"

// Value-range errors: a value is well-typed but outside the domain the wire
// format or the temporal/spatial model can represent.
var (
	ErrIntegerOutOfRange  = errors.New("interchange: integer outside signed 64-bit range")
	ErrCollectionTooLarge = errors.New("interchange: collection length exceeds 2^32-1")
	ErrPointDimension     = errors.New("interchange: point must have 2 or 3 coordinates")
	ErrFieldOutOfRange    = errors.New("interchange: temporal field out of domain")
)

// Type-mismatch errors: the codec does not know how to pack the given value,
// or a structural constraint on keys/fields is violated.
var (
	ErrUnsupportedKind = errors.New("interchange: cannot pack value of this type")
	ErrNonStringKey    = errors.New("interchange: dictionary key must be a string")
	ErrTooManyFields   = errors.New("interchange: structure may carry at most 15 fields")
)

// Invalid-encoding errors: the byte stream itself is malformed.
var (
	ErrUnknownMarker   = errors.New("interchange: unknown packstream marker byte")
	ErrTruncatedInput  = errors.New("interchange: unexpected end of input")
	ErrInvalidUTF8     = errors.New("interchange: string payload is not valid UTF-8")
	ErrNestingTooDeep  = errors.New("interchange: structure nesting exceeds configured depth limit")
	ErrTrailingGarbage = errors.New("interchange: unexpected bytes past end of value")
)

// Version-mismatch errors: the negotiated protocol version does not admit a
// requested kind or structure tag.
var (
	ErrVersionMismatch = errors.New("interchange: value kind not admitted by negotiated protocol version")
)

// Ancillary-collaborator errors (propertydict).
var (
	ErrKeyNotFound = errors.New("interchange: key not found")
)
