package value

import "github.com/nascanti/interchange/errs"

// Structure is a tagged, fixed-arity record: a single tag byte plus up to
// MaxStructFields values. Temporal and spatial values are carried as
// Structures on the wire (wire.TagDate and friends) but surface as their
// own Kind in memory; a caller who packs or unpacks a raw Structure
// directly sees only its tag and fields.
type Structure struct {
	Tag    byte
	Fields []Value
}

// MaxStructFields is the largest field count a Structure may carry,
// mirroring wire.MaxStructFields.
const MaxStructFields = 15

// NewStructure constructs a Structure, rejecting more than MaxStructFields
// fields.
func NewStructure(tag byte, fields []Value) (*Structure, error) {
	if len(fields) > MaxStructFields {
		return nil, errs.ErrTooManyFields
	}

	return &Structure{Tag: tag, Fields: fields}, nil
}

// Equal reports whether s and other carry the same tag and elementwise-equal
// fields.
func (s *Structure) Equal(other *Structure) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.Tag != other.Tag || len(s.Fields) != len(other.Fields) {
		return false
	}

	for i := range s.Fields {
		if !s.Fields[i].Equal(other.Fields[i]) {
			return false
		}
	}

	return true
}
