// Package propertydict implements PropertyDict, an auxiliary collaborator
// used to model node/relationship property maps: an ordered string-keyed
// map where setting a key to nil deletes it rather than storing a null.
package propertydict

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/nascanti/interchange/errs"
)

// PropertyDict is an insertion-ordered string-keyed map of arbitrary Go
// values, with the convention that assigning nil to a key removes it.
type PropertyDict struct {
	keys   []string
	values map[string]any
}

// New constructs a PropertyDict, optionally seeded from an initial map. Any
// nil-valued entry in initial is dropped rather than stored, matching Set's
// convention.
func New(initial map[string]any) *PropertyDict {
	pd := &PropertyDict{values: make(map[string]any, len(initial))}
	for k, v := range initial {
		pd.Set(k, v)
	}

	return pd
}

// Get returns the value stored for key, or nil if key is absent.
func (pd *PropertyDict) Get(key string) any {
	return pd.values[key]
}

// Set stores val under key. Setting val to nil deletes key instead of
// storing a null entry; setting nil on an absent key is a no-op.
func (pd *PropertyDict) Set(key string, val any) {
	if val == nil {
		pd.remove(key)
		return
	}

	if _, exists := pd.values[key]; !exists {
		pd.keys = append(pd.keys, key)
	}

	pd.values[key] = val
}

// SetDefault returns key's existing value if present; otherwise it stores
// def under key (nil def deletes/leaves key absent, per
// test_setdefault_without_default_with_non_existent) and returns def.
func (pd *PropertyDict) SetDefault(key string, def any) any {
	if v, ok := pd.values[key]; ok {
		return v
	}

	pd.Set(key, def)

	return def
}

// Delete removes key. Deleting an absent key returns errs.ErrKeyNotFound,
// matching standard mapping semantics; use Set(key, nil) for a tolerant
// removal.
func (pd *PropertyDict) Delete(key string) error {
	if _, exists := pd.values[key]; !exists {
		return fmt.Errorf("%w: %q", errs.ErrKeyNotFound, key)
	}

	pd.remove(key)

	return nil
}

func (pd *PropertyDict) remove(key string) {
	if _, exists := pd.values[key]; !exists {
		return
	}

	delete(pd.values, key)
	for i, k := range pd.keys {
		if k == key {
			pd.keys = append(pd.keys[:i], pd.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of defined keys.
func (pd *PropertyDict) Len() int { return len(pd.keys) }

// All iterates entries in insertion order.
func (pd *PropertyDict) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range pd.keys {
			if !yield(k, pd.values[k]) {
				return
			}
		}
	}
}

// Equal reports whether pd and other define the same keys mapped to equal
// values, irrespective of insertion order. Values compare with ==, except
// []string, []any and map[string]any values, which compare by content.
func (pd *PropertyDict) Equal(other *PropertyDict) bool {
	if pd == nil || other == nil {
		return pd == other
	}
	if pd.Len() != other.Len() {
		return false
	}

	for k, v := range pd.values {
		ov, ok := other.values[k]
		if !ok || !shallowEqual(v, ov) {
			return false
		}
	}

	return true
}

func shallowEqual(a, b any) bool {
	if isComparable(a) && isComparable(b) {
		return a == b
	}

	return deepSliceEqual(a, b)
}

func isComparable(v any) bool {
	switch v.(type) {
	case []string, []any, map[string]any:
		return false
	default:
		return true
	}
}

// deepSliceEqual handles the common case of []string property values
// (e.g. "colours": ["red", "purple"]) without pulling in reflect.DeepEqual
// for every comparison.
func deepSliceEqual(a, b any) bool {
	as, aok := a.([]string)
	bs, bok := b.([]string)
	if aok && bok {
		if len(as) != len(bs) {
			return false
		}
		for i := range as {
			if as[i] != bs[i] {
				return false
			}
		}

		return true
	}

	return reflect.DeepEqual(a, b)
}
