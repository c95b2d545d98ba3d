package value

import "iter"

// Dictionary is an ordered string-keyed map: insertion order is preserved
// across Set calls, and re-setting an existing key updates its value
// in place without moving it to the end.
type Dictionary struct {
	keys   []string
	values map[string]Value
}

// NewDictionary constructs an empty Dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{values: make(map[string]Value)}
}

// Set inserts or updates key. A new key is appended to the iteration order;
// an existing key's value is replaced in place.
func (d *Dictionary) Set(key string, v Value) {
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}

	d.values[key] = v
}

// Get returns the value stored for key; ok is false if key is absent.
func (d *Dictionary) Get(key string) (v Value, ok bool) {
	v, ok = d.values[key]
	return v, ok
}

// Delete removes key, if present, shifting no other key's relative order.
func (d *Dictionary) Delete(key string) {
	if _, exists := d.values[key]; !exists {
		return
	}

	delete(d.values, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (d *Dictionary) Len() int { return len(d.keys) }

// All iterates entries in insertion order.
func (d *Dictionary) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, k := range d.keys {
			if !yield(k, d.values[k]) {
				return
			}
		}
	}
}

// Equal reports whether d and other contain the same keys mapped to equal
// values, irrespective of insertion order.
func (d *Dictionary) Equal(other *Dictionary) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.Len() != other.Len() {
		return false
	}

	for k, v := range d.values {
		ov, ok := other.values[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}

	return true
}
