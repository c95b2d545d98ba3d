// Package version implements the interchange codec's protocol version gate.
//
// A Version is the (major, minor) tuple negotiated per pack/unpack call.
// The Gate it backs decides which Structure tags and value kinds that
// version admits. Version comparison is delegated to
// github.com/hashicorp/go-version rather than a hand-rolled tuple compare, the
// same way facebook-time's calnex/firmware package compares a device's
// running firmware version against the version it requires.
package version

import (
	"fmt"

	hcversion "github.com/hashicorp/go-version"

	"github.com/nascanti/interchange/errs"
	"github.com/nascanti/interchange/value"
)

// Version is a protocol version tuple. The zero value, Version{}, is (0, 0)
// and admits none of the extended kinds.
type Version struct {
	Major int
	Minor int
}

// V1_0 is the base protocol version: only the core value kinds (null,
// boolean, integer, float, string, bytes, list, dict, structure) are legal.
//
//nolint:revive // V1_0/V2_0 mirror the protocol's own dotted naming.
var V1_0 = Version{Major: 1, Minor: 0}

// V2_0 is the first protocol version that admits temporal and spatial kinds.
var V2_0 = Version{Major: 2, Minor: 0}

// String renders the version the way the wire protocol names it, "major.minor".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// semver renders v as a three-component semver string so it can be compared
// with github.com/hashicorp/go-version, which does not parse bare "major.minor"
// tuples.
func (v Version) semver() (*hcversion.Version, error) {
	return hcversion.NewVersion(fmt.Sprintf("%d.%d.0", v.Major, v.Minor))
}

// extendedConstraint is the minimum version that admits temporal and spatial
// kinds. Built once; Gate is otherwise stateless.
var extendedConstraint = mustConstraints(">= 2.0")

func mustConstraints(s string) hcversion.Constraints {
	c, err := hcversion.NewConstraint(s)
	if err != nil {
		panic(err) // constant input; a parse failure here is a programming error
	}

	return c
}

// Gate answers admission questions for a negotiated Version. Gate has no
// fields and no mutable state: every method takes the Version explicitly.
type Gate struct{}

// NewGate returns the stateless version gate.
func NewGate() Gate { return Gate{} }

// AdmitsExtended reports whether v admits temporal and spatial Structure tags.
func (Gate) AdmitsExtended(v Version) bool {
	sv, err := v.semver()
	if err != nil {
		return false
	}

	return extendedConstraint.Check(sv)
}

// Check returns an error wrapping errs.ErrVersionMismatch when kind is not
// admitted under v. Only the extended kinds (temporal and spatial) are
// version-gated; the core kinds are legal under every version.
func (g Gate) Check(v Version, kind value.Kind) error {
	if !kind.IsExtended() {
		return nil
	}

	if !g.AdmitsExtended(v) {
		return fmt.Errorf("%w: %s requires protocol version >= %s, negotiated %s",
			errs.ErrVersionMismatch, kind, V2_0, v)
	}

	return nil
}
