package version

import (
	"slices"
	"strings"
	"sync/atomic"

	pep440 "github.com/aquasecurity/go-pep440-version"
)

// Version is a parsed, comparable version string.
// The zero Version is unparsed and prints as the empty string.
type Version struct {
	pep   pep440.Version
	valid bool
}

// Valid reports whether ver came from a successful Parse.
func (ver Version) Valid() bool {
	return ver.valid
}

// String is the normalized form, e.g. "1.0.post2" for "1.0-2".
func (ver Version) String() string {
	if !ver.valid {
		return ""
	}
	return ver.pep.String()
}

// Comparator is the structured version comparison capability.
type Comparator interface {
	// Available reports whether the comparator can parse at all.
	Available() bool
	// Parse a version string.
	Parse(s string) (Version, error)
	// Compare returns -1, 0 or +1 as a sorts before, with or after b.
	Compare(a, b Version) int
}

// PEP440 compares Python package versions, the format the bundle
// generator emits.
type PEP440 struct{}

var _ Comparator = PEP440{}

func (PEP440) Available() bool { return true }

func (PEP440) Parse(s string) (ver Version, err error) {
	pep, err := pep440.Parse(strings.TrimSpace(s))
	if err != nil {
		err = ErrSyntax(s)
		return
	}

	ver = Version{pep: pep, valid: true}
	return
}

// Compare orders unparsed versions before every parsed one.
func (PEP440) Compare(a, b Version) int {
	switch {
	case !a.valid && !b.valid:
		return 0
	case !a.valid:
		return -1
	case !b.valid:
		return 1
	}
	return a.pep.Compare(b.pep)
}

// Unavailable is the comparator used when structured comparison is
// switched off. It parses nothing.
type Unavailable struct{}

var _ Comparator = Unavailable{}

func (Unavailable) Available() bool { return false }

func (Unavailable) Parse(s string) (Version, error) {
	return Version{}, ErrUnavailable
}

func (Unavailable) Compare(a, b Version) int {
	return 0
}

// Sort orders vers with comp.
func Sort(comp Comparator, vers []Version) {
	slices.SortStableFunc(vers, comp.Compare)
}

// capability is the comparator in use and the records parsed with it.
type capability struct {
	comp   Comparator
	parsed [len(records)]Version
	ok     [len(records)]bool
}

var current atomic.Pointer[capability]

func init() {
	SetComparator(PEP440{})
}

// SetComparator selects the comparison capability and reparses the
// records with it. A nil comp selects Unavailable. It is meant to be
// called once, at startup.
func SetComparator(comp Comparator) {
	if comp == nil {
		comp = Unavailable{}
	}

	capa := &capability{comp: comp}
	for n, rec := range records {
		capa.parsed[n], capa.ok[n] = rec.Parsed(comp)
	}

	current.Store(capa)
}

// CurrentComparator returns the comparator selected by SetComparator.
func CurrentComparator() Comparator {
	return current.Load().comp
}

// Parsed returns the parsed version of axis. It reports false when the
// comparison capability is unavailable.
func Parsed(axis Axis) (ver Version, ok bool) {
	if axis < 0 || int(axis) >= len(records) {
		return
	}

	capa := current.Load()
	return capa.parsed[axis], capa.ok[axis]
}
