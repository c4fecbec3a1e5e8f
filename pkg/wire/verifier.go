package wire

import (
	"math"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/ajitpratap0/comconfig/pkg/cfgerrors"
)

const (
	// maxBufferSize mirrors FLATBUFFERS_MAX_BUFFER_SIZE: offsets are signed 32-bit.
	maxBufferSize = math.MaxInt32

	DefaultMaxDepth  = 64
	DefaultMaxTables = 1000000
)

// Verifier walks a buffer structurally before typed access is allowed. Once
// it accepts a buffer, every generated accessor reachable from the root reads
// in bounds and sees the type the schema declares.
type Verifier struct {
	buf       []byte
	depth     int
	maxDepth  int
	numTables int
	maxTables int
}

// VerifierOption customizes a Verifier.
type VerifierOption func(*Verifier)

// WithMaxDepth bounds table nesting.
func WithMaxDepth(depth int) VerifierOption {
	return func(v *Verifier) { v.maxDepth = depth }
}

// WithMaxTables bounds the total number of tables visited.
func WithMaxTables(tables int) VerifierOption {
	return func(v *Verifier) { v.maxTables = tables }
}

// NewVerifier creates a verifier over buf.
func NewVerifier(buf []byte, opts ...VerifierOption) *Verifier {
	v := &Verifier{
		buf:       buf,
		maxDepth:  DefaultMaxDepth,
		maxTables: DefaultMaxTables,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// table is a verified table start: its position and its vtable.
type table struct {
	name   string
	pos    uint64
	vtable uint64
	vsize  uint64
}

func (v *Verifier) fail(format string, args ...interface{}) error {
	return cfgerrors.Newf(cfgerrors.ErrorTypeIntegrity, format, args...)
}

// inBounds reports whether [pos, pos+size) lies inside the buffer.
func (v *Verifier) inBounds(pos, size uint64) bool {
	n := uint64(len(v.buf))
	return size <= n && pos <= n-size
}

func (v *Verifier) aligned(pos, size, align uint64) bool {
	return pos%align == 0 && v.inBounds(pos, size)
}

// buffer checks the buffer envelope and hands the root table to root.
func (v *Verifier) buffer(identifier string, root func(*Verifier, uint64) error) error {
	if uint64(len(v.buf)) > maxBufferSize {
		return v.fail("buffer of %d bytes exceeds the maximum size", len(v.buf))
	}
	minSize := flatbuffers.SizeUOffsetT
	if identifier != "" {
		minSize += fileIdentifierLength
	}
	if len(v.buf) < minSize {
		return v.fail("buffer of %d bytes is too small", len(v.buf))
	}
	if identifier != "" {
		got := string(v.buf[flatbuffers.SizeUOffsetT : flatbuffers.SizeUOffsetT+fileIdentifierLength])
		if got != identifier {
			return v.fail("file identifier %q does not match %q", got, identifier)
		}
	}
	pos, err := v.deref(0, "root")
	if err != nil {
		return err
	}
	return root(v, pos)
}

// deref follows the uoffset stored at pos and returns the referenced position.
func (v *Verifier) deref(pos uint64, what string) (uint64, error) {
	if !v.aligned(pos, flatbuffers.SizeUOffsetT, flatbuffers.SizeUOffsetT) {
		return 0, v.fail("offset to %s at %d is misaligned or out of bounds", what, pos)
	}
	o := uint64(flatbuffers.GetUOffsetT(v.buf[pos:]))
	if o == 0 || o > maxBufferSize {
		return 0, v.fail("invalid offset %d to %s at %d", o, what, pos)
	}
	target := pos + o
	if !v.inBounds(target, 1) {
		return 0, v.fail("offset to %s at %d points outside the buffer", what, pos)
	}
	return target, nil
}

// tableStart verifies the soffset, vtable and inline size of a table.
func (v *Verifier) tableStart(pos uint64, name string) (table, error) {
	v.depth++
	v.numTables++
	if v.depth > v.maxDepth {
		return table{}, v.fail("table nesting exceeds depth %d at %s", v.maxDepth, name)
	}
	if v.numTables > v.maxTables {
		return table{}, v.fail("buffer holds more than %d tables", v.maxTables)
	}
	if !v.aligned(pos, flatbuffers.SizeSOffsetT, flatbuffers.SizeSOffsetT) {
		return table{}, v.fail("%s table at %d is misaligned or out of bounds", name, pos)
	}

	vt := int64(pos) - int64(flatbuffers.GetSOffsetT(v.buf[pos:]))
	if vt < 0 || !v.aligned(uint64(vt), flatbuffers.SizeVOffsetT, flatbuffers.SizeVOffsetT) {
		return table{}, v.fail("%s vtable for table at %d is out of bounds", name, pos)
	}
	vtable := uint64(vt)
	vsize := uint64(flatbuffers.GetVOffsetT(v.buf[vtable:]))
	if vsize < 2*flatbuffers.SizeVOffsetT || vsize&1 != 0 || !v.inBounds(vtable, vsize) {
		return table{}, v.fail("%s vtable at %d has invalid size %d", name, vtable, vsize)
	}
	tsize := uint64(flatbuffers.GetVOffsetT(v.buf[vtable+flatbuffers.SizeVOffsetT:]))
	if !v.inBounds(pos, tsize) {
		return table{}, v.fail("%s table at %d overruns the buffer", name, pos)
	}

	return table{name: name, pos: pos, vtable: vtable, vsize: vsize}, nil
}

func (v *Verifier) tableEnd() {
	v.depth--
}

// field returns the absolute position of a field, or 0 when it is absent.
func (v *Verifier) field(t table, vtOffset uint64) uint64 {
	if vtOffset >= t.vsize {
		return 0
	}
	off := uint64(flatbuffers.GetVOffsetT(v.buf[t.vtable+vtOffset:]))
	if off == 0 {
		return 0
	}
	return t.pos + off
}

func (v *Verifier) missing(t table, field string) error {
	return cfgerrors.Newf(cfgerrors.ErrorTypeIntegrity, "required field %s.%s is missing", t.name, field).
		WithDetail("table", t.name).
		WithDetail("field", field)
}

// scalar verifies an inline scalar of the given size.
func (v *Verifier) scalar(t table, vtOffset uint64, size uint64, field string) error {
	p := v.field(t, vtOffset)
	if p == 0 {
		return nil
	}
	if !v.aligned(p, size, size) {
		return v.fail("field %s.%s at %d is misaligned or out of bounds", t.name, field, p)
	}
	return nil
}

// str verifies a string field: length prefix, bytes and NUL terminator.
func (v *Verifier) str(t table, vtOffset uint64, field string, required bool) error {
	p := v.field(t, vtOffset)
	if p == 0 {
		if required {
			return v.missing(t, field)
		}
		return nil
	}
	s, err := v.deref(p, t.name+"."+field)
	if err != nil {
		return err
	}
	if !v.aligned(s, flatbuffers.SizeUOffsetT, flatbuffers.SizeUOffsetT) {
		return v.fail("string %s.%s at %d is misaligned or out of bounds", t.name, field, s)
	}
	n := uint64(flatbuffers.GetUOffsetT(v.buf[s:]))
	start := s + flatbuffers.SizeUOffsetT
	if !v.inBounds(start, n+1) {
		return v.fail("string %s.%s at %d overruns the buffer", t.name, field, s)
	}
	if v.buf[start+n] != 0 {
		return v.fail("string %s.%s at %d is not NUL terminated", t.name, field, s)
	}
	return nil
}

// vector verifies a vector field and returns the position of its first
// element and its length. present is false when the field is absent.
func (v *Verifier) vector(t table, vtOffset uint64, elemSize uint64, field string, required bool) (start, n uint64, present bool, err error) {
	p := v.field(t, vtOffset)
	if p == 0 {
		if required {
			return 0, 0, false, v.missing(t, field)
		}
		return 0, 0, false, nil
	}
	s, err := v.deref(p, t.name+"."+field)
	if err != nil {
		return 0, 0, false, err
	}
	if !v.aligned(s, flatbuffers.SizeUOffsetT, flatbuffers.SizeUOffsetT) {
		return 0, 0, false, v.fail("vector %s.%s at %d is misaligned or out of bounds", t.name, field, s)
	}
	n = uint64(flatbuffers.GetUOffsetT(v.buf[s:]))
	if n >= maxBufferSize/elemSize {
		return 0, 0, false, v.fail("vector %s.%s has too many elements (%d)", t.name, field, n)
	}
	start = s + flatbuffers.SizeUOffsetT
	if !v.inBounds(start, n*elemSize) || start%elemSize != 0 {
		return 0, 0, false, v.fail("vector %s.%s at %d overruns the buffer", t.name, field, s)
	}
	return start, n, true, nil
}

// scalarVector verifies a vector of fixed-size scalars.
func (v *Verifier) scalarVector(t table, vtOffset uint64, elemSize uint64, field string) error {
	_, _, _, err := v.vector(t, vtOffset, elemSize, field, false)
	return err
}

// subTable verifies a nested table field with fn.
func (v *Verifier) subTable(t table, vtOffset uint64, field string, required bool, fn func(*Verifier, uint64) error) error {
	p := v.field(t, vtOffset)
	if p == 0 {
		if required {
			return v.missing(t, field)
		}
		return nil
	}
	target, err := v.deref(p, t.name+"."+field)
	if err != nil {
		return err
	}
	return fn(v, target)
}

// tableVector verifies a vector of tables, each element with fn.
func (v *Verifier) tableVector(t table, vtOffset uint64, field string, required bool, fn func(*Verifier, uint64) error) error {
	start, n, present, err := v.vector(t, vtOffset, flatbuffers.SizeUOffsetT, field, required)
	if err != nil || !present {
		return err
	}
	for i := uint64(0); i < n; i++ {
		target, err := v.deref(start+i*flatbuffers.SizeUOffsetT, t.name+"."+field)
		if err != nil {
			return err
		}
		if err := fn(v, target); err != nil {
			return err
		}
	}
	return nil
}

// verifyTable runs checks against a table in order, stopping at the first failure.
func (v *Verifier) verifyTable(pos uint64, name string, checks func(table) []func() error) error {
	t, err := v.tableStart(pos, name)
	if err != nil {
		return err
	}
	for _, check := range checks(t) {
		if err := check(); err != nil {
			return err
		}
	}
	v.tableEnd()
	return nil
}
