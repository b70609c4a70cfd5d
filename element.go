package bemu

import (
	"io"
	"strconv"
	"time"

	"github.com/reoring/bemu/i18n"
)

// Element is the capability surface shared by every node of a response tree.
//
// The set of implementations is closed: *Scalar, *Object, *Complex and *Array.
// Accessors validate the index first (OutOfRange) and the held type second
// (TypeMismatch). Name lookups are exact and case sensitive.
type Element interface {
	Name() Name
	Datatype() Datatype

	// NumValues reports how many values the element holds directly: 1 for
	// scalars, 0 for complex elements and the item count for arrays.
	NumValues() int
	// NumElements reports the number of child elements (0 for scalars).
	NumElements() int

	IsArray() bool
	IsComplexType() bool
	IsNull() bool

	ValueAsBool(index int) (bool, error)
	ValueAsInt32(index int) (int32, error)
	ValueAsInt64(index int) (int64, error)
	ValueAsFloat32(index int) (float32, error)
	ValueAsFloat64(index int) (float64, error)
	ValueAsString(index int) (string, error)
	ValueAsDatetime(index int) (time.Time, error)
	ValueAsElement(index int) (Element, error)

	// Element returns the first child named name.
	Element(name string) (Element, error)
	// ElementAt returns the child at position index.
	ElementAt(index int) (Element, error)
	// Elements returns a copy of the child list.
	Elements() []Element
	// HasElement probes for a child named name. With excludeNullElements set,
	// a child whose IsNull is true is treated as absent.
	HasElement(name string, excludeNullElements bool) bool

	ElementAsBool(name string) (bool, error)
	ElementAsInt32(name string) (int32, error)
	ElementAsInt64(name string) (int64, error)
	ElementAsFloat64(name string) (float64, error)
	ElementAsString(name string) (string, error)
	ElementAsDatetime(name string) (time.Time, error)

	// Print renders the element and its descendants, indenting each nesting
	// level by level*spacesPerLevel spaces. A negative spacesPerLevel renders
	// the whole tree on a single line.
	Print(w io.Writer, level, spacesPerLevel int) error
	// String renders the element with Print(level 0, 4 spaces per level).
	String() string

	element()
}

// base carries the name shared by every variant and seals the interface.
type base struct {
	name Name
}

func (b *base) Name() Name { return b.name }

func (*base) element() {}

func (b *base) path() PathRef { return rootPath().Field(b.name.String()) }

// ---- issue constructors ----

func (b *base) outOfRange(index, n int) error {
	return Issues{b.path().Issue(CodeOutOfRange,
		i18n.T(CodeOutOfRange, map[string]string{"index": strconv.Itoa(index), "len": strconv.Itoa(n)}),
		"index", index, "len", n)}
}

func (b *base) mismatch(want, have Datatype) error {
	return Issues{b.path().Issue(CodeTypeMismatch,
		i18n.T(CodeTypeMismatch, map[string]string{"want": want.String(), "have": have.String()}),
		"want", want.String(), "have", have.String())}
}

func (b *base) nullValue(want Datatype) error {
	return Issues{b.path().Issue(CodeTypeMismatch, i18n.T("null_value", nil),
		"want", want.String(), "have", DatatypeNull.String(), "null", true)}
}

func (b *base) overflow(want Datatype) error {
	return Issues{b.path().Issue(CodeOverflow,
		i18n.T(CodeOverflow, map[string]string{"want": want.String()}),
		"want", want.String())}
}

func (b *base) notFound(child string) error {
	return Issues{b.path().Field(child).Issue(CodeNotFound,
		i18n.T(CodeNotFound, map[string]string{"name": child}),
		"name", child)}
}

// ---- leaf child access (scalars have no children) ----

type leaf struct{ base }

func (l *leaf) NumElements() int { return 0 }

func (l *leaf) Element(name string) (Element, error) { return nil, l.notFound(name) }

func (l *leaf) ElementAt(index int) (Element, error) { return nil, l.outOfRange(index, 0) }

func (l *leaf) Elements() []Element { return nil }

func (l *leaf) HasElement(string, bool) bool { return false }

func (l *leaf) ElementAsBool(name string) (bool, error)       { return false, l.notFound(name) }
func (l *leaf) ElementAsInt32(name string) (int32, error)     { return 0, l.notFound(name) }
func (l *leaf) ElementAsInt64(name string) (int64, error)     { return 0, l.notFound(name) }
func (l *leaf) ElementAsFloat64(name string) (float64, error) { return 0, l.notFound(name) }
func (l *leaf) ElementAsString(name string) (string, error)   { return "", l.notFound(name) }
func (l *leaf) ElementAsDatetime(name string) (time.Time, error) {
	return time.Time{}, l.notFound(name)
}
