package bemu

import (
	"io"
	"strings"
	"time"
)

// Complex is a sequence: an ordered list of named child elements that it
// owns exclusively.
type Complex struct {
	base
	children []Element
}

// NewComplex builds a complex element from already constructed children.
// Nil children are skipped.
func NewComplex(name string, children ...Element) *Complex {
	c := &Complex{base: base{name: NewName(name)}}
	c.children = appendNonNil(make([]Element, 0, len(children)), children)
	return c
}

func appendNonNil(dst, src []Element) []Element {
	for _, e := range src {
		if e != nil {
			dst = append(dst, e)
		}
	}
	return dst
}

func (c *Complex) Datatype() Datatype  { return DatatypeSequence }
func (c *Complex) NumValues() int      { return 0 }
func (c *Complex) NumElements() int    { return len(c.children) }
func (c *Complex) IsArray() bool       { return false }
func (c *Complex) IsComplexType() bool { return true }
func (c *Complex) IsNull() bool        { return false }

// Complex elements hold no direct values: every index is out of range for
// the scalar accessors.

func (c *Complex) ValueAsBool(index int) (bool, error)       { return false, c.outOfRange(index, 0) }
func (c *Complex) ValueAsInt32(index int) (int32, error)     { return 0, c.outOfRange(index, 0) }
func (c *Complex) ValueAsInt64(index int) (int64, error)     { return 0, c.outOfRange(index, 0) }
func (c *Complex) ValueAsFloat32(index int) (float32, error) { return 0, c.outOfRange(index, 0) }
func (c *Complex) ValueAsFloat64(index int) (float64, error) { return 0, c.outOfRange(index, 0) }
func (c *Complex) ValueAsString(index int) (string, error)   { return "", c.outOfRange(index, 0) }
func (c *Complex) ValueAsDatetime(index int) (time.Time, error) {
	return time.Time{}, c.outOfRange(index, 0)
}

// ValueAsElement returns the child at index, like ElementAt.
func (c *Complex) ValueAsElement(index int) (Element, error) { return c.ElementAt(index) }

func (c *Complex) Element(name string) (Element, error) {
	if e := findChild(c.children, name); e != nil {
		return e, nil
	}
	return nil, c.notFound(name)
}

func (c *Complex) ElementAt(index int) (Element, error) {
	if index < 0 || index >= len(c.children) {
		return nil, c.outOfRange(index, len(c.children))
	}
	return c.children[index], nil
}

func (c *Complex) Elements() []Element { return append([]Element(nil), c.children...) }

func (c *Complex) HasElement(name string, excludeNullElements bool) bool {
	return hasChild(c.children, name, excludeNullElements)
}

func (c *Complex) ElementAsBool(name string) (bool, error) {
	e, err := c.Element(name)
	if err != nil {
		return false, err
	}
	return e.ValueAsBool(0)
}

func (c *Complex) ElementAsInt32(name string) (int32, error) {
	e, err := c.Element(name)
	if err != nil {
		return 0, err
	}
	return e.ValueAsInt32(0)
}

func (c *Complex) ElementAsInt64(name string) (int64, error) {
	e, err := c.Element(name)
	if err != nil {
		return 0, err
	}
	return e.ValueAsInt64(0)
}

func (c *Complex) ElementAsFloat64(name string) (float64, error) {
	e, err := c.Element(name)
	if err != nil {
		return 0, err
	}
	return e.ValueAsFloat64(0)
}

func (c *Complex) ElementAsString(name string) (string, error) {
	e, err := c.Element(name)
	if err != nil {
		return "", err
	}
	return e.ValueAsString(0)
}

func (c *Complex) ElementAsDatetime(name string) (time.Time, error) {
	e, err := c.Element(name)
	if err != nil {
		return time.Time{}, err
	}
	return e.ValueAsDatetime(0)
}

func (c *Complex) Print(w io.Writer, level, spacesPerLevel int) error {
	return Fprint(w, c, level, spacesPerLevel)
}

func (c *Complex) String() string {
	var b strings.Builder
	_ = c.Print(&b, 0, 4)
	return b.String()
}

// ---- shared child lookup ----

func findChild(children []Element, name string) Element {
	for _, e := range children {
		if e.Name().String() == name {
			return e
		}
	}
	return nil
}

func hasChild(children []Element, name string, excludeNull bool) bool {
	e := findChild(children, name)
	if e == nil {
		return false
	}
	return !excludeNull || !e.IsNull()
}
