package bemu

import (
	"io"
	"strings"
	"time"
)

// Array is an ordered list of items. Each item is an element of its own;
// value accessors read item i as if it were a scalar at index 0.
type Array struct {
	base
	items []Element
}

// NewArray builds an array from already constructed items. Nil items are
// skipped.
func NewArray(name string, items ...Element) *Array {
	a := &Array{base: base{name: NewName(name)}}
	a.items = appendNonNil(make([]Element, 0, len(items)), items)
	return a
}

// NewStringArray builds an array of string scalars that share the array's name.
func NewStringArray(name string, values ...string) *Array {
	items := make([]Element, len(values))
	for i, v := range values {
		items[i] = NewString(name, v)
	}
	return NewArray(name, items...)
}

// Datatype reports the datatype of the items (Null when the array is empty).
func (a *Array) Datatype() Datatype {
	if len(a.items) == 0 {
		return DatatypeNull
	}
	return a.items[0].Datatype()
}

func (a *Array) NumValues() int   { return len(a.items) }
func (a *Array) NumElements() int { return len(a.items) }
func (a *Array) IsArray() bool    { return true }
func (a *Array) IsNull() bool     { return false }

// IsComplexType reports whether any item is itself structured.
func (a *Array) IsComplexType() bool {
	for _, it := range a.items {
		if it.IsComplexType() {
			return true
		}
	}
	return false
}

func (a *Array) item(index int) (Element, error) {
	if index < 0 || index >= len(a.items) {
		return nil, a.outOfRange(index, len(a.items))
	}
	return a.items[index], nil
}

func (a *Array) ValueAsBool(index int) (bool, error) {
	it, err := a.item(index)
	if err != nil {
		return false, err
	}
	return it.ValueAsBool(0)
}

func (a *Array) ValueAsInt32(index int) (int32, error) {
	it, err := a.item(index)
	if err != nil {
		return 0, err
	}
	return it.ValueAsInt32(0)
}

func (a *Array) ValueAsInt64(index int) (int64, error) {
	it, err := a.item(index)
	if err != nil {
		return 0, err
	}
	return it.ValueAsInt64(0)
}

func (a *Array) ValueAsFloat32(index int) (float32, error) {
	it, err := a.item(index)
	if err != nil {
		return 0, err
	}
	return it.ValueAsFloat32(0)
}

func (a *Array) ValueAsFloat64(index int) (float64, error) {
	it, err := a.item(index)
	if err != nil {
		return 0, err
	}
	return it.ValueAsFloat64(0)
}

func (a *Array) ValueAsString(index int) (string, error) {
	it, err := a.item(index)
	if err != nil {
		return "", err
	}
	return it.ValueAsString(0)
}

func (a *Array) ValueAsDatetime(index int) (time.Time, error) {
	it, err := a.item(index)
	if err != nil {
		return time.Time{}, err
	}
	return it.ValueAsDatetime(0)
}

func (a *Array) ValueAsElement(index int) (Element, error) { return a.item(index) }

func (a *Array) Element(name string) (Element, error) {
	if e := findChild(a.items, name); e != nil {
		return e, nil
	}
	return nil, a.notFound(name)
}

func (a *Array) ElementAt(index int) (Element, error) { return a.item(index) }

func (a *Array) Elements() []Element { return append([]Element(nil), a.items...) }

func (a *Array) HasElement(name string, excludeNullElements bool) bool {
	return hasChild(a.items, name, excludeNullElements)
}

func (a *Array) ElementAsBool(name string) (bool, error) {
	e, err := a.Element(name)
	if err != nil {
		return false, err
	}
	return e.ValueAsBool(0)
}

func (a *Array) ElementAsInt32(name string) (int32, error) {
	e, err := a.Element(name)
	if err != nil {
		return 0, err
	}
	return e.ValueAsInt32(0)
}

func (a *Array) ElementAsInt64(name string) (int64, error) {
	e, err := a.Element(name)
	if err != nil {
		return 0, err
	}
	return e.ValueAsInt64(0)
}

func (a *Array) ElementAsFloat64(name string) (float64, error) {
	e, err := a.Element(name)
	if err != nil {
		return 0, err
	}
	return e.ValueAsFloat64(0)
}

func (a *Array) ElementAsString(name string) (string, error) {
	e, err := a.Element(name)
	if err != nil {
		return "", err
	}
	return e.ValueAsString(0)
}

func (a *Array) ElementAsDatetime(name string) (time.Time, error) {
	e, err := a.Element(name)
	if err != nil {
		return time.Time{}, err
	}
	return e.ValueAsDatetime(0)
}

func (a *Array) Print(w io.Writer, level, spacesPerLevel int) error {
	return Fprint(w, a, level, spacesPerLevel)
}

func (a *Array) String() string {
	var b strings.Builder
	_ = a.Print(&b, 0, 4)
	return b.String()
}
