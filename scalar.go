package bemu

import (
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

// Layouts used when a Datetime value is rendered as text.
const (
	DateLayout     = "2006-01-02"
	DatetimeLayout = "2006-01-02T15:04:05.000-07:00"
)

// Scalar holds exactly one named, typed value.
//
// Conversion policy: integers widen to Int64/Float32/Float64 and narrow to
// Int32 only when the value fits (Overflow otherwise); floats read as Float32
// (Overflow when a finite value exceeds float32) or Float64 but never as
// integers; strings read only as strings; every non-null value reads as a
// string. Anything else is a TypeMismatch.
type Scalar struct {
	leaf
	dt       Datatype
	i        int64
	f        float64
	s        string
	b        bool
	t        time.Time
	dateOnly bool
}

func NewInt32(name string, v int32) *Scalar {
	return &Scalar{leaf: leafNamed(name), dt: DatatypeInt32, i: int64(v)}
}

func NewInt64(name string, v int64) *Scalar {
	return &Scalar{leaf: leafNamed(name), dt: DatatypeInt64, i: v}
}

func NewFloat32(name string, v float32) *Scalar {
	return &Scalar{leaf: leafNamed(name), dt: DatatypeFloat32, f: float64(v)}
}

func NewFloat64(name string, v float64) *Scalar {
	return &Scalar{leaf: leafNamed(name), dt: DatatypeFloat64, f: v}
}

func NewString(name, v string) *Scalar {
	return &Scalar{leaf: leafNamed(name), dt: DatatypeString, s: v}
}

func NewBool(name string, v bool) *Scalar {
	return &Scalar{leaf: leafNamed(name), dt: DatatypeBool, b: v}
}

// NewDatetime holds a full timestamp.
func NewDatetime(name string, v time.Time) *Scalar {
	return &Scalar{leaf: leafNamed(name), dt: DatatypeDatetime, t: v}
}

// NewDate holds a calendar date; the clock part of v is dropped.
func NewDate(name string, v time.Time) *Scalar {
	y, m, d := v.Date()
	return &Scalar{leaf: leafNamed(name), dt: DatatypeDatetime, t: time.Date(y, m, d, 0, 0, 0, 0, v.Location()), dateOnly: true}
}

// NewNull returns a scalar without a value; IsNull reports true and every
// value accessor fails.
func NewNull(name string) *Scalar {
	return &Scalar{leaf: leafNamed(name), dt: DatatypeNull}
}

func leafNamed(name string) leaf { return leaf{base: base{name: NewName(name)}} }

func (s *Scalar) Datatype() Datatype  { return s.dt }
func (s *Scalar) NumValues() int      { return 1 }
func (s *Scalar) IsArray() bool       { return false }
func (s *Scalar) IsComplexType() bool { return false }
func (s *Scalar) IsNull() bool        { return s.dt == DatatypeNull }

// check validates index then nullness.
func (s *Scalar) check(index int, want Datatype) error {
	if index != 0 {
		return s.outOfRange(index, 1)
	}
	if s.dt == DatatypeNull {
		return s.nullValue(want)
	}
	return nil
}

func (s *Scalar) ValueAsBool(index int) (bool, error) {
	if err := s.check(index, DatatypeBool); err != nil {
		return false, err
	}
	if s.dt != DatatypeBool {
		return false, s.mismatch(DatatypeBool, s.dt)
	}
	return s.b, nil
}

func (s *Scalar) ValueAsInt32(index int) (int32, error) {
	if err := s.check(index, DatatypeInt32); err != nil {
		return 0, err
	}
	if s.dt != DatatypeInt32 && s.dt != DatatypeInt64 {
		return 0, s.mismatch(DatatypeInt32, s.dt)
	}
	if s.i < math.MinInt32 || s.i > math.MaxInt32 {
		return 0, s.overflow(DatatypeInt32)
	}
	return int32(s.i), nil
}

func (s *Scalar) ValueAsInt64(index int) (int64, error) {
	if err := s.check(index, DatatypeInt64); err != nil {
		return 0, err
	}
	if s.dt != DatatypeInt32 && s.dt != DatatypeInt64 {
		return 0, s.mismatch(DatatypeInt64, s.dt)
	}
	return s.i, nil
}

func (s *Scalar) ValueAsFloat32(index int) (float32, error) {
	if err := s.check(index, DatatypeFloat32); err != nil {
		return 0, err
	}
	switch s.dt {
	case DatatypeInt32, DatatypeInt64:
		return float32(s.i), nil
	case DatatypeFloat32, DatatypeFloat64:
		if !math.IsInf(s.f, 0) && !math.IsNaN(s.f) && math.Abs(s.f) > math.MaxFloat32 {
			return 0, s.overflow(DatatypeFloat32)
		}
		return float32(s.f), nil
	}
	return 0, s.mismatch(DatatypeFloat32, s.dt)
}

func (s *Scalar) ValueAsFloat64(index int) (float64, error) {
	if err := s.check(index, DatatypeFloat64); err != nil {
		return 0, err
	}
	switch s.dt {
	case DatatypeInt32, DatatypeInt64:
		return float64(s.i), nil
	case DatatypeFloat32, DatatypeFloat64:
		return s.f, nil
	}
	return 0, s.mismatch(DatatypeFloat64, s.dt)
}

func (s *Scalar) ValueAsString(index int) (string, error) {
	if err := s.check(index, DatatypeString); err != nil {
		return "", err
	}
	return s.text(), nil
}

// ValueAsBytes returns a copy of the character data of a string value.
func (s *Scalar) ValueAsBytes(index int) ([]byte, error) {
	if err := s.check(index, DatatypeString); err != nil {
		return nil, err
	}
	if s.dt != DatatypeString {
		return nil, s.mismatch(DatatypeString, s.dt)
	}
	return []byte(s.s), nil
}

func (s *Scalar) ValueAsDatetime(index int) (time.Time, error) {
	if err := s.check(index, DatatypeDatetime); err != nil {
		return time.Time{}, err
	}
	if s.dt != DatatypeDatetime {
		return time.Time{}, s.mismatch(DatatypeDatetime, s.dt)
	}
	return s.t, nil
}

func (s *Scalar) ValueAsElement(index int) (Element, error) {
	if err := s.check(index, DatatypeSequence); err != nil {
		return nil, err
	}
	return nil, s.mismatch(DatatypeSequence, s.dt)
}

// IsDateOnly reports whether a Datetime value carries only a calendar date.
func (s *Scalar) IsDateOnly() bool { return s.dt == DatatypeDatetime && s.dateOnly }

// text renders the held value; null renders as "null".
func (s *Scalar) text() string {
	switch s.dt {
	case DatatypeBool:
		return strconv.FormatBool(s.b)
	case DatatypeInt32, DatatypeInt64:
		return strconv.FormatInt(s.i, 10)
	case DatatypeFloat32:
		return strconv.FormatFloat(s.f, 'g', -1, 32)
	case DatatypeFloat64:
		return strconv.FormatFloat(s.f, 'g', -1, 64)
	case DatatypeString:
		return s.s
	case DatatypeDatetime:
		if s.dateOnly {
			return s.t.Format(DateLayout)
		}
		return s.t.Format(DatetimeLayout)
	}
	return "null"
}

func (s *Scalar) Print(w io.Writer, level, spacesPerLevel int) error {
	return Fprint(w, s, level, spacesPerLevel)
}

func (s *Scalar) String() string {
	var b strings.Builder
	_ = s.Print(&b, 0, 4)
	return b.String()
}
