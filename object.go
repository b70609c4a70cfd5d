package bemu

import (
	"fmt"
	"math"
	"time"

	"github.com/reoring/bemu/i18n"
)

// Object is a scalar whose name and value can be replaced after
// construction. It exists for corrective patch-in-place while a response is
// being assembled; it is not synchronized.
//
// A nil value makes the element null.
type Object struct {
	Scalar
}

// NewObject wraps v, which must be nil, a bool, an integer, a float, a
// string, a []byte, a time.Time or a fmt.Stringer.
func NewObject(name string, v any) (*Object, error) {
	o := &Object{Scalar: Scalar{leaf: leafNamed(name)}}
	if err := o.SetValue(v); err != nil {
		return nil, err
	}
	return o, nil
}

// MustObject is NewObject that panics on an unsupported value.
func MustObject(name string, v any) *Object {
	o, err := NewObject(name, v)
	if err != nil {
		panic(err)
	}
	return o
}

// SetName renames the element.
func (o *Object) SetName(name string) { o.name = NewName(name) }

// SetValue replaces the held value. On error the element is left unchanged.
func (o *Object) SetValue(v any) error {
	next := Scalar{leaf: o.leaf}
	switch x := v.(type) {
	case nil:
		next.dt = DatatypeNull
	case bool:
		next.dt, next.b = DatatypeBool, x
	case int8:
		next.dt, next.i = DatatypeInt32, int64(x)
	case int16:
		next.dt, next.i = DatatypeInt32, int64(x)
	case int32:
		next.dt, next.i = DatatypeInt32, int64(x)
	case uint8:
		next.dt, next.i = DatatypeInt32, int64(x)
	case uint16:
		next.dt, next.i = DatatypeInt32, int64(x)
	case int:
		next.dt, next.i = DatatypeInt64, int64(x)
	case int64:
		next.dt, next.i = DatatypeInt64, x
	case uint32:
		next.dt, next.i = DatatypeInt64, int64(x)
	case uint:
		if uint64(x) > math.MaxInt64 {
			return o.overflow(DatatypeInt64)
		}
		next.dt, next.i = DatatypeInt64, int64(x)
	case uint64:
		if x > math.MaxInt64 {
			return o.overflow(DatatypeInt64)
		}
		next.dt, next.i = DatatypeInt64, int64(x)
	case float32:
		next.dt, next.f = DatatypeFloat32, float64(x)
	case float64:
		next.dt, next.f = DatatypeFloat64, x
	case string:
		next.dt, next.s = DatatypeString, x
	case []byte:
		next.dt, next.s = DatatypeString, string(x)
	case time.Time:
		next.dt, next.t = DatatypeDatetime, x
	case fmt.Stringer:
		next.dt, next.s = DatatypeString, x.String()
	default:
		return Issues{o.path().Issue(CodeInvalidValue, i18n.T(CodeInvalidValue, nil), "type", fmt.Sprintf("%T", v))}
	}
	o.Scalar = next
	return nil
}
