// Package refdata synthesizes the error elements of reference and
// historical data responses:
//
//	fieldExceptions[] = {
//	    fieldExceptions = {
//	        fieldId = "ZBID"
//	        errorInfo = {
//	            source = "3920::bbdbd11"
//	            code = 9
//	            category = "BAD_FLD"
//	            message = "Field not valid"
//	            subcategory = "INVALID_FIELD"
//	        }
//	    }
//	}
package refdata

import (
	bemu "github.com/reoring/bemu"
	"github.com/reoring/bemu/catalog"
)

// Element names used in reference and historical responses.
const (
	NameFieldExceptions = "fieldExceptions"
	NameFieldID         = "fieldId"
	NameErrorInfo       = "errorInfo"
	NameSecurityError   = "securityError"
	NameSource          = "source"
	NameCode            = "code"
	NameCategory        = "category"
	NameMessage         = "message"
	NameSubcategory     = "subcategory"
	NameSecurityData    = "securityData"
	NameSecurity        = "security"
	NameSequenceNumber  = "sequenceNumber"
	NameFieldData       = "fieldData"
)

type options struct {
	cat catalog.Catalog
}

// Option customizes synthesized elements.
type Option func(*options)

// WithCatalog replaces the built-in error descriptions.
func WithCatalog(c catalog.Catalog) Option {
	return func(o *options) { o.cat = c }
}

func apply(opts []Option) options {
	o := options{cat: catalog.Default()}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// NewErrorInfo builds an errorInfo element from info.
func NewErrorInfo(info catalog.ErrorInfo) *bemu.Complex {
	return errorInfoNamed(NameErrorInfo, info)
}

func errorInfoNamed(name string, info catalog.ErrorInfo) *bemu.Complex {
	return bemu.NewComplex(name,
		bemu.NewString(NameSource, info.Source),
		bemu.NewInt32(NameCode, info.Code),
		bemu.NewString(NameCategory, info.Category),
		bemu.NewString(NameMessage, info.Message),
		bemu.NewString(NameSubcategory, info.Subcategory),
	)
}

// NewFieldExceptions describes one invalid field: a fieldId scalar followed
// by an errorInfo element.
func NewFieldExceptions(badField string, opts ...Option) *bemu.Complex {
	o := apply(opts)
	return bemu.NewComplex(NameFieldExceptions,
		bemu.NewString(NameFieldID, badField),
		NewErrorInfo(o.cat.FieldError),
	)
}

// NewFieldExceptionsArray builds one fieldExceptions item per bad field, in
// input order.
func NewFieldExceptionsArray(badFields []string, opts ...Option) *bemu.Array {
	items := make([]bemu.Element, len(badFields))
	for i, f := range badFields {
		items[i] = NewFieldExceptions(f, opts...)
	}
	return bemu.NewArray(NameFieldExceptions, items...)
}

// NewSecurityError describes an unknown security. The message carries the
// security name.
func NewSecurityError(security string, opts ...Option) *bemu.Complex {
	o := apply(opts)
	info := o.cat.SecurityError
	info.Message = info.Message + " [" + security + "]"
	return errorInfoNamed(NameSecurityError, info)
}

// NewSecurityData assembles the securityData element of a reference data
// response. Unknown securities (per the catalog) yield a securityError
// instead of field data. Unknown fields go into fieldExceptions; known fields
// are looked up in values and omitted when absent. Each value is copied into
// fieldData under its field name; values itself is left untouched.
func NewSecurityData(security string, sequence int32, fields []string, values map[string]bemu.Element, opts ...Option) *bemu.Complex {
	o := apply(opts)
	b := bemu.Sequence(NameSecurityData).
		AddString(NameSecurity, security).
		AddInt32(NameSequenceNumber, sequence)
	if o.cat.IsInvalid(security) {
		return b.Add(NewSecurityError(security, opts...)).MustBuild()
	}
	valid, invalid := o.cat.Partition(fields)
	if len(invalid) > 0 {
		b.Add(NewFieldExceptionsArray(invalid, opts...))
	}
	fd := bemu.Sequence(NameFieldData)
	for _, f := range valid {
		v, ok := values[f]
		if !ok || v == nil {
			continue
		}
		fd.Add(bemu.Renamed(v, f))
	}
	return b.Add(fd.MustBuild()).MustBuild()
}
