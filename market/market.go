// Package market synthesizes the field exceptions reported when a market
// data subscription starts with unknown fields.
package market

import (
	bemu "github.com/reoring/bemu"
	"github.com/reoring/bemu/catalog"
)

const (
	NameExceptions  = "exceptions"
	NameFieldID     = "fieldId"
	NameReason      = "reason"
	NameSource      = "source"
	NameErrorCode   = "errorCode"
	NameCategory    = "category"
	NameDescription = "description"
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

// NewReason builds the reason element of one field exception.
func NewReason(r catalog.Reason) *bemu.Complex {
	return bemu.NewComplex(NameReason,
		bemu.NewString(NameSource, r.Source),
		bemu.NewInt32(NameErrorCode, r.ErrorCode),
		bemu.NewString(NameCategory, r.Category),
		bemu.NewString(NameDescription, r.Description),
	)
}

// NewException describes one unknown field.
func NewException(badField string, opts ...Option) *bemu.Complex {
	o := apply(opts)
	return bemu.NewComplex(NameExceptions,
		bemu.NewString(NameFieldID, badField),
		NewReason(o.cat.MarketField),
	)
}

// NewExceptionsArray builds one exception per bad field, in input order.
func NewExceptionsArray(badFields []string, opts ...Option) *bemu.Array {
	items := make([]bemu.Element, len(badFields))
	for i, f := range badFields {
		items[i] = NewException(f, opts...)
	}
	return bemu.NewArray(NameExceptions, items...)
}

// SubscriptionStarted assembles the body of a SubscriptionStarted message for
// the requested fields. The exceptions array is present only when at least
// one field is unknown to the catalog.
func SubscriptionStarted(fields []string, opts ...Option) *bemu.Complex {
	o := apply(opts)
	b := bemu.Sequence("SubscriptionStarted")
	if _, invalid := o.cat.Partition(fields); len(invalid) > 0 {
		b.Add(NewExceptionsArray(invalid, opts...))
	}
	return b.MustBuild()
}
