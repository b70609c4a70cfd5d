package bemu

import (
	"time"

	"github.com/reoring/bemu/i18n"
)

// SequenceBuilder assembles a Complex element child by child. Children keep
// the order in which they were added.
type SequenceBuilder struct {
	name     string
	children []Element
	unique   bool
	nilAt    []int
}

// Sequence starts a builder for a complex element named name.
func Sequence(name string) *SequenceBuilder {
	return &SequenceBuilder{name: name}
}

// Add appends an already constructed child. A nil child makes Build fail.
func (b *SequenceBuilder) Add(children ...Element) *SequenceBuilder {
	for _, c := range children {
		if c == nil {
			b.nilAt = append(b.nilAt, len(b.children))
			continue
		}
		b.children = append(b.children, c)
	}
	return b
}

func (b *SequenceBuilder) AddString(name, v string) *SequenceBuilder {
	return b.Add(NewString(name, v))
}

func (b *SequenceBuilder) AddInt32(name string, v int32) *SequenceBuilder {
	return b.Add(NewInt32(name, v))
}

func (b *SequenceBuilder) AddInt64(name string, v int64) *SequenceBuilder {
	return b.Add(NewInt64(name, v))
}

func (b *SequenceBuilder) AddFloat64(name string, v float64) *SequenceBuilder {
	return b.Add(NewFloat64(name, v))
}

func (b *SequenceBuilder) AddBool(name string, v bool) *SequenceBuilder {
	return b.Add(NewBool(name, v))
}

func (b *SequenceBuilder) AddDatetime(name string, v time.Time) *SequenceBuilder {
	return b.Add(NewDatetime(name, v))
}

// Unique makes Build reject two children with the same name.
func (b *SequenceBuilder) Unique() *SequenceBuilder {
	b.unique = true
	return b
}

// Build validates the collected children and returns the complex element.
func (b *SequenceBuilder) Build() (*Complex, error) {
	var iss Issues
	p := rootPath().Field(b.name)
	if b.name == "" {
		iss = AppendIssues(iss, rootPath().Issue(CodeInvalidValue, i18n.T(CodeInvalidValue, nil), "reason", "empty name"))
	}
	for _, at := range b.nilAt {
		iss = AppendIssues(iss, p.Index(at).Issue(CodeInvalidValue, i18n.T(CodeInvalidValue, nil), "reason", "nil child"))
	}
	if b.unique {
		seen := make(map[string]struct{}, len(b.children))
		for _, c := range b.children {
			n := c.Name().String()
			if _, ok := seen[n]; ok {
				iss = AppendIssues(iss, p.Field(n).Issue(CodeDuplicateKey, i18n.T(CodeDuplicateKey, nil), "name", n))
				continue
			}
			seen[n] = struct{}{}
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return &Complex{base: base{name: NewName(b.name)}, children: append([]Element(nil), b.children...)}, nil
}

// MustBuild is like Build but panics on error.
func (b *SequenceBuilder) MustBuild() *Complex {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}

// Len reports how many children have been added so far.
func (b *SequenceBuilder) Len() int { return len(b.children) }
