// Package engine defines the token stream the codecs decode element trees
// from, and a wrapper that enforces size, depth and duplicate-key limits on
// any such stream.
package engine

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

var kindNames = [...]string{
	KindBeginObject: "begin-object",
	KindEndObject:   "end-object",
	KindBeginArray:  "begin-array",
	KindEndArray:    "end-array",
	KindKey:         "key",
	KindString:      "string",
	KindNumber:      "number",
	KindBool:        "bool",
	KindNull:        "null",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsValue reports whether a token of this kind starts a value.
func (k Kind) IsValue() bool {
	switch k {
	case KindBeginObject, KindBeginArray, KindString, KindNumber, KindBool, KindNull:
		return true
	}
	return false
}

// Token represents a streaming token. Number keeps the literal text so the
// consumer picks the numeric type.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
	Offset int64
}

// TokenSource is a minimal interface required by the engine.
type TokenSource interface {
	NextToken() (Token, error)
	// Location reports how many input bytes have been consumed, or -1 when
	// the source cannot tell.
	Location() int64
}

// SliceSource replays a fixed token list. It is used by tests and by
// producers that already hold the whole document.
type SliceSource struct {
	Tokens []Token
	pos    int
}

func (s *SliceSource) NextToken() (Token, error) {
	if s.pos >= len(s.Tokens) {
		return Token{}, errEOF
	}
	t := s.Tokens[s.pos]
	s.pos++
	return t, nil
}

func (s *SliceSource) Location() int64 { return -1 }
