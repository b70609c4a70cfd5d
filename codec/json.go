package codec

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math"
	"strconv"
	"time"

	j "github.com/goccy/go-json"

	bemu "github.com/reoring/bemu"
	"github.com/reoring/bemu/i18n"
	eng "github.com/reoring/bemu/internal/engine"
	"github.com/reoring/bemu/source/gojson"
)

// DuplicatePolicy selects how DecodeJSON treats an object key that repeats
// within the same object.
type DuplicatePolicy int

const (
	// DuplicateKeep keeps every occurrence as a separate child; lookups by
	// name return the first one.
	DuplicateKeep DuplicatePolicy = iota
	// DuplicateWarn keeps every occurrence and reports each repeat to
	// DecodeOpt.OnWarning.
	DuplicateWarn
	// DuplicateReject fails decoding with a duplicate_key issue.
	DuplicateReject
)

// DecodeOpt tunes JSON decoding. The zero value imposes no limits.
type DecodeOpt struct {
	MaxDepth       int
	MaxBytes       int64
	OnDuplicate    DuplicatePolicy
	ParseDatetimes bool // strings holding RFC 3339 timestamps or dates become Datetime scalars
	OnWarning      func(bemu.Issue)
}

func pickOpt(opts []DecodeOpt) DecodeOpt {
	if len(opts) > 0 {
		return opts[0]
	}
	return DecodeOpt{}
}

// DecodeJSON builds an element named name from a JSON document.
func DecodeJSON(name string, data []byte, opts ...DecodeOpt) (bemu.Element, error) {
	return decodeJSON(context.Background(), name, gojson.NewBytes(data), pickOpt(opts))
}

// DecodeJSONReader is DecodeJSON over a stream. Cancellation of ctx is
// observed between containers.
func DecodeJSONReader(ctx context.Context, name string, r io.Reader, opts ...DecodeOpt) (bemu.Element, error) {
	return decodeJSON(ctx, name, gojson.NewReader(r), pickOpt(opts))
}

func decodeJSON(ctx context.Context, name string, src eng.TokenSource, opt DecodeOpt) (bemu.Element, error) {
	eo := eng.EnforceOptions{MaxDepth: opt.MaxDepth, MaxBytes: opt.MaxBytes}
	switch opt.OnDuplicate {
	case DuplicateWarn:
		eo.OnDuplicate = eng.DupWarn
		if opt.OnWarning != nil {
			eo.IssueSink = func(si eng.SimpleIssue) { opt.OnWarning(fromSimple(si)) }
		}
	case DuplicateReject:
		eo.OnDuplicate = eng.DupError
	}
	d := &jsonDecoder{ctx: ctx, src: eng.WrapWithEnforcement(src, eo), opt: opt}

	root := bemu.RootPath()
	tok, err := d.src.NextToken()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, bemu.Issues{root.Issue(bemu.CodeParseError, i18n.T(bemu.CodeParseError, nil), "reason", "empty input")}
		}
		return nil, d.fail(root, err)
	}
	e, err := d.value(name, tok, root)
	if err != nil {
		return nil, err
	}
	if _, err := d.src.NextToken(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, d.fail(root, err)
		}
		return nil, bemu.Issues{root.Issue(bemu.CodeParseError, i18n.T(bemu.CodeParseError, nil), "reason", "trailing data")}
	}
	return e, nil
}

type jsonDecoder struct {
	ctx context.Context
	src eng.TokenSource
	opt DecodeOpt
}

func fromSimple(si eng.SimpleIssue) bemu.Issue {
	return bemu.Issue{Path: si.Path, Code: si.Code, Message: i18n.T(si.Code, nil), Params: map[string]any{"reason": si.Message}}
}

// fail converts a token source error into Issues located at p.
func (d *jsonDecoder) fail(p bemu.PathRef, err error) error {
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return bemu.Issues{fromSimple(ie.SimpleIssue)}
	}
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	is := p.Issue(bemu.CodeParseError, i18n.T(bemu.CodeParseError, nil), "reason", err.Error())
	is.Cause = err
	return bemu.Issues{is}
}

func (d *jsonDecoder) next(p bemu.PathRef) (eng.Token, error) {
	tok, err := d.src.NextToken()
	if err != nil {
		return eng.Token{}, d.fail(p, err)
	}
	return tok, nil
}

func (d *jsonDecoder) value(name string, tok eng.Token, p bemu.PathRef) (bemu.Element, error) {
	switch tok.Kind {
	case eng.KindBeginObject:
		return d.object(name, p)
	case eng.KindBeginArray:
		return d.array(name, p)
	case eng.KindString:
		if d.opt.ParseDatetimes && looksLikeTime(tok.String) {
			if t, dateOnly, err := ParseTime(tok.String); err == nil {
				return timeScalar(name, t, dateOnly), nil
			}
		}
		return bemu.NewString(name, tok.String), nil
	case eng.KindNumber:
		return number(name, tok.Number, p)
	case eng.KindBool:
		return bemu.NewBool(name, tok.Bool), nil
	case eng.KindNull:
		return bemu.NewNull(name), nil
	}
	return nil, bemu.Issues{p.Issue(bemu.CodeParseError, i18n.T(bemu.CodeParseError, nil), "reason", "unexpected "+tok.Kind.String())}
}

func (d *jsonDecoder) object(name string, p bemu.PathRef) (bemu.Element, error) {
	if err := d.ctx.Err(); err != nil {
		return nil, err
	}
	var children []bemu.Element
	for {
		tok, err := d.next(p)
		if err != nil {
			return nil, err
		}
		if tok.Kind == eng.KindEndObject {
			return bemu.NewComplex(name, children...), nil
		}
		if tok.Kind != eng.KindKey {
			return nil, d.fail(p, io.ErrUnexpectedEOF)
		}
		cp := p.Field(tok.String)
		vt, err := d.next(cp)
		if err != nil {
			return nil, err
		}
		child, err := d.value(tok.String, vt, cp)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
}

func (d *jsonDecoder) array(name string, p bemu.PathRef) (bemu.Element, error) {
	if err := d.ctx.Err(); err != nil {
		return nil, err
	}
	var items []bemu.Element
	for {
		ip := p.Index(len(items))
		tok, err := d.next(ip)
		if err != nil {
			return nil, err
		}
		if tok.Kind == eng.KindEndArray {
			return bemu.NewArray(name, items...), nil
		}
		it, err := d.value(name, tok, ip)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
}

func number(name, lit string, p bemu.PathRef) (bemu.Element, error) {
	if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
		if i >= math.MinInt32 && i <= math.MaxInt32 {
			return bemu.NewInt32(name, int32(i)), nil
		}
		return bemu.NewInt64(name, i), nil
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return nil, bemu.Issues{p.Issue(bemu.CodeOverflow,
			i18n.T(bemu.CodeOverflow, map[string]string{"want": bemu.DatatypeFloat64.String()}),
			"want", bemu.DatatypeFloat64.String(), "literal", lit)}
	}
	return bemu.NewFloat64(name, f), nil
}

func timeScalar(name string, t time.Time, dateOnly bool) bemu.Element {
	if dateOnly {
		return bemu.NewDate(name, t)
	}
	return bemu.NewDatetime(name, t)
}

// ---- encoding ----

// MarshalJSON renders e as {"name": value}, keeping child order.
func MarshalJSON(e bemu.Element) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeJSON(&buf, e); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeJSON writes the MarshalJSON form of e to w.
func EncodeJSON(w io.Writer, e bemu.Element) error {
	enc := &jsonEncoder{}
	enc.buf.WriteByte('{')
	if err := enc.key(e.Name().String()); err != nil {
		return err
	}
	if err := enc.value(e, bemu.RootPath().Field(e.Name().String())); err != nil {
		return err
	}
	enc.buf.WriteByte('}')
	_, err := w.Write(enc.buf.Bytes())
	return err
}

type jsonEncoder struct {
	buf bytes.Buffer
}

func (enc *jsonEncoder) key(k string) error {
	b, err := j.Marshal(k)
	if err != nil {
		return err
	}
	enc.buf.Write(b)
	enc.buf.WriteByte(':')
	return nil
}

func (enc *jsonEncoder) value(e bemu.Element, p bemu.PathRef) error {
	switch x := e.(type) {
	case *bemu.Complex:
		enc.buf.WriteByte('{')
		for i, c := range x.Elements() {
			if i > 0 {
				enc.buf.WriteByte(',')
			}
			if err := enc.key(c.Name().String()); err != nil {
				return err
			}
			if err := enc.value(c, p.Field(c.Name().String())); err != nil {
				return err
			}
		}
		enc.buf.WriteByte('}')
		return nil
	case *bemu.Array:
		enc.buf.WriteByte('[')
		for i, it := range x.Elements() {
			if i > 0 {
				enc.buf.WriteByte(',')
			}
			if err := enc.value(it, p.Index(i)); err != nil {
				return err
			}
		}
		enc.buf.WriteByte(']')
		return nil
	}
	return enc.scalar(e, p)
}

type dateOnlyReporter interface{ IsDateOnly() bool }

func (enc *jsonEncoder) scalar(e bemu.Element, p bemu.PathRef) error {
	var (
		v   any
		err error
	)
	switch e.Datatype() {
	case bemu.DatatypeNull:
		enc.buf.WriteString("null")
		return nil
	case bemu.DatatypeBool:
		v, err = e.ValueAsBool(0)
	case bemu.DatatypeInt32, bemu.DatatypeInt64:
		v, err = e.ValueAsInt64(0)
	case bemu.DatatypeFloat32:
		v, err = e.ValueAsFloat32(0)
	case bemu.DatatypeFloat64:
		v, err = e.ValueAsFloat64(0)
	case bemu.DatatypeDatetime:
		var t time.Time
		t, err = e.ValueAsDatetime(0)
		d, _ := e.(dateOnlyReporter)
		v = FormatTime(t, d != nil && d.IsDateOnly())
	default:
		v, err = e.ValueAsString(0)
	}
	if err != nil {
		return err
	}
	b, err := j.Marshal(v)
	if err != nil {
		is := p.Issue(bemu.CodeUnsupported, i18n.T(bemu.CodeUnsupported, map[string]string{"have": e.Datatype().String()}),
			"have", e.Datatype().String())
		is.Cause = err
		return bemu.Issues{is}
	}
	enc.buf.Write(b)
	return nil
}
