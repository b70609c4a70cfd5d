package bemu

import (
	"io"
	"strconv"
	"strings"
)

// Fprint renders e and its descendants to w.
//
//	name = value            scalar (strings quoted)
//	name = {                complex, children one level deeper
//	}
//	name[] = {              array, scalar items as bare values
//	}
//
// Each line is indented by level*spacesPerLevel spaces. A negative
// spacesPerLevel puts every token on one line separated by single spaces.
// The first write error stops rendering and is returned.
func Fprint(w io.Writer, e Element, level, spacesPerLevel int) error {
	if level < 0 {
		level = 0
	}
	p := &printer{w: w, spaces: spacesPerLevel}
	p.element(e, level, false)
	return p.err
}

type printer struct {
	w      io.Writer
	spaces int
	wrote  bool
	err    error
	buf    strings.Builder
}

func (p *printer) line(level int, parts ...string) {
	if p.err != nil {
		return
	}
	p.buf.Reset()
	if p.spaces < 0 {
		if p.wrote {
			p.buf.WriteByte(' ')
		}
	} else {
		p.buf.WriteString(strings.Repeat(" ", level*p.spaces))
	}
	for _, s := range parts {
		p.buf.WriteString(s)
	}
	if p.spaces >= 0 {
		p.buf.WriteByte('\n')
	}
	_, p.err = io.WriteString(p.w, p.buf.String())
	p.wrote = true
}

func (p *printer) element(e Element, level int, bare bool) {
	switch x := e.(type) {
	case *Complex:
		p.line(level, x.Name().String(), " = {")
		for _, c := range x.children {
			p.element(c, level+1, false)
		}
		p.line(level, "}")
	case *Array:
		p.line(level, x.Name().String(), "[] = {")
		for _, it := range x.items {
			p.element(it, level+1, true)
		}
		p.line(level, "}")
	case *Object:
		p.scalar(&x.Scalar, level, bare)
	case *Scalar:
		p.scalar(x, level, bare)
	}
}

func (p *printer) scalar(s *Scalar, level int, bare bool) {
	v := s.text()
	if s.dt == DatatypeString {
		v = strconv.Quote(v)
	}
	if bare {
		p.line(level, v)
		return
	}
	p.line(level, s.Name().String(), " = ", v)
}
