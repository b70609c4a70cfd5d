package bemu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/reoring/bemu/i18n"
)

// PathRef builds JSON Pointer paths in a chain-safe way and creates Issues.
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	Pointer() string
	Issue(code, msg string, kv ...any) Issue
}

type pathRef struct {
	parts []string
}

// RootPath returns the empty pointer "/".
func RootPath() PathRef { return rootPath() }

func rootPath() *pathRef { return &pathRef{} }

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func (p *pathRef) Field(name string) PathRef {
	if name == "" {
		return p
	}
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	return &pathRef{parts: append(append([]string{}, p.parts...), pointerEscaper.Replace(name))}
}

func (p *pathRef) Index(i int) PathRef {
	return &pathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

func (p *pathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

func (p *pathRef) Issue(code, msg string, kv ...any) Issue {
	m := map[string]any{}
	for i := 0; i+1 < len(kv); i += 2 {
		m[fmt.Sprint(kv[i])] = kv[i+1]
	}
	return Issue{Path: p.Pointer(), Code: code, Message: msg, Params: m}
}

// SplitPointer decodes a JSON Pointer into its unescaped reference tokens.
// "" and "/" both denote the root and yield no tokens.
func SplitPointer(pointer string) ([]string, error) {
	if pointer == "" || pointer == "/" {
		return nil, nil
	}
	if !strings.HasPrefix(pointer, "/") {
		return nil, Issues{{Path: pointer, Code: CodeInvalidValue, Message: "pointer must start with '/'"}}
	}
	raw := strings.Split(pointer[1:], "/")
	out := make([]string, len(raw))
	for i, t := range raw {
		out[i] = strings.ReplaceAll(strings.ReplaceAll(t, "~1", "/"), "~0", "~")
	}
	return out, nil
}

// Find resolves pointer against the children of root. Names select children
// of complex elements; on arrays a token must be a decimal index. Issues
// carry the pointer prefix that failed.
func Find(root Element, pointer string) (Element, error) {
	tokens, err := SplitPointer(pointer)
	if err != nil {
		return nil, err
	}
	cur := root
	var at PathRef = rootPath()
	for _, tok := range tokens {
		switch {
		case cur.IsArray():
			i, convErr := strconv.Atoi(tok)
			at = at.Field(tok)
			if convErr != nil {
				return nil, Issues{at.Issue(CodeNotFound, i18n.T(CodeNotFound, map[string]string{"name": tok}), "name", tok)}
			}
			next, err := cur.ElementAt(i)
			if err != nil {
				return nil, Issues{at.Issue(CodeOutOfRange,
					i18n.T(CodeOutOfRange, map[string]string{"index": tok, "len": strconv.Itoa(cur.NumElements())}),
					"index", i, "len", cur.NumElements())}
			}
			cur = next
		default:
			at = at.Field(tok)
			next, err := cur.Element(tok)
			if err != nil {
				return nil, Issues{at.Issue(CodeNotFound, i18n.T(CodeNotFound, map[string]string{"name": tok}), "name", tok)}
			}
			cur = next
		}
	}
	return cur, nil
}

// SkipChildren may be returned by a WalkFunc to skip the descendants of the
// element just visited.
var SkipChildren = errors.New("bemu: skip children")

// WalkFunc is called for every element visited by Walk with its pointer
// relative to the root ("/" for the root itself).
type WalkFunc func(p PathRef, e Element) error

// Walk visits root and its descendants depth first in document order.
// Array items are addressed by index, complex children by name.
func Walk(root Element, fn WalkFunc) error {
	err := walk(rootPath(), root, fn)
	if errors.Is(err, SkipChildren) {
		return nil
	}
	return err
}

func walk(p PathRef, e Element, fn WalkFunc) error {
	if err := fn(p, e); err != nil {
		return err
	}
	children := e.Elements()
	for i, c := range children {
		cp := p.Field(c.Name().String())
		if e.IsArray() {
			cp = p.Index(i)
		}
		if err := walk(cp, c, fn); err != nil {
			if errors.Is(err, SkipChildren) {
				continue
			}
			return err
		}
	}
	return nil
}
