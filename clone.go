package bemu

// Renamed returns a deep copy of e named name. Descendants are copied under
// their own names, so the copy shares nothing with e.
func Renamed(e Element, name string) Element {
	switch x := e.(type) {
	case *Object:
		c := *x
		c.name = NewName(name)
		return &c
	case *Scalar:
		c := *x
		c.name = NewName(name)
		return &c
	case *Complex:
		return &Complex{base: base{name: NewName(name)}, children: cloneAll(x.children)}
	case *Array:
		return &Array{base: base{name: NewName(name)}, items: cloneAll(x.items)}
	}
	return nil
}

func cloneAll(src []Element) []Element {
	out := make([]Element, len(src))
	for i, e := range src {
		out[i] = Renamed(e, e.Name().String())
	}
	return out
}
