package codec

import (
	"math"
	"time"

	"gopkg.in/yaml.v3"

	bemu "github.com/reoring/bemu"
	"github.com/reoring/bemu/i18n"
)

// DecodeYAML builds an element named name from a YAML document. Mappings
// become Complex elements, sequences Arrays, and scalars are typed by their
// resolved tag (!!null, !!bool, !!int, !!float, !!timestamp, else string).
// An empty document yields a null scalar.
func DecodeYAML(name string, data []byte) (bemu.Element, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		is := bemu.RootPath().Issue(bemu.CodeParseError, i18n.T(bemu.CodeParseError, nil), "reason", err.Error())
		is.Cause = err
		return nil, bemu.Issues{is}
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return bemu.NewNull(name), nil
	}
	return yamlNode(name, doc.Content[0], bemu.RootPath())
}

func yamlNode(name string, n *yaml.Node, p bemu.PathRef) (bemu.Element, error) {
	switch n.Kind {
	case yaml.AliasNode:
		return yamlNode(name, n.Alias, p)
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return bemu.NewNull(name), nil
		}
		return yamlNode(name, n.Content[0], p)
	case yaml.MappingNode:
		children := make([]bemu.Element, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode {
				return nil, bemu.Issues{p.Issue(bemu.CodeUnsupported,
					i18n.T(bemu.CodeUnsupported, map[string]string{"have": "non-scalar key"}), "line", k.Line)}
			}
			c, err := yamlNode(k.Value, v, p.Field(k.Value))
			if err != nil {
				return nil, err
			}
			children = append(children, c)
		}
		return bemu.NewComplex(name, children...), nil
	case yaml.SequenceNode:
		items := make([]bemu.Element, 0, len(n.Content))
		for i, c := range n.Content {
			it, err := yamlNode(name, c, p.Index(i))
			if err != nil {
				return nil, err
			}
			items = append(items, it)
		}
		return bemu.NewArray(name, items...), nil
	}
	return yamlScalar(name, n, p)
}

func yamlScalar(name string, n *yaml.Node, p bemu.PathRef) (bemu.Element, error) {
	var err error
	switch n.ShortTag() {
	case "!!null":
		return bemu.NewNull(name), nil
	case "!!bool":
		var b bool
		if err = n.Decode(&b); err == nil {
			return bemu.NewBool(name, b), nil
		}
	case "!!int":
		var i int64
		if err = n.Decode(&i); err == nil {
			if i >= math.MinInt32 && i <= math.MaxInt32 {
				return bemu.NewInt32(name, int32(i)), nil
			}
			return bemu.NewInt64(name, i), nil
		}
		return nil, bemu.Issues{p.Issue(bemu.CodeOverflow,
			i18n.T(bemu.CodeOverflow, map[string]string{"want": bemu.DatatypeInt64.String()}),
			"want", bemu.DatatypeInt64.String(), "line", n.Line)}
	case "!!float":
		var f float64
		if err = n.Decode(&f); err == nil {
			return bemu.NewFloat64(name, f), nil
		}
	case "!!timestamp":
		var t time.Time
		if err = n.Decode(&t); err == nil {
			_, dateOnly, perr := ParseTime(n.Value)
			return timeScalar(name, t, perr == nil && dateOnly), nil
		}
	default:
		return bemu.NewString(name, n.Value), nil
	}
	is := p.Issue(bemu.CodeParseError, i18n.T(bemu.CodeParseError, nil), "reason", err.Error(), "line", n.Line)
	is.Cause = err
	return nil, bemu.Issues{is}
}
