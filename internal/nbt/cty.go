package nbt

import (
	"github.com/zclconf/go-cty/cty"
)

// CtyValue converts a normalized node into a cty.Value. Integral scalars
// become numbers (flag interpretation is the schema mapper's concern),
// compounds become objects and lists become tuples, so heterogeneous
// payloads survive the conversion. The conversion is total on normalized
// trees.
func CtyValue(n *Node) cty.Value {
	switch {
	case n == nil:
		return cty.NilVal
	case n.Tag.IsIntegral():
		return cty.NumberIntVal(n.Int)
	case n.Tag.IsFloating():
		return cty.NumberFloatVal(n.Float)
	case n.Tag == TagString:
		return cty.StringVal(n.Str)
	case n.Tag == TagList:
		if len(n.List) == 0 {
			return cty.EmptyTupleVal
		}
		elems := make([]cty.Value, 0, len(n.List))
		for _, elem := range n.List {
			elems = append(elems, CtyValue(elem))
		}
		return cty.TupleVal(elems)
	case n.Tag == TagCompound:
		if len(n.Compound) == 0 {
			return cty.EmptyObjectVal
		}
		attrs := make(map[string]cty.Value, len(n.Compound))
		for name, child := range n.Compound {
			attrs[name] = CtyValue(child)
		}
		return cty.ObjectVal(attrs)
	case n.Tag.IsIntArray():
		if len(n.Ints) == 0 {
			return cty.ListValEmpty(cty.Number)
		}
		elems := make([]cty.Value, 0, len(n.Ints))
		for _, v := range n.Ints {
			elems = append(elems, cty.NumberIntVal(v))
		}
		return cty.ListVal(elems)
	}
	return cty.NilVal
}
