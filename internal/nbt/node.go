package nbt

import (
	"sort"
)

// Node is one value in a decoded tree. Exactly one payload field is
// meaningful, selected by Tag. Before normalization the compound keys still
// carry their ":<typeCode>" suffixes; after normalization keys are bare
// names and Tag holds the declared type from the suffix.
type Node struct {
	Tag Tag

	Int      int64            // Byte, Short, Int, Long
	Float    float64          // Float, Double
	Str      string           // String
	List     []*Node          // List
	Compound map[string]*Node // Compound
	Ints     []int64          // ByteArray, IntArray, LongArray
}

// Bool interprets an integral scalar as a flag: nonzero is true.
func (n *Node) Bool() bool {
	return n.Int != 0
}

// Get returns the named child of a compound node, or nil.
func (n *Node) Get(name string) *Node {
	if n == nil || n.Tag != TagCompound {
		return nil
	}
	return n.Compound[name]
}

// Keys returns the compound's key names in sorted order.
func (n *Node) Keys() []string {
	keys := make([]string, 0, len(n.Compound))
	for k := range n.Compound {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Shape names the runtime form of a node for error messages.
func (n *Node) Shape() string {
	switch {
	case n.Tag == TagCompound:
		return "a compound"
	case n.Tag == TagList:
		return "a list"
	case n.Tag == TagString:
		return "a string"
	case n.Tag.IsIntegral():
		return "an integer"
	case n.Tag.IsFloating():
		return "a float"
	case n.Tag.IsIntArray():
		return "an integer array"
	}
	return "of unknown shape"
}
