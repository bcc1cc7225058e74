package nbt

import (
	"sort"
	"strconv"
	"strings"

	"github.com/j2ghz/BetterQuestingTools/internal/qerr"
)

// Normalize converts a raw decoded tree into its normalized form: every
// compound key is split into a bare name and its declared tag, each value is
// checked for compatibility with the declared tag, and compounds whose keys
// are all decimal indices are coerced into lists ordered by ascending index.
//
// Coercion runs bottom-up, so a nested pseudo-array is already a list by the
// time its parent's declared tag is enforced.
func Normalize(root *Node) (*Node, error) {
	n, err := normalize(root)
	if err != nil {
		return nil, err
	}
	return coerce(n), nil
}

func normalize(n *Node) (*Node, error) {
	switch n.Tag {
	case TagCompound:
		out := &Node{Tag: TagCompound, Compound: make(map[string]*Node, len(n.Compound))}
		// Sorted key order keeps error selection deterministic.
		for _, raw := range n.Keys() {
			name, declared, err := splitKey(raw)
			if err != nil {
				return nil, err
			}
			child, err := normalize(n.Compound[raw])
			if err != nil {
				return nil, err
			}
			child = coerce(child)
			child, err = applyDeclared(raw, declared, child)
			if err != nil {
				return nil, err
			}
			out.Compound[name] = child
		}
		return out, nil
	case TagList:
		out := &Node{Tag: TagList, List: make([]*Node, 0, len(n.List))}
		for _, elem := range n.List {
			e, err := normalize(elem)
			if err != nil {
				return nil, err
			}
			out.List = append(out.List, coerce(e))
		}
		return out, nil
	default:
		return n, nil
	}
}

// splitKey decodes a suffix-typed key of the form "<name>:<typeCode>".
func splitKey(key string) (string, Tag, error) {
	idx := strings.LastIndexByte(key, ':')
	if idx < 0 {
		return "", 0, &qerr.MalformedKeyError{Key: key}
	}
	suffix := key[idx+1:]
	if suffix == "" {
		return "", 0, &qerr.MalformedKeyError{Key: key}
	}
	for i := 0; i < len(suffix); i++ {
		if suffix[i] < '0' || suffix[i] > '9' {
			return "", 0, &qerr.MalformedKeyError{Key: key}
		}
	}
	code, err := strconv.Atoi(suffix)
	if err != nil {
		return "", 0, &qerr.MalformedKeyError{Key: key}
	}
	tag := Tag(code)
	if code > 255 || !tag.Valid() {
		return "", 0, &qerr.UnknownTypeCodeError{Key: key, Code: code}
	}
	return key[:idx], tag, nil
}

// applyDeclared enforces the declared tag from a key suffix on an already
// normalized value and re-tags the node with it.
func applyDeclared(key string, declared Tag, child *Node) (*Node, error) {
	mismatch := func() error {
		return &qerr.TypeMismatchError{Key: key, Declared: declared.String(), Actual: child.Shape()}
	}
	switch {
	case declared.IsIntegral():
		if !child.Tag.IsIntegral() {
			return nil, mismatch()
		}
		return &Node{Tag: declared, Int: child.Int}, nil
	case declared.IsFloating():
		// Whole-valued floats are written without a fraction by the
		// exporter, so an integer literal satisfies a float declaration.
		switch {
		case child.Tag.IsFloating():
			return &Node{Tag: declared, Float: child.Float}, nil
		case child.Tag.IsIntegral():
			return &Node{Tag: declared, Float: float64(child.Int)}, nil
		}
		return nil, mismatch()
	case declared == TagString:
		if child.Tag != TagString {
			return nil, mismatch()
		}
		return child, nil
	case declared == TagList:
		switch {
		case child.Tag == TagList:
			return child, nil
		case child.Tag == TagCompound && len(child.Compound) == 0:
			// An empty pseudo-array has no indices to coerce on.
			return &Node{Tag: TagList}, nil
		}
		return nil, mismatch()
	case declared == TagCompound:
		if child.Tag != TagCompound {
			return nil, mismatch()
		}
		return child, nil
	case declared.IsIntArray():
		switch {
		case child.Tag == TagList:
			ints := make([]int64, 0, len(child.List))
			for _, elem := range child.List {
				if !elem.Tag.IsIntegral() {
					return nil, mismatch()
				}
				ints = append(ints, elem.Int)
			}
			return &Node{Tag: declared, Ints: ints}, nil
		case child.Tag == TagCompound && len(child.Compound) == 0:
			return &Node{Tag: declared}, nil
		}
		return nil, mismatch()
	}
	return nil, mismatch()
}

// coerce rewrites a compound whose keys are all canonical decimal indices
// into a list ordered by ascending index. Sparse index sets are permitted;
// only the order matters. Anything else passes through unchanged.
func coerce(n *Node) *Node {
	if n.Tag != TagCompound || len(n.Compound) == 0 {
		return n
	}
	type entry struct {
		index uint64
		node  *Node
	}
	entries := make([]entry, 0, len(n.Compound))
	for name, child := range n.Compound {
		idx, ok := parseIndex(name)
		if !ok {
			return n
		}
		entries = append(entries, entry{index: idx, node: child})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].index < entries[j].index })
	out := &Node{Tag: TagList, List: make([]*Node, 0, len(entries))}
	for _, e := range entries {
		out.List = append(out.List, e.node)
	}
	return out
}

// parseIndex accepts only canonical base-10 indices: no sign, no leading
// zeros other than "0" itself.
func parseIndex(s string) (uint64, bool) {
	if s == "" {
		return 0, false
	}
	if s != "0" && s[0] == '0' {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
