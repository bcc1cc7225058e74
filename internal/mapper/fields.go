package mapper

import (
	"github.com/j2ghz/BetterQuestingTools/internal/model"
	"github.com/j2ghz/BetterQuestingTools/internal/nbt"
	"github.com/j2ghz/BetterQuestingTools/internal/qerr"
)

// stringField reads an optional string field, defaulting to "" when absent.
func stringField(n *nbt.Node, key string) (string, error) {
	v := n.Get(key)
	if v == nil {
		return "", nil
	}
	if v.Tag != nbt.TagString {
		return "", &qerr.TypeMismatchError{Key: key, Declared: nbt.TagString.String(), Actual: v.Shape()}
	}
	return v.Str, nil
}

// intField reads an optional integral field, defaulting to 0 when absent.
func intField(n *nbt.Node, key string) (int64, error) {
	v := n.Get(key)
	if v == nil {
		return 0, nil
	}
	if !v.Tag.IsIntegral() {
		return 0, &qerr.TypeMismatchError{Key: key, Declared: nbt.TagInt.String(), Actual: v.Shape()}
	}
	return v.Int, nil
}

// boolField reads an optional byte-encoded flag: nonzero means set.
func boolField(n *nbt.Node, key string) (bool, error) {
	v := n.Get(key)
	if v == nil {
		return false, nil
	}
	if !v.Tag.IsIntegral() {
		return false, &qerr.TypeMismatchError{Key: key, Declared: nbt.TagByte.String(), Actual: v.Shape()}
	}
	return v.Bool(), nil
}

// entityID reads an identifier stored either as a single combined integer
// under singleKey or as a signed high/low pair. At least one of the three
// keys must be present.
func entityID(n *nbt.Node, schema, singleKey, highKey, lowKey string) (model.QuestID, error) {
	if v := n.Get(singleKey); v != nil {
		if !v.Tag.IsIntegral() {
			return 0, &qerr.TypeMismatchError{Key: singleKey, Declared: nbt.TagInt.String(), Actual: v.Shape()}
		}
		return model.QuestID(uint64(v.Int)), nil
	}
	high := n.Get(highKey)
	low := n.Get(lowKey)
	if high == nil && low == nil {
		return 0, &qerr.MissingFieldError{Schema: schema, Field: lowKey}
	}
	var hi, lo int64
	if high != nil {
		if !high.Tag.IsIntegral() {
			return 0, &qerr.TypeMismatchError{Key: highKey, Declared: nbt.TagInt.String(), Actual: high.Shape()}
		}
		hi = high.Int
	}
	if low != nil {
		if !low.Tag.IsIntegral() {
			return 0, &qerr.TypeMismatchError{Key: lowKey, Declared: nbt.TagInt.String(), Actual: low.Shape()}
		}
		lo = low.Int
	}
	return model.IDFromParts(int32(hi), int32(lo)), nil
}

// properties locates the entity's property block. The exporter nests it as
// properties -> betterquesting; some variants rename the inner key, so the
// first child (in sorted key order) is the fallback. Returns nil when the
// entity has no properties at all.
func properties(n *nbt.Node) (*nbt.Node, error) {
	props := n.Get("properties")
	if props == nil {
		return nil, nil
	}
	if props.Tag != nbt.TagCompound {
		return nil, &qerr.TypeMismatchError{Key: "properties", Declared: nbt.TagCompound.String(), Actual: props.Shape()}
	}
	inner := props.Get("betterquesting")
	if inner == nil {
		for _, k := range props.Keys() {
			inner = props.Get(k)
			break
		}
	}
	if inner == nil {
		return nil, nil
	}
	if inner.Tag != nbt.TagCompound {
		return nil, &qerr.TypeMismatchError{Key: "properties", Declared: nbt.TagCompound.String(), Actual: inner.Shape()}
	}
	return inner, nil
}
