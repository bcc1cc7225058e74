package mapper

import (
	"github.com/j2ghz/BetterQuestingTools/internal/model"
	"github.com/j2ghz/BetterQuestingTools/internal/nbt"
	"github.com/j2ghz/BetterQuestingTools/internal/qerr"
	"github.com/zclconf/go-cty/cty"
)

// MapSettings maps the normalized settings file into a QuestSettings record.
// The exporter has stored the settings map in three places over time:
// nested under properties -> betterquesting, under a top-level
// betterquesting compound, or flat at the top level. The first form found
// wins.
func MapSettings(root *nbt.Node) (*model.QuestSettings, error) {
	if root.Tag != nbt.TagCompound {
		return nil, &qerr.TypeMismatchError{Key: "(root)", Declared: nbt.TagCompound.String(), Actual: root.Shape()}
	}
	scope := root
	if inner, err := properties(root); err != nil {
		return nil, err
	} else if inner != nil {
		scope = inner
	} else if bq := root.Get("betterquesting"); bq != nil {
		if bq.Tag != nbt.TagCompound {
			return nil, &qerr.TypeMismatchError{Key: "betterquesting", Declared: nbt.TagCompound.String(), Actual: bq.Shape()}
		}
		scope = bq
	}

	settings := &model.QuestSettings{Values: make(map[string]cty.Value, len(scope.Compound))}
	for _, key := range scope.Keys() {
		v := scope.Get(key)
		if key == "version" && v.Tag == nbt.TagString {
			settings.Version = v.Str
			continue
		}
		settings.Values[key] = nbt.CtyValue(v)
	}
	return settings, nil
}
