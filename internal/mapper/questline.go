package mapper

import (
	"github.com/j2ghz/BetterQuestingTools/internal/model"
	"github.com/j2ghz/BetterQuestingTools/internal/nbt"
	"github.com/j2ghz/BetterQuestingTools/internal/qerr"
)

// MapQuestLine maps one normalized quest line file into a QuestLine record.
// Entries embedded under "quests" are mapped in their coerced order;
// exports that store entries as sibling files feed them in through
// MapQuestLineEntry instead.
func MapQuestLine(root *nbt.Node) (*model.QuestLine, error) {
	if root.Tag != nbt.TagCompound {
		return nil, &qerr.TypeMismatchError{Key: "(root)", Declared: nbt.TagCompound.String(), Actual: root.Shape()}
	}
	id, err := entityID(root, "QuestLine", "lineID", "questLineIDHigh", "questLineIDLow")
	if err != nil {
		return nil, err
	}

	line := &model.QuestLine{ID: id}
	props, err := properties(root)
	if err != nil {
		return nil, annotate(err, id)
	}
	if props != nil {
		if line.Name, err = stringField(props, "name"); err != nil {
			return nil, annotate(err, id)
		}
		if line.Description, err = stringField(props, "desc"); err != nil {
			return nil, annotate(err, id)
		}
	}

	quests := root.Get("quests")
	if quests != nil {
		if quests.Tag != nbt.TagList {
			return nil, annotate(&qerr.TypeMismatchError{Key: "quests", Declared: nbt.TagList.String(), Actual: quests.Shape()}, id)
		}
		for _, elem := range quests.List {
			entry, err := MapQuestLineEntry(elem)
			if err != nil {
				return nil, annotate(err, id)
			}
			line.Entries = append(line.Entries, entry)
		}
	}
	return line, nil
}

// MapQuestLineEntry maps one entry compound, either an element of a line's
// embedded entry list or the root of a standalone entry file.
func MapQuestLineEntry(n *nbt.Node) (model.QuestLineEntry, error) {
	var entry model.QuestLineEntry
	if n.Tag != nbt.TagCompound {
		return entry, &qerr.TypeMismatchError{Key: "quests", Declared: nbt.TagCompound.String(), Actual: n.Shape()}
	}
	id, err := entityID(n, "QuestLineEntry", "questID", "questIDHigh", "questIDLow")
	if err != nil {
		return entry, err
	}
	entry.QuestID = id
	fields := []struct {
		key  string
		dest *int64
	}{
		{"x", &entry.X},
		{"y", &entry.Y},
		{"sizeX", &entry.SizeX},
		{"sizeY", &entry.SizeY},
	}
	for _, f := range fields {
		v, err := intField(n, f.key)
		if err != nil {
			return model.QuestLineEntry{}, err
		}
		*f.dest = v
	}
	return entry, nil
}
