package mapper

import (
	"strings"

	"github.com/j2ghz/BetterQuestingTools/internal/model"
	"github.com/j2ghz/BetterQuestingTools/internal/nbt"
	"github.com/j2ghz/BetterQuestingTools/internal/qerr"
	"github.com/zclconf/go-cty/cty"
)

// MapQuest maps one normalized quest file into a Quest record.
func MapQuest(root *nbt.Node) (*model.Quest, error) {
	if root.Tag != nbt.TagCompound {
		return nil, &qerr.TypeMismatchError{Key: "(root)", Declared: nbt.TagCompound.String(), Actual: root.Shape()}
	}
	id, err := entityID(root, "Quest", "questID", "questIDHigh", "questIDLow")
	if err != nil {
		return nil, err
	}

	props, err := properties(root)
	if err != nil {
		return nil, annotate(err, id)
	}
	q := &model.Quest{ID: id}
	if props != nil {
		fields := []struct {
			key  string
			dest *bool
		}{
			{"isMain", &q.Main},
			{"isSilent", &q.Silent},
			{"autoClaim", &q.AutoClaim},
			{"globalShare", &q.GlobalShare},
			{"simultaneous", &q.Simultaneous},
			{"repeatRelative", &q.RepeatRelative},
		}
		for _, f := range fields {
			v, err := boolField(props, f.key)
			if err != nil {
				return nil, annotate(err, id)
			}
			*f.dest = v
		}
		strFields := []struct {
			key  string
			dest *string
		}{
			{"name", &q.Name},
			{"desc", &q.Description},
			{"visibility", &q.Visibility},
			{"questLogic", &q.Logic},
			{"taskLogic", &q.TaskLogic},
		}
		for _, f := range strFields {
			v, err := stringField(props, f.key)
			if err != nil {
				return nil, annotate(err, id)
			}
			*f.dest = v
		}
		if q.RepeatTime, err = intField(props, "repeatTime"); err != nil {
			return nil, annotate(err, id)
		}
	}

	tasks, err := payloads(root, "tasks", "taskID")
	if err != nil {
		return nil, annotate(err, id)
	}
	for i, p := range tasks {
		q.Tasks = append(q.Tasks, model.Task{Index: i, TypeID: p.typeID, Payload: p.value})
	}
	rewards, err := payloads(root, "rewards", "rewardID")
	if err != nil {
		return nil, annotate(err, id)
	}
	for i, p := range rewards {
		q.Rewards = append(q.Rewards, model.Reward{Index: i, TypeID: p.typeID, Payload: p.value})
	}

	all, err := questRefs(root, "preRequisites")
	if err != nil {
		return nil, annotate(err, id)
	}
	optional, err := questRefs(root, "optionalPreRequisites")
	if err != nil {
		return nil, annotate(err, id)
	}
	q.Prerequisites, q.OptionalPrerequisites = splitPrereqs(all, optional, q.Logic)
	return q, nil
}

type opaque struct {
	typeID string
	value  cty.Value
}

// payloads extracts an ordered sequence of opaque compound payloads, lifting
// out the named type discriminator when present.
func payloads(root *nbt.Node, key, idKey string) ([]opaque, error) {
	v := root.Get(key)
	if v == nil {
		return nil, nil
	}
	if v.Tag != nbt.TagList {
		return nil, &qerr.TypeMismatchError{Key: key, Declared: nbt.TagList.String(), Actual: v.Shape()}
	}
	out := make([]opaque, 0, len(v.List))
	for _, elem := range v.List {
		if elem.Tag != nbt.TagCompound {
			return nil, &qerr.TypeMismatchError{Key: key, Declared: nbt.TagCompound.String(), Actual: elem.Shape()}
		}
		typeID, err := stringField(elem, idKey)
		if err != nil {
			return nil, err
		}
		out = append(out, opaque{typeID: typeID, value: nbt.CtyValue(elem)})
	}
	return out, nil
}

// questRefs reads a prerequisite list in any of the forms the exporter has
// used: a packed integer array of combined ids, a list of integer scalars,
// or a list of compounds carrying high/low id pairs.
func questRefs(root *nbt.Node, key string) ([]model.QuestID, error) {
	v := root.Get(key)
	if v == nil {
		return nil, nil
	}
	switch {
	case v.Tag.IsIntArray():
		out := make([]model.QuestID, 0, len(v.Ints))
		for _, raw := range v.Ints {
			out = append(out, model.QuestID(uint64(raw)))
		}
		return out, nil
	case v.Tag == nbt.TagList:
		out := make([]model.QuestID, 0, len(v.List))
		for _, elem := range v.List {
			switch {
			case elem.Tag.IsIntegral():
				out = append(out, model.QuestID(uint64(elem.Int)))
			case elem.Tag == nbt.TagCompound:
				high, err := intField(elem, "questIDHigh")
				if err != nil {
					return nil, err
				}
				low, err := intField(elem, "questIDLow")
				if err != nil {
					return nil, err
				}
				out = append(out, model.IDFromParts(int32(high), int32(low)))
			default:
				return nil, &qerr.TypeMismatchError{Key: key, Declared: nbt.TagInt.String(), Actual: elem.Shape()}
			}
		}
		return out, nil
	}
	return nil, &qerr.TypeMismatchError{Key: key, Declared: nbt.TagList.String(), Actual: v.Shape()}
}

// splitPrereqs decides which prerequisites are required. An explicit
// optional list wins; otherwise an OR-like quest logic makes every
// prerequisite optional.
func splitPrereqs(all, optional []model.QuestID, logic string) (required, opt []model.QuestID) {
	if len(optional) > 0 {
		optSet := make(map[model.QuestID]struct{}, len(optional))
		for _, id := range optional {
			optSet[id] = struct{}{}
		}
		for _, id := range all {
			if _, ok := optSet[id]; !ok {
				required = append(required, id)
			}
		}
		return required, optional
	}
	switch strings.ToUpper(logic) {
	case "OR", "ANY", "ONE_OF", "XOR":
		return nil, all
	}
	return all, nil
}

// annotate fills in the entity id on errors raised after the id is known.
func annotate(err error, id model.QuestID) error {
	if mf, ok := err.(*qerr.MissingFieldError); ok && mf.EntityID == "" {
		mf.EntityID = id.String()
	}
	return err
}
