package resolve

import (
	"sort"

	"github.com/j2ghz/BetterQuestingTools/internal/model"
	"github.com/j2ghz/BetterQuestingTools/internal/qerr"
)

// Build validates the mapped records and assembles the immutable database.
//
// Checks run in a fixed order: quest id uniqueness, quest line id
// uniqueness, then dangling-reference checks over quests in ascending id
// order (prerequisites in list order, required before optional) and over
// quest lines in ascending id order (entries in list order). The first
// violation aborts the build; no partial database is ever returned.
//
// Prerequisite cycles are not rejected: the database is a reference store,
// not a scheduler, and cyclic data is accepted as-is.
func Build(quests []*model.Quest, lines []*model.QuestLine, settings *model.QuestSettings) (*model.QuestDatabase, error) {
	questByID := make(map[model.QuestID]*model.Quest, len(quests))
	for _, q := range quests {
		if _, dup := questByID[q.ID]; dup {
			return nil, &qerr.DuplicateQuestIDError{ID: uint64(q.ID)}
		}
		questByID[q.ID] = q
	}

	lineByID := make(map[model.QuestID]*model.QuestLine, len(lines))
	for _, l := range lines {
		if _, dup := lineByID[l.ID]; dup {
			return nil, &qerr.DuplicateQuestLineIDError{ID: uint64(l.ID)}
		}
		lineByID[l.ID] = l
	}

	for _, id := range ascending(questByID) {
		q := questByID[id]
		for _, ref := range q.AllPrerequisites() {
			if _, ok := questByID[ref]; !ok {
				return nil, &qerr.DanglingReferenceError{
					Context: "prerequisite",
					From:    uint64(q.ID),
					Missing: uint64(ref),
				}
			}
		}
	}

	for _, id := range ascending(lineByID) {
		l := lineByID[id]
		for _, entry := range l.Entries {
			if _, ok := questByID[entry.QuestID]; !ok {
				return nil, &qerr.DanglingReferenceError{
					Context: "quest line entry",
					From:    uint64(l.ID),
					Missing: uint64(entry.QuestID),
				}
			}
		}
	}

	return model.NewQuestDatabase(questByID, lineByID, settings), nil
}

func ascending[V any](m map[model.QuestID]V) []model.QuestID {
	ids := make([]model.QuestID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
