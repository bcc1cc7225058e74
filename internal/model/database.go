package model

import "sort"

// QuestDatabase is the validated, read-only result of a load. Every
// prerequisite id and every quest line entry id is guaranteed to resolve to
// a quest in the database; the resolver enforces this before construction.
type QuestDatabase struct {
	quests   map[QuestID]*Quest
	lines    map[QuestID]*QuestLine
	settings *QuestSettings
	questIDs []QuestID
	lineIDs  []QuestID
}

// NewQuestDatabase assembles a database from already validated records.
// Construction is the resolver's job; see the resolve package.
func NewQuestDatabase(quests map[QuestID]*Quest, lines map[QuestID]*QuestLine, settings *QuestSettings) *QuestDatabase {
	if settings == nil {
		settings = EmptySettings()
	}
	db := &QuestDatabase{
		quests:   quests,
		lines:    lines,
		settings: settings,
		questIDs: sortedIDs(quests),
		lineIDs:  sortedIDs(lines),
	}
	return db
}

// Quest returns the quest with the given id.
func (db *QuestDatabase) Quest(id QuestID) (*Quest, bool) {
	q, ok := db.quests[id]
	return q, ok
}

// Line returns the quest line with the given id.
func (db *QuestDatabase) Line(id QuestID) (*QuestLine, bool) {
	l, ok := db.lines[id]
	return l, ok
}

// Settings returns the global settings. Never nil.
func (db *QuestDatabase) Settings() *QuestSettings {
	return db.settings
}

// QuestIDs returns all quest ids in ascending order.
func (db *QuestDatabase) QuestIDs() []QuestID {
	out := make([]QuestID, len(db.questIDs))
	copy(out, db.questIDs)
	return out
}

// LineIDs returns all quest line ids in ascending order.
func (db *QuestDatabase) LineIDs() []QuestID {
	out := make([]QuestID, len(db.lineIDs))
	copy(out, db.lineIDs)
	return out
}

// QuestCount returns the number of quests.
func (db *QuestDatabase) QuestCount() int {
	return len(db.quests)
}

// LineCount returns the number of quest lines.
func (db *QuestDatabase) LineCount() int {
	return len(db.lines)
}

func sortedIDs[V any](m map[QuestID]V) []QuestID {
	ids := make([]QuestID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
