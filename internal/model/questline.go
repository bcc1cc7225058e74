package model

// QuestLine is an ordered arrangement of quest entries with layout data for
// presentation.
type QuestLine struct {
	ID          QuestID
	Name        string
	Description string
	Entries     []QuestLineEntry
}

// QuestLineEntry places one quest on a line's layout grid.
type QuestLineEntry struct {
	QuestID QuestID
	X       int64
	Y       int64
	SizeX   int64
	SizeY   int64
}
