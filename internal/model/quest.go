package model

import "github.com/zclconf/go-cty/cty"

// Quest is one fully mapped quest definition.
//
// Prerequisites holds the edges that must all be satisfied;
// OptionalPrerequisites holds alternative edges (the source data marks them
// either explicitly or through an OR-like quest logic). Both kinds are
// validated against the quest map when the database is assembled.
type Quest struct {
	ID          QuestID
	Name        string
	Description string

	// Display and behavior flags. Stored as bytes in the source; any
	// nonzero value counts as set.
	Main           bool
	Silent         bool
	AutoClaim      bool
	GlobalShare    bool
	Simultaneous   bool
	RepeatRelative bool

	RepeatTime int64
	Visibility string
	Logic      string
	TaskLogic  string

	Tasks   []Task
	Rewards []Reward

	Prerequisites         []QuestID
	OptionalPrerequisites []QuestID
}

// Task is one task entry of a quest. The payload is carried opaquely; only
// the type discriminator is lifted out for convenience.
type Task struct {
	Index   int
	TypeID  string
	Payload cty.Value
}

// Reward is one reward entry of a quest, carried the same way as a Task.
type Reward struct {
	Index   int
	TypeID  string
	Payload cty.Value
}

// AllPrerequisites returns required and optional prerequisite ids in their
// source order, required first.
func (q *Quest) AllPrerequisites() []QuestID {
	out := make([]QuestID, 0, len(q.Prerequisites)+len(q.OptionalPrerequisites))
	out = append(out, q.Prerequisites...)
	out = append(out, q.OptionalPrerequisites...)
	return out
}
