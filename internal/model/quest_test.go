package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllPrerequisitesOrder(t *testing.T) {
	q := &Quest{
		Prerequisites:         []QuestID{3, 1},
		OptionalPrerequisites: []QuestID{2},
	}
	assert.Equal(t, []QuestID{3, 1, 2}, q.AllPrerequisites())
}

func TestAllPrerequisitesEmpty(t *testing.T) {
	assert.Empty(t, (&Quest{}).AllPrerequisites())
}

func TestNewQuestDatabaseSortsIDs(t *testing.T) {
	db := NewQuestDatabase(map[QuestID]*Quest{
		9: {ID: 9}, 1: {ID: 1}, 4: {ID: 4},
	}, map[QuestID]*QuestLine{
		2: {ID: 2}, 0: {ID: 0},
	}, nil)

	assert.Equal(t, []QuestID{1, 4, 9}, db.QuestIDs())
	assert.Equal(t, []QuestID{0, 2}, db.LineIDs())
	assert.NotNil(t, db.Settings())
}
