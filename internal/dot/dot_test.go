package dot

import (
	"strings"
	"testing"

	"github.com/j2ghz/BetterQuestingTools/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func database(quests ...*model.Quest) *model.QuestDatabase {
	byID := make(map[model.QuestID]*model.Quest, len(quests))
	for _, q := range quests {
		byID[q.ID] = q
	}
	return model.NewQuestDatabase(byID, nil, nil)
}

func TestRenderDeterministicOutput(t *testing.T) {
	db := database(
		&model.Quest{ID: 1, Name: "§6Start§r"},
		&model.Quest{ID: 2, Name: "Next", Prerequisites: []model.QuestID{1}},
		&model.Quest{ID: 3, OptionalPrerequisites: []model.QuestID{1}},
	)

	var sb strings.Builder
	require.NoError(t, Render(&sb, db))

	want := `digraph quests {
  rankdir=LR
  1 [label="Start (1)"]
  2 [label="Next (2)"]
  3 [label="3"]
  1 -> 2
  1 -> 3 [style=dashed]
}
`
	assert.Equal(t, want, sb.String())
}

func TestRenderSkipsXOREdges(t *testing.T) {
	db := database(
		&model.Quest{ID: 1, Name: "A"},
		&model.Quest{ID: 2, Name: "Either", Logic: "XOR", Prerequisites: []model.QuestID{1}},
	)

	var sb strings.Builder
	require.NoError(t, Render(&sb, db))

	out := sb.String()
	assert.Contains(t, out, `2 [label="Either (2)"]`)
	assert.NotContains(t, out, "->")
}

func TestStripFormatCodes(t *testing.T) {
	assert.Equal(t, "Hello", stripFormatCodes("§aHello§r"))
	assert.Equal(t, "plain", stripFormatCodes("plain"))
	assert.Equal(t, "", stripFormatCodes("§"))
}
