package mapper

import (
	"errors"
	"testing"

	"github.com/j2ghz/BetterQuestingTools/internal/model"
	"github.com/j2ghz/BetterQuestingTools/internal/nbt"
	"github.com/j2ghz/BetterQuestingTools/internal/qerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func mustParse(t *testing.T, src string) *nbt.Node {
	t.Helper()
	raw, err := nbt.Decode("test.json", []byte(src))
	require.NoError(t, err)
	norm, err := nbt.Normalize(raw)
	require.NoError(t, err)
	return norm
}

func TestMapQuestFull(t *testing.T) {
	quest, err := MapQuest(mustParse(t, `{
		"questIDHigh:4": 0,
		"questIDLow:4": 7,
		"properties:10": {"betterquesting:10": {
			"name:8": "Mine Stone",
			"desc:8": "Dig down.",
			"isMain:1": 1,
			"isSilent:1": 0,
			"autoClaim:1": 1,
			"globalShare:1": 0,
			"simultaneous:1": 0,
			"repeatRelative:1": 1,
			"repeatTime:3": -1,
			"questLogic:8": "AND",
			"taskLogic:8": "AND",
			"visibility:8": "NORMAL"
		}},
		"tasks:9": {"0:10": {"taskID:8": "bq_standard:retrieval", "requiredItems:9": {}}},
		"rewards:9": {"1:10": {"rewardID:8": "bq_standard:xp"}, "0:10": {"rewardID:8": "bq_standard:item"}},
		"preRequisites:9": {"0:10": {"questIDHigh:4": 0, "questIDLow:4": 3}}
	}`))
	require.NoError(t, err)

	assert.Equal(t, model.QuestID(7), quest.ID)
	assert.Equal(t, "Mine Stone", quest.Name)
	assert.Equal(t, "Dig down.", quest.Description)
	assert.True(t, quest.Main)
	assert.False(t, quest.Silent)
	assert.True(t, quest.AutoClaim)
	assert.True(t, quest.RepeatRelative)
	assert.Equal(t, int64(-1), quest.RepeatTime)
	assert.Equal(t, "AND", quest.Logic)
	assert.Equal(t, "NORMAL", quest.Visibility)

	require.Len(t, quest.Tasks, 1)
	assert.Equal(t, 0, quest.Tasks[0].Index)
	assert.Equal(t, "bq_standard:retrieval", quest.Tasks[0].TypeID)
	assert.True(t, quest.Tasks[0].Payload.Type().IsObjectType())
	assert.True(t, quest.Tasks[0].Payload.GetAttr("taskID").RawEquals(cty.StringVal("bq_standard:retrieval")))

	// Rewards keep their coerced index order.
	require.Len(t, quest.Rewards, 2)
	assert.Equal(t, "bq_standard:item", quest.Rewards[0].TypeID)
	assert.Equal(t, "bq_standard:xp", quest.Rewards[1].TypeID)

	assert.Equal(t, []model.QuestID{3}, quest.Prerequisites)
	assert.Empty(t, quest.OptionalPrerequisites)
}

func TestMapQuestDefaults(t *testing.T) {
	quest, err := MapQuest(mustParse(t, `{"questID:3": 5}`))
	require.NoError(t, err)
	assert.Equal(t, model.QuestID(5), quest.ID)
	assert.Equal(t, "", quest.Name)
	assert.Equal(t, "", quest.Description)
	assert.False(t, quest.Main)
	assert.Empty(t, quest.Tasks)
	assert.Empty(t, quest.Rewards)
	assert.Empty(t, quest.Prerequisites)
}

func TestMapQuestMissingID(t *testing.T) {
	_, err := MapQuest(mustParse(t, `{"properties:10": {"betterquesting:10": {"name:8": "x"}}}`))
	var mf *qerr.MissingFieldError
	require.True(t, errors.As(err, &mf))
	assert.Equal(t, "Quest", mf.Schema)
	assert.Equal(t, "questIDLow", mf.Field)
}

func TestMapQuestFlagNonzeroIsTrue(t *testing.T) {
	quest, err := MapQuest(mustParse(t, `{
		"questID:3": 1,
		"properties:10": {"betterquesting:10": {"isMain:1": 2}}
	}`))
	require.NoError(t, err)
	assert.True(t, quest.Main)
}

func TestMapQuestPrerequisiteForms(t *testing.T) {
	t.Run("packed int array", func(t *testing.T) {
		quest, err := MapQuest(mustParse(t, `{"questID:3": 1, "preRequisites:11": [4, 2]}`))
		require.NoError(t, err)
		assert.Equal(t, []model.QuestID{4, 2}, quest.Prerequisites)
	})

	t.Run("list of integers", func(t *testing.T) {
		quest, err := MapQuest(mustParse(t, `{"questID:3": 1, "preRequisites:9": {"0:4": 9, "1:4": 8}}`))
		require.NoError(t, err)
		assert.Equal(t, []model.QuestID{9, 8}, quest.Prerequisites)
	})

	t.Run("list of id pairs", func(t *testing.T) {
		quest, err := MapQuest(mustParse(t, `{"questID:3": 1,
			"preRequisites:9": {"0:10": {"questIDHigh:4": 0, "questIDLow:4": 6}}}`))
		require.NoError(t, err)
		assert.Equal(t, []model.QuestID{6}, quest.Prerequisites)
	})

	t.Run("string prerequisites rejected", func(t *testing.T) {
		_, err := MapQuest(mustParse(t, `{"questID:3": 1, "preRequisites:9": {"0:8": "nope"}}`))
		var tm *qerr.TypeMismatchError
		require.True(t, errors.As(err, &tm))
	})
}

func TestMapQuestOptionalPrereqSplit(t *testing.T) {
	t.Run("explicit optional list", func(t *testing.T) {
		quest, err := MapQuest(mustParse(t, `{
			"questID:3": 1,
			"preRequisites:11": [2, 3, 4],
			"optionalPreRequisites:11": [3]
		}`))
		require.NoError(t, err)
		assert.Equal(t, []model.QuestID{2, 4}, quest.Prerequisites)
		assert.Equal(t, []model.QuestID{3}, quest.OptionalPrerequisites)
	})

	t.Run("or logic makes all optional", func(t *testing.T) {
		quest, err := MapQuest(mustParse(t, `{
			"questID:3": 1,
			"properties:10": {"betterquesting:10": {"questLogic:8": "OR"}},
			"preRequisites:11": [2, 3]
		}`))
		require.NoError(t, err)
		assert.Empty(t, quest.Prerequisites)
		assert.Equal(t, []model.QuestID{2, 3}, quest.OptionalPrerequisites)
	})

	t.Run("and logic keeps all required", func(t *testing.T) {
		quest, err := MapQuest(mustParse(t, `{
			"questID:3": 1,
			"properties:10": {"betterquesting:10": {"questLogic:8": "AND"}},
			"preRequisites:11": [2, 3]
		}`))
		require.NoError(t, err)
		assert.Equal(t, []model.QuestID{2, 3}, quest.Prerequisites)
		assert.Empty(t, quest.OptionalPrerequisites)
	})
}

func TestMapQuestWrongFieldType(t *testing.T) {
	_, err := MapQuest(mustParse(t, `{
		"questID:3": 1,
		"properties:10": {"betterquesting:10": {"name:3": 4}}
	}`))
	var tm *qerr.TypeMismatchError
	require.True(t, errors.As(err, &tm))
	assert.Equal(t, "name", tm.Key)
}

func TestMapQuestTasksMustBeCompounds(t *testing.T) {
	_, err := MapQuest(mustParse(t, `{"questID:3": 1, "tasks:9": {"0:8": "oops"}}`))
	var tm *qerr.TypeMismatchError
	require.True(t, errors.As(err, &tm))
	assert.Equal(t, "tasks", tm.Key)
}
