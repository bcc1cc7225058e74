package nbt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestCtyValueScalars(t *testing.T) {
	assert.True(t, CtyValue(&Node{Tag: TagInt, Int: 42}).RawEquals(cty.NumberIntVal(42)))
	assert.True(t, CtyValue(&Node{Tag: TagByte, Int: 1}).RawEquals(cty.NumberIntVal(1)))
	assert.True(t, CtyValue(&Node{Tag: TagDouble, Float: 1.5}).RawEquals(cty.NumberFloatVal(1.5)))
	assert.True(t, CtyValue(&Node{Tag: TagString, Str: "x"}).RawEquals(cty.StringVal("x")))
}

func TestCtyValueComposites(t *testing.T) {
	norm, err := Normalize(mustDecode(t, `{
		"task:10": {"taskID:8": "retrieval", "required:3": 3},
		"mixed:9": {"0:8": "a", "1:3": 2},
		"packed:11": [1, 2]
	}`))
	require.NoError(t, err)

	task := CtyValue(norm.Get("task"))
	require.True(t, task.Type().IsObjectType())
	assert.True(t, task.GetAttr("taskID").RawEquals(cty.StringVal("retrieval")))
	assert.True(t, task.GetAttr("required").RawEquals(cty.NumberIntVal(3)))

	// Heterogeneous sequences survive as tuples.
	mixed := CtyValue(norm.Get("mixed"))
	require.True(t, mixed.Type().IsTupleType())
	assert.True(t, mixed.Index(cty.NumberIntVal(0)).RawEquals(cty.StringVal("a")))
	assert.True(t, mixed.Index(cty.NumberIntVal(1)).RawEquals(cty.NumberIntVal(2)))

	packed := CtyValue(norm.Get("packed"))
	require.True(t, packed.Type().IsListType())
	assert.Equal(t, 2, packed.LengthInt())
}

func TestCtyValueEmpties(t *testing.T) {
	assert.True(t, CtyValue(&Node{Tag: TagList}).RawEquals(cty.EmptyTupleVal))
	assert.True(t, CtyValue(&Node{Tag: TagCompound, Compound: map[string]*Node{}}).RawEquals(cty.EmptyObjectVal))
	assert.True(t, CtyValue(&Node{Tag: TagIntArray}).RawEquals(cty.ListValEmpty(cty.Number)))
}
