package model

import "github.com/zclconf/go-cty/cty"

// QuestSettings holds the export's global configuration: the format version
// plus every other key as a typed value. Settings reference no other
// entities.
type QuestSettings struct {
	Version string
	Values  map[string]cty.Value
}

// EmptySettings returns settings for an export that carries no settings
// file.
func EmptySettings() *QuestSettings {
	return &QuestSettings{Values: map[string]cty.Value{}}
}
