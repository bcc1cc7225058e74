// Package model defines the typed domain entities assembled from a quest
// database export: quests, quest lines, global settings and the database
// that owns them. Values are constructed once by the schema mapper and the
// resolver and are immutable afterwards.
package model
