// Package loader walks a quest database export directory, classifies files
// by the exporter's naming convention, and drives the decode -> normalize ->
// map -> resolve pipeline. It is the only place that touches IO; the
// pipeline stages work on bytes and trees.
//
// Expected layout under the export root:
//
//	QuestSettings.json        global settings (optional, "QuestSettings"
//	                          without extension is also accepted)
//	Quests/*.json             one quest per file
//	QuestLines/*.json         one quest line per file, entries embedded
//	QuestLines/<name>/        or a directory per line: QuestLine.json plus
//	                          one file per entry
package loader
