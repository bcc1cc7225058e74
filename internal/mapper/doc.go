// Package mapper interprets normalized node trees according to the three
// known export schemas (Quest, QuestLine, QuestSettings) and produces the
// typed records from the model package. Cross-references stay unresolved
// here; the resolve package validates them.
//
// Mapping is all-or-nothing: a record is either fully constructed or the
// error is the only output.
package mapper
