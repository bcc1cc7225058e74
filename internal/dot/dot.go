// Package dot renders the prerequisite graph of a quest database as
// Graphviz DOT text. Output is deterministic: nodes appear in ascending id
// order, required edges are solid and optional edges dashed.
package dot

import (
	"fmt"
	"io"
	"strings"

	"github.com/j2ghz/BetterQuestingTools/internal/model"
)

// Render writes the DOT document for db to w.
func Render(w io.Writer, db *model.QuestDatabase) error {
	var b strings.Builder
	b.WriteString("digraph quests {\n")
	b.WriteString("  rankdir=LR\n")

	ids := db.QuestIDs()
	for _, id := range ids {
		quest, _ := db.Quest(id)
		label := quest.Name
		if label == "" {
			label = id.String()
		} else {
			label = fmt.Sprintf("%s (%s)", stripFormatCodes(label), id)
		}
		fmt.Fprintf(&b, "  %d [label=%q]\n", uint64(id), label)
	}

	for _, id := range ids {
		quest, _ := db.Quest(id)
		if strings.EqualFold(quest.Logic, "XOR") {
			continue
		}
		for _, target := range quest.Prerequisites {
			fmt.Fprintf(&b, "  %d -> %d\n", uint64(target), uint64(id))
		}
		for _, target := range quest.OptionalPrerequisites {
			fmt.Fprintf(&b, "  %d -> %d [style=dashed]\n", uint64(target), uint64(id))
		}
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// stripFormatCodes removes Minecraft-style formatting sequences (a section
// sign followed by one code character) from display names.
func stripFormatCodes(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '§' {
			i++ // skip the code character
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}
