package loader

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/j2ghz/BetterQuestingTools/internal/ctxlog"
	"github.com/j2ghz/BetterQuestingTools/internal/fsutil"
	"github.com/j2ghz/BetterQuestingTools/internal/mapper"
	"github.com/j2ghz/BetterQuestingTools/internal/model"
	"github.com/j2ghz/BetterQuestingTools/internal/nbt"
	"github.com/j2ghz/BetterQuestingTools/internal/resolve"
)

// Source abstracts file access so the loader can be driven from the OS file
// system, an archive, or an in-memory fixture.
type Source interface {
	// List returns the entry names of a directory, sorted.
	List(dir string) ([]string, error)
	// ReadFile returns the contents of a file.
	ReadFile(path string) ([]byte, error)
	// IsDir reports whether the path is a directory.
	IsDir(path string) bool
	// IsFile reports whether the path is a regular file.
	IsFile(path string) bool
}

// LoadDir loads and validates the export rooted at dir from the OS file
// system. It returns the full database or the first error; there are no
// partial results.
func LoadDir(ctx context.Context, dir string) (*model.QuestDatabase, error) {
	return Load(ctx, fsutil.NewOSSource(), dir)
}

// Load is LoadDir over an arbitrary Source.
func Load(ctx context.Context, src Source, root string) (*model.QuestDatabase, error) {
	logger := ctxlog.FromContext(ctx)
	if !src.IsDir(root) {
		return nil, fmt.Errorf("not a quest database directory: %s", root)
	}

	settings, err := loadSettings(src, root)
	if err != nil {
		return nil, err
	}
	quests, err := loadQuests(src, filepath.Join(root, "Quests"))
	if err != nil {
		return nil, err
	}
	lines, err := loadLines(src, filepath.Join(root, "QuestLines"))
	if err != nil {
		return nil, err
	}
	logger.Debug("export mapped", "root", root, "quests", len(quests), "lines", len(lines))

	return resolve.Build(quests, lines, settings)
}

// parseFile runs the decode and normalize stages on one file.
func parseFile(src Source, path string) (*nbt.Node, error) {
	data, err := src.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	raw, err := nbt.Decode(path, data)
	if err != nil {
		return nil, err
	}
	norm, err := nbt.Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return norm, nil
}

func loadSettings(src Source, root string) (*model.QuestSettings, error) {
	for _, name := range []string{"QuestSettings.json", "QuestSettings"} {
		path := filepath.Join(root, name)
		if !src.IsFile(path) {
			continue
		}
		norm, err := parseFile(src, path)
		if err != nil {
			return nil, err
		}
		settings, err := mapper.MapSettings(norm)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return settings, nil
	}
	return nil, nil
}

func loadQuests(src Source, dir string) ([]*model.Quest, error) {
	if !src.IsDir(dir) {
		return nil, nil
	}
	names, err := src.List(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	var quests []*model.Quest
	for _, name := range names {
		path := filepath.Join(dir, name)
		if !strings.HasSuffix(name, ".json") || !src.IsFile(path) {
			continue
		}
		norm, err := parseFile(src, path)
		if err != nil {
			return nil, err
		}
		quest, err := mapper.MapQuest(norm)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		quests = append(quests, quest)
	}
	return quests, nil
}

func loadLines(src Source, dir string) ([]*model.QuestLine, error) {
	if !src.IsDir(dir) {
		return nil, nil
	}
	names, err := src.List(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	var lines []*model.QuestLine
	for _, name := range names {
		path := filepath.Join(dir, name)
		switch {
		case src.IsDir(path):
			line, err := loadLineDir(src, path)
			if err != nil {
				return nil, err
			}
			if line != nil {
				lines = append(lines, line)
			}
		case strings.HasSuffix(name, ".json") && src.IsFile(path):
			norm, err := parseFile(src, path)
			if err != nil {
				return nil, err
			}
			line, err := mapper.MapQuestLine(norm)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// loadLineDir loads a directory-form quest line: QuestLine.json describes
// the line, every other JSON file is one entry. Entry files are keyed by
// arbitrary names, so the entries are ordered by quest id to keep the
// result independent of file naming. A directory without QuestLine.json is
// not a quest line and is skipped.
func loadLineDir(src Source, dir string) (*model.QuestLine, error) {
	linePath := filepath.Join(dir, "QuestLine.json")
	if !src.IsFile(linePath) {
		return nil, nil
	}
	norm, err := parseFile(src, linePath)
	if err != nil {
		return nil, err
	}
	line, err := mapper.MapQuestLine(norm)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", linePath, err)
	}

	names, err := src.List(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	var entries []model.QuestLineEntry
	for _, name := range names {
		if name == "QuestLine.json" || !strings.HasSuffix(name, ".json") {
			continue
		}
		path := filepath.Join(dir, name)
		if !src.IsFile(path) {
			continue
		}
		entryNode, err := parseFile(src, path)
		if err != nil {
			return nil, err
		}
		entry, err := mapper.MapQuestLineEntry(entryNode)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		entries = append(entries, entry)
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].QuestID < entries[j].QuestID })
	line.Entries = append(line.Entries, entries...)
	return line, nil
}
