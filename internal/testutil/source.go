// Package testutil provides shared fixtures for tests that exercise the
// export loader without touching the real file system.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

// FakeSource is an in-memory loader source. Keys are slash-separated paths
// relative to an implicit root; any path prefix of a stored file is treated
// as a directory.
type FakeSource struct {
	Files map[string]string
}

// NewFakeSource wraps a path-to-content map in a FakeSource.
func NewFakeSource(files map[string]string) *FakeSource {
	return &FakeSource{Files: files}
}

func (s *FakeSource) List(dir string) ([]string, error) {
	dir = filepath.ToSlash(dir)
	prefix := strings.TrimSuffix(dir, "/") + "/"
	seen := map[string]struct{}{}
	for path := range s.Files {
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		rest := strings.TrimPrefix(path, prefix)
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			rest = rest[:i]
		}
		seen[rest] = struct{}{}
	}
	if len(seen) == 0 && !s.IsDir(dir) {
		return nil, fmt.Errorf("no such directory: %s", dir)
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *FakeSource) ReadFile(path string) ([]byte, error) {
	content, ok := s.Files[filepath.ToSlash(path)]
	if !ok {
		return nil, fmt.Errorf("no such file: %s", path)
	}
	return []byte(content), nil
}

func (s *FakeSource) IsDir(path string) bool {
	path = filepath.ToSlash(path)
	if path == "." || path == "" {
		return true
	}
	prefix := strings.TrimSuffix(path, "/") + "/"
	for stored := range s.Files {
		if strings.HasPrefix(stored, prefix) {
			return true
		}
	}
	return false
}

func (s *FakeSource) IsFile(path string) bool {
	_, ok := s.Files[filepath.ToSlash(path)]
	return ok
}

// SampleExport is a minimal but complete export: settings, three quests
// forming a short chain with one optional edge, and one quest line placing
// all of them. Paths are relative to the export root "export".
func SampleExport() map[string]string {
	return map[string]string{
		"export/QuestSettings.json": `{"betterquesting:10": {
			"version:8": "3.0.329",
			"editMode:1": 0
		}}`,
		"export/Quests/1.json": `{
			"questID:3": 1,
			"properties:10": {"betterquesting:10": {"name:8": "Start Here", "isMain:1": 1}},
			"tasks:9": {"0:10": {"taskID:8": "bq_standard:checkbox"}}
		}`,
		"export/Quests/2.json": `{
			"questID:3": 2,
			"properties:10": {"betterquesting:10": {"name:8": "Wooden Tools"}},
			"preRequisites:11": [1],
			"rewards:9": {"0:10": {"rewardID:8": "bq_standard:item"}}
		}`,
		"export/Quests/3.json": `{
			"questID:3": 3,
			"properties:10": {"betterquesting:10": {"name:8": "Stone Tools"}},
			"preRequisites:11": [2],
			"optionalPreRequisites:11": [2]
		}`,
		"export/QuestLines/0.json": `{
			"lineID:3": 0,
			"properties:10": {"betterquesting:10": {"name:8": "Getting Started"}},
			"quests:9": {
				"0:10": {"questID:3": 1, "x:3": 0, "y:3": 0},
				"1:10": {"questID:3": 2, "x:3": 24, "y:3": 0},
				"2:10": {"questID:3": 3, "x:3": 48, "y:3": 0}
			}
		}`,
	}
}

// WriteSampleExport materializes SampleExport under a temp directory and
// returns the export root path.
func WriteSampleExport(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	for path, content := range SampleExport() {
		full := filepath.Join(base, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return filepath.Join(base, "export")
}
