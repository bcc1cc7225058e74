package importance

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/j2ghz/BetterQuestingTools/internal/model"
)

// Options configures a scoring run.
type Options struct {
	// Alpha is the propagation factor in [0, 1] applied to dependent base
	// weights.
	Alpha float64
	// LogScale compresses base weights with ln(1 + n).
	LogScale bool
	// Normalize rescales final scores into [0, 1), strictly below one.
	Normalize bool
}

// AlphaRangeError reports a propagation factor outside [0, 1].
type AlphaRangeError struct {
	Alpha float64
}

func (e *AlphaRangeError) Error() string {
	return fmt.Sprintf("propagation factor %v out of range [0, 1]", e.Alpha)
}

// CycleError reports a directed cycle in the prerequisite graph.
type CycleError struct {
	Path []model.QuestID
}

func (e *CycleError) Error() string {
	parts := make([]string, 0, len(e.Path))
	for _, id := range e.Path {
		parts = append(parts, id.String())
	}
	return "prerequisite cycle: " + strings.Join(parts, " -> ")
}

type weightedEdge struct {
	dependent model.QuestID
	weight    float64
}

// Scores computes an importance score for every quest in the database.
func Scores(db *model.QuestDatabase, opts Options) (map[model.QuestID]float64, error) {
	if opts.Alpha < 0 || opts.Alpha > 1 || math.IsNaN(opts.Alpha) {
		return nil, &AlphaRangeError{Alpha: opts.Alpha}
	}

	adjacency := make(map[model.QuestID][]model.QuestID, db.QuestCount())
	dependents := make(map[model.QuestID][]weightedEdge)
	for _, id := range db.QuestIDs() {
		quest, _ := db.Quest(id)
		if strings.EqualFold(quest.Logic, "XOR") {
			// XOR groups would double-count alternatives; drop their
			// outgoing edges entirely.
			continue
		}

		seen := make(map[model.QuestID]struct{})
		var required, optional []model.QuestID
		for _, p := range quest.Prerequisites {
			if _, dup := seen[p]; !dup {
				seen[p] = struct{}{}
				required = append(required, p)
			}
		}
		for _, p := range quest.OptionalPrerequisites {
			if _, dup := seen[p]; !dup {
				seen[p] = struct{}{}
				optional = append(optional, p)
			}
		}

		adjacency[id] = append(append([]model.QuestID{}, required...), optional...)
		for _, p := range required {
			dependents[p] = append(dependents[p], weightedEdge{dependent: id, weight: 1})
		}
		if len(optional) > 0 {
			w := 1 / float64(len(optional))
			for _, p := range optional {
				dependents[p] = append(dependents[p], weightedEdge{dependent: id, weight: w})
			}
		}
	}

	if cycle := findCycle(db.QuestIDs(), adjacency); cycle != nil {
		return nil, &CycleError{Path: cycle}
	}

	base := make(map[model.QuestID]float64, db.QuestCount())
	for _, id := range db.QuestIDs() {
		raw := 0.0
		for _, edge := range dependents[id] {
			raw += edge.weight
		}
		if opts.LogScale {
			raw = math.Log1p(raw)
		}
		base[id] = raw
	}

	scores := make(map[model.QuestID]float64, db.QuestCount())
	for _, id := range db.QuestIDs() {
		propagated := 0.0
		for _, edge := range dependents[id] {
			propagated += edge.weight * base[edge.dependent]
		}
		scores[id] = base[id] + opts.Alpha*propagated
	}

	if opts.Normalize {
		max := 0.0
		for _, s := range scores {
			if s > max {
				max = s
			}
		}
		if max > 0 {
			// Slight inflation keeps the maximum strictly below one.
			divisor := max * 1.000000001
			for id := range scores {
				scores[id] /= divisor
			}
		}
	}
	return scores, nil
}

// findCycle runs a gray/black DFS over the prerequisite edges and returns
// one cycle path, or nil when the graph is acyclic. Roots are visited in
// ascending id order so the reported cycle is deterministic.
func findCycle(ids []model.QuestID, adjacency map[model.QuestID][]model.QuestID) []model.QuestID {
	const (
		white = iota
		gray
		black
	)
	color := make(map[model.QuestID]int, len(ids))
	position := make(map[model.QuestID]int)
	var stack []model.QuestID

	var visit func(id model.QuestID) []model.QuestID
	visit = func(id model.QuestID) []model.QuestID {
		color[id] = gray
		position[id] = len(stack)
		stack = append(stack, id)

		for _, next := range adjacency[id] {
			switch color[next] {
			case white:
				if cycle := visit(next); cycle != nil {
					return cycle
				}
			case gray:
				start := position[next]
				return append([]model.QuestID{}, stack[start:]...)
			}
		}

		stack = stack[:len(stack)-1]
		delete(position, id)
		color[id] = black
		return nil
	}

	for _, id := range ids {
		if color[id] == white {
			if cycle := visit(id); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}

// Scored pairs a quest id with its score.
type Scored struct {
	ID    model.QuestID
	Score float64
}

// OrderPrereqs sorts a quest's required prerequisites by score descending,
// id ascending on ties. Missing scores count as zero.
func OrderPrereqs(q *model.Quest, scores map[model.QuestID]float64) []Scored {
	out := make([]Scored, 0, len(q.Prerequisites))
	for _, id := range q.Prerequisites {
		out = append(out, Scored{ID: id, Score: scores[id]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].ID < out[j].ID
	})
	return out
}
