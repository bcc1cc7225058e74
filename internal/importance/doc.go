// Package importance ranks quests by how many other quests depend on them.
// A quest's base weight is the (optionally log-compressed) sum of its
// dependent edges; one propagation step then adds a fraction of each
// dependent's own base weight. Optional prerequisite groups split a unit of
// weight across their members, and XOR-logic quests contribute no outgoing
// edges at all.
//
// Scoring requires an acyclic prerequisite graph. Cycles are legal in the
// database itself, so the failure is reported here, not at load time.
package importance
