// Package resolve cross-links the mapped records into the final database.
// It enforces identifier uniqueness and confirms that every prerequisite
// and every quest line entry references an existing quest, in a
// deterministic order, before any database value is handed out.
package resolve
