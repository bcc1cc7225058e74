// Package qerr defines the typed errors produced by the quest database
// pipeline. Every load failure is one of these kinds; callers distinguish
// them with errors.As. The loader annotates errors with the originating
// file path, so the kinds themselves only carry the key, entity and value
// context local to the stage that raised them.
package qerr
