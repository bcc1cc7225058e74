// Package nbt decodes the NBT-derived JSON-like text emitted by the
// BetterQuesting exporter into a generic node tree, then normalizes it:
// suffix-typed keys ("name:8") are split into a bare name and a declared
// tag, and compounds whose keys are all decimal indices are coerced into
// ordered lists.
//
// Decoding is purely syntactic; normalization attaches and enforces the
// declared types. Downstream schema mapping works only with normalized
// trees and never re-parses key suffixes.
package nbt
