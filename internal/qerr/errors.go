package qerr

import "fmt"

// ParseError reports malformed input text. Offset is the byte position at
// which decoding stopped.
type ParseError struct {
	File   string
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("parse error at byte %d: %s", e.Offset, e.Msg)
	}
	return fmt.Sprintf("%s: parse error at byte %d: %s", e.File, e.Offset, e.Msg)
}

// MalformedKeyError reports a key that lacks the mandatory ":<typeCode>"
// suffix. The exporter tags every meaningful key, so a bare key means the
// input is not a quest database export.
type MalformedKeyError struct {
	Key string
}

func (e *MalformedKeyError) Error() string {
	return fmt.Sprintf("malformed key %q: missing \":<typeCode>\" suffix", e.Key)
}

// UnknownTypeCodeError reports a key whose type code is not one of the
// twelve recognized tag ids.
type UnknownTypeCodeError struct {
	Key  string
	Code int
}

func (e *UnknownTypeCodeError) Error() string {
	return fmt.Sprintf("key %q: unknown type code %d", e.Key, e.Code)
}

// TypeMismatchError reports a value whose runtime shape is incompatible with
// the type declared for it, either by its key suffix or by the schema being
// mapped.
type TypeMismatchError struct {
	Key      string
	Declared string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("key %q: declared %s but value is %s", e.Key, e.Declared, e.Actual)
}

// MissingFieldError reports a required schema field that is absent from the
// input. EntityID is empty when the failure happens before the entity's
// identifier is known.
type MissingFieldError struct {
	Schema   string
	EntityID string
	Field    string
}

func (e *MissingFieldError) Error() string {
	if e.EntityID == "" {
		return fmt.Sprintf("%s: missing required field %q", e.Schema, e.Field)
	}
	return fmt.Sprintf("%s %s: missing required field %q", e.Schema, e.EntityID, e.Field)
}

// DuplicateQuestIDError reports two quests sharing one identifier.
type DuplicateQuestIDError struct {
	ID uint64
}

func (e *DuplicateQuestIDError) Error() string {
	return fmt.Sprintf("duplicate quest id %d", e.ID)
}

// DuplicateQuestLineIDError reports two quest lines sharing one identifier.
type DuplicateQuestLineIDError struct {
	ID uint64
}

func (e *DuplicateQuestLineIDError) Error() string {
	return fmt.Sprintf("duplicate quest line id %d", e.ID)
}

// DanglingReferenceError reports an identifier used by one entity that does
// not exist as a quest. Context names the kind of edge ("prerequisite" or
// "quest line entry"), From is the referring entity and Missing the absent
// quest id.
type DanglingReferenceError struct {
	Context string
	From    uint64
	Missing uint64
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("%s of %d references missing quest %d", e.Context, e.From, e.Missing)
}
