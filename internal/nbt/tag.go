package nbt

import "fmt"

// Tag identifies the declared type of a node. The values match the numeric
// type codes used in key suffixes by the exporter.
type Tag byte

const (
	TagByte      Tag = 1
	TagShort     Tag = 2
	TagInt       Tag = 3
	TagLong      Tag = 4
	TagFloat     Tag = 5
	TagDouble    Tag = 6
	TagByteArray Tag = 7
	TagString    Tag = 8
	TagList      Tag = 9
	TagCompound  Tag = 10
	TagIntArray  Tag = 11
	TagLongArray Tag = 12
)

var tagNames = map[Tag]string{
	TagByte:      "Byte",
	TagShort:     "Short",
	TagInt:       "Int",
	TagLong:      "Long",
	TagFloat:     "Float",
	TagDouble:    "Double",
	TagByteArray: "ByteArray",
	TagString:    "String",
	TagList:      "List",
	TagCompound:  "Compound",
	TagIntArray:  "IntArray",
	TagLongArray: "LongArray",
}

func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tag(%d)", byte(t))
}

// Valid reports whether t is one of the twelve recognized type codes.
func (t Tag) Valid() bool {
	_, ok := tagNames[t]
	return ok
}

// IsIntegral reports whether t is one of the integer scalar tags.
func (t Tag) IsIntegral() bool {
	switch t {
	case TagByte, TagShort, TagInt, TagLong:
		return true
	}
	return false
}

// IsFloating reports whether t is one of the floating point scalar tags.
func (t Tag) IsFloating() bool {
	return t == TagFloat || t == TagDouble
}

// IsIntArray reports whether t is one of the packed integer array tags.
func (t Tag) IsIntArray() bool {
	switch t {
	case TagByteArray, TagIntArray, TagLongArray:
		return true
	}
	return false
}
