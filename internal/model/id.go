package model

import "strconv"

// QuestID is the combined 64-bit quest identifier. The exporter stores ids
// as two signed 32-bit halves (questIDHigh/questIDLow); newer exports carry
// a single integer. Both forms map onto this one value.
type QuestID uint64

// IDFromParts assembles an id from its signed high and low halves.
func IDFromParts(high, low int32) QuestID {
	hi := uint64(int64(high)) << 32
	lo := uint64(uint32(low))
	return QuestID(hi | lo)
}

// High returns the signed high half.
func (id QuestID) High() int32 {
	return int32(uint32(uint64(id) >> 32))
}

// Low returns the signed low half.
func (id QuestID) Low() int32 {
	return int32(uint32(uint64(id)))
}

func (id QuestID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}
