package models

import (
	"strconv"
	"strings"
)

// KnownIds is the set of category ids of a loaded dataset, in dataset order.
// It is the authority for every id check.
type KnownIds struct {
	order []int32
	set   map[int32]struct{}
}

func NewKnownIds(ids []int32) KnownIds {
	known := KnownIds{
		order: make([]int32, 0, len(ids)),
		set:   make(map[int32]struct{}, len(ids)),
	}
	for _, id := range ids {
		if _, ok := known.set[id]; ok {
			continue
		}
		known.set[id] = struct{}{}
		known.order = append(known.order, id)
	}
	return known
}

func (k KnownIds) Contains(id int32) bool {
	_, ok := k.set[id]
	return ok
}

func (k KnownIds) Len() int {
	return len(k.order)
}

func (k KnownIds) Slice() []int32 {
	return append([]int32(nil), k.order...)
}

// String renders the set as "[2, 3, 4]".
func (k KnownIds) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, id := range k.order {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatInt(int64(id), 10))
	}
	sb.WriteByte(']')
	return sb.String()
}
