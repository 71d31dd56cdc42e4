// Package idgen generates identifiers for index builds.
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator hands out unique identifiers.
type Generator interface {
	Generate() string
}

// Sequence yields prefix_1, prefix_2, ... and is safe for concurrent use.
// Tests use it for predictable build IDs.
type Sequence struct {
	prefix string
	n      atomic.Uint64
}

func NewSequential(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

func (s *Sequence) Generate() string {
	return join(s.prefix, strconv.FormatUint(s.n.Add(1), 10))
}

// TimeOrdered yields version 7 UUIDs, so build IDs sort by creation time.
type TimeOrdered struct {
	prefix string
}

func NewUUID(prefix string) *TimeOrdered {
	return &TimeOrdered{prefix: prefix}
}

// Generate falls back to a random UUID if the v7 clock read fails.
func (t *TimeOrdered) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return join(t.prefix, id.String())
}

func join(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}
