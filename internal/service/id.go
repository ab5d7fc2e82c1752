// internal/service/id.go
package service

import (
	"sync/atomic"
	"time"
)

// idSource hands out wall-clock-derived record ids (milliseconds since
// epoch). Two creates landing in the same millisecond get consecutive
// ids instead of a duplicate; across processes uniqueness is still not
// guaranteed.
type idSource struct {
	last atomic.Int64
}

func (s *idSource) next() int64 {
	for {
		prev := s.last.Load()
		id := time.Now().UnixMilli()
		if id <= prev {
			id = prev + 1
		}
		if s.last.CompareAndSwap(prev, id) {
			return id
		}
	}
}
