package model

import "sync/atomic"

// Sequence hands out strictly increasing ids. Issued ids are never reused,
// even after the entity that carried them is deleted.
type Sequence struct {
	last atomic.Int64
}

// NewSequence returns a sequence whose first Next() is start.
func NewSequence(start int64) *Sequence {
	s := &Sequence{}
	s.last.Store(start - 1)
	return s
}

func (s *Sequence) Next() int64 {
	return s.last.Add(1)
}

// Peek returns the id the next call to Next will issue.
func (s *Sequence) Peek() int64 {
	return s.last.Load() + 1
}
