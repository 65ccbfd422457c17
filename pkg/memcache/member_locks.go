package mem

import (
	"sync"

	"github.com/google/uuid"
)

// MemberLockStore hands out one mutex per member id so the check-in
// read-modify-write cannot race for the same member. Locks for distinct
// members are independent.
type MemberLockStore interface {
	Lock(memberID uuid.UUID)
	Unlock(memberID uuid.UUID)
}

type MemberLocks struct {
	mu   sync.Mutex
	data map[uuid.UUID]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func NewMemberLocks() *MemberLocks {
	return &MemberLocks{
		data: make(map[uuid.UUID]*lockEntry),
	}
}

func (s *MemberLocks) Lock(memberID uuid.UUID) {
	s.mu.Lock()
	e, ok := s.data[memberID]
	if !ok {
		e = &lockEntry{}
		s.data[memberID] = e
	}
	e.refs++
	s.mu.Unlock()

	e.mu.Lock()
}

func (s *MemberLocks) Unlock(memberID uuid.UUID) {
	s.mu.Lock()
	e, ok := s.data[memberID]
	if ok {
		e.refs--
		if e.refs == 0 {
			delete(s.data, memberID) // cleanup idle entries
		}
	}
	s.mu.Unlock()

	if ok {
		e.mu.Unlock()
	}
}
