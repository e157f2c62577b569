// Package memory provides in-process repositories for tests and local play.
package memory

import (
	"sync"

	"terrafarm/internal/domain/farm"
)

type Store struct {
	mu     sync.RWMutex
	farms  map[string]farm.Farm
	events map[string][]farm.DomainEvent
}

func NewStore() *Store {
	return &Store{
		farms:  make(map[string]farm.Farm),
		events: make(map[string][]farm.DomainEvent),
	}
}

// SeedFarm installs a farm directly, bypassing version checks. Test helper.
func (s *Store) SeedFarm(f farm.Farm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.farms[f.ID] = f
}
