package reporting

import (
	"sync"
	"time"
)

// sequencer numera as buscas de cada projeto. Só o resultado da busca mais recente é persistido;
// um resultado superado ainda é devolvido a quem o pediu.
type sequencer struct {
	mu     sync.Mutex
	last   int64
	latest map[string]int64
	clock  func() time.Time
}

func newSequencer(clock func() time.Time) *sequencer {
	return &sequencer{
		latest: make(map[string]int64),
		clock:  clock,
	}
}

// Next reserva a próxima sequência do projeto. Baseada no relógio para continuar crescente
// depois de um restart, já que o banco compara com sequências de execuções anteriores.
func (s *sequencer) Next(projectID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.clock().UnixNano()
	if seq <= s.last {
		seq = s.last + 1
	}
	s.last = seq
	s.latest[projectID] = seq

	return seq
}

func (s *sequencer) IsLatest(projectID string, seq int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.latest[projectID] == seq
}
