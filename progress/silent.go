package progress

import "sync"

// Silent discards progress and keeps warnings for later inspection.
type Silent struct {
	mu       sync.Mutex
	phases   []string
	warnings []string
}

func (s *Silent) Phase(n int, total int, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phases = append(s.phases, msg)
}

func (s *Silent) Warn(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warnings = append(s.warnings, msg)
}

func (s *Silent) Bar(string) Reporter {
	return Nop()
}

func (s *Silent) Wait() {}

func (s *Silent) Phases() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.phases...)
}

func (s *Silent) Warnings() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.warnings...)
}
