package service

import "time"

// SetNow swaps the LogService clock for deterministic tests.
func SetNow(s *LogService, fn func() time.Time) {
	s.now = fn
}
