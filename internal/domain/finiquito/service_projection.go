package finiquito

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// projector debounces vacation projection refetches per employee and tags
// each request with a sequence number so a slow earlier response can never
// overwrite a later one.
type projector struct {
	mu     sync.Mutex
	delay  time.Duration
	seqs   map[string]uint64
	timers map[string]*time.Timer
}

func newProjector(delay time.Duration) *projector {
	return &projector{
		delay:  delay,
		seqs:   make(map[string]uint64),
		timers: make(map[string]*time.Timer),
	}
}

func (s *Service) scheduleProjection(rut string, projectTo time.Time) {
	p := s.proj
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seqs[rut]++
	seq := p.seqs[rut]
	if timer, ok := p.timers[rut]; ok {
		timer.Stop()
	}
	p.timers[rut] = time.AfterFunc(p.delay, func() {
		s.refreshVacation(rut, projectTo, seq)
	})
}

// invalidate bumps the sequence and cancels any pending timer, so an
// in-flight refetch can no longer land.
func (p *projector) invalidate(rut string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seqs[rut]++
	if timer, ok := p.timers[rut]; ok {
		timer.Stop()
		delete(p.timers, rut)
	}
}

func (p *projector) stale(rut string, seq uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.seqs[rut] != seq
}

func (s *Service) refreshVacation(rut string, projectTo time.Time, seq uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	days, err := s.store.VacationDays(ctx, rut, projectTo)
	if err != nil {
		slog.Warn("vacation projection fetch failed", "rut", rut, "err", err)
		return
	}
	if s.proj.stale(rut, seq) {
		return
	}

	session, err := s.load(ctx, rut)
	if err != nil {
		return
	}
	if session.Input.Vacation.Overridden {
		return
	}
	// A manual override landing after the load above invalidates the
	// sequence, so re-check before persisting the fetched value.
	if s.proj.stale(rut, seq) {
		return
	}
	session.Input.Vacation.DaysAvailable = days
	if _, err := s.save(ctx, session); err != nil {
		slog.Warn("vacation projection save failed", "rut", rut, "err", err)
	}
}
