package model

import (
	"testing"
	"time"
)

func TestSessionModel_BasicLifecycle(t *testing.T) {
	m := NewSessionModel()
	base := time.Unix(0, 0)

	// Closed ticks before the session opens change nothing.
	m.OnTick(false, base)
	if e, _, _, _ := m.Values(); e != 0 || !m.StartedAt().IsZero() {
		t.Fatalf("expected idle model; got elapsed=%v started=%v", e, m.StartedAt())
	}

	// Open at t0 and run for 5s.
	m.OnTick(true, base.Add(time.Second))
	m.OnTick(true, base.Add(6*time.Second))
	elapsed, _, _, _ := m.Values()
	if elapsed != 5*time.Second {
		t.Fatalf("expected 5s elapsed; got %v", elapsed)
	}
	if !m.StartedAt().Equal(base.Add(time.Second)) {
		t.Fatalf("unexpected start %v", m.StartedAt())
	}

	// Close at 8s freezes the clock.
	m.OnTick(false, base.Add(8*time.Second))
	m.OnTick(false, base.Add(20*time.Second))
	elapsed, _, _, _ = m.Values()
	if elapsed != 7*time.Second {
		t.Fatalf("expected frozen 7s; got %v", elapsed)
	}

	// A session does not restart once closed.
	m.OnTick(true, base.Add(30*time.Second))
	elapsed2, _, _, _ := m.Values()
	if elapsed2 != elapsed {
		t.Fatalf("closed session restarted: before=%v after=%v", elapsed, elapsed2)
	}
}

func TestSessionModel_Counts(t *testing.T) {
	m := NewSessionModel()
	m.SetCounts(3, 1, "Foo")
	_, boxes, fixed, label := m.Values()
	if boxes != 3 || fixed != 1 || label != "Foo" {
		t.Fatalf("unexpected counts boxes=%d fixed=%d label=%q", boxes, fixed, label)
	}
}

func TestSessionModel_NilSafe(t *testing.T) {
	var m *SessionModel
	m.OnTick(true, time.Now())
	m.SetCounts(1, 1, "x")
	if e, b, f, l := m.Values(); e != 0 || b != 0 || f != 0 || l != "" {
		t.Fatalf("nil model should report zeros")
	}
}
