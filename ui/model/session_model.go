package model

import (
	"time"
)

// SessionModel tracks how long the annotation session has been open and the
// counters shown in the status bar.
// It is decoupled from the UI; presenters should poll Values() and update views.
// The zero value is ready to use.
type SessionModel struct {
	active  bool
	started time.Time
	elapsed time.Duration

	boxes int
	fixed int
	label string
}

// NewSessionModel returns a pointer to a ready-to-use SessionModel.
func NewSessionModel() *SessionModel { return &SessionModel{} }

// OnTick updates the model using the current session state and timestamp.
// The first open tick starts the clock; the first closed tick freezes it.
func (m *SessionModel) OnTick(open bool, now time.Time) {
	if m == nil {
		return
	}
	if open {
		if !m.active && m.started.IsZero() { // first transition off -> on
			m.active = true
			m.started = now
		}
		if m.active {
			m.elapsed = now.Sub(m.started)
		}
	} else if m.active { // on -> off, final
		m.elapsed = now.Sub(m.started)
		m.active = false
	}
}

// StartedAt returns the time of the first open tick (zero before that).
func (m *SessionModel) StartedAt() time.Time {
	if m == nil {
		return time.Time{}
	}
	return m.started
}

// SetCounts records collection counters and the active label.
func (m *SessionModel) SetCounts(boxes, fixed int, label string) {
	if m == nil {
		return
	}
	m.boxes, m.fixed, m.label = boxes, fixed, label
}

// Values returns elapsed time, box counters and the active label.
func (m *SessionModel) Values() (elapsed time.Duration, boxes, fixed int, label string) {
	if m == nil {
		return 0, 0, 0, ""
	}
	return m.elapsed, m.boxes, m.fixed, m.label
}
