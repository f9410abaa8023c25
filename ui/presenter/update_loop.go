package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It flushes pending canvas repaints, ticks the session and preview
// presenters and invokes a scheduler callback. The zero value is usable
// (methods are nil-safe).
type Loop struct {
	Annotation *AnnotationPresenter
	Session    *SessionPresenter
	Preview    *PreviewPresenter
	Schedule   func()
}

func NewLoop(ann *AnnotationPresenter, sess *SessionPresenter, preview *PreviewPresenter, schedule func()) *Loop {
	return &Loop{Annotation: ann, Session: sess, Preview: preview, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	// Coalesced pointer motion is painted here.
	if l.Annotation != nil {
		l.Annotation.Flush()
	}
	if l.Session != nil {
		l.Session.Tick(now)
	}
	if l.Preview != nil {
		l.Preview.Tick()
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
