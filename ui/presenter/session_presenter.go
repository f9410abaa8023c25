package presenter

import (
	"time"

	"github.com/soocke/box-annotator/domain/annotation"
	"github.com/soocke/box-annotator/ui/model"
)

// SessionSource reports the state of the annotation session.
type SessionSource interface {
	Stats() annotation.Stats
	Ended() bool
}

// SessionView displays the elapsed time and collection counters.
type SessionView interface {
	SetSession(elapsed time.Duration, boxes, fixed int, label string)
}

// SessionPresenter formats session statistics from the model to the view.
type SessionPresenter struct {
	sess *model.SessionModel
	src  SessionSource
	view SessionView
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(sess *model.SessionModel, src SessionSource, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, src: src, view: view}
}

// Tick updates the presenter: advance the session model and push values to the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.src == nil || p.view == nil {
		return
	}
	p.sess.OnTick(!p.src.Ended(), now)
	st := p.src.Stats()
	p.sess.SetCounts(st.Boxes, st.Fixed, st.ActiveLabel)
	p.view.SetSession(p.sess.Values())
}
