package view

import (
	"fmt"
	"time"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// SessionStats shows elapsed time, box counters and the active label.
type SessionStats interface {
	SetSession(elapsed time.Duration, boxes, fixed int, label string)
}

type sessionStats struct {
	timeLbl  *LabelWidget
	boxesLbl *LabelWidget
	labelLbl *LabelWidget
}

// NewSessionStats creates the three status labels stacked from row in parent.
func NewSessionStats(parent *FrameWidget, row int) SessionStats {
	s := &sessionStats{timeLbl: Label(Width(18), Anchor("w")), boxesLbl: Label(Width(18), Anchor("w")), labelLbl: Label(Width(18), Anchor("w"))}
	Grid(s.timeLbl, In(parent), Row(row), Column(0), Sticky("w"), Padx("0.2m"))
	Grid(s.boxesLbl, In(parent), Row(row+1), Column(0), Sticky("w"), Padx("0.2m"))
	Grid(s.labelLbl, In(parent), Row(row+2), Column(0), Sticky("w"), Padx("0.2m"))
	s.SetSession(0, 0, 0, "")
	return s
}

func (s *sessionStats) SetSession(elapsed time.Duration, boxes, fixed int, label string) {
	if s == nil || s.timeLbl == nil {
		return
	}
	s.timeLbl.Configure(Txt("Time: " + formatElapsed(elapsed)))
	s.boxesLbl.Configure(Txt(fmt.Sprintf("Boxes: %d (fixed: %d)", boxes, fixed)))
	if label == "" {
		label = "<none>"
	}
	s.labelLbl.Configure(Txt("Label: " + label))
}

func formatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	seconds := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
