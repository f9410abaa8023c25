package view

import (
	"strings"

	"github.com/soocke/box-annotator/domain/annotation"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// LabelHandler receives label picker input.
type LabelHandler interface {
	LabelChosen(id annotation.OptionID)
	FreeTextCommitted(id annotation.OptionID, text string)
}

// LabelPanel renders the label options as a radio-style button column. Free-text
// options get a one-line text entry next to their button.
type LabelPanel interface {
	SetLabelOptions(opts []annotation.Option, checked annotation.OptionID)
}

type labelRow struct {
	opt    annotation.Option
	button *ButtonWidget
	entry  *TextWidget
}

type labelPanel struct {
	frame   *FrameWidget
	handler LabelHandler
	onPress func()
	rows    map[annotation.OptionID]*labelRow
	next    int
}

// NewLabelPanel creates an empty panel gridded at row of parent. onPress is
// called for every button press inside a label control.
func NewLabelPanel(parent *FrameWidget, row int, h LabelHandler, onPress func()) LabelPanel {
	frame := Frame(Borderwidth(1), Relief("groove"))
	Grid(frame, In(parent), Row(row), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	heading := Label(Txt("Label"), Anchor("w"))
	Grid(heading, In(frame), Row(0), Column(0), Columnspan(2), Sticky("w"), Padx("0.4m"))
	return &labelPanel{frame: frame, handler: h, onPress: onPress, rows: make(map[annotation.OptionID]*labelRow), next: 1}
}

func (v *labelPanel) SetLabelOptions(opts []annotation.Option, checked annotation.OptionID) {
	if v == nil || v.frame == nil {
		return
	}
	for _, opt := range opts {
		r, ok := v.rows[opt.ID]
		if !ok {
			r = v.addRow(opt)
		}
		r.opt = opt
		relief := "raised"
		if opt.ID == checked {
			relief = "sunken"
		}
		r.button.Configure(Txt(buttonText(opt)), Relief(relief))
		if r.entry != nil && v.entryText(r.entry) != opt.Value {
			r.entry.Delete("1.0", END)
			r.entry.Insert("1.0", opt.Value)
		}
	}
}

func buttonText(opt annotation.Option) string {
	if opt.FreeText && opt.Value == "" {
		return "Other"
	}
	return opt.Value
}

func (v *labelPanel) addRow(opt annotation.Option) *labelRow {
	id := opt.ID
	r := &labelRow{opt: opt}
	r.button = Button(Txt(buttonText(opt)), Width(12), Command(func() {
		if v.handler != nil {
			v.handler.LabelChosen(id)
		}
	}))
	Grid(r.button, In(v.frame), Row(v.next), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	v.markPress(r.button)
	if opt.FreeText {
		r.entry = Text(Height(1), Width(14))
		Grid(r.entry, In(v.frame), Row(v.next), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
		v.markPress(r.entry)
		commit := func() { v.commit(r) }
		Bind(r.entry, "<KeyRelease-Return>", Command(commit))
		Bind(r.entry, "<FocusOut>", Command(commit))
	}
	v.rows[id] = r
	v.next++
	return r
}

func (v *labelPanel) markPress(w Widget) {
	if v.onPress == nil {
		return
	}
	Bind(w, "<ButtonPress-1>", Command(v.onPress))
}

// commit forwards the entry text when it differs from the stored value. Line
// breaks typed into the entry are folded away.
func (v *labelPanel) commit(r *labelRow) {
	raw := strings.TrimSuffix(strings.Join(r.entry.Get("1.0", END), ""), "\n")
	text := strings.Join(strings.Fields(raw), " ")
	if raw != text {
		r.entry.Delete("1.0", END)
		r.entry.Insert("1.0", text)
	}
	if text == r.opt.Value || v.handler == nil {
		return
	}
	v.handler.FreeTextCommitted(r.opt.ID, text)
}

func (v *labelPanel) entryText(w *TextWidget) string {
	if w == nil {
		return ""
	}
	return strings.Join(strings.Fields(strings.Join(w.Get("1.0", END), "")), " ")
}
