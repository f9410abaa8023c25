package annotation

// OptionID is the stable identity of a label control. Zero means none.
type OptionID int

// Option is one entry of the label picker.
type Option struct {
	ID       OptionID
	Value    string
	FreeText bool
}

// LabelSet is the ordered list of label options. A fixed palette is followed
// by free-text options; committing text into a free-text option for the first
// time appends a fresh blank one.
type LabelSet struct {
	options []Option
	spawned map[OptionID]bool
	checked OptionID
	nextID  OptionID
}

// NewLabelSet returns the palette followed by one blank free-text option.
func NewLabelSet(palette []string) *LabelSet {
	s := &LabelSet{spawned: make(map[OptionID]bool)}
	for _, v := range palette {
		if v == "" {
			continue
		}
		s.add(v, false)
	}
	s.add("", true)
	return s
}

func (s *LabelSet) add(value string, free bool) OptionID {
	s.nextID++
	s.options = append(s.options, Option{ID: s.nextID, Value: value, FreeText: free})
	return s.nextID
}

// Options returns a copy of the options in display order.
func (s *LabelSet) Options() []Option {
	if s == nil {
		return nil
	}
	out := make([]Option, len(s.options))
	copy(out, s.options)
	return out
}

// Option looks up an option by id.
func (s *LabelSet) Option(id OptionID) (Option, bool) {
	if s == nil {
		return Option{}, false
	}
	for _, o := range s.options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// SetChecked marks id as the checked option. Unknown ids clear the check.
func (s *LabelSet) SetChecked(id OptionID) {
	if _, ok := s.Option(id); !ok {
		s.checked = 0
		return
	}
	s.checked = id
}

// Check checks the first option whose value equals label. On a miss every
// option is unchecked and false is returned.
func (s *LabelSet) Check(label string) (OptionID, bool) {
	for _, o := range s.options {
		if o.Value == label {
			s.checked = o.ID
			return o.ID, true
		}
	}
	s.checked = 0
	return 0, false
}

// Checked returns the checked option, if any.
func (s *LabelSet) Checked() (Option, bool) {
	if s == nil || s.checked == 0 {
		return Option{}, false
	}
	return s.Option(s.checked)
}

// Commit stores text as the value of option id and returns the previous value.
// The first commit of a free-text option appends a new blank free-text option
// whose id is returned as added.
func (s *LabelSet) Commit(id OptionID, text string) (old string, added OptionID, ok bool) {
	for i := range s.options {
		if s.options[i].ID != id {
			continue
		}
		old = s.options[i].Value
		s.options[i].Value = text
		if s.options[i].FreeText && !s.spawned[id] {
			s.spawned[id] = true
			added = s.add("", true)
		}
		return old, added, true
	}
	return "", 0, false
}
