package plugins

import "slices"

// Event is a logical key event for the selection menu. The rendering layer
// decodes raw terminal input into Events; everything below works purely on
// them.
type Event int

const (
	EventNone Event = iota
	EventUp
	EventDown
	EventToggle
	EventConfirm
	EventCancel
)

// Selection tracks which catalog entries are toggled and where the cursor
// sits. The cursor stays in [0, len(catalog)) and wraps at both ends.
type Selection struct {
	catalog []string
	checked []bool
	cursor  int
}

func NewSelection(catalog []string) *Selection {
	return &Selection{
		catalog: slices.Clone(catalog),
		checked: make([]bool, len(catalog)),
	}
}

func (s *Selection) Len() int    { return len(s.catalog) }
func (s *Selection) Cursor() int { return s.cursor }

func (s *Selection) Entry(i int) string { return s.catalog[i] }
func (s *Selection) Checked(i int) bool { return s.checked[i] }

// Toggle flips the entry under the cursor.
func (s *Selection) Toggle() {
	if len(s.checked) == 0 {
		return
	}
	s.checked[s.cursor] = !s.checked[s.cursor]
}

func (s *Selection) MoveUp() {
	if n := len(s.catalog); n > 0 {
		s.cursor = (s.cursor - 1 + n) % n
	}
}

func (s *Selection) MoveDown() {
	if n := len(s.catalog); n > 0 {
		s.cursor = (s.cursor + 1) % n
	}
}

// Apply advances the selection by one navigation event. Confirm and Cancel
// are terminal decisions owned by the caller and leave the state untouched.
func (s *Selection) Apply(ev Event) {
	switch ev {
	case EventUp:
		s.MoveUp()
	case EventDown:
		s.MoveDown()
	case EventToggle:
		s.Toggle()
	}
}

// Count returns how many entries are checked.
func (s *Selection) Count() int {
	count := 0
	for _, checked := range s.checked {
		if checked {
			count++
		}
	}
	return count
}

// Any reports whether at least one entry is checked.
func (s *Selection) Any() bool {
	return s.Count() > 0
}

// Selected returns the checked entries in catalog order.
func (s *Selection) Selected() []string {
	out := make([]string, 0, s.Count())
	for i, checked := range s.checked {
		if checked {
			out = append(out, s.catalog[i])
		}
	}
	return out
}
