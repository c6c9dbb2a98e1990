package plugins

import (
	"slices"
	"testing"
)

func TestSelectionCursorWraps(t *testing.T) {
	s := NewSelection([]string{"a", "b", "c"})

	if s.Cursor() != 0 {
		t.Fatalf("initial cursor = %d, want 0", s.Cursor())
	}

	s.MoveUp()
	if s.Cursor() != 2 {
		t.Errorf("cursor after up from 0 = %d, want 2", s.Cursor())
	}

	s.MoveDown()
	if s.Cursor() != 0 {
		t.Errorf("cursor after down from 2 = %d, want 0", s.Cursor())
	}
}

func TestSelectionToggleAndOrder(t *testing.T) {
	s := NewSelection([]string{"a", "b", "c"})

	// Check c first, then a; result must still follow catalog order.
	s.MoveUp()
	s.Toggle()
	s.MoveDown()
	s.Toggle()

	got := s.Selected()
	want := []string{"a", "c"}
	if !slices.Equal(got, want) {
		t.Errorf("Selected() = %v, want %v", got, want)
	}

	if s.Count() != 2 {
		t.Errorf("Count() = %d, want 2", s.Count())
	}

	// Toggling again clears.
	s.Toggle()
	if s.Checked(0) {
		t.Error("entry 0 still checked after second toggle")
	}
}

func TestSelectionApplySequence(t *testing.T) {
	s := NewSelection([]string{"a", "b", "c"})

	for _, ev := range []Event{EventDown, EventToggle, EventDown, EventToggle} {
		s.Apply(ev)
	}

	got := s.Selected()
	want := []string{"b", "c"}
	if !slices.Equal(got, want) {
		t.Errorf("Selected() = %v, want %v", got, want)
	}
	if s.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", s.Cursor())
	}

	// Confirm and Cancel must not mutate state.
	s.Apply(EventConfirm)
	s.Apply(EventCancel)
	if !slices.Equal(s.Selected(), want) || s.Cursor() != 2 {
		t.Error("Confirm/Cancel mutated selection state")
	}
}

func TestSelectionEmptyCatalog(t *testing.T) {
	s := NewSelection(nil)
	s.MoveUp()
	s.MoveDown()
	s.Toggle()
	if s.Cursor() != 0 || s.Any() {
		t.Errorf("empty catalog: cursor = %d, any = %v", s.Cursor(), s.Any())
	}
}

func TestDefaultCatalog(t *testing.T) {
	got := DefaultCatalog()
	if len(got) != 8 {
		t.Fatalf("catalog has %d entries, want 8", len(got))
	}

	// Mutating the returned slice must not affect the catalog.
	got[0] = "mutated"
	if DefaultCatalog()[0] == "mutated" {
		t.Error("DefaultCatalog returns a shared slice")
	}

	if !Known("serverless-offline") {
		t.Error("Known(serverless-offline) = false")
	}
	if Known("mutated") {
		t.Error("Known(mutated) = true")
	}
}
