package store

import (
	"path/filepath"
	"slices"
	"testing"
	"time"
)

func newTestStore(tasks ...Task) *Store {
	s := New(Options{Path: ""})
	for _, t := range tasks {
		if t.ID == "" {
			t.ID = t.Text
		}
		s.tasks = append(s.tasks, t)
	}
	return s
}

func priorities(s *Store) []int {
	out := make([]int, 0, s.Len())
	for _, t := range s.Tasks() {
		out = append(out, t.Priority)
	}
	return out
}

func texts(tasks []Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Text)
	}
	return out
}

func TestAdd_RejectsBlankText(t *testing.T) {
	s := newTestStore(Task{Text: "A", Priority: 3})

	for _, text := range []string{"", "   ", "\t\n"} {
		if s.Add(text, 5, White) {
			t.Errorf("Add(%q) should be rejected", text)
		}
	}
	if s.Len() != 1 {
		t.Errorf("Expected 1 task, got %d", s.Len())
	}
}

func TestAdd_SortsByPriority(t *testing.T) {
	s := newTestStore(
		Task{Text: "five", Priority: 5},
		Task{Text: "eight", Priority: 8},
		Task{Text: "two", Priority: 2},
	)

	if !s.Add("  nine  ", 9, LightRed) {
		t.Fatal("Add should succeed")
	}

	if got, want := priorities(s), []int{9, 8, 5, 2}; !slices.Equal(got, want) {
		t.Errorf("Expected priorities %v, got %v", want, got)
	}

	added, _ := s.Task(0)
	if added.Text != "nine" {
		t.Errorf("Expected trimmed text %q, got %q", "nine", added.Text)
	}
	if added.Selected {
		t.Error("New task should not be selected")
	}
	if added.Color != LightRed {
		t.Errorf("Expected color %v, got %v", LightRed, added.Color)
	}
	if added.ID == "" {
		t.Error("New task should have an ID")
	}
}

func TestAdd_StableForEqualPriorities(t *testing.T) {
	s := newTestStore(
		Task{Text: "a", Priority: 5},
		Task{Text: "b", Priority: 5},
	)
	s.Add("c", 5, White)

	if got, want := texts(s.Tasks()), []string{"a", "b", "c"}; !slices.Equal(got, want) {
		t.Errorf("Expected order %v, got %v", want, got)
	}
}

func TestAdd_ClampsPriority(t *testing.T) {
	s := newTestStore()
	s.Add("high", 42, White)
	s.Add("low", -3, White)

	if got, want := priorities(s), []int{10, 1}; !slices.Equal(got, want) {
		t.Errorf("Expected priorities %v, got %v", want, got)
	}
}

func TestDeleteAndUndo(t *testing.T) {
	s := newTestStore(
		Task{Text: "A", Priority: 7, Selected: true},
		Task{Text: "B", Priority: 5},
		Task{Text: "C", Priority: 3, Selected: true},
	)

	if n := s.DeleteSelected(); n != 2 {
		t.Fatalf("Expected 2 deleted, got %d", n)
	}
	if got, want := texts(s.Tasks()), []string{"B"}; !slices.Equal(got, want) {
		t.Errorf("Expected remaining %v, got %v", want, got)
	}
	if got, want := texts(s.LastDeleted()), []string{"A", "C"}; !slices.Equal(got, want) {
		t.Errorf("Expected buffer %v, got %v", want, got)
	}

	if !s.Undo() {
		t.Fatal("Undo should restore the batch")
	}
	if got, want := texts(s.Tasks()), []string{"A", "B", "C"}; !slices.Equal(got, want) {
		t.Errorf("Expected restored %v, got %v", want, got)
	}
	if len(s.LastDeleted()) != 0 {
		t.Error("Buffer should be empty after undo")
	}

	if s.Undo() {
		t.Error("Second undo should be a no-op")
	}
	if s.Len() != 3 {
		t.Errorf("Expected 3 tasks, got %d", s.Len())
	}
}

func TestDelete_SecondBatchReplacesFirst(t *testing.T) {
	s := newTestStore(
		Task{Text: "A", Priority: 3, Selected: true},
		Task{Text: "B", Priority: 2},
	)

	s.DeleteSelected()
	s.ToggleSelected(0)
	s.DeleteSelected()

	if s.Len() != 0 {
		t.Fatalf("Expected empty list, got %d", s.Len())
	}
	s.Undo()
	if got, want := texts(s.Tasks()), []string{"B"}; !slices.Equal(got, want) {
		t.Errorf("Expected only the last batch %v, got %v", want, got)
	}
	if s.Undo() {
		t.Error("First batch should be gone")
	}
}

func TestDelete_NothingSelectedKeepsBuffer(t *testing.T) {
	s := newTestStore(
		Task{Text: "A", Priority: 3, Selected: true},
		Task{Text: "B", Priority: 2},
	)
	s.DeleteSelected()
	rev := s.Revision()

	if n := s.DeleteSelected(); n != 0 {
		t.Errorf("Expected nothing deleted, got %d", n)
	}
	if len(s.LastDeleted()) != 1 {
		t.Errorf("Buffer should still hold the first batch, got %d", len(s.LastDeleted()))
	}
	if s.Revision() != rev {
		t.Error("Revision should not change for an empty delete")
	}
}

func TestRecolor_OnlySelected(t *testing.T) {
	s := newTestStore(
		Task{Text: "A", Priority: 3, Color: White, Selected: true},
		Task{Text: "B", Priority: 2, Color: White},
	)

	if n := s.Recolor(DarkGreen); n != 1 {
		t.Errorf("Expected 1 recolored, got %d", n)
	}
	a, _ := s.Task(0)
	b, _ := s.Task(1)
	if a.Color != DarkGreen {
		t.Errorf("Selected task should be recolored, got %v", a.Color)
	}
	if b.Color != White {
		t.Errorf("Unselected task should keep its color, got %v", b.Color)
	}
	if !a.Selected || b.Selected {
		t.Error("Recolor must not change selection")
	}
}

func TestSelectNextPrev(t *testing.T) {
	tests := []struct {
		name     string
		selected []bool
		next     bool
		want     []bool
	}{
		{"none selected, next", []bool{false, false, false}, true, []bool{true, false, false}},
		{"none selected, prev", []bool{false, false, false}, false, []bool{true, false, false}},
		{"middle, next", []bool{false, true, false}, true, []bool{false, false, true}},
		{"middle, prev", []bool{false, true, false}, false, []bool{true, false, false}},
		{"last, next", []bool{false, false, true}, true, []bool{false, false, true}},
		{"first, prev", []bool{true, false, false}, false, []bool{true, false, false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore()
			for i, sel := range tt.selected {
				s.tasks = append(s.tasks, Task{ID: string(rune('a' + i)), Text: "t", Priority: 1, Selected: sel})
			}

			if tt.next {
				s.SelectNext()
			} else {
				s.SelectPrev()
			}

			for i, want := range tt.want {
				if s.tasks[i].Selected != want {
					t.Errorf("index %d: expected selected=%v, got %v", i, want, s.tasks[i].Selected)
				}
			}
			if s.SelectedCount() > 1 {
				t.Errorf("Expected at most one selected, got %d", s.SelectedCount())
			}
		})
	}
}

func TestClearSelection(t *testing.T) {
	s := newTestStore(
		Task{Text: "A", Priority: 3, Selected: true},
		Task{Text: "B", Priority: 2},
		Task{Text: "C", Priority: 1, Selected: true},
	)

	if n := s.ClearSelection(); n != 2 {
		t.Errorf("Expected 2 cleared, got %d", n)
	}
	if s.AnySelected() {
		t.Error("Expected no selection")
	}
	if n := s.ClearSelection(); n != 0 {
		t.Errorf("Expected 0 cleared on second call, got %d", n)
	}
}

func TestSelectNext_EmptyList(t *testing.T) {
	s := newTestStore()
	if s.SelectNext() || s.SelectPrev() {
		t.Error("Navigation on an empty list should be a no-op")
	}
}

func TestMove_Splice(t *testing.T) {
	s := newTestStore(
		Task{Text: "A", Priority: 9},
		Task{Text: "B", Priority: 7},
		Task{Text: "C", Priority: 5},
		Task{Text: "D", Priority: 3},
	)

	if !s.Move(0, 2) {
		t.Fatal("Move should succeed")
	}
	if got, want := texts(s.Tasks()), []string{"B", "C", "A", "D"}; !slices.Equal(got, want) {
		t.Errorf("Expected order %v, got %v", want, got)
	}

	if !s.Move(3, 1) {
		t.Fatal("Move should succeed")
	}
	if got, want := texts(s.Tasks()), []string{"B", "D", "C", "A"}; !slices.Equal(got, want) {
		t.Errorf("Expected order %v, got %v", want, got)
	}
}

func TestMove_Rebalance(t *testing.T) {
	tests := []struct {
		name     string
		prios    []int
		from, to int
		want     []int
	}{
		{"to top takes new second", []int{9, 7, 2}, 2, 0, []int{9, 9, 7}},
		{"to bottom takes second to last", []int{9, 7, 2}, 0, 2, []int{7, 2, 2}},
		{"interior clamps into neighbours", []int{9, 7, 5, 1}, 0, 2, []int{7, 5, 5, 1}},
		{"interior keeps value already in range", []int{8, 6, 2, 7}, 3, 1, []int{8, 7, 6, 2}},
		{"interior raised to low neighbour", []int{10, 9, 1, 8}, 2, 1, []int{10, 9, 9, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore()
			for i, p := range tt.prios {
				s.tasks = append(s.tasks, Task{ID: string(rune('a' + i)), Text: "t", Priority: p})
			}
			if !s.Move(tt.from, tt.to) {
				t.Fatal("Move should succeed")
			}
			if got := priorities(s); !slices.Equal(got, tt.want) {
				t.Errorf("Expected priorities %v, got %v", tt.want, got)
			}
		})
	}
}

func TestMove_InteriorPriorityWithinNeighbours(t *testing.T) {
	prios := []int{10, 8, 6, 4, 2, 1}
	for from := range prios {
		for to := 1; to < len(prios)-1; to++ {
			if from == to {
				continue
			}
			s := newTestStore()
			for i, p := range prios {
				s.tasks = append(s.tasks, Task{ID: string(rune('a' + i)), Text: "t", Priority: p})
			}
			s.Move(from, to)

			got := s.tasks[to].Priority
			lo := min(s.tasks[to-1].Priority, s.tasks[to+1].Priority)
			hi := max(s.tasks[to-1].Priority, s.tasks[to+1].Priority)
			if got < lo || got > hi {
				t.Errorf("move %d->%d: priority %d outside [%d, %d]", from, to, got, lo, hi)
			}
		}
	}
}

func TestMove_InvalidIndicesAreNoOps(t *testing.T) {
	s := newTestStore(
		Task{Text: "A", Priority: 2},
		Task{Text: "B", Priority: 1},
	)
	rev := s.Revision()

	for _, c := range [][2]int{{0, 0}, {-1, 1}, {0, 2}, {5, 0}} {
		if s.Move(c[0], c[1]) {
			t.Errorf("Move(%d, %d) should be rejected", c[0], c[1])
		}
	}
	if got, want := texts(s.Tasks()), []string{"A", "B"}; !slices.Equal(got, want) {
		t.Errorf("Expected unchanged order %v, got %v", want, got)
	}
	if s.Revision() != rev {
		t.Error("Revision should not change on rejected moves")
	}
}

func TestSetTextAndPriority(t *testing.T) {
	s := newTestStore(
		Task{ID: "a", Text: "A", Priority: 2},
		Task{ID: "b", Text: "B", Priority: 1},
	)

	if s.SetText("a", "   ") {
		t.Error("Blank text should be rejected")
	}
	if !s.SetText("a", " renamed ") {
		t.Error("SetText should succeed")
	}
	if task, _ := s.Task(0); task.Text != "renamed" {
		t.Errorf("Expected %q, got %q", "renamed", task.Text)
	}

	s.SetPriority("b", 12)
	if got, want := priorities(s), []int{2, 10}; !slices.Equal(got, want) {
		t.Errorf("SetPriority should not sort, got %v", got)
	}
	rev := s.Revision()
	s.SortByPriority()
	if got, want := texts(s.Tasks()), []string{"B", "renamed"}; !slices.Equal(got, want) {
		t.Errorf("Expected %v after sort, got %v", want, got)
	}
	if s.Revision() == rev {
		t.Error("Reordering sort should change the revision")
	}

	rev = s.Revision()
	s.SortByPriority()
	if s.Revision() != rev {
		t.Error("Sorting an ordered list should keep the revision")
	}

	if s.SetPriority("missing", 3) || s.SetText("missing", "x") {
		t.Error("Unknown IDs should be rejected")
	}
}

func TestAutosave(t *testing.T) {
	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	path := filepath.Join(t.TempDir(), "tasks.json")
	s := New(Options{
		Path: path,
		Now:  func() time.Time { return start },
	})
	s.Add("A", 1, White)

	if s.Tick(start.Add(30 * time.Second)) {
		t.Error("Should not save at exactly the interval")
	}
	if !s.Tick(start.Add(31 * time.Second)) {
		t.Fatal("Should save after the interval")
	}
	if got := Load(path, nil); len(got) != 1 {
		t.Errorf("Expected 1 persisted task, got %d", len(got))
	}
	if s.Tick(start.Add(45 * time.Second)) {
		t.Error("Timer should reset after a save")
	}
}
