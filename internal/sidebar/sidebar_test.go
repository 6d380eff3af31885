package sidebar

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/marcus/jot/internal/note"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	return cmd()
}

func testNotes(n int) []note.Note {
	notes := make([]note.Note, n)
	base := time.Now()
	for i := range notes {
		notes[i] = note.New()
		notes[i].Title = string(rune('a' + i))
		// All() order is most recent first; keep the slice pre-sorted.
		notes[i].UpdatedAt = base.Add(-time.Duration(i) * time.Minute)
	}
	return notes
}

func newTestModel(n int) Model {
	m := New()
	m.SetSize(30, 20)
	m.SetNotes(testNotes(n))
	return m
}

func TestNavigationEmitsSelect(t *testing.T) {
	m := newTestModel(3)

	m, cmd := m.Update(keyMsg("j"))
	if n, _ := m.CursorNote(); n.Title != "b" {
		t.Errorf("cursor on %q after j, want b", n.Title)
	}
	msg, ok := runCmd(t, cmd).(SelectMsg)
	if !ok {
		t.Fatalf("expected SelectMsg, got %T", runCmd(t, cmd))
	}
	if n, _ := m.CursorNote(); msg.ID != n.ID {
		t.Error("SelectMsg id does not match cursor note")
	}

	m, _ = m.Update(keyMsg("k"))
	if n, _ := m.CursorNote(); n.Title != "a" {
		t.Errorf("cursor on %q after k, want a", n.Title)
	}
}

func TestNavigationClampsAtEnds(t *testing.T) {
	m := newTestModel(2)

	m, _ = m.Update(keyMsg("k"))
	if n, _ := m.CursorNote(); n.Title != "a" {
		t.Errorf("cursor moved above top: %q", n.Title)
	}

	m, _ = m.Update(keyMsg("G"))
	m, _ = m.Update(keyMsg("j"))
	if n, _ := m.CursorNote(); n.Title != "b" {
		t.Errorf("cursor moved past bottom: %q", n.Title)
	}
}

func TestJumpTopAndBottom(t *testing.T) {
	m := newTestModel(5)

	m, _ = m.Update(keyMsg("G"))
	if n, _ := m.CursorNote(); n.Title != "e" {
		t.Errorf("cursor on %q after G, want e", n.Title)
	}

	m, _ = m.Update(keyMsg("g"))
	m, cmd := m.Update(keyMsg("g"))
	if n, _ := m.CursorNote(); n.Title != "a" {
		t.Errorf("cursor on %q after gg, want a", n.Title)
	}
	if _, ok := runCmd(t, cmd).(SelectMsg); !ok {
		t.Error("gg should emit SelectMsg")
	}
}

func TestCreateKeyEmitsCreate(t *testing.T) {
	m := newTestModel(0)
	_, cmd := m.Update(keyMsg("n"))
	if _, ok := runCmd(t, cmd).(CreateMsg); !ok {
		t.Error("n should emit CreateMsg on empty list")
	}

	m = newTestModel(3)
	_, cmd = m.Update(keyMsg("n"))
	if _, ok := runCmd(t, cmd).(CreateMsg); !ok {
		t.Error("n should emit CreateMsg")
	}
}

func TestEnterEmitsSelect(t *testing.T) {
	m := newTestModel(2)
	_, cmd := m.Update(keyMsg("enter"))
	msg, ok := runCmd(t, cmd).(SelectMsg)
	if !ok {
		t.Fatal("enter should emit SelectMsg")
	}
	if n, _ := m.CursorNote(); msg.ID != n.ID {
		t.Error("SelectMsg id does not match cursor note")
	}
}

func TestDeleteKeysEmitDelete(t *testing.T) {
	for _, k := range []string{"d", "x"} {
		m := newTestModel(2)
		n, _ := m.CursorNote()
		_, cmd := m.Update(keyMsg(k))
		msg, ok := runCmd(t, cmd).(DeleteMsg)
		if !ok {
			t.Fatalf("%s should emit DeleteMsg", k)
		}
		if msg.ID != n.ID {
			t.Errorf("%s DeleteMsg id does not match cursor note", k)
		}
	}
}

func TestRenameFlow(t *testing.T) {
	m := newTestModel(2)
	n, _ := m.CursorNote()

	m, _ = m.Update(keyMsg("r"))
	if m.Mode() != ModeRenaming {
		t.Fatal("r should enter rename mode")
	}
	if m.renameInput.Value() != n.Title {
		t.Errorf("rename input = %q, want prefilled %q", m.renameInput.Value(), n.Title)
	}

	// Type some text and confirm
	m, _ = m.Update(keyMsg("x"))
	m, cmd := m.Update(keyMsg("enter"))
	msg, ok := runCmd(t, cmd).(RenameMsg)
	if !ok {
		t.Fatal("enter should emit RenameMsg")
	}
	if msg.ID != n.ID {
		t.Error("RenameMsg id does not match renamed note")
	}
	if msg.Title != n.Title+"x" {
		t.Errorf("RenameMsg title = %q, want %q", msg.Title, n.Title+"x")
	}
	if m.Mode() != ModeBrowsing {
		t.Error("confirm should exit rename mode")
	}
}

func TestRenameEmptyDraftCancelsSilently(t *testing.T) {
	m := newTestModel(1)

	m, _ = m.Update(keyMsg("r"))
	m.renameInput.SetValue("   ")
	m, cmd := m.Update(keyMsg("enter"))

	if msg := runCmd(t, cmd); msg != nil {
		t.Errorf("empty draft should emit nothing, got %T", msg)
	}
	if m.Mode() != ModeBrowsing {
		t.Error("empty draft confirm should exit rename mode")
	}
}

func TestRenameEscCancels(t *testing.T) {
	m := newTestModel(1)

	m, _ = m.Update(keyMsg("r"))
	m, cmd := m.Update(keyMsg("esc"))

	if msg := runCmd(t, cmd); msg != nil {
		t.Errorf("esc should emit nothing, got %T", msg)
	}
	if m.Mode() != ModeBrowsing {
		t.Error("esc should exit rename mode")
	}
}

func TestRenameTrimsWhitespace(t *testing.T) {
	m := newTestModel(1)

	m, _ = m.Update(keyMsg("r"))
	m.renameInput.SetValue("  Shopping List  ")
	_, cmd := m.Update(keyMsg("enter"))

	msg, ok := runCmd(t, cmd).(RenameMsg)
	if !ok {
		t.Fatal("expected RenameMsg")
	}
	if msg.Title != "Shopping List" {
		t.Errorf("Title = %q, want trimmed %q", msg.Title, "Shopping List")
	}
}

func TestSetNotesFollowsCursorNote(t *testing.T) {
	notes := testNotes(3)
	m := New()
	m.SetSize(30, 20)
	m.SetNotes(notes)

	m, _ = m.Update(keyMsg("j")) // cursor on "b"

	// Reorder: b moves to the front
	reordered := []note.Note{notes[1], notes[0], notes[2]}
	m.SetNotes(reordered)

	if n, _ := m.CursorNote(); n.Title != "b" {
		t.Errorf("cursor on %q after reorder, want b", n.Title)
	}
}

func TestSetNotesClampsCursor(t *testing.T) {
	m := newTestModel(5)
	m, _ = m.Update(keyMsg("G"))

	m.SetNotes(testNotes(2))
	if n, ok := m.CursorNote(); !ok || n.Title != "b" {
		t.Errorf("cursor not clamped to last note, got %v %v", n.Title, ok)
	}

	m.SetNotes(nil)
	if _, ok := m.CursorNote(); ok {
		t.Error("CursorNote should report none for empty list")
	}
}

func TestSetNotesCancelsRenameOfVanishedNote(t *testing.T) {
	m := newTestModel(2)
	m, _ = m.Update(keyMsg("r"))

	m.SetNotes(testNotes(2)) // fresh ids, renamed note gone
	if m.Mode() != ModeRenaming && m.renameID != uuid.Nil {
		t.Error("rename state not cleared")
	}
	if m.Mode() == ModeRenaming {
		t.Error("rename mode should be cancelled when note vanishes")
	}
}

func TestSelectMovesCursor(t *testing.T) {
	notes := testNotes(3)
	m := New()
	m.SetSize(30, 20)
	m.SetNotes(notes)

	m.Select(notes[2].ID)
	if n, _ := m.CursorNote(); n.ID != notes[2].ID {
		t.Error("Select did not move cursor")
	}
	if m.Selected() != notes[2].ID {
		t.Error("Selected() does not report selected id")
	}

	m.ClearSelection()
	if m.Selected() != uuid.Nil {
		t.Error("ClearSelection did not clear")
	}
}

func TestScrollFollowsCursor(t *testing.T) {
	m := New()
	m.SetSize(30, 9) // header + 4 visible entries
	m.SetNotes(testNotes(10))

	m, _ = m.Update(keyMsg("G"))
	if m.scrollOff == 0 {
		t.Error("scroll offset should advance to keep cursor visible")
	}
	if m.cursor < m.scrollOff || m.cursor >= m.scrollOff+m.visibleRows() {
		t.Error("cursor not within visible window")
	}

	m, _ = m.Update(keyMsg("g"))
	m, _ = m.Update(keyMsg("g"))
	if m.scrollOff != 0 {
		t.Errorf("scrollOff = %d after gg, want 0", m.scrollOff)
	}
}
