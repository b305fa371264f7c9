package paint

import (
	"errors"
	"image/color"
	"testing"
)

func TestHistory_EmptyUndo(t *testing.T) {
	buf := newTestBuffer(t, 2, 2, White)
	before := buf.Snapshot()
	h := NewHistory(0)

	ok, err := h.Undo()
	if ok || err != nil {
		t.Errorf("Undo() on empty history = %v, %v; want false, nil", ok, err)
	}
	if h.Len() != 0 || !buf.Equal(before) {
		t.Error("Undo on empty history changed observable state")
	}
}

func TestHistory_ExecuteThenUndo(t *testing.T) {
	buf, before, after := fixture(t)
	buf.Fill(Blue)
	h := NewHistory(0)

	if err := h.Execute(NewPaintStroke(buf, before, after)); err != nil {
		t.Fatalf("Execute() = %v", err)
	}
	if !buf.Equal(after) {
		t.Error("buffer after Execute should equal the after snapshot")
	}
	if h.Len() != 1 {
		t.Errorf("Len() = %d, want 1", h.Len())
	}

	ok, err := h.Undo()
	if !ok || err != nil {
		t.Fatalf("Undo() = %v, %v", ok, err)
	}
	if !buf.Equal(before) {
		t.Error("buffer after Undo should equal the before snapshot")
	}
	if ok, _ := h.Undo(); ok {
		t.Error("popped command must not be undone again")
	}
}

// TestHistory_ResetUndoRestoresPriorState verifies that undoing a reset
// restores the state immediately before it, not an earlier one.
func TestHistory_ResetUndoRestoresPriorState(t *testing.T) {
	buf := newTestBuffer(t, 3, 1, White)
	original := buf.Snapshot()
	h := NewHistory(0)

	stroke := func(c RGBA) []color.NRGBA {
		before := buf.Snapshot()
		_ = buf.SetPixel(0, 0, c)
		if err := h.Execute(NewPaintStroke(buf, before, buf.Snapshot())); err != nil {
			t.Fatalf("Execute(stroke) = %v", err)
		}
		return buf.Snapshot()
	}

	stroke(Red)
	second := stroke(Green)

	if err := h.Execute(NewReset(buf, original, buf.Snapshot())); err != nil {
		t.Fatalf("Execute(reset) = %v", err)
	}
	if !buf.Equal(original) {
		t.Fatal("reset did not restore the original")
	}

	// A second reset from the original state still lands on the original.
	if err := h.Execute(NewReset(buf, original, buf.Snapshot())); err != nil {
		t.Fatalf("Execute(reset) = %v", err)
	}
	if !buf.Equal(original) {
		t.Fatal("second reset did not restore the original")
	}

	_, _ = h.Undo()
	if !buf.Equal(original) {
		t.Error("undoing the second reset should restore the state right before it")
	}
	_, _ = h.Undo()
	if !buf.Equal(second) {
		t.Error("undoing the first reset should restore the second stroke")
	}
}

func TestHistory_FailedExecuteNotRecorded(t *testing.T) {
	buf, a, _ := fixture(t)
	h := NewHistory(0)

	err := h.Execute(NewPaintStroke(buf, a, make([]color.NRGBA, 1)))
	if !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("Execute() error = %v, want ErrSizeMismatch", err)
	}
	if h.Len() != 0 {
		t.Errorf("Len() = %d, failed command must not be recorded", h.Len())
	}
}

func TestHistory_Limit(t *testing.T) {
	buf, a, b := fixture(t)
	h := NewHistory(2)

	var cmds []*Command
	for range 3 {
		cmd := NewPaintStroke(buf, a, b)
		cmds = append(cmds, cmd)
		if err := h.Execute(cmd); err != nil {
			t.Fatalf("Execute() = %v", err)
		}
	}

	got := h.Commands()
	if len(got) != 2 || got[0] != cmds[1] || got[1] != cmds[2] {
		t.Errorf("Commands() kept %d entries, want the two newest", len(got))
	}
}

func TestHistory_Clear(t *testing.T) {
	buf, a, b := fixture(t)
	h := NewHistory(0)
	_ = h.Execute(NewPaintStroke(buf, a, b))
	h.Clear()
	if h.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", h.Len())
	}
	if ok, _ := h.Undo(); ok {
		t.Error("Undo after Clear should be a no-op")
	}
}

func TestHistory_FailedUndoKeepsEntry(t *testing.T) {
	buf, _, b := fixture(t)
	h := NewHistory(0)

	cmd := NewPaintStroke(buf, make([]color.NRGBA, 1), b)
	if err := h.Execute(cmd); err != nil {
		t.Fatalf("Execute() = %v", err)
	}

	ok, err := h.Undo()
	if ok || !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("Undo() = %v, %v; want false, ErrSizeMismatch", ok, err)
	}
	if h.Len() != 1 || h.Commands()[0] != cmd {
		t.Errorf("Len() = %d, the command must stay on the history", h.Len())
	}
	if cmd.State() != Executed {
		t.Errorf("State() = %s, want Executed", cmd.State())
	}
	if !buf.Equal(b) {
		t.Error("failed Undo changed the buffer")
	}
}
