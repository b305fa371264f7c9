package paint

// History is a last-in-first-out log of executed commands.
//
// There is no redo: a command popped by Undo is discarded.
type History struct {
	cmds  []*Command
	limit int
}

// NewHistory creates an empty history. A positive limit caps the number of
// retained commands; the oldest entry is dropped when the cap is exceeded.
// Zero means unbounded.
func NewHistory(limit int) *History {
	return &History{limit: max(0, limit)}
}

// Len returns the number of undoable commands.
func (h *History) Len() int { return len(h.cmds) }

// Commands returns the retained commands, oldest first.
func (h *History) Commands() []*Command {
	out := make([]*Command, len(h.cmds))
	copy(out, h.cmds)
	return out
}

// Execute runs cmd and then records it. A command that fails to execute is
// not recorded, so the log never contains a command whose change was not
// applied.
func (h *History) Execute(cmd *Command) error {
	if err := cmd.Execute(); err != nil {
		return err
	}
	h.cmds = append(h.cmds, cmd)
	if h.limit > 0 && len(h.cmds) > h.limit {
		dropped := h.cmds[0]
		h.cmds[0] = nil
		h.cmds = h.cmds[1:]
		Logger().Warn("paint: history limit reached, dropping oldest command",
			"id", dropped.ID(), "kind", dropped.Kind(), "limit", h.limit)
	}
	Logger().Debug("paint: command executed", "id", cmd.ID(), "kind", cmd.Kind(), "depth", len(h.cmds))
	return nil
}

// Undo reverts the most recent command and then pops it. On an empty
// history it does nothing and returns false with a nil error. A command that
// fails to undo stays on the history and the buffer is left unchanged.
func (h *History) Undo() (bool, error) {
	if len(h.cmds) == 0 {
		return false, nil
	}
	last := len(h.cmds) - 1
	cmd := h.cmds[last]
	if err := cmd.Undo(); err != nil {
		return false, err
	}

	h.cmds[last] = nil
	h.cmds = h.cmds[:last]
	Logger().Debug("paint: command undone", "id", cmd.ID(), "kind", cmd.Kind(), "depth", len(h.cmds))
	return true, nil
}

// Clear discards every recorded command.
func (h *History) Clear() {
	clear(h.cmds)
	h.cmds = h.cmds[:0]
}
