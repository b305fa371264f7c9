package paint

import (
	"fmt"
	"image/color"

	"github.com/google/uuid"
)

// CommandKind identifies the operation a Command performs.
type CommandKind uint8

const (
	// KindPaintStroke applies the pixels captured at the end of a stroke and
	// restores the pixels captured at its start.
	KindPaintStroke CommandKind = iota + 1

	// KindReset restores the originally loaded image and undoes back to the
	// pixels present just before the reset.
	KindReset
)

// String returns the command kind name.
func (k CommandKind) String() string {
	switch k {
	case KindPaintStroke:
		return "PaintStroke"
	case KindReset:
		return "Reset"
	default:
		return fmt.Sprintf("CommandKind(%d)", uint8(k))
	}
}

// CommandState is the lifecycle position of a Command.
type CommandState uint8

const (
	// Constructed commands have not been executed yet.
	Constructed CommandState = iota
	// Executed commands have applied their target pixels.
	Executed
	// Undone commands have restored their prior pixels. They are never
	// executed again.
	Undone
)

// String returns the state name.
func (s CommandState) String() string {
	switch s {
	case Constructed:
		return "Constructed"
	case Executed:
		return "Executed"
	case Undone:
		return "Undone"
	default:
		return fmt.Sprintf("CommandState(%d)", uint8(s))
	}
}

// Command is an undoable change to a Buffer.
//
// Kind selects which payload is set. Snapshots are captured before the
// command is built and are never modified afterwards.
type Command struct {
	id     string
	kind   CommandKind
	state  CommandState
	target *Buffer

	stroke strokePayload // KindPaintStroke
	reset  resetPayload  // KindReset
}

type strokePayload struct {
	before, after []color.NRGBA
}

type resetPayload struct {
	original, preReset []color.NRGBA
}

// NewPaintStroke creates a command that applies after and undoes to before.
func NewPaintStroke(target *Buffer, before, after []color.NRGBA) *Command {
	c := newCommand(KindPaintStroke, target)
	c.stroke = strokePayload{before: before, after: after}
	return c
}

// NewReset creates a command that restores original and undoes to preReset.
func NewReset(target *Buffer, original, preReset []color.NRGBA) *Command {
	c := newCommand(KindReset, target)
	c.reset = resetPayload{original: original, preReset: preReset}
	return c
}

func newCommand(kind CommandKind, target *Buffer) *Command {
	return &Command{
		id:     uuid.NewString(),
		kind:   kind,
		target: target,
	}
}

// ID returns the unique identifier of the command.
func (c *Command) ID() string { return c.id }

// Kind returns the command variant.
func (c *Command) Kind() CommandKind { return c.kind }

// State returns the lifecycle state of the command.
func (c *Command) State() CommandState { return c.state }

// Execute writes the command's target pixels into its buffer.
// A command can be executed only once.
func (c *Command) Execute() error {
	if c.state != Constructed {
		return fmt.Errorf("%w: execute %s command %s in state %s", ErrCommandState, c.kind, c.id, c.state)
	}
	if err := c.restore(false); err != nil {
		return fmt.Errorf("execute %s command: %w", c.kind, err)
	}
	c.state = Executed
	return nil
}

// Undo restores the pixels the buffer held before the command.
// Only an executed command can be undone, and only once.
func (c *Command) Undo() error {
	if c.state != Executed {
		return fmt.Errorf("%w: undo %s command %s in state %s", ErrCommandState, c.kind, c.id, c.state)
	}
	if err := c.restore(true); err != nil {
		return fmt.Errorf("undo %s command: %w", c.kind, err)
	}
	c.state = Undone
	return nil
}

func (c *Command) restore(undo bool) error {
	switch c.kind {
	case KindPaintStroke:
		if undo {
			return c.target.Restore(c.stroke.before)
		}
		return c.target.Restore(c.stroke.after)
	case KindReset:
		if undo {
			return c.target.Restore(c.reset.preReset)
		}
		return c.target.Restore(c.reset.original)
	default:
		return fmt.Errorf("%w: unknown kind %s", ErrCommandState, c.kind)
	}
}
