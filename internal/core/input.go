package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow - hop up
	ActionDown             // S, Down arrow - hop down
	ActionLeft             // A, Left arrow - hop left
	ActionRight            // D, Right arrow - hop right
	ActionEmbark           // I, E - get into a nearby friendly car
	ActionDisembark        // O, X - get out of the car
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R key - restart game after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionEmbark:
		return "Embark"
	case ActionDisembark:
		return "Disembark"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action is one of the four directional hops.
func (a Action) IsMove() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

// InputQueue buffers key actions between simulation steps.
// The simulation consumes exactly one action per step, so a burst of key
// presses is spread over consecutive steps instead of being collapsed.
type InputQueue struct {
	actions []Action
	limit   int
}

// NewInputQueue creates a queue that keeps at most limit pending actions.
// Actions pushed onto a full queue are dropped.
func NewInputQueue(limit int) *InputQueue {
	if limit <= 0 {
		limit = 1
	}
	return &InputQueue{
		actions: make([]Action, 0, limit),
		limit:   limit,
	}
}

// Push appends an action. ActionNone is ignored.
func (q *InputQueue) Push(a Action) {
	if a == ActionNone || len(q.actions) >= q.limit {
		return
	}
	q.actions = append(q.actions, a)
}

// Pop removes and returns the oldest action, or ActionNone when empty.
func (q *InputQueue) Pop() Action {
	if len(q.actions) == 0 {
		return ActionNone
	}
	a := q.actions[0]
	q.actions = q.actions[1:]
	return a
}

// Len returns the number of pending actions.
func (q *InputQueue) Len() int {
	return len(q.actions)
}

// Clear drops all pending actions.
func (q *InputQueue) Clear() {
	q.actions = q.actions[:0]
}
