package systems

// Action is a logical input, decoupled from the physical key
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionRun
	ActionZoomIn
	ActionZoomOut
	ActionRegenerate
	ActionToggleLog
)

// Input reports the state of logical actions for the current frame
type Input interface {
	// JustPressed reports whether the action started this frame
	JustPressed(a Action) bool
	// Pressed reports whether the action is held
	Pressed(a Action) bool
}

// NoInput never reports any action
type NoInput struct{}

func (NoInput) JustPressed(Action) bool { return false }
func (NoInput) Pressed(Action) bool     { return false }
