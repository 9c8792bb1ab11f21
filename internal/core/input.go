package core

// Intent is a discrete command sent to the game by a front end.
// It is the game's only inbound API, independent of any key or event loop.
type Intent int

const (
	IntentNone        Intent = iota
	IntentStart              // Start a run from the ready screen
	IntentJump               // Jump key pressed
	IntentReleaseJump        // Jump key released, re-arms the jump
	IntentPause              // Pause a running game
	IntentResume             // Resume a paused game
	IntentTogglePause        // Pause or resume, whichever applies
	IntentRestart            // Restart after game over
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentStart:
		return "Start"
	case IntentJump:
		return "Jump"
	case IntentReleaseJump:
		return "ReleaseJump"
	case IntentPause:
		return "Pause"
	case IntentResume:
		return "Resume"
	case IntentTogglePause:
		return "TogglePause"
	case IntentRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

// InputFrame holds the intents collected during a single tick.
type InputFrame struct {
	// Intents maps intents to whether they were triggered this frame.
	Intents map[Intent]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(intents ...Intent) InputFrame {
	f := InputFrame{Intents: make(map[Intent]bool)}
	for _, i := range intents {
		f.Set(i)
	}
	return f
}

// Set marks an intent as triggered for this frame.
func (f *InputFrame) Set(i Intent) {
	if i == IntentNone {
		return
	}
	if f.Intents == nil {
		f.Intents = make(map[Intent]bool)
	}
	f.Intents[i] = true
}

// Has returns true if the given intent was triggered this frame.
func (f InputFrame) Has(i Intent) bool {
	if f.Intents == nil {
		return false
	}
	return f.Intents[i]
}

// Empty reports whether no intent was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Intents) == 0
}

// Clear resets all intents for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Intents {
		delete(f.Intents, k)
	}
}
