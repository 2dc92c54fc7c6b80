package orchestrator

// State is a step of the run state machine.
// A run only moves forward: Init, FontReady, FramesDiscovered, FramesPrepared, Encoded, Done.
// Failed is terminal and reachable from any state.
type State int

const (
	StateInit State = iota
	StateFontReady
	StateFramesDiscovered
	StateFramesPrepared
	StateEncoded
	StateDone
	StateFailed
)

var stateNames = [...]string{
	StateInit:             "Init",
	StateFontReady:        "FontReady",
	StateFramesDiscovered: "FramesDiscovered",
	StateFramesPrepared:   "FramesPrepared",
	StateEncoded:          "Encoded",
	StateDone:             "Done",
	StateFailed:           "Failed",
}

// String returns the state name.
func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "Unknown"
}
