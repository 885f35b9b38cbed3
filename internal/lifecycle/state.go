package lifecycle

// State is a phase of the process lifecycle.
type State int

const (
	StateInitializing State = iota
	StateConfiguring
	StateRunning
	StateSucceeded
	StateFaulted
	StateShuttingDown
	StateTerminated
)

var stateNames = [...]string{
	StateInitializing: "Initializing",
	StateConfiguring:  "Configuring",
	StateRunning:      "Running",
	StateSucceeded:    "Succeeded",
	StateFaulted:      "Faulted",
	StateShuttingDown: "ShuttingDown",
	StateTerminated:   "Terminated",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}
