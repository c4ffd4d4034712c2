package mxf

// State is the processing step a file has reached.
type State int

const (
	StateOpened State = iota
	StateLocated
	StatePartitionsIndexed
	StateHeaderPartitionParsed
	StateGraphResolved
	StateValid
	StateFatallyInvalid
)

var stateNames = [...]string{
	StateOpened:                "Opened",
	StateLocated:               "Located",
	StatePartitionsIndexed:     "PartitionsIndexed",
	StateHeaderPartitionParsed: "HeaderPartitionParsed",
	StateGraphResolved:         "GraphResolved",
	StateValid:                 "Valid",
	StateFatallyInvalid:        "FatallyInvalid",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "Unknown"
}

// MarshalText renders the state name in JSON output.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Terminal reports whether no further step can run.
func (s State) Terminal() bool { return s == StateValid || s == StateFatallyInvalid }
