package domain

// LinePair is one comparison step: the simulator's line and the reference line,
// trailing whitespace removed.
type LinePair struct {
	Subject   string `json:"subject"`
	Reference string `json:"reference"`
}

// Record is the ordered list of compared pairs, one per step.
type Record []LinePair

// TestFailure is a failing entry as persisted for the faills viewer.
type TestFailure struct {
	Description   string `json:"description"`
	CircuitPath   string `json:"circuit_path"`
	ReferencePath string `json:"reference_path"`
	TypeTag       string `json:"type"`
	Reason        string `json:"reason"`
	Record        Record `json:"record"`
	Resolved      bool   `json:"resolved,omitempty"` // Track if failure is marked as resolved
}
