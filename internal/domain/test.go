package domain

// TestCase binds a circuit description to the reference trace it must reproduce.
// It holds no process state and can be executed any number of times.
type TestCase struct {
	CircuitPath   string `json:"circuit_path"`
	ReferencePath string `json:"reference_path"`
}

// Entry is one declared test: a description, the case to execute and the
// type tag used to decode its diagnostics.
type Entry struct {
	Description string   `json:"description"`
	Case        TestCase `json:"case"`
	TypeTag     string   `json:"type"`
}
