package config

const (
	// DefaultProjectPath is the directory holding the circuit files
	DefaultProjectPath = "."
	// DefaultReferenceDir is the reference trace directory, relative to the project
	DefaultReferenceDir = "reference_output"
	// DefaultJava is the java launcher used to start the simulator
	DefaultJava = "java"
	// DefaultSimulatorJar is the simulator jar, relative to the project
	DefaultSimulatorJar = "logisim.jar"
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "ctv-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// CircuitExt and TraceExt are the fixture file extensions
	CircuitExt = ".circ"
	TraceExt   = ".out"
)

// DefaultSimulatorArgs select the simulator's tab-separated table output
var DefaultSimulatorArgs = []string{"-tty", "table"}

// Environment variables read from the process environment or the project's .env file
const (
	EnvJava         = "CTV_JAVA"
	EnvSimulatorJar = "CTV_SIMULATOR_JAR"
)
