package control

// Result holds the outcome of one control-binary invocation.
type Result struct {
	RunID   string // unique identifier for this run, recorded in the diag log
	OK      bool   // true iff the binary exited 0
	Message string // trimmed stdout on success, "Error: "-prefixed stderr otherwise
}
