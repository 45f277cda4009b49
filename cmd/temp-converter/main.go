// --- START OF FINAL REVISED FILE cmd/temp-converter/main.go ---
package main

// Note: Build-time variables 'version', 'commit', and 'date' are declared in
// 'root.go' within this package. They are populated at build time via -ldflags.

// main is the entry point for the temp-converter application. It invokes the
// Execute function (defined in root.go) which sets up and executes the root
// Cobra command. Error handling (printing errors and setting the exit code)
// is managed within Cobra's Execute pattern based on the error returned by
// RunE functions.
func main() {
	Execute()
}

// --- END OF FINAL REVISED FILE cmd/temp-converter/main.go ---
