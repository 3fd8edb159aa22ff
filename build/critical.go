package build

import (
	"fmt"
	"os"
	"runtime/debug"
)

// Critical should be called if a sanity check has failed, indicating a bug
// rather than a reachable runtime condition. Unless Release is "testing" it
// prints a stack trace and the message to stderr; when DEBUG is set it
// panics as well so that
// invariant violations are never silently absorbed in development builds.
func Critical(v ...interface{}) {
	s := "Critical error: " + fmt.Sprintln(v...)
	if Release != "testing" {
		debug.PrintStack()
		os.Stderr.WriteString(s)
	}
	if DEBUG {
		panic(s)
	}
}
