// Package build holds release-mode flags and small helpers shared across
// the rest of the module, in the style of a node's ambient "build" package.
package build

// Release identifies which build of the binary is running. Critical reads
// it only to decide whether to print a stack trace (it stays quiet when
// Release is "testing"); whether a sanity check panics is gated on DEBUG,
// not Release.
var Release = "standard"
