//go:build release

package build

// DEBUG is false for binaries built with the "release" tag: invariant
// violations caught by Critical are logged but never panic in production.
var DEBUG = false
