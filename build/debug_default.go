//go:build !release

package build

// DEBUG is true for every build except one tagged "release", matching the
// teacher's !release-tagged defaults (consensus/builddev.go): invariant
// violations caught by Critical panic unless a build explicitly opts out.
var DEBUG = true
