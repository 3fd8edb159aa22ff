// Package config holds the small set of named constants the core depends
// on. The loader that populates a Config from disk or command-line flags
// is an external collaborator (spec §1/§9); this package only fixes the
// canonical defaults and the consensus-critical constants that must never
// drift between nodes, in the style of the teacher's modules/consts.go.
package config

import "time"

// Defaults for the fields of Config.
const (
	// DefaultRedactedWindowSize is the number of most-recent blocks the
	// Miner will scan for un-sealed work before giving up a search pass.
	DefaultRedactedWindowSize = 50

	// DefaultDisableMiner leaves mining enabled by default; a node turns
	// it off by setting Config.DisableMiner.
	DefaultDisableMiner = false

	// MinMineableBlockNum is the minimum chain height before the Miner's
	// Idle->Searching transition is allowed to fire.
	MinMineableBlockNum = 10

	// IdleSleep is how long the Miner sleeps after a search pass finds no
	// un-sealed block.
	IdleSleep = time.Second

	// StatusInterval is the minimum cadence at which mining statistics are
	// printed and the attempts-per-second counter is reset.
	StatusInterval = time.Second
)

// Argon2 parameters for the proof-of-work primitive. These are fixed by
// consensus (spec §6) and must not change.
const (
	Argon2Time      = 1
	Argon2MemoryKiB = 1024
	Argon2Threads   = 4
	Argon2KeyLen    = 32
)

// Config is the set of node-wide constants the core reads. A caller
// populates it (typically from the external configuration loader) and
// passes it into the WalletState/Miner constructors.
type Config struct {
	// RedactedWindowSize bounds how far back the Miner searches for
	// un-sealed blocks: blocks at or below LastBlockNum-RedactedWindowSize
	// are treated as pruned and never selected.
	RedactedWindowSize uint64

	// DisableMiner toggles the mining loop off entirely. When true,
	// Miner.Start is a no-op; the mining algorithm itself is unaffected
	// and remains the canonical behavior (spec §9).
	DisableMiner bool
}

// Default returns the Config a fresh node starts with.
func Default() Config {
	return Config{
		RedactedWindowSize: DefaultRedactedWindowSize,
		DisableMiner:       DefaultDisableMiner,
	}
}
