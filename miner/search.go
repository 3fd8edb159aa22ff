package miner

import "github.com/sagreta86/Ixian-DLT/types"

// findUnsealedBlock scans the redacted window for the most recent unsealed
// block. It scans i = lastBlockNum, lastBlockNum-1, ..., oldest+1 (where
// oldest = max(0, lastBlockNum - redactedWindowSize)) and returns the
// first block whose PowField is empty — a descending scan, so the
// most-recently-produced unsealed block always wins (spec §4.2).
func findUnsealedBlock(chain interface {
	GetBlock(n uint64) (types.Block, bool)
}, lastBlockNum, redactedWindowSize uint64) (types.Block, bool) {
	oldest := uint64(0)
	if lastBlockNum > redactedWindowSize {
		oldest = lastBlockNum - redactedWindowSize
	}
	for i := lastBlockNum; i > oldest; i-- {
		b, ok := chain.GetBlock(i)
		if !ok {
			continue
		}
		if !b.Sealed() {
			return b, true
		}
	}
	return types.Block{}, false
}
