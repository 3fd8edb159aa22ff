package miner

import "github.com/sagreta86/Ixian-DLT/types"

// VerifyNonce re-derives the Argon2id hash for a claimed types.Solution and
// checks it against the block's difficulty. It is a pure function modulo
// the chain lookup, safe to call from a block validator without a Miner
// instance (spec §4.2/§6), and never mutates package- or instance-level
// state — unlike the source's validateHash, which temporarily rewrote a
// static difficulty (spec §9's re-architecture note).
func VerifyNonce(chain interface {
	GetBlock(n uint64) (types.Block, bool)
}, solution types.Solution, difficulty uint64) bool {
	b, ok := chain.GetBlock(solution.BlockNum)
	if !ok {
		return false
	}
	hashHex := computeHashHex(b.BlockChecksum, solution.Solver, solution.Nonce)
	return Validate(hashHex, difficulty)
}
