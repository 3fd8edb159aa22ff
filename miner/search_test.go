package miner

import (
	"testing"

	"github.com/sagreta86/Ixian-DLT/types"
)

type fakeChain struct {
	blocks map[uint64]types.Block
}

func (c *fakeChain) GetBlock(n uint64) (types.Block, bool) {
	b, ok := c.blocks[n]
	return b, ok
}

func (c *fakeChain) LastBlockNum() uint64 {
	var max uint64
	for n := range c.blocks {
		if n > max {
			max = n
		}
	}
	return max
}

// newSealedChain builds a chain of blocks 1..n, all sealed except those in
// unsealed.
func newSealedChain(n uint64, unsealed ...uint64) *fakeChain {
	set := make(map[uint64]bool, len(unsealed))
	for _, u := range unsealed {
		set[u] = true
	}
	c := &fakeChain{blocks: make(map[uint64]types.Block, n)}
	for i := uint64(1); i <= n; i++ {
		b := types.Block{BlockNum: i, BlockChecksum: []byte{byte(i)}, Difficulty: 14}
		if !set[i] {
			b.PowField = []byte("sealed")
		}
		c.blocks[i] = b
	}
	return c
}

// TestFindUnsealedBlockPicksMostRecentWithinWindow is the literal scenario
// from spec §8: blocks 1..100, unsealed at 50 and 90, redacted window 50,
// last block 100 — the miner must select block 90.
func TestFindUnsealedBlockPicksMostRecentWithinWindow(t *testing.T) {
	chain := newSealedChain(100, 50, 90)
	b, ok := findUnsealedBlock(chain, 100, 50)
	if !ok {
		t.Fatal("expected an unsealed block to be found")
	}
	if b.BlockNum != 90 {
		t.Fatalf("selected block %d, want 90", b.BlockNum)
	}
}

// TestFindUnsealedBlockExcludesOldestBoundary checks that the scan never
// touches the block exactly at lastBlockNum-redactedWindowSize.
func TestFindUnsealedBlockExcludesOldestBoundary(t *testing.T) {
	chain := newSealedChain(100, 50)
	_, ok := findUnsealedBlock(chain, 100, 50)
	if ok {
		t.Fatal("block 50 sits exactly at the window boundary and must be excluded")
	}
}

// TestFindUnsealedBlockNoneAvailable checks the case where every block in
// the window is sealed.
func TestFindUnsealedBlockNoneAvailable(t *testing.T) {
	chain := newSealedChain(100)
	_, ok := findUnsealedBlock(chain, 100, 50)
	if ok {
		t.Fatal("expected no unsealed block to be found")
	}
}

// TestFindUnsealedBlockSmallChain checks that a window larger than the
// chain itself still bottoms out at block 1 without underflowing.
func TestFindUnsealedBlockSmallChain(t *testing.T) {
	chain := newSealedChain(5, 2)
	b, ok := findUnsealedBlock(chain, 5, 50)
	if !ok || b.BlockNum != 2 {
		t.Fatalf("findUnsealedBlock = (%v, %v), want (block 2, true)", b, ok)
	}
}
