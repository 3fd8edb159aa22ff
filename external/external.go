// Package external formalizes the collaborators the core depends on but
// does not implement: the peer-to-peer transport, block processor, chain
// storage, local key store, logging, and clock. The re-architecture passes
// these in as explicit constructor arguments (dependency injection) rather
// than reaching into a process-wide singleton, per the teacher's
// modules.Dependencies / modules.ConsensusSet interface-injection idiom.
package external

import (
	"time"

	"github.com/sagreta86/Ixian-DLT/types"
)

// BlockChain is the read-only view of the chain the Miner polls for
// un-sealed blocks.
type BlockChain interface {
	// LastBlockNum returns the height of the tallest known block.
	LastBlockNum() uint64
	// GetBlock returns the block at the given height, if known.
	GetBlock(n uint64) (types.Block, bool)
}

// BlockProcessor reports whether the node is actively processing blocks.
// The Miner only searches while the processor is operating.
type BlockProcessor interface {
	Operating() bool
}

// WalletStorage is the local key store: it knows this node's own solving
// identity but not the ledger's balances.
type WalletStorage interface {
	Address() types.Address
	PublicKey() []byte
}

// ProtocolMessage is the P2P broadcast surface the Miner uses to announce a
// PoW solution transaction.
type ProtocolMessage interface {
	Broadcast(code uint8, payload []byte) error
}

// Logger is the node-wide logging facility. persist.Logger is the concrete
// implementation used outside of tests.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Clock abstracts wall-clock time for statistics and transaction
// timestamps, so tests can supply a deterministic implementation.
type Clock interface {
	Now() time.Time
}

// SystemClock is the Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time { return time.Now() }
