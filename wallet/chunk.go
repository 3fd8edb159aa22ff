package wallet

import (
	"sort"

	"github.com/sagreta86/Ixian-DLT/types"
)

// WsChunk is a partition of the base wallet map used to synchronize new
// peers: a chunk's wallets can be inserted via ApplyChunk without
// requiring the whole state to transfer as a single message.
type WsChunk struct {
	BlockNum uint64
	ChunkNum int32
	Wallets  []types.Wallet
}

// Chunks partitions base into ceil(len(base)/chunkSize) chunks, each
// tagged with blockNum and its own sequence number. Iteration order over
// the underlying map is implementation-defined but stable for the
// duration of a single call; consumers are expected to sort wallets by
// checksum rather than rely on chunk order (spec §4.1).
func (s *State) Chunks(chunkSize int, blockNum uint64) []WsChunk {
	if chunkSize <= 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make(types.AddressSlice, 0, len(s.base))
	for id := range s.base {
		ids = append(ids, id)
	}
	sort.Sort(ids)

	var chunks []WsChunk
	for start := 0; start < len(ids); start += chunkSize {
		end := start + chunkSize
		if end > len(ids) {
			end = len(ids)
		}
		wallets := make([]types.Wallet, 0, end-start)
		for _, id := range ids[start:end] {
			wallets = append(wallets, s.base[id].Copy())
		}
		chunks = append(chunks, WsChunk{
			BlockNum: blockNum,
			ChunkNum: int32(len(chunks)),
			Wallets:  wallets,
		})
	}
	return chunks
}

// ApplyChunk inserts or overwrites base entries from a sync chunk. It
// fails as a no-op, returning false, if a snapshot is currently active:
// consensus cannot tolerate a sync import landing underneath a pending
// speculative block (spec §4.1/§7). Both cached checksums are invalidated
// on success.
func (s *State) ApplyChunk(wallets []types.Wallet) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.delta != nil {
		s.log.Warnf("ApplyChunk: %v", ErrSnapshotActive)
		return false
	}

	for _, w := range wallets {
		s.base[w.ID] = w.Copy()
	}
	s.cachedChecksumValid = false
	s.cachedDeltaChecksumValid = false
	return true
}
