// Package wallet implements the authoritative, checksum-addressable
// mapping of account identifiers to account records: the ledger's Wallet
// State. It supports single-level, copy-on-write snapshot/commit/revert so
// a block processor can speculatively apply a proposed block, fold the
// resulting state into a checksum for the block header, and either commit
// or discard the attempt without ever touching the committed base map.
//
// The design is grounded on the teacher's modules/consensus package: base
// plays the role of the teacher's bolt-backed UTXO buckets, delta plays the
// role of a single pending block's diff set, and Commit/Revert play the
// role of commitDiffSet's apply/revert directions — adapted from an
// on-disk bolt transaction to an in-memory overlay, since wallet-state
// persistence is explicitly out of scope.
package wallet

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/sagreta86/Ixian-DLT/build"
	"github.com/sagreta86/Ixian-DLT/external"
	"github.com/sagreta86/Ixian-DLT/types"
)

// checksumSeed is hashed once to seed the consensus checksum fold. Its
// literal value and the hex-string concatenation in Checksum below are a
// wire-compatibility contract with deployed nodes and must never change.
const checksumSeed = "IXIAN-DLT"

// State is the wallet state: a committed base map plus an optional
// copy-on-write delta overlay active during speculative block execution.
// Every operation acquires mu in full, per the single-mutex concurrency
// model (spec §5) — there are no suspension points inside an operation
// other than the mutex wait.
type State struct {
	mu sync.Mutex

	base  map[types.Address]types.Wallet
	delta map[types.Address]types.Wallet // nil iff no snapshot is active

	cachedChecksum      [32]byte
	cachedChecksumValid bool

	cachedDeltaChecksum      [32]byte
	cachedDeltaChecksumValid bool

	log external.Logger
}

// New returns an empty wallet state. log receives warnings for the
// precondition-violation no-ops described in the error handling design;
// passing nil disables logging.
func New(log external.Logger) *State {
	if log == nil {
		log = noopLogger{}
	}
	return &State{
		base: make(map[types.Address]types.Wallet),
		log:  log,
	}
}

type noopLogger struct{}

func (noopLogger) Infof(string, ...interface{})  {}
func (noopLogger) Warnf(string, ...interface{})  {}
func (noopLogger) Errorf(string, ...interface{}) {}

// Get returns a copy of the wallet record for id, applying the overlay
// rule: with fromSnapshot set, delta is consulted first, then base, then a
// default record is synthesized; without it, only base (and the default)
// are consulted. The returned copy never aliases internal state.
func (s *State) Get(id types.Address, fromSnapshot bool) types.Wallet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(id, fromSnapshot).Copy()
}

// get is the unlocked primitive shared by every read path.
func (s *State) get(id types.Address, fromSnapshot bool) types.Wallet {
	if fromSnapshot && s.delta != nil {
		if w, ok := s.delta[id]; ok {
			return w
		}
	}
	if w, ok := s.base[id]; ok {
		return w
	}
	return types.DefaultWallet(id)
}

// GetBalance is a convenience wrapper over Get.
func (s *State) GetBalance(id types.Address, fromSnapshot bool) types.Balance {
	return s.Get(id, fromSnapshot).Balance
}

// SetBalance writes {id, balance, nonce} into base or delta depending on
// toSnapshot. If toSnapshot is true but no snapshot is active, the call is
// a logged no-op and SetBalance returns false: this is the re-architected,
// explicit-result form of the source's silent drop (spec §7/§9). nonce is
// optional; if omitted it defaults to 0, matching "nonce or 0" in spec
// §4.1.
func (s *State) SetBalance(id types.Address, balance types.Balance, toSnapshot bool, nonce ...uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if toSnapshot && s.delta == nil {
		s.log.Warnf("SetBalance(%s): %v", id, ErrNoSnapshot)
		return false
	}

	var n uint64
	if len(nonce) > 0 {
		n = nonce[0]
	}
	w := types.Wallet{ID: id, Balance: balance, Nonce: n}

	if toSnapshot {
		s.delta[id] = w
		s.cachedDeltaChecksumValid = false
	} else {
		s.base[id] = w
		s.cachedChecksumValid = false
	}
	return true
}

// SetNonce reads the current wallet by the overlay rule and writes it back
// with a new nonce, preserving the balance. If the wallet exists in
// neither layer, the call is a logged no-op and SetNonce returns false
// (spec §4.1/§7).
func (s *State) SetNonce(id types.Address, nonce uint64, toSnapshot bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if toSnapshot && s.delta == nil {
		s.log.Warnf("SetNonce(%s): %v", id, ErrNoSnapshot)
		return false
	}

	_, inDelta := s.delta[id]
	_, inBase := s.base[id]
	if !inDelta && !inBase {
		s.log.Warnf("SetNonce(%s): %v", id, ErrUnknownWallet)
		return false
	}

	w := s.get(id, toSnapshot)
	w.Nonce = nonce

	if toSnapshot {
		s.delta[id] = w
		s.cachedDeltaChecksumValid = false
	} else {
		s.base[id] = w
		s.cachedChecksumValid = false
	}
	return true
}

// Snapshot begins a speculative overlay. It returns false, taking no
// action, if a snapshot is already active: snapshots never nest (spec
// invariant 5).
func (s *State) Snapshot() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.delta != nil {
		return false
	}
	s.delta = make(map[types.Address]types.Wallet)
	s.cachedDeltaChecksumValid = false
	return true
}

// Commit merges the active delta into base and clears it. It
// unconditionally invalidates both cached checksums, even when delta was
// empty — a deliberate fix of the source's behavior called out in spec §9,
// where commit only cleared the checksum cache because the delta happened
// to be non-empty. Commit is a no-op if no snapshot is active.
func (s *State) Commit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.delta == nil {
		return
	}
	for id, w := range s.delta {
		s.base[id] = w
	}
	s.delta = nil
	s.cachedChecksumValid = false
	s.cachedDeltaChecksumValid = false

	s.commitSanity()
}

// commitSanity checks, in debug builds only, that a just-completed Commit
// actually left the state the way Commit's own contract promises: no
// lingering delta, and both checksum caches invalidated. Both checks run
// regardless of whether the first one fails, and any violations are folded
// into a single build.ComposeErrors call so a double invariant break is
// reported as one Critical, not two separate panics — mirroring the
// teacher's commitDiffSetSanity in modules/consensus/diffs.go.
func (s *State) commitSanity() {
	if !build.DEBUG {
		return
	}
	var violations []error
	if s.delta != nil {
		violations = append(violations, errors.New("commit left a non-nil delta behind"))
	}
	if s.cachedChecksumValid || s.cachedDeltaChecksumValid {
		violations = append(violations, errors.New("commit left a checksum cache marked valid"))
	}
	if err := build.ComposeErrors(violations...); err != nil {
		build.Critical(err)
	}
}

// Revert discards the active delta without touching base. It is a no-op if
// no snapshot is active.
func (s *State) Revert() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.delta == nil {
		return
	}
	s.delta = nil
	s.cachedDeltaChecksumValid = false
}

// Clear empties base, drops any active delta, and invalidates both cached
// checksums.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.base = make(map[types.Address]types.Wallet)
	s.delta = nil
	s.cachedChecksumValid = false
	s.cachedDeltaChecksumValid = false
}

// Checksum returns the consensus checksum over base (fromSnapshot=false) or
// over base overlaid with delta (fromSnapshot=true). The result is
// memoized and only recomputed after an invalidating mutation.
//
// The algorithm is a wire-compatibility contract and must be preserved
// bit-for-bit: seed h with SHA256("IXIAN-DLT"), then for every address in
// sorted order fold h <- SHA256(hex(h) || hex(walletChecksum)), where ||
// is string concatenation of uppercase hex encodings.
func (s *State) Checksum(fromSnapshot bool) [32]byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fromSnapshot {
		if s.cachedDeltaChecksumValid {
			return s.cachedDeltaChecksum
		}
	} else if s.cachedChecksumValid {
		return s.cachedChecksum
	}

	addrs := make(map[types.Address]struct{}, len(s.base))
	for id := range s.base {
		addrs[id] = struct{}{}
	}
	if fromSnapshot {
		for id := range s.delta {
			addrs[id] = struct{}{}
		}
	}
	sorted := make(types.AddressSlice, 0, len(addrs))
	for id := range addrs {
		sorted = append(sorted, id)
	}
	sort.Sort(sorted)

	h := sha256.Sum256([]byte(checksumSeed))
	for _, id := range sorted {
		w := s.get(id, fromSnapshot)
		wc := w.Checksum()
		fold := fmt.Sprintf("%X%X", h, wc)
		h = sha256.Sum256([]byte(fold))
	}

	if fromSnapshot {
		s.cachedDeltaChecksum = h
		s.cachedDeltaChecksumValid = true
	} else {
		s.cachedChecksum = h
		s.cachedChecksumValid = true
	}
	return h
}

// TotalSupply sums every balance in base, excluding the delta overlay. The
// sum is arbitrary precision, so saturation is never possible.
func (s *State) TotalSupply() types.Balance {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := types.ZeroBalance()
	for _, w := range s.base {
		total = total.Add(w.Balance)
	}
	return total
}

// LoadGenesis seeds base directly from a set of wallets, bypassing the
// snapshot machinery entirely. It is meant for constructing the genesis
// state or restoring from a full sync, not for ordinary operation.
func (s *State) LoadGenesis(wallets []types.Wallet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range wallets {
		s.base[w.ID] = w.Copy()
	}
	s.cachedChecksumValid = false
	s.cachedDeltaChecksumValid = false
}
