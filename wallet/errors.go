package wallet

import "errors"

// These errors correspond to the "precondition violated" taxonomy of the
// wallet state's error handling design: each one is logged and the
// triggering operation is a no-op, never a panic, because consensus cannot
// tolerate a node crashing on a caller mistake. The operations themselves
// report the failure by returning false; these values appear only in the
// logged warning.
var (
	// ErrNoSnapshot is logged as a warning when a caller writes to the
	// snapshot overlay without having called Snapshot first.
	ErrNoSnapshot = errors.New("wallet: no snapshot active")

	// ErrSnapshotActive is logged when an operation that is forbidden
	// while a snapshot is pending (ApplyChunk) is attempted anyway.
	ErrSnapshotActive = errors.New("wallet: snapshot already active")

	// ErrUnknownWallet is logged by SetNonce when neither the base nor
	// the delta layer has a record for the given address.
	ErrUnknownWallet = errors.New("wallet: no wallet exists for address")
)
