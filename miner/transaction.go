package miner

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/sagreta86/Ixian-DLT/encoding"
	"github.com/sagreta86/Ixian-DLT/types"
)

// TxType distinguishes the handful of transaction kinds the Miner cares
// about. The pool of actual transaction types lives with the transaction
// pool collaborator (out of scope); PoWSolution is the one kind the core
// itself constructs.
type TxType uint8

// TxPoWSolution marks a transaction as a proof-of-work solution
// broadcast.
const TxPoWSolution TxType = 1

// BroadcastCode is the protocol message code a PoW solution transaction is
// announced under.
const BroadcastCode uint8 = 0x01

// BurnAddress is the well-known sink address PoW solution transactions pay
// their (zero) amount to. It is the all-zero address by convention.
var BurnAddress types.Address

// Transaction is the minimal PoW-solution transaction the Miner builds and
// hands to the protocol layer. Signing is the responsibility of the local
// key store collaborator (out of scope, spec §1); Signature is left for
// that collaborator to fill in before the transaction leaves the node.
type Transaction struct {
	Type      TxType
	From      types.Address
	To        types.Address
	Amount    types.Balance
	Data      string
	Timestamp int64
	ID        [32]byte
	Checksum  [32]byte
	Signature []byte
}

// newPoWSolutionTransaction builds the transaction described in spec
// §4.2 from a solved types.Solution: data is the "pubkey||blockNum||nonce"
// delimited string, a wire compatibility contract that must not change.
func newPoWSolutionTransaction(solution types.Solution, pubkey []byte, now int64) Transaction {
	data := fmt.Sprintf("%s||%d||%s", hex.EncodeToString(pubkey), solution.BlockNum, solution.Nonce)
	tx := Transaction{
		Type:      TxPoWSolution,
		From:      solution.Solver,
		To:        BurnAddress,
		Amount:    types.ZeroBalance(),
		Data:      data,
		Timestamp: now,
	}
	cs := tx.computeChecksum()
	tx.ID = cs
	tx.Checksum = cs
	return tx
}

func (t Transaction) computeChecksum() [32]byte {
	var buf []byte
	buf = append(buf, byte(t.Type))
	buf = append(buf, t.From[:]...)
	buf = append(buf, t.To[:]...)
	buf = append(buf, encoding.EncBytes(t.Amount.Bytes())...)
	buf = append(buf, encoding.EncBytes([]byte(t.Data))...)
	buf = append(buf, encoding.EncUint64(uint64(t.Timestamp))...)
	return sha256.Sum256(buf)
}
