package model

import "time"

// VerdictStatus describes the outcome of verifying a block.
type VerdictStatus string

var (
	// VerdictValid marks a block that passed every structural check.
	VerdictValid VerdictStatus = "valid"
	// VerdictInvalid marks a block rejected by a structural check.
	VerdictInvalid VerdictStatus = "invalid"
)

// NoTxIndex is stored when a rejection is not tied to a single transaction.
const NoTxIndex int32 = -1

// BlockVerdict is the persisted result of verifying a block.
type BlockVerdict struct {
	Coin       Coin          `json:"coin"`
	Network    Network       `json:"network"`
	Height     uint64        `json:"height"`
	Hash       string        `json:"hash"`
	MerkleRoot string        `json:"merkle_root"`
	Size       uint32        `json:"size"`
	TXCount    uint32        `json:"tx_count"`
	SigOps     uint32        `json:"sigops"`
	Status     VerdictStatus `json:"status"`
	Rule       string        `json:"rule,omitempty"`
	Reason     string        `json:"reason,omitempty"`
	TxIndex    int32         `json:"tx_index"`
	VerifiedAt time.Time     `json:"verified_at"`
}

// Valid reports whether the verdict accepted the block.
func (v BlockVerdict) Valid() bool {
	return v.Status == VerdictValid
}
