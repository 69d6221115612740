package verification

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned for a block without transactions.
	ErrEmpty = errors.New("block has no transactions")
	// ErrCoinbase is returned when the first transaction is missing or not a coinbase.
	ErrCoinbase = errors.New("first transaction is not a coinbase")
	// ErrSize is the sentinel wrapped by SizeError.
	ErrSize = errors.New("block exceeds maximum serialized size")
	// ErrMisplacedCoinbase is the reason carried by TransactionError for a coinbase outside position 0.
	ErrMisplacedCoinbase = errors.New("coinbase found outside position 0")
	// ErrDuplicatedTransactions is returned when two transactions share an identity hash.
	ErrDuplicatedTransactions = errors.New("block contains duplicated transactions")
	// ErrMaximumSigops is returned when the block exceeds the signature operation budget.
	ErrMaximumSigops = errors.New("block exceeds maximum signature operations")
	// ErrMerkleRoot is returned when the recomputed Merkle root differs from the header.
	ErrMerkleRoot = errors.New("merkle root mismatch")
)

// SizeError reports the observed serialized size of an oversized block.
type SizeError struct {
	Size int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%s: %d bytes", ErrSize, e.Size)
}

func (e *SizeError) Unwrap() error {
	return ErrSize
}

// TransactionError reports a rule violated by the transaction at Index.
type TransactionError struct {
	Index int
	Err   error
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("transaction %d: %s", e.Index, e.Err)
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}

// Rule labels.
const (
	RuleEmpty                  = "empty"
	RuleCoinbase               = "coinbase"
	RuleSize                   = "size"
	RuleMisplacedCoinbase      = "misplaced_coinbase"
	RuleDuplicatedTransactions = "duplicated_transactions"
	RuleMaximumSigops          = "maximum_sigops"
	RuleMerkleRoot             = "merkle_root"
	RuleUnknown                = "unknown"
)

// Rule returns a stable label naming the rule err violates, "" for nil.
func Rule(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmpty):
		return RuleEmpty
	case errors.Is(err, ErrCoinbase):
		return RuleCoinbase
	case errors.Is(err, ErrSize):
		return RuleSize
	case errors.Is(err, ErrMisplacedCoinbase):
		return RuleMisplacedCoinbase
	case errors.Is(err, ErrDuplicatedTransactions):
		return RuleDuplicatedTransactions
	case errors.Is(err, ErrMaximumSigops):
		return RuleMaximumSigops
	case errors.Is(err, ErrMerkleRoot):
		return RuleMerkleRoot
	default:
		return RuleUnknown
	}
}

// TransactionIndex returns the offending transaction index carried by err, if any.
func TransactionIndex(err error) (int, bool) {
	var txErr *TransactionError
	if errors.As(err, &txErr) {
		return txErr.Index, true
	}
	return 0, false
}
