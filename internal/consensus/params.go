// Package consensus holds the compiled-in consensus constants shared by block validation.
package consensus

import "time"

const (
	// MaxBlockSize is the maximum canonical serialized size of a block, in bytes.
	MaxBlockSize = 2_000_000
	// MaxBlockSigOps is the maximum number of signature operations in a block.
	MaxBlockSigOps = MaxBlockSize / sigOpsBytesRatio

	// CoinbaseMaturity is the number of confirmations before coinbase outputs are spendable.
	CoinbaseMaturity = 100
	// MinCoinbaseSize and MaxCoinbaseSize bound the coinbase signature script length.
	MinCoinbaseSize = 2
	MaxCoinbaseSize = 100

	// BlockMaxFuture is how far ahead of local time a block timestamp may be.
	BlockMaxFuture = 2 * time.Hour

	RetargetingFactor   = 4
	TargetSpacing       = 10 * time.Minute
	DoubleSpacing       = 2 * TargetSpacing
	TargetTimespan      = 2 * 7 * 24 * time.Hour
	MinTimespan         = TargetTimespan / RetargetingFactor
	MaxTimespan         = TargetTimespan * RetargetingFactor
	RetargetingInterval = int(TargetTimespan / TargetSpacing)

	sigOpsBytesRatio = 50
)

// Retargeting groups the difficulty adjustment bounds. They are consumed by chain-level
// difficulty code, never by block structure checks.
type Retargeting struct {
	Factor         int
	TargetSpacing  time.Duration
	DoubleSpacing  time.Duration
	TargetTimespan time.Duration
	MinTimespan    time.Duration
	MaxTimespan    time.Duration
	Interval       int
}

// Params is an immutable set of consensus parameters. The sigops ceiling is always
// derived from the size ceiling.
type Params struct {
	maxBlockSize     int
	maxBlockSigOps   int
	coinbaseMaturity uint32
	minCoinbaseSize  int
	maxCoinbaseSize  int
	blockMaxFuture   time.Duration
	retargeting      Retargeting
}

var mainParams = newParams(MaxBlockSize)

// Main returns the network consensus parameters.
func Main() *Params {
	return &mainParams
}

func newParams(maxBlockSize int) Params {
	return Params{
		maxBlockSize:     maxBlockSize,
		maxBlockSigOps:   maxBlockSize / sigOpsBytesRatio,
		coinbaseMaturity: CoinbaseMaturity,
		minCoinbaseSize:  MinCoinbaseSize,
		maxCoinbaseSize:  MaxCoinbaseSize,
		blockMaxFuture:   BlockMaxFuture,
		retargeting: Retargeting{
			Factor:         RetargetingFactor,
			TargetSpacing:  TargetSpacing,
			DoubleSpacing:  DoubleSpacing,
			TargetTimespan: TargetTimespan,
			MinTimespan:    MinTimespan,
			MaxTimespan:    MaxTimespan,
			Interval:       RetargetingInterval,
		},
	}
}

// MaxBlockSize returns the block size ceiling in bytes.
func (p *Params) MaxBlockSize() int { return p.maxBlockSize }

// MaxBlockSigOps returns the per-block signature operation ceiling.
func (p *Params) MaxBlockSigOps() int { return p.maxBlockSigOps }

// CoinbaseMaturity returns the confirmations required before a coinbase output is spendable.
func (p *Params) CoinbaseMaturity() uint32 { return p.coinbaseMaturity }

// MinCoinbaseSize returns the shortest allowed coinbase signature script.
func (p *Params) MinCoinbaseSize() int { return p.minCoinbaseSize }

// MaxCoinbaseSize returns the longest allowed coinbase signature script.
func (p *Params) MaxCoinbaseSize() int { return p.maxCoinbaseSize }

// BlockMaxFuture returns how far ahead of local time a block timestamp may be.
func (p *Params) BlockMaxFuture() time.Duration { return p.blockMaxFuture }

// Retargeting returns a copy of the difficulty retargeting bounds.
func (p *Params) Retargeting() Retargeting { return p.retargeting }
