package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/model"
)

var (
	verifierBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "verifier",
		Name:      "blocks_total",
		Help:      "Count of verified blocks by outcome and violated rule.",
	}, []string{"coin", "network", "status", "rule"})

	verifierCheckDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "verifier",
		Name:      "check_duration_seconds",
		Help:      "Duration of structural block checks.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 16),
	}, []string{"coin", "network", "status"})

	verifierBlockSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "verifier",
		Name:      "block_size_bytes",
		Help:      "Serialized size of verified blocks.",
		Buckets:   prometheus.ExponentialBuckets(256, 2, 14),
	}, []string{"coin", "network"})
)

// Verifier tracks outcomes of structural block checks.
type Verifier struct {
	coin    string
	network string
}

// NewVerifier constructs a Verifier collector.
func NewVerifier(coin model.Coin, network model.Network) *Verifier {
	return &Verifier{coin: coinLabel(coin), network: networkLabel(network)}
}

// ObserveVerdict records the outcome of a single block check.
func (m Verifier) ObserveVerdict(verdict model.BlockVerdict, started time.Time) {
	rule := verdict.Rule
	if rule == "" {
		rule = "none"
	}
	verifierBlocksTotal.WithLabelValues(m.coin, m.network, string(verdict.Status), rule).Inc()
	verifierCheckDuration.WithLabelValues(m.coin, m.network, string(verdict.Status)).
		Observe(time.Since(started).Seconds())
	verifierBlockSize.WithLabelValues(m.coin, m.network).Observe(float64(verdict.Size))
}
