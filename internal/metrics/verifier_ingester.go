package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/blockinsight7000-verifier/internal/model"
)

var (
	verifierIngesterFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "verifier_ingester",
		Name:      "fetch_heights_total",
		Help:      "Count of attempts to fetch heights awaiting verification.",
	}, []string{"coin", "network", "status"})

	verifierIngesterFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "verifier_ingester",
		Name:      "fetch_heights_duration_seconds",
		Help:      "Duration of fetching heights awaiting verification.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	verifierIngesterBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "verifier_ingester",
		Name:      "process_batch_total",
		Help:      "Count of verification batches processed.",
	}, []string{"coin", "network", "status"})

	verifierIngesterBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "verifier_ingester",
		Name:      "process_batch_duration_seconds",
		Help:      "Duration of processing a verification batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	verifierIngesterBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "verifier_ingester",
		Name:      "process_batch_size",
		Help:      "Number of heights per verification batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"coin", "network"})

	verifierIngesterHeightDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "verifier_ingester",
		Name:      "process_height_duration_seconds",
		Help:      "Duration of fetching and verifying a single height.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	verifierIngesterHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "verifier_ingester",
		Name:      "last_processed_height",
		Help:      "Highest block height verified successfully.",
	}, []string{"coin", "network"})
)

// VerifierIngester tracks metrics for the verifier ingestion loop.
type VerifierIngester struct {
	coin       string
	network    string
	lastHeight *maxHeight
}

type maxHeight struct {
	mu     sync.Mutex
	height uint64
}

// NewVerifierIngester constructs a VerifierIngester with defaults.
func NewVerifierIngester(coin model.Coin, network model.Network) *VerifierIngester {
	return &VerifierIngester{
		coin:       coinLabel(coin),
		network:    networkLabel(network),
		lastHeight: &maxHeight{},
	}
}

// ObserveFetchHeights records a fetch attempt outcome and duration.
func (m VerifierIngester) ObserveFetchHeights(err error, started time.Time) {
	s := status(err)
	verifierIngesterFetchTotal.WithLabelValues(m.coin, m.network, s).Inc()
	verifierIngesterFetchDuration.WithLabelValues(m.coin, m.network, s).Observe(time.Since(started).Seconds())
}

// ObserveProcessBatch records processing of a batch of heights.
func (m VerifierIngester) ObserveProcessBatch(err error, heights int, started time.Time) {
	s := status(err)
	verifierIngesterBatchTotal.WithLabelValues(m.coin, m.network, s).Inc()
	verifierIngesterBatchDuration.WithLabelValues(m.coin, m.network, s).Observe(time.Since(started).Seconds())
	verifierIngesterBatchSize.WithLabelValues(m.coin, m.network).Observe(float64(heights))
}

// ObserveProcessHeight records processing of a single height.
func (m VerifierIngester) ObserveProcessHeight(err error, height uint64, started time.Time) {
	s := status(err)
	verifierIngesterHeightDuration.WithLabelValues(m.coin, m.network, s).Observe(time.Since(started).Seconds())
	if err != nil {
		return
	}
	m.lastHeight.mu.Lock()
	defer m.lastHeight.mu.Unlock()
	if height <= m.lastHeight.height {
		return
	}
	m.lastHeight.height = height
	verifierIngesterHeight.WithLabelValues(m.coin, m.network).Set(float64(height))
}
