package verifier

import "time"

const (
	defaultWorkerCount        = 8
	defaultBatchSize   uint64 = 500

	sleepDuration     = 5 * time.Second
	idleSleepDuration = 30 * time.Second

	verdictBatcherCapacity      = 1000
	verdictBatcherFlushInterval = 1 * time.Second
	verdictBatcherRPS           = 20
	verdictInsertChunk          = 5000
)
