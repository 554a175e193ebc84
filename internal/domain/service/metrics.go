package service

import "time"

// Collect outcomes reported to Metrics.
const (
	CollectOutcomeCollected   = "collected"
	CollectOutcomeOutOfReach  = "out_of_reach"
	CollectOutcomeNoPosition  = "no_position"
	CollectOutcomeUnknownDrop = "unknown_drop"
)

// Metrics records engine and feed measurements.
type Metrics interface {
	ObservePass(duration time.Duration, markers int)
	CountCollect(outcome string)
	SetFeedSize(drops int)
}
