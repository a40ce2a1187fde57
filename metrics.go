package vsl

// Metrics is a point-in-time snapshot of a List's instrumentation
// counters: block and level churn rather than retry counts, since a
// single-threaded container has no contention to retry against.
type Metrics struct {
	// BlocksAllocated counts blocks created by insertNode over the
	// List's lifetime, including ones later pulled from the pool.
	BlocksAllocated int64
	// BlocksFreed counts blocks removed by removeNode.
	BlocksFreed int64
	// LevelIncreases counts calls to increaseLevel.
	LevelIncreases int64
	// LevelDecreases counts calls to decreaseLevel.
	LevelDecreases int64
	// BlockPromotions counts individual blocks promoted to a new top
	// level during increaseLevel's sweep.
	BlockPromotions int64
}

func (m *Metrics) incBlocksAllocated() { m.BlocksAllocated++ }
func (m *Metrics) incBlocksFreed()     { m.BlocksFreed++ }
func (m *Metrics) incLevelIncreases()  { m.LevelIncreases++ }
func (m *Metrics) incLevelDecreases()  { m.LevelDecreases++ }
func (m *Metrics) incBlockPromotions() { m.BlockPromotions++ }
