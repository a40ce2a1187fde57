package vsl

// insertNode creates a new block at the given 32-aligned index and
// splices it into the levels it participates in, using the predecessor
// recorded by the immediately preceding findLeft call. It must only be
// called right after a findLeft that established no block owns aligned.
func (l *List[V]) insertNode(aligned uint64) *blockNode[V] {
	newLevel := uint8(l.rng.randomBlockLevel(l.level))
	n := l.pool.acquire(aligned, newLevel)
	l.metrics.incBlocksAllocated()

	for i := uint8(0); i <= newLevel; i++ {
		left := l.path.get(int64(i))
		right := left.right(i)

		n.setLeft(i, left)
		n.setRight(i, right)
		left.setRight(i, n)
		right.setLeft(i, n)
	}

	l.width++
	if l.width > (uint64(1) << uint(l.level)) {
		l.increaseLevel()
	}

	return n
}

// removeNode unlinks an emptied block from every level it participated
// in and returns it to the pool. It must only be called right after a
// findLeft that located n, and only when n.isEmpty().
func (l *List[V]) removeNode(n *blockNode[V]) {
	for i := uint8(0); i <= n.level; i++ {
		left := l.path.get(int64(i))
		if left == n {
			left = n.left(i)
		}
		right := n.right(i)

		left.setRight(i, right)
		right.setLeft(i, left)
	}

	l.pool.release(n)
	l.metrics.incBlocksFreed()
	l.width--

	if l.level >= MinLevel && l.width <= (uint64(1)<<uint(l.level))-(uint64(1)<<uint(MinLevel)) {
		l.decreaseLevel()
	}

	// Once the last block is gone only the sentinels remain, so the list
	// drops all the way back to level 0.
	for l.width == 0 && l.level > 0 {
		l.decreaseLevel()
	}
}
