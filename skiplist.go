// Package vsl implements an indexed sparse map: a mutable container from
// 64-bit unsigned indices to values of a caller-chosen comparable type,
// backed by a skip list whose nodes are fixed-width 32-slot blocks with
// bitmap-managed occupancy. It behaves like a dense vector when indices
// cluster and like a sorted map when they are sparse, because the skip
// list only ever indexes block start addresses, never individual keys.
package vsl

// MinLevel is the hysteresis floor for decreaseLevel: while any block
// remains, width shrinking never takes the top level below MinLevel, which
// keeps level from oscillating around a single threshold during
// interleaved insert/erase traffic. Removing the last block returns the
// list to level 0.
const MinLevel int64 = 6

// List is an indexed sparse map over uint64 keys. It is not safe for
// concurrent use — exactly one goroutine may call methods on a given
// *List at a time, and a pointer returned by At is invalidated by any
// later Set, Erase, At, or garbage collection of the List itself.
type List[V comparable] struct {
	invalid V
	rng     *rngSource

	head *blockNode[V]
	tail *blockNode[V]

	width uint64
	level int64

	path    pathCache[V]
	pool    blockPool[V]
	metrics Metrics
}

// New constructs an empty List with a time-derived default seed.
func New[V comparable](invalid V) *List[V] {
	return NewSeeded(invalid, newRandomSeed())
}

// NewSeeded constructs an empty List with an explicit RNG seed. A seed of
// zero is replaced with a fixed non-zero default, since the underlying
// xoroshiro64** generator can never leave an all-zero state.
func NewSeeded[V comparable](invalid V, seed uint64) *List[V] {
	head := newSentinel[V]()
	tail := newSentinel[V]()
	head.setRight(0, tail)
	tail.setLeft(0, head)

	return &List[V]{
		invalid: invalid,
		rng:     newRNG(seed),
		head:    head,
		tail:    tail,
	}
}

// CurrentLevel reports the list's current top level (0 means one level
// exists). It is inspection-only.
func (l *List[V]) CurrentLevel() int64 {
	return l.level
}

// BlockCount reports the number of live blocks currently allocated,
// i.e. the list's width. It is inspection-only.
func (l *List[V]) BlockCount() int {
	return int(l.width)
}

// Metrics returns a snapshot of the list's instrumentation counters.
func (l *List[V]) Metrics() Metrics {
	return l.metrics
}

// owns reports whether cur is a non-sentinel block whose window contains
// index. cur must be the result of findLeft(index).
func (l *List[V]) owns(cur *blockNode[V], index uint64) bool {
	return cur != l.head && index-cur.baseIndex < blockWidth
}

// Has reports whether a live value exists at key k.
func (l *List[V]) Has(k uint64) bool {
	cur := l.findLeft(k)
	if !l.owns(cur, k) {
		return false
	}
	return cur.has(uint8(k - cur.baseIndex))
}

// Get returns the live value at key k, or invalid if none exists.
func (l *List[V]) Get(k uint64) V {
	cur := l.findLeft(k)
	if l.owns(cur, k) {
		if v, ok := cur.get(uint8(k - cur.baseIndex)); ok {
			return v
		}
	}
	return l.invalid
}

// At ensures a slot exists at key k — initializing it to invalid if it is
// new — and returns a pointer to it. The pointer is valid until the next
// mutating call (Set, Erase, or At) on this List.
func (l *List[V]) At(k uint64) *V {
	cur := l.findLeft(k)
	if l.owns(cur, k) {
		slot := uint8(k - cur.baseIndex)
		if !cur.has(slot) {
			cur.set(slot, l.invalid)
		}
		return &cur.elements[slot]
	}

	aligned := k & blockIndexMask
	created := l.insertNode(aligned)
	slot := uint8(k - aligned)
	created.set(slot, l.invalid)
	return &created.elements[slot]
}

// Set inserts or overwrites the value at key k. Set and Erase are kept
// independent: writing l.invalid via Set does not erase the key, it is
// only a read-only sentinel for misses.
func (l *List[V]) Set(k uint64, v V) {
	*l.At(k) = v
}

// Erase clears the value at key k and reports whether a live value was
// present. A block whose last live slot is erased is removed from the
// list.
func (l *List[V]) Erase(k uint64) bool {
	cur := l.findLeft(k)
	if !l.owns(cur, k) {
		return false
	}

	slot := uint8(k - cur.baseIndex)
	if !cur.has(slot) {
		return false
	}

	cur.eraseSlot(slot)
	if cur.isEmpty() {
		l.removeNode(cur)
	}
	return true
}
