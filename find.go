package vsl

// findLeft walks from head starting at the top level and returns the
// rightmost block with baseIndex <= index, or head if no such block
// exists. Along the way it records, in l.path, the last node moved off
// of at each level — the predecessor insertNode/removeNode need to splice
// against at that level. The result is only valid until the next call to
// findLeft on the same List.
func (l *List[V]) findLeft(index uint64) *blockNode[V] {
	cur := l.head
	lvl := l.level

	for lvl >= 0 {
		next := cur.right(uint8(lvl))
		if next != l.tail && next.baseIndex <= index {
			cur = next
			continue
		}
		l.path.set(lvl, cur)
		lvl--
	}

	return cur
}
