package vsl

import "testing"

// decodeFuzzKeyOps turns a raw fuzz input into a bounded sequence of
// (opcode, key) pairs: a bounded sequence of Set/Erase/Get calls checked
// against the container's own invariants after every step.
type fuzzKeyOp struct {
	typ byte
	key uint64
}

func decodeFuzzKeyOps(input []byte, maxOps int) []fuzzKeyOp {
	var ops []fuzzKeyOp
	for i := 0; i+8 < len(input) && len(ops) < maxOps; i += 9 {
		typ := input[i]
		var key uint64
		for j := 0; j < 8; j++ {
			key = key<<8 | uint64(input[i+1+j])
		}
		ops = append(ops, fuzzKeyOp{typ: typ, key: key})
	}
	return ops
}

func FuzzListInvariants(f *testing.F) {
	f.Add([]byte{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 1})
	f.Add([]byte{2, 0, 0, 0, 0, 0, 0, 0, 32, 0, 0, 0, 0, 0, 0, 0, 0, 32})

	f.Fuzz(func(t *testing.T, input []byte) {
		const maxOps = 64
		ops := decodeFuzzKeyOps(input, maxOps)
		if len(ops) == 0 {
			t.Skip()
		}

		l := NewSeeded[int](-1, 0xC0FFEE)
		live := map[uint64]int{}

		for _, op := range ops {
			switch op.typ % 3 {
			case 0:
				v := int(op.key)
				l.Set(op.key, v)
				live[op.key] = v
			case 1:
				if l.Erase(op.key) {
					delete(live, op.key)
				} else if _, ok := live[op.key]; ok {
					t.Fatalf("Erase(%d) returned false but key was tracked as live", op.key)
				}
			case 2:
				got := l.Get(op.key)
				if want, ok := live[op.key]; ok {
					if got != want {
						t.Fatalf("Get(%d) = %d, want %d", op.key, got, want)
					}
				} else if got != -1 {
					t.Fatalf("Get(%d) = %d, want invalid(-1)", op.key, got)
				}
			}

			if int64(l.BlockCount()) != 0 {
				if l.CurrentLevel() < 0 {
					t.Fatalf("negative level %d", l.CurrentLevel())
				}
			}
			if uint64(l.BlockCount()) > (uint64(1) << uint(l.CurrentLevel())) {
				t.Fatalf("width %d exceeds 2^level (level=%d)", l.BlockCount(), l.CurrentLevel())
			}
		}

		windows := map[uint64]bool{}
		for k := range live {
			windows[k&blockIndexMask] = true
		}
		if len(windows) != l.BlockCount() {
			t.Fatalf("BlockCount()=%d but %d distinct windows are live", l.BlockCount(), len(windows))
		}

		for k, want := range live {
			if got := l.Get(k); got != want {
				t.Fatalf("final Get(%d) = %d, want %d", k, got, want)
			}
			if !l.Has(k) {
				t.Fatalf("final Has(%d) = false, want true", k)
			}
		}
	})
}
