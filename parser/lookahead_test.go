package parser

import (
	"testing"

	"github.com/pontaoski/pyproto/types"
)

func TestLookaheadRing(t *testing.T) {
	q := newLookahead(2)
	if q.cap() != 2 || q.len() != 0 {
		t.Fatalf("new ring has cap %d len %d", q.cap(), q.len())
	}

	// wrap around the end of the backing array a few times
	next := 0
	for i := 0; i < 5; i++ {
		for !q.full() {
			q.push(types.Token{Kind: types.NUMBER, Text: string(rune('a' + next))})
			next++
		}
		if q.at(0).Text != string(rune('a'+next-2)) || q.at(1).Text != string(rune('a'+next-1)) {
			t.Fatalf("round %d: window %v %v", i, q.at(0), q.at(1))
		}
		if got := q.pop(); got.Text != string(rune('a'+next-2)) {
			t.Fatalf("round %d: popped %v", i, got)
		}
		if q.len() != 1 {
			t.Fatalf("round %d: len %d", i, q.len())
		}
	}
}

func TestLookaheadBounds(t *testing.T) {
	mustPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s did not panic", name)
			}
		}()
		fn()
	}

	q := newLookahead(1)
	mustPanic("pop on empty", func() { q.pop() })
	mustPanic("at on empty", func() { q.at(0) })
	q.push(types.Token{Kind: types.EOF})
	mustPanic("push on full", func() { q.push(types.Token{}) })
	mustPanic("negative index", func() { q.at(-1) })
}
