package parser

import "github.com/pontaoski/pyproto/types"

// lookahead is a fixed capacity ring of upcoming tokens.
type lookahead struct {
	buf  []types.Token
	head int
	size int
}

func newLookahead(k int) *lookahead {
	return &lookahead{buf: make([]types.Token, k)}
}

func (q *lookahead) len() int {
	return q.size
}

func (q *lookahead) cap() int {
	return len(q.buf)
}

func (q *lookahead) full() bool {
	return q.size == len(q.buf)
}

func (q *lookahead) push(t types.Token) {
	if q.full() {
		panic("lookahead: push on full buffer")
	}
	q.buf[(q.head+q.size)%len(q.buf)] = t
	q.size++
}

func (q *lookahead) pop() types.Token {
	if q.size == 0 {
		panic("lookahead: pop on empty buffer")
	}
	t := q.buf[q.head]
	q.buf[q.head] = types.Token{}
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return t
}

func (q *lookahead) at(i int) types.Token {
	if i < 0 || i >= q.size {
		panic("lookahead: index out of range")
	}
	return q.buf[(q.head+i)%len(q.buf)]
}
