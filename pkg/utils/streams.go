package utils

// A Stream yields values one at a time until it is exhausted.
// Once Next returns false it keeps returning false.
type Stream[T any] interface {
	Next() (T, bool)
}

// SliceStream is a Stream over the elements of a slice.
type SliceStream[T any] struct {
	items []T
	pos   int
}

func NewSliceStream[T any](items []T) *SliceStream[T] {
	return &SliceStream[T]{items: items}
}

func (self *SliceStream[T]) Next() (T, bool) {
	var zero T
	if self.pos >= len(self.items) {
		return zero, false
	}
	res := self.items[self.pos]
	self.pos++
	return res, true
}

// Collect drains the stream into a slice.
func Collect[T any](s Stream[T]) []T {
	res := []T{}
	for {
		val, ok := s.Next()
		if !ok {
			return res
		}
		res = append(res, val)
	}
}

// Peeker adds one value of lookahead to a Stream.
type Peeker[T any] struct {
	src    Stream[T]
	peeked T
	has    bool
	done   bool
}

func NewPeeker[T any](src Stream[T]) *Peeker[T] {
	return &Peeker[T]{src: src}
}

func (self *Peeker[T]) Next() (T, bool) {
	if self.has {
		self.has = false
		return self.peeked, true
	}
	return self.pull()
}

// Peek returns the next value without consuming it.
func (self *Peeker[T]) Peek() (T, bool) {
	if !self.has {
		val, ok := self.pull()
		if !ok {
			return val, false
		}
		self.peeked, self.has = val, true
	}
	return self.peeked, true
}

func (self *Peeker[T]) pull() (T, bool) {
	var zero T
	if self.done {
		return zero, false
	}
	val, ok := self.src.Next()
	if !ok {
		self.done = true
		return zero, false
	}
	return val, true
}

// PushbackCap is the number of values a Pushback can hold.
const PushbackCap = 2

// Pushback is a small fixed-capacity deque of values handed back to a stream
// consumer. Unread puts a value in front, so the next Pop returns it;
// unreading b then a redelivers a, then b.
type Pushback[T any] struct {
	buf  [PushbackCap]T
	head int
	n    int
}

// Unread puts val in front of the held values. It panics when the buffer is
// full, which means a caller looked further ahead than it is allowed to.
func (self *Pushback[T]) Unread(val T) {
	if self.n == PushbackCap {
		panic("utils: pushback buffer overflow")
	}
	self.head = (self.head + PushbackCap - 1) % PushbackCap
	self.buf[self.head] = val
	self.n++
}

// Pop removes the front value.
func (self *Pushback[T]) Pop() (T, bool) {
	var zero T
	if self.n == 0 {
		return zero, false
	}
	res := self.buf[self.head]
	self.buf[self.head] = zero
	self.head = (self.head + 1) % PushbackCap
	self.n--
	return res, true
}

func (self *Pushback[T]) Len() int {
	return self.n
}
