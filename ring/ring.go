// Package ring implements the fixed-capacity receive buffer the ESP-AT
// dispatcher parses in place.
//
// Every position taken or returned by a Buffer method is a logical offset
// measured from the oldest unread byte, so callers never see the physical
// wraparound. No method allocates.
package ring

// MaxPattern is the longest pattern Index accepts.
const MaxPattern = 20

// CRLF is the line terminator encoded for IndexWord: low byte first.
const CRLF uint16 = '\r' | '\n'<<8

// Buffer is a circular byte store. When a Store would make head meet tail,
// the oldest byte is dropped instead; writers are never blocked.
//
// A Buffer of capacity C holds at most C-1 bytes.
type Buffer struct {
	data []byte
	head int
	tail int
}

// New returns a Buffer able to hold size-1 bytes. size must be at least 2.
func New(size int) *Buffer {
	if size < 2 {
		panic("ring: size must be at least 2")
	}
	return &Buffer{data: make([]byte, size)}
}

// Cap returns the physical capacity. At most Cap()-1 bytes are buffered.
func (b *Buffer) Cap() int {
	return len(b.data)
}

func (b *Buffer) wrap(i int) int {
	if i >= len(b.data) {
		i -= len(b.data)
	}
	return i
}

func (b *Buffer) phys(i int) int {
	return (b.tail + i) % len(b.data)
}

// Store appends c. If the buffer is full the oldest byte is overwritten.
func (b *Buffer) Store(c byte) {
	next := b.wrap(b.head + 1)
	b.data[b.head] = c
	b.head = next
	if next == b.tail {
		b.tail = b.wrap(b.tail + 1)
	}
}

// Full reports whether the next Store would drop a byte.
func (b *Buffer) Full() bool {
	return b.wrap(b.head+1) == b.tail
}

// Len returns the number of buffered bytes.
func (b *Buffer) Len() int {
	if b.tail <= b.head {
		return b.head - b.tail
	}
	return b.head + len(b.data) - b.tail
}

// At returns the byte at offset i. The result is unspecified when i is
// outside [0, Len()).
func (b *Buffer) At(i int) byte {
	return b.data[b.phys(i)]
}

// Peek copies up to len(p) bytes starting at offset begin into p without
// consuming them. It returns the number of bytes copied, which is short when
// fewer are buffered.
func (b *Buffer) Peek(p []byte, begin int) int {
	n := b.Len() - begin
	if begin < 0 || n <= 0 {
		return 0
	}
	if n > len(p) {
		n = len(p)
	}
	i := b.phys(begin)
	for j := 0; j < n; j++ {
		p[j] = b.data[i]
		i = b.wrap(i + 1)
	}
	return n
}

// IndexByte returns the offset of the first c in [begin, end), or -1.
// A negative end means Len().
func (b *Buffer) IndexByte(c byte, begin, end int) int {
	n := b.Len()
	if end < 0 || end > n {
		end = n
	}
	if begin < 0 {
		begin = 0
	}
	if begin >= end {
		return -1
	}
	i := b.phys(begin)
	for j := begin; j < end; j++ {
		if b.data[i] == c {
			return j
		}
		i = b.wrap(i + 1)
	}
	return -1
}

// IndexWord returns the offset of the first two-byte sequence w (low byte
// first) at or after begin, or -1. Both bytes must be buffered.
func (b *Buffer) IndexWord(w uint16, begin int) int {
	lo, hi := byte(w), byte(w>>8)
	n := b.Len()
	if begin < 0 {
		begin = 0
	}
	i := b.phys(begin)
	for j := begin; j+1 < n; j++ {
		next := b.wrap(i + 1)
		if b.data[i] == lo && b.data[next] == hi {
			return j
		}
		i = next
	}
	return -1
}

// IndexCRLF is IndexWord(CRLF, begin).
func (b *Buffer) IndexCRLF(begin int) int {
	return b.IndexWord(CRLF, begin)
}

// Index returns the offset of the first occurrence of pattern, or -1. It
// runs Knuth-Morris-Pratt with a failure table rebuilt on every call.
//
// len(pattern) must not exceed MaxPattern.
func (b *Buffer) Index(pattern string) int {
	m := len(pattern)
	if m > MaxPattern {
		panic("ring: pattern longer than MaxPattern")
	}
	if m == 0 {
		return 0
	}
	var fail [MaxPattern]int
	for i, k := 1, 0; i < m; i++ {
		for k > 0 && pattern[i] != pattern[k] {
			k = fail[k-1]
		}
		if pattern[i] == pattern[k] {
			k++
		}
		fail[i] = k
	}
	n := b.Len()
	p := b.tail
	for j, k := 0, 0; j < n; j++ {
		c := b.data[p]
		p = b.wrap(p + 1)
		for k > 0 && c != pattern[k] {
			k = fail[k-1]
		}
		if c == pattern[k] {
			k++
		}
		if k == m {
			return j - m + 1
		}
	}
	return -1
}

// Match reports whether the len(p) bytes at offset begin equal p. It is
// false, never a partial match, when fewer than len(p) bytes are buffered
// there; callers rely on this to tell "not yet" from "never".
func (b *Buffer) Match(p string, begin int) bool {
	if begin < 0 || begin+len(p) > b.Len() {
		return false
	}
	i := b.phys(begin)
	for j := 0; j < len(p); j++ {
		if b.data[i] != p[j] {
			return false
		}
		i = b.wrap(i + 1)
	}
	return true
}

// Set overwrites the byte at offset i. Offsets outside [0, Len()) are
// ignored.
func (b *Buffer) Set(i int, v byte) {
	if i < 0 || i >= b.Len() {
		return
	}
	b.data[b.phys(i)] = v
}

// Fill overwrites the bytes in [begin, end) with v, clamped to Len().
func (b *Buffer) Fill(begin, end int, v byte) {
	if n := b.Len(); end > n {
		end = n
	}
	if begin < 0 {
		begin = 0
	}
	if begin >= end {
		return
	}
	i := b.phys(begin)
	for j := begin; j < end; j++ {
		b.data[i] = v
		i = b.wrap(i + 1)
	}
}

// Cut discards the first count bytes. Cutting more than Len() empties the
// buffer.
func (b *Buffer) Cut(count int) {
	if count <= 0 {
		return
	}
	if count >= b.Len() {
		b.Clear()
		return
	}
	b.tail = b.phys(count)
}

// Clear discards everything buffered.
func (b *Buffer) Clear() {
	b.tail = b.head
}

// String returns the buffered bytes. It allocates and is meant for logs and
// tests.
func (b *Buffer) String() string {
	p := make([]byte, b.Len())
	b.Peek(p, 0)
	return string(p)
}
