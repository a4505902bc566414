package ring

import "io"

// View is a read-only window [begin, end) onto a Buffer. A View handed to a
// callback is valid only until that callback returns; the bytes behind it are
// consumed right after. Copy what must be kept.
type View struct {
	buf   *Buffer
	begin int
	end   int
}

// Slice returns the view over [begin, end), clamped to the buffered bytes.
func (b *Buffer) Slice(begin, end int) View {
	n := b.Len()
	if end > n {
		end = n
	}
	if begin < 0 {
		begin = 0
	}
	if begin > end {
		begin = end
	}
	return View{buf: b, begin: begin, end: end}
}

// Len returns the number of bytes in the view.
func (v View) Len() int {
	return v.end - v.begin
}

// At returns the i-th byte of the view. It panics if i is out of range.
func (v View) At(i int) byte {
	if i < 0 || i >= v.Len() {
		panic("ring: view index out of range")
	}
	return v.buf.At(v.begin + i)
}

// CopyTo copies the view into p and returns the number of bytes copied.
func (v View) CopyTo(p []byte) int {
	if len(p) > v.Len() {
		p = p[:v.Len()]
	}
	if v.buf == nil {
		return 0
	}
	return v.buf.Peek(p, v.begin)
}

// AppendTo appends the view to dst and returns the extended slice.
func (v View) AppendTo(dst []byte) []byte {
	for i := v.begin; i < v.end; i++ {
		dst = append(dst, v.buf.At(i))
	}
	return dst
}

// WriteTo writes the view to w. At most two writes are issued, one per
// contiguous physical segment.
func (v View) WriteTo(w io.Writer) (int64, error) {
	if v.Len() == 0 {
		return 0, nil
	}
	b := v.buf
	start := b.phys(v.begin)
	n := v.Len()
	first := n
	if start+n > len(b.data) {
		first = len(b.data) - start
	}
	written, err := w.Write(b.data[start : start+first])
	total := int64(written)
	if err != nil || first == n {
		return total, err
	}
	written, err = w.Write(b.data[:n-first])
	return total + int64(written), err
}

// String returns a copy of the view as a string.
func (v View) String() string {
	return string(v.AppendTo(make([]byte, 0, v.Len())))
}
