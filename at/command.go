package at

import "strconv"

// Builder assembles one command line. Arguments are separated the way the
// ESP-AT grammar expects: "=" before the first, "," between the rest. The
// backing array is reused across lines, so a warmed-up Builder does not
// allocate.
type Builder struct {
	buf  []byte
	argc int
}

// Start resets the builder to "AT" followed by name.
func (b *Builder) Start(name string) *Builder {
	b.buf = append(b.buf[:0], 'A', 'T')
	b.buf = append(b.buf, name...)
	b.argc = 0
	return b
}

func (b *Builder) sep() {
	if b.argc == 0 {
		b.buf = append(b.buf, '=')
	} else {
		b.buf = append(b.buf, ',')
	}
	b.argc++
}

// Int appends a decimal argument.
func (b *Builder) Int(v int) *Builder {
	b.sep()
	b.buf = strconv.AppendInt(b.buf, int64(v), 10)
	return b
}

// Bool appends 1 or 0.
func (b *Builder) Bool(v bool) *Builder {
	if v {
		return b.Int(1)
	}
	return b.Int(0)
}

// Str appends a quoted string argument. Quotes and backslashes are escaped
// with a backslash.
func (b *Builder) Str(s string) *Builder {
	b.sep()
	b.buf = append(b.buf, '"')
	for i := 0; i < len(s); i++ {
		if c := s[i]; c == '"' || c == '\\' || c == ',' {
			b.buf = append(b.buf, '\\')
		}
		b.buf = append(b.buf, s[i])
	}
	b.buf = append(b.buf, '"')
	return b
}

// IPv4 appends a quoted dotted-quad argument. The most significant byte of
// addr is the first octet.
func (b *Builder) IPv4(addr uint32) *Builder {
	b.sep()
	b.buf = append(b.buf, '"')
	b.buf = AppendIPv4(b.buf, addr)
	b.buf = append(b.buf, '"')
	return b
}

// Line returns the command terminated by CRLF. The slice is valid until the
// next Start.
func (b *Builder) Line() []byte {
	b.buf = append(b.buf, CRLF...)
	return b.buf
}

// String returns the command without CRLF.
func (b *Builder) String() string {
	s := string(b.buf)
	if n := len(s) - len(CRLF); n >= 0 && s[n:] == CRLF {
		s = s[:n]
	}
	return s
}

// AppendIPv4 appends addr in dotted-quad form.
func AppendIPv4(dst []byte, addr uint32) []byte {
	for shift := 24; shift >= 0; shift -= 8 {
		dst = strconv.AppendUint(dst, uint64(addr>>shift&0xff), 10)
		if shift > 0 {
			dst = append(dst, '.')
		}
	}
	return dst
}
