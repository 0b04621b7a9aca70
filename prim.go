// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pars

import (
	"encoding/binary"
	"strconv"
)

// EOF succeeds iff the cursor is at the end of the visible buffer.
func EOF[R, E, S any]() Parser[R, E, S, struct{}] {
	return func(_ R, v view, pos int, st S) Reply[E, S, struct{}] {
		if pos != v.end {
			return replyFail[E, S, struct{}]()
		}
		return replyOK[E, S](struct{}{}, pos, st)
	}
}

// Ensure succeeds without consuming iff at least n more bytes are
// visible. It is the single hoisted bounds check that unchecked scans
// rely on.
func Ensure[R, E, S any](n int) Parser[R, E, S, struct{}] {
	return func(_ R, v view, pos int, st S) Reply[E, S, struct{}] {
		if pos+n > v.end {
			return replyFail[E, S, struct{}]()
		}
		return replyOK[E, S](struct{}{}, pos, st)
	}
}

// Take succeeds with the next n bytes as a zero-copy slice iff n bytes
// remain. A negative n is a caller error, not a parse failure.
func Take[R, E, S any](n int) Parser[R, E, S, []byte] {
	if n < 0 {
		panic("pars: negative take length")
	}
	return func(_ R, v view, pos int, st S) Reply[E, S, []byte] {
		if pos+n > v.end {
			return replyFail[E, S, []byte]()
		}
		return replyOK[E, S](v.buf[pos:pos+n], pos+n, st)
	}
}

// TakeRest succeeds with all bytes from the cursor to the visible end,
// possibly empty, as a zero-copy slice.
func TakeRest[R, E, S any]() Parser[R, E, S, []byte] {
	return func(_ R, v view, pos int, st S) Reply[E, S, []byte] {
		return replyOK[E, S](v.buf[pos:v.end], v.end, st)
	}
}

// litChunk is one host-endian word of a precompiled literal.
type litChunk struct {
	size int
	word uint64
}

// compileLit splits a literal into host-endian 8/4/2/1-byte words, done
// once at parser construction so matching compares whole words.
func compileLit(lit []byte) []litChunk {
	var chunks []litChunk
	for len(lit) >= 8 {
		chunks = append(chunks, litChunk{8, binary.NativeEndian.Uint64(lit)})
		lit = lit[8:]
	}
	if len(lit) >= 4 {
		chunks = append(chunks, litChunk{4, uint64(binary.NativeEndian.Uint32(lit))})
		lit = lit[4:]
	}
	if len(lit) >= 2 {
		chunks = append(chunks, litChunk{2, uint64(binary.NativeEndian.Uint16(lit))})
		lit = lit[2:]
	}
	if len(lit) == 1 {
		chunks = append(chunks, litChunk{1, uint64(lit[0])})
	}
	return chunks
}

// scanMatch compares the precompiled literal against buf at pos with
// host-endian word loads. The caller must already have established that
// the full literal length is present.
func scanMatch(buf []byte, pos int, chunks []litChunk) bool {
	for _, c := range chunks {
		switch c.size {
		case 8:
			if binary.NativeEndian.Uint64(buf[pos:]) != c.word {
				return false
			}
		case 4:
			if uint64(binary.NativeEndian.Uint32(buf[pos:])) != c.word {
				return false
			}
		case 2:
			if uint64(binary.NativeEndian.Uint16(buf[pos:])) != c.word {
				return false
			}
		default:
			if uint64(buf[pos]) != c.word {
				return false
			}
		}
		pos += c.size
	}
	return true
}

// Bytes succeeds iff the next len(lit) bytes equal lit. The length
// check happens once; the comparison runs over precompiled host-endian
// words.
func Bytes[R, E, S any](lit []byte) Parser[R, E, S, struct{}] {
	n := len(lit)
	chunks := compileLit(lit)
	return func(_ R, v view, pos int, st S) Reply[E, S, struct{}] {
		if pos+n > v.end || !scanMatch(v.buf, pos, chunks) {
			return replyFail[E, S, struct{}]()
		}
		return replyOK[E, S](struct{}{}, pos+n, st)
	}
}

// String succeeds iff the next bytes equal the UTF-8 encoding of lit.
func String[R, E, S any](lit string) Parser[R, E, S, struct{}] {
	return Bytes[R, E, S](stringBytes(lit))
}

// Byte succeeds iff the next byte equals b.
func Byte[R, E, S any](b byte) Parser[R, E, S, struct{}] {
	return func(_ R, v view, pos int, st S) Reply[E, S, struct{}] {
		if pos >= v.end || v.buf[pos] != b {
			return replyFail[E, S, struct{}]()
		}
		return replyOK[E, S](struct{}{}, pos+1, st)
	}
}

// Char succeeds iff the next bytes equal the UTF-8 encoding of r.
func Char[R, E, S any](r rune) Parser[R, E, S, struct{}] {
	if r < 0 {
		panic("pars: invalid rune " + strconv.Itoa(int(r)))
	}
	return String[R, E, S](string(r))
}
