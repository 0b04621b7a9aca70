// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pars

// charLen returns the UTF-8 sequence length indicated by the lead byte.
// Decoding is deliberately lenient: continuation-byte high bits are not
// validated, only the length prefix of the lead byte is honored.
func charLen(b byte) int {
	switch {
	case b <= 0x7F:
		return 1
	case b <= 0xDF:
		return 2
	case b <= 0xEF:
		return 3
	default:
		return 4
	}
}

// decodeChar assembles the scalar for a sequence of length n at pos.
// The caller has verified that n bytes are present.
func decodeChar(buf []byte, pos, n int) rune {
	switch n {
	case 1:
		return rune(buf[pos])
	case 2:
		return rune(buf[pos]&0x1F)<<6 | rune(buf[pos+1]&0x3F)
	case 3:
		return rune(buf[pos]&0x0F)<<12 | rune(buf[pos+1]&0x3F)<<6 | rune(buf[pos+2]&0x3F)
	default:
		return rune(buf[pos]&0x07)<<18 | rune(buf[pos+1]&0x3F)<<12 | rune(buf[pos+2]&0x3F)<<6 | rune(buf[pos+3]&0x3F)
	}
}

// AnyChar decodes one UTF-8 character, failing if fewer bytes remain
// than the lead byte indicates. There is no partial decode: either the
// whole sequence is consumed or the cursor does not move.
func AnyChar[R, E, S any]() Parser[R, E, S, rune] {
	return func(_ R, v view, pos int, st S) Reply[E, S, rune] {
		if pos >= v.end {
			return replyFail[E, S, rune]()
		}
		b := v.buf[pos]
		if b <= 0x7F {
			return replyOK[E, S](rune(b), pos+1, st)
		}
		n := charLen(b)
		if pos+n > v.end {
			return replyFail[E, S, rune]()
		}
		return replyOK[E, S](decodeChar(v.buf, pos, n), pos+n, st)
	}
}

// SkipAnyChar skips one UTF-8 character without decoding the scalar,
// computing only its byte length.
func SkipAnyChar[R, E, S any]() Parser[R, E, S, struct{}] {
	return func(_ R, v view, pos int, st S) Reply[E, S, struct{}] {
		if pos >= v.end {
			return replyFail[E, S, struct{}]()
		}
		n := charLen(v.buf[pos])
		if pos+n > v.end {
			return replyFail[E, S, struct{}]()
		}
		return replyOK[E, S](struct{}{}, pos+n, st)
	}
}

// FusedSatisfy decodes one UTF-8 character of length k and applies the
// k-th predicate to the scalar. Supplying a cheap ASCII-only f1 keeps
// full-range classification off the one-byte hot path.
func FusedSatisfy[R, E, S any](f1, f2, f3, f4 func(rune) bool) Parser[R, E, S, rune] {
	return func(_ R, v view, pos int, st S) Reply[E, S, rune] {
		if pos >= v.end {
			return replyFail[E, S, rune]()
		}
		b := v.buf[pos]
		if b <= 0x7F {
			c := rune(b)
			if !f1(c) {
				return replyFail[E, S, rune]()
			}
			return replyOK[E, S](c, pos+1, st)
		}
		n := charLen(b)
		if pos+n > v.end {
			return replyFail[E, S, rune]()
		}
		c := decodeChar(v.buf, pos, n)
		var f func(rune) bool
		switch n {
		case 2:
			f = f2
		case 3:
			f = f3
		default:
			f = f4
		}
		if !f(c) {
			return replyFail[E, S, rune]()
		}
		return replyOK[E, S](c, pos+n, st)
	}
}

// Satisfy decodes one UTF-8 character and applies f to the scalar.
func Satisfy[R, E, S any](f func(rune) bool) Parser[R, E, S, rune] {
	return FusedSatisfy[R, E, S](f, f, f, f)
}

// SatisfyASCII reads exactly one byte, failing if its high bit is set
// or the predicate rejects it. Cheaper than a full UTF-8 decode.
func SatisfyASCII[R, E, S any](f func(byte) bool) Parser[R, E, S, byte] {
	return func(_ R, v view, pos int, st S) Reply[E, S, byte] {
		if pos >= v.end {
			return replyFail[E, S, byte]()
		}
		b := v.buf[pos]
		if b >= 0x80 || !f(b) {
			return replyFail[E, S, byte]()
		}
		return replyOK[E, S](b, pos+1, st)
	}
}

// AnyCharASCII reads exactly one byte, failing if its high bit is set.
func AnyCharASCII[R, E, S any]() Parser[R, E, S, byte] {
	return func(_ R, v view, pos int, st S) Reply[E, S, byte] {
		if pos >= v.end {
			return replyFail[E, S, byte]()
		}
		b := v.buf[pos]
		if b >= 0x80 {
			return replyFail[E, S, byte]()
		}
		return replyOK[E, S](b, pos+1, st)
	}
}
