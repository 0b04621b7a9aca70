// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pars

// Isolate restricts p's visible end of buffer to cursor+n. It fails if
// fewer than n bytes remain, and also fails if p succeeds without
// landing exactly on cursor+n: partial consumption of the isolated
// region is rejected. A negative n is a caller error.
func Isolate[R, E, S, A any](n int, p Parser[R, E, S, A]) Parser[R, E, S, A] {
	if n < 0 {
		panic("pars: negative isolate length")
	}
	return func(env R, v view, pos int, st S) Reply[E, S, A] {
		if pos+n > v.end {
			return replyFail[E, S, A]()
		}
		inner := v
		inner.end = pos + n
		r := p(env, inner, pos, st)
		if r.status == statusOK && r.pos != pos+n {
			return replyFail[E, S, A]()
		}
		return r
	}
}

// InSpan re-points both cursor and visible end of buffer to a
// previously captured span, runs p there, and on success restores the
// caller's cursor and state: the outer parse position is unaffected.
// Failures and errors propagate.
func InSpan[R, E, S, A any](span Span, p Parser[R, E, S, A]) Parser[R, E, S, A] {
	return func(env R, v view, pos int, st S) Reply[E, S, A] {
		inner := v
		start := v.resolve(span.Start)
		inner.end = v.resolve(span.End)
		r := p(env, inner, start, st)
		if r.status == statusOK {
			return replyOK[E, S](r.value, pos, st)
		}
		return r
	}
}

// SpanOf returns the span consumed by p without materializing bytes.
func SpanOf[R, E, S, A any](p Parser[R, E, S, A]) Parser[R, E, S, Span] {
	return func(env R, v view, pos int, st S) Reply[E, S, Span] {
		r := p(env, v, pos, st)
		switch r.status {
		case statusOK:
			sp := Span{
				Start: Pos{off: pos, serial: v.serial},
				End:   Pos{off: r.pos, serial: v.serial},
			}
			return replyOK[E, S](sp, r.pos, r.state)
		case statusErr:
			return replyErr[E, S, Span](r.err)
		default:
			return replyFail[E, S, Span]()
		}
	}
}

// WithSpan runs p, then continues with f applied to p's value and the
// span it consumed.
func WithSpan[R, E, S, A, B any](p Parser[R, E, S, A], f func(A, Span) Parser[R, E, S, B]) Parser[R, E, S, B] {
	return func(env R, v view, pos int, st S) Reply[E, S, B] {
		r := p(env, v, pos, st)
		switch r.status {
		case statusOK:
			sp := Span{
				Start: Pos{off: pos, serial: v.serial},
				End:   Pos{off: r.pos, serial: v.serial},
			}
			return f(r.value, sp)(env, v, r.pos, r.state)
		case statusErr:
			return replyErr[E, S, B](r.err)
		default:
			return replyFail[E, S, B]()
		}
	}
}

// ByteStringOf returns the bytes consumed by p as a zero-copy slice.
func ByteStringOf[R, E, S, A any](p Parser[R, E, S, A]) Parser[R, E, S, []byte] {
	return func(env R, v view, pos int, st S) Reply[E, S, []byte] {
		r := p(env, v, pos, st)
		switch r.status {
		case statusOK:
			return replyOK[E, S](v.buf[pos:r.pos], r.pos, r.state)
		case statusErr:
			return replyErr[E, S, []byte](r.err)
		default:
			return replyFail[E, S, []byte]()
		}
	}
}

// WithByteString runs p, then continues with f applied to p's value and
// the zero-copy slice it consumed.
func WithByteString[R, E, S, A, B any](p Parser[R, E, S, A], f func(A, []byte) Parser[R, E, S, B]) Parser[R, E, S, B] {
	return func(env R, v view, pos int, st S) Reply[E, S, B] {
		r := p(env, v, pos, st)
		switch r.status {
		case statusOK:
			return f(r.value, v.buf[pos:r.pos])(env, v, r.pos, r.state)
		case statusErr:
			return replyErr[E, S, B](r.err)
		default:
			return replyFail[E, S, B]()
		}
	}
}

// UnsafeSpanToByteString reconstructs the zero-copy slice for a span
// captured earlier in the same run, without moving the cursor. The span
// must come from this run's buffer and satisfy Start <= End; violations
// panic.
func UnsafeSpanToByteString[R, E, S any](span Span) Parser[R, E, S, []byte] {
	return func(_ R, v view, pos int, st S) Reply[E, S, []byte] {
		start := v.resolve(span.Start)
		end := v.resolve(span.End)
		if start > end {
			panic("pars: inverted span")
		}
		return replyOK[E, S](v.buf[start:end], pos, st)
	}
}
