// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pars

// view is the buffer context threaded through every parser step. It is
// passed by value: scoped modification (Isolate, InSpan) shrinks or
// re-points the visible end on a copy, and the caller's view is intact
// when the inner parser returns.
//
// buf is the immutable, externally owned input. end is the visible end
// of buffer, which may be less than len(buf) under Isolate/InSpan.
// serial tags the run so that positions cannot silently cross buffers.
type view struct {
	buf    []byte
	end    int
	serial Serial
}

// Pos addresses a byte offset within the buffer of a single run.
// Positions are comparable only within the run that produced them;
// the serial tag turns cross-buffer use into a panic instead of a
// silent wrong answer.
type Pos struct {
	off    int
	serial Serial
}

// EndPos is the sentinel position meaning "end of the visible buffer".
// It carries no serial and resolves against whichever run it is used in.
var EndPos = Pos{off: -1}

// Span is an ordered pair of positions denoting a consumed region.
// Construction is unchecked: building an inverted span is possible, and
// slicing one via UnsafeSpanToByteString panics.
type Span struct {
	Start Pos
	End   Pos
}

// SpanBetween builds the span from start to end.
func SpanBetween(start, end Pos) Span { return Span{Start: start, End: end} }

// resolve maps a position to an offset in v. A position tagged with a
// different run's serial, or lying outside the visible buffer, is a
// caller contract violation and panics.
func (v view) resolve(p Pos) int {
	if p.serial != 0 && p.serial != v.serial {
		panic("pars: position applied to a different buffer")
	}
	if p.off < 0 {
		return v.end
	}
	if p.off > v.end {
		panic("pars: position outside the visible buffer")
	}
	return p.off
}

// CurrentPos succeeds with the current cursor position, consuming nothing.
func CurrentPos[R, E, S any]() Parser[R, E, S, Pos] {
	return func(_ R, v view, pos int, st S) Reply[E, S, Pos] {
		return replyOK[E, S](Pos{off: pos, serial: v.serial}, pos, st)
	}
}

// SetPos moves the cursor to p. The position must have been produced by
// CurrentPos during the same run (or be EndPos); anything else panics.
func SetPos[R, E, S any](p Pos) Parser[R, E, S, struct{}] {
	return func(_ R, v view, _ int, st S) Reply[E, S, struct{}] {
		return replyOK[E, S](struct{}{}, v.resolve(p), st)
	}
}
