// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pars

import (
	"code.hybscloud.com/kont"
)

// Result is the outcome of a whole run: success with the produced value,
// the final state and the zero-copy unconsumed remainder; a tagged
// "no match" failure; or an error carrying the user error value.
type Result[E, S, A any] struct {
	value  A
	state  S
	rest   []byte
	err    E
	status status
}

// OK returns the value, final state and unconsumed remainder.
// The remainder references the input buffer; it is not a copy.
func (r Result[E, S, A]) OK() (value A, st S, rest []byte, ok bool) {
	return r.value, r.state, r.rest, r.status == statusOK
}

// Failed reports whether the run ended in a recoverable non-match.
func (r Result[E, S, A]) Failed() bool { return r.status == statusFail }

// Err returns the carried error value if the run raised one.
func (r Result[E, S, A]) Err() (E, bool) {
	return r.err, r.status == statusErr
}

// Either folds the three-way outcome into kont.Either: Right on success,
// Left with the carried error on error, Left with onFail on failure.
func (r Result[E, S, A]) Either(onFail E) kont.Either[E, A] {
	switch r.status {
	case statusOK:
		return kont.Right[E, A](r.value)
	case statusErr:
		return kont.Left[E, A](r.err)
	default:
		return kont.Left[E, A](onFail)
	}
}

// Run executes p against input with the given environment and initial
// state. The buffer is referenced, never copied: it must outlive every
// slice and span the run produces.
func Run[R, E, S, A any](p Parser[R, E, S, A], env R, st S, input []byte) Result[E, S, A] {
	v := view{buf: input, end: len(input), serial: nextSerial()}
	r := p(env, v, 0, st)
	switch r.status {
	case statusOK:
		return Result[E, S, A]{value: r.value, state: r.state, rest: input[r.pos:], status: statusOK}
	case statusErr:
		return Result[E, S, A]{err: r.err, status: statusErr}
	default:
		return Result[E, S, A]{status: statusFail}
	}
}

// RunText executes p against the UTF-8 bytes of s. The byte view is a
// zero-copy alias of the string data, so multi-byte text reaches the
// parser exactly as encoded; slices produced by the run alias the
// string and must be treated as read-only.
func RunText[R, E, S, A any](p Parser[R, E, S, A], env R, st S, s string) Result[E, S, A] {
	return Run(p, env, st, stringBytes(s))
}
