// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pars

// status is the outcome tag of a single parser step.
type status uint8

const (
	statusOK status = iota
	statusFail
	statusErr
)

// Reply is the unboxed result of one parser step: success with a value,
// new cursor and new state; recoverable failure with no payload; or an
// unrecoverable error carrying a user error value.
//
// Reply is returned by value on every step, so the three-way outcome
// costs no allocation. Failure and error replies carry no cursor: a
// failing branch never commits consumption, which is what lets Alt
// resume the alternative from the position where the choice was made.
type Reply[E, S, A any] struct {
	value  A
	state  S
	err    E
	pos    int
	status status
}

func replyOK[E, S, A any](value A, pos int, st S) Reply[E, S, A] {
	return Reply[E, S, A]{value: value, state: st, pos: pos, status: statusOK}
}

func replyFail[E, S, A any]() Reply[E, S, A] {
	return Reply[E, S, A]{status: statusFail}
}

func replyErr[E, S, A any](e E) Reply[E, S, A] {
	return Reply[E, S, A]{err: e, status: statusErr}
}

// OK reports whether the step succeeded.
func (r Reply[E, S, A]) OK() bool { return r.status == statusOK }

// Failed reports whether the step ended in a recoverable failure.
func (r Reply[E, S, A]) Failed() bool { return r.status == statusFail }

// Errored reports whether the step raised an unrecoverable error.
func (r Reply[E, S, A]) Errored() bool { return r.status == statusErr }

// Value returns the produced value. Meaningful only when OK.
func (r Reply[E, S, A]) Value() A { return r.value }

// Err returns the carried error value. Meaningful only when Errored.
func (r Reply[E, S, A]) Err() E { return r.err }
