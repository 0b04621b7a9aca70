// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pars

// Parser is a pure function from (environment, buffer view, cursor,
// state) to a Reply. R is the read-only environment, E the user error
// type, S the threaded state, A the produced value.
//
// Both the view and the state travel by value: a combinator that tries
// an alternative simply calls it with the bundle it was given, which is
// exactly the snapshot/restore discipline failure rollback requires.
type Parser[R, E, S, A any] func(env R, v view, pos int, st S) Reply[E, S, A]

// Pure succeeds with a, consuming nothing.
func Pure[R, E, S, A any](a A) Parser[R, E, S, A] {
	return func(_ R, _ view, pos int, st S) Reply[E, S, A] {
		return replyOK[E, S](a, pos, st)
	}
}

// Bind sequences p with f applied to its value.
func Bind[R, E, S, A, B any](p Parser[R, E, S, A], f func(A) Parser[R, E, S, B]) Parser[R, E, S, B] {
	return func(env R, v view, pos int, st S) Reply[E, S, B] {
		r := p(env, v, pos, st)
		switch r.status {
		case statusOK:
			return f(r.value)(env, v, r.pos, r.state)
		case statusErr:
			return replyErr[E, S, B](r.err)
		default:
			return replyFail[E, S, B]()
		}
	}
}

// Map applies f to p's value.
func Map[R, E, S, A, B any](p Parser[R, E, S, A], f func(A) B) Parser[R, E, S, B] {
	return func(env R, v view, pos int, st S) Reply[E, S, B] {
		r := p(env, v, pos, st)
		switch r.status {
		case statusOK:
			return replyOK[E, S](f(r.value), r.pos, r.state)
		case statusErr:
			return replyErr[E, S, B](r.err)
		default:
			return replyFail[E, S, B]()
		}
	}
}

// Then sequences p and q, discarding p's value.
func Then[R, E, S, A, B any](p Parser[R, E, S, A], q Parser[R, E, S, B]) Parser[R, E, S, B] {
	return func(env R, v view, pos int, st S) Reply[E, S, B] {
		r := p(env, v, pos, st)
		switch r.status {
		case statusOK:
			return q(env, v, r.pos, r.state)
		case statusErr:
			return replyErr[E, S, B](r.err)
		default:
			return replyFail[E, S, B]()
		}
	}
}

// ThenSkip sequences p and q, keeping p's value.
func ThenSkip[R, E, S, A, B any](p Parser[R, E, S, A], q Parser[R, E, S, B]) Parser[R, E, S, A] {
	return func(env R, v view, pos int, st S) Reply[E, S, A] {
		r := p(env, v, pos, st)
		if r.status != statusOK {
			return r
		}
		rq := q(env, v, r.pos, r.state)
		switch rq.status {
		case statusOK:
			return replyOK[E, S](r.value, rq.pos, rq.state)
		case statusErr:
			return replyErr[E, S, A](rq.err)
		default:
			return replyFail[E, S, A]()
		}
	}
}

// Void discards p's value.
func Void[R, E, S, A any](p Parser[R, E, S, A]) Parser[R, E, S, struct{}] {
	return func(env R, v view, pos int, st S) Reply[E, S, struct{}] {
		r := p(env, v, pos, st)
		switch r.status {
		case statusOK:
			return replyOK[E, S](struct{}{}, r.pos, r.state)
		case statusErr:
			return replyErr[E, S, struct{}](r.err)
		default:
			return replyFail[E, S, struct{}]()
		}
	}
}

// Ask succeeds with the environment, consuming nothing.
func Ask[R, E, S any]() Parser[R, E, S, R] {
	return func(env R, _ view, pos int, st S) Reply[E, S, R] {
		return replyOK[E, S](env, pos, st)
	}
}

// Local runs p with the environment transformed by f. p sees only the
// transformed value for its entire execution; the caller's continuation
// keeps the outer environment.
func Local[R, E, S, A any](f func(R) R, p Parser[R, E, S, A]) Parser[R, E, S, A] {
	return func(env R, v view, pos int, st S) Reply[E, S, A] {
		return p(f(env), v, pos, st)
	}
}

// Get succeeds with the threaded state, consuming nothing.
func Get[R, E, S any]() Parser[R, E, S, S] {
	return func(_ R, _ view, pos int, st S) Reply[E, S, S] {
		return replyOK[E, S](st, pos, st)
	}
}

// Put replaces the threaded state, consuming nothing.
func Put[R, E, S any](s S) Parser[R, E, S, struct{}] {
	return func(_ R, _ view, pos int, _ S) Reply[E, S, struct{}] {
		return replyOK[E, S](struct{}{}, pos, s)
	}
}

// Modify transforms the threaded state, consuming nothing.
func Modify[R, E, S any](f func(S) S) Parser[R, E, S, struct{}] {
	return func(_ R, _ view, pos int, st S) Reply[E, S, struct{}] {
		return replyOK[E, S](struct{}{}, pos, f(st))
	}
}
