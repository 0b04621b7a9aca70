// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pars

// Empty always fails.
func Empty[R, E, S, A any]() Parser[R, E, S, A] {
	return func(_ R, _ view, _ int, _ S) Reply[E, S, A] {
		return replyFail[E, S, A]()
	}
}

// Throw always raises the error e. Errors skip Alt/Branch/Many
// absorption and propagate to the top of the run unless demoted by Try.
func Throw[R, E, S, A any](e E) Parser[R, E, S, A] {
	return func(_ R, _ view, _ int, _ S) Reply[E, S, A] {
		return replyErr[E, S, A](e)
	}
}

// Try demotes an error raised by p to a plain failure. Successes and
// failures pass through unchanged.
func Try[R, E, S, A any](p Parser[R, E, S, A]) Parser[R, E, S, A] {
	return func(env R, v view, pos int, st S) Reply[E, S, A] {
		r := p(env, v, pos, st)
		if r.status == statusErr {
			return replyFail[E, S, A]()
		}
		return r
	}
}

// Cut promotes a failure of p to the error e, the classic commit point:
// past this point no sibling alternative should be tried. Errors and
// successes pass through unchanged.
func Cut[R, E, S, A any](p Parser[R, E, S, A], e E) Parser[R, E, S, A] {
	return func(env R, v view, pos int, st S) Reply[E, S, A] {
		r := p(env, v, pos, st)
		if r.status == statusFail {
			return replyErr[E, S, A](e)
		}
		return r
	}
}

// Cutting is Cut that also merges with an error already raised by p:
// the result error is merge(inner, e). Nested Cutting calls accumulate
// contextual hints as the error propagates outward.
func Cutting[R, E, S, A any](p Parser[R, E, S, A], e E, merge func(inner, outer E) E) Parser[R, E, S, A] {
	return func(env R, v view, pos int, st S) Reply[E, S, A] {
		r := p(env, v, pos, st)
		switch r.status {
		case statusFail:
			return replyErr[E, S, A](e)
		case statusErr:
			return replyErr[E, S, A](merge(r.err, e))
		default:
			return r
		}
	}
}

// Alt tries p; on failure tries q from the original cursor and state.
// Errors are not backtracked: an error from p returns immediately.
func Alt[R, E, S, A any](p, q Parser[R, E, S, A]) Parser[R, E, S, A] {
	return func(env R, v view, pos int, st S) Reply[E, S, A] {
		r := p(env, v, pos, st)
		if r.status == statusFail {
			return q(env, v, pos, st)
		}
		return r
	}
}

// Choice tries each parser in turn from the same cursor and state,
// returning the first success or error. Fails if all fail.
func Choice[R, E, S, A any](ps ...Parser[R, E, S, A]) Parser[R, E, S, A] {
	return func(env R, v view, pos int, st S) Reply[E, S, A] {
		for _, p := range ps {
			r := p(env, v, pos, st)
			if r.status != statusFail {
				return r
			}
		}
		return replyFail[E, S, A]()
	}
}

// Branch commits to then once cond succeeds (discarding cond's value)
// and to els once cond fails, without re-attempting cond. els runs from
// the position where Branch was entered.
func Branch[R, E, S, A, B any](cond Parser[R, E, S, A], then, els Parser[R, E, S, B]) Parser[R, E, S, B] {
	return func(env R, v view, pos int, st S) Reply[E, S, B] {
		r := cond(env, v, pos, st)
		switch r.status {
		case statusOK:
			return then(env, v, r.pos, r.state)
		case statusFail:
			return els(env, v, pos, st)
		default:
			return replyErr[E, S, B](r.err)
		}
	}
}

// Option runs p, producing def without consuming if p fails.
func Option[R, E, S, A any](def A, p Parser[R, E, S, A]) Parser[R, E, S, A] {
	return func(env R, v view, pos int, st S) Reply[E, S, A] {
		r := p(env, v, pos, st)
		if r.status == statusFail {
			return replyOK[E, S](def, pos, st)
		}
		return r
	}
}

// Lookahead runs p and, on success, restores the pre-call cursor and
// state while keeping the produced value. Failures and errors pass
// through.
func Lookahead[R, E, S, A any](p Parser[R, E, S, A]) Parser[R, E, S, A] {
	return func(env R, v view, pos int, st S) Reply[E, S, A] {
		r := p(env, v, pos, st)
		if r.status == statusOK {
			return replyOK[E, S](r.value, pos, st)
		}
		return r
	}
}

// Fails succeeds without consuming iff p fails. A success of p becomes
// a failure; errors propagate unchanged.
func Fails[R, E, S, A any](p Parser[R, E, S, A]) Parser[R, E, S, struct{}] {
	return func(env R, v view, pos int, st S) Reply[E, S, struct{}] {
		r := p(env, v, pos, st)
		switch r.status {
		case statusOK:
			return replyFail[E, S, struct{}]()
		case statusErr:
			return replyErr[E, S, struct{}](r.err)
		default:
			return replyOK[E, S](struct{}{}, pos, st)
		}
	}
}

// NotFollowedBy succeeds with p's value, cursor and state iff q fails
// when attempted via lookahead after p.
func NotFollowedBy[R, E, S, A, B any](p Parser[R, E, S, A], q Parser[R, E, S, B]) Parser[R, E, S, A] {
	return func(env R, v view, pos int, st S) Reply[E, S, A] {
		r := p(env, v, pos, st)
		if r.status != statusOK {
			return r
		}
		rq := q(env, v, r.pos, r.state)
		switch rq.status {
		case statusOK:
			return replyFail[E, S, A]()
		case statusErr:
			return replyErr[E, S, A](rq.err)
		default:
			return r
		}
	}
}

// Many repeats p until it fails, accumulating the values. An error from
// p aborts immediately. Looping a parser that succeeds without
// consuming does not terminate.
func Many[R, E, S, A any](p Parser[R, E, S, A]) Parser[R, E, S, []A] {
	return func(env R, v view, pos int, st S) Reply[E, S, []A] {
		var out []A
		for {
			r := p(env, v, pos, st)
			switch r.status {
			case statusOK:
				out = append(out, r.value)
				pos, st = r.pos, r.state
			case statusErr:
				return replyErr[E, S, []A](r.err)
			default:
				return replyOK[E, S](out, pos, st)
			}
		}
	}
}

// SkipMany repeats p until it fails, discarding the values.
func SkipMany[R, E, S, A any](p Parser[R, E, S, A]) Parser[R, E, S, struct{}] {
	return func(env R, v view, pos int, st S) Reply[E, S, struct{}] {
		for {
			r := p(env, v, pos, st)
			switch r.status {
			case statusOK:
				pos, st = r.pos, r.state
			case statusErr:
				return replyErr[E, S, struct{}](r.err)
			default:
				return replyOK[E, S](struct{}{}, pos, st)
			}
		}
	}
}

// Some requires at least one success of p, then behaves like Many.
func Some[R, E, S, A any](p Parser[R, E, S, A]) Parser[R, E, S, []A] {
	many := Many(p)
	return func(env R, v view, pos int, st S) Reply[E, S, []A] {
		r := p(env, v, pos, st)
		if r.status != statusOK {
			if r.status == statusErr {
				return replyErr[E, S, []A](r.err)
			}
			return replyFail[E, S, []A]()
		}
		rest := many(env, v, r.pos, r.state)
		if rest.status != statusOK {
			return rest
		}
		out := append([]A{r.value}, rest.value...)
		return replyOK[E, S](out, rest.pos, rest.state)
	}
}

// SkipSome requires at least one success of p, then skips like SkipMany.
func SkipSome[R, E, S, A any](p Parser[R, E, S, A]) Parser[R, E, S, struct{}] {
	return Then(p, SkipMany(p))
}

// ChainL parses one start then left-folds zero or more elems with f.
// Unlike conventional operator chaining, it folds a uniform value
// sequence: f(...f(f(start, e1), e2)..., en).
func ChainL[R, E, S, A, B any](f func(B, A) B, start Parser[R, E, S, B], elem Parser[R, E, S, A]) Parser[R, E, S, B] {
	return func(env R, v view, pos int, st S) Reply[E, S, B] {
		r := start(env, v, pos, st)
		if r.status != statusOK {
			return r
		}
		acc := r.value
		pos, st = r.pos, r.state
		for {
			re := elem(env, v, pos, st)
			switch re.status {
			case statusOK:
				acc = f(acc, re.value)
				pos, st = re.pos, re.state
			case statusErr:
				return replyErr[E, S, B](re.err)
			default:
				return replyOK[E, S](acc, pos, st)
			}
		}
	}
}

// ChainR parses zero or more elems right-folded with f against a
// terminal end parse: f(e1, f(e2, ...f(en, end))). If the tail after a
// matched elem fails, the whole prefix backtracks and end is attempted
// from the original position.
func ChainR[R, E, S, A, B any](f func(A, B) B, elem Parser[R, E, S, A], end Parser[R, E, S, B]) Parser[R, E, S, B] {
	var self Parser[R, E, S, B]
	self = func(env R, v view, pos int, st S) Reply[E, S, B] {
		re := elem(env, v, pos, st)
		switch re.status {
		case statusOK:
			rt := self(env, v, re.pos, re.state)
			switch rt.status {
			case statusOK:
				return replyOK[E, S](f(re.value, rt.value), rt.pos, rt.state)
			case statusErr:
				return rt
			}
			// tail failed: retry end from the original position
		case statusErr:
			return replyErr[E, S, B](re.err)
		}
		return end(env, v, pos, st)
	}
	return self
}

// Delimited runs left, inner, right in sequence and keeps inner's value.
func Delimited[R, E, S, L, A, T any](left Parser[R, E, S, L], inner Parser[R, E, S, A], right Parser[R, E, S, T]) Parser[R, E, S, A] {
	return ThenSkip(Then(left, inner), right)
}
