// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pars

import (
	"code.hybscloud.com/kont"
)

// Iter runs a recursive parsing loop. step returns Left(nextAcc) to
// continue with the updated accumulator or Right(result) to finish.
// The loop is a trampoline on the calling frame: iterations cost no
// stack growth. A failure or error of any step ends the whole loop
// with that outcome.
func Iter[R, E, S, Acc, A any](initial Acc, step func(Acc) Parser[R, E, S, kont.Either[Acc, A]]) Parser[R, E, S, A] {
	return func(env R, v view, pos int, st S) Reply[E, S, A] {
		acc := initial
		for {
			r := step(acc)(env, v, pos, st)
			switch r.status {
			case statusOK:
				pos, st = r.pos, r.state
				if left, ok := r.value.GetLeft(); ok {
					acc = left
					continue
				}
				right, _ := r.value.GetRight()
				return replyOK[E, S](right, pos, st)
			case statusErr:
				return replyErr[E, S, A](r.err)
			default:
				return replyFail[E, S, A]()
			}
		}
	}
}
