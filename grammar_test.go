// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pars_test

import (
	"testing"

	"code.hybscloud.com/pars"
)

// calcExpr builds a small infix calculator, end-to-end the way a client
// grammar composes the combinators: keyword dispatch via Switch, left
// folds via ChainL, recursion through a lazily resolved reference, and
// commit points via Cut.
func calcExpr() parser[int] {
	var expr parser[int]
	// resolved at parse time, after expr is assigned below
	lazy := pars.Bind(pure(unit{}), func(unit) parser[int] { return expr })

	lex := func(p parser[unit]) parser[unit] { return pars.ThenSkip(p, ws()) }
	num := pars.ThenSkip(readInt(), ws())

	factor := pars.Choice(
		num,
		pars.Then(lex(str("(")),
			pars.ThenSkip(lazy, pars.Cut(lex(str(")")), "missing closing paren"))),
	)

	mulOp := pars.Switch(
		pars.Case[unit, string, unit, func(int, int) int]{
			Lit: "*", P: pure(func(a, b int) int { return a * b }),
		},
		pars.Case[unit, string, unit, func(int, int) int]{
			Lit: "/", P: pure(func(a, b int) int { return a / b }),
		},
	)
	term := pars.ChainL(
		func(acc int, f func(int) int) int { return f(acc) },
		factor,
		pars.Bind(pars.ThenSkip(mulOp, ws()), func(op func(int, int) int) parser[func(int) int] {
			return pars.Map(factor, func(rhs int) func(int) int {
				return func(lhs int) int { return op(lhs, rhs) }
			})
		}),
	)

	addOp := pars.Switch(
		pars.Case[unit, string, unit, func(int, int) int]{
			Lit: "+", P: pure(func(a, b int) int { return a + b }),
		},
		pars.Case[unit, string, unit, func(int, int) int]{
			Lit: "-", P: pure(func(a, b int) int { return a - b }),
		},
	)
	expr = pars.ChainL(
		func(acc int, f func(int) int) int { return f(acc) },
		term,
		pars.Bind(pars.ThenSkip(addOp, ws()), func(op func(int, int) int) parser[func(int) int] {
			return pars.Map(term, func(rhs int) func(int) int {
				return func(lhs int) int { return op(lhs, rhs) }
			})
		}),
	)
	return pars.Then(ws(), pars.ThenSkip(expr, eof()))
}

func TestCalculator(t *testing.T) {
	p := calcExpr()
	for _, tc := range []struct {
		in   string
		want int
	}{
		{"1+2*3", 7},
		{"(1+2)*3", 9},
		{" 10 - 4 - 3 ", 3},
		{"100/5/2", 10},
		{"((((42))))", 42},
		{"2*3+4*5", 26},
	} {
		v, _ := mustOK(t, runText(p, tc.in))
		if v != tc.want {
			t.Fatalf("%q: got %d, want %d", tc.in, v, tc.want)
		}
	}
}

func TestCalculatorRejects(t *testing.T) {
	p := calcExpr()
	mustFail(t, runText(p, "1+2)"))
	mustFail(t, runText(p, "+1"))
	if e := mustErr(t, runText(p, "(1+2")); e != "missing closing paren" {
		t.Fatalf("error %q", e)
	}
}
