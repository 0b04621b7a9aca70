// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pars_test

import (
	"testing"

	"code.hybscloud.com/pars"
)

// unit is the placeholder environment/state used across the suite.
type unit = struct{}

// parser is the suite-wide instantiation: no environment, string
// errors, unit state.
type parser[A any] = pars.Parser[unit, string, unit, A]

// sparser threads an int state for state-discipline tests.
type sparser[A any] = pars.Parser[unit, string, int, A]

// eparser reads an int environment for Ask/Local tests.
type eparser[A any] = pars.Parser[int, string, unit, A]

func runText[A any](p parser[A], s string) pars.Result[string, unit, A] {
	return pars.RunText(p, unit{}, unit{}, s)
}

func runBytes[A any](p parser[A], b []byte) pars.Result[string, unit, A] {
	return pars.Run(p, unit{}, unit{}, b)
}

func runState[A any](p sparser[A], st int, s string) pars.Result[string, int, A] {
	return pars.RunText(p, unit{}, st, s)
}

func runEnv[A any](p eparser[A], env int, s string) pars.Result[string, unit, A] {
	return pars.RunText(p, env, unit{}, s)
}

// mustOK fails the test unless the run succeeded; returns the value and
// the remainder as a string.
func mustOK[A any](t *testing.T, r pars.Result[string, unit, A]) (A, string) {
	t.Helper()
	v, _, rest, ok := r.OK()
	if !ok {
		if e, isErr := r.Err(); isErr {
			t.Fatalf("run errored: %q", e)
		}
		t.Fatal("run failed, want success")
	}
	return v, string(rest)
}

// mustFail fails the test unless the run ended in a recoverable failure.
func mustFail[A any](t *testing.T, r pars.Result[string, unit, A]) {
	t.Helper()
	if e, isErr := r.Err(); isErr {
		t.Fatalf("run errored %q, want failure", e)
	}
	if !r.Failed() {
		t.Fatal("run succeeded, want failure")
	}
}

// mustErr fails the test unless the run raised an error; returns it.
func mustErr[A any](t *testing.T, r pars.Result[string, unit, A]) string {
	t.Helper()
	e, isErr := r.Err()
	if !isErr {
		t.Fatal("run did not error, want error")
	}
	return e
}

// mustPanic runs f and fails the test unless it panics.
func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("no panic, want panic")
		}
	}()
	f()
}

// Shorthand constructors for the suite-wide instantiation.

func pure[A any](a A) parser[A]       { return pars.Pure[unit, string, unit](a) }
func eof() parser[unit]               { return pars.EOF[unit, string, unit]() }
func take(n int) parser[[]byte]       { return pars.Take[unit, string, unit](n) }
func takeRest() parser[[]byte]        { return pars.TakeRest[unit, string, unit]() }
func str(s string) parser[unit]       { return pars.String[unit, string, unit](s) }
func chr(r rune) parser[unit]         { return pars.Char[unit, string, unit](r) }
func anyChar() parser[rune]           { return pars.AnyChar[unit, string, unit]() }
func readInt() parser[int]            { return pars.ReadInt[unit, string, unit]() }
func throw[A any](e string) parser[A] { return pars.Throw[unit, string, unit, A](e) }
func failp[A any]() parser[A]         { return pars.Empty[unit, string, unit, A]() }

// ws skips ASCII blanks; shared by switch and grammar tests.
func ws() parser[unit] {
	return pars.SkipMany(pars.SatisfyASCII[unit, string, unit](func(b byte) bool {
		return b == ' ' || b == '\t' || b == '\r' || b == '\n'
	}))
}
