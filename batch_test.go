// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pars_test

import (
	"fmt"
	"testing"

	"code.hybscloud.com/pars"
)

// kvLine parses "key=int" and errors on a malformed value.
func kvLine() parser[int] {
	val := pars.Cut(readInt(), "bad value")
	return pars.ThenSkip(pars.Then(pars.SkipSome(pars.SatisfyASCII[unit, string, unit](func(b byte) bool {
		return 'a' <= b && b <= 'z'
	})), pars.Then(str("="), val)), eof())
}

func TestRunBatchEmpty(t *testing.T) {
	rs := pars.RunBatch(kvLine(), unit{}, unit{}, nil, 4)
	if len(rs) != 0 {
		t.Fatalf("got %d results", len(rs))
	}
}

func TestRunBatchSequentialPath(t *testing.T) {
	inputs := [][]byte{[]byte("a=1"), []byte("b=2")}
	rs := pars.RunBatch(kvLine(), unit{}, unit{}, inputs, 1)
	for i, r := range rs {
		v, _, _, ok := r.OK()
		if !ok || v != i+1 {
			t.Fatalf("result %d: got %d ok=%v", i, v, ok)
		}
	}
}

func TestRunBatchMatchesRun(t *testing.T) {
	skipRace(t)
	inputs := make([][]byte, 257)
	for i := range inputs {
		switch i % 3 {
		case 0:
			inputs[i] = []byte(fmt.Sprintf("key%d=%d", i, i))
		case 1:
			inputs[i] = []byte("novalue") // parse failure
		default:
			inputs[i] = []byte("key=x") // parse error
		}
	}
	rs := pars.RunBatch(kvLine(), unit{}, unit{}, inputs, 4)
	if len(rs) != len(inputs) {
		t.Fatalf("got %d results, want %d", len(rs), len(inputs))
	}
	for i, r := range rs {
		want := pars.Run(kvLine(), unit{}, unit{}, inputs[i])
		switch i % 3 {
		case 0:
			v, _, _, ok := r.OK()
			wv, _, _, _ := want.OK()
			if !ok || v != wv {
				t.Fatalf("result %d: got %d ok=%v, want %d", i, v, ok, wv)
			}
		case 1:
			if !r.Failed() || !want.Failed() {
				t.Fatalf("result %d: Failed=%v want failure", i, r.Failed())
			}
		default:
			e, isErr := r.Err()
			if !isErr || e != "bad value" {
				t.Fatalf("result %d: err %q isErr=%v", i, e, isErr)
			}
		}
	}
}

func TestRunBatchMoreWorkersThanInputs(t *testing.T) {
	skipRace(t)
	inputs := [][]byte{[]byte("a=1"), []byte("b=2"), []byte("c=3")}
	rs := pars.RunBatch(kvLine(), unit{}, unit{}, inputs, 64)
	for i, r := range rs {
		v, _, _, ok := r.OK()
		if !ok || v != i+1 {
			t.Fatalf("result %d: got %d ok=%v", i, v, ok)
		}
	}
}
