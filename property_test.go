// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pars_test

import (
	"bytes"
	"encoding/binary"
	"strconv"
	"testing"
	"testing/quick"

	"code.hybscloud.com/pars"
)

func TestTakeSplitsInput(t *testing.T) {
	f := func(input []byte, n uint8) bool {
		k := int(n)
		r := runBytes(take(k), input)
		if k > len(input) {
			return r.Failed()
		}
		v, _, rest, ok := r.OK()
		if !ok {
			return false
		}
		return bytes.Equal(v, input[:k]) && bytes.Equal(rest, input[k:])
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestBytesAcceptsItsOwnLiteral(t *testing.T) {
	f := func(lit, tail []byte) bool {
		if len(lit) == 0 {
			return true
		}
		p := pars.Bytes[unit, string, unit](lit)
		input := append(append([]byte{}, lit...), tail...)
		_, _, rest, ok := runBytes(p, input).OK()
		return ok && bytes.Equal(rest, tail)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestReadIntRoundTrip(t *testing.T) {
	f := func(n uint32) bool {
		s := strconv.FormatUint(uint64(n), 10)
		v, _, rest, ok := runText(readInt(), s).OK()
		return ok && v == int(n) && len(rest) == 0
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestWordRoundTrip(t *testing.T) {
	be := func(n uint64) bool {
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], n)
		v, _, _, ok := runBytes(pars.AnyWord64BE[unit, string, unit](), buf[:]).OK()
		return ok && v == n
	}
	le := func(n uint64) bool {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], n)
		v, _, _, ok := runBytes(pars.AnyWord64LE[unit, string, unit](), buf[:]).OK()
		return ok && v == n
	}
	if err := quick.Check(be, nil); err != nil {
		t.Fatal(err)
	}
	if err := quick.Check(le, nil); err != nil {
		t.Fatal(err)
	}
}

func TestAnyCharConsumedBytesReencode(t *testing.T) {
	f := func(s string) bool {
		r := runText(pars.ByteStringOf(pars.SkipMany(anyChar())), s)
		v, _, rest, ok := r.OK()
		if !ok {
			return false
		}
		// quick generates arbitrary (possibly invalid) UTF-8; the
		// decoder stops at the first byte it cannot decode
		return string(v)+string(rest) == s
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}
