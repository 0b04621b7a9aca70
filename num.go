// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pars

import (
	"encoding/binary"
	"math/big"
)

// Fixed-width readers. Each requires exactly its width in bytes and
// fails otherwise. Plain variants read the host representation;
// LE variants are identity on a little-endian host, BE variants
// byte-swap after the load. Signed variants reinterpret the unsigned
// read as two's complement.

// AnyWord8 reads one unsigned byte.
func AnyWord8[R, E, S any]() Parser[R, E, S, uint8] {
	return func(_ R, v view, pos int, st S) Reply[E, S, uint8] {
		if pos >= v.end {
			return replyFail[E, S, uint8]()
		}
		return replyOK[E, S](v.buf[pos], pos+1, st)
	}
}

// AnyInt8 reads one signed byte.
func AnyInt8[R, E, S any]() Parser[R, E, S, int8] {
	return func(_ R, v view, pos int, st S) Reply[E, S, int8] {
		if pos >= v.end {
			return replyFail[E, S, int8]()
		}
		return replyOK[E, S](int8(v.buf[pos]), pos+1, st)
	}
}

// AnyWord16 reads a host-endian uint16.
func AnyWord16[R, E, S any]() Parser[R, E, S, uint16] {
	return func(_ R, v view, pos int, st S) Reply[E, S, uint16] {
		if pos+2 > v.end {
			return replyFail[E, S, uint16]()
		}
		return replyOK[E, S](binary.NativeEndian.Uint16(v.buf[pos:]), pos+2, st)
	}
}

// AnyWord16LE reads a little-endian uint16.
func AnyWord16LE[R, E, S any]() Parser[R, E, S, uint16] {
	return func(_ R, v view, pos int, st S) Reply[E, S, uint16] {
		if pos+2 > v.end {
			return replyFail[E, S, uint16]()
		}
		return replyOK[E, S](binary.LittleEndian.Uint16(v.buf[pos:]), pos+2, st)
	}
}

// AnyWord16BE reads a big-endian uint16.
func AnyWord16BE[R, E, S any]() Parser[R, E, S, uint16] {
	return func(_ R, v view, pos int, st S) Reply[E, S, uint16] {
		if pos+2 > v.end {
			return replyFail[E, S, uint16]()
		}
		return replyOK[E, S](binary.BigEndian.Uint16(v.buf[pos:]), pos+2, st)
	}
}

// AnyInt16 reads a host-endian int16.
func AnyInt16[R, E, S any]() Parser[R, E, S, int16] {
	return Map(AnyWord16[R, E, S](), func(u uint16) int16 { return int16(u) })
}

// AnyInt16LE reads a little-endian int16.
func AnyInt16LE[R, E, S any]() Parser[R, E, S, int16] {
	return Map(AnyWord16LE[R, E, S](), func(u uint16) int16 { return int16(u) })
}

// AnyInt16BE reads a big-endian int16.
func AnyInt16BE[R, E, S any]() Parser[R, E, S, int16] {
	return Map(AnyWord16BE[R, E, S](), func(u uint16) int16 { return int16(u) })
}

// AnyWord32 reads a host-endian uint32.
func AnyWord32[R, E, S any]() Parser[R, E, S, uint32] {
	return func(_ R, v view, pos int, st S) Reply[E, S, uint32] {
		if pos+4 > v.end {
			return replyFail[E, S, uint32]()
		}
		return replyOK[E, S](binary.NativeEndian.Uint32(v.buf[pos:]), pos+4, st)
	}
}

// AnyWord32LE reads a little-endian uint32.
func AnyWord32LE[R, E, S any]() Parser[R, E, S, uint32] {
	return func(_ R, v view, pos int, st S) Reply[E, S, uint32] {
		if pos+4 > v.end {
			return replyFail[E, S, uint32]()
		}
		return replyOK[E, S](binary.LittleEndian.Uint32(v.buf[pos:]), pos+4, st)
	}
}

// AnyWord32BE reads a big-endian uint32.
func AnyWord32BE[R, E, S any]() Parser[R, E, S, uint32] {
	return func(_ R, v view, pos int, st S) Reply[E, S, uint32] {
		if pos+4 > v.end {
			return replyFail[E, S, uint32]()
		}
		return replyOK[E, S](binary.BigEndian.Uint32(v.buf[pos:]), pos+4, st)
	}
}

// AnyInt32 reads a host-endian int32.
func AnyInt32[R, E, S any]() Parser[R, E, S, int32] {
	return Map(AnyWord32[R, E, S](), func(u uint32) int32 { return int32(u) })
}

// AnyInt32LE reads a little-endian int32.
func AnyInt32LE[R, E, S any]() Parser[R, E, S, int32] {
	return Map(AnyWord32LE[R, E, S](), func(u uint32) int32 { return int32(u) })
}

// AnyInt32BE reads a big-endian int32.
func AnyInt32BE[R, E, S any]() Parser[R, E, S, int32] {
	return Map(AnyWord32BE[R, E, S](), func(u uint32) int32 { return int32(u) })
}

// AnyWord64 reads a host-endian uint64.
func AnyWord64[R, E, S any]() Parser[R, E, S, uint64] {
	return func(_ R, v view, pos int, st S) Reply[E, S, uint64] {
		if pos+8 > v.end {
			return replyFail[E, S, uint64]()
		}
		return replyOK[E, S](binary.NativeEndian.Uint64(v.buf[pos:]), pos+8, st)
	}
}

// AnyWord64LE reads a little-endian uint64.
func AnyWord64LE[R, E, S any]() Parser[R, E, S, uint64] {
	return func(_ R, v view, pos int, st S) Reply[E, S, uint64] {
		if pos+8 > v.end {
			return replyFail[E, S, uint64]()
		}
		return replyOK[E, S](binary.LittleEndian.Uint64(v.buf[pos:]), pos+8, st)
	}
}

// AnyWord64BE reads a big-endian uint64.
func AnyWord64BE[R, E, S any]() Parser[R, E, S, uint64] {
	return func(_ R, v view, pos int, st S) Reply[E, S, uint64] {
		if pos+8 > v.end {
			return replyFail[E, S, uint64]()
		}
		return replyOK[E, S](binary.BigEndian.Uint64(v.buf[pos:]), pos+8, st)
	}
}

// AnyInt64 reads a host-endian int64.
func AnyInt64[R, E, S any]() Parser[R, E, S, int64] {
	return Map(AnyWord64[R, E, S](), func(u uint64) int64 { return int64(u) })
}

// AnyInt64LE reads a little-endian int64.
func AnyInt64LE[R, E, S any]() Parser[R, E, S, int64] {
	return Map(AnyWord64LE[R, E, S](), func(u uint64) int64 { return int64(u) })
}

// AnyInt64BE reads a big-endian int64.
func AnyInt64BE[R, E, S any]() Parser[R, E, S, int64] {
	return Map(AnyWord64BE[R, E, S](), func(u uint64) int64 { return int64(u) })
}

// ReadInt consumes a maximal non-empty run of ASCII digits into a
// machine int, failing on zero digits. Overflow wraps silently; use
// ReadInteger when the magnitude is unbounded.
func ReadInt[R, E, S any]() Parser[R, E, S, int] {
	return func(_ R, v view, pos int, st S) Reply[E, S, int] {
		p := pos
		var n int
		for p < v.end {
			c := v.buf[p]
			if c < '0' || c > '9' {
				break
			}
			n = n*10 + int(c-'0')
			p++
		}
		if p == pos {
			return replyFail[E, S, int]()
		}
		return replyOK[E, S](n, p, st)
	}
}

// ReadInteger consumes a maximal non-empty run of ASCII digits into an
// arbitrary-precision integer, failing on zero digits.
func ReadInteger[R, E, S any]() Parser[R, E, S, *big.Int] {
	return func(_ R, v view, pos int, st S) Reply[E, S, *big.Int] {
		p := pos
		for p < v.end && v.buf[p] >= '0' && v.buf[p] <= '9' {
			p++
		}
		if p == pos {
			return replyFail[E, S, *big.Int]()
		}
		z, ok := new(big.Int).SetString(bytesString(v.buf[pos:p]), 10)
		if !ok {
			return replyFail[E, S, *big.Int]()
		}
		return replyOK[E, S](z, p, st)
	}
}
