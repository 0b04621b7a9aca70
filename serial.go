// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pars

import "code.hybscloud.com/atomix"

// Serial is a monotonically increasing run identifier. Each call to Run
// assigns the next serial value to the buffer view, and every Pos and
// Span produced during that run carries it.
type Serial = uint32

// counter is the global monotonic counter for run serials.
var counter atomix.Uint32

// nextSerial returns the next monotonically increasing serial.
// Serials start at 1; serial 0 is reserved for the EndPos sentinel.
func nextSerial() Serial {
	return counter.Add(1)
}
