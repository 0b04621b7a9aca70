// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pars provides high-performance byte-level parser combinators
// with zero-copy slicing and compiled multi-literal dispatch.
//
// A [Parser] is a pure function from (environment, buffer view, cursor,
// state) to a [Reply]. The whole input buffer is available up front;
// runs execute to completion on one goroutine with no suspension.
//
// # Architecture
//
//   - Buffer model: the input is referenced, never copied. Slices from
//     [Take], [TakeRest], [ByteStringOf] alias the input buffer, and
//     [Pos]/[Span] values are serial-tagged offsets valid only within
//     the run that produced them.
//   - Outcomes: success, recoverable failure, and unrecoverable error,
//     folded into one value-returned [Reply] with no allocation per
//     step. [Alt] backtracks failures only; errors propagate past every
//     alternative unless demoted by [Try].
//   - Environment and state: a read-only environment ([Ask], [Local])
//     and a single threaded state ([Get], [Put], [Modify]) travel by
//     value through every step, so a failing branch can never leak
//     state into its sibling.
//   - Batch execution: [RunBatch] parses independent buffers on a fixed
//     worker pool over bounded SPSC queues via [code.hybscloud.com/lfq],
//     waiting past backpressure with [code.hybscloud.com/iox] backoff.
//
// # Combinators
//
//   - Sequencing: [Pure], [Bind], [Map], [Then], [ThenSkip], [Void],
//     [Delimited].
//   - Choice: [Alt], [Choice], [Branch], [Option].
//   - Commit points: [Throw], [Try], [Cut], [Cutting].
//   - Lookahead: [Lookahead], [Fails], [NotFollowedBy].
//   - Repetition: [Many], [SkipMany], [Some], [SkipSome], [ChainL],
//     [ChainR], [Iter] (loop via [code.hybscloud.com/kont.Either]).
//   - Scoping: [Isolate], [InSpan], [SpanOf], [WithSpan],
//     [ByteStringOf], [WithByteString], [UnsafeSpanToByteString].
//
// # Switch Compilation
//
// [Switch] and [SwitchWith] compile a fixed set of string literals into
// a dispatch parser ahead of parse time: a byte trie with straight-line
// path segments compared as host-endian words, one hoisted length check
// per run, dense byte-indexed dispatch tables, and longest-match
// resolution with the cursor retreating to the end of the longest fully
// matched literal. The trie exists only during compilation; at parse
// time the dispatch runs as ordinary combinator closures.
//
// # Example
//
//	ws := pars.SkipMany(pars.SatisfyASCII[struct{}, string, struct{}](func(b byte) bool {
//		return b == ' ' || b == '\t' || b == '\n'
//	}))
//	kw := pars.SwitchWith(ws, nil,
//		pars.Case[struct{}, string, struct{}, string]{Lit: "let", P: pars.Pure[struct{}, string, struct{}]("let")},
//		pars.Case[struct{}, string, struct{}, string]{Lit: "letrec", P: pars.Pure[struct{}, string, struct{}]("letrec")},
//	)
//	value, _, rest, ok := pars.RunText(kw, struct{}{}, struct{}{}, "letrec x").OK()
//	// ok == true, value == "letrec", string(rest) == "x"
package pars
