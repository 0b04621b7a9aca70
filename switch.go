// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pars

import "strconv"

// Case binds one literal alternative to its handler parser.
type Case[R, E, S, A any] struct {
	Lit string
	P   Parser[R, E, S, A]
}

// trieNode is one node of the compile-time dispatch trie. The trie is
// built once per Switch call and consumed to generate closure code;
// nothing walks it at parse time.
//
// need is the minimum number of additional bytes that must be present
// below this node before the nearest reachable terminal can complete.
// A single hoisted length check for need covers the whole straight-line
// run down to that terminal.
type trieNode struct {
	children map[byte]*trieNode
	term     int // matched case index, -1 if none
	need     int
}

// buildTrie inserts every literal into a byte trie. Duplicate and empty
// literals are construction errors.
func buildTrie(lits []string) *trieNode {
	root := &trieNode{term: -1}
	for i, lit := range lits {
		if lit == "" {
			panic("pars: empty switch literal")
		}
		n := root
		for j := 0; j < len(lit); j++ {
			b := lit[j]
			if n.children == nil {
				n.children = make(map[byte]*trieNode)
			}
			child := n.children[b]
			if child == nil {
				child = &trieNode{term: -1}
				n.children[b] = child
			}
			n = child
		}
		if n.term >= 0 {
			panic("pars: duplicate switch literal " + strconv.Quote(lit))
		}
		n.term = i
	}
	return root
}

// annotate computes need bottom-up. A terminal child counts as distance
// 1 regardless of what hangs below it: reaching a terminal is always a
// valid stopping point, so the hoisted check must never demand more.
func annotate(n *trieNode) {
	min := -1
	for _, c := range n.children {
		annotate(c)
		r := 0
		if c.term < 0 {
			r = c.need
		}
		if d := 1 + r; min < 0 || d < min {
			min = d
		}
	}
	if min < 0 {
		min = 0
	}
	n.need = min
}

// fallback identifies where to retreat when matching cannot proceed:
// the handler of the longest literal already fully matched, and the
// depth at which it ended. depth minus that is the rewind amount for
// bytes consumed speculatively past it.
type fallback struct {
	caseIdx int // -1: no literal matched yet
	depth   int
}

// switchCompiler turns the annotated trie into nested combinator
// closures: Branch over a hoisted Ensure, word-scan path segments, and
// dense 256-entry dispatch tables.
type switchCompiler[R, E, S, A any] struct {
	handlers []Parser[R, E, S, A]
	dflt     Parser[R, E, S, A] // nil: total mismatch is a failure
}

// miss builds the parser run when matching cannot proceed at depth
// bytes past the switch entry. The cursor is rewound to the fallback
// literal's end, or all the way to the entry for the default handler.
// With neither, the miss is a failure, which by construction leaves
// zero net consumption.
func (c *switchCompiler[R, E, S, A]) miss(fb fallback, depth int) Parser[R, E, S, A] {
	if fb.caseIdx >= 0 {
		h := c.handlers[fb.caseIdx]
		back := depth - fb.depth
		if back == 0 {
			return h
		}
		return func(env R, v view, pos int, st S) Reply[E, S, A] {
			return h(env, v, pos-back, st)
		}
	}
	if c.dflt != nil {
		d := c.dflt
		back := depth
		if back == 0 {
			return d
		}
		return func(env R, v view, pos int, st S) Reply[E, S, A] {
			return d(env, v, pos-back, st)
		}
	}
	return Empty[R, E, S, A]()
}

// collectSegment gathers the maximal straight-line run of bytes shared
// by all literals reachable from n: single-child nodes with no terminal
// in between. Returns the run and the node it ends at.
func collectSegment(n *trieNode) ([]byte, *trieNode) {
	var seg []byte
	cur := n
	for len(cur.children) == 1 {
		var b byte
		var child *trieNode
		for k, c := range cur.children {
			b, child = k, c
		}
		seg = append(seg, b)
		cur = child
		if cur.term >= 0 {
			break
		}
	}
	return seg, cur
}

// compile emits the parser for the subtree at n. depth is bytes
// consumed since the switch entry, guaranteed is how many further bytes
// the nearest dominating check has already verified present.
func (c *switchCompiler[R, E, S, A]) compile(n *trieNode, depth, guaranteed int, fb fallback) Parser[R, E, S, A] {
	if n.term >= 0 {
		fb = fallback{caseIdx: n.term, depth: depth}
		if len(n.children) == 0 {
			return c.handlers[n.term]
		}
	}
	if n.need > guaranteed {
		// Hoisted check: one Ensure covers the run to the nearest
		// terminal. Short input retreats to the fallback immediately.
		then := c.match(n, depth, n.need, fb)
		return Branch(Ensure[R, E, S](n.need), then, c.miss(fb, depth))
	}
	return c.match(n, depth, guaranteed, fb)
}

// match emits the unchecked matching step for n: a word-scan over a
// path segment, or a byte-indexed dispatch table. Length is already
// guaranteed by a dominating check.
func (c *switchCompiler[R, E, S, A]) match(n *trieNode, depth, guaranteed int, fb fallback) Parser[R, E, S, A] {
	if len(n.children) == 1 {
		seg, tail := collectSegment(n)
		k := len(seg)
		chunks := compileLit(seg)
		inner := c.compile(tail, depth+k, guaranteed-k, fb)
		missP := c.miss(fb, depth)
		return func(env R, v view, pos int, st S) Reply[E, S, A] {
			if !scanMatch(v.buf, pos, chunks) {
				return missP(env, v, pos, st)
			}
			return inner(env, v, pos+k, st)
		}
	}
	missP := c.miss(fb, depth+1)
	var table [256]Parser[R, E, S, A]
	for i := range table {
		table[i] = missP
	}
	for b, child := range n.children {
		table[b] = c.compile(child, depth+1, guaranteed-1, fb)
	}
	return func(env R, v view, pos int, st S) Reply[E, S, A] {
		return table[v.buf[pos]](env, v, pos+1, st)
	}
}

// Switch compiles a set of literal alternatives into a dispatch parser.
// Longest match wins: a literal that is a prefix of another yields to
// the longer one whenever the input allows it. A total mismatch fails
// with the cursor at the switch entry.
func Switch[R, E, S, A any](cases ...Case[R, E, S, A]) Parser[R, E, S, A] {
	return SwitchWith[R, E, S, A](nil, nil, cases...)
}

// SwitchWith is Switch with an optional post parser and an optional
// default handler; either may be nil. post runs after every matched
// literal, before its handler (it does not run before the default).
// The default runs with the cursor rewound to the switch entry, so it
// never sees partially consumed bytes; making it a separate argument
// keeps it after every literal case.
func SwitchWith[R, E, S, A any](post Parser[R, E, S, struct{}], dflt Parser[R, E, S, A], cases ...Case[R, E, S, A]) Parser[R, E, S, A] {
	if len(cases) == 0 {
		if dflt != nil {
			return dflt
		}
		return Empty[R, E, S, A]()
	}
	lits := make([]string, len(cases))
	handlers := make([]Parser[R, E, S, A], len(cases))
	for i, cs := range cases {
		lits[i] = cs.Lit
		if post != nil {
			handlers[i] = Then(post, cs.P)
		} else {
			handlers[i] = cs.P
		}
	}
	root := buildTrie(lits)
	annotate(root)
	c := &switchCompiler[R, E, S, A]{handlers: handlers, dflt: dflt}
	return c.compile(root, 0, 0, fallback{caseIdx: -1})
}
