// Package engine is the grammar-transformation engine: it parses a sentence
// under a source context-free grammar, rewrites the parse tree through a
// source→target production mapping, and substitutes leaf words through a
// dictionary. Callers talk to it through a narrow boundary (grammar + rule
// table + dictionary in, one translated sentence out, or ErrNoParse), so it
// can be swapped for another engine without touching the rest of the system.
package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/akanlabs/twi-translator/internal/grammar"
)

// ErrNoParse means the sentence has no derivation under the grammar. The
// translation wrapper catches it and falls back to word-by-word substitution.
var ErrNoParse = errors.New("sentence does not parse under the grammar")

// Engine translates single sentences. Safe for concurrent use once built:
// all fields are read-only after New.
type Engine struct {
	grammar *grammar.Grammar
	rules   map[string][]grammar.Symbol
	dict    map[string]string
}

// New builds an engine from a grammar, a production transform table (source
// production text → target production text, e.g. "NP -> JJ NN": "NP -> NN JJ")
// and a source→target word dictionary keyed by lowercased source words.
// Malformed rule text is a construction error.
func New(g *grammar.Grammar, rules map[string]string, dict map[string]string) (*Engine, error) {
	parsed, err := parseRuleTable(rules)
	if err != nil {
		return nil, err
	}
	return &Engine{grammar: g, rules: parsed, dict: dict}, nil
}

// Translate parses the sentence, transforms the tree and substitutes words.
// Unknown words pass through unchanged; words mapped to the empty string are
// dropped. Returns ErrNoParse (wrapped) when no whole-sentence derivation
// exists.
func (e *Engine) Translate(sentence string) (string, error) {
	tokens := strings.Fields(sentence)
	if len(tokens) == 0 {
		return "", fmt.Errorf("%w: empty sentence", ErrNoParse)
	}

	tree := parse(e.grammar, tokens)
	if tree == nil {
		return "", fmt.Errorf("%w: %q", ErrNoParse, sentence)
	}

	e.transform(tree)

	words := make([]string, 0, len(tokens))
	for _, leaf := range tree.leaves() {
		word := leaf.Symbol.Text
		if target, ok := e.dict[strings.ToLower(word)]; ok {
			word = target
		}
		if word != "" {
			words = append(words, word)
		}
	}
	return strings.Join(words, " "), nil
}

// Node is one constituent of a parse tree. Leaves carry terminal symbols and
// no children.
type Node struct {
	Symbol   grammar.Symbol
	Children []*Node
}

func (n *Node) leaves() []*Node {
	if n.Symbol.Terminal {
		return []*Node{n}
	}
	var out []*Node
	for _, c := range n.Children {
		out = append(out, c.leaves()...)
	}
	return out
}

// parse returns the first whole-sentence derivation of tokens from the
// grammar's start symbol, in grammar order, or nil.
func parse(g *grammar.Grammar, tokens []string) *Node {
	p := &parser{
		g:      g,
		tokens: tokens,
		memo:   make(map[parseKey][]parseResult),
		active: make(map[parseKey]bool),
	}
	for _, r := range p.symbol(grammar.NonTerminal(g.Start()), 0) {
		if r.end == len(tokens) {
			return r.node
		}
	}
	return nil
}

type parseKey struct {
	name string
	pos  int
}

type parseResult struct {
	end  int
	node *Node
}

// parser is a memoized top-down parser. Left-recursive productions are cut
// off instead of looping; the grammars used here have none.
type parser struct {
	g      *grammar.Grammar
	tokens []string
	memo   map[parseKey][]parseResult
	active map[parseKey]bool
}

func (p *parser) symbol(sym grammar.Symbol, pos int) []parseResult {
	if sym.Terminal {
		if sym.Text == "" {
			return []parseResult{{end: pos, node: &Node{Symbol: sym}}}
		}
		if pos < len(p.tokens) && p.tokens[pos] == sym.Text {
			return []parseResult{{end: pos + 1, node: &Node{Symbol: sym}}}
		}
		return nil
	}

	key := parseKey{name: sym.Text, pos: pos}
	if cached, ok := p.memo[key]; ok {
		return cached
	}
	if p.active[key] {
		return nil
	}
	p.active[key] = true
	defer delete(p.active, key)

	prod := p.g.Production(sym.Text)
	if prod == nil {
		p.memo[key] = nil
		return nil
	}

	var results []parseResult
	for _, alt := range prod.Alternatives {
		for _, seq := range p.sequence(alt, pos) {
			results = append(results, parseResult{
				end:  seq.end,
				node: &Node{Symbol: sym, Children: seq.children},
			})
		}
	}
	p.memo[key] = results
	return results
}

type seqResult struct {
	end      int
	children []*Node
}

func (p *parser) sequence(symbols []grammar.Symbol, pos int) []seqResult {
	if len(symbols) == 0 {
		return []seqResult{{end: pos}}
	}
	var results []seqResult
	for _, first := range p.symbol(symbols[0], pos) {
		for _, rest := range p.sequence(symbols[1:], first.end) {
			children := make([]*Node, 0, len(rest.children)+1)
			children = append(children, first.node)
			children = append(children, rest.children...)
			results = append(results, seqResult{end: rest.end, children: children})
		}
	}
	return results
}
