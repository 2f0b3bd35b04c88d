package engine

import (
	"fmt"
	"strings"

	"github.com/akanlabs/twi-translator/internal/grammar"
)

// parseRuleTable canonicalizes a source→target production table. Both sides
// must be single-alternative production text; keys are re-rendered so lookups
// do not depend on the table author's spacing.
func parseRuleTable(rules map[string]string) (map[string][]grammar.Symbol, error) {
	parsed := make(map[string][]grammar.Symbol, len(rules))
	for src, tgt := range rules {
		srcName, srcRHS, err := parseProduction(src)
		if err != nil {
			return nil, fmt.Errorf("transform rule source %q: %w", src, err)
		}
		_, tgtRHS, err := parseProduction(tgt)
		if err != nil {
			return nil, fmt.Errorf("transform rule target %q: %w", tgt, err)
		}
		parsed[renderProduction(srcName, srcRHS)] = tgtRHS
	}
	return parsed, nil
}

func parseProduction(text string) (string, []grammar.Symbol, error) {
	g, err := grammar.Parse(text)
	if err != nil {
		return "", nil, err
	}
	if len(g.Productions) != 1 || len(g.Productions[0].Alternatives) != 1 {
		return "", nil, fmt.Errorf("expected a single production with one alternative")
	}
	return g.Productions[0].Name, g.Productions[0].Alternatives[0], nil
}

func renderProduction(name string, rhs []grammar.Symbol) string {
	parts := make([]string, 0, len(rhs))
	for _, s := range rhs {
		parts = append(parts, s.String())
	}
	return name + " -> " + strings.Join(parts, " ")
}

// transform rewrites the tree top-down. A node whose production matches a
// rule-table key gets its children rebuilt per the target right-hand side:
// non-terminals are matched to children by name in order, quoted terminals
// are inserted literally (the empty terminal drops a word), and children the
// target never references are dropped.
func (e *Engine) transform(node *Node) {
	if node.Symbol.Terminal {
		return
	}

	if target, ok := e.rules[nodeProduction(node)]; ok {
		node.Children = rebuildChildren(node.Children, target)
	}
	for _, c := range node.Children {
		e.transform(c)
	}
}

func nodeProduction(node *Node) string {
	rhs := make([]grammar.Symbol, 0, len(node.Children))
	for _, c := range node.Children {
		rhs = append(rhs, c.Symbol)
	}
	return renderProduction(node.Symbol.Text, rhs)
}

func rebuildChildren(children []*Node, target []grammar.Symbol) []*Node {
	used := make([]bool, len(children))
	rebuilt := make([]*Node, 0, len(target))
	for _, sym := range target {
		if sym.Terminal {
			rebuilt = append(rebuilt, &Node{Symbol: sym})
			continue
		}
		for i, c := range children {
			if !used[i] && !c.Symbol.Terminal && c.Symbol.Text == sym.Text {
				used[i] = true
				rebuilt = append(rebuilt, c)
				break
			}
		}
	}
	return rebuilt
}
