// Package grammar holds the context-free grammar used for translation: a
// structured representation of the textual notation (one production per line,
// alternatives separated by "|", terminals single-quoted) and the extension
// step that registers proper nouns from the input sentence as grammar rules.
package grammar

import (
	"fmt"
	"strings"
)

// BaseEnglish is the base English grammar template. The PROPN production is a
// placeholder that ExtendProperNouns replaces per request with the names found
// in the input.
const BaseEnglish = `
S   -> NP VP | QP | PHRASE
NP  -> PRP | DET JJ NN | DET NN | JJ NN | NN | PROPN
VP  -> V NP | V PP | V NP PP | V | AUX V PP | AUX V
PP  -> P DET NN | P NN | P PROPN
QP  -> WP AUX PRP | WP V PRP NN
PHRASE -> WP AUX PRP
PRP -> 'I' | 'you' | 'me'
WP  -> 'how' | 'what' | 'where'
V   -> 'love' | 'hate' | 'going' | 'go' | 'is' | 'are' | 'loves' | 'met' | 'work' | 'visited'
AUX -> 'am' | 'is' | 'are' | 'do'
DET -> 'the' | 'a' | 'at'
P   -> 'to' | 'in' | 'on' | 'at'
JJ  -> 'good' | 'bad' | 'my' | 'your'
NN  -> 'dogs' | 'name' | 'market' | 'dog' | 'bank'
PROPN -> ANY_WORD
`

// ProperNounName is the production extended with proper-noun alternatives.
const ProperNounName = "PROPN"

// Symbol is one element of a production's right-hand side: either a terminal
// (a literal token) or a reference to another production.
type Symbol struct {
	Text     string
	Terminal bool
}

// Terminal returns a terminal symbol for the given token.
func Terminal(text string) Symbol {
	return Symbol{Text: text, Terminal: true}
}

// NonTerminal returns a reference to the production with the given name.
func NonTerminal(name string) Symbol {
	return Symbol{Text: name}
}

func (s Symbol) String() string {
	if s.Terminal {
		return "'" + s.Text + "'"
	}
	return s.Text
}

// Production is a named non-terminal with its alternatives.
type Production struct {
	Name         string
	Alternatives [][]Symbol
}

// Grammar is an ordered list of productions. The first production is the
// start symbol.
type Grammar struct {
	Productions []*Production

	byName map[string]*Production
}

// Parse reads the textual grammar notation. Repeated left-hand sides merge
// their alternatives into one production. Lines without "->" are an error.
func Parse(text string) (*Grammar, error) {
	g := &Grammar{byName: make(map[string]*Production)}

	for i, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		name, rhs, ok := strings.Cut(line, "->")
		if !ok {
			return nil, fmt.Errorf("grammar line %d: no \"->\" in %q", i+1, line)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("grammar line %d: empty production name", i+1)
		}

		var alternatives [][]Symbol
		for _, alt := range strings.Split(rhs, "|") {
			symbols, err := parseAlternative(alt)
			if err != nil {
				return nil, fmt.Errorf("grammar line %d: %w", i+1, err)
			}
			alternatives = append(alternatives, symbols)
		}

		if existing, ok := g.byName[name]; ok {
			existing.Alternatives = append(existing.Alternatives, alternatives...)
			continue
		}
		p := &Production{Name: name, Alternatives: alternatives}
		g.Productions = append(g.Productions, p)
		g.byName[name] = p
	}

	if len(g.Productions) == 0 {
		return nil, fmt.Errorf("grammar has no productions")
	}
	return g, nil
}

func parseAlternative(alt string) ([]Symbol, error) {
	symbols := make([]Symbol, 0, 4)
	for _, tok := range strings.Fields(alt) {
		if strings.HasPrefix(tok, "'") {
			if !strings.HasSuffix(tok, "'") || len(tok) < 2 {
				return nil, fmt.Errorf("unterminated terminal %q", tok)
			}
			symbols = append(symbols, Terminal(tok[1:len(tok)-1]))
			continue
		}
		symbols = append(symbols, NonTerminal(tok))
	}
	return symbols, nil
}

// Production returns the named production, or nil.
func (g *Grammar) Production(name string) *Production {
	return g.byName[name]
}

// Start returns the start symbol's name.
func (g *Grammar) Start() string {
	return g.Productions[0].Name
}

// String renders the grammar back into its textual notation, one production
// per line in definition order.
func (g *Grammar) String() string {
	var b strings.Builder
	for i, p := range g.Productions {
		if i > 0 {
			b.WriteByte('\n')
		}
		alts := make([]string, 0, len(p.Alternatives))
		for _, alt := range p.Alternatives {
			parts := make([]string, 0, len(alt))
			for _, s := range alt {
				parts = append(parts, s.String())
			}
			alts = append(alts, strings.Join(parts, " "))
		}
		b.WriteString(p.Name + " -> " + strings.Join(alts, " | "))
	}
	return b.String()
}

// Clone returns a deep copy, so extension never mutates the template.
func (g *Grammar) Clone() *Grammar {
	clone := &Grammar{
		Productions: make([]*Production, 0, len(g.Productions)),
		byName:      make(map[string]*Production, len(g.Productions)),
	}
	for _, p := range g.Productions {
		cp := &Production{Name: p.Name, Alternatives: make([][]Symbol, len(p.Alternatives))}
		for i, alt := range p.Alternatives {
			cp.Alternatives[i] = append([]Symbol(nil), alt...)
		}
		clone.Productions = append(clone.Productions, cp)
		clone.byName[cp.Name] = cp
	}
	return clone
}

func (g *Grammar) add(p *Production) {
	g.Productions = append(g.Productions, p)
	g.byName[p.Name] = p
}
