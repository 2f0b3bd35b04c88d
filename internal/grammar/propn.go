package grammar

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrNoProperNounProduction means the template has no PROPN production to
// extend. The original silently passed the template through in that case;
// here it is treated as a broken template.
var ErrNoProperNounProduction = errors.New("grammar template has no PROPN production")

// ProperNounStoplist holds capitalized tokens that are never proper nouns
// (sentence-initial function words and the pronoun I).
var ProperNounStoplist = map[string]struct{}{
	"I":   {},
	"The": {},
	"A":   {},
	"An":  {},
}

// NameConnectors are the lowercase words allowed to join capitalized tokens
// into one multi-word name ("Kofi ne Kwame", "Bank of Ghana"). The list is a
// narrow heuristic inherited from the original dictionary data; revisit with a
// domain expert before widening it.
var NameConnectors = []string{"ne", "and", "of", "de", "bin"}

var capitalizedRun = regexp.MustCompile(
	`\b[A-Z][a-z]*(?:\s+(?:` + strings.Join(NameConnectors, "|") + `|[A-Z][a-z]*))*\b`)

// ExtendProperNouns returns a copy of g whose PROPN production is replaced
// with the proper nouns found in sentences: every capitalized token outside
// the stoplist becomes a quoted-terminal alternative, and every multi-word
// capitalized run becomes a numbered MWP_n production referenced from PROPN.
// Output is deterministic: alternatives are deduplicated and sorted, so
// extending the same sentences twice yields byte-identical grammar text.
func ExtendProperNouns(g *Grammar, sentences []string) (*Grammar, error) {
	extended := g.Clone()
	propn := extended.Production(ProperNounName)
	if propn == nil {
		return nil, ErrNoProperNounProduction
	}

	singles := SingleNames(sentences)
	multi := MultiWordNames(sentences)

	alternatives := make([][]Symbol, 0, len(singles)+len(multi))
	for _, name := range singles {
		alternatives = append(alternatives, []Symbol{Terminal(name)})
	}
	for j := range multi {
		alternatives = append(alternatives, []Symbol{NonTerminal(fmt.Sprintf("MWP_%d", j))})
	}
	propn.Alternatives = alternatives

	for j, run := range multi {
		rhs := make([]Symbol, 0, len(run))
		for _, tok := range run {
			rhs = append(rhs, Terminal(tok))
		}
		extended.add(&Production{
			Name:         fmt.Sprintf("MWP_%d", j),
			Alternatives: [][]Symbol{rhs},
		})
	}
	return extended, nil
}

// SingleNames returns the deduplicated, sorted capitalized tokens of the
// sentences, minus the stoplist.
func SingleNames(sentences []string) []string {
	seen := make(map[string]struct{})
	for _, s := range sentences {
		for _, w := range strings.Fields(s) {
			r, _ := utf8.DecodeRuneInString(w)
			if !unicode.IsUpper(r) {
				continue
			}
			if _, stop := ProperNounStoplist[w]; stop {
				continue
			}
			seen[w] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for w := range seen {
		names = append(names, w)
	}
	slices.Sort(names)
	return names
}

// MultiWordNames returns the deduplicated, sorted multi-token capitalized
// runs of the sentences, each run as its token sequence.
func MultiWordNames(sentences []string) [][]string {
	seen := make(map[string][]string)
	for _, s := range sentences {
		for _, m := range capitalizedRun.FindAllString(s, -1) {
			tokens := strings.Fields(m)
			if len(tokens) > 1 {
				seen[strings.Join(tokens, " ")] = tokens
			}
		}
	}
	runs := make([][]string, 0, len(seen))
	for _, tokens := range seen {
		runs = append(runs, tokens)
	}
	slices.SortFunc(runs, slices.Compare)
	return runs
}
