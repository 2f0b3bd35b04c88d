// Package translator wraps the grammar-transformation engine with the
// behavior the application needs around it: a phrase-table short-circuit,
// pronoun and capitalization touch-ups on the output, and a word-by-word
// dictionary fallback when the sentence does not parse. Translate never
// fails; a sentence that defeats every path comes back as itself.
package translator

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/akanlabs/twi-translator/internal/diag"
	"github.com/akanlabs/twi-translator/internal/engine"
	"github.com/akanlabs/twi-translator/internal/grammar"
)

// Engine is the grammar-transformation collaborator: one sentence in, one
// translation out, or an error when the sentence has no derivation.
type Engine interface {
	Translate(sentence string) (string, error)
}

// Translator translates the sentences it was built for. Build a fresh one
// per request: construction specializes the grammar and the dictionary to the
// proper nouns of the input.
type Translator struct {
	engine  Engine
	words   map[string]string
	phrases map[string]string
	rec     *diag.Recorder
}

// New builds a Translator for the given sentences. The base grammar is
// extended with the sentences' proper nouns, and the word dictionary is
// copied and given identity mappings for each multi-word name so the engine's
// substitution step resolves names it has never seen. The caller's maps are
// never mutated.
func New(
	base *grammar.Grammar,
	rules map[string]string,
	sentences []string,
	words, phrases map[string]string,
	rec *diag.Recorder,
) (*Translator, error) {
	extended, err := grammar.ExtendProperNouns(base, sentences)
	if err != nil {
		return nil, err
	}

	dict := make(map[string]string, len(words)+4)
	for k, v := range words {
		dict[k] = v
	}
	for _, run := range grammar.MultiWordNames(sentences) {
		name := strings.Join(run, " ")
		if _, ok := dict[strings.ToLower(name)]; !ok {
			dict[strings.ToLower(name)] = name
		}
	}

	eng, err := engine.New(extended, rules, dict)
	if err != nil {
		return nil, err
	}

	rec.Printf("Extended grammar:\n%s\n", extended.String())

	return &Translator{
		engine:  eng,
		words:   dict,
		phrases: phrases,
		rec:     rec,
	}, nil
}

// Translate returns one output per input sentence. Outputs are never empty
// for non-empty input and no failure escapes: an unparsable sentence falls
// back to word-by-word substitution with unknown tokens passed through.
func (t *Translator) Translate(sentences []string) []string {
	out := make([]string, 0, len(sentences))
	for _, s := range sentences {
		if phrase, ok := t.phrases[strings.ToLower(s)]; ok {
			out = append(out, phrase)
			continue
		}

		raw, err := t.engine.Translate(s)
		if err != nil {
			t.rec.Printf("grammar translation failed for %q: %v", s, err)
			t.rec.Printf("falling back to word-by-word translation")
			raw = t.wordByWord(s)
		} else if raw == "" {
			raw = s
		}
		out = append(out, postProcess(raw))
	}
	return out
}

// wordByWord substitutes each token through the word map, then the phrase
// map; unknown tokens pass through unchanged.
func (t *Translator) wordByWord(sentence string) string {
	tokens := strings.Fields(sentence)
	for i, tok := range tokens {
		key := strings.ToLower(tok)
		if w, ok := t.words[key]; ok {
			tokens[i] = w
		} else if p, ok := t.phrases[key]; ok {
			tokens[i] = p
		}
	}
	return strings.Join(tokens, " ")
}

// postProcess rewrites standalone I (and stray lowercase i) to the Twi "Me"
// and capitalizes the first letter of the sentence.
func postProcess(s string) string {
	tokens := strings.Fields(s)
	for i, tok := range tokens {
		if tok == "I" || tok == "i" {
			tokens[i] = "Me"
		}
	}
	return capitalize(strings.Join(tokens, " "))
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
