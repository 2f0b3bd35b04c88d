package translator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akanlabs/twi-translator/internal/diag"
	"github.com/akanlabs/twi-translator/internal/engine"
	"github.com/akanlabs/twi-translator/internal/grammar"
)

var testWords = map[string]string{
	"love":   "dɔ",
	"good":   "papa",
	"dogs":   "nkraman",
	"market": "dwam",
	"going":  "kɔ",
	"to":     "",
	"the":    "",
	"hate":   "tan",
}

var testPhrases = map[string]string{
	"how are you":       "wo ho te sɛn",
	"what is your name": "wo din de sɛn",
}

func newTranslator(t *testing.T, rec *diag.Recorder, sentences ...string) *Translator {
	t.Helper()
	base, err := grammar.Parse(grammar.BaseEnglish)
	require.NoError(t, err)
	tr, err := New(base, EnglishToTwiRules, sentences, testWords, testPhrases, rec)
	require.NoError(t, err)
	return tr
}

func TestTranslatePhraseShortCircuit(t *testing.T) {
	tr := newTranslator(t, nil, "How are you")

	out := tr.Translate([]string{"How are you"})
	require.Len(t, out, 1)
	// Phrase hits are returned verbatim, no grammar pass, no touch-ups.
	assert.Equal(t, "wo ho te sɛn", out[0])
}

func TestTranslateGrammarPath(t *testing.T) {
	tr := newTranslator(t, nil, "I love good dogs")

	out := tr.Translate([]string{"I love good dogs"})
	require.Len(t, out, 1)
	assert.Equal(t, "Me dɔ nkraman papa", out[0])
}

func TestTranslateMultiWordNameResolvesToItself(t *testing.T) {
	tr := newTranslator(t, nil, "Kofi ne Kwame are going to Accra")

	out := tr.Translate([]string{"Kofi ne Kwame are going to Accra"})
	require.Len(t, out, 1)
	assert.Equal(t, "Kofi ne Kwame kɔ Accra", out[0])
}

func TestTranslateFallbackOnNoParse(t *testing.T) {
	rec := diag.New()
	sentence := "I really love dogs quite much"
	tr := newTranslator(t, rec, sentence)

	out := tr.Translate([]string{sentence})
	require.Len(t, out, 1)
	// Word-by-word: known words translated, unknown tokens pass through.
	assert.Equal(t, "Me really dɔ nkraman quite much", out[0])
	assert.Contains(t, rec.String(), "falling back")
}

func TestTranslateNeverReturnsEmpty(t *testing.T) {
	tr := newTranslator(t, nil, "xyzzy")

	out := tr.Translate([]string{"xyzzy"})
	require.Len(t, out, 1)
	assert.NotEmpty(t, out[0])
}

func TestConstructorDoesNotMutateCallerDictionary(t *testing.T) {
	words := map[string]string{"love": "dɔ"}
	base, err := grammar.Parse(grammar.BaseEnglish)
	require.NoError(t, err)

	_, err = New(base, EnglishToTwiRules, []string{"Kofi ne Kwame left"}, words, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"love": "dɔ"}, words)
}

func TestConstructorFailsOnBrokenTemplate(t *testing.T) {
	g, err := grammar.Parse("S -> 'a'")
	require.NoError(t, err)

	_, err = New(g, EnglishToTwiRules, []string{"Kofi"}, nil, nil, nil)
	assert.ErrorIs(t, err, grammar.ErrNoProperNounProduction)
}

type failingEngine struct{}

func (failingEngine) Translate(string) (string, error) {
	return "", errors.New("boom")
}

func TestTranslateSwallowsAnyEngineError(t *testing.T) {
	rec := diag.New()
	tr := &Translator{
		engine:  failingEngine{},
		words:   testWords,
		phrases: testPhrases,
		rec:     rec,
	}

	out := tr.Translate([]string{"I love dogs"})
	require.Len(t, out, 1)
	assert.Equal(t, "Me dɔ nkraman", out[0])
	assert.Contains(t, rec.String(), "boom")
}

func TestPostProcessPronounAndCapitalization(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "leading I", in: "I dɔ nkraman", want: "Me dɔ nkraman"},
		{name: "trailing I", in: "nkraman dɔ I", want: "Nkraman dɔ Me"},
		{name: "stray lowercase i", in: "i kɔ dwam", want: "Me kɔ dwam"},
		{name: "I inside word untouched", in: "Island dɔ", want: "Island dɔ"},
		{name: "capitalizes first letter", in: "wo ho te sɛn", want: "Wo ho te sɛn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, postProcess(tt.in))
		})
	}
}

// Guard: the wrapper's engine field accepts any implementation of the
// boundary, not just the in-repo one.
var _ Engine = (*engine.Engine)(nil)
