package grammar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleNames(t *testing.T) {
	tests := []struct {
		name      string
		sentences []string
		want      []string
	}{
		{
			name:      "capitalized tokens minus stoplist",
			sentences: []string{"I work at Google"},
			want:      []string{"Google"},
		},
		{
			name:      "sorted and deduplicated",
			sentences: []string{"Kofi met Ama", "Ama visited Kofi"},
			want:      []string{"Ama", "Kofi"},
		},
		{
			name:      "stoplist covers sentence starters",
			sentences: []string{"The dog is good", "A dog", "An apple", "I love dogs"},
			want:      []string{},
		},
		{
			name:      "no capitalized tokens",
			sentences: []string{"how are you"},
			want:      []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SingleNames(tt.sentences))
		})
	}
}

func TestMultiWordNames(t *testing.T) {
	runs := MultiWordNames([]string{"Kofi ne Kwame are going to Accra"})
	assert.Equal(t, [][]string{{"Kofi", "ne", "Kwame"}}, runs)

	runs = MultiWordNames([]string{"Bank of Ghana met Kofi Annan"})
	assert.Equal(t, [][]string{
		{"Bank", "of", "Ghana"},
		{"Kofi", "Annan"},
	}, runs)

	assert.Empty(t, MultiWordNames([]string{"Accra is far"}))
}

func TestExtendProperNounsSingle(t *testing.T) {
	base, err := Parse(BaseEnglish)
	require.NoError(t, err)

	extended, err := ExtendProperNouns(base, []string{"I work at Google"})
	require.NoError(t, err)

	propn := extended.Production(ProperNounName)
	require.NotNil(t, propn)
	assert.Equal(t, [][]Symbol{{Terminal("Google")}}, propn.Alternatives)

	// The template itself is untouched.
	assert.Equal(t, [][]Symbol{{NonTerminal("ANY_WORD")}},
		base.Production(ProperNounName).Alternatives)
}

func TestExtendProperNounsMultiWordRun(t *testing.T) {
	base, err := Parse(BaseEnglish)
	require.NoError(t, err)

	extended, err := ExtendProperNouns(base, []string{"Kofi ne Kwame are going to Accra"})
	require.NoError(t, err)

	propn := extended.Production(ProperNounName)
	require.NotNil(t, propn)
	assert.Equal(t, [][]Symbol{
		{Terminal("Accra")},
		{Terminal("Kofi")},
		{Terminal("Kwame")},
		{NonTerminal("MWP_0")},
	}, propn.Alternatives)

	mwp := extended.Production("MWP_0")
	require.NotNil(t, mwp)
	assert.Equal(t, [][]Symbol{
		{Terminal("Kofi"), Terminal("ne"), Terminal("Kwame")},
	}, mwp.Alternatives)
}

func TestExtendProperNounsIdempotent(t *testing.T) {
	base, err := Parse(BaseEnglish)
	require.NoError(t, err)

	sentences := []string{"Kofi ne Kwame visited Accra ne Kumasi"}
	first, err := ExtendProperNouns(base, sentences)
	require.NoError(t, err)
	second, err := ExtendProperNouns(base, sentences)
	require.NoError(t, err)

	assert.Equal(t, first.String(), second.String())
}

func TestExtendProperNounsMissingProduction(t *testing.T) {
	g, err := Parse("S -> NP\nNP -> 'dog'")
	require.NoError(t, err)

	_, err = ExtendProperNouns(g, []string{"Kofi"})
	assert.ErrorIs(t, err, ErrNoProperNounProduction)
}

func TestExtendProperNounsEmptySentence(t *testing.T) {
	base, err := Parse(BaseEnglish)
	require.NoError(t, err)

	extended, err := ExtendProperNouns(base, []string{"how are you"})
	require.NoError(t, err)

	// No names: PROPN ends up with no alternatives at all.
	assert.Empty(t, extended.Production(ProperNounName).Alternatives)
	assert.False(t, strings.Contains(extended.String(), "MWP_"))
}
