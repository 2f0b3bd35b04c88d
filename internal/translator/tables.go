package translator

// EnglishToTwiRules is the fixed production transform table: each English
// grammar production maps to its Twi equivalent. Twi puts adjectives after
// nouns, drops articles and the auxiliary "to be", and fronts the pronoun in
// questions.
var EnglishToTwiRules = map[string]string{
	"NP -> JJ NN":       "NP -> NN JJ",
	"NP -> DET JJ NN":   "NP -> NN JJ",
	"DET -> 'the'":      "DET -> ''",
	"DET -> 'a'":        "DET -> ''",
	"DET -> 'at'":       "DET -> ''",
	"QP -> WP AUX PRP":  "QP -> PRP WP",
	"QP -> WP V PRP NN": "QP -> PRP NN V WP",
	"VP -> AUX V PP":    "VP -> V PP",
	"VP -> AUX V":       "VP -> V",
	"AUX -> 'am'":       "AUX -> ''",
	"AUX -> 'is'":       "AUX -> ''",
	"AUX -> 'are'":      "AUX -> ''",
}
