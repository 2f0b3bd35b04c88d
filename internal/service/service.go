// Package service orchestrates one translation request end to end:
// validation, dictionary load, grammar extension, the wrapper call, and the
// diagnostics trace. Everything is rebuilt per request — the dictionary is
// reread from disk and the grammar is re-extended — so requests share no
// mutable state and the hosting server can run them concurrently.
package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/abadojack/whatlanggo"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/language"

	"github.com/akanlabs/twi-translator/internal/config"
	"github.com/akanlabs/twi-translator/internal/diag"
	"github.com/akanlabs/twi-translator/internal/dict"
	"github.com/akanlabs/twi-translator/internal/grammar"
	"github.com/akanlabs/twi-translator/internal/translator"
	"github.com/akanlabs/twi-translator/pkg/log"
)

// User-facing messages. These are data, not errors: TranslateOne never fails.
const (
	msgEmptyInput    = "Please enter a sentence."
	msgMultiSentence = "Error: Please enter only one sentence at a time."
	msgNoMatchFormat = "Note: '%s' doesn't fully match the grammar rules. Some words might not be translated."
	msgErrorFormat   = "Translation error: %v"
)

// Examples are the sentences offered by the UI.
var Examples = []string{
	"I love good dogs",
	"how are you",
	"what is your name",
	"I am going to the market",
	"Kofi ne Kwame are going to Accra",
	"I work at Google",
}

var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

// Result is one translation response. Diagnostics is empty unless the
// request asked for details.
type Result struct {
	Translation string `json:"translation"`
	Diagnostics string `json:"diagnostics,omitempty"`
}

// Service answers translation requests. Safe for concurrent use.
type Service struct {
	cfg   *config.Config
	group singleflight.Group
}

func New(cfg *config.Config) *Service {
	return &Service{cfg: cfg}
}

// TranslateOne translates a single English sentence to Twi. It always
// returns a Result; validation problems and internal failures come back as
// user-facing translation text. Identical concurrent requests are collapsed
// into one execution — safe because results are deterministic and all state
// is per-request.
func (s *Service) TranslateOne(ctx context.Context, sentence string, wantDiagnostics bool) Result {
	if strings.TrimSpace(sentence) == "" {
		return Result{Translation: msgEmptyInput}
	}
	if countSentences(sentence) > 1 {
		return Result{Translation: msgMultiSentence}
	}

	key := fmt.Sprintf("%s\x00%t", sentence, wantDiagnostics)
	v, _, _ := s.group.Do(key, func() (interface{}, error) {
		return s.translate(sentence, wantDiagnostics), nil
	})
	return v.(Result)
}

func countSentences(text string) int {
	n := 0
	for _, part := range sentenceBoundary.Split(text, -1) {
		if strings.TrimSpace(part) != "" {
			n++
		}
	}
	return n
}

func (s *Service) translate(sentence string, wantDiagnostics bool) Result {
	var rec *diag.Recorder
	if wantDiagnostics {
		rec = diag.New()
		rec.Printf("Language pair: %s -> %s",
			s.cfg.Translate.SourceLanguage, s.cfg.Translate.TargetLanguage)
		s.sniffLanguage(sentence, rec)
	}

	words, phrases := dict.Load(s.cfg.Dict.Path, rec)

	base, err := grammar.Parse(grammar.BaseEnglish)
	if err != nil {
		log.Error("base grammar does not parse: %v", err)
		return Result{Translation: fmt.Sprintf(msgErrorFormat, err), Diagnostics: rec.String()}
	}

	tr, err := translator.New(base, translator.EnglishToTwiRules, []string{sentence}, words, phrases, rec)
	if err != nil {
		// Only a broken grammar template or rule table lands here; that is a
		// configuration bug, not a property of the input.
		log.Error("translator construction failed: %v", err)
		return Result{Translation: fmt.Sprintf(msgErrorFormat, err), Diagnostics: rec.String()}
	}

	translation := tr.Translate([]string{sentence})[0]

	rec.Printf("\n=== TRANSLATION PROCESS ===")
	rec.Printf("Input: %s", sentence)
	rec.Printf("Output: %s", translation)
	recordEntriesUsed(rec, sentence, words, phrases)

	// A result that merely echoes the input means the grammar made no
	// progress; say so instead of returning the echo.
	if strings.EqualFold(translation, sentence) {
		if _, isPhrase := phrases[strings.ToLower(sentence)]; !isPhrase {
			translation = fmt.Sprintf(msgNoMatchFormat, sentence)
		}
	}

	return Result{Translation: translation, Diagnostics: rec.String()}
}

// sniffLanguage notes inputs that do not look English. Diagnostics only; the
// translation itself is attempted either way.
func (s *Service) sniffLanguage(sentence string, rec *diag.Recorder) {
	info := whatlanggo.Detect(sentence)
	iso := info.Lang.Iso6391()
	if !info.IsReliable() || iso == "" {
		return
	}
	tag, err := language.Parse(iso)
	if err != nil {
		return
	}
	if base, _ := tag.Base(); base.String() != "en" {
		rec.Printf("Note: input looks like %q rather than English; translation quality may suffer.", base)
	}
}

func recordEntriesUsed(rec *diag.Recorder, sentence string, words, phrases map[string]string) {
	if rec == nil {
		return
	}
	var used []string
	for _, tok := range strings.Fields(strings.ToLower(sentence)) {
		if twi, ok := words[tok]; ok {
			used = append(used, fmt.Sprintf("%s -> %s", tok, twi))
		} else if twi, ok := phrases[tok]; ok {
			used = append(used, fmt.Sprintf("%s -> %s (phrase)", tok, twi))
		}
	}
	if len(used) == 0 {
		return
	}
	rec.Printf("\nDictionary entries used:")
	for _, entry := range used {
		rec.Printf("  %s", entry)
	}
}
