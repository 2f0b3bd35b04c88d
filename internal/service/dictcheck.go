package service

import (
	"github.com/akanlabs/twi-translator/internal/diag"
	"github.com/akanlabs/twi-translator/internal/dict"
	"github.com/akanlabs/twi-translator/pkg/log"
)

// CheckDictionary loads the dictionary once and logs what it found. The
// serve command schedules this on a cron when DICT_CHECK_CRON is set, so a
// deleted or truncated dictionary file shows up in the logs before users
// notice untranslated words. It never caches anything: requests keep reading
// the file themselves.
func (s *Service) CheckDictionary() {
	rec := diag.New()
	words, phrases := dict.Load(s.cfg.Dict.Path, rec)
	if warnings := rec.String(); warnings != "" {
		log.Warn("dictionary check for %s: %s", s.cfg.Dict.Path, warnings)
		return
	}
	log.Info("dictionary check for %s: %d words, %d phrases", s.cfg.Dict.Path, len(words), len(phrases))
}
