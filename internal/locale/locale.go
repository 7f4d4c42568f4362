// Package locale resolves and persists the player's language
// preference. The game ships card art in its own set of language
// codes; this package maps whatever BCP-47 tag the system reports
// onto that set.
package locale

import (
	"golang.org/x/text/language"
)

// Default is used when nothing matches.
const Default = "en"

// keyLanguage is the storage key for the preference. Independent of
// game identity.
const keyLanguage = "language"

// Store is the key-value substrate the preference persists into.
type Store interface {
	Set(key, value string) error
	Get(key string) (string, bool, error)
}

// supported lists the game's language codes in matcher priority
// order, paired with the BCP-47 tag each one answers to.
var supported = []struct {
	code string
	tag  language.Tag
}{
	{"en", language.English},
	{"br", language.BrazilianPortuguese},
	{"cns", language.SimplifiedChinese},
	{"cnt", language.TraditionalChinese},
	{"cz", language.Czech},
	{"de", language.German},
	{"fr", language.French},
	{"gr", language.Greek},
	{"hu", language.Hungarian},
	{"it", language.Italian},
	{"jp", language.Japanese},
	{"kr", language.Korean},
	{"nl", language.Dutch},
	{"pl", language.Polish},
	{"ru", language.Russian},
	{"sp", language.Spanish},
	{"th", language.Thai},
	{"ua", language.Ukrainian},
}

var matcher = newMatcher()

func newMatcher() language.Matcher {
	tags := make([]language.Tag, len(supported))
	for i, s := range supported {
		tags[i] = s.tag
	}
	return language.NewMatcher(tags)
}

// Supported reports whether code is one of the game's language codes.
func Supported(code string) bool {
	for _, s := range supported {
		if s.code == code {
			return true
		}
	}
	return false
}

// Resolve maps a user locale (e.g. "pt-BR", "zh-Hant", "es") to the
// game's language code, falling back to Default.
func Resolve(userLocale string) string {
	tag, err := language.Parse(userLocale)
	if err != nil {
		return Default
	}
	_, index, conf := matcher.Match(tag)
	if conf == language.No {
		return Default
	}
	return supported[index].code
}

// Preference returns the player's language code: the stored value
// when present (fast path), otherwise the code resolved from
// userLocale, which is then stored for next time.
func Preference(s Store, userLocale string) (string, error) {
	code, ok, err := s.Get(keyLanguage)
	if err != nil {
		return Default, err
	}
	if ok && Supported(code) {
		return code, nil
	}
	code = Resolve(userLocale)
	if err := s.Set(keyLanguage, code); err != nil {
		return code, err
	}
	return code, nil
}

// SetPreference stores an explicit language choice.
func SetPreference(s Store, code string) error {
	if !Supported(code) {
		code = Default
	}
	return s.Set(keyLanguage, code)
}
