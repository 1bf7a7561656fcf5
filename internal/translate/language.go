package translate

import (
	"fmt"
	"sort"
	"strings"
)

// languageSuffixes maps a target language to the short suffix appended to
// translated file names, e.g. movie.srt -> movie-ES.srt.
var languageSuffixes = map[string]string{
	"English":    "EN",
	"Spanish":    "ES",
	"French":     "FR",
	"German":     "DE",
	"Italian":    "IT",
	"Portuguese": "PT",
	"Russian":    "RU",
	"Japanese":   "JP",
	"Korean":     "KR",
	"Chinese":    "CN",
}

// Languages lists the supported target languages in alphabetical order.
func Languages() []string {
	names := make([]string, 0, len(languageSuffixes))
	for name := range languageSuffixes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveLanguage normalizes a user-supplied language name and returns the
// canonical name plus its file suffix.
func ResolveLanguage(name string) (string, string, error) {
	for lang, suffix := range languageSuffixes {
		if strings.EqualFold(lang, name) || strings.EqualFold(suffix, name) {
			return lang, suffix, nil
		}
	}
	return "", "", fmt.Errorf("unsupported target language %q (expected one of %v)", name, Languages())
}
