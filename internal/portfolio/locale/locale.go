package locale

import (
	"golang.org/x/text/language"
)

// Supported lists the dashboard languages; the first one is the default.
var Supported = []language.Tag{language.BrazilianPortuguese, language.English}

var matcher = language.NewMatcher(Supported)

// Match picks the best supported language for an Accept-Language header.
// Anything unparsable or unknown falls back to Brazilian Portuguese.
func Match(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Supported[0]
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Supported[0]
	}
	return Supported[idx]
}

// IsEnglish reports whether tag resolves to the English variant.
func IsEnglish(tag language.Tag) bool {
	base, _ := tag.Base()
	en, _ := language.English.Base()
	return base == en
}
