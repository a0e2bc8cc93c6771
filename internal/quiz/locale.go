package quiz

import "golang.org/x/text/language"

type Locale string

const (
	Arabic  Locale = "ar"
	English Locale = "en"

	DefaultLocale = Arabic
)

var (
	supported = []language.Tag{language.Arabic, language.English}
	matcher   = language.NewMatcher(supported)
)

// NegotiateLocale picks a supported locale from an explicit choice, falling
// back to the Accept-Language header and then to Arabic.
func NegotiateLocale(explicit, acceptLanguage string) Locale {
	if explicit != "" {
		if tag, err := language.Parse(explicit); err == nil {
			return match(tag)
		}
	}
	if acceptLanguage != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil && len(tags) > 0 {
			return match(tags...)
		}
	}
	return DefaultLocale
}

func match(tags ...language.Tag) Locale {
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLocale
	}
	if supported[idx] == language.English {
		return English
	}
	return Arabic
}
