package config

// supportedLanguages is every language tag the translate endpoint
// accepts, dialects last.
var supportedLanguages = [...]string{
	"af",
	"ar",
	"bg",
	"bn",
	"bs",
	"ca",
	"cs",
	"cy",
	"da",
	"de",
	"el",
	"en",
	"eo",
	"es",
	"et",
	"fi",
	"fr",
	"gu",
	"hi",
	"hr",
	"hu",
	"hy",
	"id",
	"is",
	"it",
	"iw",
	"ja",
	"jw",
	"km",
	"kn",
	"ko",
	"la",
	"lv",
	"mk",
	"ml",
	"mr",
	"my",
	"ne",
	"nl",
	"no",
	"pl",
	"pt",
	"ro",
	"ru",
	"si",
	"sk",
	"sq",
	"sr",
	"su",
	"sv",
	"sw",
	"ta",
	"te",
	"th",
	"tl",
	"tr",
	"uk",
	"ur",
	"vi",
	// dialects
	"zh-CN",
	"zh-cn",
	"zh-tw",
	"en-us",
	"en-ca",
	"en-uk",
	"en-gb",
	"en-au",
	"en-gh",
	"en-in",
	"en-ie",
	"en-nz",
	"en-ng",
	"en-ph",
	"en-za",
	"en-tz",
	"fr-ca",
	"fr-fr",
	"pt-br",
	"pt-pt",
	"es-es",
	"es-us",
}

// SupportedLanguages returns a copy of the supported language tags in order.
func SupportedLanguages() []string {
	out := make([]string, len(supportedLanguages))
	copy(out, supportedLanguages[:])
	return out
}

// IsSupportedLanguage reports whether lang is one of the supported tags.
// Matching is exact, "zh-CN" and "zh-cn" are both listed.
func IsSupportedLanguage(lang string) bool {
	for _, l := range supportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}
