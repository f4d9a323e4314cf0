package entity

// Language is a supported UI language code, e.g. "en", "hi", "mr".
type Language string

// LanguageEnglish is the catalog fallback language.
const LanguageEnglish Language = "en"

// LanguageInfo pairs a language code with its native display name.
type LanguageInfo struct {
	Code Language `json:"code"`
	Name string   `json:"name"`
}

// SupportedLanguages is the fixed set of languages the catalog ships with.
// Order matters: it is the order the client renders the language picker in.
var SupportedLanguages = []LanguageInfo{
	{Code: "en", Name: "English"},
	{Code: "hi", Name: "हिन्दी"},
	{Code: "mr", Name: "मराठी"},
	{Code: "gu", Name: "ગુજરાતી"},
	{Code: "ta", Name: "தமிழ்"},
	{Code: "te", Name: "తెలుగు"},
	{Code: "bn", Name: "বাংলা"},
	{Code: "pa", Name: "ਪੰਜਾਬੀ"},
	{Code: "kn", Name: "ಕನ್ನಡ"},
	{Code: "ml", Name: "മലയാളം"},
	{Code: "or", Name: "ଓଡ଼ିଆ"},
	{Code: "bho", Name: "भोजपुरी"},
}

// IsSupportedLanguage reports whether code belongs to the supported set.
func IsSupportedLanguage(code Language) bool {
	for _, info := range SupportedLanguages {
		if info.Code == code {
			return true
		}
	}

	return false
}

// LanguageName returns the English name of a language code, used when the
// advisory chat needs to instruct the model which language to answer in.
func LanguageName(code Language) string {
	names := map[Language]string{
		"en":  "English",
		"hi":  "Hindi",
		"mr":  "Marathi",
		"gu":  "Gujarati",
		"ta":  "Tamil",
		"te":  "Telugu",
		"bn":  "Bengali",
		"pa":  "Punjabi",
		"kn":  "Kannada",
		"ml":  "Malayalam",
		"or":  "Odia",
		"bho": "Bhojpuri",
	}
	if name, ok := names[code]; ok {
		return name
	}

	return "English"
}
