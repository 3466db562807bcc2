package domain

// Lang is a supported content language.
type Lang string

const (
	English Lang = "en"
	Spanish Lang = "es"
)

// Valid reports whether l is one of the supported languages.
func (l Lang) Valid() bool {
	return l == English || l == Spanish
}

// Other returns the opposite supported language.
func (l Lang) Other() Lang {
	if l == Spanish {
		return English
	}
	return Spanish
}
