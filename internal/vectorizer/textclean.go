package vectorizer

import (
	"regexp"
	"strings"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^\w\s]`)
	tokenPattern    = regexp.MustCompile(`[a-zA-Z0-9]+`)

	// Common statement suffixes that carry no signal: trailing store numbers,
	// corporate forms, country and state codes.
	suffixPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\s+\d+$`),
		regexp.MustCompile(`\s+#\d+$`),
		regexp.MustCompile(`\s+LLC$`),
		regexp.MustCompile(`\s+INC$`),
		regexp.MustCompile(`\s+CORP$`),
		regexp.MustCompile(`\s+USA$`),
		regexp.MustCompile(`\s+VA$`),
		regexp.MustCompile(`\s+MD$`),
		regexp.MustCompile(`\s+DC$`),
	}

	stopwords = map[string]struct{}{
		"a": {}, "an": {}, "and": {}, "at": {}, "by": {}, "for": {},
		"from": {}, "in": {}, "of": {}, "on": {}, "or": {}, "the": {},
		"to": {}, "with": {},
	}
)

// CleanText standardizes a statement description for matching: uppercase,
// punctuation stripped, whitespace collapsed, noisy suffixes removed.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ToUpper(text)
	text = nonAlphanumeric.ReplaceAllString(text, " ")
	text = strings.Join(strings.Fields(text), " ")

	for _, suffix := range suffixPatterns {
		text = suffix.ReplaceAllString(text, "")
	}

	return strings.TrimSpace(text)
}

// Tokenize splits cleaned text into lowercase alphanumeric terms with
// stopwords removed.
func Tokenize(text string) []string {
	raw := tokenPattern.FindAllString(CleanText(text), -1)
	tokens := make([]string, 0, len(raw))
	for _, token := range raw {
		token = strings.ToLower(token)
		if _, stop := stopwords[token]; stop {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}
