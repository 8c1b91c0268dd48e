// Package keywords derives candidate tags from article text and merges them
// with submitter and reviewer keywords.
package keywords

import (
	_ "embed"
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// MinLimit and MaxLimit bound the number of extracted candidates.
	MinLimit = 30
	MaxLimit = 100
	// WordsPerKeyword is how many words of text earn one extra candidate.
	WordsPerKeyword = 30
	// minKeywordLength is exclusive: candidates must be longer than this.
	minKeywordLength = 3
)

//go:embed stopwords_en.txt
var stopwordsFile string

var stopwords = func() map[string]struct{} {
	set := make(map[string]struct{})
	for _, line := range strings.Split(stopwordsFile, "\n") {
		if w := strings.TrimSpace(line); w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}()

var properNounPattern = regexp.MustCompile(`\b[A-Z][a-z]+\b`)

// commonStarts are capitalized only because they open a sentence.
var commonStarts = map[string]struct{}{
	"The": {}, "A": {}, "An": {}, "This": {}, "That": {}, "It": {}, "In": {},
	"On": {}, "For": {}, "Of": {}, "With": {}, "And": {}, "But": {},
}

// Result is the outcome of one extraction run.
type Result struct {
	Candidates []string `json:"candidates"`
	WordCount  int      `json:"word_count"`
	Limit      int      `json:"limit"`
}

// Extract returns the ordered candidate set for text.
func Extract(text string) []string {
	return Analyze(text).Candidates
}

// Analyze runs the extraction and reports the statistics that shaped it.
// Empty text yields no candidates.
func Analyze(text string) Result {
	wordCount := len(strings.Fields(text))
	limit := DynamicLimit(wordCount)
	res := Result{Candidates: []string{}, WordCount: wordCount, Limit: limit}
	if wordCount == 0 {
		return res
	}

	combined := append(properNouns(text), lexical(text)...)
	for _, candidate := range Merge(combined) {
		if len(res.Candidates) == limit {
			break
		}
		if utf8.RuneCountInString(candidate) > minKeywordLength {
			res.Candidates = append(res.Candidates, candidate)
		}
	}
	return res
}

// DynamicLimit is clamp(ceil(wordCount/30), 30, 100).
func DynamicLimit(wordCount int) int {
	limit := int(math.Ceil(float64(wordCount) / WordsPerKeyword))
	if limit < MinLimit {
		return MinLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

func properNouns(text string) []string {
	var out []string
	for _, w := range properNounPattern.FindAllString(text, -1) {
		if _, skip := commonStarts[w]; skip {
			continue
		}
		if utf8.RuneCountInString(w) > minKeywordLength {
			out = append(out, w)
		}
	}
	return out
}

// lexical is the general extractor: lower-cased tokens without stopwords or
// bare numbers, first occurrence order.
func lexical(text string) []string {
	lower := cases.Lower(language.English)
	seen := make(map[string]struct{})
	var out []string
	for _, raw := range strings.FieldsFunc(text, isSeparator) {
		token := strings.Trim(raw, "-'")
		if token == "" || isNumber(token) {
			continue
		}
		token = lower.String(token)
		if _, stop := stopwords[token]; stop {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	return out
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '\''
}

func isNumber(token string) bool {
	for _, r := range token {
		if !unicode.IsDigit(r) && r != '-' && r != '\'' {
			return false
		}
	}
	return true
}

// Merge is the ordered union of sources: the first occurrence of each value
// wins its position and later duplicates are dropped. Case is preserved and
// blank values are skipped.
func Merge(sources ...[]string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, src := range sources {
		for _, v := range src {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// Split turns a comma-separated keyword string into trimmed, non-empty
// entries.
func Split(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Combine is the publication merge: existing tags, then the submitter's
// keyword string, then extracted candidates, then reviewer additions.
func Combine(existing []string, submitterKeywords string, extracted []string, manual string) []string {
	return Merge(existing, Split(submitterKeywords), extracted, Split(manual))
}

// Remove returns tags without any of drop, keeping order.
func Remove(tags []string, drop []string) []string {
	skip := make(map[string]struct{}, len(drop))
	for _, d := range drop {
		skip[strings.TrimSpace(d)] = struct{}{}
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if _, ok := skip[t]; !ok {
			out = append(out, t)
		}
	}
	return out
}
