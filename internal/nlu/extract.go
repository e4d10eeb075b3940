package nlu

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Entities is whatever the extractor managed to pull out of one utterance.
// Every field may be absent; partial results are the normal case.
type Entities struct {
	Name         string
	DaysToExpiry int
	Location     string
}

// Extractor pulls a duration, a food name and a storage location out of
// free text using the locale's lexicons. Best effort by design: an
// ambiguous utterance may extract a wrong or partial result, and the user
// corrects it in the form afterwards.
type Extractor struct {
	loc *Locale

	monthDigits *regexp.Regexp
	monthWords  []wordPattern
	dayDigits   []*regexp.Regexp
	dayWords    []wordPattern

	stop map[string]bool
}

type wordPattern struct {
	value    int
	patterns []*regexp.Regexp
}

func NewExtractor(loc *Locale) *Extractor {
	x := &Extractor{
		loc:         loc,
		monthDigits: regexp.MustCompile(fmt.Sprintf(`(\d+)\s*(%s)`, loc.MonthUnits)),
		stop:        make(map[string]bool, len(loc.StopWords)),
	}

	for _, w := range loc.StopWords {
		x.stop[w] = true
	}

	for _, nw := range loc.NumberWords {
		x.monthWords = append(x.monthWords, wordPattern{
			value: nw.Value,
			patterns: []*regexp.Regexp{
				regexp.MustCompile(fmt.Sprintf(`(%s)\s*(%s)`, nw.Word, loc.MonthUnits)),
			},
		})
	}

	x.dayDigits = append(x.dayDigits,
		regexp.MustCompile(fmt.Sprintf(`(\d+)\s*(%s)`, loc.DayUnits)))
	for _, cue := range loc.DayCues {
		x.dayDigits = append(x.dayDigits,
			regexp.MustCompile(fmt.Sprintf(`%s\s+(\d+)`, cue)))
	}

	for _, nw := range loc.NumberWords {
		wp := wordPattern{value: nw.Value}
		wp.patterns = append(wp.patterns,
			regexp.MustCompile(fmt.Sprintf(`(%s)\s*(%s)`, nw.Word, loc.DayUnits)))
		for _, cue := range loc.DayCues {
			wp.patterns = append(wp.patterns,
				regexp.MustCompile(fmt.Sprintf(`%s\s+(%s)`, cue, nw.Word)))
		}
		x.dayWords = append(x.dayWords, wp)
	}

	return x
}

func (x *Extractor) Extract(utterance string) Entities {
	text := strings.ToLower(utterance)

	return Entities{
		DaysToExpiry: x.extractDays(text),
		Name:         x.extractName(text),
		Location:     x.extractLocation(text),
	}
}

// extractDays tries months first (one month counts as 30 days), then day
// patterns. Zero means nothing matched.
func (x *Extractor) extractDays(text string) int {
	if m := x.monthDigits.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil && n > 0 {
			return n * 30
		}
	}
	for _, wp := range x.monthWords {
		for _, re := range wp.patterns {
			if re.MatchString(text) {
				return wp.value * 30
			}
		}
	}

	for _, re := range x.dayDigits {
		if m := re.FindStringSubmatch(text); m != nil {
			n, err := strconv.Atoi(m[1])
			if err == nil && n > 0 {
				return n
			}
		}
	}
	for _, wp := range x.dayWords {
		for _, re := range wp.patterns {
			if re.MatchString(text) {
				return wp.value
			}
		}
	}

	return 0
}

// extractName looks for the longest lexicon entry contained in the text.
// Without a lexicon hit it falls back to the first token longer than two
// characters that is not a stop word.
func (x *Extractor) extractName(text string) string {
	var longest string
	for _, food := range x.loc.Foods {
		if len(food) > len(longest) && strings.Contains(text, food) {
			longest = food
		}
	}
	if longest != "" {
		return longest
	}

	for _, word := range strings.Fields(text) {
		if len(word) > 2 && !x.stop[word] {
			return word
		}
	}
	return ""
}

func (x *Extractor) extractLocation(text string) string {
	for _, group := range x.loc.Locations {
		for _, kw := range group.Keywords {
			if strings.Contains(text, kw) {
				return group.Location
			}
		}
	}
	return ""
}
