package nlu

import (
	"regexp"
	"strings"
)

type IntentKind uint

const (
	IntentCommand IntentKind = iota
	IntentQuery
)

type QueryKind uint

const (
	QueryGeneral QueryKind = iota
	QueryToday
	QueryTomorrow
)

// Intent is the classified purpose of one utterance. Created per
// utterance, consumed once.
type Intent struct {
	Kind  IntentKind
	Query QueryKind
}

// Classifier decides whether an utterance asks about the current inventory
// or describes a new item. A fixed ordered template list, first match
// short-circuits; anything that matches no template is a command.
type Classifier struct {
	loc       *Locale
	templates []*regexp.Regexp
}

func NewClassifier(loc *Locale) *Classifier {
	c := &Classifier{loc: loc}
	for _, t := range loc.QueryTemplates {
		c.templates = append(c.templates, regexp.MustCompile(t))
	}
	return c
}

func (c *Classifier) Classify(utterance string) Intent {
	text := strings.ToLower(utterance)

	for _, re := range c.templates {
		if re.MatchString(text) {
			return Intent{Kind: IntentQuery, Query: c.queryKind(text)}
		}
	}
	return Intent{Kind: IntentCommand}
}

// queryKind: today wins over tomorrow when both words appear.
func (c *Classifier) queryKind(text string) QueryKind {
	switch {
	case strings.Contains(text, c.loc.TodayWord):
		return QueryToday
	case strings.Contains(text, c.loc.TomorrowWord):
		return QueryTomorrow
	default:
		return QueryGeneral
	}
}
