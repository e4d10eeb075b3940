package query

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"dispensa/internal/expiry"
	"dispensa/internal/inventory"
	"dispensa/internal/nlu"
)

// SoonWindowDays is the query-side "expiring soon" horizon. It is wider
// than expiry.BadgeWindowDays on purpose: the badge and the voice answer
// shipped with different thresholds and both are kept as-is.
const SoonWindowDays = 3

type Kind string

const (
	KindExpiry Kind = "expiry_check"
	KindError  Kind = "error"
)

// Result is always a value, never an error: a failed inventory fetch comes
// back as KindError with a fixed apology, so the session controller has a
// single path for rendering answers.
type Result struct {
	Kind    Kind
	Message string
	Summary string
}

// Fetcher is the read-only inventory collaborator.
type Fetcher interface {
	List(ctx context.Context) ([]inventory.FoodItem, error)
}

// Messages holds every user-facing string the engine renders, so a locale
// swap touches no logic.
type Messages struct {
	NothingToday        string
	NothingTodaySummary string
	TodayList           string // verb form for a dedicated "today" answer
	TodaySummary        string

	NothingTomorrow        string
	NothingTomorrowSummary string
	TomorrowList           string
	TomorrowSummary        string

	AllFresh        string
	AllFreshSummary string
	LineToday       string // bucket lines of the general answer
	LineTomorrow    string
	LineSoon        string
	TotalSummary    string

	FetchError        string
	FetchErrorSummary string
}

func ItalianMessages() Messages {
	return Messages{
		NothingToday:        "✅ Nessun alimento scade oggi!",
		NothingTodaySummary: "Nessuna scadenza oggi",
		TodayList:           "⚠️ Oggi scade: %s",
		TodaySummary:        "%d alimento/i in scadenza oggi",

		NothingTomorrow:        "✅ Nessun alimento scade domani!",
		NothingTomorrowSummary: "Nessuna scadenza domani",
		TomorrowList:           "⚠️ Domani scade: %s",
		TomorrowSummary:        "%d alimento/i scade domani",

		AllFresh:        "✅ Tutti gli alimenti sono freschi!",
		AllFreshSummary: "Nessuna scadenza imminente",
		LineToday:       "⚠️ Oggi: %s",
		LineTomorrow:    "📅 Domani: %s",
		LineSoon:        "⏰ Prossimi giorni: %s",
		TotalSummary:    "%d alimento/i in scadenza",

		FetchError:        "Errore nel controllare le scadenze. Riprova più tardi.",
		FetchErrorSummary: "Errore di connessione",
	}
}

type Engine struct {
	items Fetcher
	msg   Messages
}

func NewEngine(items Fetcher, msg Messages) *Engine {
	return &Engine{items: items, msg: msg}
}

// buckets partitions items by remaining days: today ≤0, tomorrow ==1,
// soon 2..SoonWindowDays. Recomputed per query, never persisted.
type buckets struct {
	today    []string
	tomorrow []string
	soon     []string
}

func (b buckets) total() int {
	return len(b.today) + len(b.tomorrow) + len(b.soon)
}

// Answer computes expiry buckets over the current inventory and renders a
// natural-language reply for the given query sub-kind.
func (e *Engine) Answer(ctx context.Context, kind nlu.QueryKind, now time.Time) Result {
	items, err := e.items.List(ctx)
	if err != nil {
		slog.Warn("inventory fetch failed", "err", err)
		return Result{
			Kind:    KindError,
			Message: e.msg.FetchError,
			Summary: e.msg.FetchErrorSummary,
		}
	}

	var b buckets
	for _, it := range items {
		// No preparation date means no expiry instant: such items
		// belong to no bucket rather than to "expiring today".
		if it.PreparationDate.IsZero() {
			continue
		}
		left := expiry.DaysRemaining(it.PreparationDate.Time, it.DaysToExpiry, now)
		switch {
		case left <= 0:
			b.today = append(b.today, it.Name)
		case left == 1:
			b.tomorrow = append(b.tomorrow, it.Name)
		case left <= SoonWindowDays:
			b.soon = append(b.soon, it.Name)
		}
	}

	switch kind {
	case nlu.QueryToday:
		return e.singleDay(b.today, e.msg.NothingToday, e.msg.NothingTodaySummary,
			e.msg.TodayList, e.msg.TodaySummary)
	case nlu.QueryTomorrow:
		return e.singleDay(b.tomorrow, e.msg.NothingTomorrow, e.msg.NothingTomorrowSummary,
			e.msg.TomorrowList, e.msg.TomorrowSummary)
	default:
		return e.general(b)
	}
}

func (e *Engine) singleDay(names []string, nothing, nothingSummary, list, summary string) Result {
	if len(names) == 0 {
		return Result{Kind: KindExpiry, Message: nothing, Summary: nothingSummary}
	}
	return Result{
		Kind:    KindExpiry,
		Message: fmt.Sprintf(list, strings.Join(names, ", ")),
		Summary: fmt.Sprintf(summary, len(names)),
	}
}

func (e *Engine) general(b buckets) Result {
	if b.total() == 0 {
		return Result{Kind: KindExpiry, Message: e.msg.AllFresh, Summary: e.msg.AllFreshSummary}
	}

	var parts []string
	if len(b.today) > 0 {
		parts = append(parts, fmt.Sprintf(e.msg.LineToday, strings.Join(b.today, ", ")))
	}
	if len(b.tomorrow) > 0 {
		parts = append(parts, fmt.Sprintf(e.msg.LineTomorrow, strings.Join(b.tomorrow, ", ")))
	}
	if len(b.soon) > 0 {
		parts = append(parts, fmt.Sprintf(e.msg.LineSoon, strings.Join(b.soon, ", ")))
	}

	return Result{
		Kind:    KindExpiry,
		Message: strings.Join(parts, "\n\n"),
		Summary: fmt.Sprintf(e.msg.TotalSummary, b.total()),
	}
}
