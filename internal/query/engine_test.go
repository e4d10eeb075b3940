package query

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"dispensa/internal/inventory"
	"dispensa/internal/nlu"
)

type fakeFetcher struct {
	items []inventory.FoodItem
	err   error
}

func (f *fakeFetcher) List(ctx context.Context) ([]inventory.FoodItem, error) {
	return f.items, f.err
}

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func item(name string, prep time.Time, days int) inventory.FoodItem {
	return inventory.FoodItem{Name: name, PreparationDate: inventory.Date{Time: prep}, DaysToExpiry: days}
}

func day(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

func newTestEngine(f Fetcher) *Engine {
	return NewEngine(f, ItalianMessages())
}

func TestAnswer_TodayWithMatches(t *testing.T) {
	e := newTestEngine(&fakeFetcher{items: []inventory.FoodItem{
		item("latte", day(5), 5),    // expires today
		item("uova", day(1), 5),     // long expired, still counts as today
		item("yogurt", day(10), 10), // fresh
	}})

	res := e.Answer(context.Background(), nlu.QueryToday, now)
	if res.Kind != KindExpiry {
		t.Fatalf("expected expiry result, got %v", res.Kind)
	}
	if res.Message != "⚠️ Oggi scade: latte, uova" {
		t.Errorf("unexpected message %q", res.Message)
	}
	if res.Summary != "2 alimento/i in scadenza oggi" {
		t.Errorf("unexpected summary %q", res.Summary)
	}
}

func TestAnswer_TodayEmpty(t *testing.T) {
	e := newTestEngine(&fakeFetcher{items: []inventory.FoodItem{
		item("yogurt", day(10), 10),
	}})

	res := e.Answer(context.Background(), nlu.QueryToday, now)
	if res.Message != "✅ Nessun alimento scade oggi!" {
		t.Errorf("unexpected message %q", res.Message)
	}
	if res.Summary != "Nessuna scadenza oggi" {
		t.Errorf("unexpected summary %q", res.Summary)
	}
}

func TestAnswer_Tomorrow(t *testing.T) {
	e := newTestEngine(&fakeFetcher{items: []inventory.FoodItem{
		item("pane", day(6), 5), // expires tomorrow
		item("latte", day(5), 5),
	}})

	res := e.Answer(context.Background(), nlu.QueryTomorrow, now)
	if res.Message != "⚠️ Domani scade: pane" {
		t.Errorf("unexpected message %q", res.Message)
	}
	if res.Summary != "1 alimento/i scade domani" {
		t.Errorf("unexpected summary %q", res.Summary)
	}
}

func TestAnswer_GeneralBuckets(t *testing.T) {
	e := newTestEngine(&fakeFetcher{items: []inventory.FoodItem{
		item("latte", day(5), 5),  // today
		item("pane", day(6), 5),   // tomorrow
		item("carote", day(8), 5), // in 3 days
		item("riso", day(10), 30), // fresh, excluded
	}})

	res := e.Answer(context.Background(), nlu.QueryGeneral, now)

	lines := strings.Split(res.Message, "\n\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 bucket lines, got %d: %q", len(lines), res.Message)
	}
	if lines[0] != "⚠️ Oggi: latte" || lines[1] != "📅 Domani: pane" || lines[2] != "⏰ Prossimi giorni: carote" {
		t.Errorf("unexpected bucket lines %q", lines)
	}
	if res.Summary != "3 alimento/i in scadenza" {
		t.Errorf("unexpected summary %q", res.Summary)
	}
}

func TestAnswer_GeneralAllFresh(t *testing.T) {
	e := newTestEngine(&fakeFetcher{items: []inventory.FoodItem{
		item("riso", day(10), 30),
	}})

	res := e.Answer(context.Background(), nlu.QueryGeneral, now)
	if res.Message != "✅ Tutti gli alimenti sono freschi!" {
		t.Errorf("unexpected message %q", res.Message)
	}
	if res.Summary != "Nessuna scadenza imminente" {
		t.Errorf("unexpected summary %q", res.Summary)
	}
}

func TestAnswer_EmptyInventory(t *testing.T) {
	e := newTestEngine(&fakeFetcher{})

	res := e.Answer(context.Background(), nlu.QueryGeneral, now)
	if res.Kind != KindExpiry || res.Message != "✅ Tutti gli alimenti sono freschi!" {
		t.Errorf("unexpected result %+v", res)
	}
}

// An item the API serves without a preparation date has no expiry instant
// and must land in no bucket at all.
func TestAnswer_ItemWithoutPreparationDate(t *testing.T) {
	e := newTestEngine(&fakeFetcher{items: []inventory.FoodItem{
		{Name: "latte", DaysToExpiry: 5},
	}})

	res := e.Answer(context.Background(), nlu.QueryGeneral, now)
	if res.Message != "✅ Tutti gli alimenti sono freschi!" {
		t.Errorf("dateless item leaked into a bucket: %q", res.Message)
	}

	res = e.Answer(context.Background(), nlu.QueryToday, now)
	if res.Message != "✅ Nessun alimento scade oggi!" {
		t.Errorf("dateless item counted as expiring today: %q", res.Message)
	}
}

// A failed inventory fetch is a result, never an error to the caller.
func TestAnswer_FetchFailure(t *testing.T) {
	e := newTestEngine(&fakeFetcher{err: errors.New("connection refused")})

	res := e.Answer(context.Background(), nlu.QueryToday, now)
	if res.Kind != KindError {
		t.Fatalf("expected error result, got %v", res.Kind)
	}
	if res.Message != "Errore nel controllare le scadenze. Riprova più tardi." {
		t.Errorf("unexpected message %q", res.Message)
	}
	if res.Summary != "Errore di connessione" {
		t.Errorf("unexpected summary %q", res.Summary)
	}
}
