package inventory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dispensa/internal/nlu"
)

func TestList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/food-items" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":1,"name":"latte","category":"Latticini","preparationDate":"2025-03-05","daysToExpiry":5,"location":"Frigorifero"},
			{"id":2,"name":"pane","category":"Cereali","preparationDate":"2025-03-06T00:00:00Z","daysToExpiry":3,"location":"Dispensa"}
		]`))
	}))
	defer srv.Close()

	items, err := NewClient(srv.URL, nil).List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	if items[0].Name != "latte" || items[0].DaysToExpiry != 5 {
		t.Errorf("unexpected first item %+v", items[0])
	}

	// Both plain dates and RFC3339 timestamps parse.
	want := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	if !items[0].PreparationDate.Equal(want) {
		t.Errorf("expected %v, got %v", want, items[0].PreparationDate)
	}
	want = time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC)
	if !items[1].PreparationDate.Equal(want) {
		t.Errorf("expected %v, got %v", want, items[1].PreparationDate)
	}
}

func TestList_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL, nil).List(context.Background()); err == nil {
		t.Fatal("expected error on 500")
	}
}

func TestSubmit(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/food-items" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	draft := nlu.Draft{Name: "latte", Category: "Latticini", DaysToExpiry: 5}
	if err := NewClient(srv.URL, nil).Submit(context.Background(), draft); err != nil {
		t.Fatal(err)
	}

	if got["name"] != "latte" || got["daysToExpiry"] != float64(5) {
		t.Errorf("unexpected payload %v", got)
	}

	// Unset fields stay off the wire; the API applies its own defaults.
	if _, ok := got["location"]; ok {
		t.Error("empty location should be omitted")
	}
}
