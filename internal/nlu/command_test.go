package nlu

import "testing"

func newTestBuilder() *Builder {
	loc := Italian()
	return NewBuilder(loc, NewExtractor(loc))
}

func TestBuild_FullDraft(t *testing.T) {
	b := newTestBuilder()

	d := b.Build("latte che scade tra 5 giorni")
	if d.Name != "latte" {
		t.Errorf("expected name latte, got %q", d.Name)
	}
	if d.Category != "Latticini" {
		t.Errorf("expected category Latticini, got %q", d.Category)
	}
	if d.DaysToExpiry != 5 {
		t.Errorf("expected 5 days, got %d", d.DaysToExpiry)
	}
}

func TestBuild_DefaultCategoryForUnknownName(t *testing.T) {
	b := newTestBuilder()

	d := b.Build("tofu che scade tra 3 giorni")
	if d.Name != "tofu" {
		t.Errorf("expected name tofu, got %q", d.Name)
	}
	if d.Category != "Altro" {
		t.Errorf("expected default category Altro, got %q", d.Category)
	}
}

func TestBuild_PartialDraftIsFine(t *testing.T) {
	b := newTestBuilder()

	// Name only: no duration, no location, category still inferred.
	d := b.Build("yogurt")
	if d.Name != "yogurt" || d.Category != "Latticini" {
		t.Errorf("expected yogurt/Latticini, got %q/%q", d.Name, d.Category)
	}
	if d.DaysToExpiry != 0 || d.Location != "" {
		t.Errorf("expected empty duration and location, got %d/%q", d.DaysToExpiry, d.Location)
	}
}

func TestBuild_NoCategoryWithoutName(t *testing.T) {
	b := newTestBuilder()

	d := b.Build("scade tra 5 giorni")
	if d.Name != "" || d.Category != "" {
		t.Errorf("expected no name and no category, got %q/%q", d.Name, d.Category)
	}
	if d.DaysToExpiry != 5 {
		t.Errorf("duration should still be extracted, got %d", d.DaysToExpiry)
	}
	if d.Empty() {
		t.Error("draft with a duration is not empty")
	}
}

func TestBuild_EverythingAtOnce(t *testing.T) {
	b := newTestBuilder()

	d := b.Build("pollo nel congelatore che scade tra due giorni")
	want := Draft{Name: "pollo", Category: "Carne", DaysToExpiry: 2, Location: "Freezer"}
	if d != want {
		t.Errorf("expected %+v, got %+v", want, d)
	}
}
