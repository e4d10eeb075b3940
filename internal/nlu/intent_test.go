package nlu

import "testing"

func TestClassify_Queries(t *testing.T) {
	c := NewClassifier(Italian())

	cases := []struct {
		text string
		want QueryKind
	}{
		{"cosa scade oggi?", QueryToday},
		{"Cosa scade domani?", QueryTomorrow},
		{"quali alimenti scadono fra poco", QueryGeneral},
		{"dimmi cosa scade", QueryGeneral},
		{"controlla la scadenza", QueryGeneral},
		{"lista scadenza", QueryGeneral},
		{"cosa sta scadendo?", QueryGeneral},
		// Today beats tomorrow when both words appear.
		{"quali alimenti scadono oggi e domani", QueryToday},
	}

	for _, cse := range cases {
		intent := c.Classify(cse.text)
		if intent.Kind != IntentQuery {
			t.Errorf("%q: expected query intent", cse.text)
			continue
		}
		if intent.Query != cse.want {
			t.Errorf("%q: expected query kind %d, got %d", cse.text, cse.want, intent.Query)
		}
	}
}

func TestClassify_Commands(t *testing.T) {
	c := NewClassifier(Italian())

	// Creation utterances mention expiry too; none of the query
	// templates may swallow them.
	for _, text := range []string{
		"latte che scade tra 5 giorni",
		"aggiungi pane nel frigo",
		"mozzarella scadenza 3 giorni nel frigorifero",
		"due mesi di scorta di riso",
	} {
		if intent := c.Classify(text); intent.Kind != IntentCommand {
			t.Errorf("%q: expected command intent", text)
		}
	}
}
