package nlu

// Locale bundles every lexicon the interpreter matches against. The tables
// are data, not logic: tests and future locales swap the tables without
// touching the extraction or classification algorithms. Order is load-bearing
// wherever a slice is used (first match wins).
type Locale struct {
	Code string

	// NumberWords map spelled-out numerals to values, tried in order.
	NumberWords []NumberWord

	// MonthUnits and DayUnits are regexp alternations for the unit word
	// following a count ("2 mesi", "5 giorni").
	MonthUnits string
	DayUnits   string

	// DayCues are words whose following number is read as a day count
	// even without a unit ("scadenza 5", "tra 5").
	DayCues []string

	// Foods is the grocery-name lexicon. Longest substring match wins;
	// ties go to the earlier entry.
	Foods []string

	// Categories maps a recognized food name to its category.
	Categories      map[string]string
	DefaultCategory string

	// StopWords are tokens never taken as a food name during fallback.
	StopWords []string

	// Locations are keyword groups mapped to a storage location,
	// tried in order.
	Locations []LocationGroup

	// QueryTemplates are the regexp phrasings that mark an utterance as
	// an inventory query rather than a creation command.
	QueryTemplates []string

	// TodayWord and TomorrowWord pick the query sub-kind. Today is
	// checked first and wins when both appear.
	TodayWord    string
	TomorrowWord string
}

type NumberWord struct {
	Word  string
	Value int
}

type LocationGroup struct {
	Keywords []string
	Location string
}

// Italian is the default locale, matching the it-IT speech recognition
// the app ships with.
func Italian() *Locale {
	return &Locale{
		Code: "it-IT",

		NumberWords: []NumberWord{
			{"uno", 1}, {"una", 1}, {"due", 2}, {"tre", 3}, {"quattro", 4},
			{"cinque", 5}, {"sei", 6}, {"sette", 7}, {"otto", 8}, {"nove", 9},
			{"dieci", 10}, {"quindici", 15}, {"venti", 20}, {"trenta", 30},
		},

		MonthUnits: `mesi?|mese`,
		DayUnits:   `giorni?|giorno|gg`,
		DayCues:    []string{"scadenza", "tra", "fra"},

		Foods: []string{
			"latte", "pane", "mele", "pomodori", "carne", "pesce", "formaggio", "yogurt", "pasta", "riso",
			"insalata", "lattuga", "verdure", "carote", "patate", "cipolle", "aglio",
			"prosciutto", "salame", "mortadella", "bresaola",
			"banana", "arance", "limoni", "kiwi", "fragole", "uva",
			"pollo", "manzo", "maiale", "vitello",
			"salmone", "tonno", "orata", "branzino",
			"mozzarella", "parmigiano", "gorgonzola", "ricotta",
			"biscotti", "crackers", "grissini",
			"olio", "aceto", "sale", "zucchero", "farina",
			"uova", "burro", "margarina",
		},

		Categories: map[string]string{
			"latte": "Latticini", "formaggio": "Latticini", "yogurt": "Latticini",
			"mozzarella": "Latticini", "parmigiano": "Latticini", "gorgonzola": "Latticini",
			"ricotta": "Latticini", "burro": "Latticini", "margarina": "Latticini",

			"carne": "Carne", "pollo": "Carne", "manzo": "Carne", "maiale": "Carne",
			"vitello": "Carne", "prosciutto": "Carne", "salame": "Carne",
			"mortadella": "Carne", "bresaola": "Carne",

			"pesce": "Pesce", "salmone": "Pesce", "tonno": "Pesce",
			"orata": "Pesce", "branzino": "Pesce",

			"mele": "Frutta", "banana": "Frutta", "arance": "Frutta",
			"limoni": "Frutta", "kiwi": "Frutta", "fragole": "Frutta", "uva": "Frutta",

			"pomodori": "Verdure", "insalata": "Verdure", "lattuga": "Verdure",
			"verdure": "Verdure", "carote": "Verdure", "patate": "Verdure",
			"cipolle": "Verdure", "aglio": "Verdure",

			"pane": "Cereali", "pasta": "Cereali", "riso": "Cereali",
			"biscotti": "Cereali", "crackers": "Cereali", "grissini": "Cereali", "farina": "Cereali",

			"uova": "Altro", "olio": "Altro", "aceto": "Altro",
			"sale": "Altro", "zucchero": "Altro",
		},
		DefaultCategory: "Altro",

		StopWords: []string{
			"che", "tra", "per", "con", "nel", "dal", "del", "della", "delle",
			"dei", "degli", "scade", "scadenza", "giorni", "giorno",
			"aggiungi", "inserisci",
		},

		Locations: []LocationGroup{
			{Keywords: []string{"frigorifero", "frigo"}, Location: "Frigorifero"},
			{Keywords: []string{"freezer", "congelatore"}, Location: "Freezer"},
			{Keywords: []string{"dispensa", "credenza"}, Location: "Dispensa"},
			// "cassetto" without qualifier is taken as the fridge drawer.
			// Known approximation, kept from the product.
			{Keywords: []string{"cassetto"}, Location: "Frigorifero"},
		},

		QueryTemplates: []string{
			`cosa.*scade.*oggi`,
			`quali.*scade.*oggi`,
			`quali.*alimenti.*scade`,
			`quali.*alimenti.*scadono`,
			`cosa.*scadenza.*oggi`,
			`alimenti.*scade.*oggi`,
			`cosa.*sta.*scadendo`,
			`quali.*stanno.*scadendo`,
			`cosa.*scade.*domani`,
			`cosa.*scade.*fra`,
			`quali.*scade.*fra`,
			`quali.*scadono.*fra`,
			`alimenti.*scadenza`,
			`lista.*scadenza`,
			`controlla.*scadenza`,
			`dimmi.*cosa.*scade`,
			`dimmi.*quali.*scade`,
		},

		TodayWord:    "oggi",
		TomorrowWord: "domani",
	}
}
