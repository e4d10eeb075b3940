package nlu

// Draft is a partially-filled food item produced by voice parsing, not yet
// persisted. Only the fields the extractor recognized are set; the
// persistence API fills in the rest (id, preparation date default).
type Draft struct {
	Name         string `json:"name,omitempty"`
	Category     string `json:"category,omitempty"`
	DaysToExpiry int    `json:"daysToExpiry,omitempty"`
	Location     string `json:"location,omitempty"`
}

// Empty reports whether nothing at all was recognized.
func (d Draft) Empty() bool {
	return d.Name == "" && d.DaysToExpiry == 0 && d.Location == ""
}

// Builder turns a creation utterance into a Draft. Partiality is the
// contract: there is no minimum-field requirement at this layer, the
// auto-submit decision happens in the session controller.
type Builder struct {
	loc *Locale
	x   *Extractor
}

func NewBuilder(loc *Locale, x *Extractor) *Builder {
	return &Builder{loc: loc, x: x}
}

func (b *Builder) Build(utterance string) Draft {
	ent := b.x.Extract(utterance)

	d := Draft{
		Name:         ent.Name,
		DaysToExpiry: ent.DaysToExpiry,
		Location:     ent.Location,
	}
	if d.Name != "" {
		cat, ok := b.loc.Categories[d.Name]
		if !ok {
			cat = b.loc.DefaultCategory
		}
		d.Category = cat
	}
	return d
}
