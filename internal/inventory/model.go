package inventory

import (
	"fmt"
	"strings"
	"time"
)

// FoodItem is how the inventory API serves items. Read-only here: the
// interpreter never mutates inventory, it only reads the list to answer
// queries.
type FoodItem struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	PreparationDate Date   `json:"preparationDate"`
	DaysToExpiry    int    `json:"daysToExpiry"`
	Location        string `json:"location"`
}

// Date accepts both plain ISO dates and full RFC3339 timestamps, which is
// what the API emits depending on how the item was created.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}

	if t, err := time.Parse("2006-01-02", s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("parse preparation date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}
