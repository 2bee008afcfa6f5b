package quotes

import (
	"testing"
	"time"
)

func TestOfTheDay_StableWithinADay(t *testing.T) {
	morning := time.Date(2025, 4, 1, 7, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 4, 1, 22, 0, 0, 0, time.UTC)

	if OfTheDay(morning) != OfTheDay(evening) {
		t.Error("expected the same quote for every instant of one day")
	}
}

func TestOfTheDay_AlwaysFromCatalogue(t *testing.T) {
	all := All()
	day := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 60; i++ {
		q := OfTheDay(day.AddDate(0, 0, i))
		found := false
		for _, c := range all {
			if c == q {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("quote %q not in catalogue", q.Text)
		}
	}
}

func TestAll_NonEmptyEntries(t *testing.T) {
	for _, q := range All() {
		if q.Text == "" || q.Author == "" {
			t.Errorf("incomplete quote entry: %+v", q)
		}
	}
}
