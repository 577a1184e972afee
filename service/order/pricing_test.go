package ordersvc

import (
	"testing"
	"time"

	"rentmart/model"
)

func d(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestQuote_Determinism(t *testing.T) {
	days, total := Quote(100, 2, d("2024-03-01"), d("2024-03-05"))
	if days != 5 {
		t.Fatalf("days = %d; want 5", days)
	}
	if total != 450 {
		t.Fatalf("total = %v; want 450 (100*2 + 50*5)", total)
	}
}

func TestQuote_SingleDayCountsBothEndpoints(t *testing.T) {
	days, total := Quote(10, 1, d("2024-03-01"), d("2024-03-01"))
	if days != 1 || total != 60 {
		t.Fatalf("got days=%d total=%v; want 1, 60", days, total)
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name           string
		s1, e1, s2, e2 string
		want           bool
	}{
		{"contained", "2024-01-01", "2024-01-10", "2024-01-03", "2024-01-05", true},
		{"partial", "2024-01-01", "2024-01-05", "2024-01-04", "2024-01-09", true},
		{"shared endpoint", "2024-01-01", "2024-01-05", "2024-01-05", "2024-01-10", true},
		{"disjoint", "2024-01-01", "2024-01-05", "2024-01-06", "2024-01-10", false},
		{"identical", "2024-01-01", "2024-01-05", "2024-01-01", "2024-01-05", true},
	}
	for _, tc := range cases {
		got := Overlaps(d(tc.s1), d(tc.e1), d(tc.s2), d(tc.e2))
		if got != tc.want {
			t.Errorf("%s: Overlaps = %v; want %v", tc.name, got, tc.want)
		}
		// symmetric in the two ranges
		if rev := Overlaps(d(tc.s2), d(tc.e2), d(tc.s1), d(tc.e1)); rev != got {
			t.Errorf("%s: Overlaps not symmetric", tc.name)
		}
	}
}

func TestStatusAt(t *testing.T) {
	now := d("2024-06-15")
	if s := StatusAt(now, d("2024-06-01"), d("2024-06-10")); s != model.RentalCompleted {
		t.Fatalf("got %s; want Completed", s)
	}
	if s := StatusAt(now, d("2024-06-10"), d("2024-06-20")); s != model.RentalCurrent {
		t.Fatalf("got %s; want Current", s)
	}
	if s := StatusAt(now, d("2024-06-20"), d("2024-06-25")); s != model.RentalUpcoming {
		t.Fatalf("got %s; want Upcoming", s)
	}
	// boundary days count as Current
	if s := StatusAt(now, d("2024-06-15"), d("2024-06-15")); s != model.RentalCurrent {
		t.Fatalf("got %s; want Current on boundary", s)
	}
}

// The end date is inclusive, so a rental ending today is still Current at any
// time of that day and only reads Completed from the next day on.
func TestStatusAt_EndDayInclusive(t *testing.T) {
	start := d("2024-06-12")
	end := d("2024-06-15")

	noon := d("2024-06-15").Add(12 * time.Hour)
	if s := StatusAt(noon, start, end); s != model.RentalCurrent {
		t.Fatalf("got %s at noon on the end day; want Current", s)
	}
	lastSecond := d("2024-06-15").Add(24*time.Hour - time.Second)
	if s := StatusAt(lastSecond, start, end); s != model.RentalCurrent {
		t.Fatalf("got %s at the end of the end day; want Current", s)
	}
	if s := StatusAt(d("2024-06-16"), start, end); s != model.RentalCompleted {
		t.Fatalf("got %s the day after; want Completed", s)
	}
}
