package ordersvc

import (
	"time"

	"rentmart/model"
)

// Overlaps reports whether the closed intervals [s1,e1] and [s2,e2]
// intersect. A shared endpoint counts as overlap. This is the same predicate
// the ledger applies in SQL and the schema enforces with its exclusion
// constraint.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return !s1.After(e2) && !s2.After(e1)
}

// Quote computes the rental duration and total cost for a booking.
// Both endpoints are included in the day count, and the per-day surcharge is
// the flat PerDayRate: total = price*quantity + PerDayRate*days.
func Quote(productPrice float64, quantity int64, rentStart, rentEnd time.Time) (days int64, total float64) {
	days = int64(startOfDay(rentEnd).Sub(startOfDay(rentStart)).Hours()/24) + 1
	total = productPrice*float64(quantity) + PerDayRate*float64(days)
	return days, total
}

// StatusAt derives the presentation status of a rental window at the given
// instant. Nothing is persisted; callers recompute on every read. The window
// endpoints are calendar days and both are inclusive, so now is compared at
// day granularity: a rental ending today stays Current through the whole day.
func StatusAt(now, rentStart, rentEnd time.Time) model.RentalStatus {
	today := startOfDay(now)
	switch {
	case rentEnd.Before(today):
		return model.RentalCompleted
	case !rentStart.After(today) && !rentEnd.Before(today):
		return model.RentalCurrent
	default:
		return model.RentalUpcoming
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
