package order

import "time"

// DaysBetween counts calendar days from from to to, ignoring time of day.
// Both instants are read in to's location.
func DaysBetween(from, to time.Time) int {
	y1, m1, d1 := from.In(to.Location()).Date()
	y2, m2, d2 := to.Date()
	a := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	b := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

func StatusAfter(days int) OrderStatus {
	switch {
	case days <= 1:
		return StatusPlaced
	case days <= 3:
		return StatusShipped
	case days <= 5:
		return StatusOutForDelivery
	default:
		return StatusDelivered
	}
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
