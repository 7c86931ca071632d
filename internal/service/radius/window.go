package radius

import "time"

// NightWindow is a daily interval given as offsets from local midnight.
// A window whose start is after its end wraps around midnight.
type NightWindow struct {
	Start time.Duration
	End   time.Duration
}

// DefaultNightWindow is 18:00 to 06:00.
var DefaultNightWindow = NightWindow{Start: 18 * time.Hour, End: 6 * time.Hour}

// Contains reports whether at falls inside the window, using at's own location.
func (w NightWindow) Contains(at time.Time) bool {
	if w.Start == w.End {
		return false
	}
	h, m, s := at.Clock()
	t := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute + time.Duration(s)*time.Second
	if w.Start < w.End {
		return t >= w.Start && t < w.End
	}
	return t >= w.Start || t < w.End
}
