package backend

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DefaultRotateWhen rotates at local midnight.
const DefaultRotateWhen = "midnight"

// rollover computes the next rotation boundary for a file sink.
//
// Accepted units (case-insensitive): S, M, H, D multiply the interval by a
// fixed duration; MIDNIGHT rotates at the start of a day; W0-W6 rotate at the
// midnight that ends the given weekday (0 is Monday).
type rollover struct {
	when     string
	interval int
	every    time.Duration
	weekday  time.Weekday
}

func parseRollover(when string, interval int) (rollover, error) {
	if interval < 1 {
		return rollover{}, errors.Errorf("invalid rotation interval %d", interval)
	}
	r := rollover{when: strings.ToUpper(when), interval: interval}
	switch r.when {
	case "S":
		r.every = time.Second
	case "M":
		r.every = time.Minute
	case "H":
		r.every = time.Hour
	case "D":
		r.every = 24 * time.Hour
	case "MIDNIGHT":
	default:
		if len(r.when) != 2 || r.when[0] != 'W' {
			return rollover{}, errors.Errorf("invalid rotation boundary %q", when)
		}
		day, err := strconv.Atoi(r.when[1:])
		if err != nil || day < 0 || day > 6 {
			return rollover{}, errors.Errorf("invalid rotation weekday %q, must be W0-W6", when)
		}
		r.weekday = time.Weekday((day + 1) % 7)
	}
	return r, nil
}

// next returns the first boundary strictly after from.
func (r rollover) next(from time.Time) time.Time {
	if r.every > 0 {
		return from.Add(time.Duration(r.interval) * r.every)
	}
	y, m, d := from.Date()
	midnight := time.Date(y, m, d+1, 0, 0, 0, 0, from.Location())
	if r.when == "MIDNIGHT" {
		return midnight.AddDate(0, 0, r.interval-1)
	}
	for midnight.AddDate(0, 0, -1).Weekday() != r.weekday {
		midnight = midnight.AddDate(0, 0, 1)
	}
	return midnight.AddDate(0, 0, 7*(r.interval-1))
}
