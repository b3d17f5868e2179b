package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrBadTimezone = errors.New("bad timezone")

// Clock is the time source. Tests inject a fixed clock.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// ParseOffset parses "<signed hours>[.<minutes>]" into a UTC offset in
// seconds. The sign applies to the minutes too: "-3.30" is -3h30m.
func ParseOffset(tz string) (int, error) {
	hourPart, minPart, hasMin := strings.Cut(tz, ".")
	hours, err := strconv.Atoi(hourPart)
	if err != nil || hours < -12 || hours > 14 {
		return 0, fmt.Errorf("%w: %q", ErrBadTimezone, tz)
	}
	minutes := 0
	if hasMin {
		minutes, err = strconv.Atoi(minPart)
		if err != nil || minutes < 0 || minutes > 59 || strings.HasPrefix(minPart, "+") {
			return 0, fmt.Errorf("%w: %q", ErrBadTimezone, tz)
		}
	}
	sign := 1
	if strings.HasPrefix(hourPart, "-") {
		sign = -1
	}
	if hours < 0 {
		hours = -hours
	}
	return sign * (hours*3600 + minutes*60), nil
}

// ValidTimezone reports whether tz is "auto" or a parseable offset.
func ValidTimezone(tz string) bool {
	if tz == "auto" || tz == "" {
		return true
	}
	_, err := ParseOffset(tz)
	return err == nil
}

// ZonedDate returns now as seen in tz. "auto" (or empty) keeps the local
// zone; anything else is a fixed offset from UTC.
func ZonedDate(now time.Time, tz string) (time.Time, error) {
	if tz == "auto" || tz == "" {
		return now, nil
	}
	offset, err := ParseOffset(tz)
	if err != nil {
		return now, err
	}
	return now.In(time.FixedZone(zoneName(offset), offset)), nil
}

func zoneName(offset int) string {
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	return fmt.Sprintf("UTC%c%02d:%02d", sign, offset/3600, offset%3600/60)
}
