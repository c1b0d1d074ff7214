package booking

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// DateLayout is the calendar date format stored in booking documents.
const DateLayout = "2006-01-02"

// ParseDate parses a stored calendar date as midnight UTC.
func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return t, nil
}

// Nights returns the number of nights between two calendar dates, rounded to
// the nearest whole day. Order does not matter.
func Nights(checkIn, checkOut string) (int, error) {
	in, err := ParseDate(checkIn)
	if err != nil {
		return 0, err
	}
	out, err := ParseDate(checkOut)
	if err != nil {
		return 0, err
	}
	days := out.Sub(in).Hours() / 24
	return int(math.Round(math.Abs(days))), nil
}

// ParsePrice reads a room price stored as a numeric string.
func ParsePrice(price string) (float64, error) {
	trimmed := strings.TrimSpace(price)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidPrice)
	}
	p, err := cast.ToFloat64E(trimmed)
	if err != nil || math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, price)
	}
	return p, nil
}

// TotalPrice is the derived totalPrice of a stay: nights times the nightly price.
func TotalPrice(checkIn, checkOut, price string) (float64, error) {
	nights, err := Nights(checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	p, err := ParsePrice(price)
	if err != nil {
		return 0, err
	}
	return float64(nights) * p, nil
}
