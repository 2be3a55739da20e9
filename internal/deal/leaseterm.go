package deal

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnparseableDate is returned for expiration strings in none of the
// supported shapes or with out-of-range parts.
var ErrUnparseableDate = errors.New("unparseable expiration date")

// DaysPerYear averages leap years.
const DaysPerYear = 365.25

var (
	reMonthYear      = regexp.MustCompile(`^(\w+)\s+(\d{4})`)
	reMonthSlashYear = regexp.MustCompile(`^(\d{1,2})/(\d{4})$`)
	reFullDate       = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
)

var monthNames = func() map[string]time.Month {
	m := make(map[string]time.Month, 25)
	for mo := time.January; mo <= time.December; mo++ {
		name := strings.ToLower(mo.String())
		m[name] = mo
		m[name[:3]] = mo
	}
	m["sept"] = time.September
	return m
}()

// ParseExpiration resolves "Month Year", "MM/YYYY" or "MM/DD/YYYY". The
// month-only shapes resolve to the last day of that month.
func ParseExpiration(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if m := reMonthYear.FindStringSubmatch(s); m != nil {
		month, ok := monthNames[strings.ToLower(m[1])]
		if !ok {
			return time.Time{}, fmt.Errorf("%w: unknown month %q", ErrUnparseableDate, m[1])
		}
		year, _ := strconv.Atoi(m[2])
		return endOfMonth(year, int(month))
	}
	if m := reMonthSlashYear.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[2])
		return endOfMonth(year, month)
	}
	if m := reFullDate.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		return civilDate(year, month, day)
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableDate, s)
}

// RemainingYears returns the years from now's calendar date to the
// expiration, rounded to two decimals. Past dates are negative.
func RemainingYears(expiration string, now time.Time) (float64, error) {
	end, err := ParseExpiration(expiration)
	if err != nil {
		return 0, err
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := (end.Unix() - today.Unix()) / 86400
	return math.Round(float64(days)/DaysPerYear*100) / 100, nil
}

func endOfMonth(year, month int) (time.Time, error) {
	if _, err := civilDate(year, month, 1); err != nil {
		return time.Time{}, err
	}
	// day 0 of the next month is the last day of this one
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC), nil
}

func civilDate(year, month, day int) (time.Time, error) {
	if year < 1 || month < 1 || month > 12 || day < 1 {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d out of range", ErrUnparseableDate, year, month, day)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d out of range", ErrUnparseableDate, year, month, day)
	}
	return t, nil
}

// ResolveLeaseTerm recomputes the remaining years from the expiration date
// and collapses the term to a bare years value. An expired lease has 0 years
// left. An unparseable date leaves the years null and returns the error.
func (f *Fields) ResolveLeaseTerm(now time.Time) error {
	if f.LeaseTerm.Collapsed() {
		return nil
	}
	years, err := RemainingYears(f.LeaseTerm.Expiration, now)
	if err != nil {
		f.LeaseTerm = LeaseTerm{Years: Null()}
		return err
	}
	f.LeaseTerm = LeaseTerm{Years: Text(FormatFloat(max(years, 0)))}
	return nil
}
