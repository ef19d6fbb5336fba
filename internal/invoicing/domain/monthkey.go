package invoicing

import "fmt"

// MonthKey is the "YYYY-MM" prefix of a date-only string. It is the canonical
// unit of invoice periodization: month membership is decided by string prefix,
// never by parsing into a calendar value, so a block on the 1st of a month can
// never shift into the prior month under timezone conversion.
type MonthKey string

// DateMonthKey derives the month key from an ISO "YYYY-MM-DD" string. Every
// consumer of month membership must route through this function.
func DateMonthKey(date string) (MonthKey, error) {
	if len(date) < 10 || !isISODateShaped(date) {
		return "", ErrMalformedDate
	}
	return MonthKey(date[:7]), nil
}

// BuildMonthKey builds the key for an explicit year and month selection.
func BuildMonthKey(year, month int) (MonthKey, error) {
	if year < 1000 || year > 9999 || month < 1 || month > 12 {
		return "", ErrInvalidPeriod
	}
	return MonthKey(fmt.Sprintf("%04d-%02d", year, month)), nil
}

// YearMonth parses the key back into numeric year and month.
func (k MonthKey) YearMonth() (int, int, error) {
	if len(k) != 7 || k[4] != '-' {
		return 0, 0, ErrMalformedDate
	}
	year := 0
	for _, c := range []byte(k[:4]) {
		if c < '0' || c > '9' {
			return 0, 0, ErrMalformedDate
		}
		year = year*10 + int(c-'0')
	}
	month, ok := parseTwoDigits(k[5], k[6])
	if !ok || month < 1 || month > 12 {
		return 0, 0, ErrMalformedDate
	}
	return year, month, nil
}

// String returns the raw key.
func (k MonthKey) String() string { return string(k) }

func isISODateShaped(date string) bool {
	for i := 0; i < 10; i++ {
		if i == 4 || i == 7 {
			if date[i] != '-' {
				return false
			}
			continue
		}
		if date[i] < '0' || date[i] > '9' {
			return false
		}
	}
	month, _ := parseTwoDigits(date[5], date[6])
	if month < 1 || month > 12 {
		return false
	}
	day, _ := parseTwoDigits(date[8], date[9])
	return day >= 1 && day <= 31
}
