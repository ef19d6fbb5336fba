package invoicing

// clockMinutes parses a wall-clock "HH:MM" string into minutes since midnight.
func clockMinutes(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, ErrMalformedTime
	}
	hour, ok := parseTwoDigits(s[0], s[1])
	if !ok || hour > 23 {
		return 0, ErrMalformedTime
	}
	minute, ok := parseTwoDigits(s[3], s[4])
	if !ok || minute > 59 {
		return 0, ErrMalformedTime
	}
	return hour*60 + minute, nil
}

// Hours returns the duration in hours between two wall-clock times on the
// same calendar day. Returns ErrInvalidTimeRange when end <= start; callers
// must treat that as a data-integrity error on the source record.
func Hours(start, end string) (float64, error) {
	startMin, err := clockMinutes(start)
	if err != nil {
		return 0, err
	}
	endMin, err := clockMinutes(end)
	if err != nil {
		return 0, err
	}
	if endMin <= startMin {
		return 0, ErrInvalidTimeRange
	}
	return float64(endMin-startMin) / 60, nil
}

func parseTwoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}
