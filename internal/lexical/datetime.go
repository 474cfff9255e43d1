package lexical

import "time"

// ParseDateTime proves membership in the dateTime lexical space and maps
// the literal to a time.Time. The second boolean result reports whether
// the literal carried a timezone. Hour 24 rolls over to the next day and
// the leap second 60 rolls over to the next minute, as the value space
// has no distinct instants for either.
//
// Years are limited to 0001 through 9999 and fractional seconds to nine
// digits, the resolution time.Time can carry.
func ParseDateTime(s string) (time.Time, bool, *Error) {
	if s == "" {
		return time.Time{}, false, errAt(KindEmpty, 0)
	}
	year, ok := atoiN(s, 0, 4)
	if !ok {
		return time.Time{}, false, errAt(KindBadChar, 0)
	}
	if year == 0 {
		return time.Time{}, false, errAt(KindFieldRange, 0)
	}
	if err := expect(s, 4, '-'); err != nil {
		return time.Time{}, false, err
	}
	month, ok := atoiN(s, 5, 2)
	if !ok {
		return time.Time{}, false, errAt(KindBadChar, 5)
	}
	if month < 1 || month > 12 {
		return time.Time{}, false, errAt(KindFieldRange, 5)
	}
	if err := expect(s, 7, '-'); err != nil {
		return time.Time{}, false, err
	}
	day, ok := atoiN(s, 8, 2)
	if !ok {
		return time.Time{}, false, errAt(KindBadChar, 8)
	}
	if day < 1 || day > daysInMonth(year, month) {
		return time.Time{}, false, errAt(KindFieldRange, 8)
	}
	if err := expect(s, 10, 'T'); err != nil {
		return time.Time{}, false, err
	}
	hour, ok := atoiN(s, 11, 2)
	if !ok {
		return time.Time{}, false, errAt(KindBadChar, 11)
	}
	if err := expect(s, 13, ':'); err != nil {
		return time.Time{}, false, err
	}
	minute, ok := atoiN(s, 14, 2)
	if !ok {
		return time.Time{}, false, errAt(KindBadChar, 14)
	}
	if minute > 59 {
		return time.Time{}, false, errAt(KindFieldRange, 14)
	}
	if err := expect(s, 16, ':'); err != nil {
		return time.Time{}, false, err
	}
	second, ok := atoiN(s, 17, 2)
	if !ok {
		return time.Time{}, false, errAt(KindBadChar, 17)
	}
	if second > 60 {
		return time.Time{}, false, errAt(KindFieldRange, 17)
	}
	i := 19
	nanos := 0
	if i < len(s) && s[i] == '.' {
		i++
		scale := 100000000
		n := 0
		for i < len(s) && isDigit(s[i]) {
			if n == 9 {
				return time.Time{}, false, errAt(KindTooLong, i)
			}
			nanos += int(s[i]-'0') * scale
			scale /= 10
			n++
			i++
		}
		if n == 0 {
			return time.Time{}, false, errAt(KindNoDigits, i)
		}
	}
	// hour 24 only names the start of the next day
	if hour > 24 || (hour == 24 && (minute != 0 || second != 0 || nanos != 0)) {
		return time.Time{}, false, errAt(KindFieldRange, 11)
	}
	loc := time.UTC
	hasTZ := false
	if i < len(s) {
		switch s[i] {
		case 'Z':
			hasTZ = true
			i++
		case '+', '-':
			neg := s[i] == '-'
			tzStart := i
			i++
			oh, ok := atoiN(s, i, 2)
			if !ok {
				return time.Time{}, false, errAt(KindBadChar, i)
			}
			if err := expect(s, i+2, ':'); err != nil {
				return time.Time{}, false, err
			}
			om, ok := atoiN(s, i+3, 2)
			if !ok {
				return time.Time{}, false, errAt(KindBadChar, i+3)
			}
			if oh > 14 || om > 59 || (oh == 14 && om != 0) {
				return time.Time{}, false, errAt(KindFieldRange, tzStart)
			}
			offset := oh*3600 + om*60
			if neg {
				offset = -offset
			}
			if offset == 0 {
				loc = time.UTC
			} else {
				loc = time.FixedZone("", offset)
			}
			hasTZ = true
			i += 5
		default:
			return time.Time{}, false, errAt(KindBadChar, i)
		}
	}
	if i != len(s) {
		return time.Time{}, false, errAt(KindBadChar, i)
	}
	// time.Date normalizes hour 24 and second 60 by rolling forward
	t := time.Date(year, time.Month(month), day, hour, minute, second, nanos, loc)
	return t, hasTZ, nil
}

func expect(s string, i int, c byte) *Error {
	if i >= len(s) || s[i] != c {
		return errAt(KindBadChar, i)
	}
	return nil
}

// atoiN reads exactly n digits starting at i.
func atoiN(s string, i, n int) (int, bool) {
	if i+n > len(s) {
		return 0, false
	}
	v := 0
	for j := i; j < i+n; j++ {
		if !isDigit(s[j]) {
			return 0, false
		}
		v = v*10 + int(s[j]-'0')
	}
	return v, true
}

func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	}
	if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
		return 29
	}
	return 28
}
