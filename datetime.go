package goofx

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dateTimePattern is the OFX date-time grammar YYYYMMDD[HHMMSS[.XXX]][[±H[.MM][:TZ]]].
var dateTimePattern = regexp.MustCompile(
	`^(?P<date>\d{8})(?:(?P<time>\d{6})(?:\.(?P<ms>\d{3}))?)?(?:\[(?P<hours>[+-]?\d{1,2})(?:\.(?P<minutes>\d{2}))?(?::(?P<tz>[^\]]*))?\])?$`)

// DecodeDateTime parses an OFX date-time. A value whose date is all zeroes, a placeholder some
// institutions emit instead of omitting the element, yields nil without error. Values without
// an offset suffix are UTC.
//
//	"20131205100000[-3:EST]" -> 2013-12-05 10:00:00 -0300 EST
//	"20190509120000"         -> 2019-05-09 12:00:00 +0000 UTC
//	"00000000"               -> nil
func DecodeDateTime(s string) (*time.Time, error) {
	parts := dateTimePattern.FindStringSubmatch(s)
	if parts == nil {
		return nil, dateTimeError(s, errors.New("does not match YYYYMMDD[HHMMSS[.XXX]][[±H[.MM]:TZ]]"))
	}
	date, clock, ms, hours, minutes, tz := parts[1], parts[2], parts[3], parts[4], parts[5], parts[6]
	if date == "00000000" {
		return nil, nil
	}

	fields := []int{atoi(date[0:4]), atoi(date[4:6]), atoi(date[6:8]), 0, 0, 0, 0}
	if clock != "" {
		fields[3], fields[4], fields[5] = atoi(clock[0:2]), atoi(clock[2:4]), atoi(clock[4:6])
	}
	if ms != "" {
		fields[6] = atoi(ms)
	}

	loc := time.UTC
	if hours != "" {
		offset, err := decodeOffset(hours, minutes)
		if err != nil {
			return nil, dateTimeError(s, err)
		}
		loc = time.FixedZone(tz, offset)
	}

	t := time.Date(fields[0], time.Month(fields[1]), fields[2], fields[3], fields[4], fields[5],
		fields[6]*int(time.Millisecond), loc)
	// time.Date normalizes out of range fields, so a round trip exposes them.
	if t.Year() != fields[0] || int(t.Month()) != fields[1] || t.Day() != fields[2] ||
		t.Hour() != fields[3] || t.Minute() != fields[4] || t.Second() != fields[5] {
		return nil, dateTimeError(s, errors.New("date or time out of range"))
	}
	return &t, nil
}

// decodeOffset returns the UTC offset in seconds for the signed hours and optional minutes.
func decodeOffset(hours, minutes string) (int, error) {
	h, err := strconv.Atoi(strings.TrimPrefix(hours, "+"))
	if err != nil {
		return 0, err
	}
	m := 0
	if minutes != "" {
		m = atoi(minutes)
	}
	if h < -14 || h > 14 || m > 59 {
		return 0, fmt.Errorf("offset %s.%02d out of range", hours, m)
	}
	offset := (abs(h)*60 + m) * 60
	if strings.HasPrefix(hours, "-") {
		offset = -offset
	}
	return offset, nil
}

// atoi converts a run of ASCII digits already validated by dateTimePattern.
func atoi(digits string) int {
	n := 0
	for i := 0; i < len(digits); i++ {
		n = n*10 + int(digits[i]-'0')
	}
	return n
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func dateTimeError(s string, err error) error {
	return &ScalarFormatError{Kind: "date-time", Value: s, Err: err}
}
