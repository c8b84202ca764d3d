package fatdecode

import (
	"time"
)

// ParseDate decodes a FAT date stamp:
//  Bits 0–4:  day of month, 1-31
//  Bits 5–8:  month, 1-12
//  Bits 9–15: years since 1980, 0-127
// The result is always at midnight UTC.
//
// A day or month of 0 is invalid, in that case time.Time{} is returned so that
// time.Time.IsZero() can be used to detect it.
// Months above 12 roll over into the next year.
func ParseDate(input uint16) time.Time {
	day := input & 0x1F
	month := input & 0x1E0 >> 5
	year := input & 0xFE00 >> 9

	if day == 0 || month == 0 {
		return time.Time{}
	}

	return time.Date(1980+int(year), time.Month(month), int(day), 0, 0, 0, 0, time.UTC)
}

// ParseTime decodes a FAT time stamp with a granularity of two seconds:
//  Bits 0–4:   seconds / 2, 0-29
//  Bits 5–10:  minutes, 0-59
//  Bits 11–15: hours, 0-23
// The date part of the result is January 1, year 1, so midnight is time.Time{}.
//
// Out of range values are added up but the result never exceeds 23:59:59.
func ParseTime(input uint16) time.Time {
	seconds := int(input&0x1F) * 2
	minutes := input & 0x7E0 >> 5
	hours := input & 0xF800 >> 11

	result := time.Date(1, 1, 1, int(hours), int(minutes), seconds, 0, time.UTC)
	if result.Day() > 1 {
		return time.Date(1, 1, 1, 23, 59, 59, 0, time.UTC)
	}

	return result
}
