package util

import "time"

const dateLayout = "01/02/2006"

// HumanDate formats t as a short local calendar date.
func HumanDate(t time.Time) string {
	return t.Local().Format(dateLayout)
}

// Seconds renders d as seconds with two decimals, e.g. "1.25".
func Seconds(d time.Duration) string {
	return formatFloat(d.Seconds())
}
