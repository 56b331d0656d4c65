package render

import (
	"math"
	"strconv"
)

// TitleYear formats "Title (Year)", leaving the year out when it is unknown (0).
func TitleYear(title string, year int) string {
	if year == 0 {
		return title
	}
	return title + " (" + strconv.Itoa(year) + ")"
}

// Rating formats a rating the way the dataset writes it: integral values
// keep one decimal ("9.0"), others print in shortest form ("8.45").
func Rating(r float64) string {
	if r == math.Trunc(r) {
		return strconv.FormatFloat(r, 'f', 1, 64)
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
