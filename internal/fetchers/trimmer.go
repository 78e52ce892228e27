package fetchers

import "windcast/internal/models"

// TrimDayWrap removes the rolling window's wrap-around day. A multi-day
// forecast query that starts mid-week can include a few hours of a weekday
// that recurs a week later at the far edge of the window; only the first,
// contiguous occurrence of each weekday survives.
//
// Two passes: the first records, per weekday label, the day-of-month of its
// first record in series order; the second keeps only records whose
// day-of-month matches that first value. The comparison is day-of-month
// only, so a 31st and a 1st falling on the same weekday would be treated as
// the same day; with windows shorter than four weeks that cannot happen.
func TrimDayWrap(series models.Series) models.Series {
	if len(series) == 0 {
		return series
	}

	firstDay := make(map[string]int, 7)
	for _, p := range series {
		if _, seen := firstDay[p.Weekday]; !seen {
			firstDay[p.Weekday] = p.Timestamp.Day()
		}
	}

	trimmed := make(models.Series, 0, len(series))
	for _, p := range series {
		if p.Timestamp.Day() == firstDay[p.Weekday] {
			trimmed = append(trimmed, p)
		}
	}

	return trimmed
}
