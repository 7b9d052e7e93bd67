package domain

import "time"

// OverviewMonths is the length of the articles-per-month series.
const OverviewMonths = 12

// ArticleHighlight names one article in an overview.
type ArticleHighlight struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Views int64  `json:"views"`
}

// MonthCount is the number of articles published in one calendar month (UTC).
type MonthCount struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Count int `json:"count"`
}

// AuthorStats aggregates an author's non-deleted articles.
type AuthorStats struct {
	TotalArticles int
	TotalLikes    int64
	TotalViews    int64
	TotalComments int
	// MostPopular is the most viewed approved article, nil when there is none.
	MostPopular *ArticleHighlight
	// Monthly holds only months with at least one article.
	Monthly []MonthCount
}

// OverviewWindowStart returns the first instant of the oldest month in the
// series ending with the month of now.
func OverviewWindowStart(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month()-(OverviewMonths-1), 1, 0, 0, 0, 0, time.UTC)
}

// MonthlySeries expands sparse counts into one entry per month, oldest first,
// for the OverviewMonths months ending with the month of now.
func MonthlySeries(counts []MonthCount, now time.Time) []MonthCount {
	byMonth := make(map[[2]int]int, len(counts))
	for _, c := range counts {
		byMonth[[2]int{c.Year, c.Month}] += c.Count
	}

	start := OverviewWindowStart(now)
	series := make([]MonthCount, 0, OverviewMonths)
	for i := 0; i < OverviewMonths; i++ {
		m := start.AddDate(0, i, 0)
		key := [2]int{m.Year(), int(m.Month())}
		series = append(series, MonthCount{Year: key[0], Month: key[1], Count: byMonth[key]})
	}
	return series
}
