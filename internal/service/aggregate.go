package service

import (
	"sort"
	"time"

	"github.com/iamdanusabu/laundryapp/internal/domain"
)

// DashboardSummary is the result of folding a fetched transaction set:
// totals plus a day-bucketed sales series.
type DashboardSummary struct {
	TotalSales       int64
	TransactionCount int
	GarmentCount     int
	Series           []SalesPoint
}

// SalesPoint is one calendar day of sales.
type SalesPoint struct {
	Date   string
	Amount int64
}

const salesDateLayout = "2006-01-02"

// Summarize computes the dashboard metrics as a pure reduction over the
// transactions the caller already fetched. Days are bucketed by the calendar
// date of created_at in loc; the server's local zone is the documented
// choice, so a shop sees its own business days, not UTC ones.
func Summarize(txs []domain.Transaction, loc *time.Location) DashboardSummary {
	if loc == nil {
		loc = time.Local
	}
	var s DashboardSummary
	byDay := make(map[string]int64)
	for _, t := range txs {
		s.TotalSales += t.TotalAmount
		s.TransactionCount++
		s.GarmentCount += domain.CountGarments(t.Items)
		day := t.CreatedAt.In(loc).Format(salesDateLayout)
		byDay[day] += t.TotalAmount
	}
	s.Series = make([]SalesPoint, 0, len(byDay))
	for day, amount := range byDay {
		s.Series = append(s.Series, SalesPoint{Date: day, Amount: amount})
	}
	sort.Slice(s.Series, func(i, j int) bool { return s.Series[i].Date < s.Series[j].Date })
	return s
}
