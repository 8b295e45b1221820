package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamdanusabu/laundryapp/internal/domain"
)

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, time.UTC)
	assert.Zero(t, s.TotalSales)
	assert.Zero(t, s.TransactionCount)
	assert.Zero(t, s.GarmentCount)
	assert.Empty(t, s.Series)
}

func TestSummarizeTotals(t *testing.T) {
	day := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	txs := []domain.Transaction{
		{
			TotalAmount: 150,
			Items:       []domain.TransactionItem{{Quantity: 3}},
			CreatedAt:   day,
		},
		{
			TotalAmount: 250,
			Items:       []domain.TransactionItem{{Quantity: 1}, {Quantity: 4}},
			CreatedAt:   day.Add(2 * time.Hour),
		},
	}

	s := Summarize(txs, time.UTC)

	assert.Equal(t, int64(400), s.TotalSales)
	assert.Equal(t, 2, s.TransactionCount)
	assert.Equal(t, 8, s.GarmentCount)
	require.Len(t, s.Series, 1)
	assert.Equal(t, SalesPoint{Date: "2025-03-10", Amount: 400}, s.Series[0])
}

func TestSummarizeBucketsByLocalDay(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	// 23:30 UTC on March 10 is already March 11 in UTC+7.
	late := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)
	txs := []domain.Transaction{
		{TotalAmount: 100, CreatedAt: late},
		{TotalAmount: 50, CreatedAt: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)},
	}

	s := Summarize(txs, jakarta)

	require.Len(t, s.Series, 2)
	assert.Equal(t, SalesPoint{Date: "2025-03-10", Amount: 50}, s.Series[0])
	assert.Equal(t, SalesPoint{Date: "2025-03-11", Amount: 100}, s.Series[1])
}

func TestSummarizeSeriesSorted(t *testing.T) {
	txs := []domain.Transaction{
		{TotalAmount: 10, CreatedAt: time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)},
		{TotalAmount: 20, CreatedAt: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)},
		{TotalAmount: 30, CreatedAt: time.Date(2025, 3, 11, 12, 0, 0, 0, time.UTC)},
	}

	s := Summarize(txs, time.UTC)

	require.Len(t, s.Series, 3)
	assert.Equal(t, "2025-03-10", s.Series[0].Date)
	assert.Equal(t, "2025-03-11", s.Series[1].Date)
	assert.Equal(t, "2025-03-12", s.Series[2].Date)
}
