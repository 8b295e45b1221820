package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamdanusabu/laundryapp/internal/domain"
)

func newDashboardRouter(store *fakeTransactionStore, loc *time.Location) chi.Router {
	r := chi.NewRouter()
	DashboardHandler{Repo: store, Location: loc}.RegisterRoutes(r)
	return r
}

func TestDashboardSummary(t *testing.T) {
	base := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	store := newFakeTransactionStore(
		domain.Transaction{
			ID: "111111", Status: "In Queue", TotalAmount: 100,
			Items:     []domain.TransactionItem{{Quantity: 2}},
			CreatedAt: base,
		},
		domain.Transaction{
			ID: "222222", Status: "Done", TotalAmount: 200,
			Items:     []domain.TransactionItem{{Quantity: 1}, {Quantity: 3}},
			CreatedAt: base.Add(2 * time.Hour),
		},
		domain.Transaction{
			ID: "333333", Status: "Washing", TotalAmount: 50,
			Items:     []domain.TransactionItem{{Quantity: 1}},
			CreatedAt: base.AddDate(0, 0, 1),
		},
	)
	r := newDashboardRouter(store, time.UTC)

	type summary struct {
		TotalSales       int64 `json:"totalSales"`
		TransactionCount int   `json:"transactionCount"`
		GarmentCount     int   `json:"garmentCount"`
		SalesByDay       []struct {
			Date   string `json:"date"`
			Amount int64  `json:"amount"`
		} `json:"salesByDay"`
	}

	fetch := func(t *testing.T, query string) summary {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, "/dashboard/summary"+query, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		var got summary
		decodeData(t, rec.Body, &got)
		return got
	}

	t.Run("folds the whole set", func(t *testing.T) {
		got := fetch(t, "")
		assert.Equal(t, int64(350), got.TotalSales)
		assert.Equal(t, 3, got.TransactionCount)
		assert.Equal(t, 7, got.GarmentCount)
		require.Len(t, got.SalesByDay, 2)
		assert.Equal(t, "2025-03-10", got.SalesByDay[0].Date)
		assert.Equal(t, int64(300), got.SalesByDay[0].Amount)
		assert.Equal(t, "2025-03-11", got.SalesByDay[1].Date)
		assert.Equal(t, int64(50), got.SalesByDay[1].Amount)
	})

	t.Run("date range narrows the fold", func(t *testing.T) {
		got := fetch(t, "?from=2025-03-11&to=2025-03-11")
		assert.Equal(t, int64(50), got.TotalSales)
		assert.Equal(t, 1, got.TransactionCount)
	})

	t.Run("status query is ignored, the fold always covers every status", func(t *testing.T) {
		got := fetch(t, "?status=Done")
		assert.Equal(t, 3, got.TransactionCount)
	})

	t.Run("bad range is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/dashboard/summary?from=bad", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

// Bounds and buckets must share the shop's zone: a transaction late in the
// UTC day belongs to the next local day, and a [from, to] request never
// reports a bucket dated outside that range.
func TestDashboardSummaryNonUTCZone(t *testing.T) {
	jakarta := time.FixedZone("UTC+7", 7*60*60)
	// 20:00 UTC on March 10 is 03:00 on March 11 in UTC+7.
	store := newFakeTransactionStore(domain.Transaction{
		ID: "111111", Status: "Done", TotalAmount: 100,
		CreatedAt: time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC),
	})
	r := newDashboardRouter(store, jakarta)

	fetch := func(t *testing.T, query string) (int, []string) {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, "/dashboard/summary"+query, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		var got struct {
			TransactionCount int `json:"transactionCount"`
			SalesByDay       []struct {
				Date string `json:"date"`
			} `json:"salesByDay"`
		}
		decodeData(t, rec.Body, &got)
		dates := make([]string, 0, len(got.SalesByDay))
		for _, p := range got.SalesByDay {
			dates = append(dates, p.Date)
		}
		return got.TransactionCount, dates
	}

	t.Run("local March 10 excludes it", func(t *testing.T) {
		count, dates := fetch(t, "?from=2025-03-10&to=2025-03-10")
		assert.Zero(t, count)
		assert.Empty(t, dates)
	})

	t.Run("local March 11 includes it under its local date", func(t *testing.T) {
		count, dates := fetch(t, "?from=2025-03-11&to=2025-03-11")
		assert.Equal(t, 1, count)
		assert.Equal(t, []string{"2025-03-11"}, dates)
	})
}
