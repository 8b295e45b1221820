package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/iamdanusabu/laundryapp/internal/service"
)

func TestTransactionExportCSV(t *testing.T) {
	r := newTransactionRouter(seedTransactions(), service.AnyTransition())

	req := httptest.NewRequest(http.MethodGet, "/transactions/export?status=In+Queue", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "transactions.csv")

	rows, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus the two In Queue rows")
	assert.Equal(t, exportHeader, rows[0])
	assert.Equal(t, "111111", rows[1][0])
	assert.Equal(t, "333333", rows[2][0])
	assert.Equal(t, "In Queue", rows[1][2])
}

func TestTransactionExportXLSX(t *testing.T) {
	r := newTransactionRouter(seedTransactions(), service.AnyTransition())

	req := httptest.NewRequest(http.MethodGet, "/transactions/export?format=xlsx", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "transactions.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Transactions")
	require.NoError(t, err)
	require.Len(t, rows, 4, "header plus all three rows")
	assert.Equal(t, exportHeader, rows[0])
}

func TestTransactionExportUnknownFormat(t *testing.T) {
	r := newTransactionRouter(seedTransactions(), service.AnyTransition())

	req := httptest.NewRequest(http.MethodGet, "/transactions/export?format=pdf", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
