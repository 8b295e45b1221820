package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatusRouter(reg *fakeStatusRegistry) chi.Router {
	r := chi.NewRouter()
	StatusHandler{Repo: reg}.RegisterRoutes(r)
	return r
}

func TestStatusList(t *testing.T) {
	r := newStatusRouter(&fakeStatusRegistry{names: []string{"In Queue", "Washing", "Done"}})

	req := httptest.NewRequest(http.MethodGet, "/statuses", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Order int    `json:"order"`
	}
	decodeData(t, rec.Body, &got)
	require.Len(t, got, 3)
	assert.Equal(t, "In Queue", got[0].Name)
	assert.Equal(t, 0, got[0].Order)
	assert.Equal(t, "Done", got[2].Name)
	assert.Equal(t, 2, got[2].Order)
}

func TestStatusAdd(t *testing.T) {
	reg := &fakeStatusRegistry{names: []string{"In Queue"}}
	r := newStatusRouter(reg)

	t.Run("appends at the end and trims the name", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/statuses", strings.NewReader(`{"name":"  Ironing "}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got struct {
			Name  string `json:"name"`
			Order int    `json:"order"`
		}
		decodeData(t, rec.Body, &got)
		assert.Equal(t, "Ironing", got.Name)
		assert.Equal(t, 1, got.Order)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/statuses", strings.NewReader(`{"name":"   "}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestStatusRename(t *testing.T) {
	reg := &fakeStatusRegistry{names: []string{"In Queue", "Washing"}}
	r := newStatusRouter(reg)

	req := httptest.NewRequest(http.MethodPut, "/statuses/2", strings.NewReader(`{"name":"Drying"}`))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"In Queue", "Drying"}, reg.names)

	req = httptest.NewRequest(http.MethodPut, "/statuses/99", strings.NewReader(`{"name":"Drying"}`))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatusDelete(t *testing.T) {
	reg := &fakeStatusRegistry{names: []string{"In Queue", "Washing"}}
	r := newStatusRouter(reg)

	req := httptest.NewRequest(http.MethodDelete, "/statuses/1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"Washing"}, reg.names)

	req = httptest.NewRequest(http.MethodDelete, "/statuses/99", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatusReorder(t *testing.T) {
	t.Run("applies a full permutation and returns the new order", func(t *testing.T) {
		reg := &fakeStatusRegistry{names: []string{"In Queue", "Washing", "Done"}}
		r := newStatusRouter(reg)

		req := httptest.NewRequest(http.MethodPut, "/statuses/reorder", strings.NewReader(`{"ids":[3,1,2]}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"Done", "In Queue", "Washing"}, reg.names)
		var got []struct {
			Name string `json:"name"`
		}
		decodeData(t, rec.Body, &got)
		require.Len(t, got, 3)
		assert.Equal(t, "Done", got[0].Name)
	})

	t.Run("partial sequence rejected without changes", func(t *testing.T) {
		reg := &fakeStatusRegistry{names: []string{"In Queue", "Washing", "Done"}}
		r := newStatusRouter(reg)

		req := httptest.NewRequest(http.MethodPut, "/statuses/reorder", strings.NewReader(`{"ids":[1,2]}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, []string{"In Queue", "Washing", "Done"}, reg.names)
	})

	t.Run("empty sequence rejected", func(t *testing.T) {
		r := newStatusRouter(&fakeStatusRegistry{names: []string{"In Queue"}})
		req := httptest.NewRequest(http.MethodPut, "/statuses/reorder", strings.NewReader(`{"ids":[]}`))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
