package domain

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []TransactionItem
		want  int64
	}{
		{
			name:  "empty",
			items: nil,
			want:  0,
		},
		{
			name:  "single item",
			items: []TransactionItem{{Name: "Shirt", Quantity: 2, Price: 50}},
			want:  100,
		},
		{
			name: "multiple items",
			items: []TransactionItem{
				{Name: "Shirt", Quantity: 2, Price: 50},
				{Name: "Trousers", Quantity: 3, Price: 80},
				{Name: "Scarf", Quantity: 1, Price: 25},
			},
			want: 365,
		},
		{
			name:  "zero quantity contributes nothing",
			items: []TransactionItem{{Name: "Coat", Quantity: 0, Price: 500}},
			want:  0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeTotal(tt.items))
		})
	}
}

func TestCountGarments(t *testing.T) {
	items := []TransactionItem{
		{Name: "Shirt", Quantity: 2},
		{Name: "Sheet", Quantity: 5},
	}
	assert.Equal(t, 7, CountGarments(items))
	assert.Equal(t, 0, CountGarments(nil))
}

func TestNewReceiptID(t *testing.T) {
	for i := 0; i < 1000; i++ {
		id := NewReceiptID()
		require.Len(t, id, 6)
		n, err := strconv.Atoi(id)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 100000)
		require.LessOrEqual(t, n, 999999)
	}
}

func TestMatchesSearch(t *testing.T) {
	tx := Transaction{ID: "123456", CustomerPhone: "9999999999", Status: "In Queue"}

	tests := []struct {
		term string
		want bool
	}{
		{"", true},
		{"1234", true},
		{"9999", true},
		{"queue", true},
		{"QUEUE", true},
		{"in q", true},
		{"done", false},
		{"0000", false},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, tx.MatchesSearch(tt.term))
		})
	}
}

func TestFilterBySearch(t *testing.T) {
	txs := []Transaction{
		{ID: "111111", CustomerPhone: "5550001", Status: "In Queue"},
		{ID: "222222", CustomerPhone: "5550002", Status: "Washing"},
		{ID: "333333", CustomerPhone: "7770003", Status: "Done"},
	}

	t.Run("result is a subset with matching members only", func(t *testing.T) {
		got := FilterBySearch(txs, "555")
		require.Len(t, got, 2)
		for _, tx := range got {
			assert.True(t, tx.MatchesSearch("555"))
		}
	})

	t.Run("status term matches case-insensitively", func(t *testing.T) {
		got := FilterBySearch(txs, "wash")
		require.Len(t, got, 1)
		assert.Equal(t, "222222", got[0].ID)
	})

	t.Run("empty term returns everything", func(t *testing.T) {
		assert.Equal(t, txs, FilterBySearch(txs, ""))
	})

	t.Run("no match returns empty", func(t *testing.T) {
		assert.Empty(t, FilterBySearch(txs, "zzz"))
	})
}
