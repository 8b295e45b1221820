package domain

import (
	"math/rand/v2"
	"strconv"
	"strings"
)

// ComputeTotal returns the sum of quantity*price over items. It is computed
// once at submit time and persisted as total_amount.
func ComputeTotal(items []TransactionItem) int64 {
	var total int64
	for _, it := range items {
		total += int64(it.Quantity) * it.Price
	}
	return total
}

// CountGarments returns the total item quantity across a transaction.
func CountGarments(items []TransactionItem) int {
	count := 0
	for _, it := range items {
		count += it.Quantity
	}
	return count
}

// NewReceiptID generates a random 6-digit numeric receipt id. Uniqueness is
// the caller's problem: the repository retries on collision and the table's
// primary key is the backstop.
func NewReceiptID() string {
	return strconv.Itoa(100000 + rand.IntN(900000))
}

// MatchesSearch reports whether the transaction's phone, receipt id, or
// status contains the term, case-insensitively. An empty term matches all.
func (t Transaction) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(t.CustomerPhone), term) ||
		strings.Contains(strings.ToLower(t.ID), term) ||
		strings.Contains(strings.ToLower(t.Status), term)
}

// FilterBySearch is the in-process stage of the two-stage transaction filter:
// it narrows an already server-filtered set by a live search term. The result
// is always a subset of its input.
func FilterBySearch(txs []Transaction, term string) []Transaction {
	if term == "" {
		return txs
	}
	out := make([]Transaction, 0, len(txs))
	for _, t := range txs {
		if t.MatchesSearch(term) {
			out = append(out, t)
		}
	}
	return out
}
