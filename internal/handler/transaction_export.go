package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/iamdanusabu/laundryapp/internal/domain"
	"github.com/xuri/excelize/v2"
)

// export downloads the filtered transaction set as CSV or XLSX.
func (h TransactionHandler) export(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseTransactionFilter(w, r, orLocal(h.Location))
	if !ok {
		return
	}
	txs, err := h.Repo.List(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	txs = domain.FilterBySearch(txs, r.URL.Query().Get("q"))

	format := r.URL.Query().Get("format")
	switch format {
	case "", "csv":
		data, err := exportTransactionsCSV(txs)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="transactions.csv"`)
		_, _ = w.Write(data)
	case "xlsx":
		data, err := exportTransactionsXLSX(txs)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="transactions.xlsx"`)
		_, _ = w.Write(data)
	default:
		writeError(w, http.StatusBadRequest, "unsupported format")
	}
}

var exportHeader = []string{"Receipt ID", "Customer Phone", "Status", "Items", "Garments", "Total", "Created At", "Updated At"}

func exportRow(t domain.Transaction) []string {
	return []string{
		t.ID,
		t.CustomerPhone,
		t.Status,
		itemSummary(t.Items),
		strconv.Itoa(domain.CountGarments(t.Items)),
		strconv.FormatInt(t.TotalAmount, 10),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	}
}

func exportTransactionsCSV(txs []domain.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(exportHeader)
	for _, t := range txs {
		_ = w.Write(exportRow(t))
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func exportTransactionsXLSX(txs []domain.Transaction) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Transactions"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	for c, v := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(c+1, 1)
		_ = f.SetCellValue(sheet, cell, v)
	}
	for r, t := range txs {
		for c, v := range exportRow(t) {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 12)
	_ = f.SetColWidth(sheet, "B", "B", 18)
	_ = f.SetColWidth(sheet, "C", "C", 16)
	_ = f.SetColWidth(sheet, "D", "D", 36)
	_ = f.SetColWidth(sheet, "E", "F", 12)
	_ = f.SetColWidth(sheet, "G", "H", 22)

	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1F2937"}, Pattern: 1},
	})
	_ = f.SetCellStyle(sheet, "A1", "H1", style)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
