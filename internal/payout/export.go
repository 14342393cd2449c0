package payout

import (
	"encoding/csv"
	"fmt"
	"io"

	"news_dashboard/internal/models"
)

// ExportRows flattens payout rows into the shape handed to export
// consumers. LastArticleDate is the latest publish date the row still
// carries, so a date-filtered view exports the in-scope maximum.
func ExportRows(rows []models.PayoutRow, rate float64) []models.ExportRow {
	out := make([]models.ExportRow, 0, len(rows))
	for _, row := range rows {
		export := models.ExportRow{
			Author:   row.Author,
			Articles: row.ArticleCount,
			Rate:     rate,
			Type:     row.Type,
			Total:    float64(row.ArticleCount) * rate,
		}
		for _, d := range row.PublishedDates {
			if d.After(export.LastArticleDate) {
				export.LastArticleDate = d
			}
		}
		out = append(out, export)
	}
	return out
}

var csvHeader = []string{"Author", "Articles", "Type", "Rate (INR)", "Last Article", "Total (INR)"}

// WriteCSV encodes export rows as CSV.
func WriteCSV(w io.Writer, rows []models.ExportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.Author,
			fmt.Sprintf("%d", row.Articles),
			string(row.Type),
			formatAmount(row.Rate),
			row.LastArticleDate.Format("2006-01-02"),
			formatAmount(row.Total),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
