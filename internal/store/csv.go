package store

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"
)

// csvHeader is the exported column set, in table order.
var csvHeader = []string{
	"id", "student_id", "subject",
	"q1", "q2", "q3", "q4", "q5",
	"q6_jobs", "q7_rooms", "q8_resources", "q9_transport", "q10_laptop",
	"comments", "created_at",
}

// WriteHistoryCSV streams the full feedback history to w as CSV: one header
// row plus one row per stored feedback. It returns the number of data rows.
func (s *Store) WriteHistoryCSV(ctx context.Context, w io.Writer) (int, error) {
	var rows []Feedback
	err := s.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&rows).Error
	if err != nil {
		return 0, fmt.Errorf("load feedbacks: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}

	for _, r := range rows {
		record := []string{
			strconv.FormatUint(uint64(r.ID), 10),
			strconv.FormatUint(uint64(r.StudentID), 10),
			r.Subject,
			nullableInt(r.Q1), nullableInt(r.Q2), nullableInt(r.Q3),
			nullableInt(r.Q4), nullableInt(r.Q5),
			r.Q6Jobs,
			nullableInt(r.Q7Rooms), nullableInt(r.Q8Resources),
			r.Q9Transport, r.Q10Laptop,
			r.Comments,
			r.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return 0, fmt.Errorf("write row %d: %w", r.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("flush csv: %w", err)
	}
	return len(rows), nil
}

func nullableInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
