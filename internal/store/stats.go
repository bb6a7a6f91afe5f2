package store

import (
	"context"
	"fmt"

	"github.com/azizk/campulse/internal/survey"
)

// GlobalStats is the department-wide headline for the admin panel.
type GlobalStats struct {
	TotalFeedbacks   int64
	DistinctSubjects int64
	// AverageSatisfaction is the mean of every non-null scale answer
	// (q1..q5, q7, q8) across all rows, on the 1..5 scale. 0 when there
	// is no scale answer yet.
	AverageSatisfaction float64
}

// EnvironmentStats summarizes the environment-audit rows.
type EnvironmentStats struct {
	AuditCount     int64
	TransportModes map[string]int64
	// LaptopRate is the percentage of "Oui" answers among audits.
	LaptopRate float64
}

// SubjectCount is one entry of the per-subject breakdown.
type SubjectCount struct {
	Subject string
	Count   int64
}

// GlobalStats recomputes the global projection. No caching; every poll hits
// the table.
func (s *Store) GlobalStats(ctx context.Context) (*GlobalStats, error) {
	db := s.db.WithContext(ctx)
	out := &GlobalStats{}

	if err := db.Model(&Feedback{}).Count(&out.TotalFeedbacks).Error; err != nil {
		return nil, fmt.Errorf("count feedbacks: %w", err)
	}
	if err := db.Model(&Feedback{}).Distinct("subject").Count(&out.DistinctSubjects).Error; err != nil {
		return nil, fmt.Errorf("count subjects: %w", err)
	}

	// One pass over every non-null scale column, flattened with UNION ALL.
	var avg *float64
	err := db.Raw(`SELECT AVG(v) FROM (
		SELECT q1 AS v FROM feedbacks WHERE q1 IS NOT NULL
		UNION ALL SELECT q2 FROM feedbacks WHERE q2 IS NOT NULL
		UNION ALL SELECT q3 FROM feedbacks WHERE q3 IS NOT NULL
		UNION ALL SELECT q4 FROM feedbacks WHERE q4 IS NOT NULL
		UNION ALL SELECT q5 FROM feedbacks WHERE q5 IS NOT NULL
		UNION ALL SELECT q7_rooms FROM feedbacks WHERE q7_rooms IS NOT NULL
		UNION ALL SELECT q8_resources FROM feedbacks WHERE q8_resources IS NOT NULL
	)`).Scan(&avg).Error
	if err != nil {
		return nil, fmt.Errorf("average satisfaction: %w", err)
	}
	if avg != nil {
		out.AverageSatisfaction = *avg
	}
	return out, nil
}

// EnvironmentStats recomputes the environment projection.
func (s *Store) EnvironmentStats(ctx context.Context) (*EnvironmentStats, error) {
	db := s.db.WithContext(ctx)
	out := &EnvironmentStats{TransportModes: make(map[string]int64)}

	env := db.Model(&Feedback{}).Where("subject = ?", survey.EnvironmentSubject)
	if err := env.Count(&out.AuditCount).Error; err != nil {
		return nil, fmt.Errorf("count audits: %w", err)
	}

	type modeRow struct {
		Mode  string
		Count int64
	}
	var modes []modeRow
	err := db.Model(&Feedback{}).
		Select("q9_transport AS mode, COUNT(*) AS count").
		Where("subject = ? AND q9_transport <> ''", survey.EnvironmentSubject).
		Group("q9_transport").
		Scan(&modes).Error
	if err != nil {
		return nil, fmt.Errorf("transport distribution: %w", err)
	}
	for _, m := range modes {
		out.TransportModes[m.Mode] = m.Count
	}

	if out.AuditCount > 0 {
		var oui int64
		err := db.Model(&Feedback{}).
			Where("subject = ? AND q10_laptop = ?", survey.EnvironmentSubject, "Oui").
			Count(&oui).Error
		if err != nil {
			return nil, fmt.Errorf("laptop rate: %w", err)
		}
		out.LaptopRate = 100 * float64(oui) / float64(out.AuditCount)
	}
	return out, nil
}

// SubjectsBreakdown returns submission counts per subject, most submitted
// first, for the admin detail list.
func (s *Store) SubjectsBreakdown(ctx context.Context) ([]SubjectCount, error) {
	var rows []SubjectCount
	err := s.db.WithContext(ctx).
		Model(&Feedback{}).
		Select("subject, COUNT(*) AS count").
		Group("subject").
		Order("count DESC, subject ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("subjects breakdown: %w", err)
	}
	return rows, nil
}
