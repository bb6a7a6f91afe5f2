package store

import (
	"context"
	"fmt"
	"time"

	"github.com/azizk/campulse/internal/survey"
)

// FeedbackSummary is one line of a student's submission history.
type FeedbackSummary struct {
	Subject   string
	CreatedAt time.Time
}

// SaveFeedback persists one completed answer set for the student and returns
// the new row id.
func (s *Store) SaveFeedback(ctx context.Context, studentID uint, data survey.FeedbackData) (uint, error) {
	if studentID == 0 {
		return 0, fmt.Errorf("no student id")
	}

	row := Feedback{
		StudentID:   studentID,
		Subject:     data.Subject,
		Q1:          data.Q1,
		Q2:          data.Q2,
		Q3:          data.Q3,
		Q4:          data.Q4,
		Q5:          data.Q5,
		Q6Jobs:      data.Q6Jobs,
		Q7Rooms:     data.Q7Rooms,
		Q8Resources: data.Q8Resources,
		Q9Transport: data.Q9Transport,
		Q10Laptop:   data.Q10Laptop,
		Comments:    data.Comments,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, fmt.Errorf("save feedback: %w", err)
	}
	return row.ID, nil
}

// History returns the student's past submissions, newest first.
func (s *Store) History(ctx context.Context, studentID uint) ([]FeedbackSummary, error) {
	var rows []Feedback
	err := s.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}

	out := make([]FeedbackSummary, len(rows))
	for i, r := range rows {
		out[i] = FeedbackSummary{Subject: r.Subject, CreatedAt: r.CreatedAt}
	}
	return out, nil
}

// CompletedSubjects returns the set of subjects the student already
// submitted, environment sentinel included. The hub disables these entry
// points.
func (s *Store) CompletedSubjects(ctx context.Context, studentID uint) (map[string]bool, error) {
	var subjects []string
	err := s.db.WithContext(ctx).
		Model(&Feedback{}).
		Where("student_id = ?", studentID).
		Distinct().
		Pluck("subject", &subjects).Error
	if err != nil {
		return nil, fmt.Errorf("load completed subjects: %w", err)
	}

	done := make(map[string]bool, len(subjects))
	for _, sub := range subjects {
		done[sub] = true
	}
	return done, nil
}
