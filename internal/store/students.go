package store

import (
	"context"
	"fmt"
)

// EnsureStudent exchanges a device token for its student record, creating
// the record on first sight of the token.
func (s *Store) EnsureStudent(ctx context.Context, deviceID string) (*Student, error) {
	if deviceID == "" {
		return nil, fmt.Errorf("empty device id")
	}

	var student Student
	err := s.db.WithContext(ctx).
		Where(Student{DeviceID: deviceID}).
		FirstOrCreate(&student).Error
	if err != nil {
		return nil, fmt.Errorf("ensure student: %w", err)
	}
	return &student, nil
}
