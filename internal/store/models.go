package store

import "time"

// Student is the anonymous per-device record. Created lazily on first app
// load, never mutated, never deleted by the client.
type Student struct {
	ID        uint   `gorm:"primaryKey"`
	DeviceID  string `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
}

// Feedback is one completed questionnaire. A course row fills q1..q5; the
// environment row (subject ENVIRONNEMENT_GLOBAL) fills q6..q10. The schema
// does not enforce one row per (student, subject); the client-side guard on
// the hub is the only protection.
type Feedback struct {
	ID        uint    `gorm:"primaryKey"`
	StudentID uint    `gorm:"index;not null"`
	Student   Student `gorm:"foreignKey:StudentID"`
	Subject   string  `gorm:"not null"`

	Q1 *int
	Q2 *int
	Q3 *int
	Q4 *int
	Q5 *int

	Q6Jobs      string
	Q7Rooms     *int
	Q8Resources *int
	Q9Transport string
	Q10Laptop   string

	Comments  string
	CreatedAt time.Time
}
