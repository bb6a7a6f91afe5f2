package survey

import "math"

// FeedbackData is the in-progress answer set for one open subject. Scale
// answers are nil until picked; choice answers are "" until picked. Comments
// are optional and never count toward completion.
type FeedbackData struct {
	Subject string `json:"subject"`

	// Pedagogy answers, used when Subject is a course name.
	Q1 *int `json:"q1,omitempty"`
	Q2 *int `json:"q2,omitempty"`
	Q3 *int `json:"q3,omitempty"`
	Q4 *int `json:"q4,omitempty"`
	Q5 *int `json:"q5,omitempty"`

	// Environment answers, used when Subject is EnvironmentSubject.
	Q6Jobs      string `json:"q6_jobs,omitempty"`
	Q7Rooms     *int   `json:"q7_rooms,omitempty"`
	Q8Resources *int   `json:"q8_resources,omitempty"`
	Q9Transport string `json:"q9_transport,omitempty"`
	Q10Laptop   string `json:"q10_laptop,omitempty"`

	Comments string `json:"comments,omitempty"`
}

// NewFeedbackData returns a blank answer set for the given subject.
func NewFeedbackData(subject string) *FeedbackData {
	return &FeedbackData{Subject: subject}
}

// IsEnvironment reports whether this answer set belongs to the environment
// audit rather than a course.
func (d *FeedbackData) IsEnvironment() bool {
	return d.Subject == EnvironmentSubject
}

// Answer returns the current value for a question ID as a display string,
// with ok=false when unanswered.
func (d *FeedbackData) Answer(id string) (value string, ok bool) {
	if v := d.scale(id); v != nil {
		return scaleString(*v), true
	}
	if v := d.choice(id); v != "" {
		return v, true
	}
	return "", false
}

// SetScale records a scale answer for the question ID. Unknown IDs are
// ignored.
func (d *FeedbackData) SetScale(id string, v int) {
	switch id {
	case "q1":
		d.Q1 = &v
	case "q2":
		d.Q2 = &v
	case "q3":
		d.Q3 = &v
	case "q4":
		d.Q4 = &v
	case "q5":
		d.Q5 = &v
	case "q7_rooms":
		d.Q7Rooms = &v
	case "q8_resources":
		d.Q8Resources = &v
	}
}

// SetChoice records a choice answer for the question ID. Unknown IDs are
// ignored.
func (d *FeedbackData) SetChoice(id, v string) {
	switch id {
	case "q6_jobs":
		d.Q6Jobs = v
	case "q9_transport":
		d.Q9Transport = v
	case "q10_laptop":
		d.Q10Laptop = v
	}
}

// AnsweredCount counts the non-null answers among the five fields that apply
// to this subject.
func (d *FeedbackData) AnsweredCount() int {
	n := 0
	for _, q := range QuestionsFor(d.Subject) {
		if _, ok := d.Answer(q.ID); ok {
			n++
		}
	}
	return n
}

// CompletionPercent is round(100 × answered / 5).
func (d *FeedbackData) CompletionPercent() int {
	return int(math.Round(100 * float64(d.AnsweredCount()) / AnswersPerForm))
}

// Complete reports whether all five required answers are present. Submission
// is gated on this and nothing else; answers are never semantically checked.
func (d *FeedbackData) Complete() bool {
	return d.AnsweredCount() == AnswersPerForm
}

func (d *FeedbackData) scale(id string) *int {
	switch id {
	case "q1":
		return d.Q1
	case "q2":
		return d.Q2
	case "q3":
		return d.Q3
	case "q4":
		return d.Q4
	case "q5":
		return d.Q5
	case "q7_rooms":
		return d.Q7Rooms
	case "q8_resources":
		return d.Q8Resources
	}
	return nil
}

func (d *FeedbackData) choice(id string) string {
	switch id {
	case "q6_jobs":
		return d.Q6Jobs
	case "q9_transport":
		return d.Q9Transport
	case "q10_laptop":
		return d.Q10Laptop
	}
	return ""
}

func scaleString(v int) string {
	return string(rune('0' + v))
}
