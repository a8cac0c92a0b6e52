package domain

import "time"

// Exam is the slice of the exam service's record that the proctoring
// pipeline needs: identity and how long a session may run.
type Exam struct {
	ExamID   string `json:"examId"`
	Name     string `json:"examName"`
	Duration int    `json:"duration"` // minutes
}

// SessionDuration returns the exam duration as a time.Duration.
func (e *Exam) SessionDuration() time.Duration {
	return time.Duration(e.Duration) * time.Minute
}

// Question is the coding question attached to an exam. The proctoring
// pipeline only reads it; question CRUD lives in the exam service.
type Question struct {
	ID          string `json:"id"`
	Prompt      string `json:"question"`
	Description string `json:"description"`
}
