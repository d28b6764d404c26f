// internal/models/submission.go
// Submission is the user-facing strategy upload record.

package models

import "time"

// Submission is a single upload of candidate source code. Created by the
// validator on POST; never mutated or deleted.
type Submission struct {
	ID       int64
	UserID   string
	Code     string
	Datetime time.Time
	Valid    bool
}

// ActiveSubmission is the projection used to assemble a round: the
// submission id kept for persistence, and the code kept for assembly.
type ActiveSubmission struct {
	UserID       string
	SubmissionID int64
	Code         string
}
