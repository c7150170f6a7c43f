package domain

import "time"

// Submission is a finished session archived for later review. The key mirrors
// the original widget's storage convention: ISO timestamp plus user id.
type Submission struct {
	ID        string
	Key       string
	UserID    string
	Payload   string // serialized InterviewState snapshot
	CreatedAt time.Time
}

// SubmissionKey builds the archival key for a submission at the given time.
// Colons and dots are replaced so the key stays filesystem safe.
func SubmissionKey(userID string, at time.Time) string {
	ts := at.UTC().Format("2006-01-02T15-04-05")
	if userID == "" {
		userID = "anon"
	}
	return ts + "_" + userID
}
