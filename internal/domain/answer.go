package domain

import "time"

// Answer records what the user has entered for one question. There is at most
// one Answer per question id; it is created lazily on first visit and mutated
// in place afterwards.
type Answer struct {
	QuestionID    string    `json:"id"`
	Text          string    `json:"text"`
	ChipsAccepted []string  `json:"chipsAccepted"`
	UpdatedAt     time.Time `json:"ts"`
}

// AcceptChip appends a chip to the accepted list, preserving click order.
func (a *Answer) AcceptChip(chip string, now time.Time) {
	a.ChipsAccepted = append(a.ChipsAccepted, chip)
	a.UpdatedAt = now
}
