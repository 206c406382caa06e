package model

import "time"

// Submission statuses. Les transitions sont monotones:
// PENDING -> COMPLETED ou PENDING -> REJECTED, jamais l'inverse.
const (
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"
	StatusRejected  = "REJECTED"
)

type SubmissionProofs struct {
	Text   string   `json:"text,omitempty"`
	Images []string `json:"images"`
}

type Submission struct {
	ID                string           `json:"id"`
	UserID            string           `json:"userId"`
	ChallengeID       string           `json:"challengeId,omitempty"`
	ChallengeName     string           `json:"challengeName,omitempty"`
	Status            string           `json:"status"`
	IsChallengeExists bool             `json:"isChallengeExists"`
	Proofs            SubmissionProofs `json:"proofs"`
	SubmittedAt       time.Time        `json:"submittedAt"`
	Remarks           string           `json:"remarks,omitempty"`
}

// SubmissionPage est une page d'historique de soumissions.
type SubmissionPage struct {
	Submissions []Submission `json:"submissions"`
	CurrentPage int          `json:"currentPage"`
	TotalPages  int          `json:"totalPages"`
}

// IsTerminal indique si un statut ne peut plus évoluer.
func IsTerminal(status string) bool {
	return status == StatusCompleted || status == StatusRejected
}
