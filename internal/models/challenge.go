package model

// Challenge levels.
const (
	LevelBeginner     = 0
	LevelIntermediate = 1
	LevelAdvanced     = 2
)

type Challenge struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	LongDescription  string  `json:"longDescription,omitempty"`
	Category         int     `json:"category"`
	Points           int     `json:"points"`
	Level            int     `json:"level"` // 0=Beginner, 1=Intermediate, 2=Advanced
	Time             int     `json:"time"`  // minutes
	IsSubmitted      bool    `json:"isSubmitted"`
	SubmissionStatus *string `json:"submissionStatus,omitempty"`
	SubmissionID     *string `json:"submissionId,omitempty"`
}

// ChallengesByCategory est la forme renvoyée par le backend: les challenges
// arrivent déjà groupés par id de catégorie.
type ChallengesByCategory map[int][]Challenge

// LevelName retourne le libellé d'un niveau de difficulté.
func LevelName(level int) string {
	switch level {
	case LevelBeginner:
		return "Beginner"
	case LevelIntermediate:
		return "Intermediate"
	case LevelAdvanced:
		return "Advanced"
	default:
		return "Intermediate"
	}
}
