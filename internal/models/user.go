package model

// User est une projection en lecture seule de l'état serveur. Les compteurs
// (points, streaks) ne sont jamais calculés côté client: on refetch après
// chaque action mutante.
type User struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	CurrentPoints       int    `json:"currentPoints"`
	TotalPointsEarned   int    `json:"totalPointsEarned"`
	PointsUsed          int    `json:"pointsUsed"`
	CurrentStreak       int    `json:"currentStreak"`
	LongestStreak       int    `json:"longestStreak"`
	ChallengesCompleted int    `json:"challengesCompleted"`
	ChallengesInReview  int    `json:"challengesInReview"`
	ChallengesSubmitted int    `json:"challengesSubmitted"`
	Level               int    `json:"level"`
	Age                 int    `json:"age,omitempty"`
	City                string `json:"city,omitempty"`
	Avatar              string `json:"avatar,omitempty"`
}
