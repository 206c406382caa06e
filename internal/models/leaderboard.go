package model

// LeaderboardRow est une ligne de classement éphémère: refetch à chaque
// changement de page ou de filtre, jamais fusionnée dans le store.
type LeaderboardRow struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	City                string `json:"city,omitempty"`
	Age                 int    `json:"age,omitempty"`
	Level               int    `json:"level"`
	CurrentPoints       int    `json:"currentPoints"`
	ChallengesCompleted int    `json:"challengesCompleted"`
	Avatar              string `json:"avatar,omitempty"`
}

// RankedRow ajoute le rang d'affichage calculé côté client:
// (page-1)*pageSize + index + 1. Le tri reste délégué au serveur.
type RankedRow struct {
	LeaderboardRow
	Rank          int  `json:"rank"`
	IsCurrentUser bool `json:"isCurrentUser"`
}
