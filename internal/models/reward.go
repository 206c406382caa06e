package model

import "time"

// RewardEntry est une entrée de l'historique de rachat de points.
type RewardEntry struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	PointsRewarded int       `json:"pointsRewarded"`
	Status         string    `json:"status"` // PENDING, COMPLETED
	RewardedAt     time.Time `json:"rewardedAt"`
}
