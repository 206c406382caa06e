package remote

import (
	"context"
	"fmt"

	model "github.com/Yash-007/zenith-engine/internal/models"
)

// UserChallengesData est la réponse de GET /challenge/user: les challenges
// groupés par catégorie plus l'éventuelle soumission en attente la plus
// récente (bannière "under review").
type UserChallengesData struct {
	ChallengesByInterest    model.ChallengesByCategory `json:"challengesByInterest"`
	RecentPendingSubmission *model.Submission          `json:"recentPendingSubmission,omitempty"`
}

// UserChallenges récupère les challenges de l'utilisateur groupés par catégorie
func (c *Client) UserChallenges(ctx context.Context) (*UserChallengesData, error) {
	var data UserChallengesData
	if err := c.get(ctx, "/challenge/user", nil, &data); err != nil {
		return nil, err
	}
	if data.ChallengesByInterest == nil {
		data.ChallengesByInterest = model.ChallengesByCategory{}
	}
	return &data, nil
}

// Challenge récupère un challenge par son id
func (c *Client) Challenge(ctx context.Context, id string) (*model.Challenge, error) {
	var challenge model.Challenge
	if err := c.get(ctx, fmt.Sprintf("/challenge/%s", id), nil, &challenge); err != nil {
		return nil, err
	}
	return &challenge, nil
}

// Categories récupère la liste des catégories
func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := c.get(ctx, "/category", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
