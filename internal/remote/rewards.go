package remote

import (
	"context"

	model "github.com/Yash-007/zenith-engine/internal/models"
)

// RewardHistory récupère l'historique des rachats de points
func (c *Client) RewardHistory(ctx context.Context) ([]model.RewardEntry, error) {
	var history []model.RewardEntry
	if err := c.get(ctx, "/reward/history", nil, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// Redeem demande le rachat d'un montant de points
func (c *Client) Redeem(ctx context.Context, points int) (*model.RewardEntry, error) {
	body := map[string]int{"points": points}

	var entry model.RewardEntry
	if err := c.postJSON(ctx, "/reward/entry", body, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}
