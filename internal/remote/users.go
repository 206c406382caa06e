package remote

import (
	"context"
	"net/url"
	"strconv"

	model "github.com/Yash-007/zenith-engine/internal/models"
)

// LeaderboardParams sont les paramètres normalisés envoyés au serveur.
// Le filtrage et le tri sont délégués: le client n'ordonne jamais localement.
type LeaderboardParams struct {
	Page      int
	LowerAge  int // 0 = non borné
	UpperAge  int // 0 = non borné
	City      string
	FetchUser bool // biaise la page vers le rang de l'utilisateur courant
}

func (p LeaderboardParams) values() url.Values {
	query := url.Values{}
	query.Set("page", strconv.Itoa(p.Page))
	if p.LowerAge > 0 {
		query.Set("lowerAge", strconv.Itoa(p.LowerAge))
	}
	if p.UpperAge > 0 {
		query.Set("upperAge", strconv.Itoa(p.UpperAge))
	}
	if p.City != "" {
		query.Set("city", p.City)
	}
	if p.FetchUser {
		query.Set("fetchUser", "true")
	}
	return query
}

// CurrentUser récupère l'utilisateur courant (projection serveur des points,
// streaks et compteurs — jamais calculés côté client)
func (c *Client) CurrentUser(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := c.get(ctx, "/user", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Leaderboard récupère une page de classement déjà triée par le serveur
func (c *Client) Leaderboard(ctx context.Context, params LeaderboardParams) ([]model.LeaderboardRow, error) {
	var rows []model.LeaderboardRow
	if err := c.get(ctx, "/user/leaderboard", params.values(), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
