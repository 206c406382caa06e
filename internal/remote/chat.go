package remote

import (
	"context"

	model "github.com/Yash-007/zenith-engine/internal/models"
)

// ChatHistory récupère l'historique des échanges avec le coach IA
func (c *Client) ChatHistory(ctx context.Context) ([]model.ChatExchange, error) {
	var history []model.ChatExchange
	if err := c.get(ctx, "/chat/history", nil, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// SendChatQuery envoie une question au coach IA. Simple proxy: la réponse
// vient entièrement du backend.
func (c *Client) SendChatQuery(ctx context.Context, query string) (string, error) {
	body := map[string]string{"query": query}

	var data struct {
		Response string `json:"response"`
	}
	if err := c.postJSON(ctx, "/chat/query", body, &data); err != nil {
		return "", err
	}
	return data.Response, nil
}
