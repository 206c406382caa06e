package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/Yash-007/zenith-engine/internal/apperr"
	"github.com/Yash-007/zenith-engine/internal/utils"
)

// Client est le client REST du backend Zenith. Le transport est hors du coeur
// du moteur: le client ne porte aucune logique métier, seulement les formes
// des réponses, le token d'authentification et les retries.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	maxRetries uint64
}

func New(baseURL, token string, timeout time.Duration, maxRetries int) *Client {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		maxRetries: uint64(maxRetries),
	}
}

type tokenKey struct{}

// WithToken attache un token utilisateur au contexte. Il sera envoyé à la
// place du token par défaut du client (pass-through depuis la façade HTTP).
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext récupère le token attaché au contexte, s'il existe.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey{}).(string)
	return token, ok && token != ""
}

// envelope est l'enveloppe commune des réponses du backend.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

func (c *Client) postJSON(ctx context.Context, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, nil, payload, "application/json", out)
}

// do exécute la requête avec retry exponentiel. Seules les erreurs réseau et
// les 5xx sont retentées; 401 et success:false sont définitifs.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload []byte, contentType string, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	token := c.token
	if t, ok := TokenFromContext(ctx); ok {
		token = t
	}

	operation := func() error {
		var body *bytes.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		} else {
			body = bytes.NewReader(nil)
		}

		req, err := http.NewRequestWithContext(ctx, method, u, body)
		if err != nil {
			return backoff.Permanent(err)
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		if token != "" {
			req.Header.Set("X-Auth-Token", token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			utils.LogDebug("remote %s %s failed: %v", method, path, err)
			return err // retryable
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusUnauthorized:
			return backoff.Permanent(error(apperr.AuthExpired()))
		case resp.StatusCode >= http.StatusInternalServerError:
			return fmt.Errorf("server returned %d", resp.StatusCode) // retryable
		}

		var env envelope
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			return backoff.Permanent(fmt.Errorf("decode response: %w", err))
		}

		if !env.Success {
			// Surface le message serveur tel quel s'il existe
			msg := env.Message
			if msg == "" {
				msg = env.Error
			}
			return backoff.Permanent(error(apperr.Server(msg)))
		}

		if out != nil && len(env.Data) > 0 {
			if err := json.Unmarshal(env.Data, out); err != nil {
				return backoff.Permanent(fmt.Errorf("decode response data: %w", err))
			}
		}

		return nil
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries), ctx)
	if err := backoff.Retry(operation, bo); err != nil {
		var ae *apperr.Error
		if errors.As(err, &ae) {
			return ae
		}
		return apperr.Network(fmt.Sprintf("could not reach the server (%s %s)", method, path), err)
	}

	return nil
}
