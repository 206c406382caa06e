package remote

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"strconv"

	model "github.com/Yash-007/zenith-engine/internal/models"
)

// ImageFile est une image de preuve prête à être envoyée.
type ImageFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// SubmitRequest porte les champs du POST multipart /submission/submit.
// Le statut est toujours PENDING côté client: seul le serveur fait évoluer
// une soumission vers COMPLETED ou REJECTED.
type SubmitRequest struct {
	UserID            string
	ChallengeID       string
	ChallengeName     string
	Text              string
	IsChallengeExists bool
	Images            []ImageFile
}

// SubmitChallenge envoie une soumission en multipart et retourne
// l'enregistrement confirmé par le serveur.
func (c *Client) SubmitChallenge(ctx context.Context, req SubmitRequest) (*model.Submission, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fields := map[string]string{
		"userId":            req.UserID,
		"challengeId":       req.ChallengeID,
		"status":            model.StatusPending,
		"isChallengeExists": strconv.FormatBool(req.IsChallengeExists),
	}
	if req.ChallengeName != "" {
		fields["challengeName"] = req.ChallengeName
	}
	if req.Text != "" {
		fields["text"] = req.Text
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("write form field %s: %w", name, err)
		}
	}

	for _, image := range req.Images {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="images"; filename="%s"`, image.Name))
		if image.ContentType != "" {
			header.Set("Content-Type", image.ContentType)
		}
		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, fmt.Errorf("create image part: %w", err)
		}
		if _, err := part.Write(image.Data); err != nil {
			return nil, fmt.Errorf("write image part: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	var submission model.Submission
	if err := c.do(ctx, "POST", "/submission/submit", nil, buf.Bytes(), writer.FormDataContentType(), &submission); err != nil {
		return nil, err
	}
	return &submission, nil
}

// Submissions récupère une page de l'historique de soumissions
func (c *Client) Submissions(ctx context.Context, page int) (*model.SubmissionPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))

	var result model.SubmissionPage
	if err := c.get(ctx, "/submission/user", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SubmissionDetails récupère une soumission par son id
func (c *Client) SubmissionDetails(ctx context.Context, id string) (*model.Submission, error) {
	var submission model.Submission
	if err := c.get(ctx, fmt.Sprintf("/submission/%s", id), nil, &submission); err != nil {
		return nil, err
	}
	return &submission, nil
}
