package submission

import (
	"context"
	"strings"
	"sync"

	"github.com/Yash-007/zenith-engine/internal/apperr"
	model "github.com/Yash-007/zenith-engine/internal/models"
	"github.com/Yash-007/zenith-engine/internal/remote"
)

// Règles de validation avant soumission. Toute violation est une erreur de
// validation distincte et bloque l'appel réseau.
const (
	MinTextLength = 10
	MaxImages     = 5
	MaxImageSize  = 5 << 20 // 5MB par image
)

// GenericRejectionRemarks est affiché quand le reviewer n'a laissé aucune
// explication: l'UI ne doit jamais montrer un état de rejet vide.
const GenericRejectionRemarks = "Your submission did not meet the challenge requirements. Feel free to try again with more detailed proof."

// Submitter est la part du client distant dont le tracker a besoin.
type Submitter interface {
	SubmitChallenge(ctx context.Context, req remote.SubmitRequest) (*model.Submission, error)
}

// Tracker applique la machine à états des soumissions côté client:
// PENDING -> COMPLETED | REJECTED, transitions monotones, et garde anti
// double-envoi pendant qu'une requête est en vol.
type Tracker struct {
	mu       sync.Mutex
	inFlight map[string]struct{} // challengeId des envois en cours
}

func NewTracker() *Tracker {
	return &Tracker{inFlight: map[string]struct{}{}}
}

// CanTransition indique si un changement de statut est permis. COMPLETED et
// REJECTED sont terminaux; REJECTED autorise toutefois une nouvelle
// soumission (nouveau PENDING), pas une mutation du même enregistrement.
func CanTransition(from, to string) bool {
	switch from {
	case model.StatusPending:
		return to == model.StatusCompleted || to == model.StatusRejected
	default:
		return false
	}
}

// CheckResubmission vérifie la garde locale anti-doublon. Un challenge dont
// la soumission courante est PENDING ou COMPLETED ne peut pas être resoumis;
// après un REJECTED l'utilisateur peut retenter.
func CheckResubmission(currentStatus *string) error {
	if currentStatus == nil {
		return nil
	}
	switch *currentStatus {
	case model.StatusPending:
		return apperr.Duplicate("this challenge is already under review")
	case model.StatusCompleted:
		return apperr.Duplicate("you have already completed this challenge")
	default:
		return nil
	}
}

// Validate applique les règles de pré-soumission. Aucun appel réseau n'est
// émis tant que les preuves ne sont pas valides.
func Validate(text string, images []remote.ImageFile) error {
	trimmed := strings.TrimSpace(text)
	if trimmed != "" && len(trimmed) < MinTextLength {
		return apperr.Validation("please provide a more detailed description of your experience")
	}
	if len(images) == 0 {
		return apperr.Validation("please add at least one photo to capture your progress")
	}
	if len(images) > MaxImages {
		return apperr.Validation("you can upload a maximum of 5 images")
	}
	for _, image := range images {
		if len(image.Data) > MaxImageSize {
			return apperr.Validation("each image must be 5MB or smaller")
		}
	}
	return nil
}

// Submit valide puis envoie la soumission. La garde en vol neutralise les
// double-clics: un second envoi pour le même challenge est rejeté tant que le
// premier n'a pas répondu.
func (t *Tracker) Submit(ctx context.Context, api Submitter, currentStatus *string, req remote.SubmitRequest) (*model.Submission, error) {
	if err := CheckResubmission(currentStatus); err != nil {
		return nil, err
	}
	if err := Validate(req.Text, req.Images); err != nil {
		return nil, err
	}

	t.mu.Lock()
	if _, busy := t.inFlight[req.ChallengeID]; busy {
		t.mu.Unlock()
		return nil, apperr.Duplicate("a submission for this challenge is already in progress")
	}
	t.inFlight[req.ChallengeID] = struct{}{}
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		delete(t.inFlight, req.ChallengeID)
		t.mu.Unlock()
	}()

	req.Text = strings.TrimSpace(req.Text)

	// L'état PENDING n'est adopté qu'à l'acquittement serveur, jamais en
	// optimiste pur: un échec réseau ne doit pas laisser un faux "en cours".
	confirmed, err := api.SubmitChallenge(ctx, req)
	if err != nil {
		return nil, err
	}
	return confirmed, nil
}

// StatusLabel retourne le libellé d'affichage d'un statut.
func StatusLabel(status string) string {
	switch status {
	case model.StatusPending:
		return "Under Review"
	case model.StatusCompleted:
		return "Completed"
	case model.StatusRejected:
		return "Rejected"
	default:
		return "Under Review"
	}
}

// RejectionRemarks garantit une explication non vide pour un rejet.
func RejectionRemarks(s model.Submission) string {
	if s.Status != model.StatusRejected {
		return ""
	}
	if remarks := strings.TrimSpace(s.Remarks); remarks != "" {
		return remarks
	}
	return GenericRejectionRemarks
}
