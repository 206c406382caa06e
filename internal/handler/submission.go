package handler

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Yash-007/zenith-engine/internal/engine"
	model "github.com/Yash-007/zenith-engine/internal/models"
	"github.com/Yash-007/zenith-engine/internal/remote"
	"github.com/Yash-007/zenith-engine/internal/submission"
	"github.com/Yash-007/zenith-engine/internal/utils"
)

const maxSubmissionMemory = 32 << 20

// SubmitChallenge reçoit la soumission multipart (texte + images de preuve)
// et la passe au moteur. La validation et la garde anti-doublon sont locales:
// en cas de violation aucune requête ne part vers le backend.
func (h *Handler) SubmitChallenge(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxSubmissionMemory); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	input := engine.SubmitInput{
		ChallengeID:   r.FormValue("challengeId"),
		ChallengeName: r.FormValue("challengeName"),
		Text:          r.FormValue("text"),
		IsCustom:      r.FormValue("isChallengeExists") == "false",
	}
	if !input.IsCustom && input.ChallengeID == "" {
		utils.Error(w, http.StatusBadRequest, "challengeId is required")
		return
	}

	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["images"] {
			image, err := readImage(header)
			if err != nil {
				utils.Error(w, http.StatusBadRequest, err.Error())
				return
			}
			input.Images = append(input.Images, image)
		}
	}

	confirmed, err := h.engine.SubmitChallenge(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.Success(w, confirmed)
}

// readImage charge un fichier de preuve en mémoire. Lecture bornée: un octet
// de plus que la taille max suffit à détecter le dépassement.
func readImage(header *multipart.FileHeader) (remote.ImageFile, error) {
	file, err := header.Open()
	if err != nil {
		return remote.ImageFile{}, fmt.Errorf("could not read image %s", header.Filename)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, submission.MaxImageSize+1))
	if err != nil {
		return remote.ImageFile{}, fmt.Errorf("could not read image %s", header.Filename)
	}

	return remote.ImageFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// GetSubmissions renvoie une page d'historique, enrichie des libellés
// d'affichage; un rejet sans remarque reçoit l'explication générique.
func (h *Handler) GetSubmissions(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if p, err := strconv.Atoi(raw); err == nil && p > 0 {
			page = p
		}
	}

	history, err := h.engine.SubmissionHistory(r.Context(), page)
	if err != nil {
		respondError(w, err)
		return
	}

	utils.Success(w, map[string]interface{}{
		"submissions": decorate(history.Submissions),
		"currentPage": history.CurrentPage,
		"totalPages":  history.TotalPages,
	})
}

// GetSubmissionByID renvoie le détail d'une soumission
func (h *Handler) GetSubmissionByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	sub, err := h.engine.SubmissionDetails(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	decorated := decorate([]model.Submission{*sub})
	utils.Success(w, decorated[0])
}

// decoratedSubmission ajoute les champs dérivés d'affichage au modèle brut.
type decoratedSubmission struct {
	model.Submission
	StatusLabel string `json:"statusLabel"`
	Remarks     string `json:"remarks,omitempty"`
}

func decorate(submissions []model.Submission) []decoratedSubmission {
	result := make([]decoratedSubmission, len(submissions))
	for i, s := range submissions {
		result[i] = decoratedSubmission{
			Submission:  s,
			StatusLabel: submission.StatusLabel(s.Status),
		}
		if s.Status == model.StatusRejected {
			result[i].Remarks = submission.RejectionRemarks(s)
		} else {
			result[i].Remarks = s.Remarks
		}
	}
	return result
}
