package handler

import (
	"net/http"

	"github.com/Yash-007/zenith-engine/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func (h *Handler) RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "Zenith Engine",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"challenges": []map[string]string{
				{"method": "GET", "path": "/challenges", "description": "Vue challenges dérivée (param interests=1,2)"},
				{"method": "POST", "path": "/challenges/refresh", "description": "Recharger le snapshot depuis le backend"},
				{"method": "POST", "path": "/challenges/interests/{id}/toggle", "description": "Basculer une catégorie du filtre (all = tout)"},
			},
			"submissions": []map[string]string{
				{"method": "POST", "path": "/submissions", "description": "Soumettre une preuve (multipart)"},
				{"method": "GET", "path": "/submissions", "description": "Historique paginé (param page)"},
				{"method": "GET", "path": "/submissions/{id}", "description": "Détail d'une soumission"},
			},
			"user": []map[string]string{
				{"method": "GET", "path": "/user", "description": "Utilisateur courant (projection serveur)"},
				{"method": "GET", "path": "/user/activity", "description": "Heatmap d'activité (compteurs par jour)"},
			},
			"leaderboard": []map[string]string{
				{"method": "GET", "path": "/leaderboard", "description": "Classement (params page, ageRange, city, findMe)"},
				{"method": "GET", "path": "/leaderboard/age-ranges", "description": "Tranches d'âge proposées"},
			},
			"rewards": []map[string]string{
				{"method": "GET", "path": "/rewards/history", "description": "Historique des rachats"},
				{"method": "POST", "path": "/rewards/redeem", "description": "Racheter 3000 points"},
			},
			"chat": []map[string]string{
				{"method": "GET", "path": "/chat/history", "description": "Historique du coach IA"},
				{"method": "POST", "path": "/chat", "description": "Poser une question au coach IA"},
			},
			"health": []map[string]string{
				{"method": "GET", "path": "/health", "description": "Health check de l'API"},
			},
		},
	}

	utils.Success(w, routes)
}
