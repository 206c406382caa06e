package model

// ChatExchange est un échange question/réponse avec le coach IA.
// Simple proxy vers le backend, aucune intelligence côté client.
type ChatExchange struct {
	Query    string `json:"query"`
	Response string `json:"response"`
}
