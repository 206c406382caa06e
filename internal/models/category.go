package model

// Category regroupe les challenges par centre d'intérêt (ex: "Physical Wellness").
// Donnée de référence, chargée une fois par session.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
