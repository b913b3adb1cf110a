package servant

// NoblePhantasm is the singular special-ability record of a servant,
// keyed by the servant id.
type NoblePhantasm struct {
	ServantID      int    `json:"servant_id"`
	Name           string `json:"name"`
	Rank           string `json:"rank"`
	ActivationType string `json:"activation_type"`
	Description    string `json:"description"`
}
