package models

// Media references an asset held by the external media store.
type Media struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}
