package dto

// GeneratePasswordResponse contains the generated passwords.
type GeneratePasswordResponse struct {
	Passwords []string `json:"passwords"`
}
