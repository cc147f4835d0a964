package dto

// GeneratePassphraseResponse contains the generated passphrases.
type GeneratePassphraseResponse struct {
	Passphrases []string `json:"passphrases"`
}
