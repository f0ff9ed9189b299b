package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 10
)

// GenerateID gera um identificador curto para lotes de importação
func GenerateID() (string, error) {
	return gonanoid.Generate(idAlphabet, idLength)
}
