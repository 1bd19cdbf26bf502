package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}

// GenerateProjectCode gera o código curto legível do projeto (ex: PRJ-x4T9qA).
func GenerateProjectCode() (string, error) {
	id, err := gonanoid.Generate(characters, 6)
	if err != nil {
		return "", err
	}
	return "PRJ-" + id, nil
}
