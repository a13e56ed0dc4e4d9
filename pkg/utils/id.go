package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateBatchID gera o identificador de um lote de importação manual
func GenerateBatchID() (string, error) {
	return gonanoid.Generate(characters, 10)
}

// GenerateState gera o state do OAuth da plataforma de pedidos
func GenerateState() (string, error) {
	return gonanoid.New(32)
}
