package repository

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutraliza os curingas do LIKE para que o valor seja tratado como texto literal
func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}
