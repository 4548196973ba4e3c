package postgres

import "strings"

// likeEscaper escapes the LIKE metacharacters using PostgreSQL's default escape
// character, so user input always matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes s for use inside a LIKE/ILIKE pattern.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// PrefixPattern matches values starting with s.
func PrefixPattern(s string) string {
	return EscapeLike(s) + "%"
}

// ContainsPattern matches values containing s.
func ContainsPattern(s string) string {
	return "%" + EscapeLike(s) + "%"
}
