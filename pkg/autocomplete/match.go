package autocomplete

import "strings"

//go:generate go run github.com/dmarkham/enumer -type Match -trimprefix Match -transform lower -yaml -output match.gen.go

// Match selects how the query string is matched against a search field.
type Match int

const (
	// MatchContains matches fields containing the query anywhere.
	MatchContains Match = iota
	// MatchPrefix matches fields starting with the query.
	MatchPrefix
	// MatchExact matches fields equal to the query, ignoring case.
	MatchExact
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Pattern returns the ILIKE pattern for query q. Wildcard characters in
// q itself are escaped so they match literally.
func (m Match) Pattern(q string) string {
	escaped := likeEscaper.Replace(q)
	switch m {
	case MatchPrefix:
		return escaped + "%"
	case MatchExact:
		return escaped
	default:
		return "%" + escaped + "%"
	}
}
