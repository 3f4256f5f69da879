package database

import (
	"strings"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern builds a LIKE pattern matching value literally anywhere in a column.
func ContainsPattern(value string) string {
	return "%" + likeEscaper.Replace(value) + "%"
}

// WhereContains adds a case-insensitive substring match on column.
// Blank values leave the query unchanged.
func WhereContains(query *gorm.DB, column, value string) *gorm.DB {
	value = strings.TrimSpace(value)
	if value == "" {
		return query
	}
	return query.Where("LOWER("+column+`) LIKE LOWER(?) ESCAPE '\'`, ContainsPattern(value))
}
