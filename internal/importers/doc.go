// Package importers loads student rosters from spreadsheets.
//
// # Architecture
//
//	.xlsx upload → ParseRoster → []entities.RosterRow → Pipeline → RosterStore
//
// The first sheet is read. Its first row is a header naming the columns, in
// any order and case:
//
//	name | birth_year | subject | score
//
// Only "name" is required. A row without subject and score registers the
// student alone; otherwise it adds one grade. Blank rows are skipped.
package importers
