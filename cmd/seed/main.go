// Command seed creates a sample database with books, students and grades.
// Usage: go run ./cmd/seed [-db path/to/sample.db]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/database/students"
	"github.com/mrlokans/bookshelf/internal/entities"
)

const defaultSeedDatabasePath = "./sample.db"

func main() {
	dbPath := flag.String("db", defaultSeedDatabasePath, "path to the sample database file")
	flag.Parse()

	log.Printf("Generating sample database at %s...", *dbPath)

	// Start fresh so IDs are predictable
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing sample database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath, database.WithLogLevel("error"))
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	bookRepo := books.NewRepository(db.DB)
	for _, book := range sampleBooks() {
		if err := bookRepo.CreateBook(&book); err != nil {
			log.Printf("Failed to save book %s: %v", book.Title, err)
			continue
		}
		log.Printf("Saved: %s by %s", book.Title, book.Author)
	}

	result, err := students.NewRepository(db.DB).ImportRoster(sampleRoster())
	if err != nil {
		log.Fatalf("Failed to seed gradebook: %v", err)
	}
	log.Printf("Seeded %d students with %d grades", result.StudentsCreated, result.GradesCreated)

	log.Println("Sample database generated successfully!")
}

func intPtr(v int) *int { return &v }

func sampleBooks() []entities.Book {
	return []entities.Book{
		{Title: "Pride and Prejudice", Author: "Jane Austen", Year: intPtr(1813)},
		{Title: "Emma", Author: "Jane Austen", Year: intPtr(1815)},
		{Title: "Frankenstein", Author: "Mary Shelley", Year: intPtr(1818)},
		{Title: "Moby-Dick", Author: "Herman Melville", Year: intPtr(1851)},
		{Title: "Great Expectations", Author: "Charles Dickens", Year: intPtr(1861)},
		{Title: "Crime and Punishment", Author: "Fyodor Dostoevsky", Year: intPtr(1866)},
		{Title: "War and Peace", Author: "Leo Tolstoy", Year: intPtr(1869)},
		{Title: "The Time Machine", Author: "H. G. Wells", Year: intPtr(1895)},
		{Title: "Dracula", Author: "Bram Stoker", Year: intPtr(1897)},
		{Title: "The Metamorphosis", Author: "Franz Kafka", Year: intPtr(1915)},
		{Title: "Ulysses", Author: "James Joyce", Year: intPtr(1922)},
		{Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Year: intPtr(1925)},
		{Title: "Beowulf", Author: "Unknown"},
	}
}

func sampleRoster() []entities.RosterRow {
	type grade struct {
		subject string
		score   int
	}
	roster := []struct {
		name      string
		birthYear int
		grades    []grade
	}{
		{"Ada Lovelace", 2008, []grade{{"Math", 98}, {"Physics", 91}, {"Literature", 84}}},
		{"Alan Turing", 2007, []grade{{"Math", 95}, {"Physics", 88}, {"Literature", 62}}},
		{"Grace Hopper", 2008, []grade{{"Math", 87}, {"Computer Science", 99}}},
		{"Linus Pauling", 2009, []grade{{"Chemistry", 93}, {"Math", 58}}},
		{"Marie Curie", 2007, []grade{{"Chemistry", 97}, {"Physics", 96}}},
		{"Charles Babbage", 2009, []grade{{"Math", 45}, {"Literature", 71}}},
		{"Emmy Noether", 2008, nil},
	}

	var rows []entities.RosterRow
	line := 2
	for _, s := range roster {
		if len(s.grades) == 0 {
			rows = append(rows, entities.RosterRow{Line: line, Name: s.name, BirthYear: intPtr(s.birthYear)})
			line++
			continue
		}
		for _, g := range s.grades {
			rows = append(rows, entities.RosterRow{
				Line:      line,
				Name:      s.name,
				BirthYear: intPtr(s.birthYear),
				Subject:   g.subject,
				Score:     intPtr(g.score),
			})
			line++
		}
	}
	return rows
}
