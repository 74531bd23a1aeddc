// Command generate_demo creates a demo database with a sample reading
// collection.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"

	"bookshelf/internal/database"
	"bookshelf/internal/database/books"
	"bookshelf/internal/database/genres"
	"bookshelf/internal/entities"
)

const defaultDemoDatabasePath = "./demo.db"

type demoBook struct {
	cmd   entities.CreateBookCommand
	genre string
}

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath, true)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	genreRepo := genres.NewRepository(db.DB)
	bookRepo := books.NewRepository(db.DB)

	genresByName := make(map[string]string)
	stock, err := genreRepo.ListGenres()
	if err != nil {
		log.Fatalf("Failed to list genres: %v", err)
	}
	for _, genre := range stock {
		genresByName[genre.Name] = genre.ID
	}

	for _, demo := range demoBooks() {
		if demo.genre != "" {
			if id, ok := genresByName[demo.genre]; ok {
				demo.cmd.GenreID = &id
			}
		}
		book, err := bookRepo.CreateBook(demo.cmd)
		if err != nil {
			log.Printf("Failed to save book %s: %v", demo.cmd.Title, err)
			continue
		}
		log.Printf("Saved: %s by %s [%s]", book.Title, book.Author, book.Status.Label())
	}

	log.Println("Demo database generated successfully!")
}

func demoBooks() []demoBook {
	return []demoBook{
		{
			cmd: entities.CreateBookCommand{
				Title:    "Dom Casmurro",
				Author:   "Machado de Assis",
				Year:     intPtr(1899),
				Pages:    intPtr(256),
				Rating:   intPtr(5),
				Status:   entities.StatusLido,
				Synopsis: "Bento Santiago reconstrói a história do seu ciúme por Capitu.",
				ISBN:     "9788535910663",
			},
			genre: "Literatura Brasileira",
		},
		{
			cmd: entities.CreateBookCommand{
				Title:  "Grande Sertão: Veredas",
				Author: "João Guimarães Rosa",
				Year:   intPtr(1956),
				Pages:  intPtr(608),
				Status: entities.StatusLido,
				Rating: intPtr(5),
			},
			genre: "Literatura Brasileira",
		},
		{
			cmd: entities.CreateBookCommand{
				Title:       "Duna",
				Author:      "Frank Herbert",
				Year:        intPtr(1965),
				Pages:       intPtr(680),
				CurrentPage: intPtr(245),
				Status:      entities.StatusLendo,
			},
			genre: "Ficção Científica",
		},
		{
			cmd: entities.CreateBookCommand{
				Title:  "O Senhor dos Anéis: A Sociedade do Anel",
				Author: "J.R.R. Tolkien",
				Year:   intPtr(1954),
				Pages:  intPtr(576),
				Status: entities.StatusQueroLer,
			},
			genre: "Fantasia",
		},
		{
			cmd: entities.CreateBookCommand{
				Title:       "Sapiens: Uma Breve História da Humanidade",
				Author:      "Yuval Noah Harari",
				Year:        intPtr(2011),
				Pages:       intPtr(464),
				CurrentPage: intPtr(120),
				Status:      entities.StatusPausado,
			},
			genre: "História",
		},
		{
			cmd: entities.CreateBookCommand{
				Title:  "Memórias Póstumas de Brás Cubas",
				Author: "Machado de Assis",
				Year:   intPtr(1881),
				Pages:  intPtr(208),
				Status: entities.StatusQueroLer,
			},
			genre: "Literatura Brasileira",
		},
		{
			cmd: entities.CreateBookCommand{
				Title:  "Ulisses",
				Author: "James Joyce",
				Year:   intPtr(1922),
				Pages:  intPtr(912),
				Status: entities.StatusAbandonado,
				Notes:  "tentar de novo com um guia de leitura",
			},
			genre: "Romance",
		},
		{
			cmd: entities.CreateBookCommand{
				Title:  "Vidas Secas",
				Author: "Graciliano Ramos",
				Year:   intPtr(1938),
				Pages:  intPtr(176),
				Rating: intPtr(4),
				Status: entities.StatusLido,
			},
			genre: "Literatura Brasileira",
		},
	}
}

func intPtr(n int) *int {
	return &n
}
