package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/lib/pq"

	"github.com/Mtar786/votingApp/internal/config"
)

const migrationsDir = "internal/adapters/repository/postgres/migrations"

// Applies every *.up.sql migration in lexical order, or a single named
// migration when one is given as the first argument.
func main() {
	config.LoadEnv()

	db, err := sql.Open("postgres", config.DBConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	var files []string
	if len(os.Args) > 1 {
		files = []string{os.Args[1]}
	} else {
		files, err = upMigrations(migrationsDir)
		if err != nil {
			log.Fatal(err)
		}
	}

	for _, name := range files {
		content, err := os.ReadFile(filepath.Join(migrationsDir, name))
		if err != nil {
			log.Fatalf("failed to read migration %s: %v", name, err)
		}
		if _, err := db.Exec(string(content)); err != nil {
			log.Fatalf("failed to execute migration %s: %v", name, err)
		}
		fmt.Printf("applied %s\n", name)
	}
}

func upMigrations(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}
		files = append(files, entry.Name())
	}
	return files, nil
}
