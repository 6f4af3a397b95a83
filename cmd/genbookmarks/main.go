package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/dastanaron/genbookmarks/internal/commands"
	"github.com/dastanaron/genbookmarks/internal/config"
	"github.com/dastanaron/genbookmarks/internal/models"
	"github.com/dastanaron/genbookmarks/internal/repository"
	"github.com/dastanaron/genbookmarks/internal/ui"
)

func main() {
	cfg, err := config.Parse(filepath.Base(os.Args[0]), os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	generateCmd := commands.NewGenerateCommand(rnd)
	doc, err := generateCmd.Execute(cfg.OutputPath, cfg.DirCount, cfg.LinkCount)
	if err != nil {
		log.Fatalf("Generate failed: %v", err)
	}

	if cfg.Verify {
		verifyCmd := commands.NewVerifyCommand()
		if err := verifyCmd.Execute(cfg.OutputPath, cfg.DirCount, cfg.LinkCount); err != nil {
			log.Fatalf("Verify failed: %v", err)
		}
	}

	if cfg.DBPath != "" {
		if err := seed(cfg.DBPath, doc); err != nil {
			log.Fatalf("Seed failed: %v", err)
		}
	}

	if cfg.Preview {
		if err := ui.NewPreview(doc).Run(); err != nil {
			log.Fatal(err)
		}
	}
}

func seed(dbPath string, doc *models.Document) error {
	// Ensure database directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	repo, err := repository.NewSQLiteRepository(dbPath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer repo.Close()

	return commands.NewSeedCommand(repo).Execute(doc)
}
