package commands

import (
	"fmt"

	"github.com/dastanaron/genbookmarks/internal/models"
	"github.com/dastanaron/genbookmarks/internal/repository"
	"github.com/dastanaron/genbookmarks/internal/service"
)

// SeedCommand stores a generated document in a bookmarks database
type SeedCommand struct {
	repo        repository.Repository
	bookmarkSvc *service.BookmarkService
	folderSvc   *service.FolderService
}

// NewSeedCommand creates a new seed command
func NewSeedCommand(repo repository.Repository) *SeedCommand {
	return &SeedCommand{
		repo:        repo,
		bookmarkSvc: service.NewBookmarkService(repo),
		folderSvc:   service.NewFolderService(repo),
	}
}

// Execute inserts every folder of doc, then its bookmarks, in document order
func (c *SeedCommand) Execute(doc *models.Document) error {
	bookmarks := 0
	for _, f := range doc.Folders {
		folder, err := c.folderSvc.Create(f.Name, nil)
		if err != nil {
			return fmt.Errorf("failed to create folder %q: %w", f.Name, err)
		}

		for _, b := range f.Bookmarks {
			b.FolderID = &folder.ID
			if err := c.bookmarkSvc.Create(&b); err != nil {
				return fmt.Errorf("failed to create bookmark %q: %w", b.Title, err)
			}
			bookmarks++
		}
	}

	// Закладки вне папок
	for _, b := range doc.Bookmarks {
		b.FolderID = nil
		if err := c.bookmarkSvc.Create(&b); err != nil {
			return fmt.Errorf("failed to create bookmark %q: %w", b.Title, err)
		}
		bookmarks++
	}

	fmt.Printf("Seeded %d folders, %d bookmarks.\n", len(doc.Folders), bookmarks)
	return nil
}
