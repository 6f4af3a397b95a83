package service

import (
	"github.com/dastanaron/genbookmarks/internal/models"
	"github.com/dastanaron/genbookmarks/internal/repository"
)

// BookmarkService provides business logic for bookmarks
type BookmarkService struct {
	repo repository.Repository
}

// NewBookmarkService creates a new bookmark service
func NewBookmarkService(repo repository.Repository) *BookmarkService {
	return &BookmarkService{repo: repo}
}

// ListAll returns all bookmarks
func (s *BookmarkService) ListAll() ([]models.Bookmark, error) {
	return s.repo.Bookmarks().List()
}

// GetByFolderID returns bookmarks in a specific folder
func (s *BookmarkService) GetByFolderID(folderID int) ([]models.Bookmark, error) {
	all, err := s.repo.Bookmarks().List()
	if err != nil {
		return nil, err
	}

	var filtered []models.Bookmark
	for i := range all {
		b := &all[i]
		if b.FolderID != nil && *b.FolderID == folderID {
			filtered = append(filtered, *b)
		}
	}
	return filtered, nil
}

// Create creates a new bookmark
func (s *BookmarkService) Create(b *models.Bookmark) error {
	return s.repo.Bookmarks().Create(b)
}

// FolderService provides business logic for folders
type FolderService struct {
	repo repository.Repository
}

// NewFolderService creates a new folder service
func NewFolderService(repo repository.Repository) *FolderService {
	return &FolderService{repo: repo}
}

// ListAll returns all folders
func (s *FolderService) ListAll() ([]models.Folder, error) {
	return s.repo.Folders().List()
}

// Create creates a new folder
func (s *FolderService) Create(name string, parentID *int) (*models.Folder, error) {
	return s.repo.Folders().Create(name, parentID)
}
