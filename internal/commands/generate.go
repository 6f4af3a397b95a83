package commands

import (
	"fmt"
	"math/rand"

	"github.com/dastanaron/genbookmarks/internal/generator"
	"github.com/dastanaron/genbookmarks/internal/models"
	"github.com/dastanaron/genbookmarks/internal/netscape"
)

// GenerateCommand writes a random bookmark file
type GenerateCommand struct {
	rnd *rand.Rand
}

// NewGenerateCommand creates a new generate command drawing names from rnd
func NewGenerateCommand(rnd *rand.Rand) *GenerateCommand {
	return &GenerateCommand{rnd: rnd}
}

// Execute generates dirCount folders of linkCount links and writes them to filePath.
// The generated document is returned for further commands.
func (c *GenerateCommand) Execute(filePath string, dirCount, linkCount int) (*models.Document, error) {
	doc := &models.Document{
		Title:   netscape.Title,
		Heading: netscape.Heading,
		Folders: generator.Folders(c.rnd, dirCount, linkCount),
	}

	if err := netscape.WriteFile(filePath, netscape.RenderBody(doc.Folders)); err != nil {
		return nil, err
	}

	fmt.Printf("Generated %d folders with %d bookmarks to %s\n", len(doc.Folders), doc.BookmarkCount(), filePath)
	return doc, nil
}
