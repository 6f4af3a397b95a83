package commands

import (
	"errors"
	"fmt"

	"github.com/dastanaron/genbookmarks/internal/generator"
	"github.com/dastanaron/genbookmarks/internal/models"
	"github.com/dastanaron/genbookmarks/internal/netscape"
	"github.com/dastanaron/genbookmarks/internal/parser"
)

var ErrStructureMismatch = errors.New("unexpected bookmark file structure")

// VerifyCommand reads a generated file back and checks its shape
type VerifyCommand struct {
	parser *parser.Parser
}

// NewVerifyCommand creates a new verify command
func NewVerifyCommand() *VerifyCommand {
	return &VerifyCommand{parser: parser.NewParser()}
}

// Execute parses filePath and checks it holds dirCount folders of linkCount links
func (c *VerifyCommand) Execute(filePath string, dirCount, linkCount int) error {
	doc, err := c.parser.ParseFile(filePath)
	if err != nil {
		return fmt.Errorf("cannot read file: %w", err)
	}

	if err := CheckStructure(doc, dirCount, linkCount); err != nil {
		return err
	}

	fmt.Printf("Verified %d folders, %d bookmarks in %s\n", len(doc.Folders), doc.BookmarkCount(), filePath)
	return nil
}

// CheckStructure reports the first difference between doc and a generated
// document of dirCount folders with linkCount links each
func CheckStructure(doc *models.Document, dirCount, linkCount int) error {
	if doc.Heading != netscape.Heading {
		return fmt.Errorf("%w: heading %q", ErrStructureMismatch, doc.Heading)
	}
	if len(doc.Bookmarks) != 0 {
		return fmt.Errorf("%w: %d bookmarks outside folders", ErrStructureMismatch, len(doc.Bookmarks))
	}
	if len(doc.Folders) != dirCount {
		return fmt.Errorf("%w: %d folders, want %d", ErrStructureMismatch, len(doc.Folders), dirCount)
	}

	for i, f := range doc.Folders {
		if f.ParentID != nil {
			return fmt.Errorf("%w: folder %q is nested", ErrStructureMismatch, f.Name)
		}
		if !isName(f.Name) {
			return fmt.Errorf("%w: folder %d name %q", ErrStructureMismatch, i, f.Name)
		}
		if f.AddDate != netscape.FolderTimestamp || f.LastModified != netscape.FolderTimestamp {
			return fmt.Errorf("%w: folder %q dates %d/%d", ErrStructureMismatch, f.Name, f.AddDate, f.LastModified)
		}
		if len(f.Bookmarks) != linkCount {
			return fmt.Errorf("%w: folder %q has %d bookmarks, want %d", ErrStructureMismatch, f.Name, len(f.Bookmarks), linkCount)
		}
		for _, b := range f.Bookmarks {
			if !isName(b.Title) || b.URL != generator.LinkURL(b.Title) {
				return fmt.Errorf("%w: bookmark %q -> %q", ErrStructureMismatch, b.Title, b.URL)
			}
		}
	}
	return nil
}

func isName(s string) bool {
	if len(s) != generator.NameLength {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
