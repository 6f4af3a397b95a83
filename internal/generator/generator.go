package generator

import (
	"math/rand"

	"github.com/dastanaron/genbookmarks/internal/models"
	"github.com/dastanaron/genbookmarks/internal/netscape"
)

const (
	// NameLength is the length of every generated folder and link name
	NameLength = 10

	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Name returns a random alphanumeric name. Names are not unique.
func Name(r *rand.Rand) string {
	b := make([]byte, NameLength)
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(b)
}

// LinkURL returns the URL of a generated link with the given name
func LinkURL(name string) string {
	return "https://" + name + ".com/"
}

// Folders builds dirCount folders with linkCount links each.
// Negative counts are treated as zero.
func Folders(r *rand.Rand, dirCount, linkCount int) []models.Folder {
	if dirCount <= 0 {
		return nil
	}
	if linkCount < 0 {
		linkCount = 0
	}

	folders := make([]models.Folder, 0, dirCount)
	for d := 0; d < dirCount; d++ {
		folder := models.Folder{
			Name:         Name(r),
			AddDate:      netscape.FolderTimestamp,
			LastModified: netscape.FolderTimestamp,
			Bookmarks:    make([]models.Bookmark, 0, linkCount),
		}
		for l := 0; l < linkCount; l++ {
			name := Name(r)
			folder.Bookmarks = append(folder.Bookmarks, models.Bookmark{
				Title: name,
				URL:   LinkURL(name),
			})
		}
		folders = append(folders, folder)
	}
	return folders
}

// Bookmarks returns the markup body for dirCount folders of linkCount links
func Bookmarks(r *rand.Rand, dirCount, linkCount int) string {
	return netscape.RenderBody(Folders(r, dirCount, linkCount))
}
