package commands

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dastanaron/genbookmarks/internal/config"
	"github.com/dastanaron/genbookmarks/internal/models"
	"github.com/dastanaron/genbookmarks/internal/netscape"
	"github.com/dastanaron/genbookmarks/internal/parser"
	"github.com/dastanaron/genbookmarks/internal/repository"
)

func generate(t *testing.T, seed int64, dirCount, linkCount int) (string, *models.Document) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bookmarks.html")
	doc, err := NewGenerateCommand(rand.New(rand.NewSource(seed))).Execute(path, dirCount, linkCount)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return path, doc
}

func TestGenerateDefaults(t *testing.T) {
	cfg := config.NewConfig()
	path, doc := generate(t, 1, cfg.DirCount, cfg.LinkCount)

	if doc.BookmarkCount() != cfg.Links() {
		t.Errorf("BookmarkCount() = %d; want %d", doc.BookmarkCount(), cfg.Links())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.HasPrefix(content, "<!DOCTYPE NETSCAPE-Bookmark-file-1>") {
		t.Error("file does not start with doctype")
	}
	if !strings.HasSuffix(content, "</DL>\n") {
		t.Error("file does not end with </DL> and newline")
	}
	if got := strings.Count(content, "<DT><A HREF="); got != 100 {
		t.Errorf("got %d links in file; want 100", got)
	}
}

func TestGenerateThenVerify(t *testing.T) {
	tests := []struct{ dirCount, linkCount int }{
		{0, 0},
		{0, 3},
		{3, 0},
		{2, 5},
		{10, 10},
	}
	for _, tt := range tests {
		path, _ := generate(t, 2, tt.dirCount, tt.linkCount)
		if err := NewVerifyCommand().Execute(path, tt.dirCount, tt.linkCount); err != nil {
			t.Errorf("(%d, %d): verify: %v", tt.dirCount, tt.linkCount, err)
		}
	}
}

func TestVerifyMismatch(t *testing.T) {
	path, _ := generate(t, 3, 2, 2)

	tests := []struct{ dirCount, linkCount int }{
		{3, 2},
		{2, 3},
		{1, 2},
	}
	for _, tt := range tests {
		err := NewVerifyCommand().Execute(path, tt.dirCount, tt.linkCount)
		if !errors.Is(err, ErrStructureMismatch) {
			t.Errorf("(%d, %d): got %v; want ErrStructureMismatch", tt.dirCount, tt.linkCount, err)
		}
	}
}

func TestVerifyRejectsForeignFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foreign.html")
	body := netscape.RenderBody([]models.Folder{{
		Name:      "short",
		Bookmarks: []models.Bookmark{{Title: "abcdefghij", URL: "https://example.com/"}},
	}})
	if err := netscape.WriteFile(path, body); err != nil {
		t.Fatal(err)
	}
	if err := NewVerifyCommand().Execute(path, 1, 1); !errors.Is(err, ErrStructureMismatch) {
		t.Errorf("got %v; want ErrStructureMismatch", err)
	}
}

func TestVerifyMissingFile(t *testing.T) {
	err := NewVerifyCommand().Execute(filepath.Join(t.TempDir(), "missing.html"), 1, 1)
	if err == nil || errors.Is(err, ErrStructureMismatch) {
		t.Errorf("got %v; want read error", err)
	}
}

func TestGenerateTwiceSameShape(t *testing.T) {
	pathA, _ := generate(t, 10, 4, 6)
	pathB, _ := generate(t, 20, 4, 6)

	a, err := os.ReadFile(pathA)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(pathB)
	if err != nil {
		t.Fatal(err)
	}
	if string(a) == string(b) {
		t.Fatal("two runs produced identical files")
	}

	p := parser.NewParser()
	docA, err := p.ParseFile(pathA)
	if err != nil {
		t.Fatal(err)
	}
	docB, err := p.ParseFile(pathB)
	if err != nil {
		t.Fatal(err)
	}
	if len(docA.Folders) != len(docB.Folders) {
		t.Fatalf("folder counts %d and %d differ", len(docA.Folders), len(docB.Folders))
	}
	for i := range docA.Folders {
		if len(docA.Folders[i].Bookmarks) != len(docB.Folders[i].Bookmarks) {
			t.Errorf("folder %d: %d and %d bookmarks", i, len(docA.Folders[i].Bookmarks), len(docB.Folders[i].Bookmarks))
		}
	}
	for _, tag := range []string{"<H3 ", "</DL><p>", "<DT><A HREF="} {
		if strings.Count(string(a), tag) != strings.Count(string(b), tag) {
			t.Errorf("%q counts differ", tag)
		}
	}
}

func TestGenerateUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "bookmarks.html")
	_, err := NewGenerateCommand(rand.New(rand.NewSource(1))).Execute(path, 1, 1)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestSeed(t *testing.T) {
	_, doc := generate(t, 4, 3, 2)
	doc.Bookmarks = []models.Bookmark{{Title: "loose", URL: "https://loose.example/"}}

	repo, err := repository.NewSQLiteRepository(filepath.Join(t.TempDir(), "fixture.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRepository: %v", err)
	}
	defer repo.Close()

	if err := NewSeedCommand(repo).Execute(doc); err != nil {
		t.Fatalf("seed: %v", err)
	}

	folders, err := repo.Folders().List()
	if err != nil {
		t.Fatal(err)
	}
	if len(folders) != 3 {
		t.Fatalf("got %d folders; want 3", len(folders))
	}

	bookmarks, err := repo.Bookmarks().List()
	if err != nil {
		t.Fatal(err)
	}
	if len(bookmarks) != 7 {
		t.Fatalf("got %d bookmarks; want 7", len(bookmarks))
	}

	// generation order is preserved and links point at their folder
	i := 0
	for fi, f := range folders {
		if f.Name != doc.Folders[fi].Name {
			t.Errorf("folder %d = %q; want %q", fi, f.Name, doc.Folders[fi].Name)
		}
		for _, want := range doc.Folders[fi].Bookmarks {
			got := bookmarks[i]
			if got.Title != want.Title || got.URL != want.URL {
				t.Errorf("bookmark %d = %q; want %q", i, got.Title, want.Title)
			}
			if got.FolderID == nil || *got.FolderID != f.ID {
				t.Errorf("bookmark %q not in folder %d", got.Title, f.ID)
			}
			i++
		}
	}
	if last := bookmarks[6]; last.Title != "loose" || last.FolderID != nil {
		t.Errorf("loose bookmark = %+v", last)
	}
}
