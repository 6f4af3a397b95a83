package parser

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dastanaron/genbookmarks/internal/models"

	"golang.org/x/net/html"
)

// Parser parses Netscape bookmark files
type Parser struct{}

// NewParser creates a new parser
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile opens path and parses it
func (p *Parser) ParseFile(path string) (*models.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return p.ParseBookmarksHTML(file)
}

// ParseBookmarksHTML parses an HTML bookmark file into a Document.
// Nested folders are flattened into Document.Folders with ParentID set.
func (p *Parser) ParseBookmarksHTML(r io.Reader) (*models.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	doc := &models.Document{}
	// indexes into doc.Folders
	var folderStack []int

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title":
				doc.Title = textOf(n)
			case "h1":
				doc.Heading = textOf(n)
			case "h3":
				// Found folder header <H3 ...>
				folder := models.Folder{
					ID:           len(doc.Folders) + 1,
					Name:         textOf(n),
					AddDate:      int64Attr(n, "add_date"),
					LastModified: int64Attr(n, "last_modified"),
				}
				if len(folderStack) > 0 {
					parentID := doc.Folders[folderStack[len(folderStack)-1]].ID
					folder.ParentID = &parentID
				}
				doc.Folders = append(doc.Folders, folder)
				folderStack = append(folderStack, len(doc.Folders)-1)
			case "a":
				b := models.Bookmark{
					URL:   attr(n, "href"),
					Title: textOf(n),
				}
				if b.URL == "" {
					break
				}
				if len(folderStack) > 0 {
					idx := folderStack[len(folderStack)-1]
					folderID := doc.Folders[idx].ID
					b.FolderID = &folderID
					doc.Folders[idx].Bookmarks = append(doc.Folders[idx].Bookmarks, b)
				} else {
					doc.Bookmarks = append(doc.Bookmarks, b)
				}
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}

		// When exiting DL container - "close" current folder
		if n.Type == html.ElementNode && n.Data == "dl" {
			if len(folderStack) > 0 {
				folderStack = folderStack[:len(folderStack)-1]
			}
		}
	}

	walk(root)
	return doc, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func int64Attr(n *html.Node, key string) int64 {
	v, err := strconv.ParseInt(attr(n, key), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func textOf(n *html.Node) string {
	if n.FirstChild == nil {
		return ""
	}
	return strings.TrimSpace(n.FirstChild.Data)
}
