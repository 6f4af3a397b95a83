package netscape

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"os"
	"strings"

	"github.com/dastanaron/genbookmarks/internal/models"
)

const (
	// Doctype is the first line of every Netscape bookmark file
	Doctype = "<!DOCTYPE NETSCAPE-Bookmark-file-1>"
	// Title is the document <TITLE>
	Title = "Bookmarks"
	// Heading is the document <H1>
	Heading = "Bookmarks Menu"

	// FolderTimestamp is written as ADD_DATE and LAST_MODIFIED of every folder
	FolderTimestamp int64 = 1438910135
)

// RenderBody renders folders as the markup placed between the outer <DL><p> and </DL>
func RenderBody(folders []models.Folder) string {
	var sb strings.Builder
	for i := range folders {
		writeFolder(&sb, &folders[i])
	}
	return sb.String()
}

func writeFolder(sb *strings.Builder, f *models.Folder) {
	fmt.Fprintf(sb, "    <DT><H3 ADD_DATE=\"%d\" LAST_MODIFIED=\"%d\">%s</H3>\n",
		f.AddDate, f.LastModified, html.EscapeString(f.Name))
	sb.WriteString("    <DL><p>\n")
	for i := range f.Bookmarks {
		writeBookmark(sb, &f.Bookmarks[i])
	}
	sb.WriteString("    </DL><p>\n")
}

func writeBookmark(sb *strings.Builder, b *models.Bookmark) {
	fmt.Fprintf(sb, "        <DT><A HREF=\"%s\">%s</a>\n",
		html.EscapeString(b.URL), html.EscapeString(b.Title))
}

// WriteDocument writes the document header, body and footer to w
func WriteDocument(w io.Writer, body string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s\n", Doctype)
	fmt.Fprintf(bw, "<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	fmt.Fprintf(bw, "<TITLE>%s</TITLE>\n", Title)
	fmt.Fprintf(bw, "<H1>%s</H1>\n", Heading)
	fmt.Fprintf(bw, "\n")
	fmt.Fprintf(bw, "<DL><p>\n")
	bw.WriteString(body)
	fmt.Fprintf(bw, "</DL>\n")

	// bufio keeps the first write error, Flush reports it
	return bw.Flush()
}

// WriteFile creates or truncates path and writes the full document into it
func WriteFile(path, body string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create file: %w", err)
	}

	if err := WriteDocument(file, body); err != nil {
		file.Close()
		return fmt.Errorf("cannot write file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("cannot close file: %w", err)
	}
	return nil
}
