package models

// Folder represents a bookmark folder
type Folder struct {
	ID           int
	Name         string
	ParentID     *int
	AddDate      int64
	LastModified int64
	Bookmarks    []Bookmark
}

// Bookmark represents a bookmark entry
type Bookmark struct {
	ID       int
	Title    string
	URL      string
	FolderID *int
}

// Document represents a whole Netscape bookmark file
type Document struct {
	Title     string
	Heading   string
	Folders   []Folder
	Bookmarks []Bookmark // links outside of any folder
}

// BookmarkCount returns the number of links in all folders plus loose links
func (d *Document) BookmarkCount() int {
	n := len(d.Bookmarks)
	for _, f := range d.Folders {
		n += len(f.Bookmarks)
	}
	return n
}
