package ui

import (
	"fmt"

	"github.com/dastanaron/genbookmarks/internal/models"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Preview shows a generated document as a folder tree
type Preview struct {
	app    *tview.Application
	tree   *tview.TreeView
	status *tview.TextView
	doc    *models.Document
}

// NewPreview creates a preview of doc
func NewPreview(doc *models.Document) *Preview {
	return &Preview{
		app:    tview.NewApplication(),
		tree:   tview.NewTreeView(),
		status: tview.NewTextView().SetDynamicColors(true),
		doc:    doc,
	}
}

// Run starts the application and blocks until the user quits
func (p *Preview) Run() error {
	root := BuildTree(p.doc)
	p.tree.SetRoot(root).SetCurrentNode(root)
	p.tree.SetBorder(true).SetTitle(p.doc.Title)
	p.tree.SetSelectedFunc(func(node *tview.TreeNode) {
		// Enter сворачивает/разворачивает папку
		if len(node.GetChildren()) > 0 {
			node.SetExpanded(!node.IsExpanded())
		}
	})

	p.status.SetText(fmt.Sprintf(
		"[::b]Enter[::r] expand/collapse  [::b]q[::r] quit  [::b]%d[::r] folders, [::b]%d[::r] bookmarks",
		len(p.doc.Folders), p.doc.BookmarkCount(),
	))

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(p.tree, 0, 1, true).
		AddItem(p.status, 1, 0, false)

	p.app.SetRoot(layout, true)
	p.app.SetInputCapture(p.globalInput)
	return p.app.Run()
}

func (p *Preview) globalInput(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		p.app.Stop()
		return nil
	case tcell.KeyRune:
		if event.Rune() == 'q' {
			p.app.Stop()
			return nil
		}
	}
	return event
}

// BuildTree converts doc into tree nodes: heading, folders, then links.
// Folders start collapsed.
func BuildTree(doc *models.Document) *tview.TreeNode {
	root := tview.NewTreeNode(doc.Heading).
		SetColor(tcell.ColorYellow).
		SetSelectable(true)

	for _, b := range doc.Bookmarks {
		root.AddChild(bookmarkNode(b))
	}

	for _, f := range doc.Folders {
		folder := tview.NewTreeNode(fmt.Sprintf("%s (%d)", f.Name, len(f.Bookmarks))).
			SetColor(tcell.ColorGreen).
			SetReference(f).
			SetExpanded(false)
		for _, b := range f.Bookmarks {
			folder.AddChild(bookmarkNode(b))
		}
		root.AddChild(folder)
	}
	return root
}

func bookmarkNode(b models.Bookmark) *tview.TreeNode {
	return tview.NewTreeNode(fmt.Sprintf("%s  %s", b.Title, b.URL)).
		SetReference(b)
}
