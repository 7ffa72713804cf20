package controller

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/cthealljr/todo/pkg/db"
)

const descNameRatio = 2

// Controller mediates between the store and the view.
type Controller struct {
	ctx      context.Context
	store    db.Store
	app      *tview.Application
	grid     *tview.Grid
	table    *tview.Table
	content  *listContent
	selected *db.Todo
	events   map[tcell.Key]KeyEvent
}

// KeyEvent defines an event associated with a keypress.
type KeyEvent struct {
	Description string
	Action      func(*tcell.EventKey) *tcell.EventKey
}

// NewController creates a new Controller and loads the current todo list.
func NewController(ctx context.Context, store db.Store, loc *time.Location) (*Controller, error) {
	c := Controller{
		ctx:     ctx,
		store:   store,
		app:     tview.NewApplication(),
		content: &listContent{loc: loc},
	}

	initKeys()
	c.initEvents()

	if err := c.reload(); err != nil {
		return nil, err
	}

	return &c, nil
}

// reload fetches the list in insertion order and resets the selection.
func (c *Controller) reload() error {
	items, err := c.store.List(c.ctx, "", "")
	if err != nil {
		return err
	}

	c.content.items = items

	c.selected = nil
	if len(items) > 0 {
		c.selected = items[0]
	}

	return nil
}

// Go starts the app and blocks until the user quits.
func (c *Controller) Go() error {
	c.grid = tview.NewGrid().SetBorders(true)
	c.table = c.getTable()

	c.grid.AddItem(c.getHeader(), 0, 0, 1, 1, 0, 0, false)
	c.grid.AddItem(c.table, 1, 0, 1, 1, 0, 0, true)

	return c.app.SetRoot(c.grid, true).SetFocus(c.grid).Run()
}

// getHeader returns the header shown above the list: a title followed by
// the keyboard shortcuts, sorted alphabetically.
func (c *Controller) getHeader() *tview.Table {
	table := tview.NewTable().SetBorders(false).SetSelectable(false, false)

	row := 0
	table.SetCell(row, 0, tview.NewTableCell("[yellow]todo list"))
	row++

	shortcuts := make([]string, 0, len(c.events))
	for key, event := range c.events {
		shortcuts = append(shortcuts, fmt.Sprintf("[orange]<%s>[white] %s", tcell.KeyNames[key], event.Description))
	}

	sort.Strings(shortcuts)

	for _, text := range shortcuts {
		table.SetCell(row, 0, tview.NewTableCell(text).SetExpansion(1))
		row++
	}

	return table
}

// when the row selection changes, update the selected todo.
func (c *Controller) setCurrentRow(row, col int) {
	if idx := row - 1; idx >= 0 && idx < len(c.content.items) {
		c.selected = c.content.items[idx]
	}
}

func (c *Controller) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	key := AsKey(evt)
	if k, ok := c.events[key]; ok {
		return k.Action(evt)
	}

	return evt
}

func (c *Controller) getTable() *tview.Table {
	table := tview.NewTable().SetBorders(false)
	table.SetContent(c.content)
	table.SetSelectable(true, false)

	if len(c.content.items) > 0 {
		table.Select(1, 0).SetFixed(1, 0)
	}

	table.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape {
			c.app.Stop()
		}
	})

	c.app.SetInputCapture(c.keyboard)
	table.SetSelectionChangedFunc(c.setCurrentRow)

	return table
}
