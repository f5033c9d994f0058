package view

import (
	"fmt"

	"github.com/Nemex81/solitario-classico-accessibile-sub002/internal/keyevent"
)

// Item is one menu entry.
type Item struct {
	Label  string
	Action func(s *Shell)
}

// Menu is a vertical list navigated with the arrow keys. Return or Space runs
// the focused item, Escape closes the menu, and digits jump to an item.
type Menu struct {
	title  string
	items  []Item
	cursor int
}

func NewMenu(title string, items ...Item) *Menu {
	return &Menu{title: title, items: items}
}

func (m *Menu) Title() string { return m.title }

func (m *Menu) Cursor() int { return m.cursor }

// Selected returns the focused item.
func (m *Menu) Selected() (Item, bool) {
	if len(m.items) == 0 {
		return Item{}, false
	}
	return m.items[m.cursor], true
}

func (m *Menu) Activate(s *Shell) {
	if it, ok := m.Selected(); ok {
		s.Announce(fmt.Sprintf("%s. %s", m.title, m.describe(it)))
		return
	}
	s.Announce(m.title)
}

func (m *Menu) describe(it Item) string {
	return fmt.Sprintf("%s, %d of %d", it.Label, m.cursor+1, len(m.items))
}

func (m *Menu) HandleKey(s *Shell, ev keyevent.Event) bool {
	switch ev.Key {
	case keyevent.KeyUp:
		m.moveTo(s, m.cursor-1)
	case keyevent.KeyDown:
		m.moveTo(s, m.cursor+1)
	case keyevent.KeyHome, keyevent.KeyPageUp:
		m.moveTo(s, 0)
	case keyevent.KeyEnd, keyevent.KeyPageDown:
		m.moveTo(s, len(m.items)-1)
	case keyevent.KeyReturn, keyevent.KeyKpEnter, keyevent.KeySpace:
		m.run(s)
	case keyevent.KeyEscape:
		s.Pop()
	default:
		n, ok := ev.Key.DigitValue()
		if !ok || n < 1 || n > len(m.items) {
			return false
		}
		m.moveTo(s, n-1)
	}
	return true
}

func (m *Menu) moveTo(s *Shell, i int) {
	if len(m.items) == 0 {
		return
	}
	m.cursor = (i%len(m.items) + len(m.items)) % len(m.items)
	it := m.items[m.cursor]
	s.Logger().Debug("menu focus", "menu", m.title, "item", it.Label)
	s.Announce(m.describe(it))
}

func (m *Menu) run(s *Shell) {
	it, ok := m.Selected()
	if !ok {
		return
	}
	s.Logger().Info("menu select", "menu", m.title, "item", it.Label)
	if it.Action != nil {
		it.Action(s)
	}
}
