package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// toastExpiredMsg clears the toast with the given id.
type toastExpiredMsg struct {
	id int
}

var toastStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("229")).
	Background(lipgloss.Color("57")).
	Padding(0, 2)

// toaster implements snake.Notifier as a banner that hides itself after a
// fixed duration. A newer toast replaces an older one; the older one's expiry
// is then ignored.
type toaster struct {
	text     string
	id       int
	duration time.Duration
	pending  bool
}

func newToaster(d time.Duration) *toaster {
	return &toaster{duration: d}
}

// Notify shows msg until it expires or is replaced.
func (t *toaster) Notify(msg string) {
	t.id++
	t.text = msg
	t.pending = true
}

// Cmd returns the expiry timer for a freshly shown toast, or nil.
func (t *toaster) Cmd() tea.Cmd {
	if !t.pending {
		return nil
	}
	t.pending = false
	id := t.id
	return tea.Tick(t.duration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// Expire hides the toast if msg refers to the one currently shown.
func (t *toaster) Expire(msg toastExpiredMsg) {
	if msg.id == t.id {
		t.text = ""
	}
}

// Text returns the visible message, empty when nothing is shown.
func (t *toaster) Text() string {
	return t.text
}

// View renders the banner, or a blank line to keep the layout stable.
func (t *toaster) View() string {
	if t.text == "" {
		return " "
	}
	return toastStyle.Render(t.text)
}
