package ui

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/dotwriter/internal/app"
	"github.com/dshills/dotwriter/internal/logging"
)

// refreshInterval bounds how long an expired status message stays drawn.
const refreshInterval = 500 * time.Millisecond

var styles = map[Role]tcell.Style{
	RolePlain:   tcell.StyleDefault,
	RoleTitle:   tcell.StyleDefault.Bold(true).Reverse(true),
	RoleBraille: tcell.StyleDefault.Bold(true),
	RoleText:    tcell.StyleDefault,
	RoleCell:    tcell.StyleDefault.Foreground(tcell.ColorAqua),
	RoleStatus:  tcell.StyleDefault.Foreground(tcell.ColorYellow),
	RoleMessage: tcell.StyleDefault.Foreground(tcell.ColorGreen),
	RoleError:   tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	RoleHelp:    tcell.StyleDefault.Dim(true),

	RoleReference:       tcell.StyleDefault,
	RoleReferenceActive: tcell.StyleDefault.Foreground(tcell.ColorAqua),
}

// Terminal draws an application on a tcell screen and feeds it key
// events.
type Terminal struct {
	app    *app.Application
	screen tcell.Screen
	logger *logging.Logger
}

// NewTerminal creates a terminal front end on the default screen.
func NewTerminal(a *app.Application) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(a, screen), nil
}

// NewTerminalWithScreen creates a terminal front end on screen, which
// must not be initialized yet.
func NewTerminalWithScreen(a *app.Application, screen tcell.Screen) *Terminal {
	return &Terminal{
		app:    a,
		screen: screen,
		logger: a.Logger().WithComponent("ui"),
	}
}

// Run initializes the screen and processes events until the application
// quits or ctx is cancelled. The screen is restored before Run returns.
func (t *Terminal) Run(ctx context.Context) error {
	if err := t.screen.Init(); err != nil {
		return err
	}
	defer t.screen.Fini()

	done := make(chan struct{})
	defer close(done)
	go t.tick(ctx, done)

	for {
		t.draw()

		ev := t.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}

		switch e := ev.(type) {
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			k, ok := convertKey(e)
			if !ok {
				t.logger.Debug("unmapped terminal key %s", e.Name())
				continue
			}
			if err := t.app.HandleKey(k); err != nil {
				if errors.Is(err, app.ErrQuit) {
					return nil
				}
				t.logger.Error("key %s: %v", k, err)
			}
		}
	}
}

// Refresh asks the event loop to redraw. It is safe to call from any
// goroutine.
func (t *Terminal) Refresh() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// tick wakes the event loop so that expired messages disappear, and once
// more when ctx is cancelled.
func (t *Terminal) tick(ctx context.Context, done <-chan struct{}) {
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			t.Refresh()
			return
		case <-ticker.C:
			t.Refresh()
		}
	}
}

func (t *Terminal) draw() {
	t.screen.Clear()
	width, height := t.screen.Size()

	for y, line := range Frame(t.app.View(), width) {
		if y >= height {
			break
		}
		t.drawLine(y, line)
	}
	t.screen.Show()
}

func (t *Terminal) drawLine(y int, line Line) {
	style, ok := styles[line.Role]
	if !ok {
		style = tcell.StyleDefault
	}
	x, state := 0, -1
	rest := line.Text
	for rest != "" {
		var (
			cluster string
			w       int
		)
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		runes := []rune(cluster)
		t.screen.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
}
