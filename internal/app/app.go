// Package app wires the braille engine to its host: configuration, key
// bindings, keyboard layouts, preferences and the clipboard. The terminal
// front end drives it through HandleKey and View.
package app

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/dotwriter/internal/braille/editor"
	"github.com/dshills/dotwriter/internal/braille/mode"
	"github.com/dshills/dotwriter/internal/config"
	"github.com/dshills/dotwriter/internal/input/key"
	"github.com/dshills/dotwriter/internal/layout"
	"github.com/dshills/dotwriter/internal/logging"
	"github.com/dshills/dotwriter/internal/prefs"
)

// DefaultMessageTTL is how long a status message stays visible.
const DefaultMessageTTL = 3 * time.Second

// Application is one braille editing session.
//
// All exported methods are safe for concurrent use: key handling from the
// UI goroutine and config reloads from the watcher are serialized.
type Application struct {
	mu sync.Mutex

	id     string
	config *config.Config
	logger *logging.Logger

	modes       *mode.Registry
	editor      *editor.Editor
	recompute   editor.Recompute
	unsubscribe func()

	layouts *layout.Set
	layout  layout.Layout

	pinMode   bool
	pinLayout bool

	prefs     prefs.Store
	clipboard Clipboard
	bindings  map[key.Event]string
	metrics   *Metrics

	message    Message
	messageTTL time.Duration
	now        func() time.Time
}

// Options configures the application. Zero values select defaults.
type Options struct {
	// Config is the resolved configuration. Nil uses config.Default().
	Config *config.Config

	// Logger receives diagnostics. Nil discards them.
	Logger *logging.Logger

	// Prefs persists the selected mode and layout. Nil keeps them in
	// memory for the session only.
	Prefs prefs.Store

	// Clipboard receives copies. Nil uses the system clipboard.
	Clipboard Clipboard

	// Modes are registered in order. Nil registers UEB Grade 1.
	Modes []mode.Mode

	// PinMode and PinLayout make the configured mode and layout win over
	// saved preferences. The command line sets them for -mode and -layout.
	PinMode   bool
	PinLayout bool

	// MessageTTL overrides DefaultMessageTTL.
	MessageTTL time.Duration

	// Now overrides the clock used for message expiry.
	Now func() time.Time
}

// Message is a transient status line, the terminal's equivalent of a
// toast notification.
type Message struct {
	Text  string
	Error bool
	At    time.Time
}

// New creates an application from opts.
func New(opts Options) (*Application, error) {
	app := &Application{
		id:         uuid.New().String(),
		config:     opts.Config,
		prefs:      opts.Prefs,
		clipboard:  opts.Clipboard,
		metrics:    NewMetrics(),
		pinMode:    opts.PinMode,
		pinLayout:  opts.PinLayout,
		messageTTL: opts.MessageTTL,
		now:        opts.Now,
	}
	if app.config == nil {
		app.config = config.Default()
	}
	if app.prefs == nil {
		app.prefs = prefs.NewMemory()
	}
	if app.clipboard == nil {
		app.clipboard = SystemClipboard{}
	}
	if app.messageTTL <= 0 {
		app.messageTTL = DefaultMessageTTL
	}
	if app.now == nil {
		app.now = time.Now
	}
	app.logger = logging.OrNull(opts.Logger).WithField("session", app.id)

	if err := app.bootstrap(opts.Modes); err != nil {
		return nil, err
	}

	app.logger.Info("session started: mode=%s layout=%s", app.editor.Mode().Info().ID, app.layout.ID)
	return app, nil
}

// ID returns the session identifier.
func (app *Application) ID() string {
	return app.id
}

// Logger returns the session logger.
func (app *Application) Logger() *logging.Logger {
	return app.logger
}

// Modes returns the mode registry. Switch modes with SetMode, which
// serializes the switch with key handling.
func (app *Application) Modes() *mode.Registry {
	return app.modes
}

// SetMode activates the mode with the given ID and starts a new document.
func (app *Application) SetMode(id string) error {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.modes.SetMode(id)
}

// Metrics returns the session counters.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

// Close detaches the application from the mode registry and logs the
// session counters. The preference store belongs to the caller and is not
// closed.
func (app *Application) Close() error {
	app.mu.Lock()
	defer app.mu.Unlock()
	if app.unsubscribe == nil {
		return nil
	}
	app.unsubscribe()
	app.unsubscribe = nil

	m := app.metrics.Snapshot()
	app.logger.Info("session ended: keys=%d ignored=%d cells=%d indicators=%d deletions=%d copies=%d uptime=%s",
		m.Keys, m.Ignored, m.Cells, m.Indicators, m.Deletions, m.Copies, m.Uptime.Round(time.Second))
	return nil
}

// notify sets the status message. Caller must hold app.mu.
func (app *Application) notify(format string, args ...any) {
	app.message = Message{Text: fmt.Sprintf(format, args...), At: app.now()}
}

// notifyError sets an error status message. Caller must hold app.mu.
func (app *Application) notifyError(format string, args ...any) {
	app.message = Message{Text: fmt.Sprintf(format, args...), Error: true, At: app.now()}
}
