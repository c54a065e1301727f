// Package app wires the viewer together and manages the application
// lifecycle: configuration, logging, document loading, the terminal
// backend and the main event loop.
package app

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/loupeview/loupe/internal/config"
	"github.com/loupeview/loupe/internal/engine/cursor"
	"github.com/loupeview/loupe/internal/engine/document"
	"github.com/loupeview/loupe/internal/renderer"
	"github.com/loupeview/loupe/internal/renderer/backend"
	"github.com/loupeview/loupe/internal/renderer/core"
)

// Options configures the application.
type Options struct {
	// Path is the file to view.
	Path string

	// ConfigPath overrides the default config file location.
	ConfigPath string

	// LogLevel overrides the configured log level when non-empty.
	LogLevel string

	// LogFile overrides the configured log file when non-empty.
	LogFile string

	// TabStop overrides the configured tab stop when positive.
	TabStop int
}

// Application owns all session state: the loaded document, the cursor, the
// renderer and its viewport, and the terminal backend. Exactly one logical
// thread of control mutates it; the event loop processes one event to
// completion before blocking for the next.
type Application struct {
	opts      Options
	cfg       config.Config
	cfgPath   string
	logger    *Logger
	logFile   *os.File
	sessionID string

	backend  backend.Backend
	renderer *renderer.Renderer
	watcher  *config.Watcher

	doc *document.Document
	pos cursor.Position

	running atomic.Bool
}

// New creates an application from options, loading configuration and
// setting up logging. The terminal backend is attached separately so tests
// can substitute an in-memory one.
func New(opts Options) (*Application, error) {
	if opts.Path == "" {
		return nil, ErrNoDocument
	}

	cfgPath := opts.ConfigPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}

	// Flags win over the config file.
	if opts.TabStop > 0 {
		cfg.TabStop = opts.TabStop
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.LogFile != "" {
		cfg.LogFile = opts.LogFile
	}

	app := &Application{
		opts:      opts,
		cfg:       cfg,
		cfgPath:   cfgPath,
		sessionID: uuid.New().String(),
	}

	var out io.Writer
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, &InitError{Component: "log", Err: err}
		}
		app.logFile = f
		out = f
	}
	app.logger = NewLogger(out, ParseLogLevel(cfg.LogLevel)).
		WithField("session", app.sessionID)

	return app, nil
}

// SetBackend attaches the terminal backend. Must be called before Run.
func (app *Application) SetBackend(b backend.Backend) {
	app.backend = b
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Position returns the current cursor position. Exposed for tests.
func (app *Application) Position() cursor.Position {
	return app.pos
}

// Document returns the loaded document. Exposed for tests.
func (app *Application) Document() *document.Document {
	return app.doc
}

// RequestQuit asks the event loop to exit. Safe to call from other
// goroutines (signal handlers); the request travels through the backend's
// event queue like any other input.
func (app *Application) RequestQuit() {
	if app.backend != nil {
		app.backend.PostEvent(backend.Event{Type: backend.EventQuit})
	}
}

// Run loads the document, brings up the terminal and runs the event loop
// until quit or failure. Terminal state is restored on every exit path.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	src := document.NewFileSource(app.opts.Path)
	doc, err := document.Load(src, app.cfg.TabStop)
	if err != nil {
		return NewLoadError(app.opts.Path, err)
	}
	app.doc = doc
	app.pos = cursor.Position{}
	app.logger.Info("loaded %s: %d rows, tab stop %d", app.opts.Path, doc.RowCount(), app.cfg.TabStop)

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()

	app.renderer = renderer.New(app.backend, app.rendererOptions())

	if app.cfgPath != "" {
		w, err := config.NewWatcher(app.cfgPath, func() {
			app.backend.PostEvent(backend.Event{Type: backend.EventConfigReload})
		})
		if err != nil {
			// Live reload is a convenience; the session continues
			// with the config loaded at startup.
			app.logger.Warn("config watch unavailable: %v", err)
		} else {
			app.watcher = w
			defer w.Close()
		}
	}

	return app.eventLoop()
}

// Shutdown releases resources that outlive Run.
func (app *Application) Shutdown() {
	if app.logFile != nil {
		app.logFile.Close()
		app.logFile = nil
	}
}

func (app *Application) rendererOptions() renderer.Options {
	opts := renderer.DefaultOptions()
	opts.Filler = app.cfg.FillerRune()
	opts.FillerStyle = core.Style{Attrs: core.AttrDim}
	return opts
}
