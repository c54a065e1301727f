package app

import (
	"errors"

	"github.com/loupeview/loupe/internal/config"
	"github.com/loupeview/loupe/internal/engine/cursor"
	"github.com/loupeview/loupe/internal/renderer/backend"
)

// eventLoop is the main loop: paint a frame, block for the next event,
// apply it, repeat. Strictly sequential; every event is processed to
// completion before the next poll.
func (app *Application) eventLoop() error {
	for {
		app.renderer.Render(app.doc, app.pos)

		ev, err := app.backend.PollEvent()
		if err != nil {
			return &TerminalError{Op: "poll", Err: err}
		}

		if err := app.handleEvent(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				app.logger.Info("quit")
			}
			return err
		}
	}
}

// handleEvent applies one event to the session state.
// Returns ErrQuit when the session should end.
func (app *Application) handleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return app.handleKey(ev)
	case backend.EventResize:
		// Dimensions come straight from the terminal report.
		app.renderer.Resize(ev.Width, ev.Height)
		return nil
	case backend.EventQuit:
		return ErrQuit
	case backend.EventConfigReload:
		app.reloadConfig()
		return nil
	default:
		return nil
	}
}

// handleKey maps a key event to a cursor movement or a quit request.
// Unbound keys are ignored.
func (app *Application) handleKey(ev backend.Event) error {
	switch ev.Key {
	case backend.KeyUp:
		app.pos = app.pos.Move(app.doc, cursor.Up)
	case backend.KeyDown:
		app.pos = app.pos.Move(app.doc, cursor.Down)
	case backend.KeyLeft:
		app.pos = app.pos.Move(app.doc, cursor.Left)
	case backend.KeyRight:
		app.pos = app.pos.Move(app.doc, cursor.Right)
	case backend.KeyHome:
		app.pos = app.pos.Move(app.doc, cursor.Home)
	case backend.KeyEnd:
		app.pos = app.pos.Move(app.doc, cursor.End)
	case backend.KeyPageUp:
		app.pos = app.pos.MovePage(app.doc, cursor.PageUp, app.renderer.Viewport().Height())
	case backend.KeyPageDown:
		app.pos = app.pos.MovePage(app.doc, cursor.PageDown, app.renderer.Viewport().Height())
	case backend.KeyEscape, backend.KeyCtrlC, backend.KeyCtrlQ:
		return ErrQuit
	case backend.KeyRune:
		return app.handleRune(ev.Rune)
	}
	return nil
}

// handleRune handles the vi-style bindings.
func (app *Application) handleRune(r rune) error {
	switch r {
	case 'q':
		return ErrQuit
	case 'h':
		app.pos = app.pos.Move(app.doc, cursor.Left)
	case 'j':
		app.pos = app.pos.Move(app.doc, cursor.Down)
	case 'k':
		app.pos = app.pos.Move(app.doc, cursor.Up)
	case 'l':
		app.pos = app.pos.Move(app.doc, cursor.Right)
	case '0':
		app.pos = app.pos.Move(app.doc, cursor.Home)
	case '$':
		app.pos = app.pos.Move(app.doc, cursor.End)
	}
	return nil
}

// reloadConfig re-reads the config file and applies what changed. The raw
// lines are retained by the document, so a tab stop change rebuilds the
// rendered rows without touching the file.
func (app *Application) reloadConfig() {
	cfg, err := config.Load(app.cfgPath)
	if err != nil {
		app.logger.Warn("config reload failed: %v", err)
		return
	}

	// Flag overrides still win after a reload.
	if app.opts.TabStop > 0 {
		cfg.TabStop = app.opts.TabStop
	}
	if app.opts.LogLevel != "" {
		cfg.LogLevel = app.opts.LogLevel
	}
	if app.opts.LogFile != "" {
		cfg.LogFile = app.opts.LogFile
	}

	if cfg.TabStop != app.cfg.TabStop {
		app.doc = app.doc.Rebuild(cfg.TabStop)
		app.pos = app.pos.Clamp(app.doc)
		app.logger.Info("tab stop changed to %d", cfg.TabStop)
	}

	app.logger.SetLevel(ParseLogLevel(cfg.LogLevel))
	app.cfg = cfg
	app.renderer.SetOptions(app.rendererOptions())
}
