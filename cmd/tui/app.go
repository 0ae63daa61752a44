package main

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/codemaze/game"
	"github.com/zucenko/codemaze/model"
)

type App struct {
	screen  tcell.Screen
	runner  *game.Runner
	strings *gotext.Po
	snap    model.Snapshot
	tokens  []model.TokenKind
}

// NewApp draws with tokens as the legend, highest value first.
func NewApp(screen tcell.Screen, runner *game.Runner, tokens []model.TokenKind, strings *gotext.Po) *App {
	return &App{screen: screen, runner: runner, tokens: tokens, strings: strings}
}

// Run plays until q, a cancelled ctx or a closed screen.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	runnerDone := make(chan error, 1)
	go func() { runnerDone <- a.runner.Run(ctx) }()

	events := make(chan tcell.Event, 32)
	go func() {
		defer close(events)
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	updates := a.runner.Updates()
	for {
		select {
		case <-ctx.Done():
			return a.wait(cancel, runnerDone)
		case snap, ok := <-updates:
			if !ok {
				return a.wait(cancel, runnerDone)
			}
			a.snap = snap
			a.draw()
		case ev, ok := <-events:
			if !ok {
				return a.wait(cancel, runnerDone)
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				a.screen.Sync()
				a.draw()
			case *tcell.EventKey:
				act, ok, quit := keyToAction(ev, a.snap.Phase)
				if quit {
					return a.wait(cancel, runnerDone)
				}
				if ok && !a.runner.Submit(act) {
					log.Warnf("tui dropped %s", act.Name())
				}
			}
		}
	}
}

func (a *App) wait(cancel context.CancelFunc, runnerDone <-chan error) error {
	cancel()
	if err := <-runnerDone; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (a *App) draw() {
	a.screen.Clear()
	render(a.screen, a.snap, a.tokens, a.strings)
	a.screen.Show()
}

// keyToAction maps arrows, hjkl and Enter; ok is false for keys that do
// nothing in phase.
func keyToAction(ev *tcell.EventKey, phase model.Phase) (act model.Action, ok bool, quit bool) {
	switch ev.Key() {
	case tcell.KeyRight:
		return model.MOVE_RIGHT, true, false
	case tcell.KeyDown:
		return model.MOVE_DOWN, true, false
	case tcell.KeyLeft:
		return model.MOVE_LEFT, true, false
	case tcell.KeyUp:
		return model.MOVE_UP, true, false
	case tcell.KeyEnter:
		return enterAction(phase)
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return 0, false, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'l', 'L':
			return model.MOVE_RIGHT, true, false
		case 'j', 'J':
			return model.MOVE_DOWN, true, false
		case 'h', 'H':
			return model.MOVE_LEFT, true, false
		case 'k', 'K':
			return model.MOVE_UP, true, false
		case ' ':
			return enterAction(phase)
		case 'q', 'Q':
			return 0, false, true
		}
	}
	return 0, false, false
}

func enterAction(phase model.Phase) (model.Action, bool, bool) {
	switch phase {
	case model.INTRO:
		return model.START, true, false
	case model.GAME_OVER:
		return model.RESTART, true, false
	}
	return 0, false, false
}
