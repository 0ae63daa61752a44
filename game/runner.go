package game

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/codemaze/model"
)

const (
	DefaultTickInterval = 500 * time.Millisecond

	actionQueue = 16
	updateQueue = 8
)

// Runner owns a session and is the only goroutine touching it. Player
// actions and hazard ticks are applied one at a time, each to completion.
type Runner struct {
	session  *model.Session
	interval time.Duration
	actions  chan model.Action
	updates  chan model.Snapshot
	done     chan struct{}
	ticker   *time.Ticker
}

func NewRunner(session *model.Session, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Runner{
		session:  session,
		interval: interval,
		actions:  make(chan model.Action, actionQueue),
		updates:  make(chan model.Snapshot, updateQueue),
		done:     make(chan struct{}),
	}
}

// Submit queues an action without blocking. It returns false once the
// runner stopped or when the queue is full.
func (r *Runner) Submit(a model.Action) bool {
	select {
	case <-r.done:
		return false
	default:
	}
	select {
	case r.actions <- a:
		return true
	default:
		log.Warnf("Runner.Submit dropping %s, queue full", a.Name())
		return false
	}
}

// Updates delivers a snapshot after every state change. It is closed when
// Run returns.
func (r *Runner) Updates() <-chan model.Snapshot {
	return r.updates
}

func (r *Runner) Done() <-chan struct{} {
	return r.done
}

// Run drives the session until ctx is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	defer close(r.updates)
	defer close(r.done)

	log.Infof("Runner.Run %q started", r.session.Blueprint().Name)
	r.publish()
	r.syncTicker()
	for {
		select {
		case <-ctx.Done():
			r.stopTicker()
			log.Infof("Runner.Run %q stopped", r.session.Blueprint().Name)
			return ctx.Err()
		case a := <-r.actions:
			r.apply(a)
		case <-r.tickC():
			if r.session.Tick() {
				r.afterChange()
			}
		}
	}
}

// apply leaves the ticker alone for rejected actions. A restart is only
// accepted in GAME_OVER, where the ticker is already stopped, so the fresh
// ticker from afterChange starts after the reset.
func (r *Runner) apply(a model.Action) {
	if !r.session.Apply(a) {
		return
	}
	log.Debugf("Runner applied %s", a.Name())
	r.afterChange()
}

func (r *Runner) afterChange() {
	r.syncTicker()
	if r.session.Phase() == model.GAME_OVER {
		log.Infof("Runner %q game over, score %d, record %d",
			r.session.Blueprint().Name, r.session.Score(), r.session.HighScore())
	}
	r.publish()
}

// publish never blocks: with a full queue the oldest snapshot goes.
func (r *Runner) publish() {
	snap := r.session.Snapshot()
	for {
		select {
		case r.updates <- snap:
			return
		default:
		}
		select {
		case <-r.updates:
			log.Warn("Runner.publish consumer slow, dropped stale snapshot")
		default:
		}
	}
}

func (r *Runner) tickC() <-chan time.Time {
	if r.ticker == nil {
		return nil
	}
	return r.ticker.C
}

func (r *Runner) syncTicker() {
	playing := r.session.Phase() == model.PLAYING
	switch {
	case playing && r.ticker == nil:
		r.ticker = time.NewTicker(r.interval)
	case !playing && r.ticker != nil:
		r.stopTicker()
	}
}

// stopTicker stops the ticker and drains a tick that may already be pending.
func (r *Runner) stopTicker() {
	if r.ticker == nil {
		return
	}
	r.ticker.Stop()
	select {
	case <-r.ticker.C:
	default:
	}
	r.ticker = nil
}
