package main

import (
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/render"
	"github.com/lixenwraith/vi-pong/systems"
)

// game is the host: it owns the match and bridges terminal, audio and render
type game struct {
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	sound    *audio.SoundManager
	keys     *input.KeyTable
	holds    *input.HoldTracker

	// clock is real time; the match layers its own pausable clock on top
	clock engine.TimeProvider
	cfg   engine.MatchConfig
	match *engine.Match

	pending []input.Intent
	quit    bool
}

func newGame(screen tcell.Screen, sound *audio.SoundManager, keys *input.KeyTable, clock engine.TimeProvider, opts options) *game {
	cfg := engine.MatchConfig{LeftControl: opts.control()}
	return &game{
		screen:   screen,
		renderer: render.NewTerminalRenderer(screen),
		sound:    sound,
		keys:     keys,
		holds:    input.NewHoldTracker(opts.holdInitial, opts.holdRepeat),
		clock:    clock,
		cfg:      cfg,
		match:    systems.NewMatch(cfg, clock),
	}
}

// handleEvent translates a terminal event into pending intents
// Quit and mute are host concerns and never reach the match
func (g *game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()

	case *tcell.EventKey:
		it, ok := g.keys.Lookup(ev)
		if !ok {
			return
		}
		switch it {
		case input.IntentQuit:
			g.quit = true
		case input.IntentToggleMute:
			muted := g.sound.ToggleMute()
			log.Printf("audio: muted=%v", muted)
		default:
			g.pending = append(g.pending, g.holds.Press(it, g.clock.Now())...)
		}
	}
}

// step runs one frame: synthesized releases, tick, event fan-out, render
func (g *game) step() {
	intents := append(g.pending, g.holds.Expire(g.clock.Now())...)
	g.pending = g.pending[:0]

	g.match.Tick(intents)

	restart := false
	for _, ev := range g.match.Events.Consume() {
		g.sound.HandleEvent(ev)
		logEvent(ev)
		if ev.Type == event.EventRestartRequested {
			restart = true
		}
	}
	if restart {
		g.restart()
	}

	g.renderer.RenderFrame(g.match.Snapshot(), render.HUDState{Muted: g.sound.IsMuted()})
}

// restart replaces the finished match with a fresh one in the same mode
func (g *game) restart() {
	g.match = systems.NewMatch(g.cfg, g.clock)
	g.holds.Reset()
	log.Printf("match: restarted")
}

func logEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventWallBounce, event.EventBallRespawn:
		// Too frequent to be useful
	case event.EventPaddleHit:
		if p, ok := ev.Payload.(*event.PaddleHitPayload); ok {
			log.Printf("event: %s side=%s speed=%.0f tier=%d", ev.Type, p.Side, p.Speed, p.Tier)
		}
	default:
		log.Printf("event: %s %+v", ev.Type, ev.Payload)
	}
}
