package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/lixenwraith/vi-pong/audio"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/input"
	"github.com/lixenwraith/vi-pong/parameter"
	"golang.org/x/term"
)

// options holds parsed command-line flags
type options struct {
	twoPlayer   bool
	keymap      string
	debug       bool
	mute        bool
	holdInitial time.Duration
	holdRepeat  time.Duration
}

func (o options) control() core.Control {
	if o.twoPlayer {
		return core.ControlHuman
	}
	return core.ControlAI
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("vi-pong", flag.ContinueOnError)
	fs.BoolVar(&opts.twoPlayer, "two-player", false, "Human controls the left paddle (w/s) instead of the AI")
	fs.StringVar(&opts.keymap, "keymap", "", "TOML file overriding default key bindings")
	fs.BoolVar(&opts.debug, "debug", false, "Write logs to "+logDir+"/"+logFileName)
	fs.BoolVar(&opts.mute, "mute", false, "Start with sound muted")
	fs.DurationVar(&opts.holdInitial, "hold-initial", parameter.KeyHoldInitial, "Hold window after the first key press")
	fs.DurationVar(&opts.holdRepeat, "hold-repeat", parameter.KeyHoldRepeat, "Hold window after each auto-repeat press")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.holdInitial <= 0 || opts.holdRepeat <= 0 {
		return opts, fmt.Errorf("hold windows must be positive, got %v and %v", opts.holdInitial, opts.holdRepeat)
	}
	return opts, nil
}

// loadKeys returns the default table, merged with the keymap file when given
func loadKeys(path string) (*input.KeyTable, error) {
	base := input.DefaultKeyTable()
	if path == "" {
		return base, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keymap: %w", err)
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return input.MergeKeyTable(base, override), nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "vi-pong: %v\n", err)
		os.Exit(2)
	}
	os.Exit(run(opts))
}

func run(opts options) int {
	// Missing .env is normal
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "vi-pong: .env: %v\n", err)
	}

	logFile := setupLogging(opts.debug)
	if logFile != nil {
		defer logFile.Close()
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "vi-pong: must be run in an interactive terminal")
		return 1
	}

	keys, err := loadKeys(opts.keymap)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-pong: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	screen.HideCursor()

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	core.SetCrashCleanup(screen.Fini)
	defer func() {
		core.HandleCrash(recover())
	}()
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Audio is optional; the game continues silent
	sound := audio.NewSoundManager()
	if err := sound.Initialize(audio.LoadAudioConfig()); err != nil {
		log.Printf("audio: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()
	sound.SetMuted(opts.mute)

	g := newGame(screen, sound, keys, engine.NewMonotonicTimeProvider(), opts)
	log.Printf("match: started, left=%s", opts.control())

	eventChan := make(chan tcell.Event, parameter.InputChannelSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			g.handleEvent(ev)
		case <-frameTicker.C:
			g.step()
		}
		if g.quit {
			log.Printf("match: quit at %d-%d", g.match.Score.PlayerOne, g.match.Score.PlayerTwo)
			return 0
		}
	}
}
