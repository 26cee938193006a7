package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/pitch-fighter/audio"
	"github.com/lixenwraith/pitch-fighter/config"
	"github.com/lixenwraith/pitch-fighter/engine"
	"github.com/lixenwraith/pitch-fighter/event"
	"github.com/lixenwraith/pitch-fighter/input"
	"github.com/lixenwraith/pitch-fighter/parameter"
	"github.com/lixenwraith/pitch-fighter/render"
	"github.com/lixenwraith/pitch-fighter/render/renderers"
	"github.com/lixenwraith/pitch-fighter/status"
)

var (
	configFlag   = flag.String("config", "", "Path to a TOML config file")
	debugFlag    = flag.Bool("debug", false, "Log to logs/ and show counters on screen")
	headlessFlag = flag.Bool("headless", false, "Stream msgpack frames to stdout instead of drawing")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *headlessFlag || !term.IsTerminal(int(os.Stdout.Fd())) {
		err = runHeadless(ctx, cfg)
	} else {
		err = runTerminal(ctx, cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "pitch-fighter: %v\n", err)
		os.Exit(1)
	}
}

// runTerminal plays an interactive match on the tcell screen
func runTerminal(ctx context.Context, cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	defer screen.Fini()

	// Restore the terminal before printing so the trace stays readable
	crash := func(r any) {
		screen.Fini()
		// \r\n for raw mode compatibility
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mPITCH-FIGHTER CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()

	reg := status.NewRegistry()
	w, h := screen.Size()
	match, err := engine.NewMatch(cfg.MatchConfig(), engine.FieldForScreen(w, h), engine.NewPausableClock(nil), reg)
	if err != nil {
		return err
	}
	log.Printf("match %s: %dx%d cells, %dv%d", match.ID, w, h, match.Roster.Size(), match.Roster.Size())

	audioEngine := audio.NewAudioEngine(cfg.AudioConfig(), reg)
	if err := audioEngine.Start(); err != nil {
		log.Printf("audio start failed: %v (continuing without audio)", err)
	}
	defer audioEngine.Stop()

	orchestrator := render.NewRenderOrchestrator(w, h)

	type rendererDef struct {
		renderer render.SystemRenderer
		priority render.RenderPriority
	}
	rendererList := []rendererDef{
		{renderers.NewPitchRenderer(), render.PriorityPitch},
		{renderers.NewEntityRenderer(), render.PriorityEntities},
		{renderers.NewHUDRenderer(), render.PriorityUI},
		{renderers.NewOverlayRenderer(), render.PriorityOverlay},
		{renderers.NewStatusLineRenderer(), render.PriorityDebug},
	}
	for _, def := range rendererList {
		orchestrator.Register(def.renderer, def.priority)
	}

	intents := make(chan input.Intent, parameter.InputChannelSize)
	// Input polling uses raw goroutine as it interacts directly with terminal
	go input.Poll(screen, input.NewTranslator(nil), intents, crash)

	runner := engine.NewRunner(match, engine.RunnerConfig{
		Sink:          render.NewTerminalSink(screen, orchestrator),
		Handlers:      []engine.EventHandler{audio.NewDispatcher(audioEngine)},
		Audio:         audioEngine,
		Input:         intents,
		Registry:      reg,
		Debug:         *debugFlag,
		FrameInterval: cfg.FrameInterval(),
	})
	return runner.Run(ctx)
}

// stopOnGameOver ends a headless run at full time
type stopOnGameOver struct {
	cancel context.CancelFunc
}

func (s stopOnGameOver) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameOver {
		s.cancel()
	}
}

// runHeadless simulates one match without input and streams snapshots to stdout
func runHeadless(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	reg := status.NewRegistry()
	field := engine.FieldForScreen(cfg.Display.HeadlessCols, cfg.Display.HeadlessRows)
	match, err := engine.NewMatch(cfg.MatchConfig(), field, engine.NewPausableClock(nil), reg)
	if err != nil {
		return err
	}
	log.Printf("match %s: headless, %.0fx%.0f field", match.ID, field.Width, field.Height)

	runner := engine.NewRunner(match, engine.RunnerConfig{
		Sink:          render.NewFrameEncoder(os.Stdout, cfg.Display.HeadlessEvery),
		Handlers:      []engine.EventHandler{stopOnGameOver{cancel: cancel}},
		Registry:      reg,
		Debug:         *debugFlag,
		FrameInterval: cfg.FrameInterval(),
	})
	if err := runner.Run(ctx); err != nil {
		return err
	}

	// Final frame carries the result
	snap := match.Snapshot()
	log.Printf("match %s: finished %d-%d %s", match.ID, snap.ScoreA, snap.ScoreB, snap.Outcome.Message())
	return render.NewFrameEncoder(os.Stdout, 1).Render(snap)
}
