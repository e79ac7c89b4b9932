package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"marquee/internal/animate"
	"marquee/internal/config"
	"marquee/internal/feed"
	"marquee/internal/glyph"
	"marquee/internal/layout"
	"marquee/internal/screen"
	"marquee/internal/tui"
)

func main() {
	defaults := config.Default()

	configFlag := flag.String("config", "", "YAML configuration file (optional)")
	messageFlag := flag.String("message", defaults.Message, "Text to animate")
	modeFlag := flag.String("mode", string(defaults.Mode), "Animation mode (scroll|obo|swaga)")
	delayFlag := flag.Float64("delay", defaults.Delay, "Seconds between frames")
	colorFlag := flag.String("color", "", "Base color as #rrggbb (default: theme accent)")
	loopFlag := flag.Bool("loop", defaults.Loop, "Restart the animation after each pass")
	alignFlag := flag.String("align", string(defaults.Align), "Vertical alignment (top|center|bottom)")
	fontFlag := flag.String("font", defaults.Font, "FIGlet font name")
	themeFlag := flag.String("theme", "vapor", "Theme name (vapor|midnight|dusk)")
	followFlag := flag.String("follow", "", "Follow a file; each new line replaces the message")
	plainFlag := flag.Bool("plain", false, "Write ANSI frames directly instead of running the TUI")
	logFlag := flag.String("log", "", "Write debug logs to this file")
	flag.Parse()

	cfg := defaults
	if *configFlag != "" {
		loaded, err := config.LoadFromFile(*configFlag)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "message":
			cfg.Message = *messageFlag
		case "mode":
			cfg.Mode = config.Mode(*modeFlag)
		case "delay":
			cfg.Delay = *delayFlag
		case "color":
			cfg.Color = *colorFlag
		case "loop":
			cfg.Loop = *loopFlag
		case "align":
			cfg.Align = layout.Align(*alignFlag)
		case "font":
			cfg.Font = *fontFlag
		}
	})
	theme := tui.ThemeByName(*themeFlag)
	if cfg.Color == "" {
		cfg.Color = theme.Accent
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	renderer, err := glyph.NewFiglet(cfg.Font)
	if err != nil {
		log.Fatalf("font: %v", err)
	}

	closeLog := setupLogging(*logFlag)
	defer closeLog()

	ctx, cancel := signalContext()
	defer cancel()

	var messages <-chan string
	if *followFlag != "" {
		lines, err := feed.Follow(ctx, *followFlag, feed.Config{})
		if err != nil {
			log.Fatalf("follow: %v", err)
		}
		messages = feed.Latest(ctx, lines)
	}

	opts := animate.Options{
		Config:   cfg,
		Renderer: renderer,
		Geometry: screen.Sampler(os.Stdout.Fd()),
		Messages: messages,
	}

	var (
		cancelled bool
		runErr    error
	)
	if *plainFlag {
		cancelled, runErr = runPlain(ctx, opts)
	} else {
		cancelled, runErr = runTUI(ctx, cancel, opts, theme.Name)
	}
	cancel()
	if runErr != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(runErr)
	}
	if cancelled {
		fmt.Println(tui.Farewell(theme.Name))
	}
}

// runTUI reports whether the run was cancelled rather than completed.
func runTUI(ctx context.Context, cancel context.CancelFunc, opts animate.Options, themeName string) (bool, error) {
	sink := tui.NewSink()
	opts.Sink = sink
	driver, err := animate.New(opts)
	if err != nil {
		return false, err
	}

	model := tui.NewModel(tui.ModelConfig{
		Frames:    sink.Frames(),
		ThemeName: themeName,
		Cancel:    cancel,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithFPS(fps(opts.Config.RefreshHz())))

	driverErr := make(chan error, 1)
	go func() {
		err := driver.Run(ctx)
		sink.Close()
		driverErr <- err
	}()
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	_, err = p.Run()
	cancelled := ctx.Err() != nil
	cancel()
	if derr := <-driverErr; err == nil {
		err = derr
	}
	return cancelled, err
}

func runPlain(ctx context.Context, opts animate.Options) (bool, error) {
	sink := screen.NewSink(os.Stdout)
	opts.Sink = sink
	driver, err := animate.New(opts)
	if err != nil {
		return false, err
	}
	sink.Open()
	defer sink.Close()
	err = driver.Run(ctx)
	return ctx.Err() != nil, err
}

func fps(hz float64) int {
	return int(math.Max(1, math.Min(120, math.Ceil(hz))))
}

func setupLogging(path string) func() {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}
	}
	f, err := tea.LogToFile(path, "marquee")
	if err != nil {
		log.Fatalf("open log: %v", err)
	}
	return func() { f.Close() }
}

func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	c := make(chan os.Signal, 4)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		defer signal.Stop(c)
		select {
		case sig := <-c:
			log.Printf("received %v, shutting down", sig)
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}
