package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/automoto/gooey-cursor/capability"
	"github.com/automoto/gooey-cursor/config"
	"github.com/automoto/gooey-cursor/fonts"
	"github.com/automoto/gooey-cursor/logger"
	"github.com/automoto/gooey-cursor/scenes"
	"github.com/automoto/gooey-cursor/systems"
	"github.com/automoto/gooey-cursor/theme"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

var (
	themePath     = flag.String("theme", "", "theme YAML file, reloaded when it changes")
	debugHUD      = flag.Bool("debug", false, "show the debug HUD")
	overlay       = flag.Bool("overlay", false, "transparent undecorated window with no backdrop")
	reducedMotion = flag.Bool("reduced-motion", false, "behave as if the user prefers reduced motion")
	mobile        = flag.Bool("mobile", false, "behave as a touch-primary device")
	logLevel      = flag.String("log-level", "info", "debug, info, warn or error")
	logEnv        = flag.String("log-env", "development", "development (console) or production (JSON)")
)

type Game struct {
	scene *scenes.OverlayScene
}

func NewGame(opts scenes.OverlayOptions) *Game {
	return &Game{scene: scenes.NewOverlayScene(opts)}
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() || g.scene.Quit() {
		g.scene.Close()
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// LayoutF renders at device resolution, capped at the render scale cap
func (g *Game) LayoutF(width, height float64) (float64, float64) {
	return g.scene.Resize(width, height, deviceScale())
}

func (g *Game) Layout(width, height int) (int, int) {
	w, h := g.LayoutF(float64(width), float64(height))
	return int(w), int(h)
}

func deviceScale() float64 {
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}

func loadThemes(log *zap.Logger) (*theme.File, *theme.Watcher) {
	if *themePath == "" {
		return theme.Default(), nil
	}

	themes, err := theme.Load(*themePath)
	if err != nil {
		log.Warn("using built-in themes", zap.Error(err))
		themes = theme.Default()
	}

	w, err := theme.NewWatcher(*themePath)
	if err != nil {
		log.Warn("theme hot reload unavailable", zap.Error(err))
		return themes, nil
	}
	return themes, w
}

func main() {
	flag.Parse()

	log, err := logger.New(logger.Config{
		Environment: *logEnv,
		LogLevel:    *logLevel,
		Component:   "gooey",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	config.Debug.Enabled = *debugHUD
	config.Debug.Overlay = *overlay
	systems.SetLogger(log)

	if err := fonts.LoadDefaults(); err != nil {
		log.Warn("debug HUD fonts unavailable", zap.Error(err))
	}

	if err := systems.InitPersistence(config.Theme.PersistenceAppName); err != nil {
		log.Warn("could not initialize persistence", zap.Error(err))
	}

	themes, watcher := loadThemes(log)
	gate := capability.NewGate(environment(*mobile, *reducedMotion), log.Named("capability"))

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(config.C.TPS)

	runOpts := &ebiten.RunGameOptions{}
	if config.Debug.Overlay {
		ebiten.SetWindowDecorated(false)
		ebiten.SetWindowFloating(true)
		ebiten.MaximizeWindow()
		runOpts.ScreenTransparent = true
	}

	game := NewGame(scenes.OverlayOptions{
		Gate:    gate,
		Themes:  themes,
		Watcher: watcher,
		Log:     log,
	})
	if err := ebiten.RunGameWithOptions(game, runOpts); err != nil {
		log.Error("game stopped", zap.Error(err))
		os.Exit(1)
	}
}
