package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"
	"github.com/rs/zerolog"

	"signalstation/pkg/game/config"
	"signalstation/pkg/game/content"
	"signalstation/pkg/game/devtools"
	"signalstation/pkg/game/gameplay"
	"signalstation/pkg/game/renderer"
	ebitenrenderer "signalstation/pkg/game/renderer/ebiten"
	"signalstation/pkg/game/state"
)

func initGotext() {
	gotext.Configure("po", "en_GB", "default")
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func loadContent(path string, log zerolog.Logger) (*content.Store, error) {
	if path == "" {
		return content.LoadDefault()
	}
	log.Info().Str("path", path).Msg("loading content document")
	return content.LoadFile(path)
}

func main() {
	verbose := flag.Bool("verbose", false, "enable debug logging")
	contentPath := flag.String("content", "", "path to a content document (YAML); default is the embedded resume")
	tuningPath := flag.String("tuning", "", "path to a tuning overlay (YAML)")
	dumpContent := flag.Bool("dump-content", false, "print the content document to stdout and exit")
	flag.Parse()

	log := newLogger(*verbose)
	initGotext()

	if *tuningPath != "" {
		if err := config.LoadOverlay(*tuningPath); err != nil {
			log.Fatal().Err(err).Str("path", *tuningPath).Msg("loading tuning overlay")
		}
	}

	store, loadErr := loadContent(*contentPath, log)

	if *dumpContent {
		if loadErr != nil {
			fmt.Fprintln(os.Stderr, loadErr)
			os.Exit(1)
		}
		devtools.DumpContent(os.Stdout, store)
		return
	}

	// A broken content document still gets a window: the boot-error screen
	// shows what went wrong instead of dying on a blank terminal.
	var g *state.Game
	if loadErr == nil {
		g = gameplay.BuildGame(store, log)
		log.Info().Int("sections", store.Len()).Msg("content loaded")
	}

	r := ebitenrenderer.New(g, log)
	renderer.SetRenderer(r)

	if err := r.Init(); err != nil {
		log.Fatal().Err(err).Msg("initializing renderer")
	}
	if loadErr != nil {
		log.Error().Err(loadErr).Msg("content load failed")
		r.ShowBootError(loadErr.Error())
	}

	if err := r.Run(); err != nil {
		log.Fatal().Err(err).Msg("main loop")
	}
	log.Info().Msg("exited")
}
