package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/stripshow/stripshow/internal/apa102"
	"github.com/stripshow/stripshow/internal/config"
	"github.com/stripshow/stripshow/internal/preview"
	"github.com/stripshow/stripshow/internal/show"
	"github.com/stripshow/stripshow/internal/strip"
)

func main() {
	var (
		defaultsPath = flag.String("defaults", "defaults.yml", "path to the default settings")
		configPath   = flag.String("config", "config.yml", "path to the user settings overlay")
		showName     = flag.String("show", "rainbow", "show to run")
		leds         = flag.Int("leds", 0, "LED count override (0 = from settings)")
		spiDev       = flag.String("spi", "", "SPI port name (empty = first available)")
		console      = flag.Bool("console", false, "render to the terminal instead of hardware")
		verbose      = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	if !*verbose {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg, err := config.LoadConfiguration(*defaultsPath, *configPath)
	if err != nil {
		log.Warn().Err(err).Msg("settings load failed; proceeding with flags only")
		cfg = config.Tree{}
	}

	hw := cfg.Sub("hardware")
	numLEDs := hw.Int("num_leds", 144)
	if *leds > 0 {
		numLEDs = *leds
	}
	clock := physic.Frequency(hw.Int("max_clock_speed_hz", 4000000)) * physic.Hertz

	r := openRenderer(*console, *spiDev, numLEDs, clock)
	s := strip.New(numLEDs, r)
	defer s.Close()

	pat, err := show.New(*showName, s)
	if err != nil {
		log.Fatal().Err(err).Msg("no such show")
	}
	runner := show.NewRunner(s, pat)
	runner.SetLogger(log.Logger)
	if err := runner.ApplyParameters(cfg.Sub("shows").Sub(*showName)); err != nil {
		log.Fatal().Err(err).Str("show", *showName).Msg("invalid show settings")
	}

	// Stop is cooperative and only lands at the next cycle boundary.
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigc
		log.Info().Str("signal", sig.String()).Msg("stopping at the next cycle boundary")
		runner.Stop()
	}()

	log.Info().Str("show", *showName).Int("leds", numLEDs).Msg("starting")
	if err := runner.Run(); err != nil {
		log.Fatal().Err(err).Msg("show failed")
	}
}

// openRenderer prefers real hardware and falls back to the console
// when no SPI port is available.
func openRenderer(console bool, spiDev string, numLEDs int, clock physic.Frequency) strip.Renderer {
	if console {
		return preview.New(numLEDs)
	}
	if _, err := host.Init(); err != nil {
		log.Fatal().Err(err).Msg("host init failed")
	}
	port, err := spireg.Open(spiDev)
	if err != nil {
		log.Warn().Err(err).Msg("no SPI port, rendering to the console")
		return preview.New(numLEDs)
	}
	d, err := apa102.New(port, numLEDs, clock)
	if err != nil {
		log.Fatal().Err(err).Msg("driver init failed")
	}
	log.Info().Str("driver", d.String()).Msg("connected")
	return d
}
