package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"kickdoor/pkg/engine/input"
	"kickdoor/pkg/game/config"
	"kickdoor/pkg/game/devtools"
	"kickdoor/pkg/game/gameplay"
	"kickdoor/pkg/game/generator"
	"kickdoor/pkg/game/i18n"
	"kickdoor/pkg/game/kick"
	"kickdoor/pkg/game/renderer"
	ebitenrenderer "kickdoor/pkg/game/renderer/ebiten"
	"kickdoor/pkg/game/renderer/tui"
	"kickdoor/pkg/game/rules"
	"kickdoor/pkg/game/scenario"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flag.StringVar(&cfg.Renderer, "renderer", cfg.Renderer, "renderer to use: tui or ebiten")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for kick rolls and generated buildings (0 seeds from the clock)")
	flag.StringVar(&cfg.Scenario, "scenario", cfg.Scenario, "Lua scenario file, \"random\" for a generated building, or empty for the built-in door yard")
	dump := flag.Bool("dump", false, "print the scenario map and door odds, then exit")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	i18n.Configure(cfg.LocaleDir, cfg.Language)

	if !input.SetSingleBinding(input.ActionKick, cfg.KickKey) {
		return fmt.Errorf("kick key %q is reserved", cfg.KickKey)
	}

	extra, err := rules.CompileAll(cfg.Disqualify, logger)
	if err != nil {
		return err
	}

	seed := uint64(cfg.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	scn, err := loadScenario(cfg.Scenario, seed, logger)
	if err != nil {
		return err
	}
	g, err := scenario.Build(scn)
	if err != nil {
		return fmt.Errorf("build scenario %q: %w", scn.Name, err)
	}

	if *dump {
		if err := devtools.DumpMap(os.Stdout, g); err != nil {
			return err
		}
		return devtools.WriteDoorReport(os.Stdout, g, extra)
	}

	session := gameplay.NewSession(g, logger,
		kick.WithRules(extra),
		kick.WithRoller(rand.New(rand.NewPCG(seed, seed))),
	)
	session.Welcome()

	logger.Info("starting",
		"scenario", g.Name,
		"renderer", cfg.Renderer,
		"seed", seed,
		"disqualifiers", len(cfg.Disqualify))

	var r renderer.Renderer
	switch cfg.Renderer {
	case config.RendererEbiten:
		r = ebitenrenderer.New(logger)
	default:
		r = tui.New()
	}
	if err := r.Run(session); err != nil {
		return fmt.Errorf("%s renderer: %w", cfg.Renderer, err)
	}
	logger.Info("stopped", "ticks", g.Ticks)
	return nil
}

func newLogger(cfg config.Config) (*slog.Logger, func(), error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = os.Stderr
	closeLog := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeLog = func() { f.Close() }
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closeLog, nil
}

func loadScenario(path string, seed uint64, logger *slog.Logger) (*scenario.Scenario, error) {
	switch path {
	case "":
		return scenario.Default(logger)
	case generator.Name:
		gen := generator.New(rand.New(rand.NewPCG(seed, ^seed)))
		logger.Info("generating building", "generator", gen.Name(), "seed", seed)
		return gen.Generate("Random Building"), nil
	default:
		return scenario.LoadFile(path, logger)
	}
}
