package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/nsf/termbox-go"
	"go.uber.org/zap"

	"github.com/park285/checkers/internal/checkers"
	appcfg "github.com/park285/checkers/internal/config"
	"github.com/park285/checkers/internal/msgcat"
	"github.com/park285/checkers/internal/obslog"
	"github.com/park285/checkers/internal/render"
	"github.com/park285/checkers/internal/session"
)

func main() {
	cfg, err := appcfg.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if err := obslog.Init(cfg.Log); err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	defer func() { _ = obslog.L().Sync() }()

	catalog, err := msgcat.New(cfg.MessagesDir)
	if err != nil {
		log.Fatalf("message catalog error: %v", err)
	}

	var rules []checkers.Option
	if cfg.Promotion {
		rules = append(rules, checkers.WithPromotion())
	}
	mgr := session.NewManager(catalog, rules...)

	ctx := context.Background()
	game, err := mgr.CreateGame(ctx, cfg.LightName, cfg.DarkName)
	if err != nil {
		log.Fatalf("create game error: %v", err)
	}

	if err := termbox.Init(); err != nil {
		log.Fatalf("terminal init error: %v", err)
	}
	termbox.SetInputMode(termbox.InputEsc)

	ui := newUI(ctx, mgr, catalog, game)
	runErr := ui.run()
	termbox.Close()
	if runErr != nil {
		obslog.L().Error("checkers_ui_error", zap.Error(runErr))
		fmt.Fprintf(os.Stderr, "error: %v\n", runErr)
	}

	state, err := mgr.State(ctx, game.ID, cfg.ExportPNG != "", render.RenderOptions{SquareSize: cfg.SquareSize})
	if err != nil {
		log.Fatalf("final state error: %v", err)
	}
	if cfg.ExportPNG != "" {
		if err := os.WriteFile(cfg.ExportPNG, state.BoardImage, 0o644); err != nil {
			obslog.L().Warn("checkers_export_failed", zap.String("path", cfg.ExportPNG), zap.Error(err))
		} else {
			obslog.L().Info("checkers_export", zap.String("path", cfg.ExportPNG))
		}
	}
	fmt.Print(state.BoardText)
	if ui.status != "" {
		fmt.Println(ui.status)
	}
	_ = mgr.Remove(ctx, game.ID)
}
