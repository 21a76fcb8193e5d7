package main

import (
	"flag"
	"log"

	"chosenoffset.com/folio/internal/app"
	"chosenoffset.com/folio/internal/config"
	"chosenoffset.com/folio/internal/logger"
	ebitenrender "chosenoffset.com/folio/internal/render/ebiten"
)

func main() {
	configPath := flag.String("config", "configs/folio.yaml", "path to the YAML config")
	route := flag.String("route", "", "start route (overrides the config), e.g. /bluecondition")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.Init(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	// Initialize the renderer backend (ebiten)
	text, err := ebitenrender.NewTextRenderer(14)
	if err != nil {
		log.Fatalf("Failed to load HUD font: %v", err)
	}
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	manager, err := app.NewManager(cfg, inputMgr, text, cfg.Window.Width, cfg.Window.Height, *route)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	manager.TPS = ebitenrender.ActualTPS

	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(cfg.Window.Resizable)

	_, start := manager.Current()
	logger.L().Info("starting", "route", start, "window", cfg.Window.Title)
	runErr := engine.RunGame(manager)
	manager.Close()
	if runErr != nil {
		log.Fatal(runErr)
	}
}
