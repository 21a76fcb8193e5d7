package main

import (
	"flag"
	"log"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/folio/internal/app"
	"chosenoffset.com/folio/internal/config"
	"chosenoffset.com/folio/internal/logger"
	"chosenoffset.com/folio/internal/render/term"
)

func main() {
	configPath := flag.String("config", "configs/folio.yaml", "path to the YAML config")
	route := flag.String("route", "", "start route (overrides the config)")
	tps := flag.Int("tps", 30, "ticks per second")
	logPath := flag.String("log", "", "log file; logging is discarded when empty")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	// The terminal is the display, so logs go to a file or nowhere.
	logOut, closeLog, err := openLog(*logPath)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closeLog()
	logger.Init(logger.Config{Level: cfg.Logging.Level, Format: "text", Output: logOut})

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	input := term.NewInput(cfg.Terminal.Hold())
	engine := term.NewEngine(screen, input, *tps)
	engine.SetWindowTitle("folio  1-6 routes  Esc home  Ctrl+C quit")

	cols, rows := screen.Size()
	manager, err := app.NewManager(cfg, input, term.TextRenderer{}, cols, rows*2, *route)
	if err != nil {
		screen.Fini()
		log.Fatalf("Failed to start: %v", err)
	}

	runErr := engine.RunGame(manager)
	manager.Close()
	screen.Fini()
	if runErr != nil {
		log.Fatal(runErr)
	}
}
