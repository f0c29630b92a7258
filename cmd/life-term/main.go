package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"torus-life/internal/app"
	"torus-life/internal/render"
	"torus-life/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Rows, cfg.Cols = 32, 48
	cfg.Bind(flag.CommandLine)
	dump := flag.Bool("dump", false, "print the final grid on exit")
	headless := flag.Duration("headless", 0, "run without a terminal UI for this long, then print the grid")
	flag.Parse()

	s, err := app.Build(cfg)
	if err != nil {
		log.Fatalf("build simulator: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *headless > 0 {
		log.Printf("running %dx%d grid headless for %s", cfg.Rows, cfg.Cols, *headless)
		if err := app.RunHeadless(ctx, s, *headless); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatal(err)
		}
		fmt.Print(render.Text(s.Grid()))
		log.Printf("stopped: %s", render.Status(s.Parameters()))
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}

	viewer := term.NewViewer(screen, s, cfg)
	err = viewer.Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	if *dump {
		fmt.Print(render.Text(s.Grid()))
	}
	log.Printf("stopped %dx%d grid: %s", cfg.Rows, cfg.Cols, render.Status(s.Parameters()))
}
