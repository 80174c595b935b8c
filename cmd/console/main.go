package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/iamasit07/4-in-a-row/console/internal/config"
	"github.com/iamasit07/4-in-a-row/console/internal/logger"
	"github.com/iamasit07/4-in-a-row/console/internal/service/game"
	"github.com/iamasit07/4-in-a-row/console/internal/transport/console"
	"github.com/iamasit07/4-in-a-row/console/internal/transport/terminal"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to an optional yaml config file")
	mode := flag.String("mode", "", "override the game mode: text or terminal")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("[CONFIG] No .env file found")
		}
	}

	if *mode != "" {
		os.Setenv("GAME_MODE", *mode)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("[CONFIG] %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("[CONFIG] %v", err)
	}
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, zlog); err != nil {
		zlog.Error("[GAME] Exited with error", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, zlog *zap.Logger) error {
	a, b := cfg.Players()
	opts := game.Options{
		PlayerA: a,
		PlayerB: b,
		Policy:  cfg.Policy(),
		Logger:  zlog,
	}

	switch cfg.Mode {
	case config.ModeTerminal:
		screen, err := terminal.New(a, b)
		if err != nil {
			return err
		}
		defer screen.Close()

		opts.ProviderA, opts.ProviderB = screen, screen
		opts.Presenter, opts.Restart = screen, screen
	default:
		lines := console.NewLineReader(os.Stdin)
		human := console.NewHumanPlayer(lines, os.Stdout)

		opts.ProviderA, opts.ProviderB = human, human
		opts.Presenter = console.NewPresenter(os.Stdout, a, b)
		opts.Restart = console.NewRestartPrompt(lines, os.Stdout)
	}

	loop, err := game.NewLoop(opts)
	if err != nil {
		return err
	}

	zlog.Info("[GAME] Session starting", zap.String("mode", cfg.Mode), zap.String("start_policy", string(opts.Policy)))
	summary, err := loop.Run(ctx)
	zlog.Info("[GAME] Session finished",
		zap.Int("games", summary.Games),
		zap.Int("wins_"+string(a.Symbol), summary.WinsA),
		zap.Int("wins_"+string(b.Symbol), summary.WinsB),
		zap.Int("draws", summary.Draws))
	return err
}
