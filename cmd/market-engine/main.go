package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	app "github.com/VickyakaKV/market-engine/internal/app/engine"
	pricev1 "github.com/VickyakaKV/market-engine/internal/domain/price/v1"
	"github.com/VickyakaKV/market-engine/internal/usecase/display"
	"github.com/VickyakaKV/market-engine/internal/usecase/matching"
	orderreader "github.com/VickyakaKV/market-engine/internal/usecase/order-reader"
	"github.com/VickyakaKV/market-engine/internal/usecase/orderbook"
	"github.com/VickyakaKV/market-engine/internal/usecase/validator"
	"github.com/VickyakaKV/market-engine/pkg/config"
	"github.com/VickyakaKV/market-engine/pkg/errors"
	"github.com/VickyakaKV/market-engine/pkg/logger"
)

var cfg *config.Config
var log *logger.Logger

func init() {
	cfg = &config.Config{}
	config.MustLoad(cfg)

	// stdout is the output surface for trades and book snapshots, so logs
	// go to stderr.
	l, err := logger.NewLogger(
		logger.WithLoggingLevel(logger.Level(cfg.Log.Level)),
		logger.WithOutputPaths([]string{"stderr"}),
	)
	if err != nil {
		panic(err)
	}

	log = l
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Info("received shutdown signal", logger.NewField("signal", sig.String()))
		cancel()
	}()

	codec, err := pricev1.NewCodec(cfg.Market.TickFactor)
	if err != nil {
		log.Error(errors.TracerFromError(err), logger.NewField("action", "build_price_codec"))
		os.Exit(1)
	}

	book := orderbook.NewBook()
	engine := app.NewEngine(
		orderreader.NewReader(os.Stdin),
		validator.New(codec),
		book,
		matching.NewMatcher(book),
		display.NewRenderer(codec, cfg.Market.ColumnWidth),
		os.Stdout,
		log,
	)

	log.Info("market engine started",
		logger.NewField("tick_factor", cfg.Market.TickFactor),
		logger.NewField("column_width", cfg.Market.ColumnWidth),
	)

	if err := engine.Run(ctx); err != nil && err != context.Canceled {
		log.Error(errors.TracerFromError(err), logger.NewField("action", "run_engine"))
		_ = log.Sync()
		os.Exit(1)
	}

	log.Info("market engine stopped", logger.NewField("submissions", engine.Sequence()))
	_ = log.Sync()
}
