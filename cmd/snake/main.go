package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/svngdo/snake-game/internal/app"
	"github.com/svngdo/snake-game/internal/domain"
	"github.com/svngdo/snake-game/internal/loop"
	"github.com/svngdo/snake-game/internal/ui/graphics"
	"github.com/svngdo/snake-game/internal/ui/graphics/screens"
	"github.com/svngdo/snake-game/internal/ui/types"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	config := domain.DefaultGameConfig()
	loopCfg := loop.DefaultConfig()

	flag.IntVar(&config.GridSize, "grid", config.GridSize, "cells per side of the square grid")
	flag.IntVar(&config.CellSize, "cell", config.CellSize, "pixels per cell")
	flag.IntVar(&config.TickRate, "tps", config.TickRate, "game ticks per second")
	flag.Int64Var(&config.Seed, "seed", config.Seed, "food placement seed, 0 picks one from the clock")
	flag.IntVar(&loopCfg.MaxCatchUp, "catchup", loopCfg.MaxCatchUp, "max ticks replayed after a stall, 0 for no limit")
	flag.Parse()

	if err := config.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(config, loopCfg)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	if err := application.Start(ctx); err != nil {
		log.Fatalf("Failed to start app: %v", err)
	}

	engine := graphics.NewEngine(config)

	engine.RegisterScreens(
		screens.NewMenuScreen(engine),
		screens.NewSettingsScreen(engine),
		screens.NewGameScreen(engine),
	)
	engine.SetState(application.GetState())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return handleAppEvents(gctx, application, engine)
	})
	g.Go(func() error {
		return handleUIEvents(gctx, application, engine)
	})
	g.Go(func() error {
		select {
		case <-gctx.Done():
			log.Println("Shutting down...")
		case <-application.Done():
		}
		engine.Quit()
		return nil
	})

	if err := engine.Run(); err != nil {
		log.Printf("UI error: %v", err)
	}

	stop()
	if err := g.Wait(); err != nil {
		log.Printf("Event handler error: %v", err)
	}
	application.Stop()
}

func handleAppEvents(ctx context.Context, application *app.App, engine *graphics.Engine) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-application.Events():
			switch event.Type {
			case app.AppEventStateUpdated:
				engine.SetState(application.GetState())

			case app.AppEventGameOver:
				if payload, ok := event.Payload.(loop.GameOverPayload); ok {
					engine.NotifyGameOver(payload.Round, payload.Reason, payload.Length)
				}
				engine.SetState(application.GetState())

			case app.AppEventStats:
				if payload, ok := event.Payload.(loop.StatsPayload); ok {
					engine.SetStats(payload.TicksPerSecond)
				}

			case app.AppEventError:
				if payload, ok := event.Payload.(app.ErrorPayload); ok {
					engine.SetError(payload.Message)
				}
			}
		}
	}
}

func handleUIEvents(ctx context.Context, application *app.App, engine *graphics.Engine) error {
	for {
		var event types.UIEvent
		select {
		case <-ctx.Done():
			return nil
		case event = <-engine.Events():
		}

		switch event.Type {
		case types.UIEventSteer:
			data := event.Payload.(types.SteerData)
			send(ctx, application, app.InputEvent{Type: app.InputSteer, Payload: data.Direction})

		case types.UIEventRestart:
			if err := application.Restart(); err != nil {
				log.Printf("Failed to restart: %v", err)
				engine.SetError(err.Error())
				continue
			}
			engine.RequestScreen(types.ScreenGame)

		case types.UIEventNewGame:
			data := event.Payload.(types.NewGameData)
			if err := application.NewGame(data.Config); err != nil {
				log.Printf("Failed to start new game: %v", err)
				engine.SetError(err.Error())
				continue
			}
			engine.SetConfig(data.Config)
			engine.RequestScreen(types.ScreenGame)
			engine.SetMessage("New game started")

		case types.UIEventQuit:
			send(ctx, application, app.InputEvent{Type: app.InputQuit})
		}
	}
}

func send(ctx context.Context, application *app.App, input app.InputEvent) {
	select {
	case application.Input() <- input:
	case <-ctx.Done():
	}
}
