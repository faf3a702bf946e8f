package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"challengebot/internal/command"
	"challengebot/internal/config"
	"challengebot/internal/discord"
	"challengebot/internal/storage"
	v "challengebot/internal/version"
)

func main() {
	log.Printf("[INFO] Starting %v...", v.AppName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	// Registration order is the dispatch tie-break for message commands.
	registry := command.NewRegistry()
	registry.Register(
		&command.PingCommand{},
		&command.EchoCommand{},
	)
	for _, cmd := range []command.SlashCommand{
		&command.CreateChallengeCommand{},
		&command.JoinChallengeCommand{},
		&command.LeaveChallengeCommand{},
		&command.ListChallengesCommand{},
		&command.InviteChallengeCommand{},
		&command.RemoveChallengeCommand{},
		&command.EditChallengeCommand{},
	} {
		registry.Register(command.ApplyMiddlewares(cmd,
			command.WithGuildOnly(),
			command.WithCommandLogger(),
		))
	}

	bot := discord.NewBot(cfg, store, registry)

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Discord bot error:", err)
		}
		cancel()
	case <-ctx.Done():
	}

	log.Println("[INFO] Discord bot exited cleanly")
}
