package discord

import (
	"context"
	"fmt"
	"log"

	"challengebot/internal/challenge"
	"challengebot/internal/command"
	"challengebot/internal/config"
	"challengebot/internal/storage"

	"github.com/bwmarrin/discordgo"
)

// Bot wires the Discord session to the command registry and the reminder
// scheduler. The registry is built by the caller; the bot only consumes it.
type Bot struct {
	dg        *discordgo.Session
	cfg       *config.Config
	storage   *storage.Storage
	registry  *command.Registry
	scheduler *challenge.Scheduler
}

func NewBot(cfg *config.Config, store *storage.Storage, registry *command.Registry) *Bot {
	return &Bot{
		cfg:      cfg,
		storage:  store,
		registry: registry,
	}
}

// Run opens the Discord session and blocks until ctx is cancelled
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	b.dg = dg

	b.configureIntents()
	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)
	dg.AddHandler(b.onInteractionCreate)

	b.scheduler = challenge.NewScheduler(func(channelID, content string) error {
		_, err := dg.ChannelMessageSend(channelID, content)
		return err
	})

	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer dg.Close()

	if err := b.startChallengeJobs(); err != nil {
		log.Printf("[ERR] Failed to start challenge jobs: %v", err)
	}

	<-ctx.Done()
	log.Println("[INFO] Shutdown signal received. Cleaning up...")
	b.scheduler.Shutdown()
	return nil
}

func (b *Bot) configureIntents() {
	b.dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent
}

// startChallengeJobs arms the scheduler for every persisted challenge
func (b *Bot) startChallengeJobs() error {
	challenges, err := b.storage.AllChallenges()
	if err != nil {
		return err
	}
	for _, ch := range challenges {
		if err := b.scheduler.Start(ch); err != nil {
			log.Printf("[WARN] Skipping challenge %q: %v", ch.Name, err)
		}
	}
	log.Printf("[INFO] Scheduled %d challenge(s)", len(challenges))
	return nil
}

// onReady registers slash commands once the gateway reports ready
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("[INFO] ✅ Logged in as %s", r.User.Username)

	if !b.cfg.RegisterCommands {
		log.Println("[INFO] Registering slash commands skipped")
		return
	}

	if b.cfg.GuildID != "" {
		if err := b.registerCommands(b.cfg.GuildID); err != nil {
			log.Printf("[ERR] Error registering slash commands for guild %s: %v", b.cfg.GuildID, err)
		}
		return
	}
	for _, g := range r.Guilds {
		if err := b.registerCommands(g.ID); err != nil {
			log.Printf("[ERR] Error registering slash commands for guild %s: %v", g.ID, err)
		}
	}
}

// onMessageCreate dispatches prefix commands; the first registered command
// whose predicate matches the text wins.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.ID == s.State.User.ID {
		return
	}

	ctx := command.NewMessageContext(s, m)
	if err := b.registry.Dispatch(ctx); err != nil {
		log.Println("[ERR] Error running message command:", err)
	}
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.handleSlashCommand(s, i)
	case discordgo.InteractionApplicationCommandAutocomplete:
		b.handleAutocomplete(s, i)
	}
}

func (b *Bot) handleSlashCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	cmdName := i.ApplicationCommandData().Name
	cmd, ok := b.registry.Get(cmdName)
	if !ok {
		log.Printf("[WARN] Unknown command: %s", cmdName)
		return
	}
	slash, ok := cmd.(command.SlashCommand)
	if !ok {
		log.Printf("[WARN] Command %s has no slash handler", cmdName)
		return
	}

	ctx := &command.SlashContext{
		Session:   s,
		Event:     i,
		Storage:   b.storage,
		Scheduler: b.scheduler,
	}
	if err := slash.Slash(ctx); err != nil {
		log.Printf("[ERR] Error running slash command /%s: %v", cmdName, err)
		respondEphemeral(s, i, fmt.Sprintf("Error running command: %v", err))
	}
}

func (b *Bot) handleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	cmdName := i.ApplicationCommandData().Name
	cmd, ok := b.registry.Get(cmdName)
	if !ok {
		return
	}
	ac, ok := cmd.(command.Autocompleter)
	if !ok {
		return
	}

	ctx := &command.SlashContext{
		Session:   s,
		Event:     i,
		Storage:   b.storage,
		Scheduler: b.scheduler,
	}
	choices, err := ac.Autocomplete(ctx)
	if err != nil {
		log.Printf("[WARN] Autocomplete for /%s failed: %v", cmdName, err)
		return
	}
	if choices == nil {
		choices = []*discordgo.ApplicationCommandOptionChoice{}
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	})
	if err != nil {
		log.Printf("[WARN] Failed to respond to autocomplete: %v", err)
	}
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("[WARN] Failed to respond to interaction: %v", err)
	}
}
