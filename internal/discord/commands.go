package discord

import (
	"context"
	"log"
	"time"

	"golang.org/x/time/rate"
)

// Discord allows roughly 50 requests per second; pace bulk registration
// well under that.
var registerLimiter = rate.NewLimiter(rate.Every(time.Second/40), 1)

// registerCommands reconciles the guild's application commands with the
// registry: obsolete commands are deleted, wanted ones created or updated.
func (b *Bot) registerCommands(guildID string) error {
	appID := b.dg.State.User.ID
	if appID == "" {
		user, err := b.dg.User("@me")
		if err != nil {
			return err
		}
		appID = user.ID
	}

	wanted := make(map[string]bool)
	for _, cmd := range b.registry.SlashCommands() {
		wanted[cmd.Name()] = true
	}

	existing, _ := b.dg.ApplicationCommands(appID, guildID)
	for _, old := range existing {
		if wanted[old.Name] {
			continue
		}
		log.Printf("[INFO] [%s] Deleting obsolete command: %s", guildID, old.Name)
		if err := b.dg.ApplicationCommandDelete(appID, guildID, old.ID); err != nil {
			log.Printf("[ERR] [%s] Failed to delete %s: %v", guildID, old.Name, err)
		}
	}

	ctx := context.Background()
	for _, cmd := range b.registry.SlashCommands() {
		if err := registerLimiter.Wait(ctx); err != nil {
			return err
		}
		if _, err := b.dg.ApplicationCommandCreate(appID, guildID, cmd.SlashDefinition()); err != nil {
			log.Printf("[ERR] [%s] Can't create command %s: %v", guildID, cmd.Name(), err)
			continue
		}
		log.Printf("[INFO] [%s] Command registered: %s", guildID, cmd.Name())
	}
	return nil
}
