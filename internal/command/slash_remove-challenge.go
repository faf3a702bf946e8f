package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type RemoveChallengeCommand struct {
	challengeNameAutocomplete
}

func (c *RemoveChallengeCommand) Name() string        { return "remove_challenge" }
func (c *RemoveChallengeCommand) Description() string { return "Remove a challenge (creator only)" }
func (c *RemoveChallengeCommand) Category() string    { return "🔥 Challenges" }

func (c *RemoveChallengeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "name",
				Description:  "Name of the challenge to remove",
				Required:     true,
				Autocomplete: true,
			},
		},
	}
}

func (c *RemoveChallengeCommand) Slash(ctx *SlashContext) error {
	name := ctx.StringOption("name")

	ch, exists, err := ctx.Storage.FindChallenge(ctx.Event.GuildID, name)
	if err != nil {
		return err
	}
	if !exists {
		return ctx.Respond(fmt.Sprintf("Challenge '%s' not found.", name))
	}
	if ctx.User().ID != ch.CreatorID {
		return ctx.Respond("Only the creator can remove this challenge.")
	}

	if err := ctx.Storage.RemoveChallenge(ctx.Event.GuildID, name); err != nil {
		return err
	}
	ctx.Scheduler.Stop(ctx.Event.GuildID, name)

	return ctx.Respond(fmt.Sprintf("Challenge '%s' removed.", name))
}
