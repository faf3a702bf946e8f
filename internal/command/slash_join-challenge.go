package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type JoinChallengeCommand struct {
	challengeNameAutocomplete
}

func (c *JoinChallengeCommand) Name() string        { return "join_challenge" }
func (c *JoinChallengeCommand) Description() string { return "Join an existing challenge" }
func (c *JoinChallengeCommand) Category() string    { return "🔥 Challenges" }

func (c *JoinChallengeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "name",
				Description:  "Name of the challenge to join",
				Required:     true,
				Autocomplete: true,
			},
		},
	}
}

func (c *JoinChallengeCommand) Slash(ctx *SlashContext) error {
	name := ctx.StringOption("name")

	ch, exists, err := ctx.Storage.FindChallenge(ctx.Event.GuildID, name)
	if err != nil {
		return err
	}
	if !exists {
		return ctx.Respond(fmt.Sprintf("Challenge '%s' not found.", name))
	}

	userID := ctx.User().ID
	if ch.HasMember(userID) {
		return ctx.Respond("You are already in this challenge.")
	}

	ch.MemberIDs = append(ch.MemberIDs, userID)
	if err := ctx.Storage.UpdateChallenge(ctx.Event.GuildID, name, ch); err != nil {
		return err
	}
	// Re-arm so the running job picks up the new member list
	if err := ctx.Scheduler.Start(ch); err != nil {
		return err
	}

	return ctx.Respond(fmt.Sprintf("You have joined the challenge '%s'.", name))
}
