package command

import (
	"fmt"
	"slices"

	"github.com/bwmarrin/discordgo"
)

type LeaveChallengeCommand struct {
	challengeNameAutocomplete
}

func (c *LeaveChallengeCommand) Name() string        { return "leave_challenge" }
func (c *LeaveChallengeCommand) Description() string { return "Leave a challenge" }
func (c *LeaveChallengeCommand) Category() string    { return "🔥 Challenges" }

func (c *LeaveChallengeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "name",
				Description:  "Name of the challenge to leave",
				Required:     true,
				Autocomplete: true,
			},
		},
	}
}

func (c *LeaveChallengeCommand) Slash(ctx *SlashContext) error {
	name := ctx.StringOption("name")

	ch, exists, err := ctx.Storage.FindChallenge(ctx.Event.GuildID, name)
	if err != nil {
		return err
	}
	if !exists {
		return ctx.Respond(fmt.Sprintf("Challenge '%s' not found.", name))
	}

	userID := ctx.User().ID
	if !ch.HasMember(userID) {
		return ctx.Respond("You are not in this challenge.")
	}
	if userID == ch.CreatorID && len(ch.MemberIDs) == 1 {
		return ctx.Respond("You cannot leave as the creator and only member. Remove the challenge instead.")
	}

	ch.MemberIDs = slices.DeleteFunc(ch.MemberIDs, func(id string) bool { return id == userID })
	if err := ctx.Storage.UpdateChallenge(ctx.Event.GuildID, name, ch); err != nil {
		return err
	}
	if err := ctx.Scheduler.Start(ch); err != nil {
		return err
	}

	return ctx.Respond(fmt.Sprintf("You have left the challenge '%s'.", name))
}
