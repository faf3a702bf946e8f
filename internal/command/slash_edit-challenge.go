package command

import (
	"fmt"
	"strings"

	"challengebot/internal/challenge"

	"github.com/bwmarrin/discordgo"
)

// EditChallengeCommand updates a challenge in place. Only the provided
// options change; the stored values survive for the rest.
type EditChallengeCommand struct {
	challengeNameAutocomplete
}

func (c *EditChallengeCommand) Name() string        { return "edit_challenge" }
func (c *EditChallengeCommand) Description() string { return "Edit a challenge (creator only)" }
func (c *EditChallengeCommand) Category() string    { return "🔥 Challenges" }

func (c *EditChallengeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "name",
				Description:  "Name of the challenge to edit",
				Required:     true,
				Autocomplete: true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "new_name",
				Description: "New unique name for the challenge",
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "description",
				Description: "New description",
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "time",
				Description: "New time with optional timezone",
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "frequency",
				Description: "New frequency: daily or weekly",
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "daily", Value: string(challenge.FrequencyDaily)},
					{Name: "weekly", Value: string(challenge.FrequencyWeekly)},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "day",
				Description: "New day of week for weekly challenges",
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "message",
				Description: "New reminder message",
			},
		},
	}
}

func (c *EditChallengeCommand) Slash(ctx *SlashContext) error {
	name := ctx.StringOption("name")

	ch, exists, err := ctx.Storage.FindChallenge(ctx.Event.GuildID, name)
	if err != nil {
		return err
	}
	if !exists {
		return ctx.Respond(fmt.Sprintf("Challenge '%s' not found.", name))
	}
	if ctx.User().ID != ch.CreatorID {
		return ctx.Respond("Only the creator can edit this challenge.")
	}

	if newName := ctx.StringOption("new_name"); newName != "" {
		ch.Name = newName
	}
	if description := ctx.StringOption("description"); description != "" {
		ch.Description = description
	}
	if timeSpec := ctx.StringOption("time"); timeSpec != "" {
		hour, minute, timezone, err := challenge.ParseTimeSpec(timeSpec)
		if err != nil {
			return ctx.Respond(fmt.Sprintf("Invalid time format: %v", err))
		}
		ch.TimeSpec = timeSpec
		ch.Hour = hour
		ch.Minute = minute
		ch.Timezone = timezone
	}
	if frequency := ctx.StringOption("frequency"); frequency != "" {
		ch.Frequency = challenge.Frequency(frequency)
	}
	if day := ctx.StringOption("day"); day != "" {
		ch.Day = strings.ToLower(day)
	}
	if message := ctx.StringOption("message"); message != "" {
		ch.Message = message
	}

	if err := ch.Validate(); err != nil {
		return ctx.Respond(capitalizeError(err))
	}

	if err := ctx.Storage.UpdateChallenge(ctx.Event.GuildID, name, ch); err != nil {
		return ctx.Respond(capitalizeError(err))
	}

	// The schedule key follows the name, so stop the old job before re-arming
	if ch.Name != name {
		ctx.Scheduler.Stop(ctx.Event.GuildID, name)
	}
	if err := ctx.Scheduler.Start(ch); err != nil {
		return err
	}

	return ctx.Respond(fmt.Sprintf("Challenge '%s' updated.", ch.Name))
}
