package command

import (
	"fmt"
	"strings"

	"challengebot/internal/challenge"

	"github.com/bwmarrin/discordgo"
)

type CreateChallengeCommand struct{}

func (c *CreateChallengeCommand) Name() string        { return "create_challenge" }
func (c *CreateChallengeCommand) Description() string { return "Create a new challenge" }
func (c *CreateChallengeCommand) Category() string    { return "🔥 Challenges" }

func (c *CreateChallengeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "Unique name for the challenge",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "description",
				Description: "Description of the challenge",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "time",
				Description: "Time with optional timezone (e.g., '9:00 PM America/St_Johns' or '21:00 UTC')",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "frequency",
				Description: "Frequency: daily or weekly",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "daily", Value: string(challenge.FrequencyDaily)},
					{Name: "weekly", Value: string(challenge.FrequencyWeekly)},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "day",
				Description: "Day of week for weekly challenges (e.g., monday, tuesday)",
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "message",
				Description: "The reminder message",
			},
		},
	}
}

func (c *CreateChallengeCommand) Slash(ctx *SlashContext) error {
	name := ctx.StringOption("name")

	if _, exists, err := ctx.Storage.FindChallenge(ctx.Event.GuildID, name); err != nil {
		return err
	} else if exists {
		return ctx.Respond(fmt.Sprintf("Challenge '%s' already exists.", name))
	}

	timeSpec := ctx.StringOption("time")
	hour, minute, timezone, err := challenge.ParseTimeSpec(timeSpec)
	if err != nil {
		return ctx.Respond(fmt.Sprintf("Invalid time format: %v", err))
	}

	message := ctx.StringOption("message")
	if message == "" {
		message = challenge.DefaultMessage
	}

	ch := challenge.Challenge{
		Name:        name,
		Description: ctx.StringOption("description"),
		CreatorID:   ctx.User().ID,
		MemberIDs:   []string{ctx.User().ID}, // creator is the initial member
		Frequency:   challenge.Frequency(ctx.StringOption("frequency")),
		TimeSpec:    timeSpec,
		Hour:        hour,
		Minute:      minute,
		Timezone:    timezone,
		Day:         strings.ToLower(ctx.StringOption("day")),
		GuildID:     ctx.Event.GuildID,
		ChannelID:   ctx.Event.ChannelID,
		Message:     message,
	}

	if err := ch.Validate(); err != nil {
		return ctx.Respond(capitalizeError(err))
	}

	if err := ctx.Storage.AddChallenge(ctx.Event.GuildID, ch); err != nil {
		return err
	}
	if err := ctx.Scheduler.Start(ch); err != nil {
		return err
	}

	return ctx.Respond(fmt.Sprintf("Challenge '%s' created and you have joined it.", name))
}

func capitalizeError(err error) string {
	msg := err.Error()
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
