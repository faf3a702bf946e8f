package command

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bwmarrin/discordgo"
)

var mentionPattern = regexp.MustCompile(`<@!?(\d+)>`)

type InviteChallengeCommand struct {
	challengeNameAutocomplete
}

func (c *InviteChallengeCommand) Name() string        { return "invite_challenge" }
func (c *InviteChallengeCommand) Description() string { return "Invite users to join a challenge" }
func (c *InviteChallengeCommand) Category() string    { return "🔥 Challenges" }

func (c *InviteChallengeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "name",
				Description:  "Name of the challenge",
				Required:     true,
				Autocomplete: true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "users",
				Description: "Users to invite (mention them)",
				Required:    true,
			},
		},
	}
}

func (c *InviteChallengeCommand) Slash(ctx *SlashContext) error {
	name := ctx.StringOption("name")

	ch, exists, err := ctx.Storage.FindChallenge(ctx.Event.GuildID, name)
	if err != nil {
		return err
	}
	if !exists {
		return ctx.Respond(fmt.Sprintf("Challenge '%s' not found.", name))
	}
	if !ch.HasMember(ctx.User().ID) {
		return ctx.Respond("You must be a member of the challenge to invite others.")
	}

	var invited []string
	for _, match := range mentionPattern.FindAllStringSubmatch(ctx.StringOption("users"), -1) {
		userID := match[1]
		if !ch.HasMember(userID) {
			invited = append(invited, "<@"+userID+">")
		}
	}
	if len(invited) == 0 {
		return ctx.Respond("No valid users to invite (they may already be in the challenge).")
	}

	invitation := fmt.Sprintf("<@%s> invites you to join the challenge **%s**: %s\nUse `/join_challenge name:%s` to join!",
		ctx.User().ID, name, ch.Description, name)
	return ctx.Respond(fmt.Sprintf("%s %s", strings.Join(invited, ", "), invitation))
}
