package command

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

type ListChallengesCommand struct{}

func (c *ListChallengesCommand) Name() string        { return "list_challenges" }
func (c *ListChallengesCommand) Description() string { return "List all challenges" }
func (c *ListChallengesCommand) Category() string    { return "🔥 Challenges" }

func (c *ListChallengesCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *ListChallengesCommand) Slash(ctx *SlashContext) error {
	challenges, err := ctx.Storage.Challenges(ctx.Event.GuildID)
	if err != nil {
		return err
	}
	if len(challenges) == 0 {
		return ctx.Respond("No challenges available.")
	}

	lines := make([]string, 0, len(challenges))
	for _, ch := range challenges {
		lines = append(lines, fmt.Sprintf("- **%s**: %s (%s at %s (%s)) - %d members",
			ch.Name, ch.Description, ch.Frequency, ch.TimeSpec, ch.Timezone, len(ch.MemberIDs)))
	}
	return ctx.Respond(strings.Join(lines, "\n"))
}
