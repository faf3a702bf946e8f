package command

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Autocompleter supplies choices while the user is typing an option
type Autocompleter interface {
	Autocomplete(ctx *SlashContext) ([]*discordgo.ApplicationCommandOptionChoice, error)
}

// challengeNameAutocomplete completes the name option from the guild's
// challenges, filtered case-insensitively against the typed input.
// Embedded by every command that looks a challenge up by name.
type challengeNameAutocomplete struct{}

func (challengeNameAutocomplete) Autocomplete(ctx *SlashContext) ([]*discordgo.ApplicationCommandOptionChoice, error) {
	var partial string
	if opt := ctx.FocusedOption(); opt != nil {
		partial = strings.ToLower(opt.StringValue())
	}

	challenges, err := ctx.Storage.Challenges(ctx.Event.GuildID)
	if err != nil {
		return nil, err
	}

	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, ch := range challenges {
		if strings.Contains(strings.ToLower(ch.Name), partial) {
			choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
				Name:  ch.Name,
				Value: ch.Name,
			})
		}
	}
	return choices, nil
}
