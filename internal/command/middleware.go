package command

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
)

// Middleware wraps a slash command with cross-cutting behavior
type Middleware func(SlashCommand) SlashCommand

// ApplyMiddlewares wraps cmd with each middleware in order
func ApplyMiddlewares(cmd SlashCommand, mws ...Middleware) SlashCommand {
	for _, mw := range mws {
		cmd = mw(cmd)
	}
	return cmd
}

type wrappedCommand struct {
	SlashCommand
	wrap func(ctx *SlashContext) error
}

func (w *wrappedCommand) Slash(ctx *SlashContext) error {
	return w.wrap(ctx)
}

func (w *wrappedCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return w.SlashCommand.SlashDefinition()
}

func (w *wrappedCommand) Autocomplete(ctx *SlashContext) ([]*discordgo.ApplicationCommandOptionChoice, error) {
	if ac, ok := w.SlashCommand.(Autocompleter); ok {
		return ac.Autocomplete(ctx)
	}
	return nil, nil
}

// WithCommandLogger logs every execution of the wrapped command
func WithCommandLogger() Middleware {
	return func(cmd SlashCommand) SlashCommand {
		return &wrappedCommand{
			SlashCommand: cmd,
			wrap: func(ctx *SlashContext) error {
				user := ctx.User()
				log.Printf("[INFO] /%s invoked by %s (%s) in guild %s", cmd.Name(), user.Username, user.ID, ctx.Event.GuildID)
				return cmd.Slash(ctx)
			},
		}
	}
}

// WithGuildOnly rejects the command outside of guild channels
func WithGuildOnly() Middleware {
	return func(cmd SlashCommand) SlashCommand {
		return &wrappedCommand{
			SlashCommand: cmd,
			wrap: func(ctx *SlashContext) error {
				if ctx.Event.GuildID == "" {
					return ctx.Respond(fmt.Sprintf("/%s only works inside a server.", cmd.Name()))
				}
				return cmd.Slash(ctx)
			},
		}
	}
}
