package command

import (
	"challengebot/internal/challenge"
	"challengebot/internal/storage"

	"github.com/bwmarrin/discordgo"
)

// Command is the base capability every registered command has
type Command interface {
	Name() string
	Description() string
	Category() string
}

// MessageCommand reacts to plain chat messages. Matches must be a pure
// predicate over the raw message text; Message performs exactly one reply.
type MessageCommand interface {
	Command
	Matches(text string) bool
	Message(ctx *MessageContext) error
}

// SlashCommand is registered with Discord as an application command
type SlashCommand interface {
	Command
	SlashDefinition() *discordgo.ApplicationCommand
	Slash(ctx *SlashContext) error
}

// MessageContext is the read-only view of an inbound message plus the reply
// capability, borrowed by a command for the duration of one dispatch.
type MessageContext struct {
	Session *discordgo.Session
	Event   *discordgo.MessageCreate

	reply func(content string) error
}

func NewMessageContext(s *discordgo.Session, m *discordgo.MessageCreate) *MessageContext {
	return &MessageContext{Session: s, Event: m}
}

// Text returns the raw message text
func (c *MessageContext) Text() string {
	return c.Event.Content
}

// Reply sends one message back to the channel the message came from
func (c *MessageContext) Reply(content string) error {
	if c.reply != nil {
		return c.reply(content)
	}
	_, err := c.Session.ChannelMessageSend(c.Event.ChannelID, content)
	return err
}

// SlashContext carries everything a slash command needs to run
type SlashContext struct {
	Session   *discordgo.Session
	Event     *discordgo.InteractionCreate
	Storage   *storage.Storage
	Scheduler *challenge.Scheduler

	respond func(content string) error
}

// User resolves the invoking user from a guild or DM interaction
func (c *SlashContext) User() *discordgo.User {
	if c.Event.Member != nil && c.Event.Member.User != nil {
		return c.Event.Member.User
	}
	if c.Event.User != nil {
		return c.Event.User
	}
	return &discordgo.User{ID: "unknown", Username: "Unknown"}
}

// Options returns the interaction's options keyed by name
func (c *SlashContext) Options() map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := c.Event.ApplicationCommandData().Options
	byName := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		byName[opt.Name] = opt
	}
	return byName
}

// FocusedOption returns the option the user is currently typing, if any
func (c *SlashContext) FocusedOption() *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range c.Event.ApplicationCommandData().Options {
		if opt.Focused {
			return opt
		}
	}
	return nil
}

// StringOption returns a string option's value, or "" when absent
func (c *SlashContext) StringOption(name string) string {
	if opt, ok := c.Options()[name]; ok {
		return opt.StringValue()
	}
	return ""
}

// Respond sends the interaction response
func (c *SlashContext) Respond(content string) error {
	if c.respond != nil {
		return c.respond(content)
	}
	return c.Session.InteractionRespond(c.Event.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
}
