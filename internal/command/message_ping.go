package command

import "strings"

type PingCommand struct{}

func (c *PingCommand) Name() string        { return "ping" }
func (c *PingCommand) Description() string { return "Replies with pong" }
func (c *PingCommand) Category() string    { return "🛠️ Maintenance" }

func (c *PingCommand) Matches(text string) bool {
	return strings.ToLower(strings.TrimSpace(text)) == "!ping"
}

func (c *PingCommand) Message(ctx *MessageContext) error {
	return ctx.Reply("pong")
}
