package command

import "strings"

const echoPrefix = "!echo "

type EchoCommand struct{}

func (c *EchoCommand) Name() string        { return "echo" }
func (c *EchoCommand) Description() string { return "Repeats the rest of the message" }
func (c *EchoCommand) Category() string    { return "💬 Chat" }

func (c *EchoCommand) Matches(text string) bool {
	return strings.HasPrefix(strings.ToLower(text), echoPrefix)
}

func (c *EchoCommand) Message(ctx *MessageContext) error {
	content := strings.TrimSpace(ctx.Text()[len(echoPrefix):])
	if content == "" {
		return ctx.Reply("Usage: !echo <message>")
	}
	return ctx.Reply(content)
}
