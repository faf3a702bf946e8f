package command

import (
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
)

func newTestMessageContext(text string) (*MessageContext, *[]string) {
	var replies []string
	ctx := &MessageContext{
		Event: &discordgo.MessageCreate{
			Message: &discordgo.Message{
				Content:   text,
				ChannelID: "chan-1",
				Author:    &discordgo.User{ID: "user-1", Username: "tester"},
			},
		},
		reply: func(content string) error {
			replies = append(replies, content)
			return nil
		},
	}
	return ctx, &replies
}

// fakeCommand lets dispatch-order tests register overlapping predicates
type fakeCommand struct {
	name   string
	prefix string
	ran    *[]string
}

func (c *fakeCommand) Name() string        { return c.name }
func (c *fakeCommand) Description() string { return c.name }
func (c *fakeCommand) Category() string    { return "test" }

func (c *fakeCommand) Matches(text string) bool {
	return strings.HasPrefix(text, c.prefix)
}

func (c *fakeCommand) Message(ctx *MessageContext) error {
	*c.ran = append(*c.ran, c.name)
	return ctx.Reply("from " + c.name)
}

func newDefaultRegistry() *Registry {
	registry := NewRegistry()
	registry.Register(&PingCommand{}, &EchoCommand{})
	return registry
}

func TestDispatch(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantReplies []string
	}{
		{
			name:        "ping replies pong",
			text:        "!ping",
			wantReplies: []string{"pong"},
		},
		{
			name:        "ping matches regardless of case and padding",
			text:        "  !PING  ",
			wantReplies: []string{"pong"},
		},
		{
			name:        "echo replies the remainder",
			text:        "!echo hello world",
			wantReplies: []string{"hello world"},
		},
		{
			name:        "echo without payload replies usage",
			text:        "!echo   ",
			wantReplies: []string{"Usage: !echo <message>"},
		},
		{
			name:        "unregistered prefix produces no reply",
			text:        "!unknown stuff",
			wantReplies: nil,
		},
		{
			name:        "plain chatter produces no reply",
			text:        "good morning everyone",
			wantReplies: nil,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			registry := newDefaultRegistry()
			ctx, replies := newTestMessageContext(testCase.text)

			if err := registry.Dispatch(ctx); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(*replies) != len(testCase.wantReplies) {
				t.Fatalf("replies = %v, want %v", *replies, testCase.wantReplies)
			}
			for i, want := range testCase.wantReplies {
				if (*replies)[i] != want {
					t.Fatalf("reply[%d] = %q, want %q", i, (*replies)[i], want)
				}
			}
		})
	}
}

func TestDispatchFirstMatchWins(t *testing.T) {
	t.Parallel()

	var ran []string
	registry := NewRegistry()
	registry.Register(
		&fakeCommand{name: "first", prefix: "!go", ran: &ran},
		&fakeCommand{name: "second", prefix: "!go", ran: &ran},
	)

	ctx, replies := newTestMessageContext("!go now")
	if err := registry.Dispatch(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(ran) != 1 || ran[0] != "first" {
		t.Fatalf("ran = %v, want [first]", ran)
	}
	if len(*replies) != 1 || (*replies)[0] != "from first" {
		t.Fatalf("replies = %v, want [from first]", *replies)
	}
}

func TestDispatchIsIndependentAcrossCalls(t *testing.T) {
	t.Parallel()

	registry := newDefaultRegistry()

	for i := 0; i < 2; i++ {
		ctx, replies := newTestMessageContext("!ping")
		if err := registry.Dispatch(ctx); err != nil {
			t.Fatalf("dispatch %d: unexpected error: %v", i, err)
		}
		if len(*replies) != 1 || (*replies)[0] != "pong" {
			t.Fatalf("dispatch %d: replies = %v, want [pong]", i, *replies)
		}
	}
}

func TestRegistryKeepsFirstOnDuplicateName(t *testing.T) {
	t.Parallel()

	var ran []string
	registry := NewRegistry()
	registry.Register(
		&fakeCommand{name: "dup", prefix: "!a", ran: &ran},
		&fakeCommand{name: "dup", prefix: "!b", ran: &ran},
	)

	if got := len(registry.All()); got != 1 {
		t.Fatalf("registered = %d, want 1", got)
	}

	ctx, _ := newTestMessageContext("!b whatever")
	if err := registry.Dispatch(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ran) != 0 {
		t.Fatalf("ran = %v, want none (second registration dropped)", ran)
	}
}
