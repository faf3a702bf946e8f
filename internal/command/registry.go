package command

// Registry is the ordered command collection. It is built once at startup
// and handed to the bot; registration order is the dispatch tie-break for
// message commands, so ordering is owned by the caller, not by init() side
// effects.
type Registry struct {
	ordered []Command
	byName  map[string]Command
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Command)}
}

// Register appends commands in the given order. A name registered twice
// keeps its first entry.
func (r *Registry) Register(cmds ...Command) {
	for _, cmd := range cmds {
		if _, ok := r.byName[cmd.Name()]; ok {
			continue
		}
		r.ordered = append(r.ordered, cmd)
		r.byName[cmd.Name()] = cmd
	}
}

// Get looks a command up by name
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.byName[name]
	return cmd, ok
}

// All returns every command in registration order
func (r *Registry) All() []Command {
	return r.ordered
}

// SlashCommands returns the registered slash commands in order
func (r *Registry) SlashCommands() []SlashCommand {
	var list []SlashCommand
	for _, cmd := range r.ordered {
		if slash, ok := cmd.(SlashCommand); ok {
			list = append(list, slash)
		}
	}
	return list
}

// Dispatch runs the first message command whose predicate matches the
// inbound text and stops. No match is not an error. Each dispatch is
// independent; no state is carried between calls.
func (r *Registry) Dispatch(ctx *MessageContext) error {
	for _, cmd := range r.ordered {
		msg, ok := cmd.(MessageCommand)
		if !ok {
			continue
		}
		if msg.Matches(ctx.Text()) {
			return msg.Message(ctx)
		}
	}
	return nil
}
