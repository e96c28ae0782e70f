package catalog

// Command is a slash command shipped in .claude/commands.
type Command struct {
	Name        string
	Description string
}

var commands = []Command{
	{"/build", "compile and hope"},
	{"/typecheck", "surface the lies"},
	{"/lint", "formatting tribunal"},
	{"/brainstorm", "interrogate your assumptions"},
	{"/write-plan", "think before you ship"},
	{"/execute-plan", "stop planning, start building"},
	{"/ralph", "autonomous loop templates"},
}

// Commands returns the slash commands in display order.
func Commands() []Command {
	out := make([]Command, len(commands))
	copy(out, commands)
	return out
}
