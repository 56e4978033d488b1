package service

// CommandServiceWrapper defines middleware composition for CommandService.
// Implementations wrap an existing CommandService to add behavior such as
// validation.
type CommandServiceWrapper interface {
	Wrap(CommandService) CommandService // returns a decorated CommandService applying additional behavior
}
