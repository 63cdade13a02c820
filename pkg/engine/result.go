package engine

import "fmt"

// CommandResult is the outcome of one player command.
type CommandResult struct {
	Message  string `json:"message"`
	GameOver bool   `json:"game_over"`
	Win      bool   `json:"win"` // only meaningful when GameOver is set
}

func reply(format string, args ...any) CommandResult {
	return CommandResult{Message: fmt.Sprintf(format, args...)}
}

func say(msg string) CommandResult {
	return CommandResult{Message: msg}
}
