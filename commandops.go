package tempuscore

// commandops.go makes Engine satisfy internal/command.Backend and exposes
// the evaluator as Engine.Eval, the engine's tiny text command language
// entry point.

import "github.com/tempuscore/engine/internal/command"

// Del is the command-language name for removing a string-namespace key.
func (e *Engine) Del(key string) bool {
	return e.Remove(key)
}

// Eval runs line through the tiny text command language (GET, SET, DEL,
// JSON.GET, JSON.SET) and returns its result the same way the underlying
// operation would.
func (e *Engine) Eval(line string) ([]byte, bool) {
	return command.Eval(e, line)
}
