// README: Text generation contract the assistant engine depends on.
package assistant

import "context"

// TextGenerator is the contract for the conversational collaborator.
// The engine hands it a serialized context blob plus the user message and
// takes the returned text as-is; nothing in it is parsed or validated.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
