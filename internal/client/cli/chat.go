package cli

import (
	"context"

	"github.com/dmitrijs2005/salesdesk/internal/client/state"
)

// Ask sends question to the assistant and prints its answer.
func (a *App) Ask(ctx context.Context, question string) error {
	if !a.isLoggedIn() {
		a.println("Please log in first.")
		return nil
	}

	a.apply(state.ChatSubmitted{Question: question})
	if !a.state.AIPending {
		return nil
	}
	a.println("Thinking...")

	a.apply(a.ctrl.AskAI(ctx, question))

	if last, ok := a.state.Transcript.Last(); ok {
		a.println(renderTurn(last))
	}
	return nil
}

// History prints the retained chat transcript, oldest first.
func (a *App) History(ctx context.Context) error {
	turns := a.state.Transcript.Turns()
	if len(turns) == 0 {
		a.println("No messages yet.")
		return nil
	}
	for _, turn := range turns {
		a.println(renderTurn(turn))
	}
	return nil
}
