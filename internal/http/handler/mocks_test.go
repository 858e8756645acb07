package handler_test

import "context"

type mockTurnService struct {
	handleFn func(ctx context.Context, userID, prompt string) (string, error)
}

func (m *mockTurnService) HandleTurn(ctx context.Context, userID, prompt string) (string, error) {
	if m.handleFn != nil {
		return m.handleFn(ctx, userID, prompt)
	}
	return "", nil
}
