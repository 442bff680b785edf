package mocks

import (
	"context"

	"pantry-pal/feature/pantry/lookup"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of lookup.Client
type Client struct {
	mock.Mock
}

func (m *Client) Lookup(ctx context.Context, code string) lookup.Product {
	args := m.Called(ctx, code)
	return args.Get(0).(lookup.Product)
}
