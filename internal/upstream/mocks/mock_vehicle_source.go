package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"
)

type MockVehicleSource struct {
	mock.Mock
}

func (m *MockVehicleSource) Fetch(ctx context.Context, plate string) (json.RawMessage, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}
