package mocks

import (
	"context"

	"platelookup/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockLookupService struct {
	mock.Mock
}

func (m *MockLookupService) Lookup(ctx context.Context, plate string) (*model.LookupResult, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LookupResult), args.Error(1)
}
