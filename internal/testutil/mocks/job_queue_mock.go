package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockJobQueue is a mock implementation of jobs.JobQueue
type MockJobQueue struct {
	mock.Mock
}

func (m *MockJobQueue) EnqueueSync(playerID int64, year int, position string) error {
	args := m.Called(playerID, year, position)
	return args.Error(0)
}
