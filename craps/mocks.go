package craps

import (
	"github.com/stretchr/testify/mock"
)

// MockRoller is a mock implementation of Roller
type MockRoller struct {
	mock.Mock
}

func (m *MockRoller) Roll() int {
	args := m.Called()
	return args.Int(0)
}

// ScriptRolls queues sums to be returned in order, once each
func (m *MockRoller) ScriptRolls(sums ...int) *MockRoller {
	for _, s := range sums {
		m.On("Roll").Return(s).Once()
	}
	return m
}
