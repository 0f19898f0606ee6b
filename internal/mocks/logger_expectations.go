package mocks

import "github.com/stretchr/testify/mock"

// maxLogFields bounds the field count accepted by NewLenientLogger
const maxLogFields = 12

// NewLenientLogger returns a Logger mock that accepts any log call at any level.
// testify matches variadic calls by exact arity, so one optional expectation is
// registered per field count.
func NewLenientLogger(t interface {
	mock.TestingT
	Cleanup(func())
}) *Logger {
	logger := NewLogger(t)

	for _, level := range []string{"Debug", "Info", "Warn", "Error"} {
		for fields := 0; fields <= maxLogFields; fields++ {
			args := make([]interface{}, fields+1)
			for i := range args {
				args[i] = mock.Anything
			}
			logger.On(level, args...).Maybe()
		}
	}

	return logger
}
