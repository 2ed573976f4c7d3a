package queue

import "github.com/rs/zerolog/log"

// Logger sends the queue's own messages to the global logger.
type Logger struct{}

func (Logger) Info(message string, params ...any) {
	log.Debug().Fields(params).Msg(message)
}

func (Logger) Error(message string, params ...any) {
	log.Error().Fields(params).Msg(message)
}
