package internal

import (
	"time"
)

type Config struct {
	Host                 string        `env:"HOST,required=true"`
	Port                 int           `env:"PORT,required=true"`
	LogLevel             string        `env:"LOG_LEVEL,required=true"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH,required=true"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,required=true"`
	DeliveryTimeout      time.Duration `env:"DELIVERY_TIMEOUT,required=true"`
	EntityLockTimeout    time.Duration `env:"ENTITY_LOCK_TIMEOUT,required=true"`
	AuthTokenDuration    time.Duration `env:"AUTH_TOKEN_DURATION,required=true"`
	LimitMessages        *int          `env:"LIMIT_MESSAGES"`
}
