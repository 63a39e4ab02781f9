package config

import "time"

type Scanner struct {
	Interval    time.Duration `env:"SCAN_INTERVAL" envDefault:"30s" validate:"gt=0"`
	MinDiscount float64       `env:"SCAN_MIN_DISCOUNT" envDefault:"10" validate:"gte=0,lte=100"`
}
