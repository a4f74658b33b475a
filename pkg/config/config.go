package config

import (
	"github.com/amirasaad/teller/pkg/money"
)

// Amount is a money.Amount read from the environment.
type Amount struct {
	money.Amount
}

// Decode implements envconfig.Decoder.
func (a *Amount) Decode(value string) error {
	parsed, err := money.Parse(value)
	if err != nil {
		return err
	}
	a.Amount = parsed
	return nil
}

type Bank struct {
	Name           string `envconfig:"NAME" default:"Krish Bank System" validate:"required"`
	SupportContact string `envconfig:"SUPPORT_CONTACT" default:"Krish Naharki" validate:"required"`
	PIN            string `envconfig:"PIN" default:"5050" validate:"required_without=PINHash,omitempty,numeric"`
	PINHash        string `envconfig:"PIN_HASH" validate:"omitempty,startswith=$2"`
	MaxAttempts    int    `envconfig:"MAX_ATTEMPTS" default:"3" validate:"min=1"`
	InitialBalance Amount `envconfig:"INITIAL_BALANCE" default:"1000.00"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"4"`
	Format     string `envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[teller]"`
	Output     string `envconfig:"OUTPUT" default:"stderr" validate:"required"`
}

type UI struct {
	Color string `envconfig:"COLOR" default:"auto" validate:"oneof=auto always never"`
}

type App struct {
	Env  string `envconfig:"APP_ENV" default:"development"`
	Bank *Bank  `envconfig:"BANK" validate:"required"`
	Log  *Log   `envconfig:"LOG" validate:"required"`
	UI   *UI    `envconfig:"UI" validate:"required"`
}
