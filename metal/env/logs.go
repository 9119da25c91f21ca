package env

import "log/slog"

type LogsEnvironment struct {
	Level      string `validate:"required,lowercase,oneof=debug info warn error"`
	Dir        string `validate:"required,min=5"`
	DateFormat string `validate:"required,min=4"`
}

func (e LogsEnvironment) SlogLevel() slog.Level {
	var level slog.Level

	if err := level.UnmarshalText([]byte(e.Level)); err != nil {
		return slog.LevelInfo
	}

	return level
}
