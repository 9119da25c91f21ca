package env

type SentryEnvironment struct {
	DSN string `validate:"omitempty,url"`
}

func (e SentryEnvironment) IsEnabled() bool {
	return e.DSN != ""
}
