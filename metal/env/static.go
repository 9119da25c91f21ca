package env

// StaticEnvironment locates the experience fixtures and the directory the CLI
// exports rendered pages into.
type StaticEnvironment struct {
	FixturesDir string `validate:"required,min=1"`
	ExportDir   string `validate:"required,min=1"`
	ExportCron  string `validate:"omitempty,cron"`
}

func (e StaticEnvironment) HasSchedule() bool {
	return e.ExportCron != ""
}
