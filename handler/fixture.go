package handler

// FixturePath reports where a fixture currently lives. Handlers call it on
// every request so a file added after startup is picked up.
type FixturePath func() string

// FixtureFile pins a handler to a single file.
func FixtureFile(path string) FixturePath {
	return func() string { return path }
}
