package router

import (
	"os"
	"path/filepath"
)

const FixtureExperience = "experience"

// fixtureExtensions is the lookup order when more than one encoding of the
// same fixture exists.
var fixtureExtensions = []string{"json", "yaml", "yml"}

type Fixture struct {
	basePath string
}

func NewFixture(basePath string) Fixture {
	if basePath == "" {
		basePath = "./storage/fixture"
	}

	return Fixture{basePath: basePath}
}

func (f Fixture) BasePath() string {
	return f.basePath
}

func (f Fixture) GetExperience() string {
	return f.resolveFor(FixtureExperience)
}

// resolveFor returns the first existing file for slug. When none exists the
// JSON path is returned so the handler reports the missing file on read.
func (f Fixture) resolveFor(slug string) string {
	for _, ext := range fixtureExtensions {
		path := f.fileFor(slug, ext)

		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}

	return f.fileFor(slug, fixtureExtensions[0])
}

func (f Fixture) fileFor(slug, ext string) string {
	return filepath.Join(f.basePath, slug+"."+ext)
}
