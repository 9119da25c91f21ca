package portal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"
)

// ParseFixtureFile decodes a JSON or YAML file into T, picking the decoder
// from the file extension. Anything that is not .yaml/.yml is read as JSON.
func ParseFixtureFile[T any](filePath string) (T, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return ParseYamlFile[T](filePath)
	default:
		return ParseJsonFile[T](filePath)
	}
}

func ParseJsonFile[T any](filePath string) (T, error) {
	var result T

	content, err := os.ReadFile(filePath)
	if err != nil {
		return result, fmt.Errorf("could not read file %s: %w", filePath, err)
	}

	if err := sonic.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("could not unmarshal json from %s: %w", filePath, err)
	}

	return result, nil
}

func ParseYamlFile[T any](filePath string) (T, error) {
	var result T

	content, err := os.ReadFile(filePath)
	if err != nil {
		return result, fmt.Errorf("could not read file %s: %w", filePath, err)
	}

	if err := yaml.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("could not unmarshal yaml from %s: %w", filePath, err)
	}

	return result, nil
}
