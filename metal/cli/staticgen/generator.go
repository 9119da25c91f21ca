package staticgen

import (
	"fmt"
	"mime"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"

	"github.com/folio/metal/router"
)

type Generator struct {
	OutputDir string
}

func NewGenerator(outputDir string) Generator {
	return Generator{OutputDir: outputDir}
}

// Generate replays every static route through its handler and writes the
// response body under OutputDir. Files are replaced atomically so a reader
// never sees a partial page.
func (g Generator) Generate(routes []router.StaticRoute) ([]string, error) {
	if strings.TrimSpace(g.OutputDir) == "" {
		return nil, fmt.Errorf("output directory must be provided")
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	generated := make([]string, 0, len(routes))

	for _, route := range routes {
		if strings.TrimSpace(route.Path) == "" {
			return nil, fmt.Errorf("static route path cannot be empty")
		}

		if route.Resource == nil {
			return nil, fmt.Errorf("static route %s is missing a handler", route.Path)
		}

		request := httptest.NewRequest(http.MethodGet, route.Path, nil)
		recorder := httptest.NewRecorder()

		if apiErr := route.Resource.Handle(recorder, request); apiErr != nil {
			return nil, fmt.Errorf("static route %s failed: %s", route.Path, apiErr.Message)
		}

		if recorder.Code != http.StatusOK {
			return nil, fmt.Errorf("static route %s returned status %d", route.Path, recorder.Code)
		}

		body := recorder.Body.Bytes()
		if len(body) == 0 {
			return nil, fmt.Errorf("static route %s returned an empty body", route.Path)
		}

		filePath := filepath.Join(g.OutputDir, fileNameFor(route, recorder.Header().Get("Content-Type")))

		if err := writeFile(filePath, body); err != nil {
			return nil, err
		}

		generated = append(generated, filePath)
	}

	return generated, nil
}

// fileNameFor prefers the route's declared file and otherwise derives one
// from the path and the response content type.
func fileNameFor(route router.StaticRoute, contentType string) string {
	if file := strings.Trim(strings.TrimSpace(route.File), "/"); file != "" {
		return filepath.FromSlash(file)
	}

	name := strings.Trim(route.Path, "/")
	if name == "" {
		name = "index"
	}

	ext := ".json"
	if media, _, err := mime.ParseMediaType(contentType); err == nil && media == "text/html" {
		ext = ".html"
	}

	return filepath.FromSlash(name) + ext
}

func writeFile(filePath string, body []byte) error {
	dir := filepath.Dir(filePath)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", filePath, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(filePath)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", filePath, err)
	}

	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return fmt.Errorf("writing %s: %w", filePath, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("closing %s: %w", filePath, err)
	}

	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("chmod %s: %w", filePath, err)
	}

	if err := os.Rename(tmp.Name(), filePath); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("writing %s: %w", filePath, err)
	}

	return nil
}
