package endpoint

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/folio/pkg/portal"
)

// Brotli encodes response bodies for clients that advertise "br" support.
// Bodiless statuses (204, 304) pass through untouched.
func Brotli(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Accept-Encoding")

		if !acceptsBrotli(r) {
			next.ServeHTTP(w, r)

			return
		}

		bw := &brotliWriter{ResponseWriter: w}
		defer portal.CloseWithLog(bw)

		next.ServeHTTP(bw, r)
	})
}

func acceptsBrotli(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept-Encoding"), ",") {
		coding, params, _ := strings.Cut(strings.TrimSpace(part), ";")

		if !strings.EqualFold(strings.TrimSpace(coding), "br") {
			continue
		}

		key, value, found := strings.Cut(strings.TrimSpace(params), "=")
		if !found || strings.TrimSpace(key) != "q" {
			return true
		}

		q, err := strconv.ParseFloat(strings.TrimSpace(value), 64)

		return err == nil && q > 0
	}

	return false
}

type brotliWriter struct {
	http.ResponseWriter
	encoder     *brotli.Writer
	wroteHeader bool
}

func (b *brotliWriter) WriteHeader(status int) {
	if b.wroteHeader {
		return
	}

	b.wroteHeader = true

	if b.Header().Get("Content-Encoding") == "" {
		// Encoded bodies carry a weak validator; 304s repeat the tag the 200
		// would have sent.
		if status != http.StatusNoContent {
			weakenETag(b.Header())
		}

		if status != http.StatusNoContent && status != http.StatusNotModified {
			b.Header().Del("Content-Length")
			b.Header().Set("Content-Encoding", "br")
			b.encoder = brotli.NewWriterLevel(b.ResponseWriter, brotli.DefaultCompression)
		}
	}

	b.ResponseWriter.WriteHeader(status)
}

func weakenETag(h http.Header) {
	etag := h.Get("ETag")

	if etag != "" && !strings.HasPrefix(etag, "W/") {
		h.Set("ETag", "W/"+etag)
	}
}

func (b *brotliWriter) Write(p []byte) (int, error) {
	if !b.wroteHeader {
		b.WriteHeader(http.StatusOK)
	}

	if b.encoder == nil {
		return b.ResponseWriter.Write(p)
	}

	return b.encoder.Write(p)
}

func (b *brotliWriter) Close() error {
	if b.encoder == nil {
		return nil
	}

	return b.encoder.Close()
}
