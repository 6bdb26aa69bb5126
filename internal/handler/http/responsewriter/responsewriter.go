// Package responsewriter observes the status code and body size of a
// response on its way out, for the logging and metrics middleware.
package responsewriter

import "net/http"

// ResponseWriter decorates an http.ResponseWriter, remembering what the
// handler wrote. The zero status is 200, matching net/http's behavior
// when a handler writes the body without calling WriteHeader.
type ResponseWriter struct {
	http.ResponseWriter
	status int
	size   int
	wrote  bool
}

// Wrap decorates w for observation.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader records the first status code; later calls are dropped,
// as the underlying writer would reject them anyway.
func (w *ResponseWriter) WriteHeader(status int) {
	if w.wrote {
		return
	}
	w.status = status
	w.wrote = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.wrote {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// StatusCode returns the status the handler sent.
func (w *ResponseWriter) StatusCode() int { return w.status }

// BytesWritten returns the body size in bytes.
func (w *ResponseWriter) BytesWritten() int { return w.size }

// Unwrap exposes the underlying writer to http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
