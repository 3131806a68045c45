// Package responsewriter wraps http.ResponseWriter to record the status code
// and the number of bytes written, for logging and metrics middleware.
package responsewriter

import "net/http"

// Wrapped records the response status and size as the handler writes.
type Wrapped struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
}

// Wrap returns a Wrapped writer with a default status of 200, matching
// net/http's behavior when WriteHeader is never called.
func Wrap(w http.ResponseWriter) *Wrapped {
	return &Wrapped{ResponseWriter: w, statusCode: http.StatusOK}
}

// WriteHeader records the status code before delegating.
func (w *Wrapped) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

// Write accumulates the number of bytes written.
func (w *Wrapped) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.bytesWritten += n
	return n, err
}

// StatusCode returns the recorded status code.
func (w *Wrapped) StatusCode() int { return w.statusCode }

// BytesWritten returns the number of body bytes written so far.
func (w *Wrapped) BytesWritten() int { return w.bytesWritten }
