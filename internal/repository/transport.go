package repository

import (
	"net/http"
)

const userAgent = "todo-csv-exporter/1.0"

// headerTransport setzt Standard-Header auf jede ausgehende Anfrage.
type headerTransport struct {
	base http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Request klonen, RoundTripper dürfen das Original nicht verändern
	r := req.Clone(req.Context())
	if r.Header.Get("Accept") == "" {
		r.Header.Set("Accept", "application/json")
	}
	r.Header.Set("User-Agent", userAgent)
	return t.base.RoundTrip(r)
}

// NewHTTPClient liefert den gemeinsamen HTTP-Client für alle Repositories.
// Ohne Timeout: der Aufruf blockiert bis der Dienst antwortet.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Transport: &headerTransport{base: http.DefaultTransport},
	}
}
