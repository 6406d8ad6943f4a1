// Package download delivers csvexport payloads as named CSV files, either over HTTP
// as an attachment or written to disk.
package download

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oleg578/csvexport"
)

var errNilPayload = errors.New("download: payload is nil")

// Handler serves a freshly serialized CSV file on every request.
type Handler struct {
	// Source returns the data to serialize for the request.
	Source func(r *http.Request) csvexport.DataSource
	// Options configures serialization.
	Options csvexport.Options
	// Filename is the attachment name. Default is csvexport.DefaultFilename.
	Filename string
	// Log receives request outcomes. Default is the logrus standard logger.
	Log logrus.FieldLogger
}

func (h *Handler) filename() string {
	if h.Filename == "" {
		return csvexport.DefaultFilename
	}
	return h.Filename
}

func (h *Handler) log() logrus.FieldLogger {
	if h.Log == nil {
		return logrus.StandardLogger()
	}
	return h.Log
}

// ServeHTTP resolves the data source, serializes it and writes the attachment. When the
// source fails nothing but a 500 status is written.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := h.log().WithField("filename", h.filename())

	if h.Source == nil {
		log.Error("download: no data source configured")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	payload, err := csvexport.Stringify(r.Context(), h.Source(r), h.Options)
	if err != nil {
		log.WithError(err).Error("download: failed to build CSV")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	header := w.Header()
	header.Set("Content-Type", payload.MIMEType())
	header.Set("Content-Disposition", ContentDisposition(h.filename()))
	header.Set("Content-Length", strconv.Itoa(len(payload.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := payload.WriteTo(w); err != nil {
		log.WithError(err).Warn("download: failed to write response body")
		return
	}
	log.WithFields(logrus.Fields{
		"charset": payload.Charset,
		"bytes":   len(payload.Data),
	}).Debug("download: served CSV")
}

// ContentDisposition returns an attachment disposition for name.
func ContentDisposition(name string) string {
	name = strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(name)
	return fmt.Sprintf(`attachment; filename="%s"`, name)
}

// Save writes the payload bytes to path, replacing any existing file.
func Save(path string, p *csvexport.Payload) error {
	if p == nil {
		return errNilPayload
	}
	if path == "" {
		path = csvexport.DefaultFilename
	}
	if err := os.WriteFile(path, p.Data, 0o644); err != nil {
		return fmt.Errorf("download: failed to save %q: %w", path, err)
	}
	return nil
}
