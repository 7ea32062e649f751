package mapsrpc

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/Alfex4936/mapsrpc/internal/model"
	"github.com/Alfex4936/mapsrpc/internal/util"
)

// DefaultMaxBody caps the size of a posted response body.
const DefaultMaxBody = 16 << 20

// Server exposes Process over HTTP.
type Server struct {
	proc    *Processor
	log     *slog.Logger
	maxBody int64
}

// NewServer wires a Server. A nil logger logs to slog.Default().
func NewServer(proc *Processor, log *slog.Logger, maxBody int64) *Server {
	if proc == nil {
		proc = std
	}
	if log == nil {
		log = slog.Default()
	}
	if maxBody <= 0 {
		maxBody = DefaultMaxBody
	}
	return &Server{proc: proc, log: log, maxBody: maxBody}
}

// Routes registers every endpoint on a fresh mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/decode", s.DecodeHandler)
	mux.HandleFunc("/health", HealthHandler)
	mux.HandleFunc("/openapi.json", OpenAPIHandler)
	mux.HandleFunc("/", DocsHandler)
	return mux
}

// DecodeHandler handles POST /v1/decode?lang=th&region=th with the raw
// RPC response as body.
func (s *Server) DecodeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	started := time.Now()
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "Body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	q := model.Query{Region: r.URL.Query().Get("region")}
	if code := r.URL.Query().Get("lang"); code != "" {
		q.Language = model.ParseLanguageTag(code)
	}

	res, err := s.proc.Process(raw, q)
	if err != nil {
		s.log.Warn("decode failed",
			slog.Int("bytes", len(raw)),
			slog.String("error", err.Error()),
		)
		http.Error(w, fmt.Sprintf("could not read response: %v", err), http.StatusUnprocessableEntity)
		return
	}

	attrs := []any{
		slog.Int("bytes", len(raw)),
		slog.Int("reviews", len(res.Reviews)),
		slog.Int("dropped", res.Dropped),
		slog.Duration("took", time.Since(started)),
	}
	if res.Place != nil {
		attrs = append(attrs, slog.String("place_id", res.Place.ID), slog.Bool("complete", res.Place.Complete))
	}
	s.log.Info("decoded", attrs...)

	w.Header().Set("Content-Type", "application/json")
	out, _ := util.MarshalNoEscape(res, true)
	fmt.Fprint(w, string(out))
}

// HealthHandler handles GET /health requests
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "mapsrpc",
	})
}

// OpenAPIHandler serves the OpenAPI 3.0 document at GET /openapi.json
func OpenAPIHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, openAPISpec)
}

// DocsHandler serves a Redoc page for /openapi.json at GET /
func DocsHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, docsHTML)
}

const docsHTML = `<!DOCTYPE html>
<html>
<head>
  <title>mapsrpc API</title>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <style>body { margin: 0; padding: 0; }</style>
</head>
<body>
  <redoc spec-url="/openapi.json" expand-responses="200,422" hide-download-button></redoc>
  <script src="https://cdn.jsdelivr.net/npm/redoc@2/bundles/redoc.standalone.js"></script>
</body>
</html>`

const openAPISpec = `{
  "openapi": "3.0.3",
  "info": {
    "title": "mapsrpc API",
    "description": "Decodes maps RPC responses into place and review records",
    "version": "1.0.0"
  },
  "paths": {
    "/v1/decode": {
      "post": {
        "summary": "Decode",
        "description": "Body is the raw RPC response including the )]}' prefix. Reviews are filtered for the lang parameter.",
        "parameters": [
          { "name": "lang", "in": "query", "schema": { "type": "string", "enum": ["en", "th", "ja", "zh"] } },
          { "name": "region", "in": "query", "schema": { "type": "string" }, "example": "th" }
        ],
        "requestBody": { "required": true, "content": { "text/plain": { "schema": { "type": "string" } } } },
        "responses": {
          "200": {
            "description": "Decoded records",
            "content": { "application/json": { "schema": { "$ref": "#/components/schemas/Result" } } }
          },
          "413": { "description": "Body too large" },
          "422": { "description": "could not read response (missing prefix or invalid JSON)" }
        }
      }
    },
    "/health": {
      "get": {
        "summary": "Health",
        "responses": {
          "200": { "description": "OK", "content": { "application/json": { "example": { "status": "ok", "service": "mapsrpc" } } } }
        }
      }
    }
  },
  "components": {
    "schemas": {
      "Result": {
        "type": "object",
        "properties": {
          "query":   { "type": "object", "properties": { "language": { "type": "string" }, "region": { "type": "string" } } },
          "place":   { "$ref": "#/components/schemas/Place" },
          "reviews": { "type": "array", "items": { "$ref": "#/components/schemas/Review" } },
          "dropped": { "type": "integer", "description": "reviews excluded by the language policy" }
        }
      },
      "Place": {
        "type": "object",
        "properties": {
          "id":          { "type": "string", "example": "0x30e29ecfc2f455e1:0xc4ad0280d8906604" },
          "name":        { "type": "string" },
          "address":     { "type": "string" },
          "rating":      { "type": "number", "minimum": 0, "maximum": 5 },
          "reviewCount": { "type": "integer", "minimum": 0 },
          "category":    { "type": "string" },
          "url":         { "type": "string" },
          "latitude":    { "type": "number", "minimum": -90, "maximum": 90 },
          "longitude":   { "type": "number", "minimum": -180, "maximum": 180 },
          "phone":       { "type": "string" },
          "website":     { "type": "string" },
          "complete":    { "type": "boolean", "description": "false when a required field could not be located" },
          "missing":     { "type": "array", "items": { "type": "string" } }
        }
      },
      "Review": {
        "type": "object",
        "properties": {
          "author":       { "type": "string" },
          "rating":       { "type": "number", "minimum": 0, "maximum": 5 },
          "text":         { "type": "string" },
          "relativeDate": { "type": "string" },
          "helpfulCount": { "type": "integer", "minimum": 0 },
          "language":     { "type": "string", "enum": ["en", "th", "ja", "zh", "unknown"] },
          "complete":     { "type": "boolean" },
          "missing":      { "type": "array", "items": { "type": "string" } }
        }
      }
    }
  }
}`
