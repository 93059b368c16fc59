package router

import (
	"log"
	"net/http"
	"strings"
	"time"
)

// --- ANSI color codes for the request log ---
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

type HandlerFunc func(http.ResponseWriter, *http.Request)

type route struct {
	method   string
	segments []string // "*" matches any single segment
	trailing bool     // pattern ends with "*": match one or more remaining segments
	handler  HandlerFunc
}

// Router is a small method-aware mux. Paths may contain "*" segments
// ("/api/v1/lists/*/items/*"). Routes are tried in registration order, so
// register the more specific ones first.
type Router struct {
	routes []route
}

func New() *Router {
	return &Router{}
}

func (r *Router) register(method, path string, handler HandlerFunc) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	r.routes = append(r.routes, route{
		method:   method,
		segments: segments,
		trailing: strings.HasSuffix(path, "/*"),
		handler:  handler,
	})
}

func (r *Router) GET(path string, handler HandlerFunc)    { r.register(http.MethodGet, path, handler) }
func (r *Router) POST(path string, handler HandlerFunc)   { r.register(http.MethodPost, path, handler) }
func (r *Router) PUT(path string, handler HandlerFunc)    { r.register(http.MethodPut, path, handler) }
func (r *Router) PATCH(path string, handler HandlerFunc)  { r.register(http.MethodPatch, path, handler) }
func (r *Router) DELETE(path string, handler HandlerFunc) { r.register(http.MethodDelete, path, handler) }

// ServeHTTP dispatches to the first matching route and logs the request:
// timestamp, colored method and status, duration.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	start := time.Now()
	lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

	handler, pathKnown := r.match(req.Method, req.URL.Path)
	switch {
	case handler != nil:
		handler(lrw, req)
	case pathKnown:
		http.Error(lrw, "Method Not Allowed", http.StatusMethodNotAllowed)
	default:
		http.Error(lrw, "Not Found", http.StatusNotFound)
	}

	duration := time.Since(start)
	log.Printf("%s[%s]%s %s%s%s %s %s%d%s %s(%v)%s",
		colorCyan, start.Format("2006-01-02 15:04:05"), colorReset,
		methodColor(req.Method), req.Method, colorReset,
		req.URL.Path,
		statusColor(lrw.statusCode), lrw.statusCode, colorReset,
		colorBlue, duration, colorReset,
	)
}

// match returns the handler for method+path, plus whether any route matched
// the path at all regardless of method (to pick 405 over 404).
func (r *Router) match(method, path string) (HandlerFunc, bool) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	pathKnown := false
	for _, rt := range r.routes {
		if !matchSegments(segments, rt.segments, rt.trailing) {
			continue
		}
		pathKnown = true
		if rt.method == method {
			return rt.handler, true
		}
	}
	return nil, pathKnown
}

func matchSegments(path, pattern []string, trailing bool) bool {
	if trailing {
		// Everything before the final "*" must match; the "*" then soaks
		// up one or more remaining segments.
		if len(path) < len(pattern) {
			return false
		}
		pattern = pattern[:len(pattern)-1]
		path = path[:len(pattern)]
	} else if len(path) != len(pattern) {
		return false
	}

	for i, seg := range pattern {
		if seg == "*" {
			if path[i] == "" {
				return false
			}
			continue
		}
		if seg != path[i] {
			return false
		}
	}
	return true
}

// Start runs the HTTP server. It only returns on a fatal listen error.
func (r *Router) Start(addr string) {
	log.Printf("🚀 Server started on %shttp://localhost%s%s", colorGreen, addr, colorReset)
	log.Fatal(http.ListenAndServe(addr, r))
}

// --- Logging response writer to capture status codes ---
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// --- Color helpers ---
func statusColor(code int) string {
	switch {
	case code >= 200 && code < 300:
		return colorGreen
	case code >= 300 && code < 400:
		return colorCyan
	case code >= 400 && code < 500:
		return colorYellow
	default:
		return colorRed
	}
}

func methodColor(method string) string {
	switch method {
	case http.MethodGet:
		return colorGreen
	case http.MethodPost:
		return colorBlue
	case http.MethodPut, http.MethodPatch:
		return colorYellow
	case http.MethodDelete:
		return colorRed
	default:
		return colorCyan
	}
}
