package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const catalogPrefix = "/api/catalog"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	StorefrontURL string
	CatalogURL    string
	TrackerURL    string
}

type Gateway struct {
	config Config
	client HTTPClient
	logger *zap.Logger
	stream http.Handler
}

func NewGateway(config Config, client HTTPClient, logger *zap.Logger) *Gateway {
	gw := &Gateway{
		config: config,
		client: client,
		logger: logger,
	}
	if target, err := url.Parse(config.StorefrontURL); err == nil && target.Host != "" {
		gw.stream = httputil.NewSingleHostReverseProxy(target)
	}
	return gw
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	g.logger.Debug("proxy",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("target", targetURL))

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		g.logger.Error("failed to create proxy request", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn("upstream unavailable", zap.String("target", targetURL), zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		g.logger.Warn("failed to copy upstream response", zap.Error(err))
	}
}

// RouteHandler sends /api/catalog/* to the catalog with the prefix removed,
// /api/tracking/* to the tracker and every other /api/ path to the storefront.
func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	switch {
	case path == catalogPrefix || strings.HasPrefix(path, catalogPrefix+"/"):
		r.URL.Path = strings.TrimPrefix(path, catalogPrefix)
		if r.URL.Path == "" {
			r.URL.Path = "/"
		}
		g.ProxyRequest(w, r, g.config.CatalogURL)
	case strings.HasPrefix(path, "/api/tracking/"):
		g.ProxyRequest(w, r, g.config.TrackerURL)
	case path == "/api/orders/ws":
		if g.stream == nil {
			http.Error(w, "order stream unavailable", http.StatusBadGateway)
			return
		}
		g.stream.ServeHTTP(w, r)
	case strings.HasPrefix(path, "/api/"):
		g.ProxyRequest(w, r, g.config.StorefrontURL)
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

func (g *Gateway) SetupRoutes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)
	return r
}
