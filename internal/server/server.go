package server

import (
	"net/http"
	"sync"

	"go.uber.org/zap"

	"windcast/internal/config"
	"windcast/internal/forecast"
	"windcast/internal/reports"
	"windcast/internal/spots"
	"windcast/internal/storage"
)

// Server exposes the forecast service over HTTP.
type Server struct {
	Config    *config.Config
	Service   *forecast.Service
	Generator *reports.ReportGenerator
	Storage   storage.StorageClient
	Registry  *spots.Registry
	Logger    *zap.Logger

	generateMutex sync.Mutex
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, service *forecast.Service, generator *reports.ReportGenerator, storageClient storage.StorageClient, registry *spots.Registry, logger *zap.Logger) *Server {
	return &Server{
		Config:    cfg,
		Service:   service,
		Generator: generator,
		Storage:   storageClient,
		Registry:  registry,
		Logger:    logger,
	}
}

// SetupRoutes configures HTTP routes for the server
func (s *Server) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.HandleHealth)
	mux.HandleFunc("/spots", s.HandleSpots)
	mux.HandleFunc("/forecast", s.HandleForecast)
	mux.HandleFunc("/refresh", s.HandleRefresh)
	mux.HandleFunc("/generate", s.HandleGenerate)
	mux.HandleFunc("/files/", s.HandleFileProxy)

	// Root path last (catch-all)
	mux.HandleFunc("/", s.HandleRoot)

	return mux
}

// Close cleans up server resources
func (s *Server) Close() error {
	if s.Storage != nil {
		return s.Storage.Close()
	}
	return nil
}
