package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"windcast/internal/fetchers"
	"windcast/internal/spots"
	"windcast/internal/store"
)

// HandleRoot redirects to the latest generated report, or serves an
// initial page when none exist yet.
func (s *Server) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	latest, err := s.Storage.GetLatestReport()
	if err != nil {
		s.serveInitialPage(w)
		return
	}

	w.Header().Set("Location", "/files/"+latest)
	w.WriteHeader(http.StatusFound)
}

func (s *Server) serveInitialPage(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<html><body><h1>Wind Forecast</h1><p>No reports generated yet. POST to /generate to create one.</p></body></html>`)
}

// HandleHealth provides health check endpoint
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	health := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"locations": s.Service.StoreCounts(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}

// HandleSpots lists the known launch sites and their spot IDs.
func (s *Server) HandleSpots(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	type spotInfo struct {
		Location string `json:"location"`
		SpotID   int    `json:"spot_id"`
	}

	var list []spotInfo
	for _, loc := range s.Registry.Locations() {
		id, err := s.Registry.SpotID(loc)
		if err != nil {
			continue
		}
		list = append(list, spotInfo{Location: loc, SpotID: id})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// HandleForecast returns the stored forecast for one location as JSON.
func (s *Server) HandleForecast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	location := strings.TrimSpace(r.URL.Query().Get("location"))
	if location == "" {
		s.writeError(w, http.StatusBadRequest, "missing location parameter")
		return
	}

	series, err := s.Service.Forecast(location)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(series)
}

// HandleRefresh fetches fresh model data for one location, or for all
// configured locations when no location parameter is given.
func (s *Server) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	location := strings.TrimSpace(r.URL.Query().Get("location"))

	var err error
	if location != "" {
		_, err = s.Service.Refresh(ctx, location)
	} else {
		err = s.Service.RefreshAll(ctx, s.Config.Locations())
	}
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "ok",
		"locations": s.Service.StoreCounts(),
	})
}

// HandleGenerate renders and stores a forecast report for one location.
func (s *Server) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if !s.generateMutex.TryLock() {
		s.writeError(w, http.StatusConflict, "report generation already in progress")
		return
	}
	defer s.generateMutex.Unlock()

	location := strings.TrimSpace(r.URL.Query().Get("location"))
	if location == "" {
		s.writeError(w, http.StatusBadRequest, "missing location parameter")
		return
	}

	series, err := s.Service.Forecast(location)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	folder, err := s.Generator.Generate(r.Context(), location, series)
	if err != nil {
		s.Logger.Error("Report generation failed",
			zap.String("location", location),
			zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "report generation failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
		"report": "/files/" + folder + "/index.html",
	})
}

// HandleFileProxy serves stored report files through the storage client.
func (s *Server) HandleFileProxy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filePath := strings.TrimPrefix(r.URL.Path, "/files/")
	if filePath == "" || strings.Contains(filePath, "..") {
		http.NotFound(w, r)
		return
	}

	data, err := s.Storage.GetFile(r.Context(), filePath)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", contentTypeFor(filePath))
	w.Write(data)
}

func contentTypeFor(filePath string) string {
	switch {
	case strings.HasSuffix(filePath, ".html"):
		return "text/html"
	case strings.HasSuffix(filePath, ".png"):
		return "image/png"
	case strings.HasSuffix(filePath, ".md"):
		return "text/markdown"
	case strings.HasSuffix(filePath, ".json"):
		return "application/json"
	default:
		return "application/octet-stream"
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// writeServiceError maps pipeline errors to HTTP status codes.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, spots.ErrUnknownLocation), errors.Is(err, store.ErrNotFound):
		s.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, fetchers.ErrMalformedPayload):
		s.writeError(w, http.StatusBadGateway, err.Error())
	default:
		s.writeError(w, http.StatusInternalServerError, err.Error())
	}
}
