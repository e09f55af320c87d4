package dashboard

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gnowak/dashboard/transit"
	"github.com/gnowak/dashboard/weather"
)

// API wires the feed services to their HTTP routes.
type API struct {
	transit *transit.Service
	weather *weather.Service
	metrics *Metrics
	log     *logrus.Logger
}

func NewAPI(transitSvc *transit.Service, weatherSvc *weather.Service, metrics *Metrics, log *logrus.Logger) *API {
	return &API{transit: transitSvc, weather: weatherSvc, metrics: metrics, log: log}
}

// Routes returns the handler serving the feed endpoints plus health and
// metrics.
func (a *API) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/transit/alerts", a.handleTransitAlerts)
	mux.HandleFunc("GET /api/weather/alerts", a.handleWeatherAlerts)
	mux.HandleFunc("GET /api/health", handleHealth)
	mux.Handle("GET /metrics", a.metrics.Handler())
	return mux
}

type transitAlertsResponse struct {
	Source string          `json:"source"`
	Count  int             `json:"count"`
	Alerts []transit.Alert `json:"alerts"`
}

func (a *API) handleTransitAlerts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	alerts, err := a.transit.Alerts(r.Context())
	a.metrics.ObserveUpstream(feedTransit, time.Since(start))
	if err != nil {
		a.metrics.CountRequest(feedTransit, outcomeError)
		a.log.WithError(err).Warn("transit alerts request failed")
		writeJSON(w, http.StatusInternalServerError, errorPayload{Error: errorMessage(err)})
		return
	}

	a.metrics.CountRequest(feedTransit, outcomeSuccess)
	w.Header().Set("Cache-Control", cacheControl(60, 300))
	writeJSON(w, http.StatusOK, transitAlertsResponse{
		Source: a.transit.Source(),
		Count:  len(alerts),
		Alerts: alerts,
	})
}

type weatherEntriesResponse struct {
	Region  string          `json:"region"`
	Entries []weather.Entry `json:"entries"`
}

func (a *API) handleWeatherAlerts(w http.ResponseWriter, r *http.Request) {
	region := a.weather.ResolveRegion(r.URL.Query().Get("region"))

	start := time.Now()
	entries, err := a.weather.Entries(r.Context(), region)
	a.metrics.ObserveUpstream(feedWeather, time.Since(start))
	if err != nil {
		a.metrics.CountRequest(feedWeather, outcomeError)
		a.log.WithError(err).WithField("region", region).Warn("weather alerts request failed")
		writeJSON(w, http.StatusInternalServerError, errorPayload{Error: errorMessage(err)})
		return
	}

	a.metrics.CountRequest(feedWeather, outcomeSuccess)
	w.Header().Set("Cache-Control", cacheControl(120, 600))
	writeJSON(w, http.StatusOK, weatherEntriesResponse{
		Region:  region,
		Entries: entries,
	})
}
