package live

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"woz/internal/animator"
	"woz/internal/dto"
	"woz/internal/render"
)

type StatsSource interface {
	Stats() animator.Stats
}

type ProviderLister interface {
	Providers() []string
}

type Controller struct {
	hub       *Hub
	stats     StatsSource
	providers ProviderLister
	upgrader  websocket.Upgrader
	logger    *zap.Logger
}

func NewController(hub *Hub, stats StatsSource, providers ProviderLister, logger *zap.Logger) *Controller {
	return &Controller{
		hub:       hub,
		stats:     stats,
		providers: providers,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// HandleLive upgrades to a websocket that first receives the current stats
// and then every counter event.
func (c *Controller) HandleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := c.upgrader.Upgrade(w, r, nil)
	if err != nil {
		c.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	c.hub.Attach(conn, &Event{Type: EventStats, Data: c.statsResponse()})
	c.logger.Debug("live client connected", zap.Int("clients", c.hub.Len()))
}

func (c *Controller) HandleStats(w http.ResponseWriter, r *http.Request) {
	c.writeJSON(w, http.StatusOK, c.statsResponse())
}

func (c *Controller) HandleProviders(w http.ResponseWriter, r *http.Request) {
	c.writeJSON(w, http.StatusOK, dto.ProvidersResponse{Providers: c.providers.Providers()})
}

func (c *Controller) statsResponse() dto.StatsResponse {
	s := c.stats.Stats()
	return dto.StatsResponse{
		Aggregate:        s.Aggregate,
		AggregateLabel:   render.FormatCount(s.Aggregate),
		Target:           s.Target,
		Trend:            s.Trend,
		Regions:          s.Regions,
		ConnectedClients: c.hub.Len(),
	}
}

func (c *Controller) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
