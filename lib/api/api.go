package api

//go:generate go tool swag init --dir . --generalInfo api.go --output docs --outputTypes go

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/pprof"
	"sync"
	"time"

	"github.com/fosdem/trianglix/lib/api/docs"
	"github.com/fosdem/trianglix/lib/config"
	"github.com/fosdem/trianglix/lib/metrics"
	"github.com/fosdem/trianglix/lib/stats"
	"github.com/gorilla/websocket"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Controller is the part of the render loop the API can steer.
type Controller interface {
	Capturer
	RequestShutdown()
}

//	@title			trianglix API
//	@version		1.0
//	@description	Status and control for a running trianglix renderer.
//	@BasePath		/

type Api struct {
	srv   http.Server
	mux   *http.ServeMux
	cfg   *config.ApiCfg
	ctl   Controller
	Stats *stats.Stats

	wsMutex   sync.Mutex
	wsClients map[*websocket.Conn]bool
}

func New(cfg *config.ApiCfg, ctl Controller, st *stats.Stats) *Api {
	a := &Api{}
	a.cfg = cfg
	a.mux = http.NewServeMux()
	a.ctl = ctl
	a.Stats = st
	a.srv.Addr = cfg.Bind
	a.srv.Handler = a.mux
	a.wsClients = make(map[*websocket.Conn]bool)

	docs.SwaggerInfo.Host = cfg.Bind

	if a.cfg.EnableProfiler {
		a.mux.HandleFunc("/prof", a.profileCPU)
	}
	a.mux.HandleFunc("POST /api/kill", a.suicide)
	a.mux.HandleFunc("GET /api/stats", a.getStats)
	a.mux.HandleFunc("/api/ws", a.handleWebsocket)
	a.mux.HandleFunc("GET /api/frame", a.handleFrame)
	a.mux.HandleFunc("GET /api/frame/{format}", a.handleFrame)
	a.mux.Handle("GET /metrics", metrics.Handler())
	a.mux.Handle("/swagger/", httpSwagger.WrapHandler)
	return a
}

func (a *Api) Handler() http.Handler {
	return a.mux
}

func (a *Api) Serve() error {
	err := a.srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (a *Api) Shutdown(ctx context.Context) error {
	return a.srv.Shutdown(ctx)
}

func (a *Api) profileCPU(w http.ResponseWriter, _ *http.Request) {
	err := pprof.StartCPUProfile(w)
	if err != nil {
		http.Error(w, fmt.Sprintf("Could not start CPU profile: %s", err), http.StatusInternalServerError)
		return
	}
	time.Sleep(10 * time.Second)
	pprof.StopCPUProfile()
}

// @Summary	Stop rendering and exit cleanly
// @Router		/api/kill [post]
// @Tags		base
// @Success	200	{string}	string	"ok"
func (a *Api) suicide(w http.ResponseWriter, _ *http.Request) {
	a.log("shutting down as per api request")
	a.ctl.RequestShutdown()
	_, err := fmt.Fprintf(w, "\"ok\"\n")
	if err != nil {
		a.log("could not write response: %s", err)
		return
	}
}

// @Summary	Get renderer statistics
// @Router		/api/stats [get]
// @Tags		base
// @Produce	json
// @Success	200	{object}	stats.Report
func (a *Api) getStats(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	encoder := json.NewEncoder(w)
	err := encoder.Encode(a.Stats)
	if err != nil {
		http.Error(w, fmt.Sprintf("could not encode stats: %s", err), http.StatusInternalServerError)
		return
	}
}

func (a *Api) log(msg string, args ...interface{}) {
	slog.Info(fmt.Sprintf(msg, args...), slog.String("module", "api"))
}

func ServeInBackground(cfg *config.ApiCfg, ctl Controller, st *stats.Stats) *Api {
	var theApi *Api
	if cfg != nil {
		theApi = New(cfg, ctl, st)

		theApi.log("starting web server on %s", cfg.Bind)
		go func() {
			err := theApi.Serve()
			if err != nil {
				slog.Error(fmt.Sprintf("could not start web server: %s", err), slog.String("module", "api"))
			}
		}()
	}
	return theApi
}
