package profiling

import (
	"fmt"
	"net/http"
	"net/http/pprof"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	once        sync.Once
	initialized = false
)

// Config switches the pprof listener on and picks its port
type Config struct {
	Enabled bool
	Port    int
}

// Init starts a pprof server on its own port when profiling is enabled
func Init(config Config) {
	if !config.Enabled {
		log.Info().Msg("Profiling is not enabled!")
		return
	}
	if initialized {
		log.Debug().Msg("Profiling environment already initialized!")
		return
	}
	once.Do(func() {
		if config.Port == 0 {
			log.Fatal().Msg("PROFILING_PORT is not set!")
		}
		initProfilingTool(config.Port)
		initialized = true
		log.Info().Msg("Profiling environment initialized!")
	})
}

func initProfilingTool(port int) {
	go func() {
		addr := fmt.Sprintf(":%d", port)
		log.Info().Msgf("Starting profiling server on %v", addr)
		if err := http.ListenAndServe(addr, newMux()); err != nil {
			log.Fatal().Msgf("ListenAndServe error: %v", err)
		}
	}()
}

// newMux keeps pprof off the default mux so it is never exposed on the API port
func newMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	return mux
}
