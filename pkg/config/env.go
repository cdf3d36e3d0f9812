package config

import (
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var (
	initialized = false
	once        sync.Once
)

// InitEnv makes every environment variable visible through viper. Nested keys such as
// "client.timeout" are looked up as CLIENT_TIMEOUT.
func InitEnv() {
	if initialized {
		log.Debug().Msg("Env already initialized!")
		return
	}
	once.Do(func() {
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
		viper.AutomaticEnv()
		initialized = true
		log.Info().Msg("Env initialized!")
	})
}

// BindEnvs binds each config key to its upper-cased environment variable so that
// viper.Unmarshal sees values that were never explicitly set.
func BindEnvs(keys ...string) {
	for _, key := range keys {
		if err := viper.BindEnv(key, strings.ToUpper(key)); err != nil {
			log.Warn().Err(err).Msgf("Failed to bind env for key %s", key)
		}
	}
}
