// Copyright 2026 The PDEP Viewer Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cnf

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pdepview/dataset"
	"pdepview/rdb"
	"pdepview/sqlimport"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/rs/zerolog/log"
)

const (
	dfltServerWriteTimeoutSecs = 30
	dfltServerReadTimeoutSecs  = 10
	dfltListenAddress          = "127.0.0.1"
	dfltListenPort             = 8080
	dfltQuizSessionTTLSecs     = 3600

	EnvRedisPassword = "PDEP_REDIS_PASSWORD"
	EnvDBPassword    = "PDEP_DB_PASSWORD"
)

// Conf is a global configuration of the app
type Conf struct {
	ListenAddress          string              `json:"listenAddress"`
	PublicURL              string              `json:"publicUrl"`
	ListenPort             int                 `json:"listenPort"`
	ServerReadTimeoutSecs  int                 `json:"serverReadTimeoutSecs"`
	ServerWriteTimeoutSecs int                 `json:"serverWriteTimeoutSecs"`
	CorsAllowedOrigins     []string            `json:"corsAllowedOrigins"`
	Logging                logging.LoggingConf `json:"logging"`
	Data                   *dataset.Conf       `json:"data"`
	Import                 *sqlimport.Conf     `json:"import"`

	// Redis is optional. If not set, quiz sessions
	// are stored in memory.
	Redis              *rdb.Conf `json:"redis"`
	QuizSessionTTLSecs int       `json:"quizSessionTtlSecs"`

	srcPath string
}

// GetSourcePath returns an absolute path of a file
// the config was loaded from.
func (conf *Conf) GetSourcePath() string {
	if filepath.IsAbs(conf.srcPath) {
		return conf.srcPath
	}
	var cwd string
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "[failed to get working dir]"
	}
	return filepath.Join(cwd, conf.srcPath)
}

// ApplyEnv overrides secrets with values from the environment
// (possibly loaded from a .env file)
func (conf *Conf) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvRedisPassword)); v != "" && conf.Redis != nil {
		conf.Redis.Password = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvDBPassword)); v != "" {
		if conf.Data != nil && conf.Data.Database != nil {
			conf.Data.Database.Password = v
		}
		if conf.Import != nil && conf.Import.Database != nil {
			conf.Import.Database.Password = v
		}
	}
}

func LoadConfig(path string) *Conf {
	if path == "" {
		log.Fatal().Msg("Cannot load config - path not specified")
	}
	rawData, err := os.ReadFile(path)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	var conf Conf
	conf.srcPath = path
	err = json.Unmarshal(rawData, &conf)
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot load config")
	}
	conf.ApplyEnv()
	return &conf
}

func validateServer(conf *Conf) error {
	if conf.ListenAddress == "" {
		conf.ListenAddress = dfltListenAddress
		log.Warn().Msgf("listenAddress not specified, using default: %s", dfltListenAddress)
	}
	if conf.ListenPort == 0 {
		conf.ListenPort = dfltListenPort
		log.Warn().Msgf("listenPort not specified, using default: %d", dfltListenPort)
	}
	if conf.ServerWriteTimeoutSecs == 0 {
		conf.ServerWriteTimeoutSecs = dfltServerWriteTimeoutSecs
		log.Warn().Msgf(
			"serverWriteTimeoutSecs not specified, using default: %d",
			dfltServerWriteTimeoutSecs,
		)
	}
	if conf.ServerReadTimeoutSecs == 0 {
		conf.ServerReadTimeoutSecs = dfltServerReadTimeoutSecs
		log.Warn().Msgf(
			"serverReadTimeoutSecs not specified, using default: %d",
			dfltServerReadTimeoutSecs,
		)
	}
	if conf.PublicURL == "" {
		conf.PublicURL = fmt.Sprintf("http://%s:%d", conf.ListenAddress, conf.ListenPort)
		log.Warn().Str("address", conf.PublicURL).Msg("publicUrl not set, using listenAddress")
	}
	if err := conf.Data.ValidateAndDefaults("data"); err != nil {
		return err
	}
	if conf.Redis != nil {
		if err := conf.Redis.ValidateAndDefaults("redis"); err != nil {
			return err
		}

	} else {
		log.Warn().Msg("Redis not configured, quiz sessions will be kept in memory")
	}
	if conf.QuizSessionTTLSecs == 0 {
		conf.QuizSessionTTLSecs = dfltQuizSessionTTLSecs
		log.Warn().Msgf(
			"quizSessionTtlSecs not specified, using default: %d",
			dfltQuizSessionTTLSecs,
		)
	}
	return nil
}

// ValidateAndDefaults checks configuration sections required
// by an action and sets defaults for missing optional values.
func ValidateAndDefaults(conf *Conf, action string) error {
	switch action {
	case "server":
		return validateServer(conf)
	case "import":
		return conf.Import.ValidateAndDefaults("import")
	case "test":
		if err := validateServer(conf); err != nil {
			return err
		}
		if conf.Import != nil {
			return conf.Import.ValidateAndDefaults("import")
		}
		return nil
	}
	return fmt.Errorf("unknown action %s", action)
}
