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

package rdb

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	dfltPort           = 6379
	dfltKeyPrefix      = "pdepview"
	dfltSessionTTLSecs = 3600
)

type Conf struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	DB       int    `json:"db"`
	Password string `json:"password"`

	// KeyPrefix is prepended (along with a colon) to all the keys
	// stored by the application
	KeyPrefix      string `json:"keyPrefix"`
	SessionTTLSecs int    `json:"sessionTtlSecs"`
}

func (conf *Conf) ServerInfo() string {
	return fmt.Sprintf("%s:%d", conf.Host, conf.Port)
}

func (conf *Conf) ValidateAndDefaults(confContext string) error {
	if conf == nil {
		return fmt.Errorf("missing configuration section `%s`", confContext)
	}
	if conf.Host == "" {
		return fmt.Errorf("missing `%s.host`", confContext)
	}
	if conf.Port == 0 {
		conf.Port = dfltPort
		log.Warn().
			Int("port", conf.Port).
			Msgf("`%s.port` not specified, using default", confContext)
	}
	if conf.KeyPrefix == "" {
		conf.KeyPrefix = dfltKeyPrefix
		log.Warn().
			Str("prefix", conf.KeyPrefix).
			Msgf("`%s.keyPrefix` not specified, using default", confContext)
	}
	if conf.SessionTTLSecs == 0 {
		conf.SessionTTLSecs = dfltSessionTTLSecs
		log.Warn().
			Int("ttl", conf.SessionTTLSecs).
			Msgf("`%s.sessionTtlSecs` not specified, using default", confContext)

	} else if conf.SessionTTLSecs < 0 {
		return fmt.Errorf("invalid `%s.sessionTtlSecs`: %d", confContext, conf.SessionTTLSecs)
	}
	return nil
}
