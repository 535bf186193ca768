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
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeTestConf(t *testing.T, dataDir, sqlDir string) string {
	path := filepath.Join(t.TempDir(), "conf.json")
	src := fmt.Sprintf(`{
		"listenPort": 8090,
		"data": {"source": "json", "dataDir": %q},
		"import": {
			"sqlDir": %q,
			"outputDir": %q,
			"database": {"type": "mysql", "host": "localhost", "name": "pdep", "user": "pdep"}
		},
		"redis": {"host": "localhost", "db": 2}
	}`, dataDir, sqlDir, dataDir)
	assert.NoError(t, os.WriteFile(path, []byte(src), 0644))
	return path
}

func TestLoadConfigAndDefaults(t *testing.T) {
	dataDir := t.TempDir()
	path := writeTestConf(t, dataDir, t.TempDir())
	conf := LoadConfig(path)
	assert.Equal(t, path, conf.GetSourcePath())
	assert.NoError(t, ValidateAndDefaults(conf, "server"))
	assert.Equal(t, dfltListenAddress, conf.ListenAddress)
	assert.Equal(t, 8090, conf.ListenPort)
	assert.Equal(t, "http://127.0.0.1:8090", conf.PublicURL)
	assert.Equal(t, dfltServerWriteTimeoutSecs, conf.ServerWriteTimeoutSecs)
	assert.Equal(t, dfltQuizSessionTTLSecs, conf.QuizSessionTTLSecs)
	assert.Equal(t, 6379, conf.Redis.Port)
	assert.Equal(t, 2, conf.Redis.DB)

	assert.NoError(t, ValidateAndDefaults(conf, "import"))
	assert.Equal(t, 3306, conf.Import.Database.Port)
	assert.NoError(t, ValidateAndDefaults(conf, "test"))
	assert.Error(t, ValidateAndDefaults(conf, "worker"))
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvRedisPassword, "redis-secret")
	t.Setenv(EnvDBPassword, "db-secret")
	conf := LoadConfig(writeTestConf(t, t.TempDir(), t.TempDir()))
	assert.Equal(t, "redis-secret", conf.Redis.Password)
	assert.Equal(t, "db-secret", conf.Import.Database.Password)
}

func TestValidateMissingSections(t *testing.T) {
	conf := &Conf{}
	assert.Error(t, ValidateAndDefaults(conf, "server"))
	assert.Error(t, ValidateAndDefaults(conf, "import"))
}
