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

package sqlimport

import (
	"fmt"

	"pdepview/storage"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
)

// Conf configures the import of SQL dumps into the dataset
// used by the server
type Conf struct {

	// SQLDir is a directory containing prepdefs.sql, prepcorp.sql
	// and prepprops.sql
	SQLDir string `json:"sqlDir"`

	// OutputDir is where the JSON files are written to
	OutputDir string `json:"outputDir"`

	// Verify enables a cross-check of the parsed tuples using
	// a complete MySQL grammar parser
	Verify bool `json:"verify"`

	// Database optionally specifies a database the imported
	// data are written to (in addition to the JSON files)
	Database *storage.Conf `json:"database"`
}

func (conf *Conf) ValidateAndDefaults(confContext string) error {
	if conf == nil {
		return fmt.Errorf("missing configuration section `%s`", confContext)
	}
	if conf.SQLDir == "" {
		return fmt.Errorf("missing `%s.sqlDir`", confContext)
	}
	isDir, err := fs.IsDir(conf.SQLDir)
	if err != nil {
		return fmt.Errorf("failed to test `%s.sqlDir`: %w", confContext, err)
	}
	if !isDir {
		return fmt.Errorf("`%s.sqlDir` is not a directory", confContext)
	}
	if conf.OutputDir == "" {
		return fmt.Errorf("missing `%s.outputDir`", confContext)
	}
	if conf.Database != nil {
		if err := conf.Database.ValidateAndDefaults(confContext + ".database"); err != nil {
			return err
		}

	} else {
		log.Info().Msgf("`%s.database` not specified, only JSON files will be written", confContext)
	}
	return nil
}
