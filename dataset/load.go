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

package dataset

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"pdepview/storage"
	"pdepview/storage/factory"

	"github.com/bytedance/sonic"
	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
)

const (
	SourceJSON     = "json"
	SourceDatabase = "database"
)

type Conf struct {

	// Source is either `json` (files created by the import
	// action) or `database`
	Source          string        `json:"source"`
	DataDir         string        `json:"dataDir"`
	Database        *storage.Conf `json:"database"`
	SearchCacheSize int           `json:"searchCacheSize"`
}

func (conf *Conf) ValidateAndDefaults(confContext string) error {
	if conf == nil {
		return fmt.Errorf("missing configuration section `%s`", confContext)
	}
	if conf.Source == "" {
		conf.Source = SourceJSON
		log.Warn().
			Str("source", conf.Source).
			Msgf("`%s.source` not specified, using default", confContext)
	}
	switch conf.Source {
	case SourceJSON:
		isDir, err := fs.IsDir(conf.DataDir)
		if err != nil {
			return fmt.Errorf("failed to test `%s.dataDir`: %w", confContext, err)
		}
		if !isDir {
			return fmt.Errorf("`%s.dataDir` is not a directory", confContext)
		}
	case SourceDatabase:
		if err := conf.Database.ValidateAndDefaults(confContext + ".database"); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported `%s.source`: %s", confContext, conf.Source)
	}
	if conf.SearchCacheSize == 0 {
		conf.SearchCacheSize = DfltSearchCacheSize
		log.Warn().
			Int("size", conf.SearchCacheSize).
			Msgf("`%s.searchCacheSize` not specified, using default", confContext)
	}
	return nil
}

func loadJSONFile(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", filepath.Base(path), err)
	}
	if err := sonic.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}
	return nil
}

// LoadJSONDir loads a dataset from JSON files
// created by the import action
func LoadJSONDir(dir string) (*Dataset, error) {
	var preps []string
	var defs []PrepDef
	var props []PrepProp
	var corpus []PrepCorp
	if err := loadJSONFile(filepath.Join(dir, "preps.json"), &preps); err != nil {
		return nil, err
	}
	if err := loadJSONFile(filepath.Join(dir, "prepdefs.json"), &defs); err != nil {
		return nil, err
	}
	if err := loadJSONFile(filepath.Join(dir, "prepprops.json"), &props); err != nil {
		return nil, err
	}
	if err := loadJSONFile(filepath.Join(dir, "prepcorp.json"), &corpus); err != nil {
		return nil, err
	}
	if preps == nil {
		preps = []string{}
	}
	return New(preps, defs, props, corpus), nil
}

// ---------------------

func nullStr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	ans := int(v.Int64)
	return &ans
}

func loadDefs(db *sql.DB, table string) ([]PrepDef, error) {
	rows, err := db.Query(fmt.Sprintf("SELECT prep, sense, def FROM %s ORDER BY id", table))
	if err != nil {
		return nil, fmt.Errorf("failed to load definitions: %w", err)
	}
	defer rows.Close()
	ans := make([]PrepDef, 0, 1000)
	for rows.Next() {
		var item PrepDef
		var def sql.NullString
		if err := rows.Scan(&item.Prep, &item.Sense, &def); err != nil {
			return nil, fmt.Errorf("failed to load definitions: %w", err)
		}
		item.Def = def.String
		ans = append(ans, item)
	}
	return ans, rows.Err()
}

func loadCorpus(db *sql.DB, table string) ([]PrepCorp, error) {
	rows, err := db.Query(
		fmt.Sprintf("SELECT prep, source, sense, inst, preploc, sentence FROM %s ORDER BY id", table))
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus examples: %w", err)
	}
	defer rows.Close()
	ans := make([]PrepCorp, 0, 10000)
	for rows.Next() {
		var item PrepCorp
		var source, sense, sentence sql.NullString
		var inst, preploc sql.NullInt64
		if err := rows.Scan(&item.Prep, &source, &sense, &inst, &preploc, &sentence); err != nil {
			return nil, fmt.Errorf("failed to load corpus examples: %w", err)
		}
		item.Source = source.String
		item.Sense = sense.String
		item.Inst = int(inst.Int64)
		item.Preploc = int(preploc.Int64)
		item.Sentence = sentence.String
		ans = append(ans, item)
	}
	return ans, rows.Err()
}

func loadProps(db *sql.DB, table string) ([]PrepProp, error) {
	rows, err := db.Query(
		fmt.Sprintf(
			"SELECT prep, sense, cprop, aprop, sup, srtype, tratz, srikumar, opreps, srel, "+
				"qsyn, qpar, com, cnn, cnnp, cwh, cing, clexset, gnoun, gverb, gadj, csel, "+
				"gsel, conto, ssense, clanal, subc FROM %s ORDER BY id",
			table,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load properties: %w", err)
	}
	defer rows.Close()
	ans := make([]PrepProp, 0, 1000)
	for rows.Next() {
		var item PrepProp
		var cprop, aprop, sup, srtype, subc sql.NullString
		var tratz, srikumar, opreps, srel, qsyn, qpar, com, clexset sql.NullString
		var csel, gsel, conto, ssense sql.NullString
		var cnn, cnnp, cwh, cing, gnoun, gverb, gadj, clanal sql.NullInt64
		err := rows.Scan(
			&item.Prep, &item.Sense, &cprop, &aprop, &sup, &srtype, &tratz, &srikumar,
			&opreps, &srel, &qsyn, &qpar, &com, &cnn, &cnnp, &cwh, &cing, &clexset,
			&gnoun, &gverb, &gadj, &csel, &gsel, &conto, &ssense, &clanal, &subc,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to load properties: %w", err)
		}
		item.CProp = cprop.String
		item.AProp = aprop.String
		item.Sup = sup.String
		item.SRType = srtype.String
		item.Tratz = nullStr(tratz)
		item.Srikumar = nullStr(srikumar)
		item.OPreps = nullStr(opreps)
		item.SRel = nullStr(srel)
		item.QSyn = nullStr(qsyn)
		item.QPar = nullStr(qpar)
		item.Com = nullStr(com)
		item.CNN = nullInt(cnn)
		item.CNNP = nullInt(cnnp)
		item.CWH = nullInt(cwh)
		item.CIng = nullInt(cing)
		item.CLexSet = nullStr(clexset)
		item.GNoun = nullInt(gnoun)
		item.GVerb = nullInt(gverb)
		item.GAdj = nullInt(gadj)
		item.CSel = nullStr(csel)
		item.GSel = nullStr(gsel)
		item.COnto = nullStr(conto)
		item.SSense = nullStr(ssense)
		item.CLAnal = nullInt(clanal)
		item.Subc = subc.String
		ans = append(ans, item)
	}
	return ans, rows.Err()
}

// LoadFromDB loads a dataset from database tables
// created by the import action
func LoadFromDB(db *sql.DB, conf *storage.Conf) (*Dataset, error) {
	defs, err := loadDefs(db, conf.TableName(storage.TablePrepDefs))
	if err != nil {
		return nil, err
	}
	props, err := loadProps(db, conf.TableName(storage.TablePrepProps))
	if err != nil {
		return nil, err
	}
	corpus, err := loadCorpus(db, conf.TableName(storage.TablePrepCorp))
	if err != nil {
		return nil, err
	}
	return New(nil, defs, props, corpus), nil
}

// Load loads a dataset from a configured source
func Load(conf *Conf) (*Dataset, error) {
	switch conf.Source {
	case SourceJSON:
		return LoadJSONDir(conf.DataDir)
	case SourceDatabase:
		db, err := factory.OpenDatabase(conf.Database)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return LoadFromDB(db, conf.Database)
	}
	return nil, fmt.Errorf("unsupported dataset source `%s`", conf.Source)
}
