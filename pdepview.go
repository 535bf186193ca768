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

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"pdepview/cnf"
	"pdepview/general"
	"pdepview/sqlimport"
)

const (
	redisConnectionTestTimeout = 30 * time.Second
)

var (
	version   string
	buildDate string
	gitCommit string
)

type service interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
}

func getRequestOrigin(ctx *gin.Context) string {
	currOrigin, ok := ctx.Request.Header["Origin"]
	if ok {
		return currOrigin[0]
	}
	return ""
}

func additionalLogEvents() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		logging.AddLogEvent(ctx, "userAgent", ctx.Request.UserAgent())
		if prep := ctx.Param("prep"); prep != "" {
			logging.AddLogEvent(ctx, "prep", prep)
		}
		ctx.Next()
	}
}

func CORSMiddleware(conf *cnf.Conf) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if strings.HasSuffix(ctx.Request.URL.Path, "/openapi") {
			ctx.Header("Access-Control-Allow-Origin", "*")
			ctx.Header("Access-Control-Allow-Methods", "GET")
			ctx.Header("Access-Control-Allow-Headers", "Content-Type")

		} else {
			var allowedOrigin string
			currOrigin := getRequestOrigin(ctx)
			for _, origin := range conf.CorsAllowedOrigins {
				if currOrigin == origin {
					allowedOrigin = currOrigin
					break

				} else if origin == "*" {
					allowedOrigin = "*"
				}
			}
			if allowedOrigin != "" {
				ctx.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
				// browsers reject credentials with a wildcard origin
				if allowedOrigin != "*" {
					ctx.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
				}
				ctx.Writer.Header().Set(
					"Access-Control-Allow-Headers",
					"Content-Type, Content-Length, Accept-Encoding, Accept, Origin, Cache-Control, X-Requested-With",
				)
				ctx.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")
			}

			if ctx.Request.Method == "OPTIONS" {
				ctx.AbortWithStatus(204)
				return
			}
		}
		ctx.Next()
	}
}

func cleanVersionInfo(v string) string {
	return strings.TrimLeft(strings.Trim(v, "'"), "v")
}

func runImport(conf *cnf.Conf) {
	t0 := time.Now()
	summary, err := sqlimport.Run(conf.Import)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to import PDEP data")
		return
	}
	summary.Log()
	log.Info().
		Float64("procTimeSecs", time.Since(t0).Seconds()).
		Str("outputDir", conf.Import.OutputDir).
		Msg("import finished")
}

func main() {
	version := general.VersionInfo{
		Version:   cleanVersionInfo(version),
		BuildDate: cleanVersionInfo(buildDate),
		GitCommit: cleanVersionInfo(gitCommit),
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "PDEP Viewer - a browser and quiz for The Preposition Project data\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n\t%s [options] server [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] import [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] test [config.json]\n\t", filepath.Base(os.Args[0]))
		fmt.Fprintf(os.Stderr, "%s [options] version\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	envFile := flag.String("env-file", ".env", "a file with environment variables (secrets)")
	flag.Parse()
	action := flag.Arg(0)
	if action == "version" {
		fmt.Printf("pdepview %s\nbuild date: %s\nlast commit: %s\n", version.Version, version.BuildDate, version.GitCommit)
		return
	}
	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "failed to load %s: %s\n", *envFile, err)
		os.Exit(1)
	}
	conf := cnf.LoadConfig(flag.Arg(1))
	logging.SetupLogging(conf.Logging)

	switch action {
	case "test":
		if err := cnf.ValidateAndDefaults(conf, action); err != nil {
			log.Fatal().Err(err).Msg("invalid configuration")
		}
		log.Info().Msg("config OK")
	case "import":
		if err := cnf.ValidateAndDefaults(conf, action); err != nil {
			log.Fatal().Err(err).Msg("invalid configuration")
		}
		log.Info().Str("sqlDir", conf.Import.SQLDir).Msg("Starting PDEP data import")
		runImport(conf)
	case "server":
		if err := cnf.ValidateAndDefaults(conf, action); err != nil {
			log.Fatal().Err(err).Msg("invalid configuration")
		}
		log.Info().Msg("Starting PDEP Viewer")
		runApiServer(conf, version)
	default:
		log.Fatal().Msgf("Unknown action %s", action)
	}
}
