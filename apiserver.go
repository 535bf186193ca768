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
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"pdepview/cnf"
	"pdepview/dataset"
	"pdepview/docs"
	"pdepview/general"
	"pdepview/handlers"
	"pdepview/quiz"
	"pdepview/rdb"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/swaggo/swag"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type serverInfoResponse struct {
	Name           string              `json:"name"`
	Version        general.VersionInfo `json:"version"`
	PublicURL      string              `json:"publicUrl"`
	NumPreps       int                 `json:"numPreps"`
	NumDefinitions int                 `json:"numDefinitions"`
	NumExamples    int                 `json:"numExamples"`
	NumQuizPreps   int                 `json:"numQuizPreps"`
	SessionStore   string              `json:"sessionStore"`
}

type apiServer struct {
	server   *http.Server
	conf     *cnf.Conf
	version  general.VersionInfo
	ds       *dataset.Dataset
	searcher *dataset.Searcher
	quizGen  *quiz.Generator
	store    quiz.Store
}

func (api *apiServer) mkServerInfo() gin.HandlerFunc {
	storeType := "memory"
	if api.conf.Redis != nil {
		storeType = "redis"
	}
	info := serverInfoResponse{
		Name:           "PDEP Viewer",
		Version:        api.version,
		PublicURL:      api.conf.PublicURL,
		NumPreps:       len(api.ds.AllPreps()),
		NumDefinitions: api.ds.NumDefs(),
		NumExamples:    api.ds.NumExamples(),
		NumQuizPreps:   api.quizGen.NumEligiblePreps(),
		SessionStore:   storeType,
	}
	return func(ctx *gin.Context) {
		uniresp.WriteJSONResponse(ctx.Writer, info)
	}
}

func (api *apiServer) Start(ctx context.Context) {
	if !api.conf.Logging.Level.IsDebugMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(additionalLogEvents())
	engine.Use(logging.GinMiddleware())
	engine.Use(uniresp.AlwaysJSONContentType())
	engine.Use(CORSMiddleware(api.conf))
	engine.NoMethod(uniresp.NoMethodHandler)
	engine.NoRoute(uniresp.NotFoundHandler)

	actions := handlers.NewActions(
		api.ds, api.searcher, quiz.NewManager(api.quizGen, api.store))

	engine.GET("/", api.mkServerInfo())

	docs.SwaggerInfo.Version = api.version.Version
	engine.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.GET(
		"/openapi",
		func(ctx *gin.Context) {
			doc, err := swag.ReadDoc()
			if err != nil {
				err = fmt.Errorf("failed to read API docs: %w", err)
				uniresp.RespondWithErrorJSON(ctx, err, http.StatusInternalServerError)
				return
			}
			uniresp.WriteRawJSONResponse(ctx.Writer, []byte(doc))
		},
	)

	engine.GET(
		"/preps", actions.Preps)

	engine.GET(
		"/preps/:prep", actions.PrepDetail)

	engine.GET(
		"/preps/:prep/senses/:sense", actions.SenseDetail)

	engine.POST(
		"/quiz", actions.NewQuiz)

	engine.GET(
		"/quiz/:sessionId", actions.QuizState)

	engine.POST(
		"/quiz/:sessionId/answer", actions.AnswerQuiz)

	engine.POST(
		"/quiz/:sessionId/next", actions.NextQuestion)

	log.Info().Msgf("starting to listen at %s:%d", api.conf.ListenAddress, api.conf.ListenPort)
	api.server = &http.Server{
		Handler:      engine,
		Addr:         fmt.Sprintf("%s:%d", api.conf.ListenAddress, api.conf.ListenPort),
		WriteTimeout: time.Duration(api.conf.ServerWriteTimeoutSecs) * time.Second,
		ReadTimeout:  time.Duration(api.conf.ServerReadTimeoutSecs) * time.Second,
	}
	go func() {
		if err := api.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()
}

func (api *apiServer) Stop(ctx context.Context) error {
	log.Warn().Msg("shutting down PDEP Viewer HTTP API server")
	return api.server.Shutdown(ctx)
}

func runApiServer(
	conf *cnf.Conf,
	version general.VersionInfo,
) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ds, err := dataset.Load(conf.Data)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load PDEP dataset")
		return
	}
	log.Info().
		Int("numPreps", len(ds.AllPreps())).
		Int("numDefinitions", ds.NumDefs()).
		Int("numExamples", ds.NumExamples()).
		Str("source", conf.Data.Source).
		Msg("loaded PDEP dataset")

	searcher, err := dataset.NewSearcher(ds, conf.Data.SearchCacheSize)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize search")
		return
	}
	quizGen := quiz.NewGenerator(ds, 0)
	if quizGen.NumEligiblePreps() == 0 {
		log.Warn().Msg("no preposition is suitable for the quiz, quiz endpoints will respond with 404")
	}

	server := &apiServer{
		conf:     conf,
		version:  version,
		ds:       ds,
		searcher: searcher,
		quizGen:  quizGen,
	}
	services := []service{server}

	if conf.Redis != nil {
		radapter := rdb.NewAdapter(conf.Redis, ctx)
		defer radapter.Close()
		if err := radapter.TestConnection(redisConnectionTestTimeout); err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
			return
		}
		server.store = quiz.NewRedisStore(radapter)

	} else {
		memStore := quiz.NewMemoryStore(time.Duration(conf.QuizSessionTTLSecs) * time.Second)
		server.store = memStore
		services = append(services, memStore)
	}

	for _, m := range services {
		m.Start(ctx)
	}
	<-ctx.Done()
	log.Warn().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	for _, s := range services {
		wg.Add(1)
		go func(srv service) {
			defer wg.Done()
			if err := srv.Stop(shutdownCtx); err != nil {
				log.Error().Err(err).Type("service", srv).Msg("Error shutting down service")
			}
		}(s)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info().Msg("Graceful shutdown completed")
	case <-shutdownCtx.Done():
		log.Warn().Msg("Shutdown timed out")
	}
}
