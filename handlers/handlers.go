package handlers

import (
	"context"

	"datachat/charts"
	"datachat/dataset"
	"datachat/db"
	"datachat/models"
	"datachat/service"
	"datachat/stats"
)

// @title           Data Chat API
// @version         1.0
// @description     Data Chat API - Upload tabular datasets and ask questions about them in natural language. The AI plans the analysis, the service computes the statistics.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:9090
// @BasePath  /

// @schemes   http https

// Planner turns a natural language question about a dataset into an
// analysis plan. *ai.AIService implements it.
type Planner interface {
	ResolvePlan(ctx context.Context, question string, profile []dataset.ColumnProfile, rowCount int, history []models.ChatHistory) (*models.AnalysisPlan, error)
}

type Handlers struct {
	db             *db.DB
	aiService      Planner
	sqlService     *service.SQLServerService
	datasets       *dataset.Store
	profiler       *dataset.Profiler
	engine         *stats.Engine
	validator      *charts.Validator
	maxUploadBytes int64
}

func New(db *db.DB, aiService Planner, sqlService *service.SQLServerService, datasets *dataset.Store, profiler *dataset.Profiler, engine *stats.Engine, validator *charts.Validator, maxUploadBytes int64) *Handlers {
	return &Handlers{
		db:             db,
		aiService:      aiService,
		sqlService:     sqlService,
		datasets:       datasets,
		profiler:       profiler,
		engine:         engine,
		validator:      validator,
		maxUploadBytes: maxUploadBytes,
	}
}
