// Package httpserver manages server creation and api routing.
package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/chart"
	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/insightdelivery"
	"github.com/go-petr/pet-ledger/internal/insightservice"
	"github.com/go-petr/pet-ledger/internal/ledgerdelivery"
	"github.com/go-petr/pet-ledger/internal/ledgerengine"
	"github.com/go-petr/pet-ledger/internal/ledgerservice"
	"github.com/go-petr/pet-ledger/internal/middleware"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
)

// Server holds the accounting engine, handlers router and configuration.
type Server struct {
	Ledger *ledgerengine.Engine
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	accounts, retainedID, err := loadChart(config)
	if err != nil {
		return nil, err
	}

	var opts []ledgerengine.Option
	if config.RejectZeroTotal {
		opts = append(opts, ledgerengine.RejectZeroTotal())
	}

	engine, err := ledgerengine.New(accounts, opts...)
	if err != nil {
		return nil, err
	}

	ledgerService := ledgerservice.New(engine, retainedID)

	generator := insightservice.NewGeminiGenerator(config.GeminiAPIKey, config.GeminiModel)
	insightService := insightservice.New(generator)

	ledgerHandler := ledgerdelivery.NewHandler(ledgerService)
	insightHandler := insightdelivery.NewHandler(insightService, ledgerService)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.RequestLogger(logger))
	router.Use(gin.Recovery())

	router.GET("/accounts", ledgerHandler.Accounts)
	router.GET("/entries", ledgerHandler.Entries)
	router.POST("/entries", ledgerHandler.Post)
	router.PUT("/entries/:id", ledgerHandler.Update)
	router.DELETE("/entries/:id", ledgerHandler.Delete)
	router.GET("/stats", ledgerHandler.Stats)

	router.GET("/reports/general-ledger", ledgerHandler.GeneralLedger)
	router.GET("/reports/trial-balance", ledgerHandler.TrialBalance)
	router.GET("/reports/income-statement", ledgerHandler.IncomeStatement)
	router.GET("/reports/balance-sheet", ledgerHandler.BalanceSheet)

	router.POST("/closing", ledgerHandler.CloseBooks)
	router.DELETE("/closing", ledgerHandler.ReopenBooks)

	router.GET("/insights", insightHandler.Get)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("side", ledgerdelivery.ValidSide)
		if err != nil {
			return nil, errors.New("cannot register side validator")
		}
	}

	server := &Server{
		Ledger: engine,
		Engine: router,
		Config: config,
	}

	return server, nil
}

func loadChart(config configpkg.Config) ([]domain.Account, string, error) {
	retainedID := config.RetainedAccount
	if retainedID == "" {
		retainedID = chart.RetainedEarningsID
	}

	if config.ChartFile == "" {
		return chart.Default(), retainedID, nil
	}

	accounts, err := chart.Load(config.ChartFile)
	if err != nil {
		return nil, "", err
	}

	for _, a := range accounts {
		if a.ID == retainedID {
			return accounts, retainedID, nil
		}
	}

	return nil, "", errors.New("retained earnings account missing from chart")
}
