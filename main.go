package main

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"hirescope/adapters/excel"
	"hirescope/adapters/llm"
	"hirescope/adapters/llm/heuristic"
	"hirescope/adapters/postgres"
	reporthtml "hirescope/adapters/report"
	"hirescope/adapters/voice"
	"hirescope/app"
	"hirescope/domain/bank"
	"hirescope/internal"
	"hirescope/internal/config"
	"hirescope/internal/errors"
	"hirescope/internal/session"
	"hirescope/ui"
)

// initDatabase initializes the PostgreSQL database connection
func initDatabase(appConfig *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	if err := postgres.Init(context.Background(), db); err != nil {
		return nil, errors.Wrap(err, "schema initialization failed")
	}

	return db, nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()

	db, err := initDatabase(appConfig)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	store := postgres.NewInterviewRepository(db)

	llmConfig := llm.Config{
		APIKey:      appConfig.AI.APIKey,
		BaseURL:     appConfig.AI.BaseURL,
		Model:       appConfig.AI.Model,
		EmbedModel:  appConfig.AI.EmbedModel,
		Temperature: appConfig.AI.Temperature,
		MaxTokens:   appConfig.AI.MaxTokens,
		Timeout:     appConfig.AI.Timeout,
	}
	if appConfig.AI.APIKey == "" {
		logger.Warn("OPENAI_API_KEY not set: scoring runs on the local heuristic, follow-ups and voice are disabled")
	}

	oracle := llm.NewOracle(llmConfig, llm.NewOpenAIClient(llmConfig))
	deep := app.NewDeepScorer(llm.NewEmbedder(llmConfig))

	questionBank := bank.Default()

	factory := func() *app.Orchestrator {
		deps := app.Deps{
			Bank:     questionBank,
			Oracle:   oracle,
			Fallback: heuristic.NewScorer(),
			Deep:     deep,
			Log:      logger,
		}
		if appConfig.Interview.FollowupsEnabled {
			deps.Followups = llm.NewFollowupGenerator(llmConfig)
		}
		var opts []app.Option
		if appConfig.Interview.ShuffleSeed != 0 {
			opts = append(opts, app.WithShuffleSeed(appConfig.Interview.ShuffleSeed))
		}
		return app.NewOrchestrator(deps, opts...)
	}

	speech := voice.NewSpeech(voice.Config{
		APIKey:          appConfig.AI.APIKey,
		BaseURL:         appConfig.AI.BaseURL,
		SpeechModel:     appConfig.AI.SpeechModel,
		TranscribeModel: appConfig.AI.TranscribeModel,
		Voice:           appConfig.AI.Voice,
		Timeout:         appConfig.AI.Timeout,
	}, logger)

	server := ui.NewApp(ui.Config{
		Port:     appConfig.Server.Port,
		Sessions: session.NewManager(store, factory, logger),
		Renderer: reporthtml.NewRenderer(),
		Exporter: excel.NewExporter(store),
		Speech:   speech,
		Log:      logger,
	})

	if err := server.Start(); err != nil {
		log.Fatal("Server failed:", err)
	}
}
