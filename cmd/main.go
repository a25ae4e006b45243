package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"codecraft-agent/handler"
	"codecraft-agent/internal/chatbot"
	"codecraft-agent/internal/integrations/openai"
	"codecraft-agent/internal/integrations/paramstore"
	"codecraft-agent/internal/repository"
	"codecraft-agent/internal/usecase"
)

type appConfig struct {
	StateTable        string `env:"STATE_TABLE,required"`
	ParamPrefix       string `env:"PARAM_PREFIX,required"`
	LLMEnabled        bool   `env:"LLM_ENABLED" envDefault:"false"`
	MinInputLen       int    `env:"MIN_INPUT_LENGTH" envDefault:"10"`
	MaxInputLen       int    `env:"MAX_INPUT_LENGTH" envDefault:"1000"`
	ConversationCap   int    `env:"CONVERSATION_CAP" envDefault:"20"`
	SavedChatCap      int    `env:"SAVED_CHAT_CAP" envDefault:"10"`
	FollowupWordLimit int    `env:"FOLLOWUP_WORD_LIMIT" envDefault:"5"`
	LogLevel          string `env:"LOG_LEVEL" envDefault:"info"`
}

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	var cfg appConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to parse configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	ctx := context.Background()
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load AWS config")
	}

	ssmClient, err := paramstore.New(awsssm.NewFromConfig(awsCfg))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create SSM client")
	}
	store, err := repository.New(awsdynamodb.NewFromConfig(awsCfg), cfg.StateTable)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create state store")
	}

	var llm usecase.LLMClient
	if cfg.LLMEnabled {
		client, err := openai.NewClient(ssmClient, cfg.ParamPrefix)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to create OpenAI client")
		}
		llm = client
	}

	engine := chatbot.NewEngine(chatbot.Config{
		MinInputLen:       cfg.MinInputLen,
		MaxInputLen:       cfg.MaxInputLen,
		ConversationCap:   cfg.ConversationCap,
		FollowupWordLimit: cfg.FollowupWordLimit,
	})

	svc, err := usecase.NewConsultService(store, engine, llm, ssmClient, cfg.ParamPrefix, cfg.SavedChatCap, cfg.ConversationCap, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create consult service")
	}

	h, err := handler.NewHandler(svc, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create handler")
	}

	logger.Info().Bool("llm_enabled", cfg.LLMEnabled).Msg("codecraft-agent starting")
	lambda.Start(h.Handle)
}
