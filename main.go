package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"DVBot/ai"
	"DVBot/config"
	"DVBot/form"
	"DVBot/handler"
	"DVBot/handoff"
	"DVBot/i18n"
	"DVBot/keepalive"
	"DVBot/repo"

	"github.com/go-telegram/bot"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading configuration")
	}

	zerolog.SetGlobalLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store := newStore(ctx, cfg)
	texts := i18n.New()
	responder := ai.NewResponder(newBackend(ctx, cfg), texts)

	if cfg.AdminID == 0 {
		log.Warn().Msg("ADMIN_ID is not set, completed applications cannot be forwarded")
	}

	// Handlers run synchronously so the queue sees updates in arrival order;
	// the queue then fans chats out to their own goroutines.
	queue := handler.NewConversationQueue()
	b, err := bot.New(cfg.BotToken,
		bot.WithDefaultHandler(handler.Default),
		bot.WithNotAsyncHandlers(),
		bot.WithMiddlewares(queue.Middleware),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Error creating bot")
	}

	emitter := handoff.NewEmitter(b, store, texts, cfg.AdminID)
	h := handler.NewBotHandler(form.New(texts), store, emitter, responder, texts)
	h.Register(b)

	go func() {
		if err := keepalive.NewServer(cfg.Port).Run(ctx); err != nil {
			log.Error().Err(err).Msg("keep-alive server stopped")
		}
	}()

	log.Info().Msg("Bot started")
	b.Start(ctx)
	queue.Wait()
	log.Info().Msg("Bot stopped")
}

func newStore(ctx context.Context, cfg *config.Config) repo.Store {
	if !cfg.UseFirebase() {
		log.Warn().Msg("Firebase is not configured, sessions are kept in memory")
		return repo.NewMemoryStore()
	}
	fc, err := repo.InitializeFirebase(ctx, cfg.FirebaseKeyPath, cfg.FirebaseDatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing Firebase")
	}
	return fc
}

// newBackend prefers Gemini, then OpenAI. Without either the bot still runs
// and answers questions with an apology.
func newBackend(ctx context.Context, cfg *config.Config) ai.Backend {
	if cfg.GeminiAPIKey != "" {
		gemini, err := ai.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err == nil {
			return gemini
		}
		log.Error().Err(err).Msg("Error connecting to Gemini")
	}
	if cfg.OpenAIAPIKey != "" {
		openAI, err := ai.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		if err == nil {
			return openAI
		}
		log.Error().Err(err).Msg("Error connecting to OpenAI")
	}
	log.Warn().Msg("No AI backend configured")
	return nil
}
