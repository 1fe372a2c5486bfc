package container

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/saulo-duarte/quizmaster-lambda/internal/aiquiz"
	"github.com/saulo-duarte/quizmaster-lambda/internal/config"
	"github.com/saulo-duarte/quizmaster-lambda/internal/generator"
	"github.com/saulo-duarte/quizmaster-lambda/internal/quiz"
	"github.com/saulo-duarte/quizmaster-lambda/internal/resolver"
	"github.com/saulo-duarte/quizmaster-lambda/internal/router"
	"github.com/saulo-duarte/quizmaster-lambda/internal/storage"
)

type Container struct {
	Settings           config.Settings
	Store              storage.Store
	QuizContainer      *quiz.QuizContainer
	ResolverContainer  *resolver.ResolverContainer
	GeneratorContainer *generator.GeneratorContainer
	AIQuizContainer    *aiquiz.AIQuizContainer
}

// New loads the environment and wires every feature. The generation function
// is only mounted when a Gemini key is configured.
func New(ctx context.Context) (*Container, error) {
	config.Init()
	return Build(ctx, config.Load())
}

func Build(ctx context.Context, settings config.Settings) (*Container, error) {
	log := config.WithContext(ctx)

	store, err := NewStore(ctx, settings)
	if err != nil {
		return nil, err
	}

	quizContainer := quiz.NewQuizContainer(store)
	resolverContainer := resolver.NewResolverContainer(quizContainer.Repo)
	generatorContainer := generator.NewGeneratorContainer(settings, quizContainer.Service)

	var aiQuizContainer *aiquiz.AIQuizContainer
	if settings.GeminiAPIKey != "" {
		aiQuizContainer, err = aiquiz.NewAIQuizContainer(ctx, settings)
		if err != nil {
			_ = store.Close()
			return nil, err
		}
	} else {
		log.Warn("GEMINI_API_KEY not set, /ai-quiz disabled")
	}

	return &Container{
		Settings:           settings,
		Store:              store,
		QuizContainer:      quizContainer,
		ResolverContainer:  resolverContainer,
		GeneratorContainer: generatorContainer,
		AIQuizContainer:    aiQuizContainer,
	}, nil
}

// NewStore opens the backing store selected by settings.StoreDriver.
func NewStore(ctx context.Context, settings config.Settings) (storage.Store, error) {
	switch settings.StoreDriver {
	case config.StoreMemory:
		return storage.NewMemoryStore(), nil
	case config.StoreSQLite, config.StorePostgres:
		dsn := settings.DatabaseDSN
		if settings.StoreDriver == config.StoreSQLite {
			dsn = settings.SQLitePath
		}
		if err := config.Connect(ctx, settings.StoreDriver, dsn); err != nil {
			return nil, fmt.Errorf("failed to connect to DB: %w", err)
		}
		store, err := storage.NewGormStore(config.DB)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.StoreRedis:
		client, err := storage.NewRedisClient(ctx, settings.RedisURL)
		if err != nil {
			return nil, err
		}
		return storage.NewRedisStore(client), nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", settings.StoreDriver)
	}
}

func (c *Container) Router() http.Handler {
	cfg := router.RouterConfig{
		QuizHandler:      c.QuizContainer.Handler,
		ResolverHandler:  c.ResolverContainer.Handler,
		GeneratorHandler: c.GeneratorContainer.Handler,
	}
	if c.AIQuizContainer != nil {
		cfg.AIQuizHandler = c.AIQuizContainer.Handler
	}
	return router.New(cfg)
}

// Serve listens on the configured port until ctx is done.
func (c *Container) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + c.Settings.Port,
		Handler:           c.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		config.Logger.Infof("Listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (c *Container) Close() error {
	return c.Store.Close()
}
