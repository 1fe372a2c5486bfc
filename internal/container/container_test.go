package container_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/quizmaster-lambda/internal/config"
	"github.com/saulo-duarte/quizmaster-lambda/internal/container"
	"github.com/saulo-duarte/quizmaster-lambda/internal/storage"
)

func TestNewStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory", func(t *testing.T) {
		store, err := container.NewStore(ctx, config.Settings{StoreDriver: config.StoreMemory})
		require.NoError(t, err)
		assert.IsType(t, &storage.MemoryStore{}, store)
	})

	t.Run("SQLite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "quizmaster.db")
		store, err := container.NewStore(ctx, config.Settings{StoreDriver: config.StoreSQLite, SQLitePath: path})
		require.NoError(t, err)
		defer store.Close()

		require.NoError(t, store.Set(ctx, "k", []byte("v")))
		got, ok, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []byte("v"), got)
	})

	t.Run("PostgresNeedsDSN", func(t *testing.T) {
		_, err := container.NewStore(ctx, config.Settings{StoreDriver: config.StorePostgres})
		assert.Error(t, err)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := container.NewStore(ctx, config.Settings{StoreDriver: "mongo"})
		assert.Error(t, err)
	})
}

func TestRouter(t *testing.T) {
	c, err := container.Build(context.Background(), config.Settings{
		StoreDriver: config.StoreMemory,
		GenerateURL: "http://127.0.0.1:0/ai-quiz",
	})
	require.NoError(t, err)
	defer c.Close()
	assert.Nil(t, c.AIQuizContainer)

	h := c.Router()

	rec := httptest.NewRecorder()
	body := `{"title":"Geo","questions":[{"question":"Capital of France?","options":["London","Paris","Berlin","Madrid"],"correctAnswer":1}]}`
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/quizzes", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/questions?quiz="+created.ID, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Capital of France?")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/categories", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/ai-quiz", strings.NewReader(`{"category":"Art"}`)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
