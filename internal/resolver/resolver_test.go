package resolver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/quizmaster-lambda/internal/quiz"
	"github.com/saulo-duarte/quizmaster-lambda/internal/resolver"
	"github.com/saulo-duarte/quizmaster-lambda/internal/storage"
)

func newResolver(t *testing.T, stored ...quiz.Quiz) resolver.Resolver {
	t.Helper()
	repo := quiz.NewRepository(storage.NewMemoryStore())
	for _, q := range stored {
		require.NoError(t, repo.SaveQuiz(context.Background(), q))
	}
	return resolver.New(repo)
}

func TestResolveCategory(t *testing.T) {
	ctx := context.Background()
	r := newResolver(t)

	science, err := r.Resolve(ctx, resolver.ForCategory("science"))
	require.NoError(t, err)
	require.Len(t, science, 2)
	assert.Equal(t, "What is the chemical symbol for gold?", science[0].Text)

	t.Run("UnknownFallsBackToGeneral", func(t *testing.T) {
		got, err := r.Resolve(ctx, resolver.ForCategory("unknown-category"))
		require.NoError(t, err)

		general, err := r.Resolve(ctx, resolver.ForCategory(resolver.DefaultCategory))
		require.NoError(t, err)
		assert.Equal(t, general, got)
		assert.Len(t, got, 3)
	})

	t.Run("CallersCannotMutateSamples", func(t *testing.T) {
		first, err := r.Resolve(ctx, resolver.ForCategory("sports"))
		require.NoError(t, err)
		first[0].Options[0] = "changed"

		again, err := r.Resolve(ctx, resolver.ForCategory("sports"))
		require.NoError(t, err)
		assert.Equal(t, "4", again[0].Options[0])
	})
}

func TestResolveStoredQuizFiltersBlankQuestions(t *testing.T) {
	stored := quiz.Quiz{
		ID:    "custom_1",
		Title: "Mixed",
		Questions: []quiz.Question{
			{ID: "a", Text: "Real?", Options: []string{"yes", "no"}, CorrectAnswer: 0},
			{ID: "b", Text: "   ", Options: []string{"", ""}, CorrectAnswer: 0},
		},
	}
	r := newResolver(t, stored)

	got, err := r.Resolve(context.Background(), resolver.ForQuiz("custom_1"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, quiz.QuestionID("a"), got[0].ID)
}

func TestResolveStoredQuizDropsUnplayableQuestions(t *testing.T) {
	ctx := context.Background()

	t.Run("CorrectAnswerOutOfRange", func(t *testing.T) {
		store := storage.NewMemoryStore()
		raw := `[{"id":"custom_1","title":"Legacy","questions":[{"id":1,"question":"Q?","options":["a","b"],"correctAnswer":5}]}]`
		require.NoError(t, store.Set(ctx, quiz.CollectionKey, []byte(raw)))
		r := resolver.New(quiz.NewRepository(store))

		_, err := r.Resolve(ctx, resolver.ForQuiz("custom_1"))
		assert.ErrorIs(t, err, resolver.ErrEmptyQuestionSet)
	})

	t.Run("KeepsPlayable", func(t *testing.T) {
		store := storage.NewMemoryStore()
		raw := `[{"id":"custom_2","title":"Legacy","questions":[` +
			`{"id":1,"question":"Broken?","options":["a","b"],"correctAnswer":-1},` +
			`{"id":2,"question":"One option?","options":["a",""],"correctAnswer":0},` +
			`{"id":3,"question":"Fine?","options":["a","b"],"correctAnswer":1}]}]`
		require.NoError(t, store.Set(ctx, quiz.CollectionKey, []byte(raw)))
		r := resolver.New(quiz.NewRepository(store))

		got, err := r.Resolve(ctx, resolver.ForQuiz("custom_2"))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, quiz.QuestionID("3"), got[0].ID)
	})

	t.Run("Preview", func(t *testing.T) {
		preview := quiz.Quiz{
			ID:        "preview_1",
			Questions: []quiz.Question{{ID: "p", Text: "Preview?", Options: []string{"a", "b"}, CorrectAnswer: 2}},
		}
		_, err := newResolver(t).Resolve(ctx, resolver.ForPreview(preview))
		assert.ErrorIs(t, err, resolver.ErrEmptyQuestionSet)
	})
}

func TestResolveEmptyQuestionSet(t *testing.T) {
	ctx := context.Background()
	blank := quiz.Quiz{ID: "custom_blank", Title: "Blank", Questions: []quiz.Question{{Text: ""}}}
	r := newResolver(t, blank)

	_, err := r.Resolve(ctx, resolver.ForQuiz("custom_blank"))
	assert.ErrorIs(t, err, resolver.ErrEmptyQuestionSet)

	_, err = r.Resolve(ctx, resolver.ForQuiz("missing"))
	assert.ErrorIs(t, err, resolver.ErrEmptyQuestionSet)

	_, err = r.Resolve(ctx, resolver.ForPreview(quiz.Quiz{ID: "preview_1"}))
	assert.ErrorIs(t, err, resolver.ErrEmptyQuestionSet)
}

func TestResolvePreviewBypassesRepository(t *testing.T) {
	preview := quiz.Quiz{
		ID:        "preview_1",
		Title:     "Draft",
		Origin:    quiz.OriginPreview,
		Questions: []quiz.Question{{ID: "p", Text: "Preview?", Options: []string{"a", "b"}, CorrectAnswer: 1}},
	}
	r := newResolver(t)

	got, err := r.Resolve(context.Background(), resolver.ForPreview(preview))
	require.NoError(t, err)
	assert.Equal(t, preview.Questions, got)
}

func TestResolveID(t *testing.T) {
	ctx := context.Background()
	stored := quiz.Quiz{
		ID:        "generated_history_1",
		Title:     "AI History",
		Questions: []quiz.Question{{ID: "g", Text: "Generated?", Options: []string{"a", "b"}, CorrectAnswer: 0}},
	}
	r := newResolver(t, stored)

	got, err := r.ResolveID(ctx, "history")
	require.NoError(t, err)
	assert.Equal(t, "In which year did World War II end?", got[0].Text)

	got, err = r.ResolveID(ctx, "generated_history_1")
	require.NoError(t, err)
	assert.Equal(t, "Generated?", got[0].Text)

	got, err = r.ResolveID(ctx, "nope")
	require.NoError(t, err)
	assert.Equal(t, "What is the capital of France?", got[0].Text)
}

func TestHandler(t *testing.T) {
	h := resolver.NewHandler(newResolver(t))

	t.Run("Categories", func(t *testing.T) {
		rec := httptest.NewRecorder()
		resolver.CategoryRoutes(h, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var cats []resolver.Category
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cats))
		require.Len(t, cats, 4)
		assert.Equal(t, "general", cats[0].ID)
	})

	t.Run("Questions", func(t *testing.T) {
		rec := httptest.NewRecorder()
		resolver.QuestionRoutes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?category=sports", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Questions []quiz.Question `json:"questions"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body.Questions, 2)
	})

	t.Run("MissingQuiz", func(t *testing.T) {
		rec := httptest.NewRecorder()
		resolver.QuestionRoutes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?quiz=missing", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("NoSelector", func(t *testing.T) {
		rec := httptest.NewRecorder()
		resolver.QuestionRoutes(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
