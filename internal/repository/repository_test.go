package repository

import (
	"context"
	"reflect"
	"testing"

	"rongyi_backend/internal/config"
	"rongyi_backend/internal/database"
	"rongyi_backend/internal/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

// ============================================================================
// Test Helpers
// ============================================================================

// newTestStore 基于内存 SQLite 创建已建表的 Store
func newTestStore(t *testing.T) *database.Store {
	t.Helper()
	store, err := database.Open(context.Background(), database.Options{
		DSN: "sqlite://:memory:",
		Log: logger.Discard(),
	})
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to migrate test store: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

type testRepos struct {
	store     *database.Store
	words     *SignWordRepository
	users     *UserRepository
	feedbacks *FeedbackRepository
}

func newTestRepos(t *testing.T, matchMode string) testRepos {
	t.Helper()
	store := newTestStore(t)
	return testRepos{
		store:     store,
		words:     NewSignWordRepository(store, matchMode),
		users:     NewUserRepository(store, bcrypt.MinCost),
		feedbacks: NewFeedbackRepository(store),
	}
}

func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func assertEqual(t *testing.T, expected, actual interface{}) {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		t.Fatalf("expected %v, got %v", expected, actual)
	}
}

func ctx() context.Context {
	return context.Background()
}

func TestMatcherFragments(t *testing.T) {
	tests := []struct {
		name    string
		m       Matcher
		equal   string
		contain string
		arg     any
	}{
		{
			name:    "engine postgres",
			m:       Matcher{Mode: config.MatchEngine, Dialect: database.Postgres},
			equal:   "category = ?",
			contain: "word LIKE ? ESCAPE '!'",
			arg:     "%a!%b!_c!!%",
		},
		{
			name:    "insensitive mysql",
			m:       Matcher{Mode: config.MatchInsensitive, Dialect: database.MySQL},
			equal:   "LOWER(category) = LOWER(?)",
			contain: "LOWER(word) LIKE LOWER(?) ESCAPE '!'",
			arg:     "%a!%b!_c!!%",
		},
		{
			name:    "sensitive sqlite",
			m:       Matcher{Mode: config.MatchSensitive, Dialect: database.SQLite},
			equal:   "category = ?",
			contain: "instr(word, ?) > 0",
			arg:     "a%b_c!",
		},
		{
			name:    "sensitive mysql",
			m:       Matcher{Mode: config.MatchSensitive, Dialect: database.MySQL},
			equal:   "CAST(category AS BINARY) = CAST(? AS BINARY)",
			contain: "LOCATE(CAST(? AS BINARY), CAST(word AS BINARY)) > 0",
			arg:     "a%b_c!",
		},
		{
			name:    "sensitive postgres",
			m:       Matcher{Mode: config.MatchSensitive, Dialect: database.Postgres},
			equal:   "category = ?",
			contain: "word LIKE ? ESCAPE '!'",
			arg:     "%a!%b!_c!!%",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eq, _ := tt.m.Equal("category", "x")
			assertEqual(t, tt.equal, eq)
			cond, arg := tt.m.Contains("word", "a%b_c!")
			assertEqual(t, tt.contain, cond)
			assertEqual(t, tt.arg, arg)
		})
	}
}
