package integration

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	handler "github.com/Mtar786/votingApp/internal/adapters/handler/http"
	repo "github.com/Mtar786/votingApp/internal/adapters/repository/postgres"
	"github.com/Mtar786/votingApp/internal/core/services"
)

const testJWTSecret = "test-secret"

type TestApp struct {
	DB          *sql.DB
	Server      *httptest.Server
	Client      *http.Client
	DBContainer testcontainers.Container
}

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func applyMigrations(db *sql.DB) error {
	dirPath := "../../internal/adapters/repository/postgres/migrations"

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dirPath, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", entry.Name(), err)
		}
	}

	return nil
}

func setupTestApp(t *testing.T) *TestApp {
	ctx := context.Background()
	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)

	err = applyMigrations(db)
	require.NoError(t, err)

	pollRepo := repo.NewPollRepository(db)
	userRepo := repo.NewUserRepository(db)

	pollService := services.NewPollService(pollRepo)
	authService := services.NewAuthService(userRepo, testJWTSecret)

	pollHandler := handler.NewPollHandler(pollService)
	voteHandler := handler.NewVoteHandler(pollService)
	authHandler := handler.NewAuthHandler(authService)
	router := handler.NewHandler(pollHandler, voteHandler, authHandler, authService)

	server := httptest.NewServer(router)

	return &TestApp{
		DB:          db,
		Server:      server,
		Client:      server.Client(),
		DBContainer: dbContainer,
	}
}

// createUserAndToken inserts a user directly and signs a token for it,
// bypassing the register/login endpoints tested elsewhere.
func (app *TestApp) createUserAndToken(t *testing.T) (uuid.UUID, string) {
	t.Helper()

	userID := uuid.New()
	username := fmt.Sprintf("user-%s", userID)
	_, err := app.DB.Exec(
		"INSERT INTO users (id, username, password_hash) VALUES ($1, $2, $3)",
		userID, username, "not-a-real-hash",
	)
	require.NoError(t, err)

	claims := jwt.MapClaims{
		"sub":      userID.String(),
		"username": username,
		"exp":      time.Now().Add(15 * time.Minute).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return userID, signedToken
}

func (app *TestApp) Teardown(t *testing.T) {
	app.Server.Close()
	app.DB.Close()
	if err := app.DBContainer.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}
