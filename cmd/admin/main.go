package main

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"gofolio/internal/config"
	"gofolio/internal/models"
	"gofolio/internal/storage"
)

// Bootstraps the initial admin account directly in the durable store. The
// tool refuses to run without a live database connection: seeding an admin
// into the in-memory store would vanish with the process.
func main() {
	username := flag.String("username", "", "initial admin username (required)")
	flag.Parse()

	u := strings.TrimSpace(*username)
	if u == "" {
		log.Fatal("missing required flag: --username")
	}

	cfg := config.MustLoad()
	if cfg.Mongo.URI == "" {
		log.Fatal("MONGODB_URI is required to create an admin account")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx := context.Background()
	conn := storage.NewConnManager(cfg.Mongo, logger)
	conn.Connect(ctx)
	if !conn.HasActiveConnection() {
		log.Fatal("document database unavailable")
	}
	defer func() {
		if err := conn.Close(ctx); err != nil {
			logger.Error("close connection failed", slog.Any("error", err))
		}
	}()

	store := storage.NewMongoStore(conn)

	existing, err := store.GetUserByUsername(ctx, u)
	if err != nil {
		log.Fatalf("query user: %v", err)
	}
	if existing != nil {
		log.Fatalf("user %q already exists", u)
	}

	password, err := generateRandomPassword(24)
	if err != nil {
		log.Fatalf("generate password: %v", err)
	}

	user, err := store.CreateUser(ctx, models.InsertUser{
		Username: u,
		Password: password,
		IsAdmin:  true,
	})
	if err != nil {
		if storage.IsDuplicateKeyError(err) {
			log.Fatalf("user %q already exists", u)
		}
		log.Fatalf("create user: %v", err)
	}

	fmt.Printf("created initial admin account:\n")
	fmt.Printf("username: %s\n", user.Username)
	fmt.Printf("password: %s\n", password)
	fmt.Printf("note: the password is shown only once, change it after first login.\n")
}

func generateRandomPassword(bytesLen int) (string, error) {
	if bytesLen <= 0 {
		bytesLen = 24
	}
	buf := make([]byte, bytesLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
