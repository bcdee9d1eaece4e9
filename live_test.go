package splitwise_test

import (
	"context"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	splitwise "github.com/masa-finance/go-splitwise"
)

func init() {
	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Debug("No .env file loaded")
	}
}

// TestLiveCurrentUser calls the real service with the credentials from the
// environment. It runs only when an access token is configured.
func TestLiveCurrentUser(t *testing.T) {
	if os.Getenv("SPLITWISE_OAUTH_TOKEN") == "" {
		t.Skip("Skipping live test: SPLITWISE_OAUTH_TOKEN not set")
	}

	cfg, err := splitwise.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	client, err := splitwise.NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig() error = %v", err)
	}

	user, err := client.GetCurrentUser(context.Background())
	if err != nil {
		t.Fatalf("GetCurrentUser() error = %v", err)
	}
	if user == nil || user.ID == 0 {
		t.Fatalf("expected the current user, got %+v", user)
	}

	if _, err := client.GetCurrencies(context.Background()); err != nil {
		t.Fatalf("GetCurrencies() error = %v", err)
	}
}
