package e2e

import (
	"context"
	"os"
	"testing"

	"github.com/cucumber/godog"
)

// TestFeatures runs the feature files against a live server. Set
// BADGES_E2E_URL and BADGES_E2E_TOKEN (a moderator bearer token).
func TestFeatures(t *testing.T) {
	baseURL := os.Getenv("BADGES_E2E_URL")
	token := os.Getenv("BADGES_E2E_TOKEN")
	if baseURL == "" || token == "" {
		t.Skip("BADGES_E2E_URL and BADGES_E2E_TOKEN are required")
	}

	tc := NewTestContext(baseURL, token)
	suite := godog.TestSuite{
		ScenarioInitializer: func(ctx *godog.ScenarioContext) {
			ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
				tc.Reset()
				return ctx, nil
			})
			RegisterSteps(ctx, tc)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}
	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
