package e2e

import (
	"github.com/cucumber/godog"

	"badgeregistry/e2e/steps/badges"
	"badgeregistry/e2e/steps/common"
)

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	common.RegisterSteps(ctx, tc)
	badges.RegisterSteps(ctx, tc)
}
