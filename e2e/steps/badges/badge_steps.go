package badges

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	POST(path string, body any, authed bool) error
	GET(path string) error
	LastBody() []byte
	GetResponseField(field string) (any, error)
	Badge(name string) string
}

// RegisterSteps registers badge catalog and award step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &badgeSteps{tc: tc}

	ctx.Step(`^a moderator mints badge "([^"]*)" titled "([^"]*)"$`, steps.mintBadge)
	ctx.Step(`^an anonymous caller mints badge "([^"]*)"$`, steps.mintAnonymously)
	ctx.Step(`^a moderator rewards badge "([^"]*)" to "([^"]*)"$`, steps.rewardBadge)
	ctx.Step(`^I fetch the token of badge "([^"]*)" for "([^"]*)"$`, steps.fetchToken)
	ctx.Step(`^I list the tokens of "([^"]*)"$`, steps.listOwnerTokens)
	ctx.Step(`^the token id should be for badge "([^"]*)" and "([^"]*)"$`, steps.tokenIDShouldBe)
	ctx.Step(`^the token should have (\d+) copies$`, steps.copiesShouldBe)
	ctx.Step(`^the list should contain (\d+) tokens?$`, steps.listLengthShouldBe)
	ctx.Step(`^I request a token transfer of badge "([^"]*)" from "([^"]*)" to "([^"]*)"$`, steps.transfer)
}

type badgeSteps struct {
	tc TestContext
}

func (s *badgeSteps) tokenID(badge, owner string) string {
	return s.tc.Badge(badge) + ":" + owner
}

func (s *badgeSteps) mintBadge(badge, title string) error {
	return s.tc.POST("/badges", map[string]any{
		"badge_id":       s.tc.Badge(badge),
		"badge_metadata": map[string]any{"title": title},
	}, true)
}

func (s *badgeSteps) mintAnonymously(badge string) error {
	return s.tc.POST("/badges", map[string]any{"badge_id": s.tc.Badge(badge)}, false)
}

func (s *badgeSteps) rewardBadge(badge, owner string) error {
	return s.tc.POST("/badges/"+url.PathEscape(s.tc.Badge(badge))+"/rewards", map[string]any{
		"receiver_account_id": owner,
	}, true)
}

func (s *badgeSteps) fetchToken(badge, owner string) error {
	return s.tc.GET("/nft/tokens/" + url.PathEscape(s.tokenID(badge, owner)))
}

func (s *badgeSteps) listOwnerTokens(owner string) error {
	return s.tc.GET("/nft/owners/" + url.PathEscape(owner) + "/tokens")
}

func (s *badgeSteps) transfer(badge, from, to string) error {
	return s.tc.POST("/nft/transfer", map[string]any{
		"receiver_id": to,
		"token_id":    s.tokenID(badge, from),
	}, false)
}

func (s *badgeSteps) tokenIDShouldBe(badge, owner string) error {
	v, err := s.tc.GetResponseField("token_id")
	if err != nil {
		return err
	}
	if want := s.tokenID(badge, owner); v != want {
		return fmt.Errorf("expected token_id %q, got %v", want, v)
	}
	return nil
}

func (s *badgeSteps) copiesShouldBe(copies int) error {
	v, err := s.tc.GetResponseField("metadata")
	if err != nil {
		return err
	}
	metadata, ok := v.(map[string]any)
	if !ok {
		return fmt.Errorf("metadata is not an object: %v", v)
	}
	if got, _ := metadata["copies"].(float64); int(got) != copies {
		return fmt.Errorf("expected %d copies, got %v", copies, metadata["copies"])
	}
	return nil
}

func (s *badgeSteps) listLengthShouldBe(n int) error {
	var items []json.RawMessage
	if err := json.Unmarshal(s.tc.LastBody(), &items); err != nil {
		return fmt.Errorf("response is not a list: %w", err)
	}
	if len(items) != n {
		return fmt.Errorf("expected %d tokens, got %d", n, len(items))
	}
	return nil
}
