package badge_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"

	"badgeregistry/internal/badge"
	"badgeregistry/internal/badge/events"
	"badgeregistry/internal/badge/metrics"
	"badgeregistry/internal/badge/models"
	"badgeregistry/internal/badge/store"
	jwttoken "badgeregistry/internal/jwt_token"
	platformmetrics "badgeregistry/internal/platform/metrics"
)

type RegistryFlowSuite struct {
	suite.Suite
	server   *httptest.Server
	store    *store.InMemory
	relay    *badge.Relay
	events   *bytes.Buffer
	modToken string
	anyToken string
}

func TestRegistryFlowSuite(t *testing.T) {
	suite.Run(t, new(RegistryFlowSuite))
}

func (s *RegistryFlowSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := prometheus.NewRegistry()
	badgeMetrics := metrics.New(registry)

	s.store = store.NewInMemory()
	svc := badge.NewService(s.store, []models.AccountID{"mod.near"}, nil, logger, badgeMetrics)
	s.Require().NoError(svc.InitContractMetadata(context.Background(), models.DefaultContractMetadata()))

	jwtService := jwttoken.NewJWTService("flow-key", "badgeregistry", "badgeregistry")
	var err error
	s.modToken, err = jwtService.GenerateAccessToken("mod.near", time.Hour)
	s.Require().NoError(err)
	s.anyToken, err = jwtService.GenerateAccessToken("alice.near", time.Hour)
	s.Require().NoError(err)

	router := chi.NewRouter()
	badge.NewHandler(svc, logger, platformmetrics.New(registry), jwttoken.MiddlewareValidator{JWTService: jwtService}, 5*time.Second).Register(router)
	s.server = httptest.NewServer(router)
	s.T().Cleanup(s.server.Close)

	s.events = &bytes.Buffer{}
	eventLog := slog.New(slog.NewJSONHandler(s.events, nil))
	s.relay = badge.NewRelay(s.store, events.NewLogPublisher(eventLog), time.Second, 10, logger, badgeMetrics)
}

func (s *RegistryFlowSuite) call(method, path, token, body string) (int, []byte) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, s.server.URL+path, reader)
	s.Require().NoError(err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return resp.StatusCode, out
}

func (s *RegistryFlowSuite) TestMintAwardAndRelay() {
	status, _ := s.call(http.MethodPost, "/badges", s.modToken, `{"badge_id":"first_badge","badge_metadata":{"title":"First","copies":99}}`)
	s.Equal(http.StatusCreated, status)

	status, body := s.call(http.MethodPost, "/badges/first_badge/rewards", s.modToken, `{"receiver_account_id":"alice.near","memo":"welcome"}`)
	s.Equal(http.StatusCreated, status)
	s.JSONEq(`{"token_id":"first_badge:alice.near"}`, string(body))

	status, _ = s.call(http.MethodPost, "/badges/first_badge/rewards", s.modToken, `{"receiver_account_id":"alice.near"}`)
	s.Equal(http.StatusConflict, status)

	status, body = s.call(http.MethodGet, "/nft/tokens/first_badge:alice.near", "", "")
	s.Equal(http.StatusOK, status)
	var token models.Token
	s.Require().NoError(json.Unmarshal(body, &token))
	s.Equal(models.AccountID("alice.near"), token.OwnerID)
	s.Equal(uint64(1), token.Metadata.Copies)

	status, body = s.call(http.MethodGet, "/nft/total_supply", "", "")
	s.Equal(http.StatusOK, status)
	s.JSONEq(`"1"`, string(body))

	published, err := s.relay.Drain(context.Background())
	s.Require().NoError(err)
	s.Equal(1, published)
	s.Contains(s.events.String(), "nft_mint")
	s.Contains(s.events.String(), "first_badge:alice.near")

	published, err = s.relay.Drain(context.Background())
	s.Require().NoError(err)
	s.Zero(published)
}

func (s *RegistryFlowSuite) TestWritesNeedAModerator() {
	status, _ := s.call(http.MethodPost, "/badges", "", `{"badge_id":"first_badge"}`)
	s.Equal(http.StatusUnauthorized, status)

	status, _ = s.call(http.MethodPost, "/badges", s.anyToken, `{"badge_id":"first_badge"}`)
	s.Equal(http.StatusForbidden, status)

	status, body := s.call(http.MethodGet, "/badges", "", "")
	s.Equal(http.StatusOK, status)
	s.JSONEq(`[]`, string(body))
}

func (s *RegistryFlowSuite) TestViewsOfAnEmptyRegistry() {
	status, body := s.call(http.MethodGet, "/nft/metadata", "", "")
	s.Equal(http.StatusOK, status)
	var m models.ContractMetadata
	s.Require().NoError(json.Unmarshal(body, &m))
	s.Equal(models.MetadataSpec, m.Spec)

	status, _ = s.call(http.MethodGet, "/nft/tokens?limit=0", "", "")
	s.Equal(http.StatusBadRequest, status)

	status, body = s.call(http.MethodGet, "/nft/owners/nobody.near/tokens?from_index=5", "", "")
	s.Equal(http.StatusOK, status)
	s.JSONEq(`[]`, string(body))

	status, _ = s.call(http.MethodPost, "/nft/transfer", "", `{"receiver_id":"bob.near","token_id":"first_badge:alice.near"}`)
	s.Equal(http.StatusForbidden, status)
}
