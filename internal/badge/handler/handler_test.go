package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"badgeregistry/internal/badge/handler/mocks"
	"badgeregistry/internal/badge/models"
	"badgeregistry/internal/platform/middleware"
	dErrors "badgeregistry/pkg/domain-errors"
	"badgeregistry/pkg/testutil"
)

const moderatorToken = "moderator-token"

type stubValidator struct{}

func (stubValidator) ValidateToken(token string) (*middleware.JWTClaims, error) {
	if token != moderatorToken {
		return nil, dErrors.New(dErrors.CodeUnauthenticated, "invalid token")
	}
	return &middleware.JWTClaims{AccountID: "mod.near"}, nil
}

type HandlerSuite struct {
	suite.Suite
	service *mocks.MockService
	router  chi.Router
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.service = mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.router = chi.NewRouter()
	New(s.service, logger, nil, stubValidator{}).Register(s.router)
}

func (s *HandlerSuite) do(method, target, body string, authed bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+moderatorToken)
	}
	return testutil.DoRequest(s.router, req)
}

func (s *HandlerSuite) errorCode(rec *httptest.ResponseRecorder) string {
	return testutil.UnmarshalErrorResponse(s.T(), rec)["error"]
}

func strPtr(v string) *string { return &v }

func (s *HandlerSuite) TestMintBadge() {
	s.Run("requires a bearer token", func() {
		rec := s.do(http.MethodPost, "/badges", `{"badge_id":"first_badge"}`, false)
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Equal("unauthenticated", s.errorCode(rec))
	})

	s.Run("passes the token account as caller", func() {
		s.service.EXPECT().Mint(gomock.Any(), models.AccountID("mod.near"), &models.MintBadgeRequest{
			BadgeID:       "first_badge",
			BadgeMetadata: models.BadgeMetadata{Title: strPtr("First")},
		}).Return(models.NewBadge("first_badge", models.BadgeMetadata{Title: strPtr("First")}), nil)

		rec := s.do(http.MethodPost, "/badges", `{"badge_id":"first_badge","badge_metadata":{"title":"First"}}`, true)
		s.Equal(http.StatusCreated, rec.Code)

		badge := testutil.UnmarshalResponse[models.Badge](s.T(), rec)
		s.Equal(models.BadgeID("first_badge"), badge.ID)
		s.Equal(uint64(0), badge.Metadata.Copies)
	})

	s.Run("non-moderator is forbidden", func() {
		s.service.EXPECT().Mint(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeUnauthorized, "Not authorized"))

		rec := s.do(http.MethodPost, "/badges", `{"badge_id":"first_badge"}`, true)
		s.Equal(http.StatusForbidden, rec.Code)
		s.Equal("unauthorized", s.errorCode(rec))
	})

	s.Run("duplicate badge conflicts", func() {
		s.service.EXPECT().Mint(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeDuplicateBadge, "Badge with that ID already exists"))

		rec := s.do(http.MethodPost, "/badges", `{"badge_id":"first_badge"}`, true)
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("malformed body", func() {
		rec := s.do(http.MethodPost, "/badges", `{"badge_id":`, true)
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("bad_request", s.errorCode(rec))
	})

	s.Run("non-json content type", func() {
		req := httptest.NewRequest(http.MethodPost, "/badges", strings.NewReader("badge_id=x"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Authorization", "Bearer "+moderatorToken)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		s.Equal(http.StatusUnsupportedMediaType, rec.Code)
	})
}

func (s *HandlerSuite) TestReward() {
	s.Run("returns the token id", func() {
		s.service.EXPECT().Reward(gomock.Any(), models.AccountID("mod.near"), "first_badge", &models.RewardRequest{
			ReceiverAccountID: "alice.near",
			Memo:              strPtr("welcome"),
		}).Return(models.TokenID("first_badge:alice.near"), nil)

		rec := s.do(http.MethodPost, "/badges/first_badge/rewards", `{"receiver_account_id":"alice.near","memo":"welcome"}`, true)
		s.Equal(http.StatusCreated, rec.Code)
		s.JSONEq(`{"token_id":"first_badge:alice.near"}`, rec.Body.String())
	})

	s.Run("escaped badge id is decoded", func() {
		s.service.EXPECT().Reward(gomock.Any(), gomock.Any(), "badge with spaces", gomock.Any()).
			Return(models.TokenID("badge with spaces:alice"), nil)

		rec := s.do(http.MethodPost, "/badges/badge%20with%20spaces/rewards", `{"receiver_account_id":"alice"}`, true)
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("already awarded conflicts", func() {
		s.service.EXPECT().Reward(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.TokenID(""), dErrors.New(dErrors.CodeAlreadyAwarded, "Badge already awarded to this account"))

		rec := s.do(http.MethodPost, "/badges/first_badge/rewards", `{"receiver_account_id":"alice"}`, true)
		testutil.AssertStatusAndError(s.T(), rec, http.StatusConflict, "already_awarded")
	})

	s.Run("unknown badge", func() {
		s.service.EXPECT().Reward(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(models.TokenID(""), dErrors.New(dErrors.CodeUnknownBadge, "Badge with this ID doesn't exist"))

		rec := s.do(http.MethodPost, "/badges/nope/rewards", `{"receiver_account_id":"alice"}`, true)
		s.Equal(http.StatusNotFound, rec.Code)
		s.Equal("unknown_badge", s.errorCode(rec))
	})

	s.Run("invalid token", func() {
		req := httptest.NewRequest(http.MethodPost, "/badges/first_badge/rewards", strings.NewReader(`{"receiver_account_id":"alice"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer forged")
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *HandlerSuite) TestBadgeViews() {
	s.Run("get badge", func() {
		s.service.EXPECT().GetBadge(gomock.Any(), "first_badge").
			Return(models.NewBadge("first_badge", models.BadgeMetadata{}), nil)

		rec := s.do(http.MethodGet, "/badges/first_badge", "", false)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("absent badge is not found", func() {
		s.service.EXPECT().GetBadge(gomock.Any(), "nope").Return(nil, nil)

		rec := s.do(http.MethodGet, "/badges/nope", "", false)
		s.Equal(http.StatusNotFound, rec.Code)
		s.Equal("not_found", s.errorCode(rec))
	})

	s.Run("percent sign in badge id is looked up verbatim", func() {
		s.service.EXPECT().GetBadge(gomock.Any(), "100%").
			Return(models.NewBadge("100%", models.BadgeMetadata{}), nil)

		rec := s.do(http.MethodGet, "/badges/100%25", "", false)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("escaped slash in badge id is decoded", func() {
		s.service.EXPECT().GetBadge(gomock.Any(), "a/b").
			Return(models.NewBadge("a/b", models.BadgeMetadata{}), nil)

		rec := s.do(http.MethodGet, "/badges/a%2Fb", "", false)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("empty catalog renders an empty array", func() {
		s.service.EXPECT().ListBadges(gomock.Any(), models.PageRequest{}).Return(nil, nil)

		rec := s.do(http.MethodGet, "/badges", "", false)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})
}

func (s *HandlerSuite) TestTokenViews() {
	badge := models.NewBadge("first_badge", models.BadgeMetadata{})
	badge.Metadata.Copies = 1
	token := models.NewToken(badge, "alice")

	s.Run("get token", func() {
		s.service.EXPECT().GetToken(gomock.Any(), "first_badge:alice").Return(&token, nil)

		rec := s.do(http.MethodGet, "/nft/tokens/first_badge:alice", "", false)
		s.Equal(http.StatusOK, rec.Code)

		var resp map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal("first_badge:alice", resp["token_id"])
		s.Equal("alice", resp["owner_id"])
		s.Nil(resp["approved_account_ids"])
	})

	s.Run("absent token is not found", func() {
		s.service.EXPECT().GetToken(gomock.Any(), "first_badge:bob").Return(nil, nil)

		rec := s.do(http.MethodGet, "/nft/tokens/first_badge:bob", "", false)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("total supply is a decimal string", func() {
		s.service.EXPECT().TotalSupply(gomock.Any()).Return(uint64(3), nil)

		rec := s.do(http.MethodGet, "/nft/total_supply", "", false)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`"3"`, rec.Body.String())
	})

	s.Run("list tokens forwards the page", func() {
		limit := uint64(2)
		s.service.EXPECT().ListTokens(gomock.Any(), models.PageRequest{FromIndex: 1, Limit: &limit}).
			Return([]models.Token{token}, nil)

		rec := s.do(http.MethodGet, "/nft/tokens?from_index=1&limit=2", "", false)
		s.Equal(http.StatusOK, rec.Code)

		var tokens []models.Token
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &tokens))
		s.Len(tokens, 1)
	})

	s.Run("service range errors are bad requests", func() {
		s.service.EXPECT().ListTokens(gomock.Any(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeOutOfRange, "out of bounds, please use a smaller from_index"))

		rec := s.do(http.MethodGet, "/nft/tokens?from_index=9", "", false)
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("out_of_range", s.errorCode(rec))
	})

	s.Run("unparseable paging never reaches the service", func() {
		for _, q := range []string{"limit=abc", "limit=-1", "from_index=1.5", "from_index=-2"} {
			rec := s.do(http.MethodGet, "/nft/tokens?"+q, "", false)
			s.Equal(http.StatusBadRequest, rec.Code, q)
			s.Equal("bad_request", s.errorCode(rec), q)
		}
	})

	s.Run("owner supply and tokens", func() {
		s.service.EXPECT().SupplyForOwner(gomock.Any(), "alice").Return(uint64(1), nil)
		s.service.EXPECT().ListTokensForOwner(gomock.Any(), "carol", models.PageRequest{}).Return(nil, nil)

		rec := s.do(http.MethodGet, "/nft/owners/alice/supply", "", false)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`"1"`, rec.Body.String())

		rec = s.do(http.MethodGet, "/nft/owners/carol/tokens", "", false)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("invalid owner", func() {
		s.service.EXPECT().SupplyForOwner(gomock.Any(), "Alice").
			Return(uint64(0), dErrors.New(dErrors.CodeInvalidOwnerIdentity, "invalid account id"))

		rec := s.do(http.MethodGet, "/nft/owners/Alice/supply", "", false)
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("invalid_owner_identity", s.errorCode(rec))
	})
}

func (s *HandlerSuite) TestContractMetadata() {
	m := models.DefaultContractMetadata()
	s.service.EXPECT().ContractMetadata(gomock.Any()).Return(&m, nil)

	rec := s.do(http.MethodGet, "/nft/metadata", "", false)
	s.Equal(http.StatusOK, rec.Code)

	var resp map[string]any
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("nft-1.0.0", resp["spec"])
	s.Contains(resp, "icon")
	s.Nil(resp["icon"])
}

func (s *HandlerSuite) TestTransfersAreRejected() {
	disabled := dErrors.New(dErrors.CodeTransfersDisabled, "NFT transfers is not allowed for badges")
	s.service.EXPECT().Transfer(gomock.Any(), gomock.Any()).Return(disabled)
	s.service.EXPECT().TransferCall(gomock.Any(), gomock.Any()).Return(disabled)
	s.service.EXPECT().ResolveTransfer(gomock.Any(), gomock.Any()).Return(disabled)

	for _, path := range []string{"/nft/transfer", "/nft/transfer_call", "/nft/resolve_transfer"} {
		rec := s.do(http.MethodPost, path, `{"receiver_id":"bob","token_id":"first_badge:alice"}`, false)
		s.Equal(http.StatusForbidden, rec.Code, path)

		var resp map[string]string
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal("transfers_disabled", resp["error"])
		s.Equal("NFT transfers is not allowed for badges", resp["error_description"])
	}
}

func (s *HandlerSuite) TestTransfersAreRejectedWhateverTheBody() {
	disabled := dErrors.New(dErrors.CodeTransfersDisabled, "NFT transfers is not allowed for badges")

	cases := []struct {
		name        string
		path        string
		body        string
		contentType string
	}{
		{name: "truncated json", path: "/nft/transfer", body: `{`, contentType: "application/json"},
		{name: "not json", path: "/nft/transfer_call", body: `not json`, contentType: "application/json"},
		{name: "plain text", path: "/nft/resolve_transfer", body: `hello`, contentType: "text/plain"},
		{name: "empty body", path: "/nft/transfer", body: ``, contentType: ""},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			switch tc.path {
			case "/nft/transfer":
				s.service.EXPECT().Transfer(gomock.Any(), gomock.Any()).Return(disabled)
			case "/nft/transfer_call":
				s.service.EXPECT().TransferCall(gomock.Any(), gomock.Any()).Return(disabled)
			default:
				s.service.EXPECT().ResolveTransfer(gomock.Any(), gomock.Any()).Return(disabled)
			}

			req := httptest.NewRequest(http.MethodPost, tc.path, strings.NewReader(tc.body))
			if tc.contentType != "" {
				req.Header.Set("Content-Type", tc.contentType)
			}
			rec := testutil.DoRequest(s.router, req)
			testutil.AssertStatusAndError(s.T(), rec, http.StatusForbidden, "transfers_disabled")
		})
	}
}

func (s *HandlerSuite) TestInternalErrorsHideDetails() {
	s.service.EXPECT().TotalSupply(gomock.Any()).Return(uint64(0), errors.New("connection refused"))

	rec := s.do(http.MethodGet, "/nft/total_supply", "", false)
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "connection refused")
}

func (s *HandlerSuite) TestRequestIDIsEchoed() {
	s.service.EXPECT().TotalSupply(gomock.Any()).Return(uint64(0), nil)

	req := httptest.NewRequest(http.MethodGet, "/nft/total_supply", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-123")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	s.Equal("req-123", rec.Header().Get(middleware.RequestIDHeader))
}
