package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"badgeregistry/internal/badge/models"
	"badgeregistry/internal/platform/metrics"
	"badgeregistry/internal/platform/middleware"
	dErrors "badgeregistry/pkg/domain-errors"
	"badgeregistry/pkg/platform/httputil"
	"badgeregistry/pkg/platform/middleware/metadata"
	"badgeregistry/pkg/platform/middleware/requesttime"
	"badgeregistry/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/handler_mock.go -package=mocks Service

// Service defines the badge registry operations exposed over HTTP.
type Service interface {
	Mint(ctx context.Context, caller models.AccountID, req *models.MintBadgeRequest) (*models.Badge, error)
	Reward(ctx context.Context, caller models.AccountID, badgeID string, req *models.RewardRequest) (models.TokenID, error)
	Transfer(ctx context.Context, req *models.TransferRequest) error
	TransferCall(ctx context.Context, req *models.TransferRequest) error
	ResolveTransfer(ctx context.Context, req *models.TransferRequest) error

	GetBadge(ctx context.Context, id string) (*models.Badge, error)
	ListBadges(ctx context.Context, page models.PageRequest) ([]*models.Badge, error)
	GetToken(ctx context.Context, tokenID string) (*models.Token, error)
	TotalSupply(ctx context.Context) (uint64, error)
	ListTokens(ctx context.Context, page models.PageRequest) ([]models.Token, error)
	SupplyForOwner(ctx context.Context, owner string) (uint64, error)
	ListTokensForOwner(ctx context.Context, owner string, page models.PageRequest) ([]models.Token, error)
	ContractMetadata(ctx context.Context) (*models.ContractMetadata, error)
}

const defaultRequestTimeout = 30 * time.Second

// Handler serves the badge catalog, the award ledger and the token views.
type Handler struct {
	service        Service
	logger         *slog.Logger
	metrics        *metrics.Metrics
	jwtValidator   middleware.JWTValidator
	requestTimeout time.Duration
}

type Option func(*Handler)

// WithRequestTimeout overrides the per-request deadline.
func WithRequestTimeout(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 {
			h.requestTimeout = d
		}
	}
}

func New(service Service, logger *slog.Logger, m *metrics.Metrics, jwtValidator middleware.JWTValidator, opts ...Option) *Handler {
	h := &Handler{
		service:        service,
		logger:         logger,
		metrics:        m,
		jwtValidator:   jwtValidator,
		requestTimeout: defaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register mounts the registry routes. Only the two writes require a bearer
// token; every view is public.
func (h *Handler) Register(r chi.Router) {
	router := chi.NewRouter()
	router.Use(middleware.Recovery(h.logger))
	router.Use(middleware.RequestID)
	router.Use(requesttime.Middleware)
	router.Use(metadata.ClientMetadata)
	router.Use(middleware.Logger(h.logger))
	router.Use(middleware.Timeout(h.requestTimeout))
	router.Use(middleware.LatencyMiddleware(h.metrics))

	router.Route("/badges", func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		r.Get("/", h.handleListBadges)
		r.Get("/{badgeID}", h.handleGetBadge)
		r.With(middleware.RequireAuth(h.jwtValidator, h.logger)).Post("/", h.handleMintBadge)
		r.With(middleware.RequireAuth(h.jwtValidator, h.logger)).Post("/{badgeID}/rewards", h.handleReward)
	})

	router.Route("/nft", func(r chi.Router) {
		r.Get("/tokens", h.handleListTokens)
		r.Get("/tokens/{tokenID}", h.handleGetToken)
		r.Get("/total_supply", h.handleTotalSupply)
		r.Get("/owners/{accountID}/tokens", h.handleListTokensForOwner)
		r.Get("/owners/{accountID}/supply", h.handleSupplyForOwner)
		r.Get("/metadata", h.handleContractMetadata)
		// Transfers fail whatever the body, so they skip content negotiation.
		r.Post("/transfer", h.transferHandler("nft_transfer", h.service.Transfer))
		r.Post("/transfer_call", h.transferHandler("nft_transfer_call", h.service.TransferCall))
		r.Post("/resolve_transfer", h.transferHandler("nft_resolve_transfer", h.service.ResolveTransfer))
	})

	r.Mount("/", router)
}

type rewardResponse struct {
	TokenID models.TokenID `json:"token_id"`
}

func (h *Handler) handleMintBadge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.MintBadgeRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.logger.WarnContext(ctx, "invalid mint badge request",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	badge, err := h.service.Mint(ctx, h.caller(ctx), &req)
	if err != nil {
		h.writeError(ctx, w, "mint_badge", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, badge)
}

func (h *Handler) handleReward(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	badgeID, err := pathParam(r, "badgeID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	var req models.RewardRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.logger.WarnContext(ctx, "invalid reward request",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	tokenID, err := h.service.Reward(ctx, h.caller(ctx), badgeID, &req)
	if err != nil {
		h.writeError(ctx, w, "reward", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, rewardResponse{TokenID: tokenID})
}

func (h *Handler) handleGetBadge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	badgeID, err := pathParam(r, "badgeID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	badge, err := h.service.GetBadge(ctx, badgeID)
	if err != nil {
		h.writeError(ctx, w, "get_badge", err)
		return
	}
	if badge == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "badge not found"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, badge)
}

func (h *Handler) handleListBadges(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page, err := parsePage(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	badges, err := h.service.ListBadges(ctx, page)
	if err != nil {
		h.writeError(ctx, w, "get_badges", err)
		return
	}
	if badges == nil {
		badges = []*models.Badge{}
	}
	httputil.WriteJSON(w, http.StatusOK, badges)
}

func (h *Handler) handleGetToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tokenID, err := pathParam(r, "tokenID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	token, err := h.service.GetToken(ctx, tokenID)
	if err != nil {
		h.writeError(ctx, w, "nft_token", err)
		return
	}
	if token == nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "token not found"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, token)
}

func (h *Handler) handleTotalSupply(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	n, err := h.service.TotalSupply(ctx)
	if err != nil {
		h.writeError(ctx, w, "nft_total_supply", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, strconv.FormatUint(n, 10))
}

func (h *Handler) handleListTokens(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page, err := parsePage(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	tokens, err := h.service.ListTokens(ctx, page)
	if err != nil {
		h.writeError(ctx, w, "nft_tokens", err)
		return
	}
	writeTokens(w, tokens)
}

func (h *Handler) handleSupplyForOwner(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	owner, err := pathParam(r, "accountID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	n, err := h.service.SupplyForOwner(ctx, owner)
	if err != nil {
		h.writeError(ctx, w, "nft_supply_for_owner", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, strconv.FormatUint(n, 10))
}

func (h *Handler) handleListTokensForOwner(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	owner, err := pathParam(r, "accountID")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	page, err := parsePage(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	tokens, err := h.service.ListTokensForOwner(ctx, owner, page)
	if err != nil {
		h.writeError(ctx, w, "nft_tokens_for_owner", err)
		return
	}
	writeTokens(w, tokens)
}

func (h *Handler) handleContractMetadata(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	m, err := h.service.ContractMetadata(ctx)
	if err != nil {
		h.writeError(ctx, w, "nft_metadata", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, m)
}

func (h *Handler) transferHandler(op string, call func(context.Context, *models.TransferRequest) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		var req models.TransferRequest
		if err := httputil.DecodeJSON(r, &req); err != nil {
			h.logger.DebugContext(ctx, "undecodable transfer body",
				"request_id", middleware.GetRequestID(ctx),
				"operation", op,
				"error", err,
			)
		}
		if err := call(ctx, &req); err != nil {
			h.writeError(ctx, w, op, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *Handler) caller(ctx context.Context) models.AccountID {
	return models.AccountID(requestcontext.AccountID(ctx))
}

// writeError logs server-side failures at error level and rejections at
// warn, then renders the coded error.
func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, op string, err error) {
	code := dErrors.CodeOf(err)
	attrs := []any{
		"request_id", middleware.GetRequestID(ctx),
		"operation", op,
		"code", string(code),
		"error", err,
	}
	switch code {
	case dErrors.CodeInternal, dErrors.CodeInvariantViolation, dErrors.CodeTimeout:
		h.logger.ErrorContext(ctx, "request failed", attrs...)
	default:
		h.logger.WarnContext(ctx, "request rejected", attrs...)
	}
	httputil.WriteError(w, err)
}

func writeTokens(w http.ResponseWriter, tokens []models.Token) {
	if tokens == nil {
		tokens = []models.Token{}
	}
	httputil.WriteJSON(w, http.StatusOK, tokens)
}

// pathParam returns a decoded path parameter. chi matches against RawPath
// when the request carries one, and only then is the value still escaped.
func pathParam(r *http.Request, name string) (string, error) {
	v := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return v, nil
	}
	v, err := url.PathUnescape(v)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeBadRequest, "invalid "+name)
	}
	return v, nil
}
