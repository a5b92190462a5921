package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aabb-jequie/app-inscricao/internal/config"
	"github.com/aabb-jequie/app-inscricao/internal/logging"
	"github.com/aabb-jequie/app-inscricao/internal/models"
	"github.com/aabb-jequie/app-inscricao/internal/observability"
	"github.com/aabb-jequie/app-inscricao/internal/utils"
	"github.com/aabb-jequie/app-inscricao/internal/utils/httpclient"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const cepCachePrefix = "cep:"

// viaCEPResponse is the ViaCEP JSON body. An unknown CEP comes back with
// "erro" set to true (or "true" in newer API versions).
type viaCEPResponse struct {
	CEP        string          `json:"cep"`
	Logradouro string          `json:"logradouro"`
	Bairro     string          `json:"bairro"`
	Localidade string          `json:"localidade"`
	UF         string          `json:"uf"`
	Erro       json.RawMessage `json:"erro,omitempty"`
}

func (r *viaCEPResponse) notFound() bool {
	switch strings.Trim(string(r.Erro), `"`) {
	case "", "false":
		return false
	}
	return true
}

// CEPService resolves postal codes through ViaCEP with a shared cache.
type CEPService struct {
	baseURL    string
	httpClient *http.Client
	cache      KeyValueStore
	ttl        time.Duration
	limiter    *RateLimiter
	group      singleflight.Group
	logger     *logging.SafeLogger
}

// NewCEPService creates the lookup service. cache may be nil.
func NewCEPService(baseURL string, httpClient *http.Client, cache KeyValueStore, ttl time.Duration, logger *logging.SafeLogger) *CEPService {
	return &CEPService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		cache:      cache,
		ttl:        ttl,
		logger:     logger,
	}
}

// SetLimiter caps the requests sent to ViaCEP. Cache hits are not counted.
func (s *CEPService) SetLimiter(l *RateLimiter) {
	s.limiter = l
}

// Global CEP service instance
var CEPServiceInstance *CEPService

// InitCEPService builds the global lookup service. cache may be nil.
func InitCEPService(cache KeyValueStore, logger *logging.SafeLogger) {
	cfg := config.AppConfig
	CEPServiceInstance = NewCEPService(cfg.ViaCEPBaseURL, httpclient.New(cfg.CEPTimeout), cache, cfg.CEPCacheTTL, logger.Named("cep"))
	if cfg.CEPRateLimit > 0 {
		CEPServiceInstance.SetLimiter(PerMinute(cfg.CEPRateLimit, logger.Named("viacep_limiter")))
	}
	logger.Info("cep service initialized",
		zap.String("base_url", cfg.ViaCEPBaseURL),
		zap.Duration("cache_ttl", cfg.CEPCacheTTL),
		zap.Int("rate_limit_per_minute", cfg.CEPRateLimit))
}

// Lookup returns the address of a complete CEP. It fails with
// models.ErrInvalidCEP for anything but 8 digits and models.ErrCEPNotFound
// when ViaCEP has no record. Concurrent lookups of one CEP share a request;
// models.ErrRateLimited means the upstream budget is spent.
func (s *CEPService) Lookup(ctx context.Context, cep string) (*models.CEPAddress, error) {
	digits := utils.DigitsOnly(cep)
	if len(digits) != 8 {
		return nil, models.ErrInvalidCEP
	}
	key := cepCachePrefix + digits

	// Try to get from cache first with tracing
	if addr, ok := s.fromCache(ctx, key); ok {
		return addr, nil
	}

	// Fetch from ViaCEP once per CEP and cache the result
	v, err, shared := s.group.Do(digits, func() (interface{}, error) {
		addr, err := s.fetch(context.WithoutCancel(ctx), digits)
		if err != nil {
			return nil, err
		}
		s.toCache(ctx, key, addr)
		return addr, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("cep lookup shared with concurrent caller", zap.String("cep", digits))
	}

	addr := *v.(*models.CEPAddress)
	return &addr, nil
}

func (s *CEPService) fromCache(ctx context.Context, key string) (*models.CEPAddress, bool) {
	if s.cache == nil {
		return nil, false
	}
	ctx, span := utils.TraceCacheGet(ctx, key)
	defer span.End()

	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, models.ErrCacheMiss) {
			s.logger.Warn("cep cache read failed", zap.String("key", key), zap.Error(err))
		}
		observability.CacheHits.WithLabelValues("cep_lookup", "miss").Inc()
		return nil, false
	}

	var addr models.CEPAddress
	if err := json.Unmarshal([]byte(raw), &addr); err != nil {
		s.logger.Warn("discarding unreadable cep cache entry", zap.String("key", key), zap.Error(err))
		observability.CacheHits.WithLabelValues("cep_lookup", "miss").Inc()
		return nil, false
	}
	observability.CacheHits.WithLabelValues("cep_lookup", "hit").Inc()
	return &addr, true
}

func (s *CEPService) toCache(ctx context.Context, key string, addr *models.CEPAddress) {
	if s.cache == nil {
		return
	}
	ctx, span := utils.TraceCacheSet(ctx, key, s.ttl)
	defer span.End()

	raw, err := json.Marshal(addr)
	if err == nil {
		err = s.cache.Set(ctx, key, string(raw), s.ttl)
	}
	if err != nil {
		s.logger.Warn("cep cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *CEPService) fetch(ctx context.Context, digits string) (*models.CEPAddress, error) {
	// Cache misses spend the upstream budget
	if s.limiter != nil && !s.limiter.Allow("viacep") {
		return nil, models.ErrRateLimited
	}
	ctx, span := utils.TraceExternalService(ctx, "viacep", "lookup")
	defer span.End()
	start := time.Now()

	addr, err := s.request(ctx, digits)

	status := "success"
	switch {
	case errors.Is(err, models.ErrCEPNotFound):
		status = "not_found"
	case err != nil:
		status = "error"
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"cep": digits})
	}
	// Update metrics
	observability.ExternalLookupDuration.WithLabelValues("viacep", status).Observe(time.Since(start).Seconds())
	utils.AddTimingToSpan(span, start)
	return addr, err
}

func (s *CEPService) request(ctx context.Context, digits string) (*models.CEPAddress, error) {
	url := fmt.Sprintf("%s/%s/json/", s.baseURL, digits)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build viacep request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("viacep request failed: %w", err)
	}
	defer resp.Body.Close()

	// 400 is ViaCEP's answer for codes it cannot parse.
	if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound {
		return nil, models.ErrCEPNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("viacep returned status %d", resp.StatusCode)
	}

	// Parse response
	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode viacep response: %w", err)
	}
	if body.notFound() {
		return nil, models.ErrCEPNotFound
	}

	return &models.CEPAddress{
		CEP:          utils.FormatCEP(digits),
		Street:       body.Logradouro,
		Neighborhood: body.Bairro,
		City:         body.Localidade,
		State:        body.UF,
	}, nil
}
