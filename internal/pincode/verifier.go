package pincode

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shiplogix/shipping-service/internal/config"
)

var lookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "shipping_service",
	Subsystem: "pincode",
	Name:      "lookups_total",
	Help:      "Total number of external pincode lookups by outcome.",
}, []string{"outcome"})

type Verifier struct {
	logger  *slog.Logger
	client  *http.Client
	baseURL string
	country string
}

func NewVerifier(logger *slog.Logger, cfg config.Pincode) *Verifier {
	return &Verifier{
		logger:  logger.With(slog.String("component", "pincode_verifier")),
		client:  &http.Client{Timeout: cfg.LookupTimeout},
		baseURL: cfg.LookupBaseURL,
		country: cfg.CountryCode,
	}
}

// Verify reports whether pincode identifies a real postal area. Malformed
// input is rejected without touching the network. Any lookup failure,
// including timeouts, counts as invalid: the caller cannot tell "service
// down" from "pincode nonexistent" and must fail fast either way.
func (v *Verifier) Verify(ctx context.Context, pincode string) bool {
	if !ValidFormat(pincode) {
		return false
	}

	url := fmt.Sprintf("%s/%s/%s", v.baseURL, v.country, pincode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		v.logger.Error("failed to build lookup request", slog.Any("error", err))
		lookupsTotal.WithLabelValues("error").Inc()
		return false
	}

	res, err := v.client.Do(req)
	if err != nil {
		v.logger.Debug("pincode lookup failed", slog.String("pincode", pincode), slog.Any("error", err))
		lookupsTotal.WithLabelValues("error").Inc()
		return false
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		lookupsTotal.WithLabelValues("not_found").Inc()
		return false
	}

	lookupsTotal.WithLabelValues("ok").Inc()
	return true
}
