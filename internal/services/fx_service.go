package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	intconfig "sayarti/internal/config"
)

// fallbackRates covers the known pairs when the live service is unavailable.
// Any other pair degrades to the identity rate; that keeps amounts unchanged
// rather than accurate, so the degraded path is always logged.
var fallbackRates = map[[2]string]float64{
	{"SAR", "USD"}: 0.2667,
	{"USD", "SAR"}: 3.75,
}

// FxService resolves conversion rates against a remote rate endpoint with a
// static fallback. Rate never fails: the worst case is a usable default.
type FxService struct {
	BaseURL string
	Client  *http.Client
	Log     *logrus.Logger
}

func NewFxService(baseURL string, log *logrus.Logger) FxService {
	return FxService{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 4 * time.Second},
		Log:     log,
	}
}

// Rate returns a positive conversion factor from base to target. Equal codes
// short-circuit to 1.0 with no network call.
func (s FxService) Rate(base, target string) float64 {
	base = normalizeCurrency(base)
	target = normalizeCurrency(target)
	if base == target {
		return 1.0
	}

	if rate, err := s.liveRate(base, target); err == nil {
		return rate
	} else {
		s.logger().WithFields(logrus.Fields{
			"module": "fx",
			"base":   base,
			"target": target,
			"reason": err.Error(),
		}).Warn("live rate lookup failed, using fallback")
	}

	if rate, ok := fallbackRates[[2]string{base, target}]; ok {
		return rate
	}

	s.logger().WithFields(logrus.Fields{
		"module": "fx",
		"base":   base,
		"target": target,
		"reason": "pair not in fallback table",
	}).Warn("returning identity rate, amounts are NOT converted")
	return 1.0
}

func (s FxService) liveRate(base, target string) (float64, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 4 * time.Second}
	}

	endpoint := fmt.Sprintf("%s/convert?from=%s&to=%s",
		s.BaseURL, url.QueryEscape(base), url.QueryEscape(target))

	resp, err := client.Get(endpoint)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("rate service status %d", resp.StatusCode)
	}

	var body struct {
		Result float64 `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("malformed rate response: %w", err)
	}
	if body.Result <= 0 {
		return 0, fmt.Errorf("rate response missing result")
	}
	return body.Result, nil
}

func (s FxService) logger() *logrus.Logger {
	if s.Log != nil {
		return s.Log
	}
	return intconfig.GetLogger()
}

func normalizeCurrency(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "SAR"
	}
	return code
}
