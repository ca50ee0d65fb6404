// Package mediahost 对接外部媒体托管服务（ImageKit 兼容的 REST API）
package mediahost

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/pinora-app/pinora-backend/domain"
	"github.com/pinora-app/pinora-backend/logging"
	"github.com/pinora-app/pinora-backend/metrics"
)

const breakerName = "media-host"

type Config struct {
	Endpoint   string
	PrivateKey string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client 通过 HTTP 删除托管文件，调用经过熔断器保护
type Client struct {
	endpoint   string
	privateKey string
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker[struct{}]
}

// New 未配置私钥时返回 Noop，便于本地开发
func New(cfg Config) domain.MediaHost {
	if strings.TrimSpace(cfg.PrivateKey) == "" {
		logging.Warn().Msg("media host private key not configured, hosted files will not be deleted")
		return Noop{}
	}
	return NewClient(cfg)
}

func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	metrics.MediaHostCircuitState.Set(stateToFloat(gobreaker.StateClosed))

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// 调用方取消或参数错误不计入失败
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, context.Canceled) ||
				errors.Is(err, domain.ErrInvalidArgument)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state transition")
			metrics.MediaHostCircuitState.Set(stateToFloat(to))
		},
	})

	return &Client{
		endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		privateKey: cfg.PrivateKey,
		httpClient: httpClient,
		cb:         cb,
	}
}

// DeleteFile 删除托管文件；文件已不存在视为成功
func (c *Client) DeleteFile(ctx context.Context, fileID string) error {
	fileID = strings.TrimSpace(fileID)
	if fileID == "" {
		return fmt.Errorf("%w: file id is required", domain.ErrInvalidArgument)
	}

	_, err := c.cb.Execute(func() (struct{}, error) {
		return struct{}{}, c.deleteFile(ctx, fileID)
	})

	switch {
	case err == nil:
		metrics.MediaHostRequests.WithLabelValues("delete", "ok").Inc()
		return nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.MediaHostRequests.WithLabelValues("delete", "circuit_open").Inc()
		logging.Ctx(ctx).Warn().Err(err).Str("file_id", fileID).Msg("media host request rejected")
		return fmt.Errorf("%w: media host unavailable: %w", domain.ErrInternal, err)
	default:
		metrics.MediaHostRequests.WithLabelValues("delete", "error").Inc()
		if errors.Is(err, domain.ErrInvalidArgument) || errors.Is(err, domain.ErrInternal) {
			return err
		}
		return fmt.Errorf("%w: media host delete failed: %w", domain.ErrInternal, err)
	}
}

func (c *Client) deleteFile(ctx context.Context, fileID string) error {
	reqURL := c.endpoint + "/files/" + url.PathEscape(fileID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("%w: build request: %w", domain.ErrInternal, err)
	}
	req.SetBasicAuth(c.privateKey, "")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		logging.Ctx(ctx).Warn().Str("file_id", fileID).Msg("hosted file already gone")
		return nil
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: media host returned %d: %s",
			domain.ErrInternal, resp.StatusCode, strings.TrimSpace(string(body)))
	}
}

func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

// Noop 不做任何远程调用
type Noop struct{}

func (Noop) DeleteFile(ctx context.Context, fileID string) error {
	logging.Ctx(ctx).Debug().Str("file_id", fileID).Msg("media host disabled, skipping delete")
	return nil
}
