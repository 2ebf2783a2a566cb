package media

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/modfolio/modfolio/internal/metrics"
	"github.com/modfolio/modfolio/internal/upstream"
)

const maxImageBytes = 4 << 20

// Options 配置 Normalizer。
type Options struct {
	Client    *http.Client
	UserAgent string
	Timeout   time.Duration
	Logger    *logrus.Logger
}

// Normalizer 下载远程图片并转成 data URI；同一 URL 的并发请求只下载一次。
type Normalizer struct {
	client    *http.Client
	userAgent string
	timeout   time.Duration
	logger    *logrus.Logger
	validate  *validator.Validate
	dedup     *upstream.Deduplicator[Image]
}

// NewNormalizer 创建 Normalizer；Client 为空时使用 upstream.NewHTTPClient。
func NewNormalizer(opts Options) *Normalizer {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	client := opts.Client
	if client == nil {
		client = upstream.NewHTTPClient(timeout)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Normalizer{
		client:    client,
		userAgent: opts.UserAgent,
		timeout:   timeout,
		logger:    logger,
		validate:  validator.New(),
		dedup:     upstream.NewDeduplicator[Image](),
	}
}

// Normalize 永远不会返回裸错误：任何失败都以 Transient Result 表示，由渲染层画占位图。
func (n *Normalizer) Normalize(ctx context.Context, rawURL string, wantsRaster bool) upstream.Result[Image] {
	if rawURL == "" {
		return upstream.Missing[Image]()
	}
	if err := n.validate.Var(rawURL, "required,url"); err != nil {
		metrics.ImageConversions.WithLabelValues("invalid_url").Inc()
		return upstream.Fail[Image](fmt.Errorf("invalid image url %q: %w", rawURL, err))
	}

	key := "image:" + rawURL + ":" + strconv.FormatBool(wantsRaster)
	img, err := n.dedup.DoContext(ctx, key, func() (Image, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
		defer cancel()
		return n.fetch(fetchCtx, rawURL, wantsRaster)
	})
	if err != nil {
		metrics.ImageConversions.WithLabelValues("failed").Inc()
		n.logger.WithFields(logrus.Fields{
			"action": "image_fetch_failed",
			"url":    rawURL,
			"error":  err.Error(),
		}).Warn("image normalization failed")
		return upstream.Fail[Image](err)
	}

	outcome := "passthrough"
	if img.ConversionTime > 0 {
		outcome = "converted"
	}
	metrics.ImageConversions.WithLabelValues(outcome).Inc()
	return upstream.Ok(img)
}

func (n *Normalizer) fetch(ctx context.Context, rawURL string, wantsRaster bool) (Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Image{}, err
	}
	if n.userAgent != "" {
		req.Header.Set("User-Agent", n.userAgent)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return Image{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxImageBytes))
		return Image{}, upstream.Upstream(resp.StatusCode, fmt.Sprintf("image fetch returned %d", resp.StatusCode), nil)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return Image{}, err
	}
	return Encode(data, wantsRaster)
}
