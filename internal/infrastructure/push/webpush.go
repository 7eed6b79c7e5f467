package push

import (
	"context"
	"fmt"
	"net/http"
	"time"

	webpush "github.com/SherClockHolmes/webpush-go"
	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/FutDrafts/futdrafts.com-sub001/internal/domain/notification"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/platform/logging"
	"github.com/FutDrafts/futdrafts.com-sub001/internal/usecase"
)

type Config struct {
	VAPIDPublicKey  string
	VAPIDPrivateKey string
	Subscriber      string
	TTL             time.Duration
}

// WebPushSender delivers draft notifications over the Web Push protocol.
type WebPushSender struct {
	cfg    Config
	logger *logging.Logger
}

func NewWebPushSender(cfg Config, logger *logging.Logger) *WebPushSender {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 5 * time.Minute
	}
	return &WebPushSender{cfg: cfg, logger: logger}
}

func (s *WebPushSender) Send(ctx context.Context, sub notification.PushSubscription, payload usecase.PushPayload) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	encoded, err := jsoniter.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal push payload: %w", err)
	}
	if _, err := buf.Write(encoded); err != nil {
		return fmt.Errorf("buffer push payload: %w", err)
	}

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("push.endpoint", sub.Endpoint),
			attribute.Int("push.payload_bytes", buf.Len()),
		)
	}

	resp, err := webpush.SendNotificationWithContext(ctx, buf.Bytes(), &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256DH,
			Auth:   sub.Auth,
		},
	}, &webpush.Options{
		Subscriber:      s.cfg.Subscriber,
		VAPIDPublicKey:  s.cfg.VAPIDPublicKey,
		VAPIDPrivateKey: s.cfg.VAPIDPrivateKey,
		TTL:             int(s.cfg.TTL.Seconds()),
	})
	if err != nil {
		return fmt.Errorf("send web push: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return fmt.Errorf("endpoint status %d: %w", resp.StatusCode, notification.ErrSubscriptionGone)
	case resp.StatusCode >= http.StatusBadRequest:
		return fmt.Errorf("web push rejected with status %d", resp.StatusCode)
	}

	return nil
}
