package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"

	"github.com/diwise/template-broker/pkg/templates"
	"github.com/diwise/template-broker/pkg/types/instances"
	"github.com/diwise/template-broker/pkg/types/notifications"
)

//go:generate moq -rm -out notifier_mock.go . Notifier

type Notifier interface {
	Start() error
	Stop() error

	InstanceCreated(ctx context.Context, instance *instances.Instance)
	InstanceUpdated(ctx context.Context, instance *instances.Instance)
	TemplateCreated(ctx context.Context, template *templates.Template)
}

var tracer = otel.Tracer("template-broker/notifier")

type action func()

const (
	queueSize   int           = 32
	postTimeout time.Duration = 10 * time.Second
)

type notifier struct {
	started  atomic.Bool
	endpoint string

	httpClient http.Client
	queue      chan action
}

// NewNotifier returns a notifier that posts to endpoint once started. A
// notifier that has not been started silently drops every event, as does a
// notifier whose queue is full.
func NewNotifier(ctx context.Context, endpoint string) (Notifier, error) {
	return &notifier{
		endpoint: endpoint,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   postTimeout,
		},
		queue: make(chan action, queueSize),
	}, nil
}

func (n *notifier) Start() error {
	if !n.started.CompareAndSwap(false, true) {
		return fmt.Errorf("already started")
	}

	go n.run()

	return nil
}

func (n *notifier) Stop() error {
	if n.started.CompareAndSwap(true, false) {
		resultChan := make(chan bool)

		n.queue <- func() {
			resultChan <- true
		}

		// wait until everything queued before us has been posted
		<-resultChan

		n.queue <- nil
	}
	return nil
}

func (n *notifier) InstanceCreated(ctx context.Context, instance *instances.Instance) {
	n.enqueue(ctx, notifications.InstanceCreated, instance)
}

func (n *notifier) InstanceUpdated(ctx context.Context, instance *instances.Instance) {
	n.enqueue(ctx, notifications.InstanceUpdated, instance)
}

func (n *notifier) TemplateCreated(ctx context.Context, template *templates.Template) {
	n.enqueue(ctx, notifications.TemplateCreated, template)
}

func (n *notifier) enqueue(ctx context.Context, notificationType string, data json.Marshaler) {
	if !n.started.Load() {
		return
	}

	var err error

	logger := logging.GetFromContext(ctx)

	ctx, span := tracer.Start(
		tracing.ExtractHeaders(context.Background(), tracing.InjectHeaders(ctx)),
		"post",
	)

	post := func() {
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		err = n.post(ctx, notificationType, data)
		if err != nil {
			logger.Error("failed to post notification", "type", notificationType, "err", err.Error())
		}
	}

	select {
	case n.queue <- post:
	default:
		err = fmt.Errorf("notification queue is full")
		logger.Warn("dropping notification", "type", notificationType, "err", err.Error())
		tracing.RecordAnyErrorAndEndSpan(err, span)
	}
}

func (n *notifier) post(ctx context.Context, notificationType string, data json.Marshaler) error {
	notification, err := notifications.NewNotification(notificationType, data)
	if err != nil {
		return err
	}

	body, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("marshalling error (%w)", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("unable to create new request (%w)", err)
	}

	req.Header.Add("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request (%w)", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("notification endpoint returned %d", resp.StatusCode)
	}

	return nil
}

func (n *notifier) run() {
	for action := range n.queue {
		if action == nil {
			return
		}

		action()
	}
}
