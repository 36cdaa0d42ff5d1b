package notifications

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/matryer/is"

	"github.com/diwise/template-broker/pkg/templates"
	"github.com/diwise/template-broker/pkg/types/attributes"
	"github.com/diwise/template-broker/pkg/types/instances"
	"github.com/diwise/template-broker/pkg/types/schemas"
)

var Expects = testutils.Expects
var Returns = testutils.Returns

var method = expects.RequestMethod
var bodyContaining = expects.RequestBodyContaining

func TestSingleNotificationOnInstanceCreated(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodPost),
			bodyContaining(`"type":"InstanceCreated"`, "urn:template-broker:Notification:", "Stockholm Marathon"),
		),
		Returns(
			response.Code(http.StatusOK),
		),
	)
	defer s.Close()

	ctx := context.Background()
	n, _ := NewNotifier(ctx, s.URL())

	is.NoErr(n.Start())

	schema, _ := schemas.New("Marathon", schemas.Text("city"))
	b := instances.NewBuilder(schema, "Stockholm Marathon")
	is.NoErr(b.UpdateEntity("city", attributes.Raw("Stockholm")))
	instance, err := b.Build()
	is.NoErr(err)

	n.InstanceCreated(ctx, instance)

	is.NoErr(n.Stop())

	is.Equal(s.RequestCount(), 1)
}

func TestNotificationOnTemplateCreated(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodPost),
			bodyContaining(`"type":"TemplateCreated"`),
		),
		Returns(
			response.Code(http.StatusOK),
		),
	)
	defer s.Close()

	ctx := context.Background()
	n, _ := NewNotifier(ctx, s.URL())
	is.NoErr(n.Start())

	schema, _ := schemas.New("Marathon", schemas.Text("city"))
	template, err := templates.NewBuilder("Run in [@city]", schema).Build()
	is.NoErr(err)

	n.TemplateCreated(ctx, template)
	n.TemplateCreated(ctx, template)

	is.NoErr(n.Stop())

	is.Equal(s.RequestCount(), 2)
}

func TestNotifierThatIsNotStartedDropsEvents(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, expects.AnyInput()),
		Returns(response.Code(http.StatusOK)),
	)
	defer s.Close()

	ctx := context.Background()
	n, _ := NewNotifier(ctx, s.URL())

	schema, _ := schemas.New("Marathon")
	instance, _ := instances.NewBuilder(schema, "x").Build()

	n.InstanceUpdated(ctx, instance)
	is.NoErr(n.Stop())

	is.Equal(s.RequestCount(), 0)
}

func TestFullQueueDropsEventsWithoutBlocking(t *testing.T) {
	is := is.New(t)

	release := make(chan struct{})
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.WriteHeader(http.StatusOK)
	}))
	defer s.Close()

	var once sync.Once
	unblock := func() { once.Do(func() { close(release) }) }
	defer unblock()

	ctx := context.Background()
	n, _ := NewNotifier(ctx, s.URL)
	is.NoErr(n.Start())

	schema, _ := schemas.New("Marathon")
	instance, _ := instances.NewBuilder(schema, "x").Build()

	done := make(chan struct{})
	go func() {
		for range 2 * queueSize {
			n.InstanceCreated(ctx, instance)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		is.Fail() // enqueueing should not wait for a hanging endpoint
	}

	unblock()
	is.NoErr(n.Stop())
}

func TestStartingTwiceFails(t *testing.T) {
	is := is.New(t)

	n, _ := NewNotifier(context.Background(), "http://localhost")
	is.NoErr(n.Start())
	defer n.Stop()

	is.True(n.Start() != nil)
}
