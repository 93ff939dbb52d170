package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"code.cloudfoundry.org/cf-networking-helpers/marshal"
	"github.com/danny0094/mcp-bridge-stack/audit"
	"github.com/danny0094/mcp-bridge-stack/forwarder"
	"github.com/danny0094/mcp-bridge-stack/jsonclient"
	"github.com/danny0094/mcp-bridge-stack/models"
	"github.com/danny0094/mcp-bridge-stack/router"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

//go:generate counterfeiter -o fakes/router.go --fake-name Router . routeResolver
type routeResolver interface {
	Route(ctx context.Context, logicalID string, explicit bool, payload []byte) (*models.RoutingDecision, error)
}

//go:generate counterfeiter -o fakes/forwarder.go --fake-name Forwarder . payloadForwarder
type payloadForwarder interface {
	Forward(ctx context.Context, url string, payload []byte) (*forwarder.Response, error)
}

//go:generate counterfeiter -o fakes/routing_metrics.go --fake-name RoutingMetrics . routingMetrics
type routingMetrics interface {
	RoutingDecision(origin models.Origin)
	UpstreamFailure(route string)
}

type eventWriter interface {
	Write(event *audit.RoutingEvent)
}

type routeErrorResponse struct {
	Error     string   `json:"error"`
	Available []string `json:"available"`
}

type upstreamErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// BridgeHandler serves POST / and POST /{id}. The payload is relayed to the
// chosen backend untouched and the backend's answer is returned verbatim.
type BridgeHandler struct {
	Marshaler   marshal.Marshaler
	Unmarshaler marshal.Unmarshaler
	Router      routeResolver
	Forwarder   payloadForwarder
	Events      eventWriter
	Metrics     routingMetrics
}

func (h *BridgeHandler) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	start := time.Now()
	requestID := requestIDFor(req)
	rw.Header().Set(jsonclient.RequestIDHeader, requestID)
	ctx := jsonclient.WithRequestID(req.Context(), requestID)

	logicalID := req.PathValue("id")
	event := &audit.RoutingEvent{
		RequestID:   requestID,
		Timestamp:   start,
		RequestedID: logicalID,
	}
	defer func() {
		event.LatencyMs = float64(time.Since(start).Microseconds()) / 1000
		h.Events.Write(event)
	}()

	logger := log.WithFields(log.Fields{"request_id": requestID, "requested": logicalID})

	body, err := io.ReadAll(req.Body)
	if err != nil {
		event.Error = err.Error()
		event.StatusCode = h.respond(rw, http.StatusInternalServerError, errorResponse{Error: "failed to read request"})
		return
	}

	// An explicit id is resolved before the body is checked so an unknown
	// route is always a 404. Unaddressed requests may reach the delegate and
	// must be JSON first.
	explicit := logicalID != ""
	var payload json.RawMessage
	unmarshalErr := h.Unmarshaler.Unmarshal(body, &payload)
	if unmarshalErr != nil && !explicit {
		h.rejectBody(rw, event, unmarshalErr)
		return
	}

	decision, err := h.Router.Route(ctx, logicalID, explicit, body)
	if err != nil {
		event.Error = err.Error()
		event.StatusCode = h.respondRouteError(rw, err)
		logger.WithError(err).Info("request not routed")
		return
	}
	if unmarshalErr != nil {
		h.rejectBody(rw, event, unmarshalErr)
		return
	}
	h.Metrics.RoutingDecision(decision.Origin)
	event.ChosenID = decision.ChosenID
	event.Origin = decision.Origin
	event.TargetURL = decision.URL

	resp, err := h.Forwarder.Forward(ctx, decision.URL, body)
	if err != nil {
		h.Metrics.UpstreamFailure(decision.ChosenID)
		event.Error = err.Error()
		logger.WithError(err).WithField("route", decision.ChosenID).Error("forward failed")
		event.StatusCode = h.respond(rw, http.StatusBadGateway, upstreamErrorResponse{
			Error:   fmt.Sprintf("failed to reach route '%s'", decision.ChosenID),
			Details: upstreamCause(err).Error(),
		})
		return
	}

	event.StatusCode = resp.StatusCode
	if resp.ContentType != "" {
		rw.Header().Set("Content-Type", resp.ContentType)
	}
	rw.WriteHeader(resp.StatusCode)
	rw.Write(resp.Body)
}

func (h *BridgeHandler) rejectBody(rw http.ResponseWriter, event *audit.RoutingEvent, err error) {
	event.Error = err.Error()
	event.StatusCode = h.respond(rw, http.StatusBadRequest, errorResponse{Error: "failed to unmarshal request"})
}

func (h *BridgeHandler) respondRouteError(rw http.ResponseWriter, err error) int {
	var unknownRoute *router.UnknownRouteError
	if errors.As(err, &unknownRoute) {
		return h.respond(rw, http.StatusNotFound, routeErrorResponse{
			Error:     unknownRoute.Error(),
			Available: nonNil(unknownRoute.Known),
		})
	}

	var noRoute *router.NoRouteError
	if errors.As(err, &noRoute) {
		return h.respond(rw, http.StatusServiceUnavailable, routeErrorResponse{
			Error:     noRoute.Error(),
			Available: nonNil(noRoute.Known),
		})
	}

	return h.respond(rw, http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
}

func (h *BridgeHandler) respond(rw http.ResponseWriter, statusCode int, body interface{}) int {
	return respondWithCode(h.Marshaler, rw, statusCode, body)
}

// requestIDFor keeps a caller supplied id when it is a uuid and mints one otherwise.
func requestIDFor(req *http.Request) string {
	if id, err := uuid.Parse(req.Header.Get(jsonclient.RequestIDHeader)); err == nil {
		return id.String()
	}
	return uuid.NewString()
}

func upstreamCause(err error) error {
	var upstream *forwarder.UpstreamError
	if errors.As(err, &upstream) && upstream.Err != nil {
		return upstream.Err
	}
	return err
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
