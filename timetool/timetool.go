package timetool

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"code.cloudfoundry.org/cf-networking-helpers/marshal"
	"github.com/modelcontextprotocol/go-sdk/jsonrpc"
	log "github.com/sirupsen/logrus"
)

const (
	ProtocolVersion = "2025-03-26"
	ServerName      = "MCP-Time"
	ServerVersion   = "1.0.0"
	ToolName        = "get_time"
)

// JSON-RPC 2.0 error codes.
const (
	codeParseError     = -32700
	codeInvalidRequest = -32600
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
)

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	JSONRPC string    `json:"jsonrpc"`
	ID      any       `json:"id"`
	Error   *rpcError `json:"error"`
}

type serverInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type initializeResult struct {
	ProtocolVersion string          `json:"protocolVersion"`
	Capabilities    map[string]bool `json:"capabilities"`
	ServerInfo      serverInfo      `json:"serverInfo"`
}

type tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

type toolsListResult struct {
	Tools []tool `json:"tools"`
}

type toolCallParams struct {
	Name string `json:"name"`
}

type timeResult struct {
	Time string `json:"time"`
}

// Handler serves the single-tool JSON-RPC endpoint. Now defaults to
// time.Now when nil.
type Handler struct {
	Marshaler marshal.Marshaler
	Now       func() time.Time
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		h.respondWithError(rw, http.StatusBadRequest, nil, codeParseError, "failed to read request")
		return
	}

	msg, err := jsonrpc.DecodeMessage(body)
	if err != nil {
		h.respondWithError(rw, http.StatusBadRequest, nil, codeParseError, fmt.Sprintf("parse error: %s", err))
		return
	}

	call, ok := msg.(*jsonrpc.Request)
	if !ok {
		h.respondWithError(rw, http.StatusBadRequest, nil, codeInvalidRequest, "expected a request")
		return
	}

	logger := log.WithField("method", call.Method)
	if call.ID == (jsonrpc.ID{}) {
		logger.Debug("notification")
		rw.WriteHeader(http.StatusAccepted)
		return
	}

	result, code, message := h.dispatch(call)
	if code != 0 {
		logger.WithField("code", code).Info(message)
		h.respondWithError(rw, http.StatusOK, call.ID.Raw(), code, message)
		return
	}

	raw, err := h.Marshaler.Marshal(result)
	if err != nil {
		h.respondWithError(rw, http.StatusInternalServerError, call.ID.Raw(), codeInvalidRequest, "failed to marshal result")
		return
	}

	data, err := jsonrpc.EncodeMessage(&jsonrpc.Response{ID: call.ID, Result: raw})
	if err != nil {
		h.respondWithError(rw, http.StatusInternalServerError, call.ID.Raw(), codeInvalidRequest, "failed to encode response")
		return
	}
	rw.Header().Set("Content-Type", "application/json")
	rw.Write(data)
}

func (h *Handler) dispatch(call *jsonrpc.Request) (any, int, string) {
	switch call.Method {
	case "initialize":
		return initializeResult{
			ProtocolVersion: ProtocolVersion,
			Capabilities:    map[string]bool{"streaming": false},
			ServerInfo:      serverInfo{Name: ServerName, Version: ServerVersion},
		}, 0, ""
	case "tools/list":
		return toolsListResult{Tools: []tool{{
			Name:        ToolName,
			Description: "Returns the current system time (ISO format)",
			InputSchema: map[string]any{"type": "object", "properties": map[string]any{}},
		}}}, 0, ""
	case "tools/call":
		var params toolCallParams
		if len(call.Params) > 0 {
			if err := json.Unmarshal(call.Params, &params); err != nil {
				return nil, codeInvalidParams, "invalid params"
			}
		}
		if params.Name != "" && params.Name != ToolName {
			return nil, codeInvalidParams, fmt.Sprintf("unknown tool: %s", params.Name)
		}
		return timeResult{Time: h.now().UTC().Format(time.RFC3339)}, 0, ""
	default:
		return nil, codeMethodNotFound, fmt.Sprintf("Unknown method: %s", call.Method)
	}
}

func (h *Handler) now() time.Time {
	if h.Now == nil {
		return time.Now()
	}
	return h.Now()
}

func (h *Handler) respondWithError(rw http.ResponseWriter, statusCode int, id any, code int, message string) {
	bytes, err := h.Marshaler.Marshal(errorEnvelope{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &rpcError{Code: code, Message: message},
	})
	if err != nil {
		statusCode = http.StatusInternalServerError
		bytes = []byte(`{"error": "failed to marshal response"}`)
	}
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(statusCode)
	rw.Write(bytes)
}

// HealthHandler answers GET / with the server name.
type HealthHandler struct {
	Marshaler marshal.Marshaler
}

func (h *HealthHandler) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	bytes, err := h.Marshaler.Marshal(map[string]string{"status": "ok", "server": ServerName})
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}
	rw.Header().Set("Content-Type", "application/json")
	rw.Write(bytes)
}

func NewMux(rpc, health http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("POST /{$}", rpc)
	mux.Handle("GET /{$}", health)
	return mux
}
