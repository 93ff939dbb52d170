package timetool_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	hfakes "code.cloudfoundry.org/cf-networking-helpers/fakes"
	"github.com/danny0094/mcp-bridge-stack/timetool"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Handler", func() {
	var (
		mux       http.Handler
		resp      *httptest.ResponseRecorder
		marshaler *hfakes.Marshaler
	)

	call := func(body string) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		mux.ServeHTTP(resp, req)
	}

	BeforeEach(func() {
		marshaler = &hfakes.Marshaler{}
		marshaler.MarshalStub = json.Marshal

		fixed := time.Date(2025, 3, 26, 12, 30, 0, 0, time.FixedZone("CET", 3600))
		mux = timetool.NewMux(
			&timetool.Handler{Marshaler: marshaler, Now: func() time.Time { return fixed }},
			&timetool.HealthHandler{Marshaler: marshaler},
		)
		resp = httptest.NewRecorder()
	})

	It("answers initialize with the server info", func() {
		call(`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`)

		Expect(resp.Code).To(Equal(http.StatusOK))
		Expect(resp.Body.String()).To(MatchJSON(`{
			"jsonrpc": "2.0",
			"id": 1,
			"result": {
				"protocolVersion": "2025-03-26",
				"capabilities": {"streaming": false},
				"serverInfo": {"name": "MCP-Time", "version": "1.0.0"}
			}
		}`))
	})

	It("lists the get_time tool", func() {
		call(`{"jsonrpc":"2.0","id":"list-1","method":"tools/list"}`)

		Expect(resp.Code).To(Equal(http.StatusOK))
		var body struct {
			ID     string `json:"id"`
			Result struct {
				Tools []struct {
					Name string `json:"name"`
				} `json:"tools"`
			} `json:"result"`
		}
		Expect(json.Unmarshal(resp.Body.Bytes(), &body)).To(Succeed())
		Expect(body.ID).To(Equal("list-1"))
		Expect(body.Result.Tools).To(HaveLen(1))
		Expect(body.Result.Tools[0].Name).To(Equal("get_time"))
	})

	It("returns the current time in UTC for tools/call", func() {
		call(`{"jsonrpc":"2.0","id":7,"method":"tools/call","params":{"name":"get_time","arguments":{}}}`)

		Expect(resp.Code).To(Equal(http.StatusOK))
		Expect(resp.Body.String()).To(MatchJSON(`{"jsonrpc":"2.0","id":7,"result":{"time":"2025-03-26T11:30:00Z"}}`))
	})

	It("rejects calls to other tools", func() {
		call(`{"jsonrpc":"2.0","id":8,"method":"tools/call","params":{"name":"get_weather"}}`)

		Expect(resp.Code).To(Equal(http.StatusOK))
		Expect(resp.Body.String()).To(MatchJSON(`{"jsonrpc":"2.0","id":8,"error":{"code":-32602,"message":"unknown tool: get_weather"}}`))
	})

	It("returns a JSON-RPC error for unknown methods", func() {
		call(`{"jsonrpc":"2.0","id":2,"method":"resources/list"}`)

		Expect(resp.Code).To(Equal(http.StatusOK))
		Expect(resp.Body.String()).To(MatchJSON(`{"jsonrpc":"2.0","id":2,"error":{"code":-32601,"message":"Unknown method: resources/list"}}`))
	})

	It("accepts notifications without a body", func() {
		call(`{"jsonrpc":"2.0","method":"notifications/initialized"}`)

		Expect(resp.Code).To(Equal(http.StatusAccepted))
		Expect(resp.Body.Len()).To(Equal(0))
	})

	It("returns a parse error for malformed bodies", func() {
		call(`{"jsonrpc":`)

		Expect(resp.Code).To(Equal(http.StatusBadRequest))
		var body struct {
			ID    interface{} `json:"id"`
			Error struct {
				Code int `json:"code"`
			} `json:"error"`
		}
		Expect(json.Unmarshal(resp.Body.Bytes(), &body)).To(Succeed())
		Expect(body.ID).To(BeNil())
		Expect(body.Error.Code).To(Equal(-32700))
	})

	It("reports liveness on GET /", func() {
		mux.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

		Expect(resp.Code).To(Equal(http.StatusOK))
		Expect(resp.Body.String()).To(MatchJSON(`{"status":"ok","server":"MCP-Time"}`))
	})
})
