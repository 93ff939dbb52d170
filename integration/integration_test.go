package integration_test

import (
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
	"github.com/onsi/gomega/ghttp"
	_ "modernc.org/sqlite"
)

func boolPtr(b bool) *bool {
	return &b
}

var _ = Describe("mcpbridge", func() {
	var (
		te              *TestEnv
		timeToolSession *gexec.Session
		timeToolURL     string
		echoBackend     *ghttp.Server
		dummyBackend    *ghttp.Server
	)

	BeforeEach(func() {
		te = NewTestEnv()
		timeToolSession, timeToolURL = startTimeTool()

		echoBackend = ghttp.NewServer()
		echoBackend.RouteToHandler("POST", "/", ghttp.RespondWith(http.StatusOK, `{"echo":true}`))

		dummyBackend = ghttp.NewServer()
		dummyBackend.RouteToHandler("POST", "/", ghttp.RespondWith(http.StatusOK, `{"dummy":true}`))
	})

	AfterEach(func() {
		te.Cleanup()
		timeToolSession.Interrupt().Wait("5s")
		echoBackend.Close()
		dummyBackend.Close()
	})

	Context("with a static registry", func() {
		BeforeEach(func() {
			te.WriteRegistry(registryDocument{
				AutoReload: false,
				Servers: []registryServer{
					{ID: "time", URL: timeToolURL, Enabled: boolPtr(true)},
					{ID: "weather", URL: "http://127.0.0.1:1/", Enabled: boolPtr(false)},
				},
			})
			te.StartBridge()
		})

		It("forwards an explicit request to the time tool and relays its answer", func() {
			status, body := te.Post("/time", `{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"get_time"}}`)
			Expect(status).To(Equal(http.StatusOK))

			var rpc struct {
				ID     int `json:"id"`
				Result struct {
					Time string `json:"time"`
				} `json:"result"`
			}
			Expect(json.Unmarshal([]byte(body), &rpc)).To(Succeed())
			Expect(rpc.ID).To(Equal(1))
			Expect(rpc.Result.Time).To(MatchRegexp(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`))
		})

		It("relays the time tool's empty reply to a notification", func() {
			status, body := te.Post("/time", `{"jsonrpc":"2.0","method":"notifications/initialized"}`)
			Expect(status).To(Equal(http.StatusAccepted))
			Expect(body).To(BeEmpty())
		})

		It("reports an unknown route even when the body is not json", func() {
			status, body := te.Post("/weather", `not json`)
			Expect(status).To(Equal(http.StatusNotFound))
			Expect(body).To(MatchJSON(`{"error":"unknown route: weather","available":["time"]}`))
		})

		It("rejects a disabled route as unknown and lists the available ones", func() {
			status, body := te.Post("/weather", `{"q":1}`)
			Expect(status).To(Equal(http.StatusNotFound))
			Expect(body).To(MatchJSON(`{"error":"unknown route: weather","available":["time"]}`))
		})

		It("routes unaddressed requests to the first route", func() {
			status, body := te.Post("/", `{"jsonrpc":"2.0","id":3,"method":"initialize"}`)
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(ContainSubstring(`"MCP-Time"`))
		})

		It("serves the manifest", func() {
			Expect(te.Manifest()).To(MatchJSON(`{"servers":["time"],"autoReload":false}`))
		})

		It("ignores registry changes while autoReload is off", func() {
			te.WriteRegistry(registryDocument{
				AutoReload: true,
				Servers:    []registryServer{{ID: "echo", URL: echoBackend.URL() + "/"}},
			})

			Consistently(te.Manifest, "500ms", "100ms").Should(MatchJSON(`{"servers":["time"],"autoReload":false}`))
		})

		It("rejects bodies that are not json", func() {
			status, body := te.Post("/time", `not json`)
			Expect(status).To(Equal(http.StatusBadRequest))
			Expect(body).To(MatchJSON(`{"error":"failed to unmarshal request"}`))
		})

		It("exposes metrics", func() {
			te.Post("/time", `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)

			resp, err := http.Get(te.URL("/metrics"))
			Expect(err).NotTo(HaveOccurred())
			defer resp.Body.Close()
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			body, err := io.ReadAll(resp.Body)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(body)).To(MatchRegexp(`mcpbridge_routing_decisions_total\{origin="explicit"\} 1`))
		})
	})

	Context("with autoReload on", func() {
		BeforeEach(func() {
			te.WriteRegistry(registryDocument{
				AutoReload: true,
				Servers:    []registryServer{{ID: "time", URL: timeToolURL}},
			})
			te.StartBridge()
		})

		It("picks up new routes without a restart", func() {
			te.WriteRegistry(registryDocument{
				AutoReload: true,
				Servers: []registryServer{
					{ID: "time", URL: timeToolURL},
					{ID: "echo", URL: echoBackend.URL() + "/"},
				},
			})

			Eventually(te.Manifest, "5s", "100ms").Should(MatchJSON(`{"servers":["time","echo"],"autoReload":true}`))

			status, body := te.Post("/echo", `{}`)
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(MatchJSON(`{"echo":true}`))
		})

		It("keeps the last good table when the registry becomes invalid", func() {
			te.WriteRegistryBytes([]byte(`{"autoReload": true, "servers": [`))

			Eventually(te.Session.Err, "5s").Should(gbytes.Say("registry load failed"))
			Expect(te.Manifest()).To(MatchJSON(`{"servers":["time"],"autoReload":true}`))

			status, _ := te.Post("/time", `{"jsonrpc":"2.0","id":1,"method":"tools/call"}`)
			Expect(status).To(Equal(http.StatusOK))
		})

		It("returns 502 when a backend is down", func() {
			downURL := echoBackend.URL() + "/"
			echoBackend.Close()
			te.WriteRegistry(registryDocument{
				AutoReload: true,
				Servers: []registryServer{
					{ID: "time", URL: timeToolURL},
					{ID: "echo", URL: downURL},
				},
			})
			Eventually(te.Manifest, "5s", "100ms").Should(ContainSubstring("echo"))

			status, body := te.Post("/echo", `{}`)
			Expect(status).To(Equal(http.StatusBadGateway))
			Expect(body).To(ContainSubstring(`"error":"failed to reach route 'echo'"`))
		})
	})

	Context("when the registry is missing at startup", func() {
		BeforeEach(func() {
			te.StartBridge()
		})

		It("serves an empty table and loads the registry once it appears", func() {
			Expect(te.Manifest()).To(MatchJSON(`{"servers":[],"autoReload":false}`))

			status, _ := te.Post("/", `{}`)
			Expect(status).To(Equal(http.StatusServiceUnavailable))

			te.WriteRegistry(registryDocument{
				AutoReload: false,
				Servers:    []registryServer{{ID: "time", URL: timeToolURL}},
			})

			Eventually(te.Manifest, "5s", "100ms").Should(MatchJSON(`{"servers":["time"],"autoReload":false}`))
		})
	})

	Context("in delegate mode", func() {
		var delegate *ghttp.Server

		BeforeEach(func() {
			delegate = ghttp.NewServer()

			te.WriteRegistry(registryDocument{
				AutoReload: false,
				Servers: []registryServer{
					{ID: "echo", URL: echoBackend.URL() + "/"},
					{ID: "dummy", URL: dummyBackend.URL() + "/"},
				},
			})
			te.StartBridge(
				"BRIDGE_DEFAULT_MODE=delegate",
				"BRIDGE_DECISION_URL="+delegate.URL()+"/route",
				"BRIDGE_FALLBACK_ID=dummy",
			)
		})

		AfterEach(func() {
			delegate.Close()
		})

		It("follows the delegate's suggestion", func() {
			delegate.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest("POST", "/route"),
				ghttp.VerifyJSON(`{"q":"echo please"}`),
				ghttp.RespondWith(http.StatusOK, `{"tool":"echo"}`),
			))

			status, body := te.Post("/", `{"q":"echo please"}`)
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(MatchJSON(`{"echo":true}`))
		})

		It("falls back when the delegate fails", func() {
			delegate.AppendHandlers(ghttp.RespondWith(http.StatusInternalServerError, `oops`))

			status, body := te.Post("/", `{"q":"anything"}`)
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(MatchJSON(`{"dummy":true}`))
		})

		It("falls back when the delegate suggests an unknown route", func() {
			delegate.AppendHandlers(ghttp.RespondWith(http.StatusOK, `{"tool":"weather"}`))

			status, body := te.Post("/", `{"q":"weather?"}`)
			Expect(status).To(Equal(http.StatusOK))
			Expect(body).To(MatchJSON(`{"dummy":true}`))
		})
	})

	Context("with an audit database", func() {
		var dbPath string

		BeforeEach(func() {
			dbPath = filepath.Join(te.Dir, "audit.db")
			te.WriteRegistry(registryDocument{
				Servers: []registryServer{{ID: "echo", URL: echoBackend.URL() + "/"}},
			})
			te.StartBridge("BRIDGE_AUDIT_DB=" + dbPath)
		})

		It("records routing events", func() {
			status, _ := te.Post("/echo", `{}`)
			Expect(status).To(Equal(http.StatusOK))
			status, _ = te.Post("/weather", `{}`)
			Expect(status).To(Equal(http.StatusNotFound))

			countEvents := func() (int, error) {
				db, err := sql.Open("sqlite", dbPath)
				if err != nil {
					return 0, err
				}
				defer db.Close()

				var n int
				err = db.QueryRow(`SELECT COUNT(*) FROM routing_events`).Scan(&n)
				return n, err
			}
			Eventually(countEvents, "5s", "100ms").Should(Equal(2))
		})
	})
})
