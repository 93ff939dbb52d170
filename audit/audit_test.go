package audit_test

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/danny0094/mcp-bridge-stack/audit"
	"github.com/danny0094/mcp-bridge-stack/models"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

func newEvent(requestID string) *audit.RoutingEvent {
	return &audit.RoutingEvent{
		RequestID:   requestID,
		Timestamp:   time.Now(),
		RequestedID: "time",
		ChosenID:    "time",
		Origin:      models.OriginExplicit,
		TargetURL:   "http://svc-time/",
		StatusCode:  200,
		LatencyMs:   1.5,
	}
}

var _ = Describe("LogWriter", func() {
	var logHook *logtest.Hook

	BeforeEach(func() {
		logHook = logtest.NewGlobal()
		log.SetLevel(log.DebugLevel)
	})

	AfterEach(func() {
		log.StandardLogger().ReplaceHooks(make(log.LevelHooks))
		log.SetLevel(log.InfoLevel)
	})

	It("logs successful events at debug level", func() {
		audit.NewLogWriter().Write(newEvent("req-1"))

		entry := logHook.LastEntry()
		Expect(entry).NotTo(BeNil())
		Expect(entry.Level).To(Equal(log.DebugLevel))
		Expect(entry.Data).To(HaveKeyWithValue("request_id", "req-1"))
		Expect(entry.Data).To(HaveKeyWithValue("origin", models.OriginExplicit))
	})

	It("logs failed events at info level with the error", func() {
		event := newEvent("req-2")
		event.Error = "upstream http://svc-time/: connection refused"
		event.StatusCode = 502

		audit.NewLogWriter().Write(event)

		entry := logHook.LastEntry()
		Expect(entry.Level).To(Equal(log.InfoLevel))
		Expect(entry.Data).To(HaveKeyWithValue("error", event.Error))
		Expect(entry.Data).To(HaveKeyWithValue("status_code", 502))
	})
})

var _ = Describe("SQLiteWriter", func() {
	var (
		dir    string
		dbPath string
	)

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "audit")
		Expect(err).NotTo(HaveOccurred())
		dbPath = filepath.Join(dir, "audit.db")
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	countRows := func() int {
		db, err := sql.Open("sqlite", dbPath)
		Expect(err).NotTo(HaveOccurred())
		defer db.Close()

		var n int
		Expect(db.QueryRow(`SELECT COUNT(*) FROM routing_events`).Scan(&n)).To(Succeed())
		return n
	}

	It("creates the schema on open", func() {
		writer, err := audit.NewSQLiteWriter(context.Background(), dbPath)
		Expect(err).NotTo(HaveOccurred())
		writer.Close()

		Expect(countRows()).To(Equal(0))
	})

	It("persists buffered events when closed", func() {
		writer, err := audit.NewSQLiteWriter(context.Background(), dbPath)
		Expect(err).NotTo(HaveOccurred())

		for _, id := range []string{"a", "b", "c"} {
			writer.Write(newEvent(id))
		}
		writer.Close()

		Expect(countRows()).To(Equal(3))
	})

	It("flushes in the background without being closed", func() {
		writer, err := audit.NewSQLiteWriter(context.Background(), dbPath)
		Expect(err).NotTo(HaveOccurred())
		defer writer.Close()

		writer.Write(newEvent("bg"))

		Eventually(countRows, "2s", "50ms").Should(Equal(1))
	})

	It("stores the event fields", func() {
		writer, err := audit.NewSQLiteWriter(context.Background(), dbPath)
		Expect(err).NotTo(HaveOccurred())

		event := newEvent("fields")
		event.Origin = models.OriginFallback
		event.ChosenID = "dummy"
		event.StatusCode = 502
		event.Error = "boom"
		writer.Write(event)
		writer.Close()

		db, err := sql.Open("sqlite", dbPath)
		Expect(err).NotTo(HaveOccurred())
		defer db.Close()

		var (
			requestID, requestedID, chosenID, origin, errText string
			statusCode                                          int
		)
		row := db.QueryRow(`SELECT request_id, requested_id, chosen_id, origin, status_code, error FROM routing_events`)
		Expect(row.Scan(&requestID, &requestedID, &chosenID, &origin, &statusCode, &errText)).To(Succeed())
		Expect(requestID).To(Equal("fields"))
		Expect(requestedID).To(Equal("time"))
		Expect(chosenID).To(Equal("dummy"))
		Expect(origin).To(Equal("fallback"))
		Expect(statusCode).To(Equal(502))
		Expect(errText).To(Equal("boom"))
	})

	It("returns an error when the database cannot be opened", func() {
		_, err := audit.NewSQLiteWriter(context.Background(), filepath.Join(dir, "missing", "audit.db"))
		Expect(err).To(HaveOccurred())
	})
})
