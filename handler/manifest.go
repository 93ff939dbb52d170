package handler

import (
	"net/http"

	"code.cloudfoundry.org/cf-networking-helpers/marshal"
	"github.com/danny0094/mcp-bridge-stack/models"
)

type snapshotRepo interface {
	Get() (*models.RegistrySnapshot, bool)
}

type manifest struct {
	Servers    []string `json:"servers"`
	AutoReload bool     `json:"autoReload"`
}

// ManifestHandler lists the enabled route ids of the current snapshot.
type ManifestHandler struct {
	Marshaler    marshal.Marshaler
	SnapshotRepo snapshotRepo
}

func (h *ManifestHandler) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	snapshot, _ := h.SnapshotRepo.Get()
	respondWithCode(h.Marshaler, rw, http.StatusOK, manifest{
		Servers:    nonNil(snapshot.IDs()),
		AutoReload: snapshot.AutoReload,
	})
}

type HealthHandler struct {
	Marshaler marshal.Marshaler
}

func (h *HealthHandler) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	respondWithCode(h.Marshaler, rw, http.StatusOK, map[string]string{"status": "ok"})
}
