package adaptor

import (
	"net/http"

	"photodesk/internal/catalog"
	"photodesk/internal/draft"
	"photodesk/pkg/utils"

	"go.uber.org/zap"
)

// PickerHandler serves the booking form pickers straight from the in-memory
// catalog, with the same substring search the form uses.
type PickerHandler struct {
	store *catalog.Store
	log   *zap.Logger
}

func NewPickerHandler(store *catalog.Store, log *zap.Logger) *PickerHandler {
	return &PickerHandler{
		store: store,
		log:   log,
	}
}

type pickerOption struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Company string `json:"company,omitempty"`
}

// Agents handles GET /api/pickers/agents?q=... (protected)
func (h *PickerHandler) Agents(w http.ResponseWriter, r *http.Request) {
	h.respond(w, h.store.AgentOptions(), r.URL.Query().Get("q"))
}

// Photographers handles GET /api/pickers/photographers?q=... (protected)
func (h *PickerHandler) Photographers(w http.ResponseWriter, r *http.Request) {
	h.respond(w, h.store.PhotographerOptions(), r.URL.Query().Get("q"))
}

// Services handles GET /api/pickers/services?q=... (protected)
func (h *PickerHandler) Services(w http.ResponseWriter, r *http.Request) {
	h.respond(w, h.store.ServiceOptions(), r.URL.Query().Get("q"))
}

func (h *PickerHandler) respond(w http.ResponseWriter, options []draft.Option, query string) {
	selector := draft.NewSelector(options)

	filtered := selector.Filter(query)
	out := make([]pickerOption, 0, len(filtered))
	for _, opt := range filtered {
		out = append(out, pickerOption{
			ID:      opt.ID.String(),
			Label:   opt.Label,
			Company: opt.Company,
		})
	}

	utils.ResponseSuccess(w, "success", out)
}
