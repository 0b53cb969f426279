package api

import (
	"database/sql"
	"net/http"

	"github.com/quest-campus/lostfound/internal/imaging"
	"github.com/quest-campus/lostfound/internal/lifecycle"
	"github.com/quest-campus/lostfound/internal/model"
	"github.com/quest-campus/lostfound/internal/store"
	"github.com/quest-campus/lostfound/internal/validate"
)

// ItemsHandler handles report CRUD and lifecycle endpoints.
type ItemsHandler struct {
	DB *sql.DB
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

// List handles GET /api/items.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	category, status, verr := validate.ListFilters(
		r.URL.Query().Get("category"),
		r.URL.Query().Get("status"),
	)
	if verr != nil {
		jsonError(w, http.StatusBadRequest, verr.Message)
		return
	}

	items, err := store.ListItems(r.Context(), h.DB, category, status)
	if err != nil {
		internalError(w, "listing items", err)
		return
	}
	if items == nil {
		items = []model.Item{}
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"count": len(items),
		"items": items,
	})
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, verr := validate.ID(r.PathValue("id"))
	if verr != nil {
		jsonError(w, http.StatusBadRequest, verr.Message)
		return
	}

	item, err := store.GetItem(r.Context(), h.DB, id)
	if err != nil {
		internalError(w, "getting item", err)
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "Item report not found.")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{"item": item})
}

// Create handles POST /api/items. Submissions are public; the server forces
// status to pending regardless of the request.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in validate.ItemInput
	if err := decodeJSON(r, &in); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if verr := in.Validate(); verr != nil {
		jsonError(w, http.StatusBadRequest, verr.Message)
		return
	}

	item, err := store.CreateItem(r.Context(), h.DB, &model.Item{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Location:    in.Location,
		ItemDate:    in.ItemDate,
		ContactInfo: in.ContactInfo,
	})
	if err != nil {
		internalError(w, "creating item", err)
		return
	}

	jsonResponse(w, http.StatusCreated, map[string]any{
		"message": "Report submitted successfully.",
		"item":    item,
	})
}

// Replace handles PUT /api/items/{id}: an admin full-field overwrite.
func (h *ItemsHandler) Replace(w http.ResponseWriter, r *http.Request) {
	id, verr := validate.ID(r.PathValue("id"))
	if verr != nil {
		jsonError(w, http.StatusBadRequest, verr.Message)
		return
	}

	var in validate.ItemInput
	if err := decodeJSON(r, &in); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	if verr := in.Validate(); verr != nil {
		jsonError(w, http.StatusBadRequest, verr.Message)
		return
	}
	if in.Status == "" {
		in.Status = model.StatusPending
	}

	ok, err := store.ReplaceItem(r.Context(), h.DB, id, &model.Item{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Location:    in.Location,
		ItemDate:    in.ItemDate,
		ContactInfo: in.ContactInfo,
		Status:      in.Status,
	})
	if err != nil {
		internalError(w, "replacing item", err)
		return
	}
	if !ok {
		jsonError(w, http.StatusNotFound, "Item report not found.")
		return
	}

	item, err := store.GetItem(r.Context(), h.DB, id)
	if err != nil {
		internalError(w, "getting item", err)
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"message": "Item report updated successfully.",
		"item":    item,
	})
}

// UpdateStatus handles PATCH /api/items/{id}/status via the lifecycle
// controller.
func (h *ItemsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, verr := validate.ID(r.PathValue("id"))
	if verr != nil {
		jsonError(w, http.StatusBadRequest, verr.Message)
		return
	}

	var req statusUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	status, verr := validate.StatusUpdate(req.Status)
	if verr != nil {
		jsonError(w, http.StatusBadRequest, verr.Message)
		return
	}

	result, err := lifecycle.Apply(r.Context(), h.DB, id, status)
	if err != nil {
		internalError(w, "updating item status", err)
		return
	}
	if result == nil {
		jsonError(w, http.StatusNotFound, "Item report not found.")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"message": result.Message,
		"action":  result.Action,
		"item":    result.Item,
	})
}

// Delete handles DELETE /api/items/{id}.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, verr := validate.ID(r.PathValue("id"))
	if verr != nil {
		jsonError(w, http.StatusBadRequest, verr.Message)
		return
	}

	deleted, err := store.DeleteItem(r.Context(), h.DB, id)
	if err != nil {
		internalError(w, "deleting item", err)
		return
	}
	if !deleted {
		jsonError(w, http.StatusNotFound, "Item report not found.")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{
		"message": "Item report deleted successfully.",
	})
}

// UploadPhoto handles PUT /api/items/{id}/photo.
func (h *ItemsHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	id, verr := validate.ID(r.PathValue("id"))
	if verr != nil {
		jsonError(w, http.StatusBadRequest, verr.Message)
		return
	}

	// Limit to 5 MB.
	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)

	if err := r.ParseMultipartForm(5 << 20); err != nil {
		jsonError(w, http.StatusBadRequest, "Photo too large or invalid multipart form.")
		return
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "Photo file required.")
		return
	}
	defer file.Close()

	processed, err := imaging.Process(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "Photo must be a valid JPEG or PNG image.")
		return
	}

	ok, err := store.SetItemPhoto(r.Context(), h.DB, id, processed.Data, processed.MIME)
	if err != nil {
		internalError(w, "saving photo", err)
		return
	}
	if !ok {
		jsonError(w, http.StatusNotFound, "Item report not found.")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "Photo uploaded successfully."})
}

// GetPhoto handles GET /api/items/{id}/photo.
func (h *ItemsHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	id, verr := validate.ID(r.PathValue("id"))
	if verr != nil {
		jsonError(w, http.StatusBadRequest, verr.Message)
		return
	}

	data, mime, err := store.GetItemPhoto(r.Context(), h.DB, id)
	if err != nil {
		internalError(w, "getting photo", err)
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "No photo for this item report.")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}
