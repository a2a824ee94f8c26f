package profile

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/inventory/drive-gateway/internal/asset"
	"github.com/inventory/drive-gateway/internal/middleware"
	"github.com/inventory/drive-gateway/internal/response"
)

// Handler holds HTTP handlers for profile image endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new profile Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func subjectFrom(r *http.Request) string {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		return ""
	}
	return claims.Subject
}

// Upload godoc
//
//	@Summary	Upload profile image
//	@Tags		profile
//	@Accept		mpfd
//	@Produce	json
//	@Security	BearerAuth
//	@Param		file	formData	file	true	"image file"
//	@Success	200		{object}	response.FileCreated
//	@Failure	400		{object}	response.ErrorBody
//	@Failure	401		{object}	response.ErrorBody
//	@Failure	500		{object}	response.ErrorBody
//	@Router		/profile/ [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	up, err := asset.ReadUpload(r)
	if err != nil {
		response.FromError(w, err)
		return
	}

	fileID, err := h.svc.Upload(r.Context(), subjectFrom(r), up)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, response.FileCreated{Message: "profile image uploaded successfully", FileID: fileID})
}

// Replace godoc
//
//	@Summary	Replace profile image
//	@Tags		profile
//	@Accept		mpfd
//	@Produce	json
//	@Security	BearerAuth
//	@Param		fileID	path		string	true	"file id"
//	@Param		file	formData	file	true	"image file"
//	@Success	200		{object}	response.FileReplaced
//	@Failure	400		{object}	response.ErrorBody
//	@Failure	403		{object}	response.ErrorBody
//	@Failure	404		{object}	response.ErrorBody
//	@Router		/profile/{fileID} [put]
func (h *Handler) Replace(w http.ResponseWriter, r *http.Request) {
	up, err := asset.ReadUpload(r)
	if err != nil {
		response.FromError(w, err)
		return
	}

	newID, err := h.svc.Replace(r.Context(), subjectFrom(r), chi.URLParam(r, "fileID"), up)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, response.FileReplaced{Message: "profile image updated", NewFileID: newID})
}

// Metadata godoc
//
//	@Summary	Get profile image metadata
//	@Tags		profile
//	@Produce	json
//	@Security	BearerAuth
//	@Param		fileID	path		string	true	"file id"
//	@Success	200		{object}	storage.FileMetadata
//	@Failure	404		{object}	response.ErrorBody
//	@Router		/profile/{fileID} [get]
func (h *Handler) Metadata(w http.ResponseWriter, r *http.Request) {
	meta, err := h.svc.Metadata(r.Context(), chi.URLParam(r, "fileID"))
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.OK(w, meta)
}

// Download godoc
//
//	@Summary	Download profile image
//	@Tags		profile
//	@Produce	octet-stream
//	@Security	BearerAuth
//	@Param		fileID	path	string	true	"file id"
//	@Success	200		{file}	binary
//	@Failure	403		{object}	response.ErrorBody
//	@Failure	404		{object}	response.ErrorBody
//	@Router		/profile/download/{fileID} [get]
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	data, meta, err := h.svc.Download(r.Context(), chi.URLParam(r, "fileID"))
	if err != nil {
		response.FromError(w, err)
		return
	}

	mimeType := meta.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", meta.Name))
	_, _ = w.Write(data)
}

// Delete godoc
//
//	@Summary	Delete profile image
//	@Tags		profile
//	@Produce	json
//	@Security	BearerAuth
//	@Param		fileID	path		string	true	"file id"
//	@Success	200		{object}	response.Message
//	@Failure	403		{object}	response.ErrorBody
//	@Failure	404		{object}	response.ErrorBody
//	@Router		/profile/delete/{fileID} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "fileID")); err != nil {
		response.FromError(w, err)
		return
	}
	response.OK(w, response.Message{Message: "profile image deleted"})
}
