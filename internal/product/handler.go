package product

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/inventory/drive-gateway/internal/asset"
	"github.com/inventory/drive-gateway/internal/response"
)

// Handler holds HTTP handlers for product image endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new product Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Upload godoc
//
//	@Summary	Upload product image
//	@Tags		product
//	@Accept		mpfd
//	@Produce	json
//	@Security	BearerAuth
//	@Param		productID	path		string	true	"product id"
//	@Param		file		formData	file	true	"image file"
//	@Success	200			{object}	response.FileCreated
//	@Failure	400			{object}	response.ErrorBody
//	@Failure	401			{object}	response.ErrorBody
//	@Failure	500			{object}	response.ErrorBody
//	@Router		/product/{productID}/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	up, err := asset.ReadUpload(r)
	if err != nil {
		response.FromError(w, err)
		return
	}

	fileID, err := h.svc.Upload(r.Context(), chi.URLParam(r, "productID"), up)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, response.FileCreated{Message: "product image uploaded successfully", FileID: fileID})
}

// List godoc
//
//	@Summary	List product images
//	@Tags		product
//	@Produce	json
//	@Security	BearerAuth
//	@Param		productID	path		string	true	"product id"
//	@Success	200			{object}	response.FileList
//	@Failure	500			{object}	response.ErrorBody
//	@Router		/product/{productID}/list [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	images, err := h.svc.List(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.OK(w, response.FileList{Images: images})
}

// Replace godoc
//
//	@Summary	Replace product image
//	@Tags		product
//	@Accept		mpfd
//	@Produce	json
//	@Security	BearerAuth
//	@Param		productID	path		string	true	"product id"
//	@Param		fileID		path		string	true	"file id"
//	@Param		file		formData	file	true	"image file"
//	@Success	200			{object}	response.FileReplaced
//	@Failure	400			{object}	response.ErrorBody
//	@Failure	403			{object}	response.ErrorBody
//	@Failure	404			{object}	response.ErrorBody
//	@Router		/product/{productID}/replace/{fileID} [put]
func (h *Handler) Replace(w http.ResponseWriter, r *http.Request) {
	up, err := asset.ReadUpload(r)
	if err != nil {
		response.FromError(w, err)
		return
	}

	newID, err := h.svc.Replace(r.Context(), chi.URLParam(r, "productID"), chi.URLParam(r, "fileID"), up)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, response.FileReplaced{Message: "image replaced successfully", NewFileID: newID})
}

// Download godoc
//
//	@Summary	Download product image
//	@Tags		product
//	@Produce	octet-stream
//	@Security	BearerAuth
//	@Param		productID	path	string	true	"product id"
//	@Param		fileID		path	string	true	"file id"
//	@Success	200			{file}	binary
//	@Failure	403			{object}	response.ErrorBody
//	@Failure	404			{object}	response.ErrorBody
//	@Router		/product/{productID}/download/{fileID} [get]
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	data, meta, err := h.svc.Download(r.Context(), chi.URLParam(r, "productID"), chi.URLParam(r, "fileID"))
	if err != nil {
		response.FromError(w, err)
		return
	}

	mimeType := meta.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", meta.Name))
	_, _ = w.Write(data)
}

// Delete godoc
//
//	@Summary	Delete product image
//	@Tags		product
//	@Produce	json
//	@Security	BearerAuth
//	@Param		productID	path		string	true	"product id"
//	@Param		fileID		path		string	true	"file id"
//	@Success	200			{object}	response.Message
//	@Failure	403			{object}	response.ErrorBody
//	@Failure	404			{object}	response.ErrorBody
//	@Router		/product/{productID}/delete/{fileID} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "productID"), chi.URLParam(r, "fileID")); err != nil {
		response.FromError(w, err)
		return
	}
	response.OK(w, response.Message{Message: "image deleted successfully"})
}
