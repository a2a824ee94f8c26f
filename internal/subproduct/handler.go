package subproduct

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/inventory/drive-gateway/internal/asset"
	"github.com/inventory/drive-gateway/internal/response"
)

// Handler holds HTTP handlers for subproduct image endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new subproduct Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func scopeParams(r *http.Request) (productID, subproductID string) {
	return chi.URLParam(r, "productID"), chi.URLParam(r, "subproductID")
}

// Upload godoc
//
//	@Summary	Upload subproduct image
//	@Tags		subproduct
//	@Accept		mpfd
//	@Produce	json
//	@Security	BearerAuth
//	@Param		productID		path		string	true	"product id"
//	@Param		subproductID	path		string	true	"subproduct id"
//	@Param		file			formData	file	true	"image file"
//	@Success	200				{object}	response.FileCreated
//	@Failure	400				{object}	response.ErrorBody
//	@Failure	401				{object}	response.ErrorBody
//	@Failure	500				{object}	response.ErrorBody
//	@Router		/subproduct/{productID}/{subproductID}/upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	up, err := asset.ReadUpload(r)
	if err != nil {
		response.FromError(w, err)
		return
	}

	productID, subproductID := scopeParams(r)
	fileID, err := h.svc.Upload(r.Context(), productID, subproductID, up)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, response.FileCreated{Message: "subproduct image uploaded successfully", FileID: fileID})
}

// List godoc
//
//	@Summary	List subproduct images
//	@Tags		subproduct
//	@Produce	json
//	@Security	BearerAuth
//	@Param		productID		path		string	true	"product id"
//	@Param		subproductID	path		string	true	"subproduct id"
//	@Success	200				{object}	response.FileList
//	@Failure	500				{object}	response.ErrorBody
//	@Router		/subproduct/{productID}/{subproductID}/list [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	productID, subproductID := scopeParams(r)
	images, err := h.svc.List(r.Context(), productID, subproductID)
	if err != nil {
		response.FromError(w, err)
		return
	}
	response.OK(w, response.FileList{Images: images})
}

// Replace godoc
//
//	@Summary	Replace subproduct image
//	@Tags		subproduct
//	@Accept		mpfd
//	@Produce	json
//	@Security	BearerAuth
//	@Param		productID		path		string	true	"product id"
//	@Param		subproductID	path		string	true	"subproduct id"
//	@Param		fileID			path		string	true	"file id"
//	@Param		file			formData	file	true	"image file"
//	@Success	200				{object}	response.FileReplaced
//	@Failure	400				{object}	response.ErrorBody
//	@Failure	403				{object}	response.ErrorBody
//	@Failure	404				{object}	response.ErrorBody
//	@Router		/subproduct/{productID}/{subproductID}/replace/{fileID} [put]
func (h *Handler) Replace(w http.ResponseWriter, r *http.Request) {
	up, err := asset.ReadUpload(r)
	if err != nil {
		response.FromError(w, err)
		return
	}

	productID, subproductID := scopeParams(r)
	newID, err := h.svc.Replace(r.Context(), productID, subproductID, chi.URLParam(r, "fileID"), up)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, response.FileReplaced{Message: "image replaced successfully", NewFileID: newID})
}

// Download godoc
//
//	@Summary	Download subproduct image
//	@Tags		subproduct
//	@Produce	octet-stream
//	@Security	BearerAuth
//	@Param		productID		path	string	true	"product id"
//	@Param		subproductID	path	string	true	"subproduct id"
//	@Param		fileID			path	string	true	"file id"
//	@Success	200				{file}	binary
//	@Failure	403				{object}	response.ErrorBody
//	@Failure	404				{object}	response.ErrorBody
//	@Router		/subproduct/{productID}/{subproductID}/download/{fileID} [get]
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	productID, subproductID := scopeParams(r)
	data, meta, err := h.svc.Download(r.Context(), productID, subproductID, chi.URLParam(r, "fileID"))
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
//	@Summary	Delete subproduct image
//	@Tags		subproduct
//	@Produce	json
//	@Security	BearerAuth
//	@Param		productID		path		string	true	"product id"
//	@Param		subproductID	path		string	true	"subproduct id"
//	@Param		fileID			path		string	true	"file id"
//	@Success	200				{object}	response.Message
//	@Failure	403				{object}	response.ErrorBody
//	@Failure	404				{object}	response.ErrorBody
//	@Router		/subproduct/{productID}/{subproductID}/delete/{fileID} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	productID, subproductID := scopeParams(r)
	if err := h.svc.Delete(r.Context(), productID, subproductID, chi.URLParam(r, "fileID")); err != nil {
		response.FromError(w, err)
		return
	}
	response.OK(w, response.Message{Message: "image deleted successfully"})
}
