package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Decentr-net/go-api"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/entities"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/ipfs"
)

const (
	multipartSlack  = 1 << 20
	multipartMemory = 32 << 20
)

func (s server) uploadFile(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /v1/ipfs/file IPFS UploadFile
	//
	// Pins file to ipfs.
	//
	// ---
	// consumes:
	// - multipart/form-data
	// parameters:
	// - name: file
	//   in: formData
	//   required: true
	//   type: file
	// - name: name
	//   in: formData
	//   type: string
	// responses:
	//   '200':
	//     description: Pinned file
	//     schema:
	//       "$ref": "#/definitions/Upload"
	//   '400':
	//     description: no file or file is too large
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '502':
	//     description: pinning service failed
	//     schema:
	//       "$ref": "#/definitions/Error"

	r.Body = http.MaxBytesReader(w, r.Body, entities.MaxFileUploadSize+multipartSlack)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			api.WriteError(w, http.StatusBadRequest, fmt.Sprintf("file is too large, limit is %d bytes", entities.MaxFileUploadSize))
			return
		}
		api.WriteError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	f, h, err := r.FormFile("file")
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer f.Close()

	name := r.FormValue("name")
	if name == "" {
		name = h.Filename
	}

	metadata := map[string]string{}
	for k, v := range r.MultipartForm.Value {
		if k != "name" && len(v) > 0 {
			metadata[k] = v[0]
		}
	}

	u, err := s.IPFS.UploadFile(r.Context(), name, f, h.Size, metadata)
	if err != nil {
		writeUploadError(w, r, err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIUpload(u))
}

func (s server) uploadJSON(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /v1/ipfs/json IPFS UploadJSON
	//
	// Pins json document to ipfs.
	//
	// ---
	// consumes:
	// - application/json
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/JSONUploadRequest"
	// responses:
	//   '200':
	//     description: Pinned document
	//     schema:
	//       "$ref": "#/definitions/Upload"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '502':
	//     description: pinning service failed
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req JSONUploadRequest
	if err := decodeBody(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Content == nil {
		api.WriteError(w, http.StatusBadRequest, "content is required")
		return
	}

	u, err := s.IPFS.UploadJSON(r.Context(), req.Name, req.Content)
	if err != nil {
		writeUploadError(w, r, err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIUpload(u))
}

func writeUploadError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ipfs.ErrTooLarge):
		api.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ipfs.ErrNotConfigured):
		log.WithError(err).Error("upload rejected")
		api.WriteError(w, http.StatusInternalServerError, "ipfs upload is not configured")
	default:
		log.WithError(err).Error("failed to upload")
		api.WriteError(w, http.StatusBadGateway, "failed to upload to ipfs")
	}
}
