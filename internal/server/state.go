package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-chi/chi"

	"github.com/Decentr-net/go-api"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/chain"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/entities"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/service"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/storage"
)

func (s server) listNotifications(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /v1/profiles/{address}/notifications State ListNotifications
	//
	// Returns latest notifications of address and count of unread ones.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: address
	//   in: path
	//   required: true
	//   type: string
	// - name: limit
	//   in: query
	//   required: false
	//   default: 20
	//   minimum: 1
	//   maximum: 100
	// responses:
	//   '200':
	//     description: Notifications
	//     schema:
	//       "$ref": "#/definitions/ListNotificationsResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	addr, err := addressParam(r, "address")
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	limit, err := limitFromQuery(r.URL.Query())
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	list, err := s.Storage.ListNotifications(r.Context(), addr, limit)
	if err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to list notifications: %s", err.Error())
		return
	}

	unread, err := s.Storage.CountUnread(r.Context(), addr)
	if err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to count unread notifications: %s", err.Error())
		return
	}

	resp := ListNotificationsResponse{Notifications: make([]Notification, len(list)), Unread: unread}
	for i, v := range list {
		resp.Notifications[i] = toAPINotification(v)
	}

	api.WriteOK(w, http.StatusOK, resp)
}

func (s server) markNotificationsRead(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /v1/profiles/{address}/notifications/read State MarkNotificationsRead
	//
	// Marks notifications as read.
	//
	// ---
	// produces:
	// - application/json
	// consumes:
	// - application/json
	// parameters:
	// - name: address
	//   in: path
	//   required: true
	//   type: string
	// - name: request
	//   in: body
	//   required: false
	//   schema:
	//     "$ref": "#/definitions/MarkReadRequest"
	// responses:
	//   '204':
	//     description: Marked
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	addr, err := addressParam(r, "address")
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req MarkReadRequest
	if r.ContentLength != 0 {
		if err := decodeBody(r, &req); err != nil {
			api.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	if err := s.Storage.MarkNotificationsRead(r.Context(), addr, req.IDs...); err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to mark notifications: %s", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) listActivity(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /v1/profiles/{address}/activity State ListActivity
	//
	// Returns latest confirmed actions of address.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: address
	//   in: path
	//   required: true
	//   type: string
	// - name: limit
	//   in: query
	//   required: false
	//   default: 20
	//   minimum: 1
	//   maximum: 100
	// responses:
	//   '200':
	//     description: Activity
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Activity"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	addr, err := addressParam(r, "address")
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	limit, err := limitFromQuery(r.URL.Query())
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	list, err := s.Storage.ListActivity(r.Context(), addr, limit)
	if err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to list activity: %s", err.Error())
		return
	}

	out := make([]Activity, len(list))
	for i, v := range list {
		out[i] = toAPIActivity(v)
	}

	api.WriteOK(w, http.StatusOK, out)
}

func hashParam(r *http.Request, name string) (common.Hash, error) {
	b, err := hexutil.Decode(chi.URLParam(r, name))
	if err != nil || len(b) != common.HashLength {
		return common.Hash{}, errInvalidHash
	}
	return common.BytesToHash(b), nil
}

var errInvalidHash = errors.New("invalid request: invalid hash")

func (s server) getTx(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /v1/tx/{hash} Transactions GetTx
	//
	// Returns status of tracked transaction.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: hash
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Transaction
	//     schema:
	//       "$ref": "#/definitions/Tx"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: transaction is not tracked
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	hash, err := hashParam(r, "hash")
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	tx, err := s.Storage.GetTx(r.Context(), hash)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			api.WriteError(w, http.StatusNotFound, "tx not found")
			return
		}
		api.WriteInternalErrorf(r.Context(), w, "failed to get tx: %s", err.Error())
		return
	}

	api.WriteOK(w, http.StatusOK, toAPITx(tx))
}

func (s server) trackTx(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /v1/tx Transactions TrackTx
	//
	// Registers transaction sent by a wallet to be followed until it is mined.
	//
	// ---
	// produces:
	// - application/json
	// consumes:
	// - application/json
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/TrackTxRequest"
	// responses:
	//   '202':
	//     description: Transaction
	//     schema:
	//       "$ref": "#/definitions/Tx"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req TrackTxRequest
	if err := decodeBody(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	b, err := hexutil.Decode(req.Hash)
	if err != nil || len(b) != common.HashLength {
		api.WriteError(w, http.StatusBadRequest, errInvalidHash.Error())
		return
	}

	from, err := parseAddress("from", req.From)
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Method = strings.TrimSpace(req.Method); req.Method == "" {
		api.WriteError(w, http.StatusBadRequest, "invalid request: method is required")
		return
	}

	now := time.Now().UTC()
	tx := entities.Tx{
		Hash:        common.BytesToHash(b),
		Method:      req.Method,
		From:        from,
		Args:        req.Args,
		Status:      entities.TxSubmitted,
		SubmittedAt: now,
		UpdatedAt:   now,
	}

	if err := s.Tracker.Track(r.Context(), &tx); err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to track tx: %s", err.Error())
		return
	}

	api.WriteOK(w, http.StatusAccepted, toAPITx(&tx))
}

func (s server) parseTxError(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /v1/tx/errors Transactions ParseTxError
	//
	// Classifies error reported by a wallet into a message to show to the user.
	//
	// ---
	// produces:
	// - application/json
	// consumes:
	// - application/json
	// responses:
	//   '200':
	//     description: Classified error
	//     schema:
	//       "$ref": "#/definitions/TxError"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req chain.WalletError
	if err := decodeBody(r, &req); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	e := service.ParseError(&req)

	api.WriteOK(w, http.StatusOK, TxError{Kind: string(e.Kind), Message: e.Message})
}
