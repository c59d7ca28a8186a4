package server

import (
	"errors"
	"net/http"

	"github.com/ethereum/go-ethereum/common"

	"github.com/Decentr-net/go-api"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/entities"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/service"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/storage"
)

func (s server) listGroups(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /v1/groups Groups ListGroups
	//
	// Returns all existing groups.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: Groups
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Group"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	groups, err := s.Service.GetAllGroups(r.Context())
	if err != nil {
		writeServiceError(r.Context(), w, "groups", err)
		return
	}

	out := make([]Group, len(groups))
	for i, g := range groups {
		out[i] = toAPIGroup(g)
	}

	api.WriteOK(w, http.StatusOK, out)
}

func (s server) getGroup(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /v1/groups/{id} Groups GetGroup
	//
	// Get group by id.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: integer
	// responses:
	//   '200':
	//     description: Group
	//     schema:
	//       "$ref": "#/definitions/Group"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: group not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, err := idParam(r, "id")
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	g, err := s.Service.GetGroupDetails(r.Context(), id)
	if err != nil {
		writeServiceError(r.Context(), w, "group", err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIGroup(*g))
}

func (s server) getGroupMessages(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /v1/groups/{id}/messages Groups GetGroupMessages
	//
	// Returns group messages. Last fetched messages are served from cache when the chain is unavailable.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: integer
	// responses:
	//   '200':
	//     description: Messages
	//     schema:
	//       "$ref": "#/definitions/ListMessagesResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: group not found
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	id, err := idParam(r, "id")
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	l := log.WithField("group", id)

	msgs, err := s.Service.GetGroupMessages(r.Context(), id)
	if err == nil {
		if s.Storage != nil {
			if err := s.Storage.CacheGroupMessages(r.Context(), id, msgs); err != nil {
				l.WithError(err).Warn("failed to cache group messages")
			}
		}
		api.WriteOK(w, http.StatusOK, s.newListMessagesResponse(r, msgs, false))
		return
	}

	if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrInvalidArgument) || s.Storage == nil {
		writeServiceError(r.Context(), w, "group", err)
		return
	}

	cached, cerr := s.Storage.GetCachedGroupMessages(r.Context(), id)
	if cerr != nil {
		if !errors.Is(cerr, storage.ErrNotFound) {
			l.WithError(cerr).Warn("failed to get cached group messages")
		}
		writeServiceError(r.Context(), w, "group messages", err)
		return
	}

	l.WithError(err).Warn("serving cached group messages")
	api.WriteOK(w, http.StatusOK, s.newListMessagesResponse(r, cached.Messages, true))
}

func (s server) getDirectMessages(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /v1/messages/{a}/{b} Messages GetDirectMessages
	//
	// Returns conversation between two addresses.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: a
	//   in: path
	//   required: true
	//   type: string
	// - name: b
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Messages
	//     schema:
	//       "$ref": "#/definitions/ListMessagesResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	a, err := addressParam(r, "a")
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	b, err := addressParam(r, "b")
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	msgs, err := s.Service.GetDirectMessages(r.Context(), a, b)
	if err != nil {
		writeServiceError(r.Context(), w, "messages", err)
		return
	}

	api.WriteOK(w, http.StatusOK, s.newListMessagesResponse(r, msgs, false))
}

func (s server) newListMessagesResponse(r *http.Request, msgs []entities.Message, cached bool) ListMessagesResponse {
	out := ListMessagesResponse{
		Messages: make([]Message, len(msgs)),
		Cached:   cached,
	}

	senders := make([]common.Address, len(msgs))
	for i, m := range msgs {
		out.Messages[i] = toAPIMessage(m)
		senders[i] = m.Sender
	}
	out.Profiles = s.profiles(r.Context(), senders...)

	return out
}
