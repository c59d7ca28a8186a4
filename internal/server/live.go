package server

import (
	"errors"
	"net/http"

	"github.com/Decentr-net/go-api"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/livestats"
)

func (s server) getLiveStats(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /api/live/stats Live GetLiveStats
	//
	// Returns live stream stats.
	//
	// ---
	// responses:
	//   '200':
	//     description: Live stats
	//   '500':
	//     schema:
	//       "$ref": "#/definitions/Error"

	stats, err := s.Live.Get(r.Context())
	if err != nil {
		api.WriteInternalErrorf(r.Context(), w, "failed to get live stats: %s", err.Error())
		return
	}

	api.WriteOK(w, http.StatusOK, stats)
}

func (s server) postLiveStats(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /api/live/stats Live PostLiveStats
	//
	// Applies action to live stream stats.
	//
	// ---
	// consumes:
	// - application/json
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     type: object
	//     properties:
	//       action:
	//         type: string
	//         enum: [start_stream, end_stream, view, like, chat]
	// responses:
	//   '200':
	//     description: Updated live stats
	//   '400':
	//     description: unknown or invalid action
	//     schema:
	//       "$ref": "#/definitions/Error"

	var a livestats.Action
	if err := decodeBody(r, &a); err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	stats, err := s.Live.Apply(r.Context(), a)
	if err != nil {
		if errors.Is(err, livestats.ErrUnknownAction) || errors.Is(err, livestats.ErrInvalidAction) {
			api.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		api.WriteInternalErrorf(r.Context(), w, "failed to apply live action: %s", err.Error())
		return
	}

	api.WriteOK(w, http.StatusOK, stats)
}
