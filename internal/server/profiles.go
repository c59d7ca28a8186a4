package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/Decentr-net/go-api"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/service"
)

// ProfileNotFoundResponse ...
// swagger:model
type ProfileNotFoundResponse struct {
	Error
	Profile
}

func (s server) getProfile(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /v1/profiles/{address} Profiles GetProfile
	//
	// Get profile by address.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: address
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Profile
	//     schema:
	//       "$ref": "#/definitions/Profile"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: profile not found, exists is false
	//     schema:
	//       "$ref": "#/definitions/ProfileNotFoundResponse"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	addr, err := addressParam(r, "address")
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := s.Service.GetProfile(r.Context(), addr)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			api.WriteOK(w, http.StatusNotFound, ProfileNotFoundResponse{
				Error:   Error{Error: "profile not found"},
				Profile: Profile{Address: addr.Hex()},
			})
			return
		}
		writeServiceError(r.Context(), w, "profile", err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIProfile(p))
}

func (s server) listUsers(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /v1/users Profiles ListUsers
	//
	// Returns page of registered users.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: offset
	//   in: query
	//   required: false
	//   default: 0
	// - name: limit
	//   in: query
	//   required: false
	//   default: 20
	//   minimum: 1
	//   maximum: 100
	// responses:
	//   '200':
	//     description: Users
	//     schema:
	//       "$ref": "#/definitions/ListUsersResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	offset, limit, err := pageFromQuery(r.URL.Query())
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, err := s.Service.GetAllUsers(r.Context(), offset, limit)
	if err != nil {
		writeServiceError(r.Context(), w, "users", err)
		return
	}

	resp := ListUsersResponse{Users: make([]Profile, len(page.Items)), Total: page.Total}
	for i := range page.Items {
		resp.Users[i] = toAPIProfile(&page.Items[i])
	}

	api.WriteOK(w, http.StatusOK, resp)
}

func (s server) getFollowers(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /v1/profiles/{address}/followers Profiles GetFollowers
	//
	// Returns followers of address with their profiles.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: address
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Followers
	//     schema:
	//       "$ref": "#/definitions/AddressesResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	s.writeAddresses(w, r, "followers", s.Service.GetFollowers)
}

func (s server) getFollowing(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /v1/profiles/{address}/following Profiles GetFollowing
	//
	// Returns addresses followed by address with their profiles.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: address
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Following
	//     schema:
	//       "$ref": "#/definitions/AddressesResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	s.writeAddresses(w, r, "following", s.Service.GetFollowing)
}

func (s server) writeAddresses(w http.ResponseWriter, r *http.Request, what string,
	get func(ctx context.Context, addr common.Address) ([]common.Address, error)) {
	addr, err := addressParam(r, "address")
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	list, err := get(r.Context(), addr)
	if err != nil {
		writeServiceError(r.Context(), w, what, err)
		return
	}

	api.WriteOK(w, http.StatusOK, AddressesResponse{
		Addresses: hexes(list),
		Profiles:  s.profiles(r.Context(), list...),
	})
}

func (s server) checkFollowing(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /v1/profiles/{address}/following/{target} Profiles CheckFollowing
	//
	// Checks if address follows target.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: address
	//   in: path
	//   required: true
	//   type: string
	// - name: target
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Following flag
	//     schema:
	//       "$ref": "#/definitions/BoolResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	follower, err := addressParam(r, "address")
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	followee, err := addressParam(r, "target")
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	ok, err := s.Service.CheckIsFollowing(r.Context(), follower, followee)
	if err != nil {
		writeServiceError(r.Context(), w, "following", err)
		return
	}

	api.WriteOK(w, http.StatusOK, BoolResponse{Value: ok})
}

func (s server) validateUsername(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /v1/validate/username Profiles ValidateUsername
	//
	// Checks username before profile creation.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: name
	//   in: query
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Validation result
	//     schema:
	//       "$ref": "#/definitions/ValidateResponse"

	if err := service.ValidateUsername(r.URL.Query().Get("name")); err != nil {
		api.WriteOK(w, http.StatusOK, ValidateResponse{
			Error: strings.TrimPrefix(err.Error(), service.ErrInvalidArgument.Error()+": "),
		})
		return
	}

	api.WriteOK(w, http.StatusOK, ValidateResponse{Valid: true})
}

func (s server) getAdminStatus(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /v1/admin/status Admin GetAdminStatus
	//
	// Returns contract owner, pause flag, balance and admin flag of address.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: address
	//   in: query
	//   required: false
	//   type: string
	// responses:
	//   '200':
	//     description: Status
	//     schema:
	//       "$ref": "#/definitions/AdminStatus"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '500':
	//     description: internal server error
	//     schema:
	//       "$ref": "#/definitions/Error"

	var addr common.Address
	if v := r.URL.Query().Get("address"); v != "" {
		var err error
		if addr, err = parseAddress("address", v); err != nil {
			api.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	st, err := s.Service.GetAdminStatus(r.Context(), addr)
	if err != nil {
		writeServiceError(r.Context(), w, "admin status", err)
		return
	}

	api.WriteOK(w, http.StatusOK, toAPIAdminStatus(st))
}
