package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi"

	"github.com/Decentr-net/go-api"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/entities"
	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/service"
)

var (
	errInvalidRequest  = errors.New("invalid request")
	errInvalidPostType = fmt.Errorf("%w: invalid post type", errInvalidRequest)
)

func addressParam(r *http.Request, name string) (common.Address, error) {
	return parseAddress(name, chi.URLParam(r, name))
}

func parseAddress(name, s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: invalid %s", errInvalidRequest, name)
	}
	return common.HexToAddress(s), nil
}

func idParam(r *http.Request, name string) (uint64, error) {
	v, err := strconv.ParseUint(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s", errInvalidRequest, name)
	}
	return v, nil
}

func indexParam(r *http.Request, name string) (int, error) {
	v, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: invalid %s", errInvalidRequest, name)
	}
	return v, nil
}

func pageFromQuery(q url.Values) (offset, limit uint64, err error) {
	limit = entities.DefaultPageSize

	if s := q.Get("offset"); s != "" {
		if offset, err = strconv.ParseUint(s, 10, 64); err != nil {
			return 0, 0, fmt.Errorf("%w: failed to parse offset", errInvalidRequest)
		}
	}

	if s := q.Get("limit"); s != "" {
		if limit, err = strconv.ParseUint(s, 10, 64); err != nil {
			return 0, 0, fmt.Errorf("%w: failed to parse limit", errInvalidRequest)
		}
		if limit == 0 || limit > entities.MaxPageSize {
			return 0, 0, fmt.Errorf("%w: limit must be between 1 and %d", errInvalidRequest, entities.MaxPageSize)
		}
	}

	return offset, limit, nil
}

func limitFromQuery(q url.Values) (uint16, error) {
	_, limit, err := pageFromQuery(q)
	return uint16(limit), err
}

func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid body", errInvalidRequest)
	}
	return nil
}

// writeServiceError maps façade errors to http statuses.
func writeServiceError(ctx context.Context, w http.ResponseWriter, what string, err error) {
	var txErr *service.TxError

	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		api.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		api.WriteError(w, http.StatusNotFound, what+" not found")
	case errors.As(err, &txErr):
		switch txErr.Kind {
		case service.Network:
			api.WriteError(w, http.StatusBadGateway, txErr.Message)
		case service.Unknown:
			api.WriteInternalErrorf(ctx, w, "failed to %s: %s", what, err.Error())
		default:
			api.WriteError(w, http.StatusBadRequest, txErr.Message)
		}
	default:
		api.WriteInternalErrorf(ctx, w, "failed to get %s: %s", what, err.Error())
	}
}

// profiles returns profiles of addresses, failures leave response without profiles.
func (s server) profiles(ctx context.Context, addrs ...common.Address) map[string]Profile {
	if s.Profiles == nil || len(addrs) == 0 {
		return map[string]Profile{}
	}

	m, err := s.Profiles.Profiles(ctx, addrs...)
	if err != nil {
		log.WithError(err).Warn("failed to get profiles")
		return map[string]Profile{}
	}

	return toAPIProfiles(m)
}
