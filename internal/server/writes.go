package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi"

	"github.com/Decentr-net/go-api"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/entities"
)

// Write routes send transactions signed by the gateway key and respond 202 with the submitted transaction.
// Its status can be followed with GET /v1/tx/{hash}.
func (s server) setupWrites(r chi.Router) {
	r.Post("/profiles", s.createProfile)
	r.Put("/profiles/name", s.setProfileName)
	r.Delete("/profiles", s.write(func(ctx context.Context, _ *http.Request) (*entities.Tx, error) {
		return s.Service.DeleteProfile(ctx)
	}))
	r.Post("/profiles/{address}/follow", s.writeAddress(s.Service.FollowUser))
	r.Delete("/profiles/{address}/follow", s.writeAddress(s.Service.UnfollowUser))

	r.Post("/posts", s.createPost)
	r.Put("/posts/{id}", s.editPost)
	r.Delete("/posts/{id}", s.writeID(s.Service.DeletePost))
	r.Post("/posts/{id}/like", s.writeID(s.Service.LikePost))
	r.Delete("/posts/{id}/like", s.writeID(s.Service.UnlikePost))
	r.Post("/posts/{id}/comments", s.addComment)

	r.Post("/groups", s.createGroup)
	r.Post("/groups/{id}/join", s.writeID(s.Service.JoinGroup))
	r.Delete("/groups/{id}", s.writeID(s.Service.DeleteGroup))
	r.Post("/groups/{id}/messages", s.sendGroupMessage)
	r.Delete("/groups/{id}/messages/{index}", s.deleteGroupMessage)

	r.Post("/messages/{address}", s.sendDirectMessage)
	r.Delete("/messages/{address}/{index}", s.deleteDirectMessage)

	r.Post("/admin/admins/{address}", s.writeAddress(s.Service.AddAdmin))
	r.Delete("/admin/admins/{address}", s.writeAddress(s.Service.RemoveAdmin))
	r.Post("/admin/pause", s.write(func(ctx context.Context, _ *http.Request) (*entities.Tx, error) {
		return s.Service.Pause(ctx)
	}))
	r.Post("/admin/unpause", s.write(func(ctx context.Context, _ *http.Request) (*entities.Tx, error) {
		return s.Service.Unpause(ctx)
	}))
	r.Post("/admin/withdraw", s.write(func(ctx context.Context, _ *http.Request) (*entities.Tx, error) {
		return s.Service.EmergencyWithdraw(ctx)
	}))
}

// write wraps transaction sender into handler.
func (s server) write(f func(ctx context.Context, r *http.Request) (*entities.Tx, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tx, err := f(r.Context(), r)
		if err != nil {
			if errors.Is(err, errInvalidRequest) {
				api.WriteError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeServiceError(r.Context(), w, "transaction", err)
			return
		}

		api.WriteOK(w, http.StatusAccepted, toAPITx(tx))
	}
}

func (s server) writeAddress(f func(ctx context.Context, addr common.Address) (*entities.Tx, error)) http.HandlerFunc {
	return s.write(func(ctx context.Context, r *http.Request) (*entities.Tx, error) {
		addr, err := addressParam(r, "address")
		if err != nil {
			return nil, err
		}
		return f(ctx, addr)
	})
}

func (s server) writeID(f func(ctx context.Context, id uint64) (*entities.Tx, error)) http.HandlerFunc {
	return s.write(func(ctx context.Context, r *http.Request) (*entities.Tx, error) {
		id, err := idParam(r, "id")
		if err != nil {
			return nil, err
		}
		return f(ctx, id)
	})
}

func replyTo(v *int) int {
	if v == nil {
		return entities.NoReply
	}
	return *v
}

func (s server) createProfile(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /v1/profiles Writes CreateProfile
	//
	// Creates profile of the gateway account.
	//
	// ---
	// consumes:
	// - application/json
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/NameRequest"
	// responses:
	//   '202':
	//     description: Submitted transaction
	//     schema:
	//       "$ref": "#/definitions/Tx"
	//   '400':
	//     description: bad request, rejected or reverted transaction
	//     schema:
	//       "$ref": "#/definitions/Error"

	s.write(func(ctx context.Context, r *http.Request) (*entities.Tx, error) {
		var req NameRequest
		if err := decodeBody(r, &req); err != nil {
			return nil, err
		}
		return s.Service.CreateProfile(ctx, req.Name)
	})(w, r)
}

func (s server) setProfileName(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PUT /v1/profiles/name Writes SetProfileName
	//
	// Renames profile of the gateway account.
	//
	// ---
	// consumes:
	// - application/json
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/NameRequest"
	// responses:
	//   '202':
	//     description: Submitted transaction
	//     schema:
	//       "$ref": "#/definitions/Tx"
	//   '400':
	//     description: bad request, rejected or reverted transaction
	//     schema:
	//       "$ref": "#/definitions/Error"

	s.write(func(ctx context.Context, r *http.Request) (*entities.Tx, error) {
		var req NameRequest
		if err := decodeBody(r, &req); err != nil {
			return nil, err
		}
		return s.Service.SetProfileName(ctx, req.Name)
	})(w, r)
}

func (s server) createPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /v1/posts Writes CreatePost
	//
	// Creates post paying the post fee.
	//
	// ---
	// consumes:
	// - application/json
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/CreatePostRequest"
	// responses:
	//   '202':
	//     description: Submitted transaction
	//     schema:
	//       "$ref": "#/definitions/Tx"
	//   '400':
	//     description: bad request, rejected or reverted transaction
	//     schema:
	//       "$ref": "#/definitions/Error"

	s.write(func(ctx context.Context, r *http.Request) (*entities.Tx, error) {
		var req CreatePostRequest
		if err := decodeBody(r, &req); err != nil {
			return nil, err
		}

		t, ok := entities.ParsePostType(req.Type)
		if !ok {
			return nil, errInvalidPostType
		}

		return s.Service.CreatePost(ctx, t, req.Description, req.ContentURL)
	})(w, r)
}

func (s server) editPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PUT /v1/posts/{id} Writes EditPost
	//
	// Edits post description and content.
	//
	// ---
	// consumes:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: integer
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/EditPostRequest"
	// responses:
	//   '202':
	//     description: Submitted transaction
	//     schema:
	//       "$ref": "#/definitions/Tx"
	//   '400':
	//     description: bad request, rejected or reverted transaction
	//     schema:
	//       "$ref": "#/definitions/Error"

	s.write(func(ctx context.Context, r *http.Request) (*entities.Tx, error) {
		id, err := idParam(r, "id")
		if err != nil {
			return nil, err
		}

		var req EditPostRequest
		if err := decodeBody(r, &req); err != nil {
			return nil, err
		}

		return s.Service.EditPost(ctx, id, req.Description, req.ContentURL)
	})(w, r)
}

func (s server) addComment(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /v1/posts/{id}/comments Writes AddComment
	//
	// Comments post or replies to a comment.
	//
	// ---
	// consumes:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: integer
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/CommentRequest"
	// responses:
	//   '202':
	//     description: Submitted transaction
	//     schema:
	//       "$ref": "#/definitions/Tx"
	//   '400':
	//     description: bad request, rejected or reverted transaction
	//     schema:
	//       "$ref": "#/definitions/Error"

	s.write(func(ctx context.Context, r *http.Request) (*entities.Tx, error) {
		id, err := idParam(r, "id")
		if err != nil {
			return nil, err
		}

		var req CommentRequest
		if err := decodeBody(r, &req); err != nil {
			return nil, err
		}

		return s.Service.AddComment(ctx, id, req.Text, replyTo(req.ReplyTo))
	})(w, r)
}

func (s server) createGroup(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /v1/groups Writes CreateGroup
	//
	// Creates group paying the group fee.
	//
	// ---
	// consumes:
	// - application/json
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/GroupRequest"
	// responses:
	//   '202':
	//     description: Submitted transaction
	//     schema:
	//       "$ref": "#/definitions/Tx"
	//   '400':
	//     description: bad request, rejected or reverted transaction
	//     schema:
	//       "$ref": "#/definitions/Error"

	s.write(func(ctx context.Context, r *http.Request) (*entities.Tx, error) {
		var req GroupRequest
		if err := decodeBody(r, &req); err != nil {
			return nil, err
		}
		return s.Service.CreateGroup(ctx, req.Name, req.Description)
	})(w, r)
}

func (s server) sendGroupMessage(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /v1/groups/{id}/messages Writes SendGroupMessage
	//
	// Sends message to group.
	//
	// ---
	// consumes:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: integer
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/MessageRequest"
	// responses:
	//   '202':
	//     description: Submitted transaction
	//     schema:
	//       "$ref": "#/definitions/Tx"
	//   '400':
	//     description: bad request, rejected or reverted transaction
	//     schema:
	//       "$ref": "#/definitions/Error"

	s.write(func(ctx context.Context, r *http.Request) (*entities.Tx, error) {
		id, err := idParam(r, "id")
		if err != nil {
			return nil, err
		}

		var req MessageRequest
		if err := decodeBody(r, &req); err != nil {
			return nil, err
		}

		return s.Service.SendGroupMessage(ctx, id, req.Content, replyTo(req.ReplyTo))
	})(w, r)
}

func (s server) deleteGroupMessage(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /v1/groups/{id}/messages/{index} Writes DeleteGroupMessage
	//
	// Deletes own group message.
	//
	// ---
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: integer
	// - name: index
	//   in: path
	//   required: true
	//   type: integer
	// responses:
	//   '202':
	//     description: Submitted transaction
	//     schema:
	//       "$ref": "#/definitions/Tx"
	//   '400':
	//     description: bad request, rejected or reverted transaction
	//     schema:
	//       "$ref": "#/definitions/Error"

	s.write(func(ctx context.Context, r *http.Request) (*entities.Tx, error) {
		id, err := idParam(r, "id")
		if err != nil {
			return nil, err
		}

		index, err := indexParam(r, "index")
		if err != nil {
			return nil, err
		}

		return s.Service.DeleteGroupMessage(ctx, id, index)
	})(w, r)
}

func (s server) sendDirectMessage(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /v1/messages/{address} Writes SendDirectMessage
	//
	// Sends direct message to address.
	//
	// ---
	// consumes:
	// - application/json
	// parameters:
	// - name: address
	//   in: path
	//   required: true
	//   type: string
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/MessageRequest"
	// responses:
	//   '202':
	//     description: Submitted transaction
	//     schema:
	//       "$ref": "#/definitions/Tx"
	//   '400':
	//     description: bad request, rejected or reverted transaction
	//     schema:
	//       "$ref": "#/definitions/Error"

	s.write(func(ctx context.Context, r *http.Request) (*entities.Tx, error) {
		to, err := addressParam(r, "address")
		if err != nil {
			return nil, err
		}

		var req MessageRequest
		if err := decodeBody(r, &req); err != nil {
			return nil, err
		}

		return s.Service.SendDirectMessage(ctx, to, req.Content, replyTo(req.ReplyTo))
	})(w, r)
}

func (s server) deleteDirectMessage(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /v1/messages/{address}/{index} Writes DeleteDirectMessage
	//
	// Deletes own message of conversation with address.
	//
	// ---
	// parameters:
	// - name: address
	//   in: path
	//   required: true
	//   type: string
	// - name: index
	//   in: path
	//   required: true
	//   type: integer
	// responses:
	//   '202':
	//     description: Submitted transaction
	//     schema:
	//       "$ref": "#/definitions/Tx"
	//   '400':
	//     description: bad request, rejected or reverted transaction
	//     schema:
	//       "$ref": "#/definitions/Error"

	s.write(func(ctx context.Context, r *http.Request) (*entities.Tx, error) {
		other, err := addressParam(r, "address")
		if err != nil {
			return nil, err
		}

		index, err := indexParam(r, "index")
		if err != nil {
			return nil, err
		}

		return s.Service.DeleteDirectMessage(ctx, other, index)
	})(w, r)
}
