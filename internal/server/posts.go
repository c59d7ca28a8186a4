package server

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common"

	"github.com/Decentr-net/go-api"

	"github.com/KartikRyzen2006/Web3-Social-Media-sub000/internal/entities"
)

func (s server) listPosts(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /v1/posts Posts ListPosts
	//
	// Returns page of visible posts with their authors' profiles.
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
	//   description: limits count of returned posts
	//   in: query
	//   required: false
	//   default: 20
	//   minimum: 1
	//   maximum: 100
	// responses:
	//   '200':
	//     description: Posts
	//     schema:
	//       "$ref": "#/definitions/ListPostsResponse"
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

	page, err := s.Service.GetAllPosts(r.Context(), offset, limit)
	if err != nil {
		writeServiceError(r.Context(), w, "posts", err)
		return
	}

	api.WriteOK(w, http.StatusOK, s.newListPostsResponse(r, page.Items, page.Total))
}

func (s server) getUserPosts(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /v1/profiles/{address}/posts Posts GetUserPosts
	//
	// Returns visible posts of address.
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
	//     description: Posts
	//     schema:
	//       "$ref": "#/definitions/ListPostsResponse"
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

	posts, err := s.Service.GetUserPosts(r.Context(), addr)
	if err != nil {
		writeServiceError(r.Context(), w, "posts", err)
		return
	}

	api.WriteOK(w, http.StatusOK, s.newListPostsResponse(r, posts, uint64(len(posts))))
}

func (s server) newListPostsResponse(r *http.Request, posts []entities.Post, total uint64) ListPostsResponse {
	out := ListPostsResponse{
		Posts: make([]Post, len(posts)),
		Total: total,
	}

	authors := make([]common.Address, len(posts))
	for i, p := range posts {
		out.Posts[i] = toAPIPost(p, s.Gateway)
		authors[i] = p.Author
	}
	out.Profiles = s.profiles(r.Context(), authors...)

	return out
}

func (s server) getPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /v1/posts/{id} Posts GetPost
	//
	// Get post by id.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: integer
	// - name: requestedBy
	//   in: query
	//   description: adds liked flag to response
	//   required: false
	//   example: 0xa11ce00000000000000000000000000000000001
	// responses:
	//   '200':
	//     description: Post
	//     schema:
	//       "$ref": "#/definitions/GetPostResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: post not found
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

	var requestedBy *common.Address
	if v := r.URL.Query().Get("requestedBy"); v != "" {
		a, err := parseAddress("requestedBy", v)
		if err != nil {
			api.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		requestedBy = &a
	}

	post, err := s.Service.GetPost(r.Context(), id)
	if err != nil {
		writeServiceError(r.Context(), w, "post", err)
		return
	}

	resp := GetPostResponse{Post: toAPIPost(*post, s.Gateway)}

	if p, ok := s.profiles(r.Context(), post.Author)[post.Author.Hex()]; ok {
		resp.Profile = &p
	}

	if requestedBy != nil {
		liked, err := s.Service.CheckIfLiked(r.Context(), id, *requestedBy)
		if err != nil {
			writeServiceError(r.Context(), w, "like", err)
			return
		}
		resp.Post.Liked = &liked
	}

	api.WriteOK(w, http.StatusOK, resp)
}

func (s server) getComments(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /v1/posts/{id}/comments Posts GetComments
	//
	// Returns comments of post. Replies reference parent comment by index.
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
	//     description: Comments
	//     schema:
	//       "$ref": "#/definitions/ListCommentsResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '404':
	//     description: post not found
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

	comments, err := s.Service.GetPostComments(r.Context(), id)
	if err != nil {
		writeServiceError(r.Context(), w, "post", err)
		return
	}

	resp := ListCommentsResponse{Comments: make([]Comment, len(comments))}
	authors := make([]common.Address, len(comments))
	for i, c := range comments {
		resp.Comments[i] = toAPIComment(c)
		authors[i] = c.Author
	}
	resp.Profiles = s.profiles(r.Context(), authors...)

	api.WriteOK(w, http.StatusOK, resp)
}

func (s server) checkLiked(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /v1/posts/{id}/likes/{address} Posts CheckLiked
	//
	// Checks if address liked post.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: integer
	// - name: address
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Liked flag
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

	id, err := idParam(r, "id")
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	addr, err := addressParam(r, "address")
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	ok, err := s.Service.CheckIfLiked(r.Context(), id, addr)
	if err != nil {
		writeServiceError(r.Context(), w, "like", err)
		return
	}

	api.WriteOK(w, http.StatusOK, BoolResponse{Value: ok})
}
