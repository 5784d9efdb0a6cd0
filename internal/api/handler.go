package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/access/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/api.go -package=mocks -typed

type Service interface {
	AccessProfile(ctx context.Context) (entity.AccessProfile, error)
	CanViewUser(ctx context.Context, targetID uuid.UUID) (bool, error)
	Authorize(ctx context.Context, permission entity.Permission, targetID *uuid.UUID) (bool, error)
	Counsellees(ctx context.Context, counsellorID uuid.UUID) ([]entity.User, error)
	AssignCounsellee(ctx context.Context, counsellorID, counselleeID uuid.UUID) error
	UnassignCounsellee(ctx context.Context, counsellorID, counselleeID uuid.UUID) error
	TransferAdminRights(ctx context.Context, toUserID uuid.UUID) (entity.AdminRightsTransfer, error)
	AdminRightsTransfers(ctx context.Context) ([]entity.AdminRightsTransfer, error)
}

type TokenValidator interface {
	Validate(accessToken string) (entity.UserJwtInfo, error)
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s: s,
	}
}

// @Summary Health check
// @Description Reports that the server is up
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /api/health [get]
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("OK\n"))
}

// @Summary List roles
// @Description Returns every known role with its display name, badge and permissions, lowest authority first
// @Tags roles
// @Produce json
// @Success 200 {array} entity.RoleInfo
// @Router /api/roles [get]
func (h *Handler) Roles(w http.ResponseWriter, r *http.Request) {
	roles := entity.Roles()

	infos := make([]entity.RoleInfo, 0, len(roles))
	for _, role := range roles {
		infos = append(infos, entity.RoleInfoOf(role))
	}

	sendJSON(r.Context(), w, http.StatusOK, infos)
}

// @Summary Describe a role
// @Description Unknown roles are not an error: they get the most restrictive answers and the "Unknown Role" label
// @Tags roles
// @Produce json
// @Param role path string true "Role name"
// @Success 200 {object} entity.RoleInfo
// @Router /api/roles/{role} [get]
func (h *Handler) Role(w http.ResponseWriter, r *http.Request) {
	role := entity.Role(chi.URLParam(r, "role"))

	sendJSON(r.Context(), w, http.StatusOK, entity.RoleInfoOf(role))
}

// @Summary Access profile of the current user
// @Tags access
// @Produce json
// @Security BearerAuth
// @Success 200 {object} entity.AccessProfile
// @Failure 401 {object} ResponseError
// @Failure 500 {object} ResponseError
// @Router /api/access/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profile, err := h.s.AccessProfile(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, profile)
}

type DecisionResponse struct {
	Permission entity.Permission `json:"permission"`
	Allowed    bool              `json:"allowed"`
}

// @Summary Can the current user view another user's data
// @Tags access
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "Target user ID"
// @Success 200 {object} DecisionResponse
// @Failure 400 {object} ResponseError
// @Failure 401 {object} ResponseError
// @Failure 500 {object} ResponseError
// @Router /api/access/users/{user_id}/view [get]
func (h *Handler) CanViewUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	targetID, err := uuidParam(r, "user_id")
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, "Invalid user_id")
		return
	}

	allowed, err := h.s.CanViewUser(ctx, targetID)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, DecisionResponse{
		Permission: entity.PermissionViewUserData,
		Allowed:    allowed,
	})
}

type CheckRequest struct {
	Permission   entity.Permission `json:"permission"`
	TargetUserID *uuid.UUID        `json:"target_user_id,omitempty"`
}

// @Summary Check a permission for the current user
// @Description view_user_data needs target_user_id. Unknown permissions are denied.
// @Tags access
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CheckRequest true "Permission to check"
// @Success 200 {object} DecisionResponse
// @Failure 400 {object} ResponseError
// @Failure 401 {object} ResponseError
// @Failure 500 {object} ResponseError
// @Router /api/access/check [post]
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CheckRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, entity.ErrMsgBadRequest)
		return
	}

	if req.Permission == "" {
		sendErr(ctx, w, http.StatusBadRequest, entity.ErrInvalidArgument, "permission is required")
		return
	}

	allowed, err := h.s.Authorize(ctx, req.Permission, req.TargetUserID)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, DecisionResponse{
		Permission: req.Permission,
		Allowed:    allowed,
	})
}

// @Summary Counsellees of a counsellor
// @Tags counsellees
// @Produce json
// @Security BearerAuth
// @Param counsellor_id path string true "Counsellor ID"
// @Success 200 {array} entity.User
// @Failure 400 {object} ResponseError
// @Failure 401 {object} ResponseError
// @Failure 403 {object} ResponseError
// @Failure 500 {object} ResponseError
// @Router /api/counsellors/{counsellor_id}/counsellees [get]
func (h *Handler) Counsellees(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	counsellorID, err := uuidParam(r, "counsellor_id")
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, "Invalid counsellor_id")
		return
	}

	users, err := h.s.Counsellees(ctx, counsellorID)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	if users == nil {
		users = []entity.User{}
	}

	sendJSON(ctx, w, http.StatusOK, users)
}

type AssignCounselleeRequest struct {
	CounselleeID uuid.UUID `json:"counsellee_id"`
}

// @Summary Assign a counsellee to a counsellor
// @Tags counsellees
// @Accept json
// @Security BearerAuth
// @Param counsellor_id path string true "Counsellor ID"
// @Param request body AssignCounselleeRequest true "Counsellee"
// @Success 201
// @Failure 400 {object} ResponseError
// @Failure 401 {object} ResponseError
// @Failure 403 {object} ResponseError
// @Failure 404 {object} ResponseError
// @Failure 409 {object} ResponseError
// @Failure 422 {object} ResponseError
// @Failure 500 {object} ResponseError
// @Router /api/counsellors/{counsellor_id}/counsellees [post]
func (h *Handler) AssignCounsellee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	counsellorID, err := uuidParam(r, "counsellor_id")
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, "Invalid counsellor_id")
		return
	}

	var req AssignCounselleeRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.CounselleeID.IsNil() {
		sendErr(ctx, w, http.StatusBadRequest, err, "Invalid counsellee_id")
		return
	}

	err = h.s.AssignCounsellee(ctx, counsellorID, req.CounselleeID)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// @Summary Remove a counsellee from a counsellor
// @Tags counsellees
// @Security BearerAuth
// @Param counsellor_id path string true "Counsellor ID"
// @Param counsellee_id path string true "Counsellee ID"
// @Success 204
// @Failure 400 {object} ResponseError
// @Failure 401 {object} ResponseError
// @Failure 403 {object} ResponseError
// @Failure 404 {object} ResponseError
// @Failure 500 {object} ResponseError
// @Router /api/counsellors/{counsellor_id}/counsellees/{counsellee_id} [delete]
func (h *Handler) UnassignCounsellee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	counsellorID, err := uuidParam(r, "counsellor_id")
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, "Invalid counsellor_id")
		return
	}

	counselleeID, err := uuidParam(r, "counsellee_id")
	if err != nil {
		sendErr(ctx, w, http.StatusBadRequest, err, "Invalid counsellee_id")
		return
	}

	err = h.s.UnassignCounsellee(ctx, counsellorID, counselleeID)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type TransferAdminRightsRequest struct {
	ToUserID uuid.UUID `json:"to_user_id"`
}

// @Summary Transfer admin rights
// @Description The receiver takes over the caller's role and counsellees, the caller becomes a devotee
// @Tags admin-rights
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body TransferAdminRightsRequest true "Receiver"
// @Success 200 {object} entity.AdminRightsTransfer
// @Failure 400 {object} ResponseError
// @Failure 401 {object} ResponseError
// @Failure 403 {object} ResponseError
// @Failure 404 {object} ResponseError
// @Failure 409 {object} ResponseError
// @Failure 500 {object} ResponseError
// @Router /api/admin-rights/transfer [post]
func (h *Handler) TransferAdminRights(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req TransferAdminRightsRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.ToUserID.IsNil() {
		sendErr(ctx, w, http.StatusBadRequest, err, "Invalid to_user_id")
		return
	}

	transfer, err := h.s.TransferAdminRights(ctx, req.ToUserID)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	sendJSON(ctx, w, http.StatusOK, transfer)
}

// @Summary Admin rights transfers of the current user
// @Tags admin-rights
// @Produce json
// @Security BearerAuth
// @Success 200 {array} entity.AdminRightsTransfer
// @Failure 401 {object} ResponseError
// @Failure 500 {object} ResponseError
// @Router /api/admin-rights/transfers [get]
func (h *Handler) AdminRightsTransfers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	transfers, err := h.s.AdminRightsTransfers(ctx)
	if err != nil {
		sendServiceErr(ctx, w, err)
		return
	}

	if transfers == nil {
		transfers = []entity.AdminRightsTransfer{}
	}

	slog.DebugContext(ctx, "Admin rights transfers listed", "count", len(transfers))

	sendJSON(ctx, w, http.StatusOK, transfers)
}
