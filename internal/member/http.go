// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package member

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/memberauth/internal/platform/request"
	"github.com/taibuivan/memberauth/internal/platform/respond"
	"github.com/taibuivan/memberauth/internal/platform/validate"
	"github.com/taibuivan/memberauth/pkg/pagination"
)

// # JSON Field Names

const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldName     = "name"
	FieldPhone    = "phone"
	FieldStatus   = "memberStatus"
)

// Handler exposes the member endpoints.
//
// Access control is decided by the authorization stage in front of the router,
// so the handlers themselves never inspect roles.
type Handler struct {
	service *Service
}

// NewHandler constructs a member [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the member router, mounted at /{version}/members.
//
// # Endpoints
//   - POST   /            : Register a member.
//   - GET    /            : List members (paginated).
//   - GET    /{memberID}  : Fetch one member.
//   - PATCH  /{memberID}  : Partially update a member.
//   - DELETE /{memberID}  : Quit a member.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.create)
	router.Get("/", handler.list)
	router.Get("/{memberID}", handler.get)
	router.Patch("/{memberID}", handler.update)
	router.Delete("/{memberID}", handler.delete)

	return router
}

// # Payloads

type createRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

type updateRequest struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	MemberStatus *string `json:"memberStatus"`
}

// Response is the public representation of a member. It never carries the password hash.
type Response struct {
	MemberID     string    `json:"memberId"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	MemberStatus Status    `json:"memberStatus"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toResponse(member *Member) Response {
	return Response{
		MemberID:     member.ID,
		Email:        member.Email,
		Name:         member.Name,
		Phone:        member.Phone,
		MemberStatus: member.Status,
		CreatedAt:    member.CreatedAt,
		UpdatedAt:    member.UpdatedAt,
	}
}

// # Handlers

/*
create registers a member.

POST /v11/members

Response:
  - 201: Response
  - 400: Validation failure
  - 409: Email already registered
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password).
		Required(FieldName, input.Name).
		Pattern(FieldPhone, input.Phone, validate.PhonePattern, "Must match 010-XXXX-XXXX")

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	member, err := handler.service.Create(request.Context(), CreateInput{
		Email:    input.Email,
		Password: input.Password,
		Name:     input.Name,
		Phone:    input.Phone,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, toResponse(member))
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	members, pageInfo, err := handler.service.List(request.Context(), pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	responses := make([]Response, 0, len(members))
	for _, member := range members {
		responses = append(responses, toResponse(member))
	}

	respond.Paginated(writer, responses, pageInfo)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	member, err := handler.service.Get(request.Context(), requestutil.Param(request, "memberID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, toResponse(member))
}

/*
update applies a partial update.

PATCH /v11/members/{memberID}

Absent fields are left unchanged; present name or phone must not be blank.
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input updateRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	validator.NotSpace(FieldName, input.Name).NotSpace(FieldPhone, input.Phone)
	if input.Phone != nil {
		validator.Pattern(FieldPhone, *input.Phone, validate.PhonePattern, "Must match 010-XXXX-XXXX")
	}

	var status *Status
	if input.MemberStatus != nil {
		allowed := make([]string, 0, len(Statuses))
		for _, s := range Statuses {
			allowed = append(allowed, string(s))
		}
		validator.OneOf(FieldStatus, *input.MemberStatus, allowed...)

		parsed := Status(*input.MemberStatus)
		status = &parsed
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	member, err := handler.service.Update(request.Context(), requestutil.Param(request, "memberID"), UpdateInput{
		Name:   input.Name,
		Phone:  input.Phone,
		Status: status,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, toResponse(member))
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.Param(request, "memberID")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
