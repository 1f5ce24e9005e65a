package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"eventdesk/models"
	"eventdesk/services"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Organizers(e *core.RequestEvent) error {
	organizers, err := h.users.FetchOrganizers()
	if err != nil {
		return apis.NewBadRequestError(err.Error(), nil)
	}
	return e.JSON(http.StatusOK, organizers)
}

func (h *UserHandler) Attendees(e *core.RequestEvent) error {
	attendees, err := h.users.FetchAttendees()
	if err != nil {
		return apis.NewBadRequestError(err.Error(), nil)
	}
	return e.JSON(http.StatusOK, attendees)
}

func (h *UserHandler) Get(e *core.RequestEvent) error {
	user, err := h.users.FetchUserByID(e.Auth, e.Request.PathValue("id"))
	if err != nil {
		return apis.NewNotFoundError(err.Error(), nil)
	}
	return e.JSON(http.StatusOK, user)
}

func (h *UserHandler) Create(e *core.RequestEvent) error {
	input := models.CreateUserInput{}
	if err := e.BindBody(&input); err != nil {
		return apis.NewBadRequestError("Invalid request body", err)
	}
	if input.Email == "" {
		return apis.NewBadRequestError("An email is required", nil)
	}
	user, err := h.users.CreateUser(input)
	if err != nil {
		return apis.NewBadRequestError(err.Error(), nil)
	}
	return e.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Update(e *core.RequestEvent) error {
	updates := map[string]any{}
	if err := e.BindBody(&updates); err != nil {
		return apis.NewBadRequestError("Invalid request body", err)
	}
	user, err := h.users.UpdateUser(e.Auth, e.Request.PathValue("id"), updates)
	if err != nil {
		return apis.NewBadRequestError(err.Error(), nil)
	}
	return e.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(e *core.RequestEvent) error {
	if err := h.users.DeleteUser(e.Request.PathValue("id")); err != nil {
		return apis.NewBadRequestError(err.Error(), nil)
	}
	return e.JSON(http.StatusOK, map[string]bool{"ok": true})
}
