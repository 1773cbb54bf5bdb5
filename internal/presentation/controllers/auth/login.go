package auth

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/officefund/expense-backend/internal/domain/models"
	"github.com/officefund/expense-backend/internal/domain/usecase"
	"github.com/officefund/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/officefund/expense-backend/internal/presentation/protocols"
	"github.com/officefund/expense-backend/internal/utils"
)

type LoginController struct {
	FindUserByEmailRepository usecase.FindUserByEmailRepository
	CreateSessionRepository   usecase.CreateSessionRepository
	Validate                  *validator.Validate
}

func NewLoginController(
	findUserByEmail usecase.FindUserByEmailRepository,
	createSession usecase.CreateSessionRepository,
) *LoginController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &LoginController{
		FindUserByEmailRepository: findUserByEmail,
		CreateSessionRepository:   createSession,
		Validate:                  validate,
	}
}

type LoginControllerBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginControllerUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginControllerResponse struct {
	Message string              `json:"message"`
	Session string              `json:"session"`
	User    LoginControllerUser `json:"user"`
}

func (c *LoginController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body LoginControllerBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "invalid body request",
		}, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: helpers.GetErrorMessages(c.Validate, err),
		}, http.StatusBadRequest)
	}

	user, err := c.FindUserByEmailRepository.Find(body.Email)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding user",
		}, http.StatusInternalServerError)
	}

	if user == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "User not found",
		}, http.StatusNotFound)
	}

	if !utils.VerifyPassword(user.PasswordHash, body.Password) {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "Incorrect password",
		}, http.StatusUnauthorized)
	}

	token := uuid.NewString()
	err = c.CreateSessionRepository.Create(&models.Session{
		Token: token,
		Email: user.Email,
		Role:  user.Role,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when creating session",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&LoginControllerResponse{
		Message: "Login successful",
		Session: token,
		User: LoginControllerUser{
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	}, http.StatusOK)
}
