package auth

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/officefund/expense-backend/internal/domain/models"
	"github.com/officefund/expense-backend/internal/domain/usecase"
	"github.com/officefund/expense-backend/internal/presentation/helpers"
	presentationProtocols "github.com/officefund/expense-backend/internal/presentation/protocols"
	"github.com/officefund/expense-backend/internal/utils"
)

type SignUpController struct {
	FindUserByEmailRepository usecase.FindUserByEmailRepository
	CreateUserRepository      usecase.CreateUserRepository
	Validate                  *validator.Validate
}

func NewSignUpController(
	findUserByEmail usecase.FindUserByEmailRepository,
	createUser usecase.CreateUserRepository,
) *SignUpController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &SignUpController{
		FindUserByEmailRepository: findUserByEmail,
		CreateUserRepository:      createUser,
		Validate:                  validate,
	}
}

type SignUpControllerBody struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=employee admin"`
}

type SignUpControllerResponse struct {
	Message string `json:"message"`
}

func (c *SignUpController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body SignUpControllerBody
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

	existing, err := c.FindUserByEmailRepository.Find(body.Email)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when finding user",
		}, http.StatusInternalServerError)
	}

	if existing != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "User already exists",
		}, http.StatusConflict)
	}

	hash, err := utils.HashPassword(body.Password)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when hashing password",
		}, http.StatusInternalServerError)
	}

	err = c.CreateUserRepository.Create(&models.User{
		Email:        body.Email,
		Name:         body.Name,
		PasswordHash: hash,
		Role:         body.Role,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when creating user",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&SignUpControllerResponse{
		Message: "Signup successful",
	}, http.StatusCreated)
}
