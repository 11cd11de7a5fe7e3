package controllers

import (
	"time"

	"workzen/config"
	"workzen/dto"
	"workzen/models"
	"workzen/response"
	"workzen/services"
	"workzen/validator"

	"github.com/gin-gonic/gin"
)

const sessionMinutes = 60 * 24 * 3

func toUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:            user.ID,
		LoginID:       user.LoginID,
		Email:         user.Email,
		FullName:      user.FullName,
		Phone:         user.Phone,
		Role:          user.Role,
		Department:    user.Department,
		JobPosition:   user.JobPosition,
		JobTitle:      user.JobTitle,
		Avatar:        user.Avatar,
		BasicSalary:   user.BasicSalary,
		DateOfJoining: user.DateOfJoining,
		IsActive:      user.IsActive,
	}
}

// Login authenticates with a login id and password, issues a session token
// and sets it as a cookie as well.
func Login(c *gin.Context) {
	var input dto.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, bindingErrorMessage(err))
		return
	}

	user, err := services.GetUserByLoginID(input.LoginID)
	if err != nil {
		response.Error(c, 401, "Invalid login id or password")
		return
	}

	if !user.IsActive {
		response.Error(c, 401, "This account has been deactivated")
		return
	}

	if err := services.CheckPassword(user.Password, input.Password); err != nil {
		response.Error(c, 401, "Invalid login id or password")
		return
	}

	token, err := services.GenerateToken(services.UserInfo{UserId: user.ID, Role: user.Role}, sessionMinutes)
	if err != nil {
		response.ServerError(c)
		return
	}
	services.SetTokenCookies(c, token)

	response.Success(c, dto.LoginResponse{
		Token: token,
		User:  toUserResponse(&user),
	})
}

// Signup self-registers an employee account: the login id and a temporary
// password are generated, and a session is opened right away.
func Signup(c *gin.Context) {
	var input dto.SignupRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, bindingErrorMessage(err))
		return
	}

	if err := validator.ValidateSignup(&input); err != nil {
		handleServiceError(c, err)
		return
	}

	userService := services.NewUserService(services.UserServiceOptions{DB: config.DB})
	user, tempPassword, err := userService.CreateEmployee(services.NewEmployee{
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Email:      input.Email,
		Phone:      input.Phone,
		Role:       input.Role,
		Department: input.Department,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	token, err := services.GenerateToken(services.UserInfo{UserId: user.ID, Role: user.Role}, sessionMinutes)
	if err != nil {
		response.ServerError(c)
		return
	}
	services.SetTokenCookies(c, token)

	response.Created(c, dto.SignupResponse{
		EmployeeID:   user.ID,
		LoginID:      user.LoginID,
		TempPassword: tempPassword,
		Token:        token,
	})
}

// Logout clears every cookie on the session.
func Logout(c *gin.Context) {
	for _, cookie := range c.Request.Cookies() {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}
	response.Success(c, nil)
}

// ChangePassword verifies the current password before storing the new hash.
func ChangePassword(c *gin.Context) {
	var input dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, bindingErrorMessage(err))
		return
	}

	var user models.User
	if err := config.DB.First(&user, currentUserID(c)).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := services.CheckPassword(user.Password, input.OldPassword); err != nil {
		response.Error(c, 401, "Current password is incorrect")
		return
	}

	hashed, err := services.HashPassword(input.NewPassword)
	if err != nil {
		response.ServerError(c)
		return
	}

	if err := config.DB.Model(&user).Update("password", hashed).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// UpdateProfile lets a user edit the personal fields of their own account.
func UpdateProfile(c *gin.Context) {
	var input dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, bindingErrorMessage(err))
		return
	}

	var user models.User
	if err := config.DB.First(&user, currentUserID(c)).Error; err != nil {
		response.NotFound(c)
		return
	}

	updates := map[string]interface{}{}
	if input.Phone != "" {
		updates["phone"] = input.Phone
	}
	if input.Gender != "" {
		updates["gender"] = input.Gender
	}
	if input.Nationality != "" {
		updates["nationality"] = input.Nationality
	}
	if input.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", input.DateOfBirth)
		if err != nil {
			response.ValidationError(c, "Invalid dateOfBirth, expected YYYY-MM-DD")
			return
		}
		updates["date_of_birth"] = dob
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
			response.ServerError(c)
			return
		}
	}

	response.Success(c, toUserResponse(&user))
}

// Me returns the authenticated user's own account.
func Me(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, currentUserID(c)).Error; err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, toUserResponse(&user))
}
