package controllers

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"workzen/config"
	"workzen/constants"
	"workzen/dto"
	"workzen/models"
	"workzen/response"
	"workzen/services"
	"workzen/validator"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

const employeeCacheKey = "employees:active"

type UserController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewUserController(db *gorm.DB, redisCli *redis.Client) UserController {
	return UserController{
		DB:    db,
		Redis: redisCli,
	}
}

func (u UserController) userService() *services.UserService {
	return services.NewUserService(services.UserServiceOptions{DB: u.DB})
}

// GetEmployees lists the employee directory with optional department, role,
// status and name filters. The unfiltered set is cached in Redis; filtering
// and pagination happen in memory.
func (u UserController) GetEmployees(c *gin.Context) {
	page := queryInt(c, "page", 0)
	limit := queryInt(c, "limit", 10)
	department := c.Query("department")
	role := c.Query("role")
	status := c.Query("status")
	name := c.Query("name")

	var allUsers []models.User
	if found, err := services.GetFromRedis(config.Ctx, u.Redis, employeeCacheKey, &allUsers); err != nil || !found {
		if err := u.DB.Order("id").Find(&allUsers).Error; err != nil {
			response.ServerError(c)
			return
		}
		if err := services.SetToRedis(config.Ctx, u.Redis, employeeCacheKey, allUsers, 10*time.Minute); err != nil {
			log.Printf("Failed to cache employee directory: %v", err)
		}
	}

	var filtered []models.User
	for _, user := range allUsers {
		if department != "" && !strings.EqualFold(user.Department, department) {
			continue
		}
		if role != "" && user.Role != role {
			continue
		}
		if status == "active" && !user.IsActive {
			continue
		}
		if status == "inactive" && user.IsActive {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(user.FullName), strings.ToLower(name)) &&
			!strings.Contains(strings.ToLower(user.Email), strings.ToLower(name)) &&
			!strings.Contains(strings.ToLower(user.LoginID), strings.ToLower(name)) {
			continue
		}
		filtered = append(filtered, user)
	}

	total := int64(len(filtered))
	start := page * limit
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + limit
	if end > len(filtered) {
		end = len(filtered)
	}

	result := make([]dto.UserResponse, 0, end-start)
	for _, user := range filtered[start:end] {
		result = append(result, toUserResponse(&user))
	}

	response.SuccessWithPagination(c, result, page, limit, int(total))
}

// SearchEmployees ranks employees against a free-text query. Diacritics are
// stripped before matching and near-misses still score via edit distance.
func (u UserController) SearchEmployees(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Query parameter q is required")
		return
	}

	var users []models.User
	if err := u.DB.Where("is_active = ?", true).Find(&users).Error; err != nil {
		response.ServerError(c)
		return
	}

	normalizedQuery := normalizeSearchInput(query)

	keywords := make([]string, 0, len(users))
	for _, user := range users {
		keywords = append(keywords, normalizeSearchInput(user.FullName))
	}
	matcher := createNameMatcher(keywords)
	closest := matcher.Closest(normalizedQuery)

	type scored struct {
		user  models.User
		score float64
	}
	var ranked []scored
	for i, user := range users {
		score := calculateSimilarity(normalizedQuery, keywords[i])
		if keywords[i] == closest {
			score += 0.25
		}
		if strings.Contains(keywords[i], normalizedQuery) ||
			strings.Contains(normalizeSearchInput(user.Department), normalizedQuery) ||
			strings.Contains(strings.ToLower(user.LoginID), normalizedQuery) {
			score += 0.5
		}
		if score >= 0.4 {
			ranked = append(ranked, scored{user: user, score: score})
		}
	}

	sort.Slice(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	result := make([]dto.UserResponse, 0, len(ranked))
	for _, r := range ranked {
		result = append(result, toUserResponse(&r.user))
	}

	response.SuccessWithTotal(c, result, len(result))
}

// CreateEmployee registers an employee with the full HR field set.
func (u UserController) CreateEmployee(c *gin.Context) {
	var input dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, bindingErrorMessage(err))
		return
	}

	if err := validator.ValidateEmployee(&input); err != nil {
		handleServiceError(c, err)
		return
	}

	in := services.NewEmployee{
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Email:      input.Email,
		Phone:      input.Phone,
		Role:       input.Role,
		Department: input.Department,

		JobPosition:    input.JobPosition,
		JobTitle:       input.JobTitle,
		EmploymentType: input.EmploymentType,
		ContractType:   input.ContractType,
		Gender:         input.Gender,
		Nationality:    input.Nationality,
		WorkLocation:   input.WorkLocation,
		WorkAddress:    input.WorkAddress,
		TimeZone:       input.TimeZone,
		ShiftTime:      input.ShiftTime,
		WorkingHours:   input.WorkingHours,
		WageType:       input.WageType,
		Wage:           input.Wage,
		BasicSalary:    input.BasicSalary,

		EmergencyContactName:     input.EmergencyContactName,
		EmergencyContactRelation: input.EmergencyContactRelation,
		EmergencyContactPhone:    input.EmergencyContactPhone,
	}
	if input.DateOfJoining != "" {
		if d, err := parseDate(input.DateOfJoining); err == nil {
			in.DateOfJoining = &d
		}
	}
	if input.DateOfBirth != "" {
		if d, err := parseDate(input.DateOfBirth); err == nil {
			in.DateOfBirth = &d
		}
	}

	user, tempPassword, err := u.userService().CreateEmployee(in)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	u.invalidateDirectoryCache()

	response.Created(c, dto.CreateEmployeeResponse{
		EmployeeID:   user.ID,
		LoginID:      user.LoginID,
		TempPassword: tempPassword,
	})
}

// GetEmployee returns one employee's full profile. Regular employees can only
// view their own.
func (u UserController) GetEmployee(c *gin.Context) {
	id := queryParamID(c)
	if id == 0 {
		response.BadRequest(c, "Invalid employee id")
		return
	}

	role := currentUserRole(c)
	if role == constants.RoleEmployee && id != currentUserID(c) {
		response.Forbidden(c)
		return
	}

	user, adjustments, badges, certifications, err := u.userService().Profile(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, gin.H{
		"user":              toUserResponse(user),
		"salaryAdjustments": adjustments,
		"badges":            badges,
		"certifications":    certifications,
	})
}

// AdjustSalary records a salary change and updates the employee's pay.
func (u UserController) AdjustSalary(c *gin.Context) {
	var input dto.SalaryAdjustmentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, bindingErrorMessage(err))
		return
	}

	adjustment, err := u.userService().AdjustSalary(input.UserID, input.NewSalary, input.Reason, currentUserID(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	u.invalidateDirectoryCache()
	response.Success(c, adjustment)
}

// SetEmployeeStatus activates or deactivates an account. Deactivated users
// cannot log in but their records stay intact.
func (u UserController) SetEmployeeStatus(c *gin.Context) {
	id := queryParamID(c)
	if id == 0 {
		response.BadRequest(c, "Invalid employee id")
		return
	}

	var input struct {
		IsActive bool `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, bindingErrorMessage(err))
		return
	}

	result := u.DB.Model(&models.User{}).Where("id = ?", id).Update("is_active", input.IsActive)
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	u.invalidateDirectoryCache()
	response.Success(c, gin.H{"id": id, "isActive": input.IsActive})
}

// UploadAvatar stores an avatar image in Cloudinary and saves the URL.
func (u UserController) UploadAvatar(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "No file uploaded")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "Cannot open uploaded file")
		return
	}
	defer src.Close()

	resp, err := config.Cloudinary.Upload.Upload(context.Background(), src, uploader.UploadParams{Folder: "avatars"})
	if err != nil {
		log.Printf("Avatar upload failed: %v", err)
		response.ServerError(c)
		return
	}

	userID := currentUserID(c)
	if err := u.DB.Model(&models.User{}).Where("id = ?", userID).Update("avatar", resp.SecureURL).Error; err != nil {
		response.ServerError(c)
		return
	}

	u.invalidateDirectoryCache()
	response.Success(c, gin.H{"avatar": resp.SecureURL})
}

func (u UserController) invalidateDirectoryCache() {
	if err := services.DeleteFromRedis(config.Ctx, u.Redis, employeeCacheKey); err != nil {
		log.Printf("Failed to invalidate employee cache: %v", err)
	}
}

func normalizeSearchInput(input string) string {
	return strings.TrimSpace(strings.ToLower(unidecode.Unidecode(input)))
}

func createNameMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

func queryParamID(c *gin.Context) uint {
	var id uint
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &id); err != nil {
		return 0
	}
	return id
}
