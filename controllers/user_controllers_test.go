package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"workzen/dto"
	"workzen/models"
	"workzen/response"

	"github.com/gin-gonic/gin"
)

type employeeListEnvelope struct {
	Code       int                  `json:"code"`
	Data       []dto.UserResponse   `json:"data"`
	Pagination *response.Pagination `json:"pagination"`
}

func getEmployees(t *testing.T, uc UserController, query string) employeeListEnvelope {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/employees"+query, nil)

	uc.GetEmployees(c)

	if w.Code != http.StatusOK {
		t.Fatalf("employees status = %d", w.Code)
	}
	var envelope employeeListEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode employees response: %v", err)
	}
	return envelope
}

func TestGetEmployeesPagination(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	rdb := newTestRedis(t)
	uc := NewUserController(db, rdb)

	for i := 1; i <= 3; i++ {
		user := models.User{
			LoginID:  fmt.Sprintf("page2025%04d", i),
			Email:    fmt.Sprintf("page%d@workzen.test", i),
			FullName: fmt.Sprintf("Paged User %d", i),
			Role:     "EMPLOYEE",
			IsActive: true,
		}
		if err := db.Create(&user).Error; err != nil {
			t.Fatalf("create user %d: %v", i, err)
		}
	}

	first := getEmployees(t, uc, "?page=0&limit=2")
	if len(first.Data) != 2 {
		t.Fatalf("page 0 rows = %d, want 2", len(first.Data))
	}
	if first.Pagination == nil {
		t.Fatal("missing pagination block")
	}
	if first.Pagination.Page != 0 || first.Pagination.Limit != 2 || first.Pagination.Total != 3 {
		t.Errorf("pagination = %+v, want page 0 limit 2 total 3", first.Pagination)
	}

	second := getEmployees(t, uc, "?page=1&limit=2")
	if len(second.Data) != 1 {
		t.Errorf("page 1 rows = %d, want 1", len(second.Data))
	}
}
