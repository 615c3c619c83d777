package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gigconnect/marketplace-api/internal/auth"
	"github.com/gigconnect/marketplace-api/internal/constants"
	"github.com/gigconnect/marketplace-api/internal/dto"
	"github.com/gigconnect/marketplace-api/internal/models"
	"github.com/gigconnect/marketplace-api/internal/repository"
	"github.com/gigconnect/marketplace-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	alice = auth.Identity{UID: "uid-alice", Email: "alice@example.com", Name: "Alice"}
	bob   = auth.Identity{UID: "uid-bob", Email: "bob@example.com", Name: "Bob"}
)

// TaskHandlerTestSuite defines the test suite for TaskHandler
type TaskHandlerTestSuite struct {
	suite.Suite
	db       *gorm.DB
	taskRepo repository.TaskRepository
	bidRepo  repository.BidRepository
	handler  *TaskHandler
}

// SetupTest runs before each test
func (suite *TaskHandlerTestSuite) SetupTest() {
	var err error

	// Create in-memory SQLite database
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)

	// Run migrations
	err = suite.db.AutoMigrate(
		&models.Task{},
		&models.Bid{},
	)
	suite.Require().NoError(err)

	suite.taskRepo = repository.NewTaskRepository(suite.db)
	suite.bidRepo = repository.NewBidRepository(suite.db)
	suite.handler = NewTaskHandler(services.NewTaskService(suite.taskRepo))

	// Set Gin to test mode
	gin.SetMode(gin.TestMode)
}

// TearDownTest runs after each test
func (suite *TaskHandlerTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

// Helper function to create test data
func (suite *TaskHandlerTestSuite) createTestTask(title string, creator auth.Identity) *models.Task {
	task := &models.Task{
		ID:           uuid.NewString(),
		Title:        title,
		Description:  "Test Description",
		Category:     models.CategoryWebDevelopment,
		Budget:       100,
		Deadline:     time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		CreatorUID:   creator.UID,
		CreatorEmail: creator.Email,
		CreatorName:  creator.Name,
	}
	suite.Require().NoError(suite.taskRepo.Create(task))
	return task
}

// Helper function to create a context with an authenticated identity
func (suite *TaskHandlerTestSuite) createAuthContext(method, url string, body []byte, ident *auth.Identity) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	if ident != nil {
		c.Set(constants.ContextKeyIdentity, *ident)
	}

	return c, w
}

func taskBody(title, description, category string, budget float64, deadline string) []byte {
	body, _ := json.Marshal(map[string]interface{}{
		"title":       title,
		"description": description,
		"category":    category,
		"budget":      budget,
		"deadline":    deadline,
	})
	return body
}

// TestListTasks_Success tests successful task listing
func (suite *TaskHandlerTestSuite) TestListTasks_Success() {
	suite.createTestTask("First Task", alice)
	suite.createTestTask("Second Task", bob)

	c, w := suite.createAuthContext("GET", "/api/v1/tasks", nil, nil)

	suite.handler.ListTasks(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.TaskListResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.EqualValues(suite.T(), 2, response.TotalTasks)
	assert.Equal(suite.T(), 1, response.TotalPages)
	assert.Equal(suite.T(), 1, response.CurrentPage)
	assert.Len(suite.T(), response.Tasks, 2)
	assert.Equal(suite.T(), "First Task", response.Tasks[0].Title)
	assert.Equal(suite.T(), "Second Task", response.Tasks[1].Title)
}

// TestListTasks_PageBeyondData tests that an out-of-range page is empty, not an error
func (suite *TaskHandlerTestSuite) TestListTasks_PageBeyondData() {
	suite.createTestTask("First Task", alice)
	suite.createTestTask("Second Task", alice)
	suite.createTestTask("Third Task", alice)

	c, w := suite.createAuthContext("GET", "/api/v1/tasks", nil, nil)
	c.Request.URL.RawQuery = "page=5&limit=2"

	suite.handler.ListTasks(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.TaskListResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), response.Tasks)
	assert.EqualValues(suite.T(), 3, response.TotalTasks)
	assert.Equal(suite.T(), 2, response.TotalPages)
	assert.Equal(suite.T(), 5, response.CurrentPage)
}

// TestListTasks_CategoryFilter tests filtering by category
func (suite *TaskHandlerTestSuite) TestListTasks_CategoryFilter() {
	suite.createTestTask("Web Task", alice)

	design := suite.createTestTask("Design Task", alice)
	design.Category = models.CategoryGraphicDesign
	suite.Require().NoError(suite.db.Save(design).Error)

	c, w := suite.createAuthContext("GET", "/api/v1/tasks", nil, nil)
	c.Request.URL.RawQuery = "category=graphic-design"

	suite.handler.ListTasks(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.TaskListResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.EqualValues(suite.T(), 1, response.TotalTasks)
	assert.Len(suite.T(), response.Tasks, 1)
	assert.Equal(suite.T(), "Design Task", response.Tasks[0].Title)
}

// TestListTasks_UnknownCategory tests filtering by an unknown category
func (suite *TaskHandlerTestSuite) TestListTasks_UnknownCategory() {
	c, w := suite.createAuthContext("GET", "/api/v1/tasks", nil, nil)
	c.Request.URL.RawQuery = "category=underwater-basket-weaving"

	suite.handler.ListTasks(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestLatestTasks_DeadlineOrder tests the deadline-soonest slice
func (suite *TaskHandlerTestSuite) TestLatestTasks_DeadlineOrder() {
	later := suite.createTestTask("Later Deadline", alice)
	later.Deadline = time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	suite.Require().NoError(suite.db.Save(later).Error)

	sooner := suite.createTestTask("Sooner Deadline", alice)
	sooner.Deadline = time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	suite.Require().NoError(suite.db.Save(sooner).Error)

	c, w := suite.createAuthContext("GET", "/api/v1/tasks/latest", nil, nil)
	c.Request.URL.RawQuery = "limit=1"

	suite.handler.LatestTasks(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response struct {
		Tasks []dto.TaskDTO `json:"tasks"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Tasks, 1)
	assert.Equal(suite.T(), "Sooner Deadline", response.Tasks[0].Title)
}

// TestGetTask_Success tests successful task retrieval
func (suite *TaskHandlerTestSuite) TestGetTask_Success() {
	task := suite.createTestTask("Test Task", alice)

	c, w := suite.createAuthContext("GET", "/api/v1/tasks/"+task.ID, nil, nil)
	c.Params = gin.Params{{Key: "id", Value: task.ID}}

	suite.handler.GetTask(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.TaskDTO
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), task.ID, response.ID)
	assert.Equal(suite.T(), task.Title, response.Title)
	assert.Equal(suite.T(), "2025-09-01", response.Deadline)
	assert.Equal(suite.T(), alice.UID, response.CreatorUID)
}

// TestGetTask_NotFound tests retrieval of a missing task
func (suite *TaskHandlerTestSuite) TestGetTask_NotFound() {
	c, w := suite.createAuthContext("GET", "/api/v1/tasks/nope", nil, nil)
	c.Params = gin.Params{{Key: "id", Value: "nope"}}

	suite.handler.GetTask(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestCreateTask_Success tests successful task creation
func (suite *TaskHandlerTestSuite) TestCreateTask_Success() {
	body := taskBody("New Task", "Task Description", "web-development", 500, "2025-08-15")

	c, w := suite.createAuthContext("POST", "/api/v1/tasks", body, &alice)

	suite.handler.CreateTask(c)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var response dto.TaskDTO
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), response.ID)
	assert.Equal(suite.T(), "New Task", response.Title)
	assert.Equal(suite.T(), alice.UID, response.CreatorUID)
	assert.Equal(suite.T(), alice.Email, response.CreatorEmail)
	assert.Equal(suite.T(), "2025-08-15", response.Deadline)

	// Verify the task was persisted
	var count int64
	suite.db.Model(&models.Task{}).Where("id = ?", response.ID).Count(&count)
	assert.EqualValues(suite.T(), 1, count)
}

// TestCreateTask_Unauthorized tests creation without authentication
func (suite *TaskHandlerTestSuite) TestCreateTask_Unauthorized() {
	body := taskBody("New Task", "Task Description", "web-development", 500, "2025-08-15")

	c, w := suite.createAuthContext("POST", "/api/v1/tasks", body, nil)

	suite.handler.CreateTask(c)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// TestCreateTask_MissingTitle tests creation with a missing title
func (suite *TaskHandlerTestSuite) TestCreateTask_MissingTitle() {
	body := taskBody("", "Task Description", "web-development", 500, "2025-08-15")

	c, w := suite.createAuthContext("POST", "/api/v1/tasks", body, &alice)

	suite.handler.CreateTask(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestCreateTask_NegativeBudget tests creation with a negative budget
func (suite *TaskHandlerTestSuite) TestCreateTask_NegativeBudget() {
	body := taskBody("New Task", "Task Description", "web-development", -1, "2025-08-15")

	c, w := suite.createAuthContext("POST", "/api/v1/tasks", body, &alice)

	suite.handler.CreateTask(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestCreateTask_UnknownCategory tests creation with an unknown category
func (suite *TaskHandlerTestSuite) TestCreateTask_UnknownCategory() {
	body := taskBody("New Task", "Task Description", "knitting", 500, "2025-08-15")

	c, w := suite.createAuthContext("POST", "/api/v1/tasks", body, &alice)

	suite.handler.CreateTask(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestCreateTask_InvalidDeadline tests creation with a malformed deadline
func (suite *TaskHandlerTestSuite) TestCreateTask_InvalidDeadline() {
	body := taskBody("New Task", "Task Description", "web-development", 500, "soon")

	c, w := suite.createAuthContext("POST", "/api/v1/tasks", body, &alice)

	suite.handler.CreateTask(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestUpdateTask_Success tests a successful update by the creator
func (suite *TaskHandlerTestSuite) TestUpdateTask_Success() {
	task := suite.createTestTask("Old Title", alice)

	body := taskBody("Updated Title", "Updated Description", "graphic-design", 750, "2025-10-01")

	c, w := suite.createAuthContext("PUT", "/api/v1/tasks/"+task.ID, body, &alice)
	c.Params = gin.Params{{Key: "id", Value: task.ID}}

	suite.handler.UpdateTask(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response dto.TaskDTO
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Updated Title", response.Title)
	assert.Equal(suite.T(), models.CategoryGraphicDesign, response.Category)
	assert.Equal(suite.T(), 750.0, response.Budget)
	assert.Equal(suite.T(), "2025-10-01", response.Deadline)
	assert.Equal(suite.T(), alice.UID, response.CreatorUID)
}

// TestUpdateTask_NotCreator tests an update by a non-creator
func (suite *TaskHandlerTestSuite) TestUpdateTask_NotCreator() {
	task := suite.createTestTask("Alice's Task", alice)

	body := taskBody("Hijacked", "Changed", "web-development", 1, "2025-10-01")

	c, w := suite.createAuthContext("PUT", "/api/v1/tasks/"+task.ID, body, &bob)
	c.Params = gin.Params{{Key: "id", Value: task.ID}}

	suite.handler.UpdateTask(c)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)

	// Verify nothing changed
	stored, err := suite.taskRepo.FindByID(task.ID)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Alice's Task", stored.Title)
}

// TestUpdateTask_NotFound tests an update of a missing task
func (suite *TaskHandlerTestSuite) TestUpdateTask_NotFound() {
	body := taskBody("Title", "Description", "web-development", 1, "2025-10-01")

	c, w := suite.createAuthContext("PUT", "/api/v1/tasks/nope", body, &alice)
	c.Params = gin.Params{{Key: "id", Value: "nope"}}

	suite.handler.UpdateTask(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestUpdateTask_ValidationError tests an update with invalid fields
func (suite *TaskHandlerTestSuite) TestUpdateTask_ValidationError() {
	task := suite.createTestTask("Task", alice)

	body := taskBody("Title", "Description", "web-development", -50, "2025-10-01")

	c, w := suite.createAuthContext("PUT", "/api/v1/tasks/"+task.ID, body, &alice)
	c.Params = gin.Params{{Key: "id", Value: task.ID}}

	suite.handler.UpdateTask(c)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

// TestDeleteTask_Success tests deletion by the creator, including cascade
func (suite *TaskHandlerTestSuite) TestDeleteTask_Success() {
	task := suite.createTestTask("Task to Delete", alice)

	bid := &models.Bid{
		ID:               "bid-1",
		TaskID:           task.ID,
		BidderUID:        bob.UID,
		BidderEmail:      bob.Email,
		BidderName:       bob.Name,
		BidAmount:        90,
		ProposedDeadline: time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC),
		BidPlacedAt:      time.Now().UTC(),
	}
	suite.Require().NoError(suite.bidRepo.Create(bid))

	c, w := suite.createAuthContext("DELETE", "/api/v1/tasks/"+task.ID, nil, &alice)
	c.Params = gin.Params{{Key: "id", Value: task.ID}}

	suite.handler.DeleteTask(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var taskCount, bidCount int64
	suite.db.Model(&models.Task{}).Where("id = ?", task.ID).Count(&taskCount)
	suite.db.Model(&models.Bid{}).Where("task_id = ?", task.ID).Count(&bidCount)
	assert.EqualValues(suite.T(), 0, taskCount)
	assert.EqualValues(suite.T(), 0, bidCount)
}

// TestDeleteTask_NotCreator tests deletion by a non-creator
func (suite *TaskHandlerTestSuite) TestDeleteTask_NotCreator() {
	task := suite.createTestTask("Task to Delete", alice)

	c, w := suite.createAuthContext("DELETE", "/api/v1/tasks/"+task.ID, nil, &bob)
	c.Params = gin.Params{{Key: "id", Value: task.ID}}

	suite.handler.DeleteTask(c)

	assert.Equal(suite.T(), http.StatusForbidden, w.Code)

	var count int64
	suite.db.Model(&models.Task{}).Where("id = ?", task.ID).Count(&count)
	assert.EqualValues(suite.T(), 1, count)
}

// TestDeleteTask_NotFound tests deletion of a missing task
func (suite *TaskHandlerTestSuite) TestDeleteTask_NotFound() {
	c, w := suite.createAuthContext("DELETE", "/api/v1/tasks/nope", nil, &alice)
	c.Params = gin.Params{{Key: "id", Value: "nope"}}

	suite.handler.DeleteTask(c)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

// TestListMyTasks_Success tests listing the caller's posted tasks
func (suite *TaskHandlerTestSuite) TestListMyTasks_Success() {
	suite.createTestTask("Alice One", alice)
	suite.createTestTask("Bob One", bob)
	suite.createTestTask("Alice Two", alice)

	c, w := suite.createAuthContext("GET", "/api/v1/tasks/mine", nil, &alice)

	suite.handler.ListMyTasks(c)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var response []dto.TaskDTO
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response, 2)
	assert.Equal(suite.T(), "Alice One", response[0].Title)
	assert.Equal(suite.T(), "Alice Two", response[1].Title)
}

func TestTaskHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaskHandlerTestSuite))
}
