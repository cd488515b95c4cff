package handlers

import (
	identity "identity_client"
	"identity_client/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpToken   string
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error
	authUser      *identity.User
	authErr       error

	lastSignUpUsername string
	lastSignUpEmail    string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastAuthToken      string
}

func (m *mockAuth) SignUp(username, email, password string) (string, error) {
	m.lastSignUpUsername = username
	m.lastSignUpEmail = email
	m.lastSignUpPassword = password
	return m.signUpToken, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	return m.parseID, m.parseErr
}
func (m *mockAuth) Authenticate(token string) (*identity.User, error) {
	m.lastAuthToken = token
	return m.authUser, m.authErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil)
	return h.InitRoutes()
}
