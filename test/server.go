package test

import (
	"net/http/httptest"
	"time"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/celestiaorg/jobtracker/internal/api/v1/middleware"
	"github.com/celestiaorg/jobtracker/internal/services"
	"github.com/celestiaorg/jobtracker/pkg/api/v1/client"
	"github.com/celestiaorg/jobtracker/pkg/api/v1/handlers"
	"github.com/celestiaorg/jobtracker/pkg/api/v1/routes"
)

// testClientTimeout is the timeout for test API client requests
const testClientTimeout = 5 * time.Second

// SetupServer configures the test suite with a real API server
func SetupServer(suite *Suite) {
	// Same error translation and middleware as the production server
	suite.App = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          handlers.ErrorHandler,
	})
	suite.App.Use(middleware.Logger())

	jobService := services.NewJobService(suite.JobRepo)
	routes.RegisterRoutes(suite.App, handlers.NewJobHandler(jobService))

	// Create test server using adaptor to convert Fiber app to http.Handler
	suite.Server = httptest.NewServer(adaptor.FiberApp(suite.App))

	// Anonymous client, for the health check and identity tests
	suite.APIClient = suite.ClientFor(0)

	originalCleanup := suite.cleanup
	suite.cleanup = func() {
		if suite.Server != nil {
			suite.Server.Close()
		}
		if originalCleanup != nil {
			originalCleanup()
		}
	}
}

// ClientFor returns an API client acting as the given user. Zero sends no identity.
func (s *Suite) ClientFor(ownerID uint) client.Client {
	apiClient, err := client.NewClient(&client.Options{
		BaseURL: s.Server.URL,
		Timeout: testClientTimeout,
		OwnerID: ownerID,
	})
	s.Require().NoError(err, "Failed to create API client")
	return apiClient
}
