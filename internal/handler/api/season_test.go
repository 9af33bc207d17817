//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"venuebook/internal/domain/season"
	"venuebook/internal/handler/api"
	resdto "venuebook/internal/handler/dto/response"
	"venuebook/internal/handler/middleware"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"
	"venuebook/tests/common/builder"
	"venuebook/tests/common/httptest"
	commandsmock "venuebook/tests/mock/commands"
	queriesmock "venuebook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SeasonHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSeasonCommands
	mockQueries  *queriesmock.MockSeasonQueries
	handler      *api.SeasonHandler
	actor        *httptest.Actor
}

func (s *SeasonHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSeasonCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSeasonQueries(s.mockCtrl)
	s.handler = api.NewSeasonHandler(s.mockCommands, s.mockQueries)

	s.actor = &httptest.Actor{
		UserID:   uuid.NewString(),
		TenantID: uuid.NewString(),
	}

	group := s.router.Group("/seasons", middleware.RequireActor())
	group.GET("/:id/resources/:resourceId/ranking", s.handler.GetRankingPreview)
	group.POST("/:id/resources/:resourceId/allocate", s.handler.Allocate)
}

func (s *SeasonHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSeasonHandlerSuite(t *testing.T) {
	suite.Run(t, new(SeasonHandlerTestSuite))
}

// ================================================================================
// TestGetRankingPreview
// ================================================================================

func (s *SeasonHandlerTestSuite) TestGetRankingPreview() {
	seasonID := uuid.New()
	resourceID := uuid.New()
	url := "/seasons/" + seasonID.String() + "/resources/" + resourceID.String() + "/ranking"

	views := []queries.RankedApplicationView{
		{ApplicationID: uuid.New(), OrganizationID: uuid.New(), Score: 40, Rank: 1, Status: "approved"},
		{ApplicationID: uuid.New(), OrganizationID: uuid.New(), Score: 10, Rank: 2, Status: "waitlist"},
	}

	s.Run("success: returns 200 OK with the ranked preview", func() {
		s.mockQueries.EXPECT().RankingPreview(gomock.Any(), seasonID, resourceID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.actor)

		var response []resdto.RankedApplicationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal(views[0].ApplicationID, response[0].ApplicationID)
		s.Equal(1, response[0].Rank)
		s.Equal("waitlist", response[1].Status)
	})

	s.Run("error: 400 Bad Request for malformed IDs", func() {
		badSeason := "/seasons/nope/resources/" + resourceID.String() + "/ranking"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, badSeason, nil, s.actor)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid season ID")

		badResource := "/seasons/" + seasonID.String() + "/resources/nope/ranking"
		rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, badResource, nil, s.actor)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid resource ID")
	})

	s.Run("error: 404 Not Found for unknown resource", func() {
		s.mockQueries.EXPECT().RankingPreview(gomock.Any(), seasonID, resourceID).
			Return(nil, queries.ErrResourceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.actor)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Resource not found")
	})
}

// ================================================================================
// TestAllocate
// ================================================================================

func (s *SeasonHandlerTestSuite) TestAllocate() {
	seasonID := uuid.New()
	resourceID := uuid.New()
	url := "/seasons/" + seasonID.String() + "/resources/" + resourceID.String() + "/allocate"

	winner := builder.NewApplicationBuilder().WithSeasonID(seasonID).WithResourceID(resourceID).BuildDomain()
	runnerUp := builder.NewApplicationBuilder().WithSeasonID(seasonID).WithResourceID(resourceID).BuildDomain()
	ranked := []season.RankedApplication{
		{Application: winner, Score: 40, Rank: 1, Status: season.ApplicationApproved},
		{Application: runnerUp, Score: 10, Rank: 2, Status: season.ApplicationWaitlist},
	}

	s.Run("success: returns 200 OK with the allocation outcome", func() {
		s.mockCommands.EXPECT().Allocate(gomock.Any(), seasonID, resourceID).
			Return(ranked, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, s.actor)

		var response []resdto.RankedApplicationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal(winner.ID, response[0].ApplicationID)
		s.Equal("approved", response[0].Status)
		s.Equal("waitlist", response[1].Status)
	})

	s.Run("error: 422 Unprocessable Entity when nothing is pending", func() {
		s.mockCommands.EXPECT().Allocate(gomock.Any(), seasonID, resourceID).
			Return(nil, commands.ErrNoApplications).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, s.actor)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "No pending applications")
	})

	s.Run("error: 401 Unauthorized without actor identity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Actor identity required")
	})

	s.Run("error: 500 Internal Server Error on unexpected failures", func() {
		s.mockCommands.EXPECT().Allocate(gomock.Any(), seasonID, resourceID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, s.actor)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
