package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/shipgate/site-api/internal/api/dto"
	"github.com/shipgate/site-api/internal/service"
)

// ScorecardHandler exposes the quiz submission endpoint.
type ScorecardHandler struct {
	scorecard *service.ScorecardService
}

// NewScorecardHandler constructs handler.
func NewScorecardHandler(scorecard *service.ScorecardService) *ScorecardHandler {
	return &ScorecardHandler{scorecard: scorecard}
}

// Submit handles POST /api/scorecard.
func (h *ScorecardHandler) Submit(c *fiber.Ctx) error {
	var req dto.ScorecardRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.scorecard.SubmitScorecard(c.UserContext(), service.ScorecardInput{
		Email:       req.Email,
		FullName:    req.FullName,
		CompanyName: req.CompanyName,
		Answers:     req.Answers,
		CreatedAt:   req.CreatedAt,
		PageURL:     req.PageURL,
		UserAgent:   c.Get(fiber.HeaderUserAgent),
	})
	if err != nil {
		return err
	}

	return c.JSON(dto.ScorecardResponse{
		OK:         true,
		TotalScore: result.TotalScore,
		Tier:       string(result.Tier),
		Result:     result.Content,
	})
}
