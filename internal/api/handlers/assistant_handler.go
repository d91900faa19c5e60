package handlers

import (
	"shopsmart-ai/internal/dto"
	"shopsmart-ai/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AssistantHandler struct {
	assistant *service.AssistantService
	logger    *zap.Logger
}

func NewAssistantHandler(assistant *service.AssistantService, logger *zap.Logger) *AssistantHandler {
	return &AssistantHandler{
		assistant: assistant,
		logger:    logger,
	}
}

// ProductQA godoc
// @Summary Answer a product question
// @Description Answer a shopper's question about one product, with follow-up suggestions
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body dto.ProductQARequest true "Product question"
// @Success 200 {object} dto.ProductQAResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /product-qa [post]
func (h *AssistantHandler) ProductQA(c *fiber.Ctx) error {
	var req dto.ProductQARequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Detail: "invalid request body",
		})
	}
	if req.ProductName == "" || req.ProductDescription == "" || req.UserQuestion == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Detail: "productName, productDescription and userQuestion are required",
		})
	}

	resp, err := h.assistant.AnswerProductQuestion(c.Context(), &req)
	if err != nil {
		h.logger.Error("Product question failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: err.Error(),
		})
	}

	return c.JSON(resp)
}

// AISearch godoc
// @Summary Extract product names from a search query
// @Description Extract up to 6 candidate product names or keywords from a free-text query
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body dto.AISearchRequest true "Search query"
// @Success 200 {object} dto.AISearchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /ai-search [post]
func (h *AssistantHandler) AISearch(c *fiber.Ctx) error {
	var req dto.AISearchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Detail: "invalid request body",
		})
	}
	if req.Query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Detail: "query is required",
		})
	}

	names, err := h.assistant.ExtractSearchTerms(c.Context(), req.Query)
	if err != nil {
		h.logger.Error("AI search failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: err.Error(),
		})
	}

	return c.JSON(dto.AISearchResponse{ProductNames: names})
}

// Recommend godoc
// @Summary Recommend complementary products
// @Description Suggest up to 5 complementary product names for the current cart
// @Tags assistant
// @Accept json
// @Produce json
// @Param request body dto.RecommendRequest true "Cart contents"
// @Success 200 {object} dto.RecommendResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /recommend [post]
func (h *AssistantHandler) Recommend(c *fiber.Ctx) error {
	var req dto.RecommendRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Detail: "invalid request body",
		})
	}

	names, err := h.assistant.RecommendForCart(c.Context(), req.Cart)
	if err != nil {
		h.logger.Error("Recommendation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Detail: err.Error(),
		})
	}

	return c.JSON(dto.RecommendResponse{ProductNames: names})
}
