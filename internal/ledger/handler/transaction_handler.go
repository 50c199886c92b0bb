package handler

import (
	"errors"
	"time"

	apperrors "github.com/Royal-dudy99/SwiftBooks18/internal/errors"
	"github.com/Royal-dudy99/SwiftBooks18/internal/ledger/dto"
	"github.com/Royal-dudy99/SwiftBooks18/internal/ledger/service"
	"github.com/Royal-dudy99/SwiftBooks18/pkg/constant"
	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	ledger    *service.LedgerService
	analytics *service.AnalyticsService
}

func NewTransactionHandler(ledger *service.LedgerService, analytics *service.AnalyticsService) *TransactionHandler {
	return &TransactionHandler{ledger: ledger, analytics: analytics}
}

func RegisterRoutes(app *fiber.App, h *TransactionHandler, authRequired fiber.Handler) {
	tx := app.Group("/api/transactions", authRequired)
	tx.Get("/", h.List)
	tx.Post("/", h.Create)
	tx.Get("/analytics", h.Analytics)
	tx.Get("/:id", h.Get)
	tx.Put("/:id", h.Update)
	tx.Delete("/:id", h.Delete)
}

func ownerID(c *fiber.Ctx) string {
	id, _ := c.Locals(constant.LocalsUserID).(string)
	return id
}

func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateTransactionInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid input"})
	}

	tx, err := h.ledger.Create(c.Context(), ownerID(c), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(tx)
}

func (h *TransactionHandler) List(c *fiber.Ctx) error {
	q := dto.ListQuery{
		Page:     c.QueryInt("page", constant.DefaultPage),
		Limit:    c.QueryInt("limit", constant.DefaultLimit),
		Type:     c.Query("type"),
		Category: c.Query("category"),
	}

	var err error
	if q.StartDate, err = parseDate(c.Query("startDate")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid startDate"})
	}
	if q.EndDate, err = parseDate(c.Query("endDate")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid endDate"})
	}

	list, err := h.ledger.List(c.Context(), ownerID(c), q)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(list)
}

func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	tx, err := h.ledger.Get(c.Context(), ownerID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(tx)
}

func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	var input dto.UpdateTransactionInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid input"})
	}

	tx, err := h.ledger.Update(c.Context(), ownerID(c), c.Params("id"), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(tx)
}

func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	if err := h.ledger.Delete(c.Context(), ownerID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Transaction deleted successfully"})
}

func (h *TransactionHandler) Analytics(c *fiber.Ctx) error {
	start, err := parseDate(c.Query("startDate"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid startDate"})
	}
	end, err := parseDate(c.Query("endDate"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid endDate"})
	}

	summary, err := h.analytics.Summary(c.Context(), ownerID(c), start, end)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(summary)
}

// parseDate accepts date-only and RFC 3339 timestamps.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, errors.New("invalid date")
}

func respondError(c *fiber.Ctx, err error) error {
	var fieldErrs apperrors.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "validation errors",
			"errors":  fieldErrs,
		})
	case errors.Is(err, apperrors.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Transaction not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error"})
	}
}
