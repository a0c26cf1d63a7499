package handler

import (
	"cargo-portal/internal/core/listview"
	"cargo-portal/internal/core/web"
	"cargo-portal/internal/features/catalog/domain"
	"cargo-portal/internal/features/catalog/service"
	"cargo-portal/internal/features/session/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// CatalogHandler handles HTTP requests for users, invoices, the marketplace,
// integration keys and reference data.
type CatalogHandler struct {
	service *service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(s *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

// PayInvoiceResponse carries the QPay invoice and the refreshed list.
type PayInvoiceResponse struct {
	Payment *domain.Payment                `json:"payment"`
	List    listview.State[domain.Invoice] `json:"list"`
}

// CreateKeyResponse carries the new key, secret included, and the refreshed list.
type CreateKeyResponse struct {
	Key  *domain.APIKey                `json:"key"`
	List listview.State[domain.APIKey] `json:"list"`
}

// QuoteResponse is a shipping cost estimate.
type QuoteResponse struct {
	Cost decimal.Decimal `json:"cost"`
}

// ListUsers handles GET /api/users.
// @Summary List users
// @Tags users
// @Produce json
// @Param search query string false "Name or phone"
// @Param type query string false "Role"
// @Param companyId query string false "Company"
// @Param page query int false "Page, from 1"
// @Success 200 {object} listview.State[domain.Member]
// @Router /api/users [get]
func (h *CatalogHandler) ListUsers(c *fiber.Ctx) error {
	f, err := web.ListFilters(c)
	if err != nil {
		return web.Error(c, fiber.StatusBadRequest, "Invalid filters")
	}
	state, err := h.service.ListUsers(c.UserContext(), middleware.FromCtx(c), f)
	return web.ListResult(c, "list users", state, err)
}

// SetActive handles PATCH /api/users/:id/active.
// @Summary Enable or disable an account
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param body body domain.Activation true "Active flag"
// @Success 200 {object} listview.State[domain.Member]
// @Router /api/users/{id}/active [patch]
func (h *CatalogHandler) SetActive(c *fiber.Ctx) error {
	var a domain.Activation
	if err := c.BodyParser(&a); err != nil {
		return web.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	state, err := h.service.SetActive(c.UserContext(), middleware.FromCtx(c), c.Params("id"), a)
	return web.ListResult(c, "set user active", state, err)
}

// ListInvoices handles GET /api/invoices.
// @Summary List invoices
// @Tags invoices
// @Produce json
// @Param status query string false "Invoice status"
// @Param page query int false "Page, from 1"
// @Success 200 {object} listview.State[domain.Invoice]
// @Router /api/invoices [get]
func (h *CatalogHandler) ListInvoices(c *fiber.Ctx) error {
	f, err := web.ListFilters(c)
	if err != nil {
		return web.Error(c, fiber.StatusBadRequest, "Invalid filters")
	}
	state, err := h.service.ListInvoices(c.UserContext(), middleware.FromCtx(c), f)
	return web.ListResult(c, "list invoices", state, err)
}

// PayInvoice handles POST /api/invoices/:id/pay.
// @Summary Pay an invoice with QPay
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} PayInvoiceResponse
// @Router /api/invoices/{id}/pay [post]
func (h *CatalogHandler) PayInvoice(c *fiber.Ctx) error {
	payment, state, err := h.service.PayInvoice(c.UserContext(), middleware.FromCtx(c), c.Params("id"))
	if err != nil {
		return web.ListResult(c, "pay invoice", state, err)
	}
	return c.JSON(PayInvoiceResponse{Payment: payment, List: state})
}

// ListListings handles GET /api/marketplace.
// @Summary List marketplace posts
// @Tags marketplace
// @Produce json
// @Param status query string false "Listing status"
// @Param search query string false "Free-text search"
// @Param page query int false "Page, from 1"
// @Success 200 {object} listview.State[domain.Listing]
// @Router /api/marketplace [get]
func (h *CatalogHandler) ListListings(c *fiber.Ctx) error {
	f, err := web.ListFilters(c)
	if err != nil {
		return web.Error(c, fiber.StatusBadRequest, "Invalid filters")
	}
	state, err := h.service.ListListings(c.UserContext(), middleware.FromCtx(c), f)
	return web.ListResult(c, "list marketplace", state, err)
}

// CreateListing handles POST /api/marketplace.
// @Summary Publish a marketplace post
// @Tags marketplace
// @Accept json
// @Produce json
// @Param body body domain.NewListing true "Listing"
// @Success 200 {object} listview.State[domain.Listing]
// @Failure 400 {object} listview.State[domain.Listing]
// @Router /api/marketplace [post]
func (h *CatalogHandler) CreateListing(c *fiber.Ctx) error {
	var l domain.NewListing
	if err := c.BodyParser(&l); err != nil {
		return web.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	state, err := h.service.CreateListing(c.UserContext(), middleware.FromCtx(c), l)
	return web.ListResult(c, "create listing", state, err)
}

// ListKeys handles GET /api/integration/keys.
// @Summary List integration keys
// @Tags integration
// @Produce json
// @Success 200 {object} listview.State[domain.APIKey]
// @Router /api/integration/keys [get]
func (h *CatalogHandler) ListKeys(c *fiber.Ctx) error {
	f, err := web.ListFilters(c)
	if err != nil {
		return web.Error(c, fiber.StatusBadRequest, "Invalid filters")
	}
	state, err := h.service.ListKeys(c.UserContext(), middleware.FromCtx(c), f)
	return web.ListResult(c, "list keys", state, err)
}

// CreateKey handles POST /api/integration/keys.
// @Summary Create an integration key
// @Description The secret is returned once and never listed again.
// @Tags integration
// @Accept json
// @Produce json
// @Param body body domain.NewAPIKey true "Key name"
// @Success 201 {object} CreateKeyResponse
// @Router /api/integration/keys [post]
func (h *CatalogHandler) CreateKey(c *fiber.Ctx) error {
	var k domain.NewAPIKey
	if err := c.BodyParser(&k); err != nil {
		return web.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	key, state, err := h.service.CreateKey(c.UserContext(), middleware.FromCtx(c), k)
	if err != nil {
		return web.ListResult(c, "create key", state, err)
	}
	return c.Status(fiber.StatusCreated).JSON(CreateKeyResponse{Key: key, List: state})
}

// RevokeKey handles DELETE /api/integration/keys/:id.
// @Summary Revoke an integration key
// @Tags integration
// @Produce json
// @Param id path string true "Key ID"
// @Success 200 {object} listview.State[domain.APIKey]
// @Router /api/integration/keys/{id} [delete]
func (h *CatalogHandler) RevokeKey(c *fiber.Ctx) error {
	state, err := h.service.RevokeKey(c.UserContext(), middleware.FromCtx(c), c.Params("id"))
	return web.ListResult(c, "revoke key", state, err)
}

// JoinCompany handles POST /api/companies/:id/join.
// @Summary Ask to join a company
// @Tags companies
// @Produce json
// @Param id path string true "Company ID"
// @Success 200 {object} notice.Notice
// @Router /api/companies/{id}/join [post]
func (h *CatalogHandler) JoinCompany(c *fiber.Ctx) error {
	n, err := h.service.JoinCompany(c.UserContext(), middleware.FromCtx(c), c.Params("id"))
	if err != nil {
		return web.Fail(c, "join company", err)
	}
	return c.JSON(n)
}

// PaymentAccounts handles GET /api/payment-accounts.
// @Summary List payment accounts
// @Tags reference
// @Produce json
// @Success 200 {array} domain.PaymentAccount
// @Router /api/payment-accounts [get]
func (h *CatalogHandler) PaymentAccounts(c *fiber.Ctx) error {
	accounts, err := h.service.PaymentAccounts(c.UserContext(), middleware.FromCtx(c))
	if err != nil {
		return web.Fail(c, "list payment accounts", err)
	}
	if accounts == nil {
		accounts = []domain.PaymentAccount{}
	}
	return c.JSON(accounts)
}

// DeliveryPoints handles GET /api/delivery-points.
// @Summary List delivery points
// @Tags reference
// @Produce json
// @Success 200 {array} domain.DeliveryPoint
// @Router /api/delivery-points [get]
func (h *CatalogHandler) DeliveryPoints(c *fiber.Ctx) error {
	points, err := h.service.DeliveryPoints(c.UserContext(), middleware.FromCtx(c))
	if err != nil {
		return web.Fail(c, "list delivery points", err)
	}
	if points == nil {
		points = []domain.DeliveryPoint{}
	}
	return c.JSON(points)
}

// PublicSettings handles GET /api/settings/public. No session is required.
// @Summary Public tariffs and contacts
// @Tags reference
// @Produce json
// @Success 200 {object} domain.PublicSettings
// @Router /api/settings/public [get]
func (h *CatalogHandler) PublicSettings(c *fiber.Ctx) error {
	s, err := h.service.PublicSettings(c.UserContext())
	if err != nil {
		return web.Fail(c, "get public settings", err)
	}
	return c.JSON(s)
}

// Quote handles GET /api/settings/quote.
// @Summary Estimate a shipping cost
// @Tags reference
// @Produce json
// @Param weight query string true "Weight in kg"
// @Param volume query string false "Volume in cubic metres"
// @Param fast query bool false "Fast service"
// @Success 200 {object} QuoteResponse
// @Failure 400 {object} web.ErrorResponse
// @Router /api/settings/quote [get]
func (h *CatalogHandler) Quote(c *fiber.Ctx) error {
	weight, err := decimal.NewFromString(c.Query("weight"))
	if err != nil || weight.IsNegative() {
		return web.Error(c, fiber.StatusBadRequest, "Invalid weight")
	}
	volume := decimal.Zero
	if raw := c.Query("volume"); raw != "" {
		if volume, err = decimal.NewFromString(raw); err != nil || volume.IsNegative() {
			return web.Error(c, fiber.StatusBadRequest, "Invalid volume")
		}
	}

	s, err := h.service.PublicSettings(c.UserContext())
	if err != nil {
		return web.Fail(c, "quote", err)
	}
	return c.JSON(QuoteResponse{Cost: s.Quote(weight, volume, c.QueryBool("fast"))})
}
