package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"freelancehub/internal/domain/repository"
	"freelancehub/internal/usecase"
	"freelancehub/pkg/response"
	"freelancehub/pkg/utils"
)

type GigHandler struct {
	gigUseCase *usecase.GigUseCase
}

func NewGigHandler(gigUseCase *usecase.GigUseCase) *GigHandler {
	return &GigHandler{
		gigUseCase: gigUseCase,
	}
}

type gigRequest struct {
	Title          string   `json:"title" validate:"required,min=3,max=120"`
	Description    string   `json:"desc" validate:"required"`
	ShortTitle     string   `json:"shortTitle" validate:"required,max=60"`
	ShortDesc      string   `json:"shortDesc" validate:"required,max=200"`
	Category       string   `json:"cat" validate:"required"`
	Price          float64  `json:"price" validate:"required,gt=0"`
	Cover          string   `json:"cover" validate:"required,url"`
	Images         []string `json:"images" validate:"omitempty,dive,url"`
	DeliveryTime   int      `json:"deliveryTime" validate:"required,min=1"`
	RevisionNumber int      `json:"revisionNumber" validate:"min=0"`
	Features       []string `json:"features"`
}

func (r gigRequest) toInput() usecase.GigInput {
	return usecase.GigInput{
		Title:          r.Title,
		Description:    r.Description,
		ShortTitle:     r.ShortTitle,
		ShortDesc:      r.ShortDesc,
		Category:       r.Category,
		Price:          r.Price,
		Cover:          r.Cover,
		Images:         r.Images,
		DeliveryTime:   r.DeliveryTime,
		RevisionNumber: r.RevisionNumber,
		Features:       r.Features,
	}
}

func (h *GigHandler) CreateGig(c echo.Context) error {
	sellerID := c.Get("uid").(string)
	isSeller, _ := c.Get("isSeller").(bool)

	var req gigRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	gig, err := h.gigUseCase.Create(c.Request().Context(), sellerID, isSeller, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, gig)
}

func (h *GigHandler) GetGig(c echo.Context) error {
	gig, err := h.gigUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, gig)
}

func (h *GigHandler) ListGigs(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	minPrice, _ := strconv.ParseFloat(c.QueryParam("min"), 64)
	maxPrice, _ := strconv.ParseFloat(c.QueryParam("max"), 64)

	filter := repository.GigFilter{
		Category: c.QueryParam("cat"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Search:   c.QueryParam("search"),
		Sort:     c.QueryParam("sort"),
	}

	gigs, total, err := h.gigUseCase.List(c.Request().Context(), filter, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, gigs, total, pagination.Page, pagination.PageSize)
}

func (h *GigHandler) ListMyGigs(c echo.Context) error {
	sellerID := c.Get("uid").(string)

	gigs, err := h.gigUseCase.ListBySeller(c.Request().Context(), sellerID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, gigs)
}

func (h *GigHandler) UpdateGig(c echo.Context) error {
	actorID := c.Get("uid").(string)

	var req gigRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	gig, err := h.gigUseCase.Update(c.Request().Context(), c.Param("id"), actorID, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, gig)
}

func (h *GigHandler) DeleteGig(c echo.Context) error {
	actorID := c.Get("uid").(string)

	if err := h.gigUseCase.Delete(c.Request().Context(), c.Param("id"), actorID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Gig has been deleted",
	})
}
