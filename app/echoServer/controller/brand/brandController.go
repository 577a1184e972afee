// app/echoServer/controller/brand/brandController.go
package brand

import (
	"log/slog"
	"net/http"
	"strconv"

	brandsvc "rentmart/service/brand"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc brandsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

type CreateBrandReq struct {
	BrandName  string `json:"brandName" validate:"required"`
	CategoryID int64  `json:"categoryId" validate:"required,gt=0"`
}

// POST /createBrand
func (ct *Controller) Create(c echo.Context) error {
	var req CreateBrandReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := ct.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	b, err := ct.Svc.Create(c.Request().Context(), req.BrandName, req.CategoryID)
	if err != nil {
		switch brandsvc.Code(err) {
		case brandsvc.ErrExists:
			return c.JSON(http.StatusConflict, echo.Map{"message": "brand already exists"})
		case brandsvc.ErrNoCategory:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "category not found"})
		case brandsvc.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		default:
			ct.Log.Error("brand create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "brand created", "brand": b})
}

// GET /getBrand
func (ct *Controller) List(c echo.Context) error {
	id, _ := strconv.ParseInt(c.QueryParam("id"), 10, 64)
	categoryID, _ := strconv.ParseInt(c.QueryParam("categoryId"), 10, 64)
	name := c.QueryParam("brandName")
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	if limit <= 0 {
		limit = 10
	}
	page, _ := strconv.ParseInt(c.QueryParam("page"), 10, 64)
	if page <= 0 {
		page = 1
	}

	rows, pg, err := ct.Svc.List(c.Request().Context(), id, name, categoryID, limit, page)
	if err != nil {
		switch brandsvc.Code(err) {
		case brandsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "no brands found"})
		default:
			ct.Log.Error("brand list", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"data":        rows,
		"totalItems":  pg.TotalItems,
		"totalPages":  pg.TotalPages,
		"currentPage": pg.CurrentPage,
	})
}
