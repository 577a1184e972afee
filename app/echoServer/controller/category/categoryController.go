// app/echoServer/controller/category/categoryController.go
package category

import (
	"log/slog"
	"net/http"
	"strconv"

	categorysvc "rentmart/service/category"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc categorysvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

type CreateCategoryReq struct {
	CategoryName string `json:"categoryName" validate:"required"`
}

// POST /createCategory
func (ct *Controller) Create(c echo.Context) error {
	var req CreateCategoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := ct.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	cat, err := ct.Svc.Create(c.Request().Context(), req.CategoryName)
	if err != nil {
		switch categorysvc.Code(err) {
		case categorysvc.ErrExists:
			return c.JSON(http.StatusConflict, echo.Map{"message": "category already exists"})
		case categorysvc.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		default:
			ct.Log.Error("category create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "category created", "category": cat})
}

// GET /getCategory
func (ct *Controller) List(c echo.Context) error {
	id, _ := strconv.ParseInt(c.QueryParam("id"), 10, 64)
	name := c.QueryParam("categoryName")
	limit, page := pageParams(c)

	rows, pg, err := ct.Svc.List(c.Request().Context(), id, name, limit, page)
	if err != nil {
		switch categorysvc.Code(err) {
		case categorysvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "no categories found"})
		default:
			ct.Log.Error("category list", "err", err)
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

func pageParams(c echo.Context) (limit, page int64) {
	limit, _ = strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	if limit <= 0 {
		limit = 10
	}
	page, _ = strconv.ParseInt(c.QueryParam("page"), 10, 64)
	if page <= 0 {
		page = 1
	}
	return limit, page
}
