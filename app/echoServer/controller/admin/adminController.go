// app/echoServer/controller/admin/adminController.go
package admin

import (
	"log/slog"
	"net/http"
	"strconv"

	adminsvc "rentmart/service/admin"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc adminsvc.Service
	Log *slog.Logger
}

type EditItemReq struct {
	BrandName    string `json:"brandName"`
	CategoryName string `json:"categoryName"`
}

// GET /searchItemManagement
func (ct *Controller) SearchItems(c echo.Context) error {
	id, _ := strconv.ParseInt(c.QueryParam("id"), 10, 64)
	limit, page := pageParams(c)

	rows, pg, err := ct.Svc.SearchItems(c.Request().Context(),
		id, c.QueryParam("ownerName"), c.QueryParam("sortBy"), limit, page)
	if err != nil {
		ct.Log.Error("item search", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"data":        rows,
		"totalItems":  pg.TotalItems,
		"totalPages":  pg.TotalPages,
		"currentPage": pg.CurrentPage,
	})
}

// GET /searchOrderManagement
func (ct *Controller) SearchOrders(c echo.Context) error {
	id, _ := strconv.ParseInt(c.QueryParam("id"), 10, 64)
	productID, _ := strconv.ParseInt(c.QueryParam("productId"), 10, 64)
	limit, page := pageParams(c)

	rows, pg, err := ct.Svc.SearchOrders(c.Request().Context(),
		id,
		c.QueryParam("renterName"),
		c.QueryParam("lenderName"),
		productID,
		c.QueryParam("productName"),
		c.QueryParam("sortBy"),
		limit, page,
	)
	if err != nil {
		ct.Log.Error("order search", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"data":        rows,
		"totalItems":  pg.TotalItems,
		"totalPages":  pg.TotalPages,
		"currentPage": pg.CurrentPage,
	})
}

// GET /getItemsById/:id
func (ct *Controller) ItemStats(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	stats, err := ct.Svc.ItemStats(c.Request().Context(), id)
	if err != nil {
		switch adminsvc.Code(err) {
		case adminsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "product not found"})
		default:
			ct.Log.Error("item stats", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, stats)
}

// PUT /editItems/:id
func (ct *Controller) EditItem(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req EditItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}

	item, err := ct.Svc.EditItem(c.Request().Context(), id, req.BrandName, req.CategoryName)
	if err != nil {
		switch adminsvc.Code(err) {
		case adminsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "product not found"})
		default:
			ct.Log.Error("item edit", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "item updated", "item": item})
}

// GET /getOrdersById/:id
func (ct *Controller) OrderDetail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	detail, err := ct.Svc.OrderDetail(c.Request().Context(), id)
	if err != nil {
		switch adminsvc.Code(err) {
		case adminsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "order not found"})
		default:
			ct.Log.Error("order detail", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, detail)
}

// GET /masterData
func (ct *Controller) MasterData(c echo.Context) error {
	posA, _ := strconv.ParseInt(c.QueryParam("positionA"), 10, 64)
	posB, _ := strconv.ParseInt(c.QueryParam("positionB"), 10, 64)

	names, err := ct.Svc.MasterData(c.Request().Context(), posA, posB)
	if err != nil {
		switch adminsvc.Code(err) {
		case adminsvc.ErrBadPosition:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid positions"})
		default:
			ct.Log.Error("master data", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"data": names})
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
