// app/echoServer/controller/product/productController.go
package product

import (
	"log/slog"
	"net/http"
	"strconv"

	"rentmart/app/echoServer/jwtx"
	productrepo "rentmart/repository/product"
	productsvc "rentmart/service/product"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc productsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// Create a product
// @Summary      Create product
// @Description  Create a product owned by the authenticated user
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body  CreateProductReq  true  "Product payload"
// @Success      201  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      409  {object}  map[string]any "product name already taken"
// @Router       /createProduct [post]
func (ct *Controller) Create(c echo.Context) error {
	var req CreateProductReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := ct.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	p, err := ct.Svc.Create(c.Request().Context(), productsvc.CreateReq{
		ProductName:        req.ProductName,
		ProductDescription: req.ProductDescription,
		ProductPrice:       req.ProductPrice,
		IsForSale:          req.IsForSale,
		IsForRent:          req.IsForRent,
		BrandID:            req.BrandID,
		CategoryID:         req.CategoryID,
		OwnerID:            uid,
	})
	if err != nil {
		switch productsvc.Code(err) {
		case productsvc.ErrExists:
			return c.JSON(http.StatusConflict, echo.Map{"message": "product already exists"})
		case productsvc.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "bad input"})
		default:
			ct.Log.Error("product create", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "product created", "product": p})
}

// GET /getproduct
func (ct *Controller) List(c echo.Context) error {
	id, _ := strconv.ParseInt(c.QueryParam("id"), 10, 64)
	brandID, _ := strconv.ParseInt(c.QueryParam("brandId"), 10, 64)
	categoryID, _ := strconv.ParseInt(c.QueryParam("categoryId"), 10, 64)
	name := c.QueryParam("productName")
	limit, page := pageParams(c)

	rows, pg, err := ct.Svc.List(c.Request().Context(), id, name, brandID, categoryID, limit, page)
	if err != nil {
		switch productsvc.Code(err) {
		case productsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "no products found"})
		default:
			ct.Log.Error("product list", "err", err)
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

// PUT /edit/:id
func (ct *Controller) Edit(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req EditProductReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := ct.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	p, err := ct.Svc.Edit(c.Request().Context(), id, productrepo.Update{
		ProductName:        req.ProductName,
		ProductDescription: req.ProductDescription,
		ProductPrice:       req.ProductPrice,
		IsForSale:          req.IsForSale,
		IsForRent:          req.IsForRent,
		BrandID:            req.BrandID,
		CategoryID:         req.CategoryID,
		EditedBy:           uid,
	})
	if err != nil {
		switch productsvc.Code(err) {
		case productsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "product not found"})
		default:
			ct.Log.Error("product edit", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "product updated", "product": p})
}

// DELETE /deleteProduct/:id
func (ct *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	if err := ct.Svc.Delete(c.Request().Context(), id); err != nil {
		switch productsvc.Code(err) {
		case productsvc.ErrHasOrders:
			return c.JSON(http.StatusConflict, echo.Map{"message": "product has orders and cannot be deleted"})
		case productsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "product not found"})
		default:
			ct.Log.Error("product delete", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "product deleted"})
}

// GET /searchAll
func (ct *Controller) Search(c echo.Context) error {
	limit, page := pageParams(c)

	grouped, pg, err := ct.Svc.Search(c.Request().Context(),
		c.QueryParam("search"),
		c.QueryParam("productName"),
		c.QueryParam("categoryName"),
		c.QueryParam("brandName"),
		limit, page,
	)
	if err != nil {
		ct.Log.Error("product search", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"data":        grouped,
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
