// app/echoServer/controller/order/orderController.go
package order

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"rentmart/app/echoServer/jwtx"
	ordersvc "rentmart/service/order"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc ordersvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// Place a buy order
// @Summary      Buy a product
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body  SaleReq  true  "Sale payload"
// @Success      201  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /sale [post]
func (ct *Controller) Sale(c echo.Context) error {
	var req SaleReq
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

	o, err := ct.Svc.PlaceSale(c.Request().Context(), uid, req.ProductID, req.Quantity)
	if err != nil {
		return ct.orderError(c, "sale", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "purchase recorded", "order": o})
}

// Place a rental order
// @Summary      Rent a product for a date range
// @Description  Books the product for [rentStart, rentEnd]; overlapping rentals are rejected
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body  RentReq  true  "Rent payload"
// @Success      201  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Failure      409  {object}  map[string]any "dates already booked"
// @Router       /rent [post]
func (ct *Controller) Rent(c echo.Context) error {
	var req RentReq
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

	start, err := time.ParseInLocation("2006-01-02", req.RentStart, time.UTC)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid rentStart"})
	}
	end, err := time.ParseInLocation("2006-01-02", req.RentEnd, time.UTC)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid rentEnd"})
	}

	o, err := ct.Svc.PlaceRental(c.Request().Context(), uid, req.ProductID, req.Quantity, start, end)
	if err != nil {
		return ct.orderError(c, "rent", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "rental booked", "order": o})
}

// DELETE /deleteOrder/:id
func (ct *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	if err := ct.Svc.Delete(c.Request().Context(), id); err != nil {
		return ct.orderError(c, "order delete", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "order deleted"})
}

// GET /getByOrderType
func (ct *Controller) ByType(c echo.Context) error {
	limit, page := pageParams(c)

	rows, err := ct.Svc.ListByType(c.Request().Context(), c.QueryParam("orderType"), limit, page)
	if err != nil {
		return ct.orderError(c, "order list", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /myList
func (ct *Controller) MyList(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	limit, page := pageParams(c)

	rows, err := ct.Svc.MyList(c.Request().Context(), uid, c.QueryParam("orderType"), limit, page)
	if err != nil {
		return ct.orderError(c, "my list", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /orders
func (ct *Controller) Orders(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	id, _ := strconv.ParseInt(c.QueryParam("id"), 10, 64)
	limit, page := pageParams(c)

	rows, err := ct.Svc.Orders(c.Request().Context(), id, uid, limit, page)
	if err != nil {
		return ct.orderError(c, "orders", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

func (ct *Controller) orderError(c echo.Context, op string, err error) error {
	switch ordersvc.Code(err) {
	case ordersvc.ErrProductNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": "product not found"})
	case ordersvc.ErrOrderNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": "order not found"})
	case ordersvc.ErrDateConflict:
		return c.JSON(http.StatusConflict, echo.Map{"message": "product already booked for those dates"})
	case ordersvc.ErrNotForSale:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "product is not for sale"})
	case ordersvc.ErrNotForRent:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "product is not for rent"})
	case ordersvc.ErrInvalidDates:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid date range"})
	case ordersvc.ErrInvalidQuantity:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid quantity"})
	case ordersvc.ErrInvalidType:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "orderType must be buy or rent"})
	default:
		ct.Log.Error(op, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
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
