// app/echoServer/controller/user/userController.go
package user

import (
	"log/slog"
	"net/http"
	"strconv"

	usersvc "rentmart/service/user"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc usersvc.Service
	Log *slog.Logger
}

// GET /allusers
func (ct *Controller) All(c echo.Context) error {
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	if limit <= 0 {
		limit = 10
	}
	page, _ := strconv.ParseInt(c.QueryParam("page"), 10, 64)
	if page <= 0 {
		page = 1
	}

	rows, err := ct.Svc.All(c.Request().Context(), limit, page)
	if err != nil {
		ct.Log.Error("user list", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /users
func (ct *Controller) Find(c echo.Context) error {
	id, _ := strconv.ParseInt(c.QueryParam("id"), 10, 64)

	rows, err := ct.Svc.Find(c.Request().Context(), id, c.QueryParam("name"), c.QueryParam("role"))
	if err != nil {
		switch usersvc.Code(err) {
		case usersvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "no users found"})
		default:
			ct.Log.Error("user find", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}
