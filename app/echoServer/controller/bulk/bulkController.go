// app/echoServer/controller/bulk/bulkController.go
package bulk

import (
	"io"
	"log/slog"
	"net/http"

	bulksvc "rentmart/service/bulk"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc bulksvc.Service
	Log *slog.Logger
}

// Each endpoint takes a multipart upload under the "file" field, an xlsx
// workbook whose first sheet has a header row.

// POST /uploadCategory
func (ct *Controller) UploadCategories(c echo.Context) error {
	data, err := readUpload(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "file is required"})
	}
	n, err := ct.Svc.ImportCategories(c.Request().Context(), data)
	if err != nil {
		return ct.uploadError(c, "category upload", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "categories imported", "inserted": n})
}

// POST /uploadBrand
func (ct *Controller) UploadBrands(c echo.Context) error {
	data, err := readUpload(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "file is required"})
	}
	n, err := ct.Svc.ImportBrands(c.Request().Context(), data)
	if err != nil {
		return ct.uploadError(c, "brand upload", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "brands imported", "inserted": n})
}

// POST /uploadProduct
func (ct *Controller) UploadProducts(c echo.Context) error {
	data, err := readUpload(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "file is required"})
	}
	n, err := ct.Svc.ImportProducts(c.Request().Context(), data)
	if err != nil {
		return ct.uploadError(c, "product upload", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "products imported", "inserted": n})
}

func (ct *Controller) uploadError(c echo.Context, op string, err error) error {
	switch bulksvc.Code(err) {
	case bulksvc.ErrNoFile:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "file is empty"})
	case bulksvc.ErrBadFile:
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "file is not a valid workbook"})
	default:
		ct.Log.Error(op, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
}

func readUpload(c echo.Context) ([]byte, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
