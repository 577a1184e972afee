// service/bulk/bulkService.go
//
// Spreadsheet bulk import for catalog entities. The first sheet is read, the
// first row is the header, and header cells must match the JSON field names
// used by the create endpoints (categoryName, brandName, productPrice, ...).
package bulksvc

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"

	"rentmart/model"

	"github.com/xuri/excelize/v2"
)

type ErrCode string

const (
	ErrNoFile  ErrCode = "NO_FILE"
	ErrBadFile ErrCode = "BAD_FILE"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// The importers only ever insert, so they depend on the narrowest slice of
// each repository.

type CategoryCreator interface {
	Create(ctx context.Context, c *model.Category) error
}

type BrandCreator interface {
	Create(ctx context.Context, b *model.Brand) error
}

type ProductCreator interface {
	Create(ctx context.Context, p *model.Product) error
}

type Service interface {
	// Each importer returns the number of rows inserted.
	ImportCategories(ctx context.Context, file []byte) (int, error)
	ImportBrands(ctx context.Context, file []byte) (int, error)
	ImportProducts(ctx context.Context, file []byte) (int, error)
}

type service struct {
	cr CategoryCreator
	br BrandCreator
	pr ProductCreator
}

func New(cr CategoryCreator, br BrandCreator, pr ProductCreator) Service {
	return &service{cr: cr, br: br, pr: pr}
}

func (s *service) ImportCategories(ctx context.Context, file []byte) (int, error) {
	rows, err := sheetRows(file)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, row := range rows {
		c := &model.Category{CategoryName: row["categoryName"]}
		if c.CategoryName == "" {
			continue
		}
		if err := s.cr.Create(ctx, c); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func (s *service) ImportBrands(ctx context.Context, file []byte) (int, error) {
	rows, err := sheetRows(file)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, row := range rows {
		b := &model.Brand{
			BrandName:  row["brandName"],
			CategoryID: parseInt(row["categoryId"]),
		}
		if b.BrandName == "" {
			continue
		}
		if err := s.br.Create(ctx, b); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func (s *service) ImportProducts(ctx context.Context, file []byte) (int, error) {
	rows, err := sheetRows(file)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, row := range rows {
		p := &model.Product{
			ProductName:        row["productName"],
			ProductDescription: row["productDescription"],
			ProductPrice:       parseFloat(row["productPrice"]),
			IsForSale:          parseBool(row["isForSale"]),
			IsForRent:          parseBool(row["isForRent"]),
			BrandID:            parseInt(row["brandId"]),
			CategoryID:         parseInt(row["categoryId"]),
			OwnerID:            parseInt(row["ownerId"]),
		}
		if p.ProductName == "" {
			continue
		}
		if err := s.pr.Create(ctx, p); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// sheetRows reads the first sheet into header-keyed maps, one per data row.
func sheetRows(file []byte) ([]map[string]string, error) {
	if len(file) == 0 {
		return nil, makeErr(ErrNoFile)
	}
	f, err := excelize.OpenReader(bytes.NewReader(file))
	if err != nil {
		return nil, makeErr(ErrBadFile)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, makeErr(ErrBadFile)
	}
	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, makeErr(ErrBadFile)
	}
	if len(raw) < 2 {
		return nil, nil
	}

	header := raw[0]
	out := make([]map[string]string, 0, len(raw)-1)
	for _, cells := range raw[1:] {
		row := make(map[string]string, len(header))
		for i, h := range header {
			if i < len(cells) {
				row[strings.TrimSpace(h)] = strings.TrimSpace(cells[i])
			}
		}
		out = append(out, row)
	}
	return out, nil
}

func parseInt(s string) int64 {
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "yes":
		return true
	}
	return false
}
