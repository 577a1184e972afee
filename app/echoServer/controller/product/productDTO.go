// app/echoServer/controller/product/productDTO.go
package product

type CreateProductReq struct {
	ProductName        string  `json:"productName" validate:"required"`
	ProductDescription string  `json:"productDescription" validate:"required"`
	ProductPrice       float64 `json:"productPrice" validate:"required,gt=0"`
	IsForSale          bool    `json:"isForSale"`
	IsForRent          bool    `json:"isForRent"`
	BrandID            int64   `json:"brandId" validate:"required,gt=0"`
	CategoryID         int64   `json:"categoryId" validate:"required,gt=0"`
}

// EditProductReq updates only the fields present in the payload.
type EditProductReq struct {
	ProductName        *string  `json:"productName"`
	ProductDescription *string  `json:"productDescription"`
	ProductPrice       *float64 `json:"productPrice" validate:"omitempty,gt=0"`
	IsForSale          *bool    `json:"isForSale"`
	IsForRent          *bool    `json:"isForRent"`
	BrandID            *int64   `json:"brandId" validate:"omitempty,gt=0"`
	CategoryID         *int64   `json:"categoryId" validate:"omitempty,gt=0"`
}
