// model/catalog.go
package model

import "time"

type Category struct {
	ID           int64     `json:"id"`
	CategoryName string    `json:"categoryName"`
	CreatedAt    time.Time `json:"created_at"`
}

type Brand struct {
	ID         int64     `json:"id"`
	BrandName  string    `json:"brandName"`
	CategoryID int64     `json:"categoryId"`
	CreatedAt  time.Time `json:"created_at"`
}

type Product struct {
	ID                 int64     `json:"id"`
	ProductName        string    `json:"productName"`
	ProductDescription string    `json:"productDescription"`
	ProductPrice       float64   `json:"productPrice"`
	IsForSale          bool      `json:"isForSale"`
	IsForRent          bool      `json:"isForRent"`
	BrandID            int64     `json:"brandId"`
	CategoryID         int64     `json:"categoryId"`
	OwnerID            int64     `json:"ownerId"`
	EditedBy           *int64    `json:"editedBy,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}
