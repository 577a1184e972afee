// model/order.go
package model

import "time"

type OrderType string

const (
	OrderBuy  OrderType = "buy"
	OrderRent OrderType = "rent"
)

// RentalStatus is derived at read time from the rental window, never stored.
type RentalStatus string

const (
	RentalCompleted RentalStatus = "Completed"
	RentalCurrent   RentalStatus = "Current"
	RentalUpcoming  RentalStatus = "Upcoming"
)

type Order struct {
	ID           int64      `json:"id"`
	UserID       int64      `json:"userId"`
	ProductID    int64      `json:"productId"`
	ProductPrice float64    `json:"productPrice"`
	Quantity     int64      `json:"quantity"`
	OrderType    OrderType  `json:"orderType"`
	TotalCost    float64    `json:"totalCost"`
	OrderDate    time.Time  `json:"orderDate"`
	PerDay       *float64   `json:"perDay,omitempty"`
	RentStart    *time.Time `json:"rentStart,omitempty"`
	RentEnd      *time.Time `json:"rentEnd,omitempty"`
	TotalDays    *int64     `json:"totalDays,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
