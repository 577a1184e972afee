// app/echoServer/controller/order/orderDTO.go
package order

type SaleReq struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int64 `json:"quantity" validate:"required,gt=0"`
}

// RentReq dates are calendar days, "2006-01-02". The range is inclusive on
// both ends.
type RentReq struct {
	ProductID int64  `json:"productId" validate:"required,gt=0"`
	Quantity  int64  `json:"quantity" validate:"required,gt=0"`
	RentStart string `json:"rentStart" validate:"required,datetime=2006-01-02"`
	RentEnd   string `json:"rentEnd" validate:"required,datetime=2006-01-02"`
}
