// app/echoServer/routes.go
package echoServer

import (
	"rentmart/app/echoServer/controller/admin"
	"rentmart/app/echoServer/controller/auth"
	"rentmart/app/echoServer/controller/brand"
	"rentmart/app/echoServer/controller/bulk"
	"rentmart/app/echoServer/controller/category"
	"rentmart/app/echoServer/controller/order"
	"rentmart/app/echoServer/controller/product"
	"rentmart/app/echoServer/controller/user"
	userrepo "rentmart/repository/user"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type C struct {
	Auth     *auth.Controller
	Category *category.Controller
	Brand    *brand.Controller
	Product  *product.Controller
	Order    *order.Controller
	User     *user.Controller
	Admin    *admin.Controller
	Bulk     *bulk.Controller

	Users     userrepo.Repo
	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	e.POST("/register", c.Auth.Register)
	e.POST("/login", c.Auth.Login)

	e.POST("/uploadCategory", c.Bulk.UploadCategories)
	e.POST("/uploadBrand", c.Bulk.UploadBrands)
	e.POST("/uploadProduct", c.Bulk.UploadProducts)

	// Authenticated
	g := e.Group("")
	g.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(c.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization",
	}))

	all := RoleGate(c.Users, "admin", "lender", "renter")
	members := RoleGate(c.Users, "lender", "renter")
	adminOnly := RoleGate(c.Users, "admin")

	// Catalog
	g.POST("/createCategory", c.Category.Create, all)
	g.POST("/createBrand", c.Brand.Create, members)
	g.POST("/createProduct", c.Product.Create, members)
	g.GET("/getCategory", c.Category.List, members)
	g.GET("/getBrand", c.Brand.List, members)
	g.GET("/getproduct", c.Product.List, members)
	g.PUT("/edit/:id", c.Product.Edit, members)
	g.GET("/searchAll", c.Product.Search, members)

	// Orders
	g.POST("/sale", c.Order.Sale, members)
	g.POST("/rent", c.Order.Rent, members)
	g.DELETE("/deleteOrder/:id", c.Order.Delete, all)
	g.GET("/getByOrderType", c.Order.ByType, members)
	g.GET("/myList", c.Order.MyList, members)
	g.GET("/orders", c.Order.Orders, members)

	// Users
	g.GET("/allusers", c.User.All, all)
	g.GET("/users", c.User.Find, all)

	// Admin management
	g.GET("/searchItemManagement", c.Admin.SearchItems, adminOnly)
	g.GET("/searchOrderManagement", c.Admin.SearchOrders, adminOnly)
	g.GET("/getItemsById/:id", c.Admin.ItemStats, adminOnly)
	g.PUT("/editItems/:id", c.Admin.EditItem, adminOnly)
	g.DELETE("/deleteProduct/:id", c.Product.Delete, all)
	g.GET("/getOrdersById/:id", c.Admin.OrderDetail, adminOnly)
	g.GET("/masterData", c.Admin.MasterData, adminOnly)
}
