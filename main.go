// Package main rentmart API.
//
// @title           RentMart API
// @version         1.0
// @description     Rental and sale marketplace (users, catalog, orders, bookings).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"rentmart/app/echoServer"
	adminctrl "rentmart/app/echoServer/controller/admin"
	authctrl "rentmart/app/echoServer/controller/auth"
	brandctrl "rentmart/app/echoServer/controller/brand"
	bulkctrl "rentmart/app/echoServer/controller/bulk"
	categoryctrl "rentmart/app/echoServer/controller/category"
	orderctrl "rentmart/app/echoServer/controller/order"
	productctrl "rentmart/app/echoServer/controller/product"
	userctrl "rentmart/app/echoServer/controller/user"
	"rentmart/app/echoServer/validation"
	"rentmart/config"
	brandrepo "rentmart/repository/brand"
	categoryrepo "rentmart/repository/category"
	orderrepo "rentmart/repository/order"
	productrepo "rentmart/repository/product"
	userrepo "rentmart/repository/user"
	adminsvc "rentmart/service/admin"
	authsvc "rentmart/service/auth"
	brandsvc "rentmart/service/brand"
	bulksvc "rentmart/service/bulk"
	categorysvc "rentmart/service/category"
	ordersvc "rentmart/service/order"
	productsvc "rentmart/service/product"
	usersvc "rentmart/service/user"
	"rentmart/util/database"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	// DB: *sql.DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// repos
	ur := userrepo.New(db)
	cr := categoryrepo.New(db)
	br := brandrepo.New(db)
	pr := productrepo.New(db)
	or := orderrepo.New(db)

	// services
	as := authsvc.New(ur, cfg.JWTSecret)
	cs := categorysvc.New(cr)
	bs := brandsvc.New(br, cr)
	ps := productsvc.New(pr, or)
	ords := ordersvc.New(db, or)
	us := usersvc.New(ur)
	ads := adminsvc.New(pr, or, br, cr)
	bks := bulksvc.New(cr, br, pr)

	// controllers
	v := validation.NewValidate()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	categoryC := &categoryctrl.Controller{Svc: cs, V: v, Log: log}
	brandC := &brandctrl.Controller{Svc: bs, V: v, Log: log}
	productC := &productctrl.Controller{Svc: ps, V: v, Log: log}
	orderC := &orderctrl.Controller{Svc: ords, V: v, Log: log}
	userC := &userctrl.Controller{Svc: us, Log: log}
	adminC := &adminctrl.Controller{Svc: ads, Log: log}
	bulkC := &bulkctrl.Controller{Svc: bks, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:     authC,
		Category: categoryC,
		Brand:    brandC,
		Product:  productC,
		Order:    orderC,
		User:     userC,
		Admin:    adminC,
		Bulk:     bulkC,

		Users:     ur,
		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	log.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
