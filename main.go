// Package main library API.
//
// @title           Library API
// @version         1.0
// @description     Library backend (books, customers, categories, loans).
// @BasePath        /
// @schemes         http
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/ulrichb237/library2/app/echoServer"
	bookctrl "github.com/ulrichb237/library2/app/echoServer/controller/book"
	categoryctrl "github.com/ulrichb237/library2/app/echoServer/controller/category"
	customerctrl "github.com/ulrichb237/library2/app/echoServer/controller/customer"
	loanctrl "github.com/ulrichb237/library2/app/echoServer/controller/loan"
	"github.com/ulrichb237/library2/app/echoServer/validation"
	"github.com/ulrichb237/library2/config"
	bookrepo "github.com/ulrichb237/library2/repository/book"
	categoryrepo "github.com/ulrichb237/library2/repository/category"
	customerrepo "github.com/ulrichb237/library2/repository/customer"
	loanrepo "github.com/ulrichb237/library2/repository/loan"
	booksvc "github.com/ulrichb237/library2/service/book"
	categorysvc "github.com/ulrichb237/library2/service/category"
	customersvc "github.com/ulrichb237/library2/service/customer"
	loansvc "github.com/ulrichb237/library2/service/loan"
	"github.com/ulrichb237/library2/util/database"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := database.New(ctx, cfg.DatabaseURL, cfg.MigrationsDir, log)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// repos
	br := bookrepo.New(db)
	cr := customerrepo.New(db)
	gr := categoryrepo.New(db)
	lr := loanrepo.New(db)

	// services
	bs := booksvc.New(br)
	cs := customersvc.New(cr)
	gs := categorysvc.New(gr)
	ls := loansvc.New(lr, bs, cs)

	// controllers
	v := validator.New()
	bookC := &bookctrl.Controller{Svc: bs, V: v, Log: log}
	customerC := &customerctrl.Controller{Svc: cs, V: v, Log: log}
	categoryC := &categoryctrl.Controller{Svc: gs, Log: log}
	loanC := &loanctrl.Controller{Svc: ls, V: v, Log: log}

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
		Book:     bookC,
		Customer: customerC,
		Category: categoryC,
		Loan:     loanC,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
