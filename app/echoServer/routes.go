package echoServer

import (
	"github.com/labstack/echo/v4"

	"github.com/ulrichb237/library2/app/echoServer/controller/book"
	"github.com/ulrichb237/library2/app/echoServer/controller/category"
	"github.com/ulrichb237/library2/app/echoServer/controller/customer"
	"github.com/ulrichb237/library2/app/echoServer/controller/loan"
)

type C struct {
	Book     *book.Controller
	Customer *customer.Controller
	Category *category.Controller
	Loan     *loan.Controller
}

func Register(e *echo.Echo, c C) {
	v1 := e.Group("/v1")

	// Books
	v1.POST("/books", c.Book.Create)
	v1.PUT("/books/:id", c.Book.Update)
	v1.DELETE("/books/:id", c.Book.Delete)
	v1.GET("/books/search", c.Book.SearchByTitle)
	v1.GET("/books/isbn", c.Book.ByIsbn)
	v1.GET("/books/category", c.Book.ByCategory)

	// Customers
	v1.POST("/customers", c.Customer.Create)
	v1.PUT("/customers/:id", c.Customer.Update)
	v1.DELETE("/customers/:id", c.Customer.Delete)
	v1.GET("/customers", c.Customer.List)
	v1.GET("/customers/email", c.Customer.ByEmail)
	v1.GET("/customers/lastname", c.Customer.ByLastName)

	// Categories
	v1.GET("/categories", c.Category.List)

	// Loans
	v1.POST("/loans", c.Loan.Create)
	v1.POST("/loans/close", c.Loan.Close)
	v1.GET("/loans/overdue", c.Loan.Overdue)
	v1.GET("/loans/customer", c.Loan.CustomerLoans)
}
