package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ray-remotestate/orderdesk/handlers"
	"github.com/ray-remotestate/orderdesk/middlewares"
)

type Server struct {
	Router *mux.Router
	server *http.Server
}

const (
	readTimeout       = 5 * time.Minute
	readHeaderTimeout = 30 * time.Second
	writeTimeout      = 5 * time.Minute
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	Categories *handlers.CategoryHandler
	Suppliers  *handlers.SupplierHandler
	Products   *handlers.ProductHandler
	Orders     *handlers.OrderHandler
	OrderItems *handlers.OrderItemHandler
}

func SetupRoutes(h Handlers) *Server {
	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middlewares.AuthMiddleware)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"alive": true}`)
	}).Methods("GET")
	router.HandleFunc("/register", h.Auth.Register).Methods("POST")
	router.HandleFunc("/refresh", h.Auth.Refresh).Methods("POST")
	router.HandleFunc("/login", h.Auth.Login).Methods("POST")
	api.HandleFunc("/logout", h.Auth.Logout).Methods("POST")
	api.HandleFunc("/user", h.Auth.Me).Methods("GET")

	api.HandleFunc("/categories", h.Categories.List).Methods("GET")
	api.HandleFunc("/categories", h.Categories.Create).Methods("POST")
	api.HandleFunc("/categories/{id}", h.Categories.Show).Methods("GET")
	api.HandleFunc("/categories/{id}", h.Categories.Update).Methods("PUT", "PATCH")
	api.HandleFunc("/categories/{id}", h.Categories.Destroy).Methods("DELETE")

	api.HandleFunc("/suppliers", h.Suppliers.List).Methods("GET")
	api.HandleFunc("/suppliers", h.Suppliers.Create).Methods("POST")
	api.HandleFunc("/suppliers/{id}", h.Suppliers.Show).Methods("GET")
	api.HandleFunc("/suppliers/{id}", h.Suppliers.Update).Methods("PUT", "PATCH")
	api.HandleFunc("/suppliers/{id}", h.Suppliers.Destroy).Methods("DELETE")

	api.HandleFunc("/orders", h.Orders.List).Methods("GET")
	api.HandleFunc("/orders", h.Orders.Create).Methods("POST")
	// fixed segments before the {id} routes so they are not shadowed
	api.HandleFunc("/orders/status/{status}", h.Orders.ListByStatus).Methods("GET")
	api.HandleFunc("/orders/{id}", h.Orders.Show).Methods("GET")
	api.HandleFunc("/orders/{id}", h.Orders.Update).Methods("PUT", "PATCH")
	api.HandleFunc("/orders/{id}/status", h.Orders.UpdateStatus).Methods("PATCH")
	api.HandleFunc("/orders/{id}/cancel", h.Orders.Cancel).Methods("PATCH")

	api.HandleFunc("/products", h.Products.List).Methods("GET")
	api.HandleFunc("/products", h.Products.Create).Methods("POST")
	api.HandleFunc("/products/featured", h.Products.ListFeatured).Methods("GET")
	api.HandleFunc("/products/category/{categoryId}", h.Products.ListByCategory).Methods("GET")
	api.HandleFunc("/products/{id}", h.Products.Show).Methods("GET")
	api.HandleFunc("/products/{id}", h.Products.Update).Methods("PUT", "PATCH")
	api.HandleFunc("/products/{id}", h.Products.Destroy).Methods("DELETE")
	api.HandleFunc("/products/{id}/remove-image", h.Products.RemoveImage).Methods("PATCH")

	api.HandleFunc("/order-items", h.OrderItems.List).Methods("GET")
	api.HandleFunc("/order-items", h.OrderItems.Create).Methods("POST")
	api.HandleFunc("/order-items/bulk", h.OrderItems.BulkAdd).Methods("POST")
	api.HandleFunc("/order-items/order/{orderId}", h.OrderItems.ListByOrder).Methods("GET")
	api.HandleFunc("/order-items/{id}", h.OrderItems.Show).Methods("GET")
	api.HandleFunc("/order-items/{id}", h.OrderItems.Update).Methods("PUT")
	api.HandleFunc("/order-items/{id}", h.OrderItems.Destroy).Methods("DELETE")
	api.HandleFunc("/order-items/{id}/quantity", h.OrderItems.UpdateQuantity).Methods("PATCH")

	return &Server{
		Router: router,
	}
}

func (svr *Server) Run(port string) error {
	svr.server = &http.Server{
		Addr:              port,
		Handler:           svr.Router,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}
	return svr.server.ListenAndServe()
}

func (svr *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return svr.server.Shutdown(ctx)
}
