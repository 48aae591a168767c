package handlers

import (
	"github.com/borsibaar/barpos/internal/dto"
	"github.com/borsibaar/barpos/internal/middleware"
	"github.com/borsibaar/barpos/internal/repository"
	"github.com/borsibaar/barpos/internal/services"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles every HTTP handler of the API.
type Handlers struct {
	Auth         *AuthHandler
	Account      *AccountHandler
	Organization *OrganizationHandler
	User         *UserHandler
	BarStation   *BarStationHandler
	Category     *CategoryHandler
	Product      *ProductHandler
	Inventory    *InventoryHandler
	Sale         *SaleHandler
}

// NewHandlers wires services and handlers over repos.
func NewHandlers(repos *repository.Repositories) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.NewAuthService(repos.Users)),
		Account:      NewAccountHandler(services.NewAccountService(repos)),
		Organization: NewOrganizationHandler(services.NewOrganizationService(repos.Organizations)),
		User:         NewUserHandler(services.NewUserService(repos.Users)),
		BarStation:   NewBarStationHandler(services.NewBarStationService(repos)),
		Category:     NewCategoryHandler(services.NewCategoryService(repos)),
		Product:      NewProductHandler(services.NewProductService(repos)),
		Inventory:    NewInventoryHandler(services.NewInventoryService(repos)),
		Sale:         NewSaleHandler(services.NewSaleService(repos)),
	}
}

// NewRouter builds the gin engine with the middleware chain and route table.
// checks back the /ready probe.
func NewRouter(repos *repository.Repositories, store sessions.Store, sessionName string, checks ...ReadinessCheck) *gin.Engine {
	dto.RegisterValidators()
	h := NewHandlers(repos)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())

	r.GET("/health", healthHandler)
	r.GET("/ready", readinessHandler(checks))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authenticated := middleware.RequireAccess(middleware.AccessAuthenticated)
	member := middleware.RequireAccess(middleware.AccessMember)
	admin := middleware.RequireAccess(middleware.AccessAdmin)

	api := r.Group("/api")
	api.Use(sessions.Sessions(sessionName, store))
	api.Use(middleware.LoadPrincipal(repos.Users))
	api.Use(middleware.RequestLogger())
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", h.Auth.Signup)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/logout", h.Auth.Logout)
		}

		account := api.Group("/account", authenticated)
		{
			account.GET("", h.Account.GetAccount)
			account.POST("/onboarding", h.Account.CompleteOnboarding)
		}

		orgs := api.Group("/organizations")
		{
			orgs.POST("", authenticated, h.Organization.CreateOrganization)
			orgs.GET("", authenticated, h.Organization.ListOrganizations)
			orgs.GET("/current", member, h.Organization.GetCurrentOrganization)
			orgs.PUT("/current", admin, h.Organization.UpdateCurrentOrganization)
		}

		api.GET("/users", admin, h.User.ListUsers)

		stations := api.Group("/bar-stations")
		{
			stations.GET("", admin, h.BarStation.ListStations)
			stations.GET("/user", member, h.BarStation.ListAssignedStations)
			stations.GET("/:id", member, h.BarStation.GetStation)
			stations.POST("", admin, h.BarStation.CreateStation)
			stations.PUT("/:id", admin, h.BarStation.UpdateStation)
			stations.DELETE("/:id", admin, h.BarStation.DeleteStation)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", member, h.Category.ListCategories)
			categories.GET("/:id", member, h.Category.GetCategory)
			categories.POST("", admin, h.Category.CreateCategory)
			categories.PUT("/:id", admin, h.Category.UpdateCategory)
			categories.DELETE("/:id", admin, h.Category.DeleteCategory)
		}

		products := api.Group("/products")
		{
			products.GET("", member, h.Product.ListProducts)
			products.GET("/:id", member, h.Product.GetProduct)
			products.POST("", admin, h.Product.CreateProduct)
			products.PUT("/:id", admin, h.Product.UpdateProduct)
			products.DELETE("/:id", admin, h.Product.DeleteProduct)
		}

		inventory := api.Group("/inventory")
		{
			inventory.GET("", member, h.Inventory.ListInventory)
			inventory.GET("/product/:productId/transactions", member, h.Inventory.ListTransactions)
			inventory.POST("/add", admin, h.Inventory.AddStock)
			inventory.POST("/remove", admin, h.Inventory.RemoveStock)
			inventory.POST("/adjust", admin, h.Inventory.AdjustStock)
		}

		sales := api.Group("/sales", member)
		{
			sales.POST("", h.Sale.CreateSale)
			sales.GET("", h.Sale.ListSales)
			sales.GET("/:id", h.Sale.GetSale)
		}
	}

	return r
}
