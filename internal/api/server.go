package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/ledgerone/ledgerone-api/docs"
	v1 "github.com/ledgerone/ledgerone-api/internal/api/handler/v1"
	"github.com/ledgerone/ledgerone-api/internal/api/middleware"
	"github.com/ledgerone/ledgerone-api/internal/config"
	"github.com/ledgerone/ledgerone-api/internal/domain"
	"github.com/ledgerone/ledgerone-api/internal/repository"
	"github.com/ledgerone/ledgerone-api/internal/repository/dao"
	"github.com/ledgerone/ledgerone-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler, authSvc := s.initAuthHandler(db)
	businessHandler := s.initBusinessHandler(db)
	employeeHandler := s.initEmployeeHandler(db)
	productHandler := s.initProductHandler(db)
	saleHandler := s.initSaleHandler(db)
	reportHandler := s.initReportHandler(db)

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey, authSvc)
	s.MountHandlers(authenticator, authHandler, businessHandler, employeeHandler, productHandler, saleHandler, reportHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) (*v1.AuthHandler, *service.AuthService) {
	owners := repository.NewOwnerRepository(dao.NewOwnerDAO(db))
	businesses := repository.NewBusinessRepository(dao.NewBusinessDAO(db))
	employees := repository.NewEmployeeRepository(dao.NewEmployeeDAO(db))
	svc := service.NewAuthService(owners, businesses, employees)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler, svc
}

func (s *Server) initBusinessHandler(db *gorm.DB) *v1.BusinessHandler {
	repo := repository.NewBusinessRepository(dao.NewBusinessDAO(db))
	employees := repository.NewEmployeeRepository(dao.NewEmployeeDAO(db))
	svc := service.NewBusinessService(repo, employees)
	handler := v1.NewBusinessHandler(svc)

	return handler
}

func (s *Server) initEmployeeHandler(db *gorm.DB) *v1.EmployeeHandler {
	repo := repository.NewEmployeeRepository(dao.NewEmployeeDAO(db))
	svc := service.NewEmployeeService(repo)
	handler := v1.NewEmployeeHandler(svc)

	return handler
}

func (s *Server) initProductHandler(db *gorm.DB) *v1.ProductHandler {
	repo := repository.NewProductRepository(dao.NewProductDAO(db))
	svc := service.NewProductService(repo)
	handler := v1.NewProductHandler(svc)

	return handler
}

func (s *Server) initSaleHandler(db *gorm.DB) *v1.SaleHandler {
	repo := repository.NewTransactionRepository(dao.NewTransactionDAO(db))
	employees := repository.NewEmployeeRepository(dao.NewEmployeeDAO(db))
	svc := service.NewSaleService(repo, employees)
	handler := v1.NewSaleHandler(svc)

	return handler
}

func (s *Server) initReportHandler(db *gorm.DB) *v1.ReportHandler {
	repo := repository.NewReportRepository(dao.NewReportDAO(db))
	products := repository.NewProductRepository(dao.NewProductDAO(db))
	svc := service.NewReportService(repo, products)
	handler := v1.NewReportHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authenticator *middleware.Authenticator,
	authHandler *v1.AuthHandler,
	businessHandler *v1.BusinessHandler,
	employeeHandler *v1.EmployeeHandler,
	productHandler *v1.ProductHandler,
	saleHandler *v1.SaleHandler,
	reportHandler *v1.ReportHandler,
) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/signup", authHandler.HandleSignup)
		public.POST("/auth/login", authHandler.HandleLogin)
		public.POST("/auth/employee-login", authHandler.HandleEmployeeLogin)

		// The employee login screen needs these before any token exists.
		public.GET("/businesses", businessHandler.HandleListBusinesses)
		public.GET("/businesses/:businessID/employees", businessHandler.HandleListLoginEmployees)
	}

	session := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		session.GET("/auth/session", authHandler.HandleGetSession)
		session.POST("/auth/logout", authHandler.HandleLogout)
		session.GET("/business", businessHandler.HandleGetBusiness)
	}

	settings := s.Router.Group(basePath, authenticator.VerifyJWT(), middleware.RequireOwner())
	{
		settings.PUT("/business", businessHandler.HandleUpdateBusiness)
	}

	staff := s.Router.Group(basePath, authenticator.VerifyJWT(), middleware.RequirePage(domain.PageStaff))
	{
		staff.GET("/employees", employeeHandler.HandleListEmployees)
		staff.POST("/employees", employeeHandler.HandleCreateEmployee)
		staff.PUT("/employees/:employeeID", employeeHandler.HandleUpdateEmployee)
		staff.DELETE("/employees/:employeeID", employeeHandler.HandleDeleteEmployee)
	}

	// The POS needs the available-product list, so viewing products is
	// open to both the inventory and the POS pages.
	inventoryRead := s.Router.Group(basePath, authenticator.VerifyJWT(), middleware.RequirePage(domain.PageInventory, domain.PagePOS))
	{
		inventoryRead.GET("/products", productHandler.HandleListProducts)
		inventoryRead.GET("/products/:productID", productHandler.HandleGetProduct)
	}

	// Product edits stay owner-only even for employees who can view the
	// inventory page.
	inventoryWrite := s.Router.Group(basePath, authenticator.VerifyJWT(), middleware.RequirePageEdit(domain.PageInventory))
	{
		inventoryWrite.POST("/products", productHandler.HandleCreateProduct)
		inventoryWrite.PUT("/products/:productID", productHandler.HandleUpdateProduct)
		inventoryWrite.DELETE("/products/:productID", productHandler.HandleDeleteProduct)
	}

	pos := s.Router.Group(basePath, authenticator.VerifyJWT(), middleware.RequirePage(domain.PagePOS))
	{
		pos.POST("/sales", saleHandler.HandleCreateSale)
	}

	sales := s.Router.Group(basePath, authenticator.VerifyJWT(), middleware.RequirePage(domain.PageSales))
	{
		sales.GET("/sales", saleHandler.HandleListSales)
		sales.GET("/sales/:saleID", saleHandler.HandleGetSale)
	}

	reports := s.Router.Group(basePath, authenticator.VerifyJWT(), middleware.RequirePage(domain.PageDashboard))
	{
		reports.GET("/reports/dashboard", reportHandler.HandleDashboard)
	}

	// Analytics never opens up to employees, whatever their flags.
	analytics := s.Router.Group(basePath, authenticator.VerifyJWT(), middleware.RequirePage(domain.PageAnalytics))
	{
		analytics.GET("/reports/analytics", reportHandler.HandleAnalytics)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "LedgerOne API"
	docs.SwaggerInfo.Description = "Point of sale and inventory API for a single business."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
