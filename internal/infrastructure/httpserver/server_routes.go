package httpserver

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/metrics", s.metricsEndpoint)

	api := s.echo.Group("/api/v1")

	api.GET("/countries", s.listCountries)
	api.GET("/countries/:code", s.getCountry)
	api.GET("/packages", s.listPackages)
	api.GET("/combo-packages", s.listComboPackages)
	api.GET("/regions", s.listRegions)
	api.GET("/pages/:slug", s.getPage)

	api.POST("/balance", s.checkBalance)
	api.POST("/contact", s.submitContact)

	admin := api.Group("/admin")
	admin.Use(s.middleware.AdminKey.RequireAdminKey())

	countries := admin.Group("/countries")
	countries.POST("", s.createCountry)
	countries.POST("/reorder", s.reorderCountries)
	countries.PUT("/:id", s.updateCountry)
	countries.DELETE("/:id", s.deleteCountry)

	packages := admin.Group("/packages")
	packages.POST("", s.createPackage)
	packages.POST("/reorder", s.reorderPackages)
	packages.PUT("/:id", s.updatePackage)
	packages.DELETE("/:id", s.deletePackage)

	combos := admin.Group("/combo-packages")
	combos.POST("", s.createComboPackage)
	combos.POST("/reorder", s.reorderComboPackages)
	combos.PUT("/:id", s.updateComboPackage)
	combos.DELETE("/:id", s.deleteComboPackage)

	regions := admin.Group("/regions")
	regions.POST("", s.createRegion)
	regions.POST("/reorder", s.reorderRegions)
	regions.PUT("/:id", s.updateRegion)
	regions.DELETE("/:id", s.deleteRegion)

	pages := admin.Group("/pages")
	pages.POST("", s.createPage)
	pages.PUT("/:id", s.updatePage)
	pages.DELETE("/:id", s.deletePage)
}
