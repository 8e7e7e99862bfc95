package api

import (
	stdhttp "net/http"

	intconfig "ibrac/internal/config"
	h "ibrac/internal/http/handlers"
	"ibrac/internal/http/middleware"
	"ibrac/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.ConfigureAuth(env.JWTSecret, env.JWTTTL)
	verifier := services.AuthService{Secret: []byte(env.JWTSecret), TTL: env.JWTTTL}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Warn().Err(err).Msg("failed to set trusted proxies")
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "rota não encontrada",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api", middleware.Auth(verifier), middleware.RequirePermission())
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.GET("/me", h.Me)

		users := api.Group("/users", middleware.RequireRoles("admin"))
		users.GET("", h.ListUsers)
		users.POST("", h.CreateUser)

		entries := api.Group("/entradas")
		entries.GET("", h.ListEntries)
		entries.POST("", h.CreateEntry)
		entries.GET("/export", h.ExportEntries)
		entries.GET("/:id", h.GetEntry)
		entries.DELETE("/:id", h.DeleteEntry)

		exits := api.Group("/saidas")
		exits.GET("", h.ListExits)
		exits.POST("", h.CreateExit)
		exits.GET("/export", h.ExportExits)
		exits.GET("/:id", h.GetExit)
		exits.DELETE("/:id", h.DeleteExit)

		processing := api.Group("/beneficiamentos")
		processing.GET("", h.ListProcessing)
		processing.POST("", h.CreateProcessing)
		processing.GET("/export", h.ExportProcessing)
		processing.GET("/:id", h.GetProcessing)
		processing.DELETE("/:id", h.DeleteProcessing)
		processing.PUT("/:id/retorno", h.ReturnProcessing)
		processing.GET("/:id/resultado", h.ProcessingResult)

		stock := api.Group("/estoque")
		stock.GET("", h.ListStock)
		stock.GET("/resumo", h.StockOverview)
		stock.GET("/export", h.ExportStock)

		finance := api.Group("/financeiro")
		finance.GET("/resumo", h.FinanceSummary)
	}

	h.SetRouter(r)
	return r
}
