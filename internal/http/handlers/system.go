package handlers

import (
	"net/http"
	"sync"

	intconfig "ibrac/internal/config"
	"ibrac/internal/db"

	"github.com/gin-gonic/gin"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for /api/routes.
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "ibrac backend no ar"})
}

// DBCheck pings the database and lists core tables that are missing.
func DBCheck(c *gin.Context) {
	if err := intconfig.PingDB(c.Request.Context()); err != nil {
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", "banco de dados indisponível", err.Error())
		return
	}
	missing := db.MissingTables(c.Request.Context(), intconfig.DB, db.CoreTables...)
	if len(missing) > 0 {
		respondError(c, http.StatusServiceUnavailable, "schema_incomplete", "tabelas ausentes", gin.H{"missing": missing})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "conexão com o banco OK", "tables": db.CoreTables})
}

func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		respondError(c, http.StatusServiceUnavailable, "router_not_ready", "roteador não inicializado", nil)
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{"method": rt.Method, "path": rt.Path})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
