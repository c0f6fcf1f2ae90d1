package router

import "github.com/gin-gonic/gin"

// Module is one feature area of the API (auth, clients, uploads, ...) that
// knows how to mount its own routes. Modules are built in InitModules and
// attached under the shared /api group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
