package i

import "github.com/gin-gonic/gin"

// Controller registers its routes on the router.
type Controller interface {
	// RegisterVersioned registers routes under the versioned API base URL.
	RegisterVersioned(*gin.RouterGroup)
	// RegisterRoot registers routes kept at the server root for existing clients.
	RegisterRoot(*gin.RouterGroup)
}
