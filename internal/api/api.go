package api

import (
	"net/http"
	adminHandler "zatch-server/internal/admin/handler"
	campaignHandler "zatch-server/internal/campaign/handler"
	newsletterHandler "zatch-server/internal/newsletter/handler"
	"zatch-server/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

type API struct {
	router            *gin.RouterGroup
	campaignHandler   campaignHandler.Handler
	newsletterHandler newsletterHandler.Handler
	adminHandler      adminHandler.Handler
	limiter           *ratelimit.Limiter
	limiterEnabled    bool
}

func New(
	router *gin.RouterGroup,
	campaignHandler campaignHandler.Handler,
	newsletterHandler newsletterHandler.Handler,
	adminHandler adminHandler.Handler,
	limiter *ratelimit.Limiter,
	limiterEnabled bool,
) API {
	return API{
		router:            router,
		campaignHandler:   campaignHandler,
		newsletterHandler: newsletterHandler,
		adminHandler:      adminHandler,
		limiter:           limiter,
		limiterEnabled:    limiterEnabled,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()

	campaignGroup := a.router.Group("/campaign")
	{
		campaignGroup.POST("/signup", a.limited("signup"), a.campaignHandler.HandleSignup)
		campaignGroup.POST("/share", a.limited("share"), a.campaignHandler.HandleShare)
		campaignGroup.GET("/participant/:id", a.campaignHandler.HandleGetParticipant)
	}

	apiGroup := a.router.Group("/api")
	{
		apiGroup.POST("/subscribe", a.limited("subscribe"), a.newsletterHandler.HandleSubscribe)

		adminGroup := apiGroup.Group("/admin", a.adminHandler.BasicAuth())
		adminGroup.GET("/overview", a.adminHandler.HandleOverview)
		adminGroup.GET("/participants", a.adminHandler.HandleListParticipants)
		adminGroup.PATCH("/participants/:id", a.adminHandler.HandleUpdateParticipant)
		adminGroup.DELETE("/participants/:id", a.adminHandler.HandleDeleteParticipant)
		adminGroup.GET("/referrals", a.adminHandler.HandleListReferrals)
		adminGroup.DELETE("/referrals/:id", a.adminHandler.HandleDeleteReferral)
		adminGroup.GET("/shares", a.adminHandler.HandleListShares)
		adminGroup.DELETE("/shares/:id", a.adminHandler.HandleDeleteShare)
		adminGroup.GET("/subscribers", a.adminHandler.HandleListSubscribers)
		adminGroup.DELETE("/subscribers/:id", a.adminHandler.HandleDeleteSubscriber)
	}
}

// limited wraps a route in the velocity limiter when enabled
func (a *API) limited(route string) gin.HandlerFunc {
	if !a.limiterEnabled {
		return func(c *gin.Context) { c.Next() }
	}
	return a.limiter.Middleware(route)
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
