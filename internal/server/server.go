// Package server is the HTTP transport. It maps the service operations and
// their error values onto routes and status codes.
package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"grocery-assistant/internal/clipper"
	"grocery-assistant/internal/mealplan"
	"grocery-assistant/internal/metrics"
	"grocery-assistant/internal/recipe"
	"grocery-assistant/internal/retailer"
	"grocery-assistant/internal/shopping"
)

// Server bundles the services behind the HTTP API.
type Server struct {
	recipes recipe.Catalog
	plans   *mealplan.Service
	retail  *retailer.Service
	bridge  *shopping.Bridge
	clip    *clipper.Clipper // nil when no LLM is configured
	metrics *metrics.Store
}

// New creates a Server. clip may be nil; the clip route then reports the
// feature as unavailable.
func New(
	recipes recipe.Catalog,
	plans *mealplan.Service,
	retail *retailer.Service,
	bridge *shopping.Bridge,
	clip *clipper.Clipper,
	metricsStore *metrics.Store,
) *Server {
	return &Server{
		recipes: recipes,
		plans:   plans,
		retail:  retail,
		bridge:  bridge,
		clip:    clip,
		metrics: metricsStore,
	}
}

// Router builds the gin engine with all API routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type"},
	}))

	api := router.Group("/api")
	{
		api.GET("/health", s.health)

		api.GET("/assistant/capabilities", s.assistantCapabilities)
		api.GET("/assistant/prompts", s.assistantPrompts)
		api.GET("/assistant/guardrails", s.assistantGuardrails)
		api.GET("/assistant/metrics", s.assistantMetrics)

		api.GET("/recipes", s.listRecipes)
		api.GET("/recipes/:id", s.getRecipe)
		api.POST("/recipes/clip", s.clipRecipe)

		api.POST("/meal-plans", s.createMealPlan)
		api.GET("/meal-plans", s.listMealPlans)
		api.GET("/meal-plans/:id", s.getMealPlan)
		api.GET("/meal-plans/:id/grocery-list", s.getGroceryList)
		api.POST("/meal-plans/:id/cart", s.buildCartFromPlan)

		api.GET("/stores", s.findStores)
		api.GET("/products/search", s.searchProducts)

		api.POST("/cart", s.createCart)
		api.GET("/cart/:id", s.getCart)
		api.POST("/cart/:id/items", s.addCartItems)
		api.POST("/cart/:id/checkout", s.checkout)
	}

	return router
}
