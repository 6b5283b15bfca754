package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"grocery-assistant/internal/assistant"
	"grocery-assistant/internal/mealplan"
	"grocery-assistant/internal/retailer"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) assistantCapabilities(c *gin.Context) {
	c.JSON(http.StatusOK, assistant.GetCapabilities())
}

func (s *Server) assistantPrompts(c *gin.Context) {
	c.Data(http.StatusOK, "application/json", assistant.Prompts())
}

func (s *Server) assistantGuardrails(c *gin.Context) {
	c.Data(http.StatusOK, "application/json", assistant.Guardrails())
}

func (s *Server) assistantMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, s.metrics.Summarize())
}

func (s *Server) listRecipes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"recipes": s.recipes.List()})
}

func (s *Server) getRecipe(c *gin.Context) {
	rec, ok := s.recipes.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe_not_found"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) clipRecipe(c *gin.Context) {
	if s.clip == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "clipper_unavailable", "message": "No LLM is configured; set GEMINI_API_KEY to enable recipe clipping."})
		return
	}

	var body struct {
		URL string `json:"url"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	draft, err := s.clip.ClipURL(c.Request.Context(), body.URL)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "clip_failed", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (s *Server) createMealPlan(c *gin.Context) {
	var input mealplan.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	plan, err := s.plans.Create(input)
	if err != nil {
		var noValid *mealplan.NoValidEntriesError
		if errors.As(err, &noValid) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":          "no_valid_entries",
				"invalidEntries": noValid.InvalidEntries,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (s *Server) listMealPlans(c *gin.Context) {
	plans, err := s.plans.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mealPlans": plans})
}

func (s *Server) getMealPlan(c *gin.Context) {
	plan, err := s.plans.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, mealplan.ErrMealPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal_plan_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (s *Server) getGroceryList(c *gin.Context) {
	list, err := s.plans.GroceryList(c.Param("id"))
	if err != nil {
		if errors.Is(err, mealplan.ErrMealPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal_plan_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) buildCartFromPlan(c *gin.Context) {
	var body struct {
		StoreID string `json:"storeId"`
		Zipcode string `json:"zipcode"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	build, err := s.bridge.BuildCartFromPlan(c.Param("id"), body.StoreID, body.Zipcode)
	if err != nil {
		switch {
		case errors.Is(err, mealplan.ErrMealPlanNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "meal_plan_not_found"})
		case errors.Is(err, retailer.ErrStoreNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "store_not_found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		}
		return
	}
	c.JSON(http.StatusCreated, build)
}

func (s *Server) findStores(c *gin.Context) {
	zipcode := c.Query("zipcode")
	c.JSON(http.StatusOK, gin.H{
		"zipcode": zipcode,
		"stores":  s.retail.StoresByZip(zipcode),
	})
}

func (s *Server) searchProducts(c *gin.Context) {
	query := retailer.SearchQuery{
		Query:   c.Query("query"),
		StoreID: c.Query("storeId"),
		Zipcode: c.Query("zipcode"),
	}
	c.JSON(http.StatusOK, gin.H{
		"query":    query.Query,
		"storeId":  query.StoreID,
		"zipcode":  query.Zipcode,
		"products": s.retail.SearchProducts(query),
	})
}

func (s *Server) createCart(c *gin.Context) {
	var body struct {
		StoreID string               `json:"storeId"`
		Zipcode string               `json:"zipcode"`
		Items   []retailer.ItemInput `json:"items"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	cart, err := s.retail.CreateCart(body.StoreID, body.Zipcode, body.Items)
	if err != nil {
		if errors.Is(err, retailer.ErrStoreNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "store_not_found", "message": "Store not found for cart creation."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	c.JSON(http.StatusCreated, cart)
}

func (s *Server) getCart(c *gin.Context) {
	cart, err := s.retail.Cart(c.Param("id"))
	if err != nil {
		if errors.Is(err, retailer.ErrCartNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (s *Server) addCartItems(c *gin.Context) {
	var body struct {
		Items []retailer.ItemInput `json:"items"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	cart, err := s.retail.AddItems(c.Param("id"), body.Items)
	if err != nil {
		if errors.Is(err, retailer.ErrCartNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (s *Server) checkout(c *gin.Context) {
	links, err := s.retail.CheckoutLinks(c.Param("id"))
	if err != nil {
		if errors.Is(err, retailer.ErrCartNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	c.JSON(http.StatusOK, links)
}
