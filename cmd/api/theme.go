package main

import (
	"net/http"

	"weather-dashboard/internal/types"

	"github.com/gin-gonic/gin"
)

const prefersColorSchemeHeader = "Sec-CH-Prefers-Color-Scheme"

// ThemeBody carries a theme in requests and responses
type ThemeBody struct {
	Theme types.Theme `json:"theme" binding:"required" example:"dark"` // light or dark
}

func prefersDark(c *gin.Context) bool {
	return c.GetHeader(prefersColorSchemeHeader) == "dark"
}

// handleGetTheme godoc
// @Summary Current theme
// @Description Stored theme, or the client's color scheme preference when none is stored
// @Tags theme
// @Produce json
// @Success 200 {object} ThemeBody
// @Router /api/theme [get]
func (app *App) handleGetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, ThemeBody{Theme: app.dashboard.Theme(c.Request.Context(), prefersDark(c))})
}

// handleSetTheme godoc
// @Summary Set theme
// @Tags theme
// @Accept json
// @Produce json
// @Param input body ThemeBody true "Theme"
// @Success 200 {object} ThemeBody
// @Failure 400 {object} map[string]string
// @Router /api/theme [put]
func (app *App) handleSetTheme(c *gin.Context) {
	var input ThemeBody
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := types.ParseTheme(string(input.Theme)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := app.dashboard.SetTheme(c.Request.Context(), input.Theme); err != nil {
		app.logger.Error("failed to set theme", "theme", input.Theme, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to set theme"})
		return
	}
	c.JSON(http.StatusOK, input)
}

// handleToggleTheme godoc
// @Summary Toggle theme
// @Description Flip between light and dark. Form posts are redirected back to the dashboard.
// @Tags theme
// @Produce json
// @Success 200 {object} ThemeBody
// @Success 303 "Redirect to /"
// @Router /api/theme/toggle [post]
func (app *App) handleToggleTheme(c *gin.Context) {
	theme, err := app.dashboard.ToggleTheme(c.Request.Context(), prefersDark(c))
	if err != nil {
		app.logger.Error("failed to toggle theme", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to toggle theme"})
		return
	}
	if c.ContentType() == "application/x-www-form-urlencoded" {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	c.JSON(http.StatusOK, ThemeBody{Theme: theme})
}
