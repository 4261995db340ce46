package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"go-weather/internal/application/screen"
	"go-weather/pkg/msg"
)

// SearchTextDTO is the body of POST /screen/search/text
type SearchTextDTO struct {
	Text string `json:"text"`
}

type ScreenController struct {
	api    *echo.Group
	screen *screen.Controller
}

func NewScreenController(api *echo.Group, screenController *screen.Controller) *ScreenController {
	return &ScreenController{api: api, screen: screenController}
}

// InitScreenRoutes initializes the routes that drive the shared screen
func (controller *ScreenController) InitScreenRoutes() {
	controller.api.GET("/screen", controller.GetScreen)
	controller.api.POST("/screen/search/toggle", controller.ToggleSearch)
	controller.api.POST("/screen/search/text", controller.ChangeText)
	controller.api.POST("/screen/search/blur", controller.Blur)
	controller.api.POST("/screen/search/select/:index", controller.SelectCity)
	controller.api.POST("/screen/refresh", controller.Refresh)
}

func (controller *ScreenController) GetScreen(c echo.Context) error {
	return controller.render(c, http.StatusOK)
}

func (controller *ScreenController) ToggleSearch(c echo.Context) error {
	controller.screen.ToggleSearch()
	return controller.render(c, http.StatusOK)
}

func (controller *ScreenController) ChangeText(c echo.Context) error {
	var dto SearchTextDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	if err := controller.screen.ChangeText(dto.Text); err != nil {
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	}
	return controller.render(c, http.StatusAccepted)
}

func (controller *ScreenController) Blur(c echo.Context) error {
	controller.screen.Blur()
	return controller.render(c, http.StatusOK)
}

func (controller *ScreenController) SelectCity(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("screen.invalid-selection", c.Param("index"))})
	}

	if err := controller.screen.SelectIndex(index); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": msg.GetMessage("screen.invalid-selection", index)})
	}
	return controller.render(c, http.StatusAccepted)
}

// Refresh answers 409 while another forecast request is in flight
func (controller *ScreenController) Refresh(c echo.Context) error {
	if !controller.screen.Refresh() {
		return controller.render(c, http.StatusConflict)
	}
	return controller.render(c, http.StatusAccepted)
}

func (controller *ScreenController) render(c echo.Context, status int) error {
	return c.JSON(status, screen.Render(controller.screen.Snapshot()))
}
