package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zerohexer/cspnet/internal/style"
)

// StyleHandler serves the style sheet built at startup.
type StyleHandler struct {
	sheet *style.Sheet
}

// NewStyleHandler creates a new StyleHandler.
func NewStyleHandler(sheet *style.Sheet) *StyleHandler {
	return &StyleHandler{sheet: sheet}
}

// SheetGet writes the style sheet, or 304 when the client's copy is current.
func (h *StyleHandler) SheetGet(c echo.Context) error {
	etag := h.sheet.ETag()
	header := c.Response().Header()
	header.Set("ETag", etag)
	header.Set("Cache-Control", "no-cache")

	if c.Request().Header.Get("If-None-Match") == etag {
		return c.NoContent(http.StatusNotModified)
	}
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", h.sheet.CSS())
}
