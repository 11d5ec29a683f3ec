package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lysyi3m/article-enhancer/app/pipeline"
)

func NewHandler(runner RunnerInterface, browser BrowserInterface, publication, version string) *Handler {
	return &Handler{
		runner:      runner,
		browser:     browser,
		publication: publication,
		version:     version,
	}
}

func (h *Handler) newPage() pageData {
	return pageData{
		Publication: h.publication,
		Version:     h.version,
	}
}

func (h *Handler) GetIndex(c *gin.Context) {
	page := h.newPage()
	page.Form.ArticleURL = c.Query("article_url")

	c.HTML(http.StatusOK, "index.html", page)
}

func (h *Handler) PostGenerate(c *gin.Context) {
	page := h.newPage()

	var req pipeline.Request
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("Invalid form submission", "error", err)
		page.Error = "Invalid form submission."
		c.HTML(http.StatusBadRequest, "index.html", page)
		return
	}
	page.Form = req

	result, err := h.runner.Run(c.Request.Context(), req)
	if err != nil {
		page.Error = pipeline.UserMessage(err)
		c.HTML(errorStatus(err), "index.html", page)
		return
	}

	page.Result = result
	c.HTML(http.StatusOK, "index.html", page)
}

func (h *Handler) GetFeed(c *gin.Context) {
	page := h.newPage()
	page.FeedURL = c.Query("url")
	page.FeedQuery = c.Query("q")

	if page.FeedURL == "" {
		page.FeedError = "Please provide a feed URL."
		c.HTML(http.StatusBadRequest, "index.html", page)
		return
	}

	listing, err := h.browser.Browse(c.Request.Context(), page.FeedURL, page.FeedQuery)
	if err != nil {
		slog.Error("Feed browsing failed", "url", page.FeedURL, "error", err)
		page.FeedError = "Could not load feed: " + err.Error()
		c.HTML(http.StatusBadGateway, "index.html", page)
		return
	}

	page.Listing = listing
	c.HTML(http.StatusOK, "index.html", page)
}

func (h *Handler) APIGenerate(c *gin.Context) {
	var req pipeline.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	result, err := h.runner.Run(c.Request.Context(), req)
	if err != nil {
		c.JSON(errorStatus(err), gin.H{"error": pipeline.UserMessage(err)})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"version":   h.version,
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	})
}

func errorStatus(err error) int {
	var validationErr *pipeline.InputValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}
