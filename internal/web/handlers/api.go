package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"job-board/internal/jobs"
	"job-board/internal/params"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxFormMemory = 1 << 20

// GET /api/jobs
func HandleAPIList(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		criteria := params.ParseFilters(c.Request.URL.Query())

		c.JSON(http.StatusOK, gin.H{
			"jobs":    ctx.Jobs.ListJobs(criteria),
			"filters": criteria,
		})
	}
}

// GET /api/jobs/:id
func HandleAPIJob(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		job := ctx.Jobs.GetJob(c.Param("id"))
		if job == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": jobs.MsgJobNotFound})
			return
		}

		c.JSON(http.StatusOK, job)
	}
}

// POST /api/jobs/:id/apply
func HandleAPIApply(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		jobID := c.Param("id")

		values, err := formValues(c)
		if err != nil {
			ctx.Logger.Warn("failed to parse application body",
				zap.String("job_id", jobID),
				zap.Error(err),
			)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		result := ctx.Jobs.SubmitApplication(jobID, params.ParseApplication(values))

		status := http.StatusOK
		switch {
		case result.Success:
		case result.Message == jobs.MsgJobNotFound:
			status = http.StatusNotFound
		default:
			status = http.StatusUnprocessableEntity
		}

		c.JSON(status, result)
	}
}

// RenderAPIError answers /api requests that did not reach a handler.
func RenderAPIError(c *gin.Context) {
	status := c.Writer.Status()
	c.JSON(status, gin.H{"error": strings.ToLower(http.StatusText(status))})
}

// formValues returns the submitted fields of a form-encoded, multipart or
// JSON object body. JSON values must all be strings.
func formValues(c *gin.Context) (url.Values, error) {
	switch c.ContentType() {
	case gin.MIMEJSON:
		var body map[string]string
		if err := c.ShouldBindJSON(&body); err != nil {
			return url.Values{}, fmt.Errorf("decode json body: %w", err)
		}
		return params.FromMap(body), nil
	case gin.MIMEMultipartPOSTForm:
		if err := c.Request.ParseMultipartForm(maxFormMemory); err != nil {
			return url.Values{}, fmt.Errorf("parse multipart form: %w", err)
		}
	default:
		if err := c.Request.ParseForm(); err != nil {
			return url.Values{}, fmt.Errorf("parse form: %w", err)
		}
	}

	return c.Request.PostForm, nil
}
