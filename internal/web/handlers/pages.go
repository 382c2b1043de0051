package handlers

import (
	"net/http"

	"job-board/internal/models"
	"job-board/internal/params"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GET /
func HandleList(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		criteria := params.ParseFilters(c.Request.URL.Query())
		jobs := ctx.Jobs.ListJobs(criteria)

		c.HTML(http.StatusOK, "list.html", newListView(jobs, criteria))
	}
}

// GET /jobs/:id
func HandleJob(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		job := ctx.Jobs.GetJob(c.Param("id"))
		if job == nil {
			RenderNotFound(c)
			return
		}

		c.HTML(http.StatusOK, "job.html", newJobView(job))
	}
}

// GET /jobs/apply/:id
func HandleApplyForm(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		job := ctx.Jobs.GetJob(c.Param("id"))
		if job == nil {
			RenderNotFound(c)
			return
		}

		c.HTML(http.StatusOK, "apply.html", newApplyView(job, models.ApplicationData{}, nil))
	}
}

// POST /jobs/apply/:id
func HandleApplySubmit(ctx *Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		jobID := c.Param("id")

		job := ctx.Jobs.GetJob(jobID)
		if job == nil {
			RenderNotFound(c)
			return
		}

		values, err := formValues(c)
		if err != nil {
			ctx.Logger.Warn("failed to parse application form",
				zap.String("job_id", jobID),
				zap.Error(err),
			)
			c.Error(err)
			RenderBadRequest(c)
			return
		}

		data := params.ParseApplication(values)
		result := ctx.Jobs.SubmitApplication(jobID, data)

		status := http.StatusOK
		if !result.Success {
			status = http.StatusUnprocessableEntity
		}

		c.HTML(status, "apply.html", newApplyView(job, data, &result))
	}
}

func RenderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "message.html", messageView{
		page:    page{Title: "Job Not Found"},
		Heading: "Not Found",
		Message: "The page or job you are looking for does not exist.",
	})
}

func RenderBadRequest(c *gin.Context) {
	c.HTML(http.StatusBadRequest, "message.html", messageView{
		page:    page{Title: "Bad Request"},
		Heading: "Bad Request",
		Message: "The submitted form could not be read. Please go back and try again.",
	})
}

func RenderTooManyRequests(c *gin.Context) {
	c.HTML(http.StatusTooManyRequests, "message.html", messageView{
		page:    page{Title: "Too Many Requests"},
		Heading: "Too Many Requests",
		Message: "You are sending requests too quickly. Please wait a minute and try again.",
	})
}

func RenderInternalError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "message.html", messageView{
		page:    page{Title: "Something went wrong"},
		Heading: "Something went wrong",
		Message: "Please try again later.",
	})
}
