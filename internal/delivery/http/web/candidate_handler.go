package web

import (
	"net/http"
	"net/url"

	"go-recruitment-console/internal/delivery/http/middleware"
	"go-recruitment-console/internal/domain"
	"go-recruitment-console/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
	jobUC       domain.JobUsecase
}

func NewCandidateHandler(protected *gin.RouterGroup, candidateUC domain.CandidateUsecase, jobUC domain.JobUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC, jobUC: jobUC}

	protected.GET("/candidates", handler.Directory)
	protected.GET("/jobs/:id/candidates", handler.Matching)
	protected.POST("/jobs/:id/candidates/:candidateId/invite", handler.Invite)
}

// Matching shows the backend's ranking for one job.
func (h *CandidateHandler) Matching(c *gin.Context) {
	ctx := c.Request.Context()
	notifier := middleware.NotifierFrom(c)
	jobID := c.Param("id")

	job := usecase.NewJobBoard(h.jobUC, notifier, usecase.JobBoardOptions{}).FetchJobByID(ctx, jobID)
	if job == nil {
		renderNotFound(c)
		return
	}

	board := usecase.NewMatchingBoard(h.candidateUC, notifier, jobID)
	board.FetchCandidates(ctx)

	renderPage(c, http.StatusOK, "matching.html", gin.H{
		"Title":      "Candidatos para " + job.Title,
		"Job":        job,
		"Candidates": board.Candidates(),
		"Summary":    board.Summary(),
	})
}

// Invite posts the invitation. The redirected page reloads the ranking.
func (h *CandidateHandler) Invite(c *gin.Context) {
	jobID := c.Param("id")

	board := usecase.NewMatchingBoard(h.candidateUC, middleware.NotifierFrom(c), jobID)
	board.SendInvite(c.Request.Context(), c.Param("candidateId"))

	c.Redirect(http.StatusSeeOther, "/jobs/"+url.PathEscape(jobID)+"/candidates")
}

func (h *CandidateHandler) Directory(c *gin.Context) {
	dir := usecase.LoadCandidateDirectory(c.Request.Context(), h.candidateUC, middleware.NotifierFrom(c), c.Query("q"))

	renderPage(c, http.StatusOK, "candidates.html", gin.H{
		"Title":     "Candidatos",
		"Directory": dir,
	})
}
