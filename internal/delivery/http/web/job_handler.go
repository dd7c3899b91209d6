package web

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go-recruitment-console/internal/delivery/http/middleware"
	"go-recruitment-console/internal/domain"
	"go-recruitment-console/internal/usecase"
	"go-recruitment-console/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	actionAddSkill = "add_skill"
	actionSubmit   = "submit"
)

type JobHandler struct {
	jobUC    domain.JobUsecase
	validate *validator.Validate
	pageSize int
}

func NewJobHandler(protected *gin.RouterGroup, jobUC domain.JobUsecase, validate *validator.Validate, pageSize int) {
	handler := &JobHandler{jobUC: jobUC, validate: validate, pageSize: pageSize}

	protected.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, usecase.PathHome)
	})

	jobs := protected.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.GET("/new", handler.New)
		jobs.POST("/new", handler.Create)
		jobs.GET("/:id/edit", handler.Edit)
		jobs.POST("/:id/edit", handler.Update)
		jobs.GET("/:id/delete", handler.ConfirmDelete)
		jobs.POST("/:id/delete", handler.Delete)
	}
}

// jobForm is what the form template needs to re-render itself.
type jobForm struct {
	Input      *domain.JobInput
	SkillInput string
	Errors     map[string]string
	Action     string
	Heading    string
	Submit     string
	Editing    bool
}

func (h *JobHandler) board(c *gin.Context, page int) *usecase.JobBoard {
	return usecase.NewJobBoard(h.jobUC, middleware.NotifierFrom(c), usecase.JobBoardOptions{
		InitialPage:  page,
		InitialLimit: h.pageSize,
	})
}

func (h *JobHandler) List(c *gin.Context) {
	board := h.board(c, pageParam(c.Query("page")))
	board.FetchJobs(c.Request.Context())

	renderPage(c, http.StatusOK, "jobs.html", gin.H{
		"Title": "Vagas",
		"Board": board.State(),
	})
}

func (h *JobHandler) New(c *gin.Context) {
	renderPage(c, http.StatusOK, "job_form.html", gin.H{
		"Title": "Nova vaga",
		"Form":  newJobForm(&domain.JobInput{Skills: []string{}}),
	})
}

func (h *JobHandler) Create(c *gin.Context) {
	form, ready := h.applyForm(c, newJobForm(nil))
	if !ready {
		renderForm(c, "Nova vaga", form)
		return
	}

	if job := h.board(c, 1).CreateJob(c.Request.Context(), form.Input); job == nil {
		renderForm(c, "Nova vaga", form)
		return
	}
	c.Redirect(http.StatusSeeOther, usecase.PathHome)
}

func (h *JobHandler) Edit(c *gin.Context) {
	id := c.Param("id")
	job := h.board(c, 1).FetchJobByID(c.Request.Context(), id)
	if job == nil {
		renderNotFound(c)
		return
	}

	renderPage(c, http.StatusOK, "job_form.html", gin.H{
		"Title": "Editar vaga",
		"Form":  editJobForm(id, domain.InputFromJob(job)),
	})
}

func (h *JobHandler) Update(c *gin.Context) {
	id := c.Param("id")
	form, ready := h.applyForm(c, editJobForm(id, nil))
	if !ready {
		renderForm(c, "Editar vaga", form)
		return
	}

	if job := h.board(c, 1).UpdateJob(c.Request.Context(), id, form.Input.Patch()); job == nil {
		renderForm(c, "Editar vaga", form)
		return
	}
	c.Redirect(http.StatusSeeOther, usecase.PathHome)
}

func (h *JobHandler) ConfirmDelete(c *gin.Context) {
	job := h.board(c, 1).FetchJobByID(c.Request.Context(), c.Param("id"))
	if job == nil {
		renderNotFound(c)
		return
	}

	renderPage(c, http.StatusOK, "job_delete.html", gin.H{
		"Title": "Deletar vaga",
		"Job":   job,
		"Page":  pageParam(c.Query("page")),
	})
}

// Delete removes the job from the page it was listed on. When that
// empties the page the listing steps back one page. If the page cannot
// be loaded first the listing stays where it was.
func (h *JobHandler) Delete(c *gin.Context) {
	board := h.board(c, pageParam(c.PostForm("page")))
	board.LoadPage(c.Request.Context())
	board.DeleteJob(c.Request.Context(), c.Param("id"))

	c.Redirect(http.StatusSeeOther, listURL(board.State().Page))
}

// applyForm reads the posted job form and performs its action. Only a
// submit that passes validation is ready to be sent to the backend.
func (h *JobHandler) applyForm(c *gin.Context, form *jobForm) (*jobForm, bool) {
	form.Input = &domain.JobInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Location:    c.PostForm("location"),
		SalaryRange: c.PostForm("salaryRange"),
		Skills:      validation.NormalizeSkills(c.PostFormArray("skills")),
	}
	form.SkillInput = c.PostForm("skillInput")

	if remove := c.PostForm("remove_skill"); remove != "" {
		form.Input.Skills = validation.RemoveSkill(form.Input.Skills, remove)
		return form, false
	}

	if c.PostForm("action") == actionAddSkill {
		form.Input.Skills = validation.AddSkill(form.Input.Skills, form.SkillInput)
		form.SkillInput = ""
		return form, false
	}

	if err := h.validate.Struct(form.Input); err != nil {
		form.Errors = validation.FormatFieldErrors(err)
		return form, false
	}
	return form, true
}

func newJobForm(input *domain.JobInput) *jobForm {
	return &jobForm{
		Input:   input,
		Action:  "/jobs/new",
		Heading: "Nova vaga",
		Submit:  "Criar vaga",
	}
}

func editJobForm(id string, input *domain.JobInput) *jobForm {
	return &jobForm{
		Input:   input,
		Action:  "/jobs/" + url.PathEscape(id) + "/edit",
		Heading: "Editar vaga",
		Submit:  "Salvar alterações",
		Editing: true,
	}
}

func renderForm(c *gin.Context, title string, form *jobForm) {
	code := http.StatusOK
	if len(form.Errors) > 0 {
		code = http.StatusUnprocessableEntity
	}
	renderPage(c, code, "job_form.html", gin.H{
		"Title": title,
		"Form":  form,
	})
}

func renderNotFound(c *gin.Context) {
	renderPage(c, http.StatusNotFound, "job_not_found.html", gin.H{"Title": "Vaga não encontrada"})
}

func pageParam(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func listURL(page int) string {
	if page <= 1 {
		return usecase.PathHome
	}
	return usecase.PathHome + "?page=" + strconv.Itoa(page)
}
