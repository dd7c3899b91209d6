package web

import (
	"embed"
	"html/template"
	"strconv"
	"time"
	"unicode/utf8"

	"go-recruitment-console/internal/delivery/http/middleware"
	"go-recruitment-console/pkg/logger"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	descriptionPreview = 200
	skillPreview       = 3
)

var monthsPT = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// LoadTemplates parses the embedded console pages.
func LoadTemplates() (*template.Template, error) {
	return template.New("").Funcs(TemplateFuncs()).ParseFS(templatesFS, "templates/*.html")
}

func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"truncate": Truncate,
		"previewSkills": func(skills []string) []string {
			if len(skills) <= skillPreview {
				return skills
			}
			return skills[:skillPreview]
		},
		"hiddenSkills": func(skills []string) int {
			if len(skills) <= skillPreview {
				return 0
			}
			return len(skills) - skillPreview
		},
		"scoreBadge": ScoreBadge,
		"scoreTier":  ScoreTier,
		"scoreLabel": ScoreLabel,
		"years":      YearsLabel,
		"number":     FormatNumber,
		"dateBR":     FormatDate,
		"add":        func(a, b int) int { return a + b },
		"sub":        func(a, b int) int { return a - b },
	}
}

// Truncate cuts text to max runes and appends an ellipsis.
func Truncate(text string, max int) string {
	if utf8.RuneCountInString(text) <= max {
		return text
	}
	return string([]rune(text)[:max]) + "..."
}

// ScoreBadge picks the badge variant of the directory cards.
func ScoreBadge(score float64) string {
	switch {
	case score >= 80:
		return "default"
	case score >= 60:
		return "secondary"
	default:
		return "outline"
	}
}

// ScoreTier picks the color band of the matching cards.
func ScoreTier(score float64) string {
	switch {
	case score >= 80:
		return "excellent"
	case score >= 60:
		return "good"
	case score >= 40:
		return "moderate"
	default:
		return "low"
	}
}

func ScoreLabel(score float64) string {
	switch {
	case score >= 80:
		return "Excelente Match"
	case score >= 60:
		return "Bom Match"
	case score >= 40:
		return "Match Moderado"
	default:
		return "Match Baixo"
	}
}

func YearsLabel(years float64) string {
	if years == 1 {
		return "ano"
	}
	return "anos"
}

// FormatNumber prints whole numbers without a decimal part.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatDate renders "02 de janeiro de 2006".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02") + " de " + monthsPT[t.Month()-1] + " de " + strconv.Itoa(t.Year())
}

// renderPage fills the data every page shares (user, CSRF token, flash
// messages) and renders name.
func renderPage(c *gin.Context, code int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if provider := middleware.SessionFrom(c); provider != nil {
		data["User"] = provider.User()
	}
	data["CSRF"] = c.GetString(middleware.CSRFContextKey)
	data["Path"] = c.Request.URL.Path

	flashes, err := middleware.NotifierFrom(c).Drain(c.Request.Context())
	if err != nil {
		logger.Log.Warn("Failed to read flash messages", "error", err)
	}
	data["Flashes"] = flashes

	c.HTML(code, name, data)
}
