package routes

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"snowschool_backend/internals/configs"
	"snowschool_backend/internals/constants"
	helper "snowschool_backend/internals/helpers"
	middlewares "snowschool_backend/internals/middlewares"
	"snowschool_backend/views"
)

// NewApp builds the fiber application with views, middleware and routes.
func NewApp(cfg configs.Config, db *gorm.DB) *fiber.App {
	engine := html.NewFileSystem(http.FS(views.FS), ".html")
	engine.Reload(cfg.Debug && !cfg.UsesMemoryDB())
	engine.AddFuncMap(templateFuncs())

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		Views:                 engine,
		ViewsLayout:           "layouts/main",
		ErrorHandler:          errorHandler,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	app.Use(middlewares.RequestID(10 * time.Second))
	middlewares.SetupMiddlewares(app, cfg.CORSOrigins)

	SetupRoutes(app, db, cfg)
	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}
	if code >= fiber.StatusInternalServerError {
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
	}

	if c.Path() == "/health" || strings.HasPrefix(c.Path(), "/api/") {
		return helper.JsonError(c, code, message)
	}
	if rerr := helper.RenderStatus(c, code, "error", fiber.Map{
		"Title":   http.StatusText(code),
		"Code":    code,
		"Message": message,
	}); rerr != nil {
		log.Printf("[ERROR] render error page: %v", rerr)
		return c.Status(code).SendString(message)
	}
	return nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatDate": formatDate,
		"formatTime": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("2006-01-02 15:04")
		},
		"str": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"uintIs": func(p *uint, v uint) bool {
			return p != nil && *p == v
		},
		"sportLabel": func(s string) string {
			if l, ok := constants.SportLabels[s]; ok {
				return l
			}
			return s
		},
		"title": func(s string) string {
			if s == "" {
				return s
			}
			return strings.ToUpper(s[:1]) + s[1:]
		},
		"hasLevel": func(levels []int, level int) bool {
			for _, l := range levels {
				if l == level {
					return true
				}
			}
			return false
		},
	}
}

func formatDate(v interface{}) string {
	switch d := v.(type) {
	case datatypes.Date:
		return time.Time(d).Format(constants.DateLayout)
	case *datatypes.Date:
		if d == nil {
			return ""
		}
		return time.Time(*d).Format(constants.DateLayout)
	case time.Time:
		return d.Format(constants.DateLayout)
	}
	return ""
}
