// Package static resolves every non api path to a file below the asset root.
package static

import (
	"errors"
	"path"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"gorm.io/gorm"

	"github.com/partshop/partshop/internal/config"
	"github.com/partshop/partshop/internal/web/handler"
)

const (
	// IndexFile is served for /.
	IndexFile = "index.html"

	// AdminPath redirects to AdminDashboard.
	AdminPath = "/admin"

	// AdminDashboard is the entry page of the admin panel.
	AdminDashboard = "/admin/dashboard.html"

	// NotFoundPage is the body of every missing file.
	NotFoundPage = "<!DOCTYPE html><html><body><h1>404 Not Found</h1>" +
		"<p>The requested file could not be found.</p></body></html>"

	htmlExt     = ".html"
	defaultMIME = "text/plain"
)

// mimeTypes maps a file extension to its content type.
var mimeTypes = map[string]string{ //nolint:gochecknoglobals
	".html": "text/html",
	".js":   "text/javascript",
	".css":  "text/css",
	".json": "application/json",
	".png":  "image/png",
	".jpg":  "image/jpg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".wav":  "audio/wav",
	".mp4":  "video/mp4",
	".woff": "application/font-woff",
	".ttf":  "application/font-ttf",
	".eot":  "application/vnd.ms-fontobject",
	".otf":  "application/font-otf",
	".wasm": "application/wasm",
}

// errIsDir is returned by read for a directory.
var errIsDir = errors.New("is a directory")

// Service is the static file handler service.
type Service struct {
	handler.Service
	fs afero.Fs
}

// New returns a resolver for files of fs.
func New(fs afero.Fs) *Service {
	return &Service{fs: fs}
}

// Init registers the resolver as catch all. It must be the last registered handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	if s.fs == nil {
		return errors.New("static filesystem is nil")
	}

	app.Use(s.Serve)

	return nil
}

// ContentType returns the content type for the extension of name, text/plain if unknown.
func ContentType(name string) string {
	if t, ok := mimeTypes[path.Ext(name)]; ok {
		return t
	}

	return defaultMIME
}

// Serve answers the file for the request path.
// A missing file without extension is retried as <path>.html.
func (s *Service) Serve(c *fiber.Ctx) error {
	p := c.Path()

	if p == AdminPath {
		return c.Redirect(AdminDashboard, fiber.StatusMovedPermanently)
	}

	name := strings.TrimPrefix(p, "/")
	if name == "" {
		name = IndexFile
	}

	ext := path.Ext(name)

	data, err := s.read(name)
	if err == nil {
		c.Set(fiber.HeaderContentType, ContentType(name))

		return c.Send(data)
	}

	if ext == "" {
		if data, err = s.read(name + htmlExt); err == nil {
			c.Set(fiber.HeaderContentType, mimeTypes[htmlExt])

			return c.Send(data)
		}
	}

	c.Set(fiber.HeaderContentType, mimeTypes[htmlExt])

	return c.Status(fiber.StatusNotFound).SendString(NotFoundPage)
}

func (s *Service) read(name string) ([]byte, error) {
	info, err := s.fs.Stat(name)
	if err != nil {
		return nil, err
	}

	if info.IsDir() {
		return nil, errIsDir
	}

	return afero.ReadFile(s.fs, name)
}
