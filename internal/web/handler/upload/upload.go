// Package upload stores images sent as base64 data urls under /api/upload-image.
package upload

import (
	"encoding/base64"
	"errors"
	"os"
	"path"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"gorm.io/gorm"

	"github.com/partshop/partshop/internal/config"
	"github.com/partshop/partshop/internal/uniuri"
	"github.com/partshop/partshop/internal/web/handler"
)

const (
	// Path is the upload endpoint.
	Path = "/api/upload-image"

	// ImagesDir is the image directory relative to the asset root.
	ImagesDir = "uploads/images"

	// URLPrefix is the public path of ImagesDir.
	URLPrefix = "/" + ImagesDir + "/"

	// MsgInvalidDataURL answers a body without a png or jpeg data url.
	MsgInvalidDataURL = "Invalid dataUrl"

	// MsgUploadFailed answers any filesystem failure.
	MsgUploadFailed = "Upload failed"

	filePrefix   = "img_"
	suffixLen    = 6
	dirPerm      = 0o755
	filePerm     = 0o644
	maxNameTries = 3
)

// dataURL matches data:image/png;base64,... and the jpg/jpeg variants, any case.
var dataURL = regexp.MustCompile(`(?i)^data:(image/(png|jpe?g));base64,(.+)$`)

// Response is the json answer of a stored image.
type Response struct {
	URL string `json:"url"`
}

// Service is the image upload handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	fs  afero.Fs
	now func() time.Time
}

// New returns an upload handler writing below ImagesDir of fs.
func New(fs afero.Fs) *Service {
	return &Service{fs: fs, now: time.Now}
}

// Init initializes the upload handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	if s.fs == nil {
		return errors.New("upload filesystem is nil")
	}

	if s.now == nil {
		s.now = time.Now
	}

	s.cfg = cfg

	app.Post(Path, s.Post)

	return nil
}

// Post decodes body.dataUrl and stores it as a new image file.
func (s *Service) Post(c *fiber.Ctx) error {
	raw, _ := handler.Body(c)["dataUrl"].(string)

	mime, ext, payload, ok := Parse(raw)
	if !ok {
		return handler.Error(c, fiber.StatusBadRequest, MsgInvalidDataURL)
	}

	name, err := s.store(ext, payload)
	if err != nil {
		log.Error().Err(err).Str("mime", mime).Msg("image upload failed")

		return handler.Error(c, fiber.StatusInternalServerError, MsgUploadFailed)
	}

	log.Info().Str("file", name).Str("mime", mime).Int("bytes", len(payload)).Msg("image uploaded")

	return c.Status(fiber.StatusCreated).JSON(Response{URL: URLPrefix + name})
}

// Parse splits a data url into its mime type, file extension and decoded payload.
// jpeg variants map to jpg, png to png. Anything else is not ok.
func Parse(raw string) (mime, ext string, payload []byte, ok bool) {
	m := dataURL.FindStringSubmatch(raw)
	if m == nil {
		return "", "", nil, false
	}

	ext = "png"
	if strings.HasPrefix(strings.ToLower(m[2]), "jp") {
		ext = "jpg"
	}

	payload, err := decodeBase64(m[3])
	if err != nil {
		return "", "", nil, false
	}

	return strings.ToLower(m[1]), ext, payload, true
}

// decodeBase64 accepts padded and unpadded, standard and url safe alphabets.
// The payload is a single line, dataURL does not match across line breaks.
func decodeBase64(s string) ([]byte, error) {
	var err error

	for _, enc := range []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	} {
		var b []byte
		if b, err = enc.DecodeString(s); err == nil {
			return b, nil
		}
	}

	return nil, err
}

// store writes payload to a fresh file name and returns that name.
func (s *Service) store(ext string, payload []byte) (string, error) {
	if err := s.fs.MkdirAll(ImagesDir, dirPerm); err != nil {
		return "", err
	}

	var err error

	for range maxNameTries {
		name := s.fileName(ext)

		err = s.create(path.Join(ImagesDir, name), payload)
		if err == nil {
			return name, nil
		}

		if !errors.Is(err, os.ErrExist) {
			return "", err
		}
	}

	return "", err
}

// fileName is img_<unix millis>_<random>.<ext>.
func (s *Service) fileName(ext string) string {
	return filePrefix +
		strconv.FormatInt(s.now().UnixMilli(), 10) + "_" +
		uniuri.NewLenChars(suffixLen, uniuri.LowerChars) + "." + ext
}

// create fails with os.ErrExist instead of overwriting an existing file.
func (s *Service) create(name string, payload []byte) error {
	f, err := s.fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return err
	}

	if _, err = f.Write(payload); err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}
