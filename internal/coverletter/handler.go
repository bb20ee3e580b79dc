package coverletter

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"coverletter-backend/internal/extract"
	"coverletter-backend/internal/shared/metrics"
	"coverletter-backend/internal/shared/server/respond"
	"coverletter-backend/internal/shared/telemetry"
	"coverletter-backend/internal/shared/util"
)

const defaultMaxUploadSize = 10 << 20 // 10MB

var errInvalidFileName = errors.New("invalid file name")

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler. A non-positive limit falls back to 10MB.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadSize
	}
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches the generation routes.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.Any("/generate/", h.generate)
	r.POST("/generate/preview/", h.preview)
}

func (h *Handler) generate(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		respond.Error(c, http.StatusMethodNotAllowed, "method_not_allowed", "Invalid request method")
		return
	}
	h.handle(c, "")
}

func (h *Handler) preview(c *gin.Context) {
	h.handle(c, ModePreview)
}

func (h *Handler) handle(c *gin.Context, forced Mode) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	var form FormFields
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		if isTooLarge(err) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "upload_too_large", "Uploaded file is too large.")
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid form data")
		return
	}

	file, uploadErr := readUpload(c)
	if uploadErr != nil {
		if isTooLarge(uploadErr) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "upload_too_large", "Uploaded file is too large.")
			return
		}
		if !errors.Is(uploadErr, errInvalidFileName) {
			respond.Error(c, http.StatusBadRequest, "validation_error", uploadErr.Error())
			return
		}
	}

	requested := form.Mode
	if forced != "" {
		requested = string(forced)
	}
	mode, err := ResolveMode(requested, file != nil || uploadErr != nil, form)
	if err != nil {
		metrics.IncRequest("invalid", "error")
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	c.Set("mode", string(mode))

	if mode == ModePreview {
		if uploadErr != nil {
			metrics.IncRequest(string(ModePreview), "error")
			respond.Error(c, http.StatusBadRequest, "validation_error", uploadErr.Error())
			return
		}
		h.runPreview(c, file)
		return
	}
	if uploadErr != nil {
		telemetry.Warn("coverletter.upload.skipped", map[string]any{
			"request_id": c.GetString("requestId"),
			"error":      uploadErr,
		})
	}
	h.runGenerate(c, form, file)
}

func (h *Handler) runPreview(c *gin.Context, file *extract.Input) {
	info, err := h.Svc.Preview(c.Request.Context(), file)
	if err != nil {
		metrics.IncRequest(string(ModePreview), "error")
		switch {
		case errors.Is(err, ErrMissingFile):
			respond.Error(c, http.StatusBadRequest, "missing_file", "Please upload a PDF, DOCX, or TXT file.")
		case errors.Is(err, extract.ErrUnsupportedFormat):
			respond.Error(c, http.StatusBadRequest, "unsupported_format", ExtractionMessage(err))
		case errors.Is(err, extract.ErrExtractionFailed):
			respond.Error(c, http.StatusUnprocessableEntity, "extraction_failed", ExtractionMessage(err))
		case errors.Is(err, extract.ErrEmptyExtraction):
			respond.Error(c, http.StatusUnprocessableEntity, "empty_extraction", ExtractionMessage(err))
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Unexpected server error")
		}
		return
	}

	metrics.IncRequest(string(ModePreview), "success")
	respond.Success(c, gin.H{"cv_info": info})
}

func (h *Handler) runGenerate(c *gin.Context, form FormFields, file *extract.Input) {
	letter, err := h.Svc.Generate(c.Request.Context(), GenerationInput{Form: form, File: file})
	if err != nil {
		metrics.IncRequest(string(ModeGenerate), "error")
		switch {
		case errors.Is(err, ErrMalformedDate):
			respond.Error(c, http.StatusBadRequest, "malformed_date", err.Error())
		case errors.Is(err, ErrGenerationFailed):
			respond.Error(c, http.StatusBadGateway, "generation_failed", err.Error())
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Unexpected server error")
		}
		return
	}

	metrics.IncRequest(string(ModeGenerate), "success")
	respond.Success(c, gin.H{
		"cover_letter": letter.CoverLetter,
		"cv_info":      letter.CVInfo,
	})
}

// readUpload returns the cv_file part held in memory, or nil when none was sent. A part whose
// name cannot be used yields errInvalidFileName.
func readUpload(c *gin.Context) (*extract.Input, error) {
	fileHeader, err := c.FormFile("cv_file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	name, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		return nil, errInvalidFileName
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, errors.New("unable to read file")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.New("unable to read file")
	}

	return &extract.Input{
		FileName:    name,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}
