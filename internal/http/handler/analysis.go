package handler

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"atscv/internal/model"
	"atscv/internal/parser"
	"atscv/internal/service"
)

const (
	msgNoFile         = "No se ha subido ningún archivo"
	msgUnsupported    = "Formato de archivo no soportado. Por favor, suba un archivo PDF o DOCX."
	msgAnalysisFailed = "Error procesando el CV"
)

// AnalyzeResponse wraps a successful analysis.
type AnalyzeResponse struct {
	Success  bool            `json:"success"`
	Analysis *model.Analysis `json:"analysis"`
}

// ListRoles returns the selectable target roles.
//
// @Summary     List target roles
// @Tags        analysis
// @Produce     json
// @Success     200 {array} catalog.RoleSummary
// @Router      /api/roles [get]
func ListRoles(svc service.AnalysisService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Roles())
	}
}

// AnalyzeCV scores an uploaded résumé (multipart field "cv") against an optional role.
//
// @Summary     Analyze a résumé
// @Tags        analysis
// @Accept      multipart/form-data
// @Produce     json
// @Param       cv   formData file   true  "PDF or DOCX résumé"
// @Param       role formData string false "Target role id" default(FULLSTACK_DEVELOPER)
// @Success     200 {object} AnalyzeResponse
// @Failure     400 {object} errorPayload
// @Failure     500 {object} errorPayload
// @Router      /api/analyze [post]
func AnalyzeCV(svc service.AnalysisService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("cv")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", msgNoFile)
		}
		if !parser.Supported(fh.Filename) {
			return writeError(c, fiber.StatusBadRequest, "UNSUPPORTED_FORMAT", msgUnsupported)
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot read uploaded file")
		}

		a, err := svc.Analyze(c.UserContext(), service.AnalyzeRequest{
			Filename: fh.Filename,
			Data:     data,
			Role:     c.FormValue("role"),
		})
		switch {
		case errors.Is(err, service.ErrEmptyDocument):
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", msgNoFile)
		case errors.Is(err, parser.ErrUnsupportedFormat):
			return writeError(c, fiber.StatusBadRequest, "UNSUPPORTED_FORMAT", msgUnsupported)
		case err != nil:
			return writeErrorDetails(c, fiber.StatusInternalServerError, "ANALYSIS_FAILED", msgAnalysisFailed, err.Error())
		}

		return c.JSON(AnalyzeResponse{Success: true, Analysis: a})
	}
}
