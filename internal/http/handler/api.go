package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"resumebuilder/internal/model"
	"resumebuilder/internal/render"
	"resumebuilder/internal/service"
)

// DocumentResponse is the JSON result of a generation request. When the model
// call failed, Content holds the warning text and Failure names the cause.
type DocumentResponse struct {
	Kind     model.DocumentKind `json:"kind" example:"resume"`
	Label    string             `json:"label" example:"Resume"`
	Content  string             `json:"content"`
	Failure  string             `json:"failure,omitempty" example:"timeout"`
	Filename string             `json:"filename" example:"Jane_Doe_Resume.pdf"`
}

// PDFRequest asks for a PDF of already generated text.
type PDFRequest struct {
	Kind    string `json:"kind" example:"cover-letter"`
	Name    string `json:"name" example:"Jane Doe"`
	Content string `json:"content"`
}

// APIGenerate godoc
// @Summary      Generate a document
// @Description  Builds the prompt for the given kind and returns the model output. Model failures are reported in the failure field with status 200.
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        kind     path      string             true  "resume, cover-letter or portfolio"
// @Param        profile  body      model.UserProfile  true  "profile"
// @Success      200      {object}  DocumentResponse
// @Failure      400      {object}  errorPayload
// @Failure      422      {object}  errorPayload
// @Router       /api/v1/documents/{kind} [post]
func APIGenerate(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		kind, err := model.ParseDocumentKind(c.Params("kind"))
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, CodeInvalidKind, "unknown document kind")
		}

		var profile model.UserProfile
		if err := c.BodyParser(&profile); err != nil {
			return writeError(c, fiber.StatusBadRequest, CodeInvalidBody, "invalid request body")
		}

		doc, err := docSvc.Generate(c.UserContext(), kind, profile)
		if err != nil {
			var verr *model.ValidationError
			if errors.As(err, &verr) {
				return writeError(c, fiber.StatusUnprocessableEntity, CodeValidationFailed, verr.Error())
			}
			return writeError(c, fiber.StatusInternalServerError, CodeInternalError, "internal server error")
		}

		return c.JSON(DocumentResponse{
			Kind:     doc.Kind,
			Label:    doc.Kind.Label(),
			Content:  doc.Content,
			Failure:  doc.Failure,
			Filename: doc.Filename(),
		})
	}
}

// APIRender godoc
// @Summary      Render text as PDF
// @Description  Strips markdown from content and returns an A4 PDF attachment named <Name>_<Kind>.pdf.
// @Tags         documents
// @Accept       json
// @Produce      application/pdf
// @Param        request  body      PDFRequest  true  "document"
// @Success      200      {file}    binary
// @Failure      400      {object}  errorPayload
// @Failure      422      {object}  errorPayload
// @Failure      500      {object}  errorPayload
// @Router       /api/v1/pdf [post]
func APIRender(docSvc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req PDFRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, CodeInvalidBody, "invalid request body")
		}

		kind, err := model.ParseDocumentKind(req.Kind)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, CodeInvalidKind, "unknown document kind")
		}

		var missing []string
		if strings.TrimSpace(req.Name) == "" {
			missing = append(missing, "name")
		}
		if strings.TrimSpace(req.Content) == "" {
			missing = append(missing, "content")
		}
		if len(missing) > 0 {
			verr := &model.ValidationError{Fields: missing}
			return writeError(c, fiber.StatusUnprocessableEntity, CodeValidationFailed, verr.Error())
		}

		pdf, err := docSvc.ExportPDF(c.UserContext(), model.GeneratedDocument{
			Kind:      kind,
			OwnerName: req.Name,
			Content:   req.Content,
		})
		if err != nil {
			var rerr *render.Error
			if errors.As(err, &rerr) {
				return writeError(c, fiber.StatusInternalServerError, CodePDFGenerationError, rerr.Error())
			}
			return writeError(c, fiber.StatusInternalServerError, CodeInternalError, "internal server error")
		}

		return sendPDF(c, pdf)
	}
}
