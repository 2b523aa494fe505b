package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"resumebuilder/internal/http/middleware"
	"resumebuilder/internal/model"
	"resumebuilder/internal/render"
	"resumebuilder/internal/service"
	"resumebuilder/internal/session"
)

func sessionOrFail(c *fiber.Ctx) (*session.Session, error) {
	sess := middleware.SessionFromCtx(c)
	if sess == nil {
		return nil, fiber.ErrInternalServerError
	}
	return sess, nil
}

// Index renders the form with the remembered profile and the current document.
func Index(opts PageOptions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := sessionOrFail(c)
		if err != nil {
			return err
		}
		return renderPage(c, fiber.StatusOK, newPageData(sess, opts, ""))
	}
}

// Generate validates the submitted form and produces a document of the kind
// named in the path. Validation failures leave the current document and the
// remembered profile untouched; the page still echoes what was submitted.
func Generate(docSvc service.DocumentService, opts PageOptions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := sessionOrFail(c)
		if err != nil {
			return err
		}

		kind, err := model.ParseDocumentKind(c.Params("kind"))
		if err != nil {
			return fiber.ErrNotFound
		}

		var profile model.UserProfile
		if err := c.BodyParser(&profile); err != nil {
			return fiber.ErrBadRequest
		}

		doc, err := docSvc.Generate(c.UserContext(), kind, profile)
		if err != nil {
			var verr *model.ValidationError
			if errors.As(err, &verr) {
				data := newPageData(sess, opts, verr.Error())
				data.Profile = profile
				return renderPage(c, fiber.StatusUnprocessableEntity, data)
			}
			return err
		}

		sess.SetProfile(profile)
		sess.SetCurrent(doc)
		return renderPage(c, fiber.StatusOK, newPageData(sess, opts, ""))
	}
}

// Clear drops the current document and returns to the form.
func Clear() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := sessionOrFail(c)
		if err != nil {
			return err
		}
		sess.Clear()
		return c.Redirect("/", fiber.StatusSeeOther)
	}
}

// Download renders the current document as a PDF attachment. A render failure
// shows the page again with the error and the document still in place.
func Download(docSvc service.DocumentService, opts PageOptions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := sessionOrFail(c)
		if err != nil {
			return err
		}

		doc, ok := sess.Current()
		if !ok {
			return writeError(c, fiber.StatusNotFound, CodeNotFound, "no document has been generated")
		}

		pdf, err := docSvc.ExportPDF(c.UserContext(), doc)
		if err != nil {
			var rerr *render.Error
			if errors.As(err, &rerr) {
				return renderPage(c, fiber.StatusInternalServerError, newPageData(sess, opts, rerr.Error()))
			}
			if errors.Is(err, service.ErrNoContent) {
				return writeError(c, fiber.StatusNotFound, CodeNotFound, "no document has been generated")
			}
			return err
		}

		return sendPDF(c, pdf)
	}
}

func sendPDF(c *fiber.Ctx, pdf *model.RenderedPDF) error {
	c.Attachment(pdf.Filename)
	c.Set(fiber.HeaderContentType, pdf.ContentType)
	return c.Status(fiber.StatusOK).Send(pdf.Data)
}
