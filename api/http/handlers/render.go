package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/artem13815/cvforge/api/http/presenter"
	"github.com/artem13815/cvforge/pkg/document"
	"github.com/artem13815/cvforge/pkg/i18n"
	"github.com/artem13815/cvforge/pkg/render"
)

// PDFExporter печатает готовый HTML в PDF.
type PDFExporter interface {
	Export(ctx context.Context, html string) ([]byte, error)
}

// RenderHandler отдаёт печатное представление резюме.
type RenderHandler struct {
	docs document.UseCase
	pdf  PDFExporter
}

func NewRenderHandler(docs document.UseCase, pdf PDFExporter) *RenderHandler {
	return &RenderHandler{docs: docs, pdf: pdf}
}

func (h *RenderHandler) load(c *fiber.Ctx) (document.Document, *i18n.Bundle, error) {
	bundle := i18n.Resolve(c.Params("locale"))
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return document.Document{}, bundle, document.ErrNotFound
	}
	d, err := h.docs.Get(c.Context(), id)
	if err != nil {
		return document.Document{}, bundle, err
	}
	return d, bundle, nil
}

// Print отдаёт печатный HTML с заголовками секций на языке из сегмента пути.
// @Summary Printable resume view
// @Tags    render
// @Produce html
// @Param   locale path string true "locale segment (ru|en)"
// @Param   id     path string true "resume id"
// @Security BearerAuth
// @Success 200 {string} string "printable HTML"
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /{locale}/resumes/{id}/print [get]
func (h *RenderHandler) Print(c *fiber.Ctx) error {
	d, bundle, err := h.load(c)
	if err != nil {
		return renderError(c, err)
	}
	html, err := render.HTML(d.Data, bundle)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to render resume")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// Export отдаёт PDF-версию печатного представления.
// @Summary Export resume to PDF
// @Tags    render
// @Produce application/pdf
// @Param   locale path string true "locale segment (ru|en)"
// @Param   id     path string true "resume id"
// @Security BearerAuth
// @Success 200 {string} binary "PDF file"
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /{locale}/resumes/{id}/export [get]
func (h *RenderHandler) Export(c *fiber.Ctx) error {
	d, bundle, err := h.load(c)
	if err != nil {
		return renderError(c, err)
	}
	html, err := render.HTML(d.Data, bundle)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to render resume")
	}
	pdf, err := h.pdf.Export(c.Context(), html)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to export pdf")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resume-`+d.ID.String()+`.pdf"`)
	return c.Send(pdf)
}

func renderError(c *fiber.Ctx, err error) error {
	if errors.Is(err, document.ErrNotFound) {
		return presenter.Error(c, http.StatusNotFound, "resume not found")
	}
	return presenter.Error(c, http.StatusInternalServerError, "failed to load resume")
}
