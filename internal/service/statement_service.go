package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/statement-server/internal/logging"
	"github.com/carson-networks/statement-server/internal/operator/actions"
	"github.com/carson-networks/statement-server/internal/statement"
)

// templateName is the single document shape this service renders.
const templateName = "statement"

// templateRenderer renders a named template against a context.
type templateRenderer interface {
	Render(name string, ctx statement.RenderContext) (string, error)
}

// pdfExporter runs an export action and returns the PDF bytes.
type pdfExporter interface {
	Process(ctx context.Context, action actions.IAction) ([]byte, error)
}

// artifactStore spools PDF artifacts between export and encoding.
type artifactStore interface {
	Save(pdf []byte) (string, error)
	Encode(path string) (string, error)
	Remove(path string) error
}

// StatementService runs the statement pipeline: assemble, render,
// export, spool, encode. No state survives a request.
type StatementService struct {
	renderer       templateRenderer
	exporter       pdfExporter
	store          artifactStore
	renderTimeout  time.Duration
	currencySymbol string
}

// NewStatementService creates a new StatementService.
func NewStatementService(renderer templateRenderer, exporter pdfExporter, store artifactStore, renderTimeout time.Duration, currencySymbol string) *StatementService {
	return &StatementService{
		renderer:       renderer,
		exporter:       exporter,
		store:          store,
		renderTimeout:  renderTimeout,
		currencySymbol: currencySymbol,
	}
}

// Generate produces the base64-encoded PDF statement for one payload.
// The stages run strictly sequentially; any stage error aborts the
// pipeline and propagates tagged with its origin. The spooled artifact
// is removed before returning on every path that created it.
func (s *StatementService) Generate(ctx context.Context, data *statement.StatementData) (string, error) {
	logData := logging.GetLogData(ctx)

	renderCtx := statement.Assemble(data, s.currencySymbol)

	markup, err := s.renderer.Render(templateName, renderCtx)
	if err != nil {
		return "", err
	}

	exportCtx, cancel := context.WithTimeout(ctx, s.renderTimeout)
	defer cancel()

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("exportMs")
	}
	pdf, err := s.exporter.Process(exportCtx, &actions.ExportStatement{Markup: markup})
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return "", err
	}

	path, err := s.store.Save(pdf)
	if err != nil {
		return "", err
	}
	defer func() {
		if removeErr := s.store.Remove(path); removeErr != nil {
			logrus.WithError(removeErr).Warn("StatementService.Generate.cleanup")
		}
	}()

	encoded, err := s.store.Encode(path)
	if err != nil {
		return "", err
	}

	if logData != nil {
		logData.AddData("artifactBytes", len(pdf))
	}

	return encoded, nil
}
