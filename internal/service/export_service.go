package service

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/edu-admin-console/pkg/errors"
	"github.com/noah-isme/edu-admin-console/pkg/export"
)

// Export formats.
const (
	ExportCSV = "csv"
	ExportPDF = "pdf"
)

var agendaHeaders = []string{"Date", "Day", "Time", "Course", "Instructor", "Mode", "Link", "Status"}

// ExportFile is a rendered download.
type ExportFile struct {
	Name        string
	ContentType string
	Body        []byte
}

type agendaSource interface {
	Agenda() Agenda
}

// ExportService renders the displayed calendar range as a downloadable agenda.
type ExportService struct {
	logger *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{logger: logger}
}

// Calendar renders the agenda of src in the requested format.
func (s *ExportService) Calendar(src agendaSource, format string) (*ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = ExportCSV
	}
	agenda := src.Agenda()
	dataset := agendaDataset(agenda)
	name := fmt.Sprintf("classes_%s_%s.%s", agenda.From, agenda.To, format)

	var (
		body        []byte
		contentType string
		err         error
	)
	switch format {
	case ExportCSV:
		body, err = export.RenderCSV(dataset)
		contentType = "text/csv"
	case ExportPDF:
		body, err = export.RenderPDF(dataset)
		contentType = "application/pdf"
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
	if err != nil {
		s.logger.Error("render agenda failed", zap.String("format", format), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	return &ExportFile{Name: name, ContentType: contentType, Body: body}, nil
}

func agendaDataset(agenda Agenda) export.Dataset {
	dataset := export.Dataset{
		Title:    "Live Classes: " + agenda.Title,
		Subtitle: fmt.Sprintf("%s to %s", agenda.From.Format("Jan 2, 2006"), agenda.To.Format("Jan 2, 2006")),
		Headers:  agendaHeaders,
		Empty:    "No classes scheduled",
	}
	for _, session := range agenda.Sessions {
		instructor := ""
		if session.Instructor != nil {
			instructor = *session.Instructor
		}
		status := "Scheduled"
		if session.IsCancelled {
			status = "Cancelled"
		}
		dataset.AddRow(
			session.Date.String(),
			session.Date.Weekday().String(),
			session.Time,
			session.CourseTitle(),
			instructor,
			string(session.DisplayMode()),
			session.Link,
			status,
		)
	}
	return dataset
}
