package api

import (
	"bytes"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/biovital365/mandala-api/internal/api/shared"
	"github.com/biovital365/mandala-api/internal/domain"
	"github.com/biovital365/mandala-api/internal/domain/interpretation"
	"github.com/biovital365/mandala-api/internal/domain/numerology"
	"github.com/biovital365/mandala-api/internal/platform/logger"
	"github.com/biovital365/mandala-api/internal/platform/metrics"
	"github.com/biovital365/mandala-api/internal/redact"
	"github.com/biovital365/mandala-api/internal/report"
	"github.com/biovital365/mandala-api/internal/service"
)

// ReportRenderer writes a reading as a downloadable document.
type ReportRenderer interface {
	Render(w io.Writer, reading *interpretation.Reading) error
}

// ReadingHandler serves readings, pillar lookups and saved calculations.
type ReadingHandler struct {
	readingService service.ReadingService
	renderer       ReportRenderer
	metrics        *metrics.Metrics
	logger         *slog.Logger
}

// NewReadingHandler creates a ReadingHandler. m may be nil.
func NewReadingHandler(
	readingService service.ReadingService,
	renderer ReportRenderer,
	m *metrics.Metrics,
	logger *slog.Logger,
) *ReadingHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ReadingHandler")
	}
	return &ReadingHandler{
		readingService: readingService,
		renderer:       renderer,
		metrics:        m,
		logger:         logger.With(slog.String("component", "reading_handler")),
	}
}

// decodeReadingRequest reads and validates the onboarding payload.
func decodeReadingRequest(w http.ResponseWriter, r *http.Request) (string, numerology.BirthDate, bool) {
	var req ReadingRequest
	if !decodeAndValidate(w, r, &req) {
		return "", numerology.BirthDate{}, false
	}
	dob, err := req.ParsedBirthDate()
	if err != nil {
		HandleAPIError(w, r, err, "")
		return "", numerology.BirthDate{}, false
	}
	return req.Name, dob, true
}

// Preview handles POST /api/readings. Nothing is saved.
func (h *ReadingHandler) Preview(w http.ResponseWriter, r *http.Request) {
	name, dob, ok := decodeReadingRequest(w, r)
	if !ok {
		return
	}

	reading, err := h.readingService.Preview(r.Context(), name, dob)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to compute reading")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, reading)
}

// InterpretPillar handles GET /api/pillars/{pillar}/{number}.
func (h *ReadingHandler) InterpretPillar(w http.ResponseWriter, r *http.Request) {
	pillar, err := numerology.ParsePillar(chi.URLParam(r, "pillar"))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	n, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		HandleAPIError(w, r, domain.NewValidationError("number", "must be an integer", domain.ErrValidation), "")
		return
	}

	interp, err := h.readingService.InterpretPillar(r.Context(), pillar, n)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to interpret pillar")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, interp)
}

// CreateCalculation handles POST /api/calculations.
func (h *ReadingHandler) CreateCalculation(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	name, dob, ok := decodeReadingRequest(w, r)
	if !ok {
		return
	}

	calc, reading, err := h.readingService.Record(r.Context(), userID, name, dob)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to save calculation")
		return
	}

	w.Header().Set("Location", "/api/calculations/"+calc.ID.String())
	shared.RespondWithJSON(w, r, http.StatusCreated, CalculationReadingResponse{
		Calculation: calculationToResponse(calc),
		Reading:     reading,
	})
}

// ListCalculations handles GET /api/calculations?limit=&offset=.
func (h *ReadingHandler) ListCalculations(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	limit, offset, err := parsePagination(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	calcs, err := h.readingService.ListCalculations(r.Context(), userID, limit, offset)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list calculations")
		return
	}

	resp := CalculationListResponse{
		Calculations: make([]CalculationResponse, 0, len(calcs)),
		Limit:        limit,
		Offset:       offset,
	}
	for _, c := range calcs {
		resp.Calculations = append(resp.Calculations, calculationToResponse(c))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// loadCalculation resolves the {id} path parameter to a calculation owned
// by the caller, writing the error response when it cannot.
func (h *ReadingHandler) loadCalculation(w http.ResponseWriter, r *http.Request) (*domain.Calculation, bool) {
	userID, calcID, ok := handleUserIDAndPathUUID(w, r, "id")
	if !ok {
		return nil, false
	}
	calc, err := h.readingService.GetCalculation(r.Context(), userID, calcID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to retrieve calculation")
		return nil, false
	}
	return calc, true
}

// GetCalculation handles GET /api/calculations/{id}.
func (h *ReadingHandler) GetCalculation(w http.ResponseWriter, r *http.Request) {
	calc, ok := h.loadCalculation(w, r)
	if !ok {
		return
	}

	reading, err := h.readingService.BuildReading(r.Context(), calc.Subject, calc.Map)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to interpret calculation")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, CalculationReadingResponse{
		Calculation: calculationToResponse(calc),
		Reading:     reading,
	})
}

// GetCalculationPillar handles GET /api/calculations/{id}/pillars/{pillar}.
func (h *ReadingHandler) GetCalculationPillar(w http.ResponseWriter, r *http.Request) {
	calc, ok := h.loadCalculation(w, r)
	if !ok {
		return
	}
	pillar, err := numerology.ParsePillar(chi.URLParam(r, "pillar"))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	pr, err := h.readingService.ExplainPillar(r.Context(), calc, pillar)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to explain pillar")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, pr)
}

// DownloadReport handles GET /api/calculations/{id}/report.pdf.
func (h *ReadingHandler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	calc, ok := h.loadCalculation(w, r)
	if !ok {
		return
	}
	reading, err := h.readingService.BuildReading(r.Context(), calc.Subject, calc.Map)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to interpret calculation")
		return
	}

	// Rendered in full before the status is written so a failure can
	// still be reported as JSON.
	var buf bytes.Buffer
	err = h.renderer.Render(&buf, reading)
	h.metrics.IncReportRendered(err)
	if err != nil {
		log.Error("failed to render report",
			slog.String("error", redact.Error(err)),
			slog.String("calculation_id", calc.ID.String()))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to render report")
		return
	}

	w.Header().Set("Content-Type", report.ContentType)
	w.Header().Set("Content-Disposition",
		mime.FormatMediaType("attachment", map[string]string{"filename": report.Filename(calc.Subject.FullName)}))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Warn("failed to write report", slog.String("error", err.Error()))
	}
}
