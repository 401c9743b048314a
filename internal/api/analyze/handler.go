package analyze

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/dongycare/checker-backend/internal/entity"
	"github.com/dongycare/checker-backend/internal/pkg/formatter"
	"github.com/dongycare/checker-backend/internal/pkg/logger"
	"github.com/dongycare/checker-backend/internal/pkg/response"
	"github.com/dongycare/checker-backend/internal/pkg/validator"
)

type Handler struct {
	usecase    AnalyzeUsecase
	validator  *validator.Validator
	formatters *formatter.Factory
	catalog    []entity.SymptomGroup
}

func NewHandler(
	usecase AnalyzeUsecase,
	validator *validator.Validator,
	formatters *formatter.Factory,
	catalog []entity.SymptomGroup,
) *Handler {
	return &Handler{
		usecase:    usecase,
		validator:  validator,
		formatters: formatters,
		catalog:    catalog,
	}
}

// Analyze handles POST /api/analyze - relay a prompt to the AI provider.
// The provider's JSON document is returned verbatim; internal failures
// are logged in full but the client only sees a generic message.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Analyze")

	var req entity.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validator.ValidateAnalyzeRequest(&req); err != nil {
		ctxzap.Error(ctx, "failed to validate request", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	raw, err := h.usecase.Analyze(ctx, &req)
	if err != nil {
		if errors.Is(err, entity.ErrMissingCredential) {
			ctxzap.Error(ctx, "gemini api key is not configured")
			response.Error(w, http.StatusInternalServerError, "API Key not configured.")
			return
		}

		ctxzap.Error(ctx, "analysis failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "Internal Server Error during AI analysis.")
		return
	}

	response.Raw(w, http.StatusOK, raw)
}

// Report handles POST /api/report - export a previously obtained
// analysis as a downloadable document. Stateless: the client posts the
// result back, nothing is stored server-side.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Report")

	var resp entity.AnalysisResponse
	if err := json.NewDecoder(r.Body).Decode(&resp); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	format := entity.ReportFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = entity.FormatMarkdown
	}

	f, err := h.formatters.Create(format)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := f.Format(formatter.BuildReport(&resp))
	if err != nil {
		ctxzap.Error(ctx, "failed to format report", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "failed to generate report")
		return
	}

	w.Header().Set("Content-Type", f.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="phan-tich`+f.FileExtension()+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// SymptomGroups handles GET /api/symptom-groups - the static checklist
// catalog for web clients.
func (h *Handler) SymptomGroups(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.catalog)
}
