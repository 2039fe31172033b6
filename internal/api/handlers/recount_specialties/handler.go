package recount_specialties

import (
	"net/http"

	"github.com/m04kA/SMC-StylistService/internal/api/handlers"
)

type Handler struct {
	useCase RecountSpecialtiesUseCase
	logger  Logger
}

func NewHandler(useCase RecountSpecialtiesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/specialties/recount
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("POST /specialties/recount - Failed to recount: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /specialties/recount - Checked %d specialties, corrected %d",
		result.Checked, len(result.Corrections))
	handlers.RespondJSON(w, http.StatusOK, result)
}
