package export

import (
	"net/http"

	sheet "Wiresheet/internal/calc/sheet"
)

const contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	Company string
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	req, answers, err := sheet.DecodeRequest(r)
	if err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	sh, err := sheet.Execute(r.Context(), answers, req)
	if err != nil {
		sheet.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", "attachment; filename=\"process-sheet.xlsx\"")
	if err := Render(w, sheet.NewHeader(h.Company), sh); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}
