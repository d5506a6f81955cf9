package http

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// AssetHandler serves static downloadable assets such as the bulk
// import CSV template from a configured directory.
type AssetHandler struct {
	templateDir string
}

func NewAssetHandler(templateDir string) *AssetHandler {
	return &AssetHandler{templateDir: templateDir}
}

const importTemplateName = "recruitment_import_template.csv"

// DownloadImportTemplate streams the CSV template staff fill in for a
// bulk upload.
func (h *AssetHandler) DownloadImportTemplate(w http.ResponseWriter, r *http.Request) {
	path := filepath.Join(h.templateDir, importTemplateName)
	file, err := os.Open(path)
	if err != nil {
		http.Error(w, "Template not found", http.StatusNotFound)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+importTemplateName+`"`)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	io.Copy(w, file)
}
