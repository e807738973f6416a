package controllers

import (
	"net/http"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type ImportController struct {
	Importer *services.ImportService
}

func NewImportController(importer *services.ImportService) *ImportController {
	return &ImportController{Importer: importer}
}

// POST /admin/import
// {"source":"dir","path":"./data"} or {"source":"s3","bucket":"b","prefix":"catalog/"}
func (ic *ImportController) ImportCatalog(c *gin.Context) {
	var req struct {
		Source string `json:"source" binding:"required,oneof=dir s3"`
		Path   string `json:"path"`
		Bucket string `json:"bucket"`
		Prefix string `json:"prefix"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch req.Source {
	case "dir":
		if req.Path == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "path is required for dir imports"})
			return
		}
		if err := ic.Importer.ImportDir(req.Path); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	case "s3":
		fetcher, err := utils.NewS3Fetcher(req.Bucket)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if err := ic.Importer.ImportFrom(fetcher, req.Prefix); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "catalog imported"})
}
