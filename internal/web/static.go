// Package web serves the front-end assets from a local directory.
package web

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var mimeTypes = map[string]string{
	".html": "text/html",
	".css":  "text/css",
	".js":   "application/javascript",
	".json": "application/json",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
}

const notFoundPage = `<html>
    <head><title>404 - Not Found</title></head>
    <body>
        <h1>404 - File Not Found</h1>
        <p>The requested file was not found.</p>
        <a href="/">&larr; Back to Network Navigator</a>
    </body>
</html>`

func ContentType(name string) string {
	if ct, ok := mimeTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// Handler serves files under root. "/" maps to index.html; request paths are
// cleaned so they cannot leave root.
func Handler(root string, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.String(http.StatusMethodNotAllowed, "Method Not Allowed")
			return
		}

		rel := path.Clean("/" + c.Request.URL.Path)
		if rel == "/" {
			rel = "/index.html"
		}
		file := filepath.Join(root, filepath.FromSlash(rel))

		content, err := os.ReadFile(file)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) || isDirErr(file) {
				c.Data(http.StatusNotFound, "text/html", []byte(notFoundPage))
				return
			}
			logger.Error("failed to read static file", zap.String("path", rel), zap.Error(err))
			c.String(http.StatusInternalServerError, "Server Error: %v", err)
			return
		}

		c.Data(http.StatusOK, ContentType(file), content)
	}
}

func isDirErr(file string) bool {
	info, err := os.Stat(file)
	return err == nil && info.IsDir()
}
