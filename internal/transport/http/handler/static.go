package handler

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AhmedGamal2004/My-Personal-final/internal/transport/http/response"
)

// StaticHandler serves the frontend bundle and falls back to index.html for
// client-side routes. Unknown API paths get a JSON 404.
type StaticHandler struct {
	dir string
}

func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{dir: dir}
}

func (h *StaticHandler) Serve(c *gin.Context) {
	reqPath := c.Request.URL.Path
	if reqPath == "/api" || strings.HasPrefix(reqPath, "/api/") {
		response.Error(c, http.StatusNotFound, response.MsgNotFound)
		return
	}
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		response.Error(c, http.StatusNotFound, response.MsgNotFound)
		return
	}

	// path.Clean on a rooted path drops any ".." that would escape dir
	rel := filepath.FromSlash(path.Clean("/" + reqPath))
	if file := filepath.Join(h.dir, rel); isFile(file) {
		c.File(file)
		return
	}

	index := filepath.Join(h.dir, "index.html")
	if !isFile(index) {
		response.Error(c, http.StatusNotFound, response.MsgNotFound)
		return
	}
	c.File(index)
}

func isFile(name string) bool {
	info, err := os.Stat(name)
	return err == nil && !info.IsDir()
}
