package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmagallanes2/coldcallingassistant/internal/audio"
	"github.com/dmagallanes2/coldcallingassistant/internal/calllog"
	"github.com/dmagallanes2/coldcallingassistant/internal/export"
	"github.com/dmagallanes2/coldcallingassistant/internal/session"
	"github.com/dmagallanes2/coldcallingassistant/internal/stats"
	"github.com/dmagallanes2/coldcallingassistant/pkg/logger"
)

// Handlers groups HTTP handlers for dependency injection.
// Keep these thin: parse/validate input, call internal packages, return JSON.

type Handlers struct {
	Sessions *session.Manager
	Exporter *export.Exporter
	Store    *audio.DiskStore
	Loc      *time.Location

	// Clock stamps export filenames; overridable in tests.
	Clock func() time.Time
}

func (h Handlers) now() time.Time {
	if h.Clock != nil {
		return h.Clock()
	}
	return time.Now()
}

// --- Call log ---

type logCallRequest struct {
	Business string `json:"business"`
	Notes    string `json:"notes"`
	Result   string `json:"result"`
	Reason   string `json:"reason"`
}

// LogCall appends one call outcome to the session's log.
func (h Handlers) LogCall(c *gin.Context) {
	s := currentSession(c)
	if s == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session not resolved"})
		return
	}

	var req logCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	req.Business = strings.TrimSpace(req.Business)
	if req.Business == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "business name is required"})
		return
	}

	rec, err := s.Log.Append(req.Business, req.Notes, calllog.Result(req.Result), calllog.Reason(req.Reason))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// ListCalls returns the session's call log in insertion order.
func (h Handlers) ListCalls(c *gin.Context) {
	s := currentSession(c)
	if s == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session not resolved"})
		return
	}
	snap := s.Log.Snapshot()
	c.JSON(http.StatusOK, gin.H{"calls": snap, "total": len(snap)})
}

// CallStats computes the statistics summary over the current log.
func (h Handlers) CallStats(c *gin.Context) {
	s := currentSession(c)
	if s == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session not resolved"})
		return
	}

	summary, err := stats.Compute(s.Log.Snapshot(), h.Loc)
	if err != nil {
		logger.FromGin(c).Error("stats computation failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "statistics computation failed"})
		return
	}
	if summary == nil {
		c.JSON(http.StatusOK, gin.H{"empty": true})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ExportCalls renders the log into the requested format and returns it as a
// downloadable attachment.
func (h Handlers) ExportCalls(c *gin.Context) {
	s := currentSession(c)
	if s == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session not resolved"})
		return
	}

	format := export.Format(c.Query("format"))
	snap := s.Log.Snapshot()
	summary, err := stats.Compute(snap, h.Loc)
	if err != nil {
		logger.FromGin(c).Error("stats computation failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "statistics computation failed"})
		return
	}

	data, filename, err := h.Exporter.Render(format, snap, summary, h.now().In(h.Loc))
	if err != nil {
		if errors.Is(err, export.ErrUnsupportedFormat) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.FromGin(c).Error("export failed", "format", format, "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, format.ContentType(), data)
}

// --- Audio ---

// UploadAudio stores one clip and registers it under a label. The label
// defaults to the upload's filename without its extension.
func (h Handlers) UploadAudio(c *gin.Context) {
	s := currentSession(c)
	if s == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session not resolved"})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "audio file is required"})
		return
	}

	label := strings.TrimSpace(c.PostForm("label"))
	if label == "" {
		label = strings.TrimSuffix(fh.Filename, filepath.Ext(fh.Filename))
	}
	if label == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "clip label is required"})
		return
	}

	src, err := fh.Open()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "unreadable upload"})
		return
	}
	defer src.Close()

	storedName, size, err := h.Store.Save(fh.Filename, src)
	if err != nil {
		logger.FromGin(c).Error("clip save failed", "filename", fh.Filename, "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "could not store clip"})
		return
	}

	clip := audio.Clip{Label: label, Filename: fh.Filename, StoredName: storedName, Size: size}
	s.Audio.Register(clip)
	c.JSON(http.StatusCreated, clip)
}

// ListAudio returns the session's clips in display order.
func (h Handlers) ListAudio(c *gin.Context) {
	s := currentSession(c)
	if s == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session not resolved"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clips": s.Audio.List()})
}

// GetAudio streams a clip's bytes back for the host's media layer to play.
func (h Handlers) GetAudio(c *gin.Context) {
	s := currentSession(c)
	if s == nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session not resolved"})
		return
	}

	label := c.Param("label")
	clip, err := s.Audio.Get(label)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "clip not found"})
		return
	}

	rc, err := h.Store.Open(clip.StoredName)
	if err != nil {
		logger.FromGin(c).Error("clip open failed", "label", label, "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "could not read clip"})
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, clip.Size, "audio/mpeg", rc, map[string]string{
		"Content-Disposition": fmt.Sprintf("inline; filename=%q", clip.Filename),
	})
}
