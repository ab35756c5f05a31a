package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"net/mail"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// Field-level validation errors, keyed by input name. A request touching
// storage or the database must pass validation first so a rejected request
// has no side effects.
type ValidationErrors map[string][]string

func (v ValidationErrors) Add(field, message string) {
	v[field] = append(v[field], message)
}

func (v ValidationErrors) Empty() bool {
	return len(v) == 0
}

func respondValidation(c *gin.Context, errs ValidationErrors) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"message": "The given data was invalid.",
		"errors":  errs,
	})
}

const (
	maxAvatarBytes = 20 << 20
	maxPosterBytes = 10 << 20
	maxVideoBytes  = 604800 << 10
)

var (
	videoExts  = []string{".mp4"}
	posterExts = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
)

func requireText(errs ValidationErrors, field, value string, max int) {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, fmt.Sprintf("The %s field is required.", field))
		return
	}
	limitText(errs, field, value, max)
}

func limitText(errs ValidationErrors, field, value string, max int) {
	if len(value) > max {
		errs.Add(field, fmt.Sprintf("The %s may not be greater than %d characters.", field, max))
	}
}

func validateEmail(errs ValidationErrors, value string) {
	if strings.TrimSpace(value) == "" {
		errs.Add("email", "The email field is required.")
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		errs.Add("email", "The email must be a valid email address.")
	}
}

func validateFile(errs ValidationErrors, field string, fh *multipart.FileHeader, exts []string, maxBytes int64) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	ok := false
	for _, allowed := range exts {
		if ext == allowed {
			ok = true
			break
		}
	}
	if !ok {
		errs.Add(field, fmt.Sprintf("The %s must be a file of type: %s.",
			field, strings.Join(trimDots(exts), ", ")))
	}
	if fh.Size > maxBytes {
		errs.Add(field, fmt.Sprintf("The %s may not be greater than %d kilobytes.", field, maxBytes>>10))
	}
}

func trimDots(exts []string) []string {
	out := make([]string, len(exts))
	for i, e := range exts {
		out[i] = strings.TrimPrefix(e, ".")
	}
	return out
}
