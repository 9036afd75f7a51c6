// Package album adds photo memories: it checks the upload, asks the
// assistant for a short story and places the memory first in the album.
package album

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hearth/internal/assistant"
	"hearth/internal/model"
)

// MaxImageBytes is the largest accepted upload.
const MaxImageBytes = 4 << 20

var (
	ErrImageTooLarge = errors.New("album: image is larger than 4MB")
	ErrMissingFields = errors.New("album: image, note, date and uploader are all required")
	ErrNotImage      = errors.New("album: file is not an image")
	ErrStale         = errors.New("album: view no longer active")
)

type Request struct {
	Image []byte
	// MimeType is sniffed from Image when empty.
	MimeType     string
	Prompt       string
	Date         string
	UploadedByID string
}

// Sink receives finished memories. *state.Container satisfies it.
type Sink interface {
	PrependMemory(ctx context.Context, memory model.MemoryItem) *model.AppData
}

type Album struct {
	svc    assistant.Service
	sink   Sink
	logger *zap.Logger
}

func New(svc assistant.Service, sink Sink, logger *zap.Logger) *Album {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Album{svc: svc, sink: sink, logger: logger.Named("album")}
}

// Validate checks req and returns its media type.
func Validate(req Request) (string, error) {
	if len(req.Image) > MaxImageBytes {
		return "", ErrImageTooLarge
	}
	if len(req.Image) == 0 || strings.TrimSpace(req.Prompt) == "" ||
		strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.UploadedByID) == "" {
		return "", ErrMissingFields
	}
	mimeType := strings.TrimSpace(req.MimeType)
	if mimeType == "" {
		mimeType = http.DetectContentType(req.Image)
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return "", fmt.Errorf("%w: %s", ErrNotImage, mimeType)
	}
	return mimeType, nil
}

// Add builds the memory and hands it to the sink. alive is checked after
// the story arrives; a nil alive is always true.
func (a *Album) Add(ctx context.Context, req Request, alive func() bool) (model.MemoryItem, error) {
	mimeType, err := Validate(req)
	if err != nil {
		return model.MemoryItem{}, err
	}

	prompt := strings.TrimSpace(req.Prompt)
	story := a.svc.MemoryStory(ctx, req.Image, mimeType, prompt)

	if alive != nil && !alive() {
		a.logger.Info("dropping memory for inactive view", zap.String("prompt", prompt))
		return model.MemoryItem{}, ErrStale
	}

	memory := model.MemoryItem{
		ID:           "mem-" + uuid.NewString(),
		ImageURL:     DataURL(mimeType, req.Image),
		Prompt:       prompt,
		Story:        story,
		Date:         strings.TrimSpace(req.Date),
		UploadedByID: req.UploadedByID,
	}
	a.sink.PrependMemory(ctx, memory)
	return memory, nil
}

func DataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
