package api

import (
	"context"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"time"
)

// Capturer hands out copies of rendered frames.
type Capturer interface {
	Capture(ctx context.Context) (image.Image, error)
}

type MediaResponseType string

const (
	JPEG MediaResponseType = "jpeg"
	PNG  MediaResponseType = "png"
)

const captureTimeout = 2 * time.Second

// @Summary	fetch the next rendered frame
// @Router		/api/frame [get]
// @Router		/api/frame/{format} [get]
// @Tags		media
// @Param		format	path	MediaResponseType	false	"The image type to return"
// @Success	200
// @Failure	400	{string}	string	"The requested image format is not supported"
// @Failure	503	{string}	string	"The render loop did not produce a frame in time"
// @Produce	png
func (a *Api) handleFrame(w http.ResponseWriter, req *http.Request) {
	format := MediaResponseType(req.PathValue("format"))
	switch format {
	case "":
		format = PNG
	case PNG, JPEG:
	default:
		http.Error(w, "Unsupported format", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(req.Context(), captureTimeout)
	defer cancel()
	img, err := a.ctl.Capture(ctx)
	if err != nil {
		http.Error(w, "No frame returned", http.StatusServiceUnavailable)
		return
	}

	switch format {
	case JPEG:
		w.Header().Set("Content-Type", "image/jpeg")
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 80})
		if err != nil {
			http.Error(w, "Could not jpeg encode this frame", http.StatusInternalServerError)
		}
	case PNG:
		w.Header().Set("Content-Type", "image/png")
		err = png.Encode(w, img)
		if err != nil {
			http.Error(w, "Could not png encode this frame", http.StatusInternalServerError)
		}
	}
}
