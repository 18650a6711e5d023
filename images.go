package pubtheme

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"

	"github.com/eringen/pubtheme/views"
)

const jpegQuality = 80

// parseSizeParam parses a size path segment such as "w600". Only widths the
// theme puts in a srcset are accepted.
func parseSizeParam(size string) (int, bool) {
	rest, ok := strings.CutPrefix(size, "w")
	if !ok {
		return 0, false
	}
	w, err := strconv.Atoi(rest)
	if err != nil || !slices.Contains(views.FeatureImageWidths, w) {
		return 0, false
	}
	return w, true
}

// resizeImage decodes an image from src and scales it down to width,
// keeping the aspect ratio. PNG sources stay PNG; everything else is encoded
// as JPEG. Images already narrower than width are re-encoded unscaled.
func resizeImage(src io.Reader, width int) ([]byte, string, error) {
	img, format, err := image.Decode(src)
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > width {
		newH := h * width / w
		dst := image.NewRGBA(image.Rect(0, 0, width, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if format == "png" {
		if err := png.Encode(&buf, img); err != nil {
			return nil, "", fmt.Errorf("encode png: %w", err)
		}
		return buf.Bytes(), "image/png", nil
	}
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, "", fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), "image/jpeg", nil
}

// imagePath maps a request path below /content/images/ onto ImagesDir
// without letting it escape the directory.
func (p *Preview) imagePath(rel string) string {
	clean := path.Clean("/" + rel)
	return filepath.Join(p.Config.ImagesDir, filepath.FromSlash(clean))
}

// handleSizedImage serves /content/images/size/w{width}/{path}, the URLs a
// feature image srcset points at.
func (p *Preview) handleSizedImage(c echo.Context) error {
	width, ok := parseSizeParam(c.Param("size"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	f, err := os.Open(p.imagePath(c.Param("*")))
	if err != nil {
		if os.IsNotExist(err) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}
	defer f.Close()

	data, contentType, err := resizeImage(f, width)
	if err != nil {
		return c.String(http.StatusUnprocessableEntity, "Invalid image: "+err.Error())
	}
	return c.Blob(http.StatusOK, contentType, data)
}

func (p *Preview) handleImage(c echo.Context) error {
	return c.File(p.imagePath(c.Param("*")))
}
