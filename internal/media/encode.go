package media

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

const (
	defaultSVGSize = 256
	maxSVGSize     = 512
)

// ErrNotImage 表示下载内容不是可识别的图片。
var ErrNotImage = errors.New("payload is not an image")

// Image 是可直接嵌入 SVG <image href> 的 data URI。
type Image struct {
	DataURI        string
	MediaType      string
	ConversionTime time.Duration
}

// rasterSafe 列出栅格器可以直接解码的格式。
var rasterSafe = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
}

// Encode 根据字节内容识别格式并生成 data URI。wantsRaster 为 true 时，
// SVG 与 WebP/BMP/TIFF 会被转成 PNG。
func Encode(data []byte, wantsRaster bool) (Image, error) {
	if len(data) == 0 {
		return Image{}, ErrNotImage
	}
	mediaType := sniff(data)
	if mediaType == "" {
		return Image{}, fmt.Errorf("%w: detected %s", ErrNotImage, mimetype.Detect(data).String())
	}

	if !wantsRaster || rasterSafe[mediaType] {
		return Image{DataURI: dataURI(mediaType, data), MediaType: mediaType}, nil
	}

	start := time.Now()
	var (
		img image.Image
		err error
	)
	switch mediaType {
	case "image/svg+xml":
		img, err = rasterizeSVG(data)
	case "image/webp":
		img, err = webp.Decode(bytes.NewReader(data))
	case "image/bmp":
		img, err = bmp.Decode(bytes.NewReader(data))
	case "image/tiff":
		img, err = tiff.Decode(bytes.NewReader(data))
	default:
		err = fmt.Errorf("%w: unsupported %s", ErrNotImage, mediaType)
	}
	if err != nil {
		return Image{}, fmt.Errorf("decode %s: %w", mediaType, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Image{}, fmt.Errorf("encode png: %w", err)
	}
	return Image{
		DataURI:        dataURI("image/png", buf.Bytes()),
		MediaType:      "image/png",
		ConversionTime: time.Since(start),
	}, nil
}

func sniff(data []byte) string {
	mt := mimetype.Detect(data)
	for _, candidate := range []string{
		"image/png", "image/jpeg", "image/gif", "image/svg+xml",
		"image/webp", "image/bmp", "image/tiff",
	} {
		if mt.Is(candidate) {
			return candidate
		}
	}
	return ""
}

func dataURI(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// rasterizeSVG 按 viewBox 尺寸绘制 SVG，缺失时取 256，单边不超过 512。
func rasterizeSVG(data []byte) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.WarnErrorMode)
	if err != nil {
		return nil, err
	}
	w, h := icon.ViewBox.W, icon.ViewBox.H
	if w <= 0 || h <= 0 {
		w, h = defaultSVGSize, defaultSVGSize
	}
	if longest := math.Max(w, h); longest > maxSVGSize {
		w = w * maxSVGSize / longest
		h = h * maxSVGSize / longest
	}
	width, height := int(math.Ceil(w)), int(math.Ceil(h))
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	icon.SetTarget(0, 0, float64(width), float64(height))
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1)
	return rgba, nil
}
