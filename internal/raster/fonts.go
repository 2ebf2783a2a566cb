package raster

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts 持有常规/中等/粗体三种字重；font.Face 非并发安全，按调用方各自创建。
type Fonts struct {
	regular *truetype.Font
	medium  *truetype.Font
	bold    *truetype.Font
}

// LoadFonts 加载内置 Go 字体；dir 非空时用其中的 *Regular.ttf / *Medium.ttf / *Bold.ttf 覆盖。
func LoadFonts(dir string) (*Fonts, error) {
	f := &Fonts{}
	var err error
	if f.regular, err = truetype.Parse(goregular.TTF); err != nil {
		return nil, fmt.Errorf("parse embedded regular font: %w", err)
	}
	if f.medium, err = truetype.Parse(gomedium.TTF); err != nil {
		return nil, fmt.Errorf("parse embedded medium font: %w", err)
	}
	if f.bold, err = truetype.Parse(gobold.TTF); err != nil {
		return nil, fmt.Errorf("parse embedded bold font: %w", err)
	}
	if dir == "" {
		return f, nil
	}

	overrides := map[string]**truetype.Font{
		"regular": &f.regular,
		"medium":  &f.medium,
		"bold":    &f.bold,
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read font dir %s: %w", dir, err)
	}
	for _, entry := range entries {
		name := strings.ToLower(entry.Name())
		if entry.IsDir() || filepath.Ext(name) != ".ttf" {
			continue
		}
		for suffix, target := range overrides {
			if !strings.HasSuffix(strings.TrimSuffix(name, ".ttf"), suffix) {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
			if err != nil {
				return nil, fmt.Errorf("read font %s: %w", entry.Name(), err)
			}
			parsed, err := truetype.Parse(data)
			if err != nil {
				return nil, fmt.Errorf("parse font %s: %w", entry.Name(), err)
			}
			*target = parsed
		}
	}
	return f, nil
}

func (f *Fonts) forWeight(weight int) *truetype.Font {
	switch {
	case weight >= 700:
		return f.bold
	case weight >= 500:
		return f.medium
	default:
		return f.regular
	}
}

// NewFace 以像素为单位创建字体（DPI 72 时 1pt = 1px）。
func (f *Fonts) NewFace(size float64, weight int) font.Face {
	return truetype.NewFace(f.forWeight(weight), &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

type faceKey struct {
	size   float64
	weight int
}

// faceCache 在单个 goroutine 内复用 Face。
type faceCache struct {
	fonts *Fonts
	faces map[faceKey]font.Face
}

func newFaceCache(fonts *Fonts) *faceCache {
	return &faceCache{fonts: fonts, faces: make(map[faceKey]font.Face)}
}

func (c *faceCache) get(size float64, weight int) font.Face {
	key := faceKey{size: size, weight: weight}
	if face, ok := c.faces[key]; ok {
		return face
	}
	face := c.fonts.NewFace(size, weight)
	c.faces[key] = face
	return face
}

func (c *faceCache) close() {
	for _, face := range c.faces {
		_ = face.Close()
	}
}

// GlyphMeasurer 使用与栅格化相同的字体度量文本宽度，实现 render.TextMeasurer。
type GlyphMeasurer struct {
	mu    sync.Mutex
	cache *faceCache
}

// NewGlyphMeasurer 基于 fonts 创建测量器。
func NewGlyphMeasurer(fonts *Fonts) *GlyphMeasurer {
	return &GlyphMeasurer{cache: newFaceCache(fonts)}
}

// Measure 返回文本在 size 像素下的前进宽度，向上取整。
func (m *GlyphMeasurer) Measure(text string, size float64, weight int) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	advance := font.MeasureString(m.cache.get(size, weight), text)
	return float64((advance + 63) >> 6)
}
