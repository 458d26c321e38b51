package render

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"sync"

	"github.com/park285/checkers/internal/checkers"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

//go:embed assets/pieces/*.svg
var pieceFiles embed.FS

const (
	DefaultSquareSize = 64
	boardMargin       = 24
)

// RenderOptions controls optional overlays. Zero SquareSize means DefaultSquareSize.
type RenderOptions struct {
	SquareSize int
	Selected   *checkers.Coord
	Targets    []checkers.Coord
	LastMove   *[2]checkers.Coord
}

type BoardRenderer interface {
	RenderPNG(ctx context.Context, snap checkers.Snapshot, opts RenderOptions) ([]byte, error)
}

type pieceKey struct {
	color checkers.Color
	king  bool
	size  int
}

// PNGRenderer rasterises the embedded SVG piece sprites; sprites are cached per size.
type PNGRenderer struct {
	mu    sync.RWMutex
	cache map[pieceKey]image.Image
}

func NewPNGRenderer() *PNGRenderer {
	return &PNGRenderer{cache: make(map[pieceKey]image.Image)}
}

var (
	lightSquare     = color.RGBA{233, 207, 163, 255}
	darkSquare      = color.RGBA{187, 136, 96, 255}
	backgroundColor = color.RGBA{28, 31, 46, 255}
	coordinateColor = color.RGBA{204, 210, 236, 255}
	selectedFill    = color.NRGBA{R: 255, G: 228, B: 120, A: 150}
	targetFill      = color.NRGBA{R: 120, G: 200, B: 255, A: 120}
	lastMoveFill    = color.NRGBA{R: 182, G: 184, B: 190, A: 110}
)

func (r *PNGRenderer) RenderPNG(ctx context.Context, snap checkers.Snapshot, opts RenderOptions) ([]byte, error) {
	size := opts.SquareSize
	if size <= 0 {
		size = DefaultSquareSize
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	total := boardMargin*2 + size*checkers.Size
	img := image.NewRGBA(image.Rect(0, 0, total, total))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)
	origin := image.Pt(boardMargin, boardMargin)

	for x := 0; x < checkers.Size; x++ {
		for y := 0; y < checkers.Size; y++ {
			clr := darkSquare
			if snap.At(x, y).SquareColor == checkers.Light {
				clr = lightSquare
			}
			draw.Draw(img, squareRect(x, y, size, origin), image.NewUniform(clr), image.Point{}, draw.Src)
		}
	}

	if lm := opts.LastMove; lm != nil {
		overlay(img, lm[0], size, origin, lastMoveFill)
		overlay(img, lm[1], size, origin, lastMoveFill)
	}
	if opts.Selected != nil {
		overlay(img, *opts.Selected, size, origin, selectedFill)
	}
	for _, c := range opts.Targets {
		overlay(img, c, size, origin, targetFill)
	}

	for x := 0; x < checkers.Size; x++ {
		for y := 0; y < checkers.Size; y++ {
			v := snap.At(x, y)
			if !v.Occupied {
				continue
			}
			sprite, err := r.piece(pieceKey{color: v.Piece, king: v.King, size: size})
			if err != nil {
				return nil, err
			}
			draw.Draw(img, squareRect(x, y, size, origin), sprite, image.Point{}, draw.Over)
		}
	}
	drawCoordinates(img, size, origin)

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func squareRect(x, y, size int, origin image.Point) image.Rectangle {
	tl := origin.Add(image.Pt(x*size, y*size))
	return image.Rectangle{Min: tl, Max: tl.Add(image.Pt(size, size))}
}

func overlay(img *image.RGBA, c checkers.Coord, size int, origin image.Point, clr color.Color) {
	if !c.InBounds() {
		return
	}
	draw.Draw(img, squareRect(c.X, c.Y, size, origin), image.NewUniform(clr), image.Point{}, draw.Over)
}

func drawCoordinates(img *image.RGBA, size int, origin image.Point) {
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: img, Src: image.NewUniform(coordinateColor), Face: face}
	ascent := face.Metrics().Ascent.Round()
	for i := 0; i < checkers.Size; i++ {
		file := string(rune('a' + i))
		w := d.MeasureString(file).Round()
		cx := origin.X + i*size + (size-w)/2
		d.Dot = fixed.P(cx, origin.Y-(boardMargin-ascent)/2)
		d.DrawString(file)
		d.Dot = fixed.P(cx, origin.Y+size*checkers.Size+(boardMargin+ascent)/2)
		d.DrawString(file)

		rank := fmt.Sprintf("%d", checkers.Size-i)
		w = d.MeasureString(rank).Round()
		cy := origin.Y + i*size + (size+ascent)/2
		d.Dot = fixed.P((boardMargin-w)/2, cy)
		d.DrawString(rank)
		d.Dot = fixed.P(origin.X+size*checkers.Size+(boardMargin-w)/2, cy)
		d.DrawString(rank)
	}
}

func (r *PNGRenderer) piece(key pieceKey) (image.Image, error) {
	r.mu.RLock()
	if img, ok := r.cache[key]; ok {
		r.mu.RUnlock()
		return img, nil
	}
	r.mu.RUnlock()

	name := pieceAssetName(key.color, key.king)
	data, err := pieceFiles.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read piece asset %s: %w", name, err)
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse piece svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(key.size), float64(key.size))

	img := image.NewRGBA(image.Rect(0, 0, key.size, key.size))
	scanner := rasterx.NewScannerGV(key.size, key.size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(key.size, key.size, scanner), 1.0)

	r.mu.Lock()
	r.cache[key] = img
	r.mu.Unlock()
	return img, nil
}

func pieceAssetName(c checkers.Color, king bool) string {
	name := c.String()
	if king {
		name += "_king"
	}
	return "assets/pieces/" + name + ".svg"
}
