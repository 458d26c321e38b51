package render

import (
	"bytes"
	"context"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/park285/checkers/internal/checkers"
	"github.com/stretchr/testify/require"
)

func TestTextInitialBoard(t *testing.T) {
	out := Text(checkers.NewMatch().Snapshot())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 9)
	require.Equal(t, "   a   b   c   d   e   f   g   h", lines[0])
	require.Equal(t, "8  d   .   d   .   d   .   d   .", lines[1])
	require.Equal(t, "7  .   d   .   d   .   d   .   d", lines[2])
	require.Equal(t, "5  .   .   .   .   .   .   .   .", lines[4])
	require.Equal(t, "1  .   l   .   l   .   l   .   l", lines[8])
}

func TestGlyph(t *testing.T) {
	require.Equal(t, '.', Glyph(checkers.SquareView{}))
	require.Equal(t, 'D', Glyph(checkers.SquareView{Occupied: true, Piece: checkers.Dark, King: true}))
	require.Equal(t, 'L', Glyph(checkers.SquareView{Occupied: true, Piece: checkers.Light, King: true}))
	require.Equal(t, 'l', Glyph(checkers.SquareView{Occupied: true, Piece: checkers.Light}))
}

func TestRenderPNG(t *testing.T) {
	r := NewPNGRenderer()
	snap := checkers.NewMatch().Snapshot()
	raw, err := r.RenderPNG(context.Background(), snap, RenderOptions{SquareSize: 32})
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	want := boardMargin*2 + 32*checkers.Size
	require.Equal(t, want, img.Bounds().Dx())
	require.Equal(t, want, img.Bounds().Dy())

	// (0,4) is an empty light square in the opening position
	px := color.RGBAModel.Convert(img.At(boardMargin+16, boardMargin+4*32+16)).(color.RGBA)
	require.Equal(t, lightSquare, px)
	// (1,4) is an empty dark square
	px = color.RGBAModel.Convert(img.At(boardMargin+32+16, boardMargin+4*32+16)).(color.RGBA)
	require.Equal(t, darkSquare, px)
	// (0,0) holds a dark piece
	px = color.RGBAModel.Convert(img.At(boardMargin+16, boardMargin+16)).(color.RGBA)
	require.NotEqual(t, lightSquare, px)

	sel := checkers.Coord{X: 1, Y: 5}
	raw2, err := r.RenderPNG(context.Background(), snap, RenderOptions{
		SquareSize: 32,
		Selected:   &sel,
		Targets:    []checkers.Coord{{X: 0, Y: 4}, {X: 2, Y: 4}},
	})
	require.NoError(t, err)
	require.NotEqual(t, raw, raw2)
}

func TestRenderPNGCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewPNGRenderer().RenderPNG(ctx, checkers.NewMatch().Snapshot(), RenderOptions{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestPieceAssetsLoad(t *testing.T) {
	r := NewPNGRenderer()
	for _, c := range []checkers.Color{checkers.Light, checkers.Dark} {
		for _, king := range []bool{false, true} {
			img, err := r.piece(pieceKey{color: c, king: king, size: 24})
			require.NoError(t, err, pieceAssetName(c, king))
			require.Equal(t, 24, img.Bounds().Dx())
		}
	}
	require.Len(t, r.cache, 4)
}
