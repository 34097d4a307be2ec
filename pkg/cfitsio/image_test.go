package cfitsio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestImageRoundTrip(t *testing.T) {
	axes := []int64{3, 2}

	cases := []struct {
		name   string
		bitpix int
		data   any
		empty  func() any
	}{
		{"uint8", Byte8, []uint8{1, 2, 3, 4, 5, 255}, func() any { return make([]uint8, 6) }},
		{"int16", Short16, []int16{-3, -2, -1, 1, 2, 3}, func() any { return make([]int16, 6) }},
		{"int32", Long32, []int32{-30, -20, -10, 10, 20, 30}, func() any { return make([]int32, 6) }},
		{"int64", Long64, []int64{-300, -200, -100, 100, 200, 300}, func() any { return make([]int64, 6) }},
		{"float32", Float32, []float32{0.5, 1.5, 2.5, 3.5, 4.5, 5.5}, func() any { return make([]float32, 6) }},
		{"float64", Float64, []float64{0.25, 1.25, 2.25, 3.25, 4.25, 5.25}, func() any { return make([]float64, 6) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := Create(tempName(t))
			require.NoError(t, err)
			defer f.Close()

			require.NoError(t, f.CreateImage(tc.bitpix, axes))
			require.NoError(t, f.WritePixels(1, tc.data))

			bitpix, err := f.ImageType()
			require.NoError(t, err)
			require.Equal(t, tc.bitpix, bitpix)

			dims, err := f.ImageDims()
			require.NoError(t, err)
			require.Equal(t, len(axes), dims)

			size, err := f.ImageSize()
			require.NoError(t, err)
			require.Equal(t, axes, size)

			out := tc.empty()
			require.NoError(t, f.ReadPixels(1, out))
			require.Equal(t, tc.data, out)
		})
	}
}

func TestImagePersistsAcrossReopen(t *testing.T) {
	name := tempName(t)
	data := []float64{1.5, 2.5, 3.5, 4.5}

	f, err := Create(name)
	require.NoError(t, err)
	require.NoError(t, f.CreateImage(Float64, []int64{4}))
	require.NoError(t, f.WritePixels(1, data))
	require.NoError(t, f.Close())

	f, err = Open(name, ReadOnly)
	require.NoError(t, err)
	defer f.Close()

	typ, err := f.HDUType()
	require.NoError(t, err)
	require.Equal(t, ImageHDU, typ)

	out := make([]float64, 4)
	require.NoError(t, f.ReadPixels(1, out))
	require.Equal(t, data, out)
}

func TestImageSizeHeaderOnlyPrimary(t *testing.T) {
	f := newTestFile(t)
	defer f.Close()

	dims, err := f.ImageDims()
	require.NoError(t, err)
	require.Zero(t, dims)

	size, err := f.ImageSize()
	require.NoError(t, err)
	require.Empty(t, size)
}

func TestPixelsUnknownSliceType(t *testing.T) {
	f := newTestFile(t)
	defer f.Close()

	require.ErrorIs(t, f.WritePixels(1, []complex128{1}), ErrUnknownType)
	require.ErrorIs(t, f.ReadPixels(1, "not a slice"), ErrUnknownType)
}
