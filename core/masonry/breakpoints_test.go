// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package masonry

import (
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumns(t *testing.T) {
	t.Parallel()

	responsive := MustParseBreakpoints("default:4,1200:3,700:2,500:1")

	tests := []struct {
		name  string
		bp    Breakpoints
		width int
		want  int
	}{
		{"between thresholds picks the smallest one above", responsive, 650, 2},
		{"wider than every threshold uses default", MustParseBreakpoints("default:4,1200:3"), 1500, 4},
		{"exactly on a threshold matches it", responsive, 700, 2},
		{"one pixel over a threshold moves up", responsive, 701, 3},
		{"narrowest", responsive, 320, 1},
		{"unknown width uses default", responsive, UnknownWidth, 4},
		{"negative width uses default", responsive, -10, 4},
		{"fixed ignores width", MustParseBreakpoints("3"), 200, 3},
		{"fixed with unknown width", MustParseBreakpoints("3"), UnknownWidth, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.bp.Columns(tt.width))
		})
	}
}

func TestColumnsIsPure(t *testing.T) {
	t.Parallel()

	bp := MustParseBreakpoints("default:5,900:3,400:1")

	for width := -1; width < 1500; width += 7 {
		first := bp.Columns(width)
		for range 3 {
			require.Equal(t, first, bp.Columns(width), "width %d", width)
		}

		require.GreaterOrEqual(t, first, 1)
	}
}

func TestParseBreakpoints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "fixed", input: "3", want: "3"},
		{name: "mapping is canonicalized", input: " 700:2, default:4 ,1200:3", want: "default:4,1200:3,700:2"},
		{name: "default only", input: "default:2", want: "default:2"},
		{name: "missing default", input: "1200:3", wantErr: ErrMissingDefault},
		{name: "zero fixed", input: "0", wantErr: ErrInvalidColumns},
		{name: "zero default", input: "default:0", wantErr: ErrInvalidColumns},
		{name: "zero threshold columns", input: "default:3,500:0", wantErr: ErrInvalidColumns},
		{name: "negative threshold", input: "default:3,-5:1", wantErr: ErrInvalidThreshold},
		{name: "empty", input: "  ", wantErr: ErrMalformedBreakpoints},
		{name: "garbage", input: "many", wantErr: ErrMalformedBreakpoints},
		{name: "bad key", input: "default:3,wide:1", wantErr: ErrMalformedBreakpoints},
		{name: "bad value", input: "default:x", wantErr: ErrMalformedBreakpoints},
		{name: "missing colon", input: "default:3,700", wantErr: ErrMalformedBreakpoints},
		{name: "duplicate key", input: "default:3,700:2,700:1", wantErr: ErrMalformedBreakpoints},
		{name: "duplicate threshold spelled differently", input: "default:4,700:2,0700:1", wantErr: ErrMalformedBreakpoints},
		{name: "duplicate default", input: "default:4,default:2", wantErr: ErrMalformedBreakpoints},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			bp, err := ParseBreakpoints(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, bp.IsZero())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, bp.String())
		})
	}
}

func TestFromMapRejectsEquivalentThresholds(t *testing.T) {
	t.Parallel()

	for _, raw := range []map[string]int{
		{"default": 4, "700": 2, "0700": 1},
		{"default": 4, "700": 2, " 700": 1},
	} {
		_, err := FromMap(raw)
		require.ErrorIs(t, err, ErrMalformedBreakpoints)
	}
}

// A configuration that parses must resolve the same way every time it is parsed.
func TestParseBreakpointsIsDeterministic(t *testing.T) {
	t.Parallel()

	want := MustParseBreakpoints("default:4,1200:3,700:2,500:1").Columns(650)

	for range 200 {
		bp, err := ParseBreakpoints("500:1, 700:2,default:4,1200:3")
		require.NoError(t, err)
		require.Equal(t, want, bp.Columns(650))
	}
}

func TestMaxColumns(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, MustParseBreakpoints("5").MaxColumns())
	assert.Equal(t, 4, MustParseBreakpoints("default:4,1200:3,700:2").MaxColumns())
	assert.Equal(t, 9, MustParseBreakpoints("default:2,700:9,500:1").MaxColumns())
}

func TestResponsiveCopiesThresholds(t *testing.T) {
	t.Parallel()

	thresholds := map[int]int{700: 2}

	bp, err := Responsive(4, thresholds)
	require.NoError(t, err)

	thresholds[700] = 9

	assert.Equal(t, 2, bp.Columns(600))
	assert.Equal(t, []int{700}, bp.Thresholds())
}

func TestZeroValue(t *testing.T) {
	t.Parallel()

	var bp Breakpoints

	assert.True(t, bp.IsZero())
	require.ErrorIs(t, bp.Validate(), ErrMalformedBreakpoints)
	assert.Empty(t, bp.String())
	assert.Nil(t, bp.ToMap())
}

func TestBreakpointsYAML(t *testing.T) {
	t.Parallel()

	type doc struct {
		Cols Breakpoints `yaml:"breakpointCols"`
	}

	t.Run("scalar", func(t *testing.T) {
		t.Parallel()

		var d doc
		require.NoError(t, yaml.Unmarshal([]byte("breakpointCols: 3\n"), &d))
		assert.True(t, d.Cols.IsFixed())
		assert.Equal(t, 3, d.Cols.Columns(100))
	})

	t.Run("mapping", func(t *testing.T) {
		t.Parallel()

		var d doc
		require.NoError(t, yaml.Unmarshal([]byte("breakpointCols:\n  default: 4\n  1200: 3\n  700: 2\n  500: 1\n"), &d))
		assert.Equal(t, "default:4,1200:3,700:2,500:1", d.Cols.String())
		assert.Equal(t, 2, d.Cols.Columns(650))
	})

	t.Run("mapping without default", func(t *testing.T) {
		t.Parallel()

		var d doc
		err := yaml.Unmarshal([]byte("breakpointCols:\n  1200: 3\n"), &d)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `no "default" entry`)
	})

	t.Run("mapping with equivalent thresholds", func(t *testing.T) {
		t.Parallel()

		var d doc
		err := yaml.Unmarshal([]byte("breakpointCols:\n  default: 4\n  700: 2\n  \"0700\": 1\n"), &d)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "appears twice")
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		in := doc{Cols: MustParseBreakpoints("default:4,700:2")}

		out, err := yaml.Marshal(in)
		require.NoError(t, err)

		var back doc
		require.NoError(t, yaml.Unmarshal(out, &back))
		assert.Equal(t, in.Cols.String(), back.Cols.String())
	})
}

func TestBreakpointsSet(t *testing.T) {
	t.Parallel()

	var bp Breakpoints

	require.NoError(t, bp.Set("default:3,640:1"))
	assert.Equal(t, 1, bp.Columns(640))
	assert.Equal(t, "breakpoints", bp.Type())

	require.ErrorIs(t, bp.Set("640:1"), ErrMissingDefault)
	assert.Equal(t, "default:3,640:1", bp.String(), "failed Set must keep the previous value")
}
