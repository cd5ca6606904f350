package version

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"18.2.0", "18.2.0", false},
		{"v18.2", "18.2.0", false},
		{"18", "18.0.0", false},
		{"0.160.0", "0.160.0", false},
		{"latest", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestPinned(t *testing.T) {
	html := `
<script src="https://unpkg.com/react@18.2.0/umd/react.production.min.js"></script>
<script src="https://unpkg.com/react-dom@17.0.2/umd/react-dom.production.min.js"></script>
<script src="https://cdn.jsdelivr.net/npm/react@18/umd/react.development.js"></script>
<script src="https://unpkg.com/react@latest/umd/react.js"></script>
`
	react := Pinned(html, "react")
	require.Len(t, react, 2)
	assert.Equal(t, "18.2.0", react[0].String())
	assert.Equal(t, "18.0.0", react[1].String())

	dom := Pinned(html, "react-dom")
	require.Len(t, dom, 1)
	assert.Equal(t, "17.0.2", dom[0].String())

	assert.Empty(t, Pinned(html, "vue"))
}

func TestPinnedDoesNotMatchSuffix(t *testing.T) {
	html := `<script src="https://unpkg.com/preact@10.0.0/dist/preact.js"></script>`
	assert.Empty(t, Pinned(html, "react"))
}

func TestOldestAndAtLeast(t *testing.T) {
	a, err := Parse("18.2.0")
	require.NoError(t, err)
	b, err := Parse("17.0.2")
	require.NoError(t, err)
	minimum, err := Parse("18")
	require.NoError(t, err)

	assert.Nil(t, Oldest(nil))
	assert.Equal(t, "17.0.2", Oldest([]*semver.Version{a, b}).String())

	assert.True(t, AtLeast(a, minimum))
	assert.True(t, AtLeast(minimum, minimum))
	assert.False(t, AtLeast(b, minimum))
}
