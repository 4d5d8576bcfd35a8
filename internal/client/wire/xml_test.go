package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_Images(t *testing.T) {
	got, err := Encode([]ImageRow{
		{URL: "https://cdn.example/E/a.jpg", Sort: 1},
		{URL: "https://cdn.example/E/b.jpg", Sort: 2},
	})
	require.NoError(t, err)

	want := `<ROOT>
  <DATA>
    <IMG_URL>https://cdn.example/E/a.jpg</IMG_URL>
    <SORT>1</SORT>
  </DATA>
  <DATA>
    <IMG_URL>https://cdn.example/E/b.jpg</IMG_URL>
    <SORT>2</SORT>
  </DATA>
</ROOT>`
	assert.Equal(t, want, got)
}

func TestEncode_Details(t *testing.T) {
	got, err := Encode([]DetailRow{{ExpSeqNo: 7, PointTime: "01:20", Sort: 1}})
	require.NoError(t, err)

	want := `<ROOT>
  <DATA>
    <EXP_SEQ_NO>7</EXP_SEQ_NO>
    <POINT_TIME>01:20</POINT_TIME>
    <SORT>1</SORT>
  </DATA>
</ROOT>`
	assert.Equal(t, want, got)
}

func TestEncode_EmptyList(t *testing.T) {
	got, err := Encode[ImageRow](nil)
	require.NoError(t, err)
	assert.Equal(t, "<ROOT></ROOT>", got)
}

func TestEncode_EscapesText(t *testing.T) {
	got, err := Encode([]ImageRow{{URL: "https://cdn.example/a.jpg?x=1&y=2", Sort: 1}})
	require.NoError(t, err)
	assert.Contains(t, got, "<IMG_URL>https://cdn.example/a.jpg?x=1&amp;y=2</IMG_URL>")

	rows, err := Decode[ImageRow](got)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "https://cdn.example/a.jpg?x=1&y=2", rows[0].URL)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode[DetailRow]("<ROOT><DATA>")
	require.Error(t, err)
}
