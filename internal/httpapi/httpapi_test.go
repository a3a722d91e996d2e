package httpapi

import (
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gotest.tools/assert"

	"github.com/BeatGlow/segment"
)

func newTestServer(t *testing.T) (*httptest.Server, *segment.RadTCAS) {
	t.Helper()
	d, err := segment.NewRadTCAS(segment.OpenSimulated(0))
	assert.NilError(t, err)
	srv := httptest.NewServer(New(d, "RAD").Router())
	t.Cleanup(srv.Close)
	return srv, d
}

func put(t *testing.T, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPut, url, strings.NewReader(body))
	assert.NilError(t, err)
	res, err := http.DefaultClient.Do(req)
	assert.NilError(t, err)
	res.Body.Close()
	return res
}

func TestSet(t *testing.T) {
	srv, d := newTestServer(t)

	res := put(t, srv.URL+"/set/3", "7700")
	assert.Equal(t, res.StatusCode, http.StatusNoContent)
	assert.Equal(t, d.Patterns()[1], segment.PatternFor(7))
	assert.Equal(t, d.Patterns()[0], segment.PatternFor(segment.GlyphBlank))

	res = put(t, srv.URL+"/set/-1", "")
	assert.Equal(t, res.StatusCode, http.StatusNoContent)
	assert.DeepEqual(t, d.Patterns(), make([]segment.Pattern, 6))
}

func TestSetInvalidID(t *testing.T) {
	srv, _ := newTestServer(t)
	assert.Equal(t, put(t, srv.URL+"/set/99999", "1").StatusCode, http.StatusBadRequest)
	assert.Equal(t, put(t, srv.URL+"/set/abc", "1").StatusCode, http.StatusNotFound)
}

func TestBuffer(t *testing.T) {
	srv, d := newTestServer(t)
	assert.NilError(t, d.ShowTest(true))

	res, err := http.Get(srv.URL + "/buffer")
	assert.NilError(t, err)
	defer res.Body.Close()

	var got []int
	assert.NilError(t, json.NewDecoder(res.Body).Decode(&got))
	assert.DeepEqual(t, got, []int{0xff, 0xff, 0xff, 0xff, 0xff, 0xff})
}

func TestPreview(t *testing.T) {
	srv, d := newTestServer(t)
	assert.NilError(t, d.ShowRadio(118000))

	res, err := http.Get(srv.URL + "/preview.png")
	assert.NilError(t, err)
	defer res.Body.Close()
	assert.Equal(t, res.Header.Get("Content-Type"), "image/png")
	img, err := png.Decode(res.Body)
	assert.NilError(t, err)
	assert.Assert(t, img.Bounds().Dx() > 0)

	res, err = http.Get(srv.URL + "/preview.txt")
	assert.NilError(t, err)
	defer res.Body.Close()
	assert.Equal(t, res.StatusCode, http.StatusOK)
}
