package netx

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultipartFile(t *testing.T) {
	var (
		gotName    string
		gotContent string
	)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, hdr, err := r.FormFile("file")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer f.Close()
		b, _ := io.ReadAll(f)
		gotName = hdr.Filename
		gotContent = string(b)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	body, ct := MultipartFile("file", "sales.csv", strings.NewReader("sku,qty\nA,1\n"))
	require.True(t, strings.HasPrefix(ct, "multipart/form-data; boundary="))

	req, err := http.NewRequest(http.MethodPost, ts.URL, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", ct)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "sales.csv", gotName)
	assert.Equal(t, "sku,qty\nA,1\n", gotContent)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestMultipartFile_SourceErrorSurfacesToReader(t *testing.T) {
	body, _ := MultipartFile("file", "x.csv", failingReader{})
	defer body.Close()

	_, err := io.ReadAll(body)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
}

func TestIsSuccess(t *testing.T) {
	assert.True(t, IsSuccess(200))
	assert.True(t, IsSuccess(204))
	assert.False(t, IsSuccess(199))
	assert.False(t, IsSuccess(302))
	assert.False(t, IsSuccess(401))
	assert.False(t, IsSuccess(500))
}
