// Public domain.

package mpcorb_test

import (
	"compress/gzip"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/mpaint/mpaint/mpcorb"
)

const fetchBody = "00001 minimal catalog content\n"

func fetchServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/MPCORB.DAT.gz", func(w http.ResponseWriter, r *http.Request) {
		zw := gzip.NewWriter(w)
		zw.Write([]byte(fetchBody))
		zw.Close()
	})
	mux.HandleFunc("/NEAm00.txt", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(fetchBody))
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func TestFetchGzip(t *testing.T) {
	ts := fetchServer(t)
	fn := filepath.Join(t.TempDir(), "MPCORB.DAT")
	if err := mpcorb.Fetch(ts.URL+"/MPCORB.DAT.gz", fn); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != fetchBody {
		t.Fatalf("fetched %q, want %q", b, fetchBody)
	}
}

func TestFetchPlain(t *testing.T) {
	ts := fetchServer(t)
	fn := filepath.Join(t.TempDir(), "NEAm00.txt")
	if err := mpcorb.Fetch(ts.URL+"/NEAm00.txt", fn); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != fetchBody {
		t.Fatalf("fetched %q, want %q", b, fetchBody)
	}
}

func TestFetchNotFound(t *testing.T) {
	ts := fetchServer(t)
	fn := filepath.Join(t.TempDir(), "missing")
	if err := mpcorb.Fetch(ts.URL+"/no-such-file", fn); err == nil {
		t.Fatal("expected error for 404 response")
	}
}
