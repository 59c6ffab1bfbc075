// Public domain.

package mpcorb

import (
	"compress/gzip"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Catalog URLs as published by the Minor Planet Center.  The full catalog
// is distributed gzipped; the NEA subset is plain text.
var (
	MPCORBUrl = "https://www.minorplanetcenter.net/iau/MPCORB/MPCORB.DAT.gz"
	NEAUrl    = "https://www.minorplanetcenter.net/iau/MPCORB/NEAm00.txt"
)

// Fetch gets a fresh copy of the data at url and writes it to a new file
// with the path and file name fn.  Payloads from a url ending in .gz are
// decompressed before writing.
func Fetch(url, fn string) error {
	r, err := http.Get(url)
	if err != nil {
		return err
	}
	defer r.Body.Close()
	if r.StatusCode != http.StatusOK {
		return errors.New(url + ": " + r.Status)
	}
	body := r.Body
	if strings.HasSuffix(url, ".gz") {
		if body, err = gzip.NewReader(r.Body); err != nil {
			return err
		}
	}
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	if _, err = io.Copy(f, body); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// FetchMPCORB downloads the full catalog into dir as MPCORB.DAT and
// returns the file path.
func FetchMPCORB(dir string) (string, error) {
	fn := filepath.Join(dir, "MPCORB.DAT")
	return fn, Fetch(MPCORBUrl, fn)
}

// FetchNEA downloads the NEA subset into dir as NEAm00.txt and returns
// the file path.
func FetchNEA(dir string) (string, error) {
	fn := filepath.Join(dir, "NEAm00.txt")
	return fn, Fetch(NEAUrl, fn)
}
