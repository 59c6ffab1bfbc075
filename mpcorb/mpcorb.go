// Public domain.

// Package mpcorb reads Minor Planet Center orbital-element catalogs.
//
// The package handles the MPC "export" fixed-width format used by both
// MPCORB.DAT and the NEAm00.txt subset.  Lines that are not element records,
// such as the MPCORB header block, section separators, and blank lines, are
// quietly ignored.  Element records with missing or unparseable numeric
// fields are recoverable errors; callers typically count and skip them.
package mpcorb

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/soniakeys/astro"
	"github.com/soniakeys/mpcformat"
)

// Record is one minor planet from an orbital-element catalog.
//
// Angles are in degrees as given in the catalog.  A Record is immutable once
// produced by the parser.
type Record struct {
	Desig   string  // packed designation, exactly as in the catalog
	H       float64 // absolute magnitude, NaN if absent
	G       float64 // slope parameter, NaN if absent
	MA      float64 // mean anomaly at epoch, degrees
	Peri    float64 // argument of perihelion, degrees
	Node    float64 // longitude of ascending node, degrees
	Inc     float64 // inclination, degrees
	E       float64 // eccentricity
	A       float64 // semi-major axis, AU
	EpochJD float64 // osculation epoch, decoded from the packed field
}

// Perihelion returns the perihelion distance q = a(1-e) in AU.
func (r *Record) Perihelion() float64 {
	return r.A * (1 - r.E)
}

// RecordError is a recoverable error for a single bad catalog line.
// A Splitter yielding a RecordError remains valid for further records.
type RecordError string

func (e RecordError) Error() string { return string(e) }

// exportPart matches the fields of the MPC export format needed here.
// Blank magnitude fields occur in the catalog and default to NaN.
type exportPart struct {
	Desig, Epoch        string
	A, E                float64
	Inc, MA, Node, Peri float64
	G                   float64 `val:"defNaN"`
	H                   float64 `val:"defNaN"`
}

// minRecordLen is the minimum line length holding all element fields;
// the semi-major axis field ends at column 103.
const minRecordLen = 103

// Splitter returns a function lazily producing Records from r in file order.
//
// The returned function returns io.EOF at end of input and RecordError for
// a line that should hold an element record but doesn't parse; both leave
// the splitter usable.  Any other error is not recoverable.
//
// An MPCORB header block, terminated by a rule of dashes, is skipped without
// generating errors.  Catalogs with no header, such as the NEA subset, are
// detected by their first line parsing as an element record.
func Splitter(rd io.Reader) func() (*Record, error) {
	b := bufio.NewReader(rd)
	var part exportPart
	um, umErr := mpcformat.NewExportUnmarshaler(&part)
	inHeader := true
	return func() (*Record, error) {
		if umErr != nil {
			return nil, umErr
		}
		for {
			line, err := b.ReadString('\n')
			if line == "" && err != nil {
				return nil, err
			}
			line = strings.TrimRight(line, "\r\n")
			if strings.TrimSpace(line) == "" {
				continue // blank lines separate MPCORB sections
			}
			if inHeader {
				if strings.HasPrefix(line, "----") {
					inHeader = false
					continue
				}
				if !looksLikeRecord(line) {
					continue // header prose
				}
				inHeader = false
			}
			if len(line) < minRecordLen {
				return nil, RecordError("short line: " + line)
			}
			if err := um([]byte(line)); err != nil {
				return nil, RecordError(err.Error())
			}
			rec, err := recordFromPart(&part)
			if err != nil {
				return nil, err
			}
			return rec, nil
		}
	}
}

// looksLikeRecord reports whether a line plausibly holds an element record.
// It is only used to find the end of a missing or malformed header block,
// so a cheap test on the eccentricity column is enough.
func looksLikeRecord(line string) bool {
	if len(line) < minRecordLen {
		return false
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(line[70:79]), 64)
	return err == nil
}

func recordFromPart(p *exportPart) (*Record, error) {
	if p.Desig == "" {
		return nil, RecordError("missing designation")
	}
	for _, f := range []float64{p.A, p.E, p.Inc, p.MA, p.Node, p.Peri} {
		if math.IsNaN(f) {
			return nil, RecordError("missing element field, desig " + p.Desig)
		}
	}
	if p.A <= 0 || p.E < 0 || p.E >= 1 {
		return nil, RecordError("unusable elements, desig " + p.Desig)
	}
	y, m, d, err := mpcformat.UnpackEpoch(p.Epoch)
	if err != nil {
		return nil, RecordError("bad epoch, desig " + p.Desig + ": " + err.Error())
	}
	return &Record{
		Desig:   p.Desig,
		H:       p.H,
		G:       p.G,
		MA:      p.MA,
		Peri:    p.Peri,
		Node:    p.Node,
		Inc:     p.Inc,
		E:       p.E,
		A:       p.A,
		EpochJD: astro.FFCalendarGregorianToJD(y, m, d),
	}, nil
}

// ReadFile reads an entire catalog, skipping bad lines.
//
// It returns the records in file order and the number of lines skipped as
// recoverable RecordErrors.  A missing file returns an error satisfying
// errors.Is(err, fs.ErrNotExist).
func ReadFile(path string) (recs []*Record, skipped int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()
	for next := Splitter(f); ; {
		switch rec, err := next(); {
		case err == nil:
			recs = append(recs, rec)
		case err == io.EOF:
			return recs, skipped, nil
		default:
			if _, ok := err.(RecordError); ok {
				skipped++
				continue
			}
			return recs, skipped, err
		}
	}
}
