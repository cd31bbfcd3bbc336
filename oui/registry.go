package oui

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrRegistryNotFound is returned when neither registry file exists.
var ErrRegistryNotFound = errors.New("no oui registry file found")

const (
	installedShareDir = "/usr/share/vendormac"
	dataDirEnv        = "VENDORMAC_DATA_DIR"
	surveyFileName    = "maclist.lst"
	registryFileName  = "oui.lst"
)

// Paths locates the survey file and the two candidate registry copies.
type Paths struct {
	Survey           string
	RegistryPrimary  string
	RegistryFallback string
}

// DefaultPaths returns the standard file layout: the survey and the bundled
// registry copy live in the local data directory (overridable with
// VENDORMAC_DATA_DIR), the primary registry copy is the system-wide install.
func DefaultPaths() Paths {
	dataDir := os.Getenv(dataDirEnv)
	if dataDir == "" {
		dataDir = "data"
	}
	return Paths{
		Survey:           filepath.Join(dataDir, surveyFileName),
		RegistryPrimary:  filepath.Join(installedShareDir, registryFileName),
		RegistryFallback: filepath.Join(dataDir, registryFileName),
	}
}

// SourceKind tags which registry copy won the resolution.
type SourceKind int

const (
	SourcePrimary SourceKind = iota
	SourceFallback
)

func (k SourceKind) String() string {
	if k == SourceFallback {
		return "bundled"
	}
	return "installed"
}

// Source is the registry file chosen by ResolveRegistry.
type Source struct {
	Kind  SourceKind
	Path  string
	Lines int
}

// CountLines returns the number of lines in the file at path.
func CountLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		n++
	}
	return n, sc.Err()
}

// ResolveRegistry picks between the installed and bundled registry copies.
// Whichever exists with the larger line count wins, more entries being the
// better sign of currency. countLines may be nil to read the real files;
// tests inject their own.
func ResolveRegistry(primary, fallback string, countLines func(string) (int, error)) (Source, error) {
	if countLines == nil {
		countLines = CountLines
	}

	pLines, pErr := countLines(primary)
	fLines, fErr := countLines(fallback)

	switch {
	case pErr == nil && fErr == nil:
		if fLines > pLines {
			return Source{Kind: SourceFallback, Path: fallback, Lines: fLines}, nil
		}
		return Source{Kind: SourcePrimary, Path: primary, Lines: pLines}, nil
	case pErr == nil:
		return Source{Kind: SourcePrimary, Path: primary, Lines: pLines}, nil
	case fErr == nil:
		return Source{Kind: SourceFallback, Path: fallback, Lines: fLines}, nil
	}

	return Source{}, errors.Wrapf(ErrRegistryNotFound, "tried %s and %s", primary, fallback)
}

// RegistryRecord is one IEEE-assigned vendor prefix. The vendor name is
// display only and never used for matching.
type RegistryRecord struct {
	Octets     [3]string
	VendorName string
	Raw        string
}

// Registry is the parsed registry file plus the source it was loaded from.
type Registry struct {
	Source  Source
	records []RegistryRecord
}

// LoadRegistry parses the registry file chosen by ResolveRegistry.
// Lines with fewer than three fields are skipped with a warning.
func LoadRegistry(src Source) (*Registry, error) {
	f, err := os.Open(src.Path)
	if err != nil {
		return nil, errors.Wrap(ErrRegistryNotFound, err.Error())
	}
	defer f.Close()

	r := &Registry{Source: src}
	lineNo := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		fields := strings.Fields(line)
		if len(fields) < 3 {
			logrus.WithFields(logrus.Fields{
				"path": src.Path,
				"line": lineNo,
			}).Warn("skipping malformed registry line")
			continue
		}
		r.records = append(r.records, RegistryRecord{
			Octets: [3]string{
				strings.ToUpper(fields[0]),
				strings.ToUpper(fields[1]),
				strings.ToUpper(fields[2]),
			},
			VendorName: strings.Join(fields[3:], " "),
			Raw:        line,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read registry file")
	}
	if len(r.records) == 0 {
		return nil, errors.Wrapf(ErrRegistryNotFound, "%s has no usable entries", src.Path)
	}

	return r, nil
}

// Len returns the number of registry records.
func (r *Registry) Len() int {
	return len(r.records)
}

// PickRandom returns a record drawn uniformly by its 1-indexed file position.
func (r *Registry) PickRandom(rng Rand) RegistryRecord {
	k := rng.Intn(len(r.records)) + 1
	return r.records[k-1]
}
