// Package oui loads the curated device survey and the IEEE vendor registry,
// and selects vendor prefixes from them.
package oui

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	// ErrPatternNotFound is returned when a search string matches no survey entry.
	ErrPatternNotFound = errors.New("no survey entry matches pattern")
	// ErrRecordNotFound is returned when a line number has no survey entry.
	ErrRecordNotFound = errors.New("no survey entry at that line")
)

// Rand is the source of uniform random integers used for record selection
// and suffix generation. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// SurveyRecord is one line of the curated device survey. Fields other than
// the OUI may be the "-" placeholder.
type SurveyRecord struct {
	LineNumber     int
	InterfaceClass string
	ProductType    string
	Manufacturer   string
	ProductName    string
	Model          string
	OUI            [3]string
	Raw            string
}

// Fixed column layout of the survey file:
// line_number interface_class product_type manufacturer product_name model oct1 oct2 oct3
const surveyFieldCount = 9

// Survey is the parsed survey file. It is read-only once loaded.
type Survey struct {
	records []SurveyRecord
}

// LoadSurvey parses the survey file at path. Records keep their 1-based
// physical line number so interactive selection stays stable. Malformed
// lines are skipped with a warning.
func LoadSurvey(path string) (*Survey, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open survey file")
	}
	defer f.Close()

	s := &Survey{}
	lineNo := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != surveyFieldCount {
			logrus.WithFields(logrus.Fields{
				"path": path,
				"line": lineNo,
			}).Warn("skipping malformed survey line")
			continue
		}
		s.records = append(s.records, SurveyRecord{
			LineNumber:     lineNo,
			InterfaceClass: fields[1],
			ProductType:    fields[2],
			Manufacturer:   fields[3],
			ProductName:    fields[4],
			Model:          fields[5],
			OUI: [3]string{
				strings.ToUpper(fields[6]),
				strings.ToUpper(fields[7]),
				strings.ToUpper(fields[8]),
			},
			Raw: line,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read survey file")
	}

	return s, nil
}

// Records returns all records in file order.
func (s *Survey) Records() []SurveyRecord {
	return s.records
}

// Len returns the number of records.
func (s *Survey) Len() int {
	return len(s.records)
}

// ByLine returns the record whose 1-based line number equals n.
func (s *Survey) ByLine(n int) (SurveyRecord, error) {
	if n >= 1 {
		for _, rec := range s.records {
			if rec.LineNumber == n {
				return rec, nil
			}
		}
	}
	return SurveyRecord{}, errors.Wrapf(ErrRecordNotFound, "line %d", n)
}

// Match returns every record whose full line contains search
// case-insensitively, in file order.
func (s *Survey) Match(search string) []SurveyRecord {
	needle := strings.ToLower(search)

	var matches []SurveyRecord
	for _, rec := range s.records {
		if strings.Contains(strings.ToLower(rec.Raw), needle) {
			matches = append(matches, rec)
		}
	}

	return matches
}

// PickRandom selects one record uniformly from those matching search.
// The interface name shares the match predicate with the search string and
// is only reported on failure; it is not an independent filter.
func (s *Survey) PickRandom(iface, search string, rng Rand) (SurveyRecord, error) {
	matches := s.Match(search)
	if len(matches) == 0 {
		return SurveyRecord{}, errors.Wrapf(ErrPatternNotFound, "%q on interface %s", search, iface)
	}

	// k is 1-based so the draw maps onto the k-th match in file order,
	// exactly as a single-pass re-scan would select it.
	k := rng.Intn(len(matches)) + 1

	return matches[k-1], nil
}
