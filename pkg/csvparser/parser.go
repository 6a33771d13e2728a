package csvparser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	da "github.com/lintang-b-s/Pollutrace/pkg/datastructure"
	"github.com/lintang-b-s/Pollutrace/pkg/metrics"
	"github.com/lintang-b-s/Pollutrace/pkg/util"
	"go.uber.org/zap"
)

var (
	ErrEmptyFile       = errors.New("csv file has no rows")
	ErrMalformedRow    = errors.New("malformed csv row")
	ErrNegativeReading = errors.New("negative pollutant reading")
	ErrUnknownZone     = errors.New("edge references an unknown zone")
)

type CSVParser struct {
	logger *zap.Logger
}

func NewCSVParser(logger *zap.Logger) *CSVParser {
	return &CSVParser{logger: logger}
}

// ReadZones parses a sensor file with the header row
// zone,pm25,pm10,co,wind or zone,pm25,pm10,co,no2,wind.
// any problem gives an empty result and an error naming the file.
func (p *CSVParser) ReadZones(path string) ([]da.Zone, error) {
	f, err := os.Open(path)
	if err != nil {
		return []da.Zone{}, fmt.Errorf("open zones file %s: %w", path, err)
	}
	defer f.Close()

	zones, err := p.ParseZones(f)
	if err != nil {
		return []da.Zone{}, fmt.Errorf("zones file %s: %w", path, err)
	}
	p.logger.Info("zones loaded", zap.String("path", path), zap.Int("count", len(zones)))
	return zones, nil
}

func (p *CSVParser) ParseZones(r io.Reader) ([]da.Zone, error) {
	records, err := readRecords(r)
	if err != nil {
		return []da.Zone{}, err
	}

	zones := make([]da.Zone, 0, len(records)-1)
	seen := make(map[string]struct{}, len(records)-1)
	for i, row := range records[1:] {
		line := i + 2
		zone, err := parseZoneRow(row)
		if err == nil {
			key := util.NormalizeName(zone.GetName())
			if _, dup := seen[key]; dup {
				err = fmt.Errorf("%w: %s", da.ErrDuplicateZone, zone.GetName())
			}
			seen[key] = struct{}{}
		}
		if err != nil {
			p.logger.Warn("rejecting zones file", zap.Int("line", line), zap.Error(err))
			return []da.Zone{}, fmt.Errorf("line %d: %w", line, err)
		}
		zones = append(zones, zone)
	}
	return zones, nil
}

func parseZoneRow(row []string) (da.Zone, error) {
	if len(row) != 5 && len(row) != 6 {
		return da.Zone{}, fmt.Errorf("%w: want 5 or 6 fields, got %d", ErrMalformedRow, len(row))
	}
	name := strings.TrimSpace(row[0])
	if name == "" {
		return da.Zone{}, fmt.Errorf("%w: empty zone name", ErrMalformedRow)
	}

	values := make([]int, 0, 4)
	for _, field := range row[1 : len(row)-1] {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return da.Zone{}, fmt.Errorf("%w: %v", ErrMalformedRow, err)
		}
		if v < 0 {
			return da.Zone{}, fmt.Errorf("%w: %s has %d", ErrNegativeReading, name, v)
		}
		values = append(values, v)
	}

	wind, err := da.ParseDirection(row[len(row)-1])
	if err != nil {
		return da.Zone{}, fmt.Errorf("%w: %v", ErrMalformedRow, err)
	}

	readings := metrics.NewReadings(values[0], values[1], values[2])
	if len(values) == 4 {
		readings = metrics.NewReadingsWithNO2(values[0], values[1], values[2], values[3])
	}
	return da.NewZone(name, readings, wind), nil
}

// ReadEdges parses a from,to,weight file whose endpoints are zone names of zs.
func (p *CSVParser) ReadEdges(path string, zs *da.ZoneSet) ([]da.Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return []da.Edge{}, fmt.Errorf("open edges file %s: %w", path, err)
	}
	defer f.Close()

	edges, err := p.ParseEdges(f, zs)
	if err != nil {
		return []da.Edge{}, fmt.Errorf("edges file %s: %w", path, err)
	}
	p.logger.Info("edges loaded", zap.String("path", path), zap.Int("count", len(edges)))
	return edges, nil
}

func (p *CSVParser) ParseEdges(r io.Reader, zs *da.ZoneSet) ([]da.Edge, error) {
	records, err := readRecords(r)
	if err != nil {
		return []da.Edge{}, err
	}

	edges := make([]da.Edge, 0, len(records)-1)
	for i, row := range records[1:] {
		line := i + 2
		if len(row) != 3 {
			return []da.Edge{}, fmt.Errorf("line %d: %w: want 3 fields, got %d", line, ErrMalformedRow, len(row))
		}
		from, ok := zs.Lookup(row[0])
		if !ok {
			return []da.Edge{}, fmt.Errorf("line %d: %w: %q", line, ErrUnknownZone, row[0])
		}
		to, ok := zs.Lookup(row[1])
		if !ok {
			return []da.Edge{}, fmt.Errorf("line %d: %w: %q", line, ErrUnknownZone, row[1])
		}
		weight, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil {
			p.logger.Warn("rejecting edges file", zap.Int("line", line), zap.Error(err))
			return []da.Edge{}, fmt.Errorf("line %d: %w: %v", line, ErrMalformedRow, err)
		}
		edges = append(edges, da.NewEdge(from, to, weight))
	}
	return edges, nil
}

// readRecords returns the header plus data rows. rows may differ in length; callers check.
func readRecords(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}
	return records, nil
}
