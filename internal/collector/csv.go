package collector

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"StockAdvisor/internal/model"
	"StockAdvisor/internal/store"
)

// ErrUnknownSymbol means a source holds no data for the requested symbol.
var ErrUnknownSymbol = errors.New("unknown symbol")

// CSVSource reads <Dir>/<SYMBOL>.csv files with a header row naming a date
// column and a close column, plus an optional volume column.
type CSVSource struct {
	Dir string
}

func NewCSVSource(dir string) *CSVSource { return &CSVSource{Dir: dir} }

func (s *CSVSource) Name() string { return "csv" }

func (s *CSVSource) FetchDailyBars(_ context.Context, symbol string, days int) ([]model.Bar, error) {
	path := filepath.Join(s.Dir, strings.ToUpper(symbol)+".csv")
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", symbol, ErrUnknownSymbol)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	bars, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lastN(bars, days), nil
}

// ReadCSV parses daily bars and returns them sorted by day.
func ReadCSV(r io.Reader) ([]model.Bar, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	dateCol, closeCol, volCol := -1, -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "date", "day":
			dateCol = i
		case "close", "adj_close":
			if closeCol < 0 {
				closeCol = i
			}
		case "volume":
			volCol = i
		}
	}
	if dateCol < 0 || closeCol < 0 {
		return nil, fmt.Errorf("header %v: need date and close columns", header)
	}

	var bars []model.Bar
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(rec) <= dateCol || len(rec) <= closeCol {
			return nil, fmt.Errorf("line %d: too few fields", line)
		}

		day, err := time.Parse(store.DayLayout, strings.TrimSpace(rec[dateCol]))
		if err != nil {
			return nil, fmt.Errorf("line %d: date: %w", line, err)
		}
		closePx, err := strconv.ParseFloat(strings.TrimSpace(rec[closeCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: close: %w", line, err)
		}
		bar := model.Bar{Day: day, Close: closePx}
		if volCol >= 0 && volCol < len(rec) && strings.TrimSpace(rec[volCol]) != "" {
			if bar.Volume, err = strconv.ParseInt(strings.TrimSpace(rec[volCol]), 10, 64); err != nil {
				return nil, fmt.Errorf("line %d: volume: %w", line, err)
			}
		}
		bars = append(bars, bar)
	}

	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Day.Before(bars[j].Day) })
	return bars, nil
}
