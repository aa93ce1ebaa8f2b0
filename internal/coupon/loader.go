package coupon

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for reading gzipped coupon files.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based coupon loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "coupon-loader").Logger(),
	}
}

// Load reads a gzipped coupon file and returns a Table.
// The file is expected to contain one `code,amount` pair per line.
func (l *fileLoader) Load(ctx context.Context, filePath string) (Table, error) {
	l.logger.Info().Str("file", filePath).Msg("loading coupon file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open coupon file")
		return nil, fmt.Errorf("failed to open coupon file %s: %w", filePath, err)
	}
	defer file.Close()

	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to create gzip reader")
		return nil, fmt.Errorf("failed to create gzip reader for %s: %w", filePath, err)
	}
	defer gzipReader.Close()

	table, err := readTable(ctx, gzipReader, l.logger)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("error reading coupon file")
		return nil, fmt.Errorf("error reading coupon file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("coupons_loaded", table.Size()).
		Msg("coupon file loaded successfully")

	return table, nil
}

// readTable parses `code,amount` lines from r into a Table. Malformed lines
// are skipped, not fatal: coupon files are operator-supplied data.
func readTable(ctx context.Context, r io.Reader, logger zerolog.Logger) (Table, error) {
	table := NewMapTable(1024).(*mapTable)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineCount := 0
	skipped := 0
	for scanner.Scan() {
		// Check context cancellation periodically
		if lineCount%100_000 == 0 {
			select {
			case <-ctx.Done():
				logger.Warn().Msg("coupon loading cancelled")
				return nil, ctx.Err()
			default:
			}
		}
		lineCount++

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		code, amountStr, ok := strings.Cut(line, ",")
		if !ok {
			skipped++
			continue
		}

		amount, err := strconv.ParseFloat(strings.TrimSpace(amountStr), 64)
		if err != nil || amount < 0 {
			skipped++
			continue
		}

		table.Add(strings.TrimSpace(code), amount)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if skipped > 0 {
		logger.Warn().Int("skipped", skipped).Msg("skipped malformed coupon lines")
	}

	return table, nil
}
