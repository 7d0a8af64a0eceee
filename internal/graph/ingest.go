package graph

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
)

// sampleData is the embedded fallback dataset used when no input path is
// given.
//
//go:embed sample.jsonl
var sampleData []byte

// maxLineBytes bounds a single input line. Labels are short by design;
// 1 MiB leaves room for pathological producers without unbounded growth.
const maxLineBytes = 1 << 20

// Report accumulates non-fatal ingestion warnings. Warnings are collected
// during the stream pass and surfaced after ingestion completes, never
// printed mid-stream.
type Report struct {
	LineWarnings     []string // malformed lines, with line numbers
	DanglingWarnings []string // edges still missing an endpoint at EOF
	SizeWarning      string   // soft node-count threshold exceeded
}

// Empty reports whether the ingestion produced no warnings.
func (r *Report) Empty() bool {
	return len(r.LineWarnings) == 0 && len(r.DanglingWarnings) == 0 && r.SizeWarning == ""
}

// All returns every warning as a flat list, line warnings first.
func (r *Report) All() []string {
	out := make([]string, 0, len(r.LineWarnings)+len(r.DanglingWarnings)+1)
	out = append(out, r.LineWarnings...)
	out = append(out, r.DanglingWarnings...)
	if r.SizeWarning != "" {
		out = append(out, r.SizeWarning)
	}
	return out
}

// Ingest consumes the full input stream line by line, applying each parsed
// record to a fresh store in arrival order. Malformed lines, including
// lines over maxLineBytes, are recorded as warnings and skipped; blank
// lines are ignored. At end of stream any edge still dangling and any
// breach of the soft node-count threshold are added to the report.
// warnThreshold <= 0 disables the size warning.
func Ingest(r io.Reader, warnThreshold int) (*Store, *Report, error) {
	store := NewStore()
	report := &Report{}

	reader := bufio.NewReaderSize(r, 64*1024)

	lineno := 0
	for {
		lineno++
		raw, tooLong, err := readLine(reader)
		if err != nil && err != io.EOF {
			return nil, nil, fmt.Errorf("read input: %w", err)
		}
		if tooLong {
			report.LineWarnings = append(report.LineWarnings,
				fmt.Sprintf("line %d: exceeds %d bytes, skipped", lineno, maxLineBytes))
		} else if line := bytes.TrimSpace(raw); len(line) > 0 {
			rec, perr := ParseLine(line, lineno)
			if perr != nil {
				report.LineWarnings = append(report.LineWarnings, perr.Error())
			} else {
				switch rec := rec.(type) {
				case NodeRecord:
					store.ApplyNode(rec)
				case EdgeRecord:
					store.ApplyEdge(rec)
				}
			}
		}
		if err == io.EOF {
			break
		}
	}

	for _, edge := range store.DanglingEdges() {
		report.DanglingWarnings = append(report.DanglingWarnings,
			fmt.Sprintf("dangling edge %s -> %s references missing node(s)", edge.From, edge.To))
	}

	if warnThreshold > 0 && store.NodeCount() > warnThreshold {
		report.SizeWarning = fmt.Sprintf("%d nodes exceeds the soft threshold of %d; rendering stays bounded but list scans may feel slow",
			store.NodeCount(), warnThreshold)
	}

	return store, report, nil
}

// readLine reads one newline-terminated line, accumulating across buffer
// refills. A line over maxLineBytes is discarded up to its newline and
// reported via tooLong, so reading resumes at the next line.
func readLine(r *bufio.Reader) (line []byte, tooLong bool, err error) {
	var buf []byte
	for {
		chunk, rerr := r.ReadSlice('\n')
		buf = append(buf, chunk...)
		if rerr == nil || rerr == io.EOF {
			if len(buf) > maxLineBytes {
				return nil, true, rerr
			}
			return buf, false, rerr
		}
		if rerr != bufio.ErrBufferFull {
			return nil, false, rerr
		}
		if len(buf) > maxLineBytes {
			return nil, true, discardLine(r)
		}
	}
}

// discardLine skips input through the next newline.
func discardLine(r *bufio.Reader) error {
	for {
		_, err := r.ReadSlice('\n')
		if err == nil || err == io.EOF {
			return err
		}
		if err != bufio.ErrBufferFull {
			return err
		}
	}
}

// Load ingests the file at path, or the embedded sample dataset when path
// is empty. An unopenable path is the only fatal ingestion error.
func Load(path string, warnThreshold int) (*Store, *Report, error) {
	if path == "" {
		return Ingest(bytes.NewReader(sampleData), warnThreshold)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = f.Close() }()

	store, report, err := Ingest(f, warnThreshold)
	if err != nil {
		return nil, nil, fmt.Errorf("ingest %s: %w", path, err)
	}
	return store, report, nil
}
