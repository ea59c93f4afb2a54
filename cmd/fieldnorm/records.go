package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/vortex-fintech/fieldnorm/normalize"
)

const (
	formatJSON  = "json"
	formatJSONL = "jsonl"

	maxLineBytes = 16 << 20
)

// batch is the decoded input. single is set when a json input held one
// object instead of an array, so the output keeps the same shape.
type batch struct {
	records []normalize.Record
	single  bool
}

func readRecords(r io.Reader, format string) (batch, error) {
	switch format {
	case formatJSONL:
		return readJSONL(r)
	case formatJSON, "":
		return readJSON(r)
	default:
		return batch{}, fmt.Errorf("unsupported format %q", format)
	}
}

func readJSON(r io.Reader) (batch, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return batch{}, nil
		}
		return batch{}, fmt.Errorf("decode json: %w", err)
	}
	if dec.More() {
		return batch{}, errors.New("decode json: trailing data after first value")
	}

	if arr, ok := v.([]any); ok {
		out := make([]normalize.Record, len(arr))
		for i, item := range arr {
			out[i] = asRecord(item)
		}
		return batch{records: out}, nil
	}
	return batch{records: []normalize.Record{asRecord(v)}, single: true}, nil
}

func readJSONL(r io.Reader) (batch, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		out  []normalize.Record
		line int
	)
	for sc.Scan() {
		line++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return batch{}, fmt.Errorf("decode line %d: %w", line, err)
		}
		out = append(out, asRecord(v))
	}
	if err := sc.Err(); err != nil {
		return batch{}, fmt.Errorf("read jsonl: %w", err)
	}
	return batch{records: out}, nil
}

// asRecord returns nil for anything that is not a JSON object; the pipeline
// reports those as invalid records.
func asRecord(v any) normalize.Record {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return m
}

// writeResults writes successful outputs in input order and returns the
// number of failed records, which are left out.
func writeResults(w io.Writer, b batch, results []normalize.BatchResult, format string) (int, error) {
	failed := 0
	ok := make([]normalize.Record, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			failed++
			continue
		}
		ok = append(ok, r.Output)
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	switch {
	case format == formatJSONL:
		for _, rec := range ok {
			if err := enc.Encode(rec); err != nil {
				return failed, fmt.Errorf("encode record: %w", err)
			}
		}
	case b.single:
		if len(ok) == 0 {
			return failed, nil
		}
		enc.SetIndent("", "  ")
		if err := enc.Encode(ok[0]); err != nil {
			return failed, fmt.Errorf("encode record: %w", err)
		}
	default:
		enc.SetIndent("", "  ")
		if err := enc.Encode(ok); err != nil {
			return failed, fmt.Errorf("encode records: %w", err)
		}
	}
	return failed, nil
}
