package csvmap

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// RawRow is one CSV record keyed by its (cleaned) header names. Header
// names are whatever the export used; Normalize maps them to canonical
// fields.
type RawRow map[string]string

// ErrEmptyFile is returned when the upload contains no data rows.
var ErrEmptyFile = errors.New("uploaded file is empty")

// DecodeFile parses CSV or tab-delimited bytes into rows. Encoding is
// auto-detected (UTF-8 strict, then UTF-16LE, then Windows-1252, then
// lossy UTF-8); BOMs and NUL bytes are stripped before delimiter
// sniffing. The delimiter is a tab if the text contains any tab
// character, a comma otherwise. Row i of the result corresponds to line
// i+2 of the file (line 1 is the header).
func DecodeFile(data []byte) (headers []string, rows []RawRow, err error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil, ErrEmptyFile
	}
	text := decodeText(data)

	delim := ','
	if strings.ContainsRune(text, '\t') {
		delim = '\t'
	}

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delim
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	rawHeaders, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read header row: %w", err)
	}
	for _, h := range rawHeaders {
		headers = append(headers, cleanHeader(h))
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read data row: %w", err)
		}
		row := make(RawRow, len(headers))
		for i, h := range headers {
			if h == "" {
				continue
			}
			if i < len(record) {
				row[h] = strings.TrimSpace(record[i])
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, nil, ErrEmptyFile
	}
	return headers, rows, nil
}

// decodeText converts raw upload bytes to clean UTF-8 text.
func decodeText(data []byte) string {
	if bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		data = data[3:]
	}
	if bytes.HasPrefix(data, []byte{0xFF, 0xFE}) || looksUTF16LE(data) {
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		if out, decErr := dec.Bytes(data); decErr == nil {
			data = out
		}
	}
	if !utf8.Valid(data) {
		if out, decErr := charmap.Windows1252.NewDecoder().Bytes(data); decErr == nil {
			data = out
		} else {
			data = bytes.ToValidUTF8(data, []byte("�"))
		}
	}
	s := string(data)
	s = strings.ReplaceAll(s, "\x00", "")
	s = strings.TrimPrefix(s, "\ufeff")
	return s
}

// looksUTF16LE detects BOM-less UTF-16LE by NUL density. ASCII-heavy
// UTF-16LE text has a NUL in every other byte.
func looksUTF16LE(data []byte) bool {
	if len(data) < 2 {
		return false
	}
	return bytes.Count(data, []byte{0x00})*4 > len(data)
}

func cleanHeader(h string) string {
	h = strings.ReplaceAll(h, `"`, "")
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.TrimSpace(h)
}
