package valuedomain

import (
	"regexp"
	"strings"
)

// whitespace separates the fields of a zone line. The split is capped at
// three fields: content may itself contain whitespace (TXT records).
var whitespace = regexp.MustCompile(`\s+`)

// ParseZone parses the vendor's multi-line zone blob into an ordered record
// set. Each non-empty line holds a whitespace-separated `type name content`
// triplet; a line with fewer than three fields yields MalformedZoneLineError.
func ParseZone(blob string) (RecordSet, error) {
	var records RecordSet
	for i, line := range strings.Split(blob, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := whitespace.Split(line, 3)
		if len(fields) < 3 {
			return nil, MalformedZoneLineError{Number: i + 1, Line: line}
		}

		records = append(records, Triplet{
			Type:    fields[0],
			Name:    fields[1],
			Content: fields[2],
		})
	}

	return records, nil
}

// Serialize renders the record set back into the vendor's zone blob format,
// one single-space-joined triplet per line. It is the exact inverse of
// ParseZone for well-formed input.
func (rs RecordSet) Serialize() string {
	lines := make([]string, len(rs))
	for i, t := range rs {
		lines[i] = t.Type + " " + t.Name + " " + t.Content
	}

	return strings.Join(lines, "\n")
}
