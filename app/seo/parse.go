package seo

import (
	"fmt"
	"strings"
)

var metadataLabels = [4]string{"Title:", "Slug:", "Focus Keyphrase:", "Tags:"}

// ParseMetadata reads a metadata reply of the form
//
//	Title: ...
//	Slug: ...
//	Focus Keyphrase: ...
//	Tags: a, b, c
//
// Lines are taken by position; blank lines are ignored and anything after
// the fourth line is discarded. A missing line or label yields a *ParseError.
func ParseMetadata(reply string) (Metadata, error) {
	lines := nonEmptyLines(reply)
	if len(lines) < len(metadataLabels) {
		return Metadata{}, &ParseError{
			Reason: fmt.Sprintf("expected %d lines, got %d", len(metadataLabels), len(lines)),
			Reply:  reply,
		}
	}

	var values [4]string
	for i, label := range metadataLabels {
		value, ok := afterLabel(lines[i], label)
		if !ok {
			return Metadata{}, &ParseError{
				Reason: fmt.Sprintf("line %d is missing label %q", i+1, label),
				Reply:  reply,
			}
		}
		values[i] = value
	}

	return Metadata{
		Title:          values[0],
		Slug:           values[1],
		FocusKeyphrase: values[2],
		Tags:           SplitTags(values[3]),
	}, nil
}

func nonEmptyLines(s string) []string {
	raw := strings.Split(strings.TrimSpace(s), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// afterLabel returns the text following label in line. The label may be
// preceded by numbering or markdown emphasis and is matched case-insensitively.
func afterLabel(line, label string) (string, bool) {
	for i := 0; i+len(label) <= len(line); i++ {
		if strings.EqualFold(line[i:i+len(label)], label) {
			prefix := strings.TrimSpace(line[:i])
			value := strings.TrimSpace(line[i+len(label):])
			return stripEmphasis(prefix, value), true
		}
	}
	return "", false
}

var emphasisMarkers = []string{"**", "__", "*", "_"}

// stripEmphasis removes markdown emphasis around value: the closing marker of
// an emphasized label ("**Title:** Foo") and markers wrapping the value itself
// ("Title: **Foo**"), or the closing marker of an emphasized line
// ("**Title: Foo**"). Unpaired markers are part of the value.
func stripEmphasis(prefix, value string) string {
	for _, marker := range emphasisMarkers {
		if !strings.HasSuffix(prefix, marker) {
			continue
		}
		if strings.HasPrefix(value, marker) {
			value = strings.TrimSpace(value[len(marker):])
		} else if strings.HasSuffix(value, marker) {
			value = strings.TrimSpace(value[:len(value)-len(marker)])
		}
		break
	}

	for _, marker := range emphasisMarkers {
		if len(value) > 2*len(marker) && strings.HasPrefix(value, marker) && strings.HasSuffix(value, marker) {
			value = strings.TrimSpace(value[len(marker) : len(value)-len(marker)])
			break
		}
	}

	return value
}
