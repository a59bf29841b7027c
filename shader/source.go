// Package shader loads two-stage shader sources and builds GL programs from them.
//
// A source file holds both stages, each introduced by a marker line:
//
//	#shader vertex
//	...
//	#shader fragment
//	...
//
// Build talks to the graphics driver only through the Driver passed to it, so
// it can run against a real context or a test double.
package shader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	markerToken   = "#shader"
	byteOrderMark = "\ufeff"
)

// Line is a source line kept outside both sections, without its terminator.
type Line struct {
	Number int
	Text   string
}

// Source is the text of both stages as read from one file.
type Source struct {
	Vertex   string
	Fragment string

	// Unassigned holds lines that appeared before the first marker.
	Unassigned []Line
}

// LoadOptions controls how forgiving the loader is.
type LoadOptions struct {
	// Compat accepts anything the marker scan can make sense of: unknown or
	// repeated markers and missing sections are not errors, and an unreadable
	// file loads as an empty Source.
	Compat bool
}

// LoadFile reads and splits the shader file at path.
func LoadFile(path string, opts LoadOptions) (Source, error) {
	f, err := os.Open(path)
	if err != nil {
		if opts.Compat {
			return Source{}, nil
		}
		return Source{}, &IOError{Path: path, Err: err}
	}
	defer f.Close()

	return parse(f, path, opts)
}

// Parse splits r into its vertex and fragment sections.
func Parse(r io.Reader, opts LoadOptions) (Source, error) {
	return parse(r, "", opts)
}

func parse(r io.Reader, path string, opts LoadOptions) (Source, error) {
	var (
		src     Source
		text    [2]strings.Builder
		seen    [2]bool
		cur     = stageNone
		lineNo  int
		markers int
	)

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lineNo++
			if lineNo == 1 {
				line = strings.TrimPrefix(line, byteOrderMark)
			}

			if stage, ok := parseMarker(strings.TrimRight(line, "\r\n"), opts.Compat); ok {
				markers++
				switch {
				case stage == stageNone:
					if !opts.Compat {
						return Source{}, malformed(path, lineNo, "marker %q names no known stage", strings.TrimSpace(line))
					}
				case seen[stage] && !opts.Compat:
					return Source{}, malformed(path, lineNo, "duplicate %s section", stage)
				default:
					seen[stage] = true
					cur = stage
				}
			} else {
				if !strings.HasSuffix(line, "\n") {
					line += "\n"
				}
				if cur == stageNone {
					src.Unassigned = append(src.Unassigned, Line{Number: lineNo, Text: strings.TrimRight(line, "\r\n")})
				} else {
					text[cur].WriteString(line)
				}
			}
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if opts.Compat {
				break
			}
			return Source{}, &IOError{Path: path, Err: err}
		}
	}

	if !opts.Compat {
		if markers == 0 {
			return Source{}, malformed(path, 0, "no %s markers", markerToken)
		}
		for _, stage := range []Stage{StageVertex, StageFragment} {
			if !seen[stage] {
				return Source{}, malformed(path, 0, "missing %s section", stage)
			}
		}
	}

	src.Vertex = text[StageVertex].String()
	src.Fragment = text[StageFragment].String()
	return src, nil
}

// parseMarker reports whether text is a marker line and which stage it
// selects. A marker with neither keyword returns stageNone. In compat mode the
// token and keyword may appear anywhere on the line.
func parseMarker(text string, compat bool) (Stage, bool) {
	var rest string
	if compat {
		if !strings.Contains(text, markerToken) {
			return stageNone, false
		}
		rest = text
	} else {
		var ok bool
		rest, ok = strings.CutPrefix(strings.TrimLeft(text, " \t"), markerToken)
		if !ok {
			return stageNone, false
		}
	}
	switch {
	case strings.Contains(rest, "vertex"):
		return StageVertex, true
	case strings.Contains(rest, "fragment"):
		return StageFragment, true
	}
	return stageNone, true
}

func malformed(path string, line int, format string, args ...any) error {
	return &MalformedSourceError{Path: path, Line: line, Reason: fmt.Sprintf(format, args...)}
}
