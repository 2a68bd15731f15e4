// G-code line parsing
//
// Copyright (C) 2026  mrowdy
//
// This file may be distributed under the terms of the GNU GPLv3 license.

// Package gcode turns flat slicer G-code into toolpath segment lists for the
// planner. It understands the linear-move subset (G0/G1, coordinate and
// extrusion modes, G92 offsets) and ignores everything else.
package gcode

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

type command struct {
	Name string
	Args map[string]string
	Raw  string
}

var reParenComment = regexp.MustCompile(`\([^)]*\)`)

// parseLine splits a raw G-code line into a command name and letter/keyword
// arguments. Blank lines and pure comments return nil.
func parseLine(line string) (*command, error) {
	ln := strings.TrimSpace(line)
	if idx := strings.IndexByte(ln, ';'); idx >= 0 {
		ln = strings.TrimSpace(ln[:idx])
	}
	ln = strings.TrimSpace(reParenComment.ReplaceAllString(ln, " "))
	if ln == "" {
		return nil, nil
	}

	fields := strings.Fields(ln)
	name := strings.ToUpper(fields[0])
	args := map[string]string{}
	for _, f := range fields[1:] {
		if len(f) < 2 {
			continue
		}
		// Letter params like "X10.5", "E0.42", "F1800".
		k := strings.ToUpper(f[:1])
		args[k] = strings.TrimSpace(f[1:])
	}
	return &command{Name: name, Args: args, Raw: line}, nil
}

func (c *command) floatArg(key string) (float64, bool, error) {
	v, ok := c.Args[key]
	if !ok {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, true, fmt.Errorf("bad float %s=%q in %q", key, v, c.Raw)
	}
	return f, true, nil
}
