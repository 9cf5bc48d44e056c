// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package version

import (
	"regexp"
	"strconv"
)

// Package axis.
const (
	Str = "0.0.post639"
)

// Data axis, with the provenance of the bundled tree.
const (
	DataStr         = "0.0.post503"
	DataGitHash     = "b4d6a9fa2996c9bc1e9955afe5aefa9803be4993"
	DataGitDescribe = "v0.0-503-gb4d6a9f"
	DataGitMsg      = `commit b4d6a9fa2996c9bc1e9955afe5aefa9803be4993
Merge: 14c4be9 b2e425a
Author: Mike Thompson <mike@openhwgroup.org>
Date:   Mon May 16 15:19:30 2022 -0400

    Merge pull request #4 from e-matthews/litex
    
    Fetch and Load-Store Interface Refactor and LiteX Support

`
)

// Tool axis.
const (
	ToolStr = "0.0.post136"
)

// Record is the version of one axis.
type Record struct {
	Axis        Axis   `yaml:"axis"`
	String      string `yaml:"version"`
	Tuple       [3]int `yaml:"tuple,flow"`
	GitHash     string `yaml:"git_hash,omitempty"`
	GitDescribe string `yaml:"git_describe,omitempty"`
	GitMsg      string `yaml:"git_msg,omitempty"`
}

var records = [...]Record{
	Package: {
		Axis:   Package,
		String: Str,
		Tuple:  [3]int{0, 0, 639},
	},
	Data: {
		Axis:        Data,
		String:      DataStr,
		Tuple:       [3]int{0, 0, 503},
		GitHash:     DataGitHash,
		GitDescribe: DataGitDescribe,
		GitMsg:      DataGitMsg,
	},
	Tool: {
		Axis:   Tool,
		String: ToolStr,
		Tuple:  [3]int{0, 0, 136},
	},
}

// Lookup returns the record of axis, or the zero Record for an unknown axis.
func Lookup(axis Axis) (rec Record) {
	if axis < 0 || int(axis) >= len(records) {
		return
	}
	return records[axis]
}

// Records returns the records of all axes, in Axes order.
func Records() []Record {
	return append([]Record(nil), records[:]...)
}

// Tuple is the package axis tuple.
func Tuple() [3]int { return records[Package].Tuple }

// DataTuple is the data axis tuple.
func DataTuple() [3]int { return records[Data].Tuple }

// ToolTuple is the tool axis tuple.
func ToolTuple() [3]int { return records[Tool].Tuple }

// HasProvenance reports whether the record carries git information.
func (rec Record) HasProvenance() bool {
	return rec.GitHash != ""
}

var numbers = regexp.MustCompile(`[0-9]+`)

// Check verifies that the tuple holds the numbers embedded in the string.
func (rec Record) Check() (err error) {
	found := numbers.FindAllString(rec.String, -1)
	if len(found) != len(rec.Tuple) {
		return ErrInconsistent
	}

	for n, digits := range found {
		var value int
		value, err = strconv.Atoi(digits)
		if err != nil {
			return
		}
		if value != rec.Tuple[n] {
			return ErrInconsistent
		}
	}

	return
}

// Parsed parses the record's string with comp. It reports false, without
// error, when comp is unavailable or cannot parse the string.
func (rec Record) Parsed(comp Comparator) (ver Version, ok bool) {
	if comp == nil || !comp.Available() {
		return
	}

	ver, err := comp.Parse(rec.String)
	if err != nil {
		ver = Version{}
		return
	}

	ok = true
	return
}
