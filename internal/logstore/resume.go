package logstore

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/tomhoffer/paretoevo/internal/core"
)

const iterationMarkerPrefix = ";; Iteration: "

// ResumeResult carries everything recovered from a log file on resume.
type ResumeResult struct {
	Header        Header
	Individuals   []core.Individual
	Dead          []core.Individual
	LastIteration int
}

// Resume reads path end to end, restoring the header, the admitted
// individuals (validating each against expectedDim/expectedLength), and
// the iteration to resume at.
//
// Malformed trailing records are dropped rather than treated as a fatal
// error: the log may have been truncated mid-write. The first decode
// failure stops record collection; everything after it in the file is
// discarded.
func Resume(path string, expectedDim, expectedLength int) (*ResumeResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.NewLogReadError("failed to open log file for resume", err)
	}
	defer f.Close()

	header := Header{}
	var individuals []core.Individual
	var dead []core.Individual
	var markers []int

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
scan:
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch {
		case isHeaderLine(line):
			parseHeaderLine(header, line)
		case strings.HasPrefix(line, iterationMarkerPrefix):
			if n, ok := parseIterationNumber(line); ok {
				markers = append(markers, n)
			}
		default:
			ind, isDead, derr := DecodeRecord(line, expectedDim, expectedLength)
			if derr != nil {
				// Malformed trailing record: stop collecting, discard the
				// rest of the file.
				break scan
			}
			if isDead {
				dead = append(dead, ind)
			} else {
				individuals = append(individuals, ind)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, core.NewLogReadError("failed to read log file", err)
	}

	return &ResumeResult{
		Header:        header,
		Individuals:   individuals,
		Dead:          dead,
		LastIteration: findLastIter(markers),
	}, nil
}

func parseHeaderLine(header Header, line string) {
	body := strings.TrimPrefix(line, headerPrefix)
	eq := strings.IndexByte(body, '=')
	if eq < 0 {
		return
	}
	header[body[:eq]] = body[eq+1:]
}

func parseIterationNumber(line string) (int, bool) {
	body := strings.TrimPrefix(line, iterationMarkerPrefix)
	fields := strings.Fields(body)
	if len(fields) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, false
	}
	return n, true
}

// findLastIter resumes at max(lastRecorded-1, count-2), a deliberate
// off-by-one that errs toward re-executing the last partial iteration
// rather than risk skipping one.
func findLastIter(markers []int) int {
	if len(markers) == 0 {
		return 0
	}
	last := markers[len(markers)-1]
	count := len(markers)
	a := last - 1
	b := count - 2
	if a > b {
		return a
	}
	return b
}
