package datasource

import (
	"strings"
	"time"
)

// SentinelLine delimits the code snapshot a training script prints into its
// own log: one sentinel enters the block, the next one leaves it.
var SentinelLine = strings.Repeat("=", 100)

const timestampLayout = "2006-01-02 15:04:05"

// ExtractRun classifies the raw contents of one log file into metric samples
// and the embedded code block.
//
// Sentinel lines toggle code-block mode and are never part of either output.
// Code lines are kept verbatim, line terminators included. Everything else
// goes through the line parser; non-matching lines are skipped. An
// unterminated block runs to end of file.
func ExtractRun(runId string, contents string, modTime time.Time) *Run {
	var code strings.Builder
	samples := make([]MetricSample, 0)

	inCode := false
	for _, line := range SplitLines(contents) {
		if strings.TrimSpace(line) == SentinelLine {
			inCode = !inCode
			continue
		}
		if inCode {
			code.WriteString(line)
			continue
		}
		if sample, ok := ParseLogLine(strings.TrimSpace(line)); ok {
			samples = append(samples, *sample)
		}
	}

	return &Run{
		RunId:     runId,
		Timestamp: modTime.Format(timestampLayout),
		Code:      code.String(),
		Samples:   samples,
		modTime:   modTime,
	}
}

// SplitLines splits after every '\n', keeping the terminator on each
// line so the input can be reassembled byte for byte.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := make([]string, 0)
	for {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			lines = append(lines, s)
			return lines
		}
		lines = append(lines, s[:i+1])
		s = s[i+1:]
		if s == "" {
			return lines
		}
	}
}
