package datasource

import (
	"fmt"
	"regexp"
	"strconv"
)

// Metric lines look like:
//
//	step:23/5100 val_loss:4.2211 train_time:36518ms step_avg:123.45ms
//
// with optionally more name:value pairs between the metric and train_time;
// those extras are matched but not captured. Only the first metric name is
// bound to the sample.
var logLineRegex = regexp.MustCompile(
	`^step:(\d+)/(\d+) (\w+):([\d\.]+)(?: [\w_]+:[\d\.]+)* train_time:([\d\.]+)ms step_avg:(nan|[\d\.]+)ms`,
)

// ParseLogLine matches a single trimmed log line against the metric grammar.
// Lines that don't match (banners, blanks, code) return ok=false; that is
// expected noise, not an error.
func ParseLogLine(line string) (*MetricSample, bool) {
	groups := logLineRegex.FindStringSubmatch(line)
	if groups == nil {
		return nil, false
	}

	sample := &MetricSample{
		Step:        mustParseInt(groups[1]),
		TotalSteps:  mustParseInt(groups[2]),
		MetricName:  groups[3],
		MetricValue: mustParseFloat(groups[4]),
		TrainTimeMs: mustParseFloat(groups[5]),
	}

	if groups[6] != "nan" {
		avg := mustParseFloat(groups[6])
		sample.StepAvgMs = &avg
	}

	return sample, true
}

// The numeric groups only admit digits and dots, so a parse failure here
// means the regex and the conversions disagree. That is a bug worth a loud
// crash rather than a silently dropped sample.
func mustParseInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		panic(fmt.Sprintf("unreachable: %q matched as integer: %s", s, err))
	}
	return v
}

func mustParseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic(fmt.Sprintf("unreachable: %q matched as float: %s", s, err))
	}
	return v
}
