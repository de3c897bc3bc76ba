package reader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// MemoryMetrics is the subset of the memory snapshot the dashboard plots.
type MemoryMetrics struct {
	Used uint64
}

var errBadUsed = errors.New("memory snapshot has no usable \"used\" field")

// ReadMemory parses the memory snapshot at path. The snapshot is absent
// when the file is missing, is not a JSON object, or its "used" field is
// missing, non-numeric, negative or not finite.
func ReadMemory(path string) Result[MemoryMetrics] {
	data, err := os.ReadFile(path)
	if err != nil {
		return Absent[MemoryMetrics](fmt.Errorf("read memory snapshot %s: %w", path, err))
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Absent[MemoryMetrics](fmt.Errorf("parse memory snapshot: %w", err))
	}
	field, ok := raw["used"]
	if !ok {
		return Absent[MemoryMetrics](errBadUsed)
	}

	var used json.Number
	if trimmed := bytes.TrimSpace(field); len(trimmed) == 0 || trimmed[0] == '"' {
		return Absent[MemoryMetrics](errBadUsed)
	}
	if err := json.Unmarshal(field, &used); err != nil {
		return Absent[MemoryMetrics](fmt.Errorf("%w: %v", errBadUsed, err))
	}
	v, err := parseUnsigned(used)
	if err != nil {
		return Absent[MemoryMetrics](fmt.Errorf("%w: %v", errBadUsed, err))
	}
	return Present(MemoryMetrics{Used: v})
}

// parseUnsigned accepts integral JSON numbers directly and truncates
// fractional ones.
func parseUnsigned(n json.Number) (uint64, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if strings.HasPrefix(s, "-") {
			return 0, fmt.Errorf("negative value %s", s)
		}
		return strconv.ParseUint(s, 10, 64)
	}
	f, err := n.Float64()
	if err != nil {
		return 0, err
	}
	if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxUint64 {
		return 0, fmt.Errorf("value %s out of range", s)
	}
	return uint64(f), nil
}
