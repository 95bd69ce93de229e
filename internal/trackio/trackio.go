// Package trackio reads track geometry (valid-area points and a
// centerline) from simple "x,y" CSV text, one point per line. It follows
// the teacher's io.Reader-based Decode idiom (reader.go's
// `Decode(r io.Reader) (*DtNavMesh, error)`) rather than hand-rolling a
// bespoke load function per call site.
package trackio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wentasah/ng-trajectory/geom"
)

// Decode reads whitespace-trimmed "x,y" lines from r into points. Blank
// lines and lines starting with '#' are skipped.
func Decode(r io.Reader) ([]geom.Point2, error) {
	var out []geom.Point2
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("trackio: line %d: want \"x,y\", got %q", lineNo, line)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("trackio: line %d: %w", lineNo, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("trackio: line %d: %w", lineNo, err)
		}
		out = append(out, geom.Point2{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
