package trackio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wentasah/ng-trajectory/geom"
)

func TestDecodeParsesPoints(t *testing.T) {
	in := "# comment\n0,0\n1.5, 2.25\n\n3,4\n"
	got, err := Decode(strings.NewReader(in))
	require.NoError(t, err)
	want := []geom.Point2{{0, 0}, {1.5, 2.25}, {3, 4}}
	require.Equal(t, want, got)
}

func TestDecodeRejectsMalformedLine(t *testing.T) {
	if _, err := Decode(strings.NewReader("0,0,0\n")); err == nil {
		t.Error("Decode with 3 fields: want error")
	}
}

func TestDecodeRejectsNonNumeric(t *testing.T) {
	if _, err := Decode(strings.NewReader("a,b\n")); err == nil {
		t.Error("Decode with non-numeric fields: want error")
	}
}
