package scan_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dangledns/dangler/internal/output"
	"github.com/dangledns/dangler/internal/scan"
)

func sampleReport() scan.Report {
	return scan.Report{
		"good.example":     scan.Safe,
		"dangling.example": scan.MaybeVulnerable,
		"badproto.example": scan.LookupError,
	}
}

func TestReport_Domains_Sorted(t *testing.T) {
	got := sampleReport().Domains()
	assert.Equal(t, []string{"badproto.example", "dangling.example", "good.example"}, got)
}

func TestReport_WriteText(t *testing.T) {
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })

	var buf bytes.Buffer
	require.NoError(t, sampleReport().WriteText(&buf))

	want := "badproto.example : LookupError\n" +
		"dangling.example : MaybeVulnerable\n" +
		"good.example : Safe\n"
	assert.Equal(t, want, buf.String())
}

func TestReport_WritePlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleReport().WritePlain(&buf))

	want := "badproto.example LookupError\n" +
		"dangling.example MaybeVulnerable\n" +
		"good.example Safe\n"
	assert.Equal(t, want, buf.String())
}

func TestReport_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.Write(&buf, output.FormatJSON, sampleReport()))

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, map[string]string{
		"good.example":     "Safe",
		"dangling.example": "MaybeVulnerable",
		"badproto.example": "LookupError",
	}, decoded)
}

func TestReport_WriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleReport().WriteTable(&buf))

	out := buf.String()
	assert.Contains(t, out, "dangling.example")
	assert.Contains(t, out, "MaybeVulnerable")
	assert.Contains(t, out, "DOMAIN")
}

func TestReport_IsEmpty(t *testing.T) {
	assert.True(t, scan.Report{}.IsEmpty())
	assert.False(t, sampleReport().IsEmpty())
}

func TestVerdict_String(t *testing.T) {
	assert.Equal(t, "Safe", scan.Safe.String())
	assert.Equal(t, "MaybeVulnerable", scan.MaybeVulnerable.String())
	assert.Equal(t, "LookupError", scan.LookupError.String())
}

func TestVerdict_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(scan.MaybeVulnerable)
	require.NoError(t, err)
	assert.Equal(t, `"MaybeVulnerable"`, string(b))
}
