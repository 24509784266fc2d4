package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	signeterr "github.com/mrz1836/signet/pkg/errors"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatText, ParseFormat(" Text "))
	assert.Equal(t, FormatAuto, ParseFormat("auto"))
	assert.Equal(t, FormatAuto, ParseFormat("yaml"))
}

func TestDetectFormatExplicitWins(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.Equal(t, FormatText, DetectFormat(&buf, FormatText))
	assert.Equal(t, FormatJSON, DetectFormat(&buf, FormatJSON))

	// Non-TTY writers default to JSON.
	assert.Equal(t, FormatJSON, DetectFormat(&buf, FormatAuto))
}

func TestFormatterPrintJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	f := NewFormatter(FormatJSON, &buf)
	require.NoError(t, f.Print(map[string]string{"hash": "0xabc"}))

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "0xabc", decoded["hash"])
}

func TestFormatterPrintText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	f := NewFormatter(FormatText, &buf)
	require.NoError(t, f.Print("hello"))
	assert.Equal(t, "hello\n", buf.String())
}

func TestFormatErrorText(t *testing.T) {
	t.Parallel()

	err := signeterr.WithSuggestion(
		signeterr.WithDetails(signeterr.ErrWalletNameNotFound, map[string]string{"name": "mian"}),
		"did you mean 'main'?",
	)

	var buf bytes.Buffer
	require.NoError(t, FormatError(&buf, err, FormatText))

	out := buf.String()
	assert.Contains(t, out, "Error: wallet not found")
	assert.Contains(t, out, "name: mian")
	assert.Contains(t, out, "Suggestion: did you mean 'main'?")
}

func TestFormatErrorJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, FormatError(&buf, signeterr.ErrTxReviewRejected, FormatJSON))

	var decoded ErrorOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "TX_REVIEW_REJECTED", decoded.Error.Code)
	assert.Equal(t, signeterr.ExitRejected, decoded.Error.ExitCode)
}

func TestTableRender(t *testing.T) {
	t.Parallel()

	table := NewTable("NAME", "KIND")
	table.AddRow("main", "hd")
	table.AddRow("hardware", "ledger")

	out := table.String()
	assert.Contains(t, out, "NAME      KIND")
	assert.Contains(t, out, "main      hd")
	assert.Contains(t, out, "hardware  ledger")
}

func TestTableEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, NewTable().String())
}
