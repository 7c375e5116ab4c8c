/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report_writer_test.go
Description: Unit tests for the JSON report writer: directory creation, filename
shape, and round-trippable content.
*/

package utils_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/kleascm/tabsniff/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	payload := map[string]interface{}{
		"delimiter": ",",
		"header":    "header",
	}

	path, err := utils.WriteReport(dir, "addresses", payload)
	require.NoError(t, err)
	assert.Contains(t, filepath.Base(path), "_addresses.json")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, ",", decoded["delimiter"])
	assert.Equal(t, "header", decoded["header"])
}

func TestWriteReportUnmarshalableResult(t *testing.T) {
	_, err := utils.WriteReport(t.TempDir(), "bad", func() {})
	assert.Error(t, err)
}
