package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/workload/internal/pkg/apperrors"
)

func init() {
	color.NoColor = true
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &errOut
	err := app.Run(append([]string{"workloadctl", "--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	return out.String(), err
}

func writeRequest(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "request.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const section = `{"id":5,"name":"Section A","capacity":65,"groups":[
	{"id":101,"sectionId":5,"name":"TD1","type":"td","capacity":30},
	{"id":201,"sectionId":5,"name":"TP1","type":"tp","capacity":20}]}`

func TestCalc(t *testing.T) {
	out, err := run(t, "calc", "--type", "td", "--hours", "21", "--weeks", "14", "--group-size", "30", "--capacity", "65")
	require.NoError(t, err)
	assert.Contains(t, out, "4.5")
	assert.Contains(t, out, "63")
}

func TestCalcReportsCorruptAtom(t *testing.T) {
	out, err := run(t, "calc", "--type", "tp", "--hours", "28", "--capacity", "65")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDataIntegrity)
	assert.Contains(t, out, "28", "partial breakdown is still printed")
}

func TestValidateAccepted(t *testing.T) {
	path := writeRequest(t, `{
		"module":{"id":10,"code":"ALGO3","atoms":[{"id":2,"moduleId":10,"type":"td","hours":21,"totalWeeks":14,"groupSize":30}]},
		"atom":{"id":2,"moduleId":10,"type":"td","hours":21,"totalWeeks":14,"groupSize":30},
		"section":`+section+`,
		"targetType":"group","targetId":101}`)

	out, err := run(t, "validate", path)
	require.NoError(t, err)
	assert.Equal(t, "Assignment accepted\n", out)
}

func TestValidateRefused(t *testing.T) {
	path := writeRequest(t, `{
		"module":{"id":10,"code":"ALGO3","atoms":[{"id":1,"moduleId":10,"type":"cours","hours":42,"totalWeeks":14}]},
		"atom":{"id":1,"moduleId":10,"type":"cours","hours":42,"totalWeeks":14},
		"section":`+section+`,
		"targetType":"group","targetId":101}`)

	out, err := run(t, "validate", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRuleViolation)
	assert.Contains(t, out, "LECTURE_ON_GROUP")
}

func TestValidateRejectsMalformedFile(t *testing.T) {
	_, err := run(t, "validate", writeRequest(t, `{"targetType":"group"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid request file")

	_, err = run(t, "validate")
	require.Error(t, err)
}
